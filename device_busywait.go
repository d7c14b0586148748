// device_busywait.go - interruptible busy-pin poll state machine (§4.3, §5)

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package chromawave

import "time"

// busyPollTick is the interval between consecutive busy-pin reads. Long
// enough to not flood the SPI/GPIO bus with reads, short enough that a
// Cancel() call is honored promptly.
const busyPollTick = 10 * time.Millisecond

type busyState int

const (
	busyIdle busyState = iota
	busyPolling
	busyReady
	busyTimedOut
	busyCancelled
)

// waitBusy polls the busy pin until it reports idle for polarity, the
// cancel flag is observed, or timeoutMS elapses — whichever comes
// first. Every poll releases the caller's goroutine for busyPollTick,
// so a long refresh never spins the host CPU.
func (d *Device) waitBusy(polarity BusyPolarity, timeoutMS int) error {
	state := busyIdle
	deadline := time.Now().Add(time.Duration(timeoutMS) * time.Millisecond)

	state = busyPolling
	for state == busyPolling {
		if d.cancelled.CompareAndSwap(true, false) {
			state = busyCancelled
			break
		}

		level, err := d.hal.ReadPin(PinBusy)
		if err != nil {
			return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
		}
		if polarity.busyIdle(level) {
			state = busyReady
			break
		}
		if time.Now().After(deadline) {
			state = busyTimedOut
			break
		}
		d.hal.Sleep(busyPollTick)
	}

	switch state {
	case busyReady:
		d.logf("chromawave: %s: busy wait done", d.model.Name)
		return nil
	case busyCancelled:
		d.logf("chromawave: %s: busy wait cancelled", d.model.Name)
		d.modeValid = false
		return &ChromaError{Kind: Cancelled, Model: d.model.Name}
	default:
		d.logf("chromawave: %s: busy wait timed out after %dms", d.model.Name, timeoutMS)
		d.modeValid = false
		return &ChromaError{Kind: BusyTimeout, Model: d.model.Name, Detail: "wait_busy exceeded timeout"}
	}
}
