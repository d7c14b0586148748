// device.go - Device lifecycle and mutex-serialized HAL I/O primitives (§4, §5)

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

import (
	"sync"
	"sync/atomic"
	"time"
)

// defaultBusyTimeoutMS bounds a single wait_busy call absent an explicit
// override; large panels (epd_7in5_v2, epd_5in83_v2) can legitimately
// hold busy for several seconds during a full refresh.
const defaultBusyTimeoutMS = 30000

// Device owns one physical panel's HAL handle and serializes every SPI
// and GPIO access behind mu, mirroring the single-writer-bus discipline
// the rest of the host hardware model uses for its own shared buses.
type Device struct {
	mu sync.Mutex

	model *ModelConfig
	hal   HAL

	closed    atomic.Bool
	cancelled atomic.Bool

	currentMode InitMode
	modeValid   bool

	// Logger receives one line per command byte sent and one line when
	// each busy-wait ends (ready, cancelled or timed out), when set. A
	// hardware driver library shouldn't impose a logging framework on
	// its importers, so this defaults to
	// a no-op; callers that want visibility assign something like
	// log.Printf.
	Logger func(format string, args ...any)
}

func (d *Device) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger(format, args...)
	}
}

// OpenDevice resolves modelName against the registry, acquires the HAL,
// and returns a Device ready for Init. The HAL is not yet put in any
// particular init mode; call Init before the first Show.
func OpenDevice(modelName string, hal HAL) (*Device, error) {
	cfg, err := LookupModel(modelName)
	if err != nil {
		return nil, err
	}
	if err := hal.Init(); err != nil {
		return nil, &ChromaError{Kind: InitError, Model: modelName, Err: err}
	}
	return &Device{model: cfg, hal: hal}, nil
}

// Model returns the Tier 1 config this device was opened against.
func (d *Device) Model() *ModelConfig { return d.model }

// Init runs the two-tier init sequence for mode, skipping the work when
// mode already matches the device's cached init mode (§4.4 mode cache).
func (d *Device) Init(mode InitMode) error {
	if d.closed.Load() {
		return errDeviceClosed(d.model.Name)
	}
	if d.modeValid && d.currentMode == mode {
		return nil
	}
	if err := dispatchInit(d, d.model, mode); err != nil {
		d.modeValid = false
		return err
	}
	d.currentMode = mode
	d.modeValid = true
	return nil
}

// Show drives the panel through one full display cycle for a single
// framebuffer plane.
func (d *Device) Show(buf []byte) error {
	if d.closed.Load() {
		return errDeviceClosed(d.model.Name)
	}
	return dispatchShow(d, d.model, buf)
}

// ShowDual drives a two-plane (black/red or black/yellow) display
// cycle; only models with CapDualBuffer have a Tier 2 hook for this.
func (d *Device) ShowDual(black, red []byte) error {
	if d.closed.Load() {
		return errDeviceClosed(d.model.Name)
	}
	if !d.model.HasCapability(CapDualBuffer) {
		return &ChromaError{Kind: UnsupportedFormat, Model: d.model.Name, Detail: "model has no CapDualBuffer"}
	}
	return dispatchShowDual(d, d.model, black, red)
}

// ShowRegion drives a regional/partial refresh of (x,y,w,h) only; only
// models with CapRegionalRefresh have a Tier 2 hook for this.
func (d *Device) ShowRegion(buf []byte, x, y, w, h int) error {
	if d.closed.Load() {
		return errDeviceClosed(d.model.Name)
	}
	if !d.model.HasCapability(CapRegionalRefresh) {
		return &ChromaError{Kind: UnsupportedFormat, Model: d.model.Name, Detail: "model has no CapRegionalRefresh"}
	}
	entry := overridesFor(d.model.Name)
	if entry == nil || entry.CustomDisplayRegion == nil {
		return &ChromaError{Kind: UnsupportedFormat, Model: d.model.Name, Detail: "no Tier 2 custom_display_region hook"}
	}
	return entry.CustomDisplayRegion(d, d.model, buf, x, y, w, h)
}

// Sleep puts the controller into deep sleep. A subsequent Init performs
// the hardware reset needed to wake it, so the mode cache is cleared.
func (d *Device) Sleep() error {
	if d.closed.Load() {
		return errDeviceClosed(d.model.Name)
	}
	if err := genericSleep(d, d.model); err != nil {
		return err
	}
	d.modeValid = false
	return nil
}

// Cancel requests that any in-flight wait_busy poll return Cancelled at
// its next 10ms tick. The first poll that observes the request consumes
// it, so later waits run normally. Safe to call from another goroutine.
func (d *Device) Cancel() {
	d.cancelled.Store(true)
}

// Close releases the HAL. Idempotent.
func (d *Device) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	return d.hal.Close()
}

// --- mutex-serialized I/O primitives ---

func (d *Device) sendCommand(cmd byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logf("chromawave: %s: command 0x%02X", d.model.Name, cmd)
	if err := d.hal.SetPin(PinDC, false); err != nil {
		return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
	}
	if err := d.hal.SPIWrite([]byte{cmd}); err != nil {
		return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
	}
	return nil
}

func (d *Device) sendData(b byte) error {
	return d.sendDataBulk([]byte{b})
}

func (d *Device) sendDataBulk(data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.hal.SetPin(PinDC, true); err != nil {
		return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
	}
	if err := d.hal.SPIWrite(data); err != nil {
		return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
	}
	return nil
}

// sendCommandData is sendCommand followed by sendDataBulk, used by Tier
// 2 hooks that need a single register-write idiom (e.g. a LUT load).
func (d *Device) sendCommandData(cmd byte, data []byte) error {
	if err := d.sendCommand(cmd); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return d.sendDataBulk(data)
}

// reset drives the RST line through the three-phase hardware reset
// pulse a ModelConfig's ResetTiming describes: idle high, low for the
// reset window, high again to release the controller.
func (d *Device) reset(t ResetTiming) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.hal.SetPin(PinReset, true); err != nil {
		return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
	}
	d.hal.Sleep(time.Duration(t.PreMS) * time.Millisecond)
	if err := d.hal.SetPin(PinReset, false); err != nil {
		return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
	}
	d.hal.Sleep(time.Duration(t.LowMS) * time.Millisecond)
	if err := d.hal.SetPin(PinReset, true); err != nil {
		return &ChromaError{Kind: SPIError, Model: d.model.Name, Err: err}
	}
	d.hal.Sleep(time.Duration(t.PostMS) * time.Millisecond)
	return nil
}

func (d *Device) delay(ms int) {
	d.hal.Sleep(time.Duration(ms) * time.Millisecond)
}
