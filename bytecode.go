// bytecode.go - init/display bytecode opcode table and interpreter (§4.5)

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package chromawave

// opcode identifies one instruction in an init/display bytecode stream.
// Any byte at or below opCmdMax is not a reserved opcode at all: it is
// a controller command, followed by a length-prefixed data run.
type opcode byte

const (
	opSetCursor opcode = 0xF9
	opSetWindow opcode = 0xFA
	opSWReset   opcode = 0xFB
	opHWReset   opcode = 0xFC
	opDelayMS   opcode = 0xFD
	opEnd       opcode = 0xFE
	opWaitBusy  opcode = 0xFF

	opCmdMax = 0xF8
)

// Refresh-trigger and soft-reset command bytes, constant across the
// SSD16xx-family controllers the generic interpreter targets. A model
// whose controller disagrees supplies a Tier 2 DriverEntry instead.
const (
	cmdSoftReset     = 0x12
	cmdRefreshTrigger = 0x20
	cmdSetCursorX    = 0x4E
	cmdSetCursorY    = 0x4F
	cmdSetWindowX    = 0x44
	cmdSetWindowY    = 0x45
)

// InitMode selects which of a ModelConfig's bytecode sequences to run.
type InitMode int

const (
	ModeFull InitMode = iota
	ModeFast
	ModePartial
	ModeGrayscale
	ModeNone
)

func (m InitMode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeFast:
		return "fast"
	case ModePartial:
		return "partial"
	case ModeGrayscale:
		return "grayscale"
	default:
		return "none"
	}
}

// genericInit interprets cfg's init bytecode for mode against dev. A
// nil sequence (no init_fast_sequence on a model, say) is a no-op, not
// an error.
func genericInit(dev *Device, cfg *ModelConfig, mode InitMode) error {
	seq := cfg.sequenceFor(mode)
	if seq == nil {
		return nil
	}
	return runBytecode(dev, cfg, seq)
}

// runBytecode walks seq once, dispatching each opcode. Malformed
// operands (truncated u16s, a data run running past the end of seq)
// fail with BadBytecode rather than panicking or reading garbage.
func runBytecode(dev *Device, cfg *ModelConfig, seq []byte) error {
	i := 0
	for i < len(seq) {
		b := seq[i]
		switch opcode(b) {
		case opSetCursor:
			x, y, n, err := readU16Pair(seq, i+1)
			if err != nil {
				return err
			}
			if err := deviceSetCursor(dev, x, y); err != nil {
				return err
			}
			i += 1 + n
		case opSetWindow:
			x0, y0, n1, err := readU16Pair(seq, i+1)
			if err != nil {
				return err
			}
			x1, y1, n2, err := readU16Pair(seq, i+1+n1)
			if err != nil {
				return err
			}
			if err := deviceSetWindow(dev, x0, y0, x1, y1); err != nil {
				return err
			}
			i += 1 + n1 + n2
		case opSWReset:
			if err := dev.sendCommand(cmdSoftReset); err != nil {
				return err
			}
			if err := dev.waitBusy(cfg.BusyPolarity, defaultBusyTimeoutMS); err != nil {
				return err
			}
			i++
		case opHWReset:
			if err := dev.reset(cfg.ResetTiming); err != nil {
				return err
			}
			i++
		case opDelayMS:
			ms, n, err := readU16(seq, i+1)
			if err != nil {
				return err
			}
			dev.delay(ms)
			i += 1 + n
		case opEnd:
			return nil
		case opWaitBusy:
			if err := dev.waitBusy(cfg.BusyPolarity, defaultBusyTimeoutMS); err != nil {
				return err
			}
			i++
		default:
			if b > opCmdMax {
				return errBadBytecode(b)
			}
			if i+1 >= len(seq) {
				return errBadBytecode(b)
			}
			n := int(seq[i+1])
			if i+2+n > len(seq) {
				return errBadBytecode(b)
			}
			if err := dev.sendCommand(b); err != nil {
				return err
			}
			if n > 0 {
				if err := dev.sendDataBulk(seq[i+2 : i+2+n]); err != nil {
					return err
				}
			}
			i += 2 + n
		}
	}
	return nil
}

// readU16 reads one little-endian u16 at off, returning its value and
// the number of bytes consumed (always 2, on success).
func readU16(seq []byte, off int) (value, consumed int, err error) {
	if off+2 > len(seq) {
		return 0, 0, errBadBytecode(0)
	}
	return int(seq[off]) | int(seq[off+1])<<8, 2, nil
}

// readU16Pair reads two consecutive little-endian u16 values.
func readU16Pair(seq []byte, off int) (a, b, consumed int, err error) {
	a, n1, err := readU16(seq, off)
	if err != nil {
		return 0, 0, 0, err
	}
	b, n2, err := readU16(seq, off+n1)
	if err != nil {
		return 0, 0, 0, err
	}
	return a, b, n1 + n2, nil
}

// deviceSetCursor sends the cursor-set command pair appropriate to the
// SSD16xx controller family: x in byte units, y in pixel units.
func deviceSetCursor(dev *Device, x, y int) error {
	if err := dev.sendCommand(cmdSetCursorX); err != nil {
		return err
	}
	if err := dev.sendData(byte(x >> 3)); err != nil {
		return err
	}
	if err := dev.sendCommand(cmdSetCursorY); err != nil {
		return err
	}
	if err := dev.sendDataBulk([]byte{byte(y), byte(y >> 8)}); err != nil {
		return err
	}
	return nil
}

// deviceSetWindow sends the window-set command pair: x-range in byte
// units, y-range in pixel units, per SSD16xx RAM addressing.
func deviceSetWindow(dev *Device, x0, y0, x1, y1 int) error {
	if err := dev.sendCommand(cmdSetWindowX); err != nil {
		return err
	}
	if err := dev.sendDataBulk([]byte{byte(x0 >> 3), byte(x1 >> 3)}); err != nil {
		return err
	}
	if err := dev.sendCommand(cmdSetWindowY); err != nil {
		return err
	}
	if err := dev.sendDataBulk([]byte{byte(y0), byte(y0 >> 8), byte(y1), byte(y1 >> 8)}); err != nil {
		return err
	}
	return deviceSetCursor(dev, x0, y0)
}

// genericDisplay sends display_cmd, streams buf as bulk data, optionally
// sends display_cmd_2 with one data byte, then writes the refresh
// trigger and waits for the controller to finish.
func genericDisplay(dev *Device, cfg *ModelConfig, buf []byte) error {
	if err := dev.sendCommand(cfg.DisplayCmd); err != nil {
		return err
	}
	if err := dev.sendDataBulk(buf); err != nil {
		return err
	}
	if cfg.DisplayCmd2 != 0 {
		if err := dev.sendCommand(cfg.DisplayCmd2); err != nil {
			return err
		}
		if err := dev.sendData(0x00); err != nil {
			return err
		}
	}
	if err := dev.sendCommand(cmdRefreshTrigger); err != nil {
		return err
	}
	return dev.waitBusy(cfg.BusyPolarity, defaultBusyTimeoutMS)
}

// genericSleep sends sleep_cmd followed by sleep_data.
func genericSleep(dev *Device, cfg *ModelConfig) error {
	if err := dev.sendCommand(cfg.SleepCmd); err != nil {
		return err
	}
	return dev.sendData(cfg.SleepData)
}
