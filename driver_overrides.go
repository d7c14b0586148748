// driver_overrides.go - Tier 2 per-model function hook overrides (§3.1, §4.5)

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

// DriverEntry holds optional per-model function hooks for the minority
// of controllers whose refresh workflow cannot be expressed as pure
// bytecode data: LUT selection, power cycling per refresh, dual-
// polarity busy waits, in-place buffer inversion. A nil CustomInit or
// CustomDisplay falls back to the generic interpreter, and nil
// Pre/PostDisplay hooks are skipped. CustomDisplayDual and
// CustomDisplayRegion have no generic fallback: without them, ShowDual
// and ShowRegion fail with UnsupportedFormat.
type DriverEntry struct {
	CustomInit         func(dev *Device, cfg *ModelConfig, mode InitMode) error
	CustomDisplay      func(dev *Device, cfg *ModelConfig, buf []byte) error
	CustomDisplayDual  func(dev *Device, cfg *ModelConfig, black, red []byte) error
	CustomDisplayRegion func(dev *Device, cfg *ModelConfig, buf []byte, x, y, w, h int) error
	PreDisplay         func(dev *Device, cfg *ModelConfig) error
	PostDisplay        func(dev *Device, cfg *ModelConfig) error
}

// driverOverrides is the Tier 2 table, keyed by model name. Models with
// no entry here are driven entirely by the generic interpreter over
// their Tier 1 bytecode.
var driverOverrides = map[string]*DriverEntry{
	"epd_2in7": {
		// This controller requires an explicit LUT register load before
		// the first grayscale display; the generic interpreter only
		// knows how to stream command/data pairs, not select among
		// waveform tables, so the LUT write lives here instead of in
		// the init bytecode.
		CustomInit: func(dev *Device, cfg *ModelConfig, mode InitMode) error {
			if err := genericInit(dev, cfg, mode); err != nil {
				return err
			}
			if mode != ModeGrayscale {
				return nil
			}
			return dev.sendCommandData(0x32, grayscale4LUT)
		},
	},
	"epd_4in2b_v2": {
		// Dual-buffer display_cmd (0x10, black plane) and display_cmd_2
		// (0x13, red plane) must each be followed by their own data
		// stream and the refresh trigger fires only once, after both
		// planes are written — the generic single-buffer genericDisplay
		// cannot express that ordering.
		CustomDisplayDual: func(dev *Device, cfg *ModelConfig, black, red []byte) error {
			if err := dev.sendCommand(cfg.DisplayCmd); err != nil {
				return err
			}
			if err := dev.sendDataBulk(black); err != nil {
				return err
			}
			if err := dev.sendCommand(cfg.DisplayCmd2); err != nil {
				return err
			}
			if err := dev.sendDataBulk(red); err != nil {
				return err
			}
			if err := dev.sendCommand(cmdRefreshTrigger); err != nil {
				return err
			}
			return dev.waitBusy(cfg.BusyPolarity, defaultBusyTimeoutMS)
		},
	},
	"epd_5in83_v2": {
		// Large-panel regional refresh needs a settle delay between
		// the window write and the data stream that the bytecode
		// interpreter has no opcode for.
		CustomDisplayRegion: func(dev *Device, cfg *ModelConfig, buf []byte, x, y, w, h int) error {
			if err := deviceSetWindow(dev, x, y, x+w-1, y+h-1); err != nil {
				return err
			}
			dev.delay(30)
			if err := dev.sendCommand(cfg.DisplayCmd); err != nil {
				return err
			}
			if err := dev.sendDataBulk(buf); err != nil {
				return err
			}
			if err := dev.sendCommand(cmdRefreshTrigger); err != nil {
				return err
			}
			return dev.waitBusy(cfg.BusyPolarity, defaultBusyTimeoutMS)
		},
	},
}

// grayscale4LUT is the 4-level waveform table the epd_2in7 controller
// needs loaded before it will honor a gray4 framebuffer.
var grayscale4LUT = []byte{
	0x02, 0x02, 0x01, 0x11, 0x12, 0x12, 0x22, 0x22,
	0x66, 0x69, 0x69, 0x59, 0x58, 0x99, 0x99, 0x88,
	0x00, 0x00, 0x00, 0x00, 0xF8, 0xB4, 0x13, 0x51,
	0x35, 0x51, 0x51, 0x19, 0x01, 0x00,
}
