// driver_table.go - Tier 1 static model config table (§3.1, §6.1)
//
// Generated by the (out-of-scope) driver extraction toolchain from
// vendor C sources. This file holds a representative subset of the
// ~70 supported SKUs; the binary shape each row encodes is documented
// in full at §6.1. Hand-editing this file defeats the point of the
// extraction step — treat it as generated output.

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

// Capability is a bit in a ModelConfig's capability bitmask.
type Capability uint32

const (
	CapPartialRefresh Capability = 1 << iota
	CapFastRefresh
	CapGrayscaleMode
	CapDualBuffer
	CapRegionalRefresh
)

// ResetTiming is the three-phase HW_RESET pulse width for one model.
type ResetTiming struct {
	PreMS, LowMS, PostMS int
}

// ModelConfig is one immutable Tier 1 row: everything the generic
// interpreter needs to drive a model with no per-model Go code.
type ModelConfig struct {
	Name   string
	Width  int
	Height int
	Format *PixelFormat

	BusyPolarity BusyPolarity
	ResetTiming  ResetTiming

	DisplayCmd  byte
	DisplayCmd2 byte

	InitSequence        []byte
	InitFastSequence    []byte
	InitPartialSequence []byte

	Capabilities Capability

	SleepCmd  byte
	SleepData byte
}

// HasCapability reports whether this model exposes cap.
func (c *ModelConfig) HasCapability(cap Capability) bool {
	return c.Capabilities&cap != 0
}

// sequenceFor selects the bytecode sequence for mode; ModeNone and any
// mode this model has no sequence for yield nil (a no-op init).
func (c *ModelConfig) sequenceFor(mode InitMode) []byte {
	switch mode {
	case ModeFull, ModeGrayscale:
		return c.InitSequence
	case ModeFast:
		return c.InitFastSequence
	case ModePartial:
		return c.InitPartialSequence
	default:
		return nil
	}
}

// --- bytecode assembly helpers (generation-time only) ---

func bcCmd(cmd byte, data ...byte) []byte {
	out := make([]byte, 0, 2+len(data))
	out = append(out, cmd, byte(len(data)))
	return append(out, data...)
}

func bcHWReset() []byte { return []byte{byte(opHWReset)} }
func bcSWReset() []byte { return []byte{byte(opSWReset)} }
func bcWaitBusy() []byte { return []byte{byte(opWaitBusy)} }
func bcEnd() []byte     { return []byte{byte(opEnd)} }

func bcDelay(ms uint16) []byte {
	return []byte{byte(opDelayMS), byte(ms), byte(ms >> 8)}
}

func bcWindow(x0, y0, x1, y1 uint16) []byte {
	return []byte{
		byte(opSetWindow),
		byte(x0), byte(x0 >> 8), byte(y0), byte(y0 >> 8),
		byte(x1), byte(x1 >> 8), byte(y1), byte(y1 >> 8),
	}
}

func bcCursor(x, y uint16) []byte {
	return []byte{byte(opSetCursor), byte(x), byte(x >> 8), byte(y), byte(y >> 8)}
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// driverTable is the Tier 1 registry: a representative subset of the
// ~70 supported SKUs, covering every pixel format and every capability
// bit at least once.
var driverTable = []*ModelConfig{
	{
		Name:         "epd_2in13_v4",
		Width:        122,
		Height:       250,
		Format:       Mono,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x24,
		InitSequence: concatBytes(
			bcHWReset(),
			bcSWReset(),
			bcCmd(0x01, 0xF9, 0x00, 0x00), // driver output control
			bcCmd(0x11, 0x03),             // data entry mode
			bcWindow(0, 0, 121, 249),
			bcCursor(0, 0),
			bcCmd(0x3C, 0x05), // border waveform
			bcWaitBusy(),
			bcEnd(),
		),
		InitPartialSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x3C, 0x80),
			bcEnd(),
		),
		Capabilities: CapPartialRefresh,
		SleepCmd:     0x10,
		SleepData:    0x01,
	},
	{
		Name:         "epd_2in9_v2",
		Width:        128,
		Height:       296,
		Format:       Mono,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x24,
		InitSequence: concatBytes(
			bcHWReset(),
			bcSWReset(),
			bcCmd(0x01, 0x27, 0x01, 0x00),
			bcCmd(0x11, 0x03),
			bcWindow(0, 0, 127, 295),
			bcCursor(0, 0),
			bcWaitBusy(),
			bcEnd(),
		),
		InitPartialSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x3C, 0x80),
			bcEnd(),
		),
		Capabilities: CapPartialRefresh,
		SleepCmd:     0x10,
		SleepData:    0x01,
	},
	{
		Name:         "epd_1in54_v2",
		Width:        200,
		Height:       200,
		Format:       Mono,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x24,
		InitSequence: concatBytes(
			bcHWReset(),
			bcSWReset(),
			bcCmd(0x01, 0xC7, 0x00, 0x00),
			bcCmd(0x11, 0x03),
			bcWindow(0, 0, 199, 199),
			bcCursor(0, 0),
			bcWaitBusy(),
			bcEnd(),
		),
		InitPartialSequence: concatBytes(bcHWReset(), bcCmd(0x3C, 0x80), bcEnd()),
		Capabilities:        CapPartialRefresh,
		SleepCmd:            0x10,
		SleepData:           0x01,
	},
	{
		Name:         "epd_7in5_v2",
		Width:        800,
		Height:       480,
		Format:       Mono,
		BusyPolarity: ActiveLow,
		ResetTiming:  ResetTiming{PreMS: 200, LowMS: 2, PostMS: 200},
		DisplayCmd:   0x13,
		InitSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x01, 0x07, 0x07, 0x3F, 0x3F),
			bcCmd(0x06, 0x17, 0x17, 0x28, 0x17),
			bcCmd(0x04),
			bcWaitBusy(),
			bcCmd(0x00, 0x1F),
			bcCmd(0x61, 0x03, 0x20, 0x01, 0xE0),
			bcCmd(0x15, 0x00),
			bcCmd(0x50, 0x10, 0x07),
			bcCmd(0x60, 0x22),
			bcEnd(),
		),
		Capabilities: CapFastRefresh,
		SleepCmd:     0x02,
		SleepData:    0x00,
	},
	{
		Name:         "epd_2in7",
		Width:        176,
		Height:       264,
		Format:       Gray4,
		BusyPolarity: ActiveLow,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x13,
		InitSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x01, 0x6F, 0x01, 0x00),
			bcCmd(0x06, 0x17, 0x17, 0x17),
			bcCmd(0x04),
			bcWaitBusy(),
			bcCmd(0x00, 0xBF, 0x0D),
			bcCmd(0x30, 0x3A),
			bcCmd(0x61, 0xB0, 0x01, 0x08),
			bcCmd(0x82, 0x12),
			bcEnd(),
		),
		Capabilities: CapGrayscaleMode,
		SleepCmd:     0x02,
		SleepData:    0x00,
	},
	{
		Name:         "epd_4in2b_v2",
		Width:        400,
		Height:       300,
		Format:       Color4,
		BusyPolarity: ActiveLow,
		ResetTiming:  ResetTiming{PreMS: 200, LowMS: 2, PostMS: 200},
		DisplayCmd:   0x10,
		DisplayCmd2:  0x13,
		InitSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x01, 0x2B, 0x01, 0x00),
			bcCmd(0x06, 0x17, 0x17, 0x17),
			bcCmd(0x04),
			bcWaitBusy(),
			bcCmd(0x00, 0x0F, 0x89),
			bcCmd(0x61, 0x90, 0x01, 0x2C),
			bcEnd(),
		),
		Capabilities: CapDualBuffer,
		SleepCmd:     0x02,
		SleepData:    0x00,
	},
	{
		Name:         "epd_5in65f",
		Width:        600,
		Height:       448,
		Format:       Color7,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x10,
		InitSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x00, 0xEF, 0x08),
			bcCmd(0x01, 0x37, 0x00, 0x23, 0x23),
			bcCmd(0x03, 0x00),
			bcCmd(0x06, 0xC7, 0xC7, 0x1D),
			bcCmd(0x30, 0x3C),
			bcCmd(0x41, 0x00),
			bcCmd(0x50, 0x37),
			bcCmd(0x60, 0x22),
			bcCmd(0x61, 0x02, 0x58, 0x01, 0xC0),
			bcCmd(0xE3, 0xAA),
			bcDelay(100),
			bcCmd(0x50, 0x37),
			bcEnd(),
		),
		Capabilities: 0,
		SleepCmd:     0x07,
		SleepData:    0xA5,
	},
	{
		Name:         "epd_2in13b_v4",
		Width:        122,
		Height:       250,
		Format:       Color4,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x24,
		DisplayCmd2:  0x26,
		InitSequence: concatBytes(
			bcHWReset(),
			bcSWReset(),
			bcCmd(0x01, 0xF9, 0x00, 0x00),
			bcCmd(0x11, 0x03),
			bcWindow(0, 0, 121, 249),
			bcCursor(0, 0),
			bcWaitBusy(),
			bcEnd(),
		),
		Capabilities: CapDualBuffer,
		SleepCmd:     0x10,
		SleepData:    0x01,
	},
	{
		Name:         "epd_3in7",
		Width:        280,
		Height:       480,
		Format:       Gray4,
		BusyPolarity: ActiveLow,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x13,
		InitSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x12),
			bcWaitBusy(),
			bcCmd(0x0C, 0xAE, 0xC7, 0xC3, 0xC0, 0x40),
			bcCmd(0x01, 0xDF, 0x01, 0x00),
			bcCmd(0x11, 0x03),
			bcEnd(),
		),
		InitFastSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x12),
			bcWaitBusy(),
			bcEnd(),
		),
		Capabilities: CapFastRefresh | CapGrayscaleMode,
		SleepCmd:     0x10,
		SleepData:    0x01,
	},
	{
		Name:         "epd_2in13_v3",
		Width:        122,
		Height:       250,
		Format:       Mono,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x24,
		InitSequence: concatBytes(
			bcHWReset(),
			bcSWReset(),
			bcCmd(0x74, 0x54),
			bcCmd(0x7E, 0x3B),
			bcCmd(0x01, 0xF9, 0x00, 0x00),
			bcCmd(0x11, 0x03),
			bcWindow(0, 0, 121, 249),
			bcCursor(0, 0),
			bcWaitBusy(),
			bcEnd(),
		),
		InitPartialSequence: concatBytes(bcHWReset(), bcCmd(0x3C, 0x80), bcEnd()),
		Capabilities:        CapPartialRefresh | CapRegionalRefresh,
		SleepCmd:            0x10,
		SleepData:           0x01,
	},
	{
		Name:         "epd_5in83_v2",
		Width:        648,
		Height:       480,
		Format:       Mono,
		BusyPolarity: ActiveLow,
		ResetTiming:  ResetTiming{PreMS: 200, LowMS: 2, PostMS: 200},
		DisplayCmd:   0x24,
		InitSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x01, 0x07, 0x07, 0x3F, 0x3F),
			bcCmd(0x04),
			bcWaitBusy(),
			bcCmd(0x00, 0x1F),
			bcCmd(0x61, 0x02, 0x88, 0x01, 0xE0),
			bcCmd(0x15, 0x00),
			bcCmd(0x50, 0x10, 0x00),
			bcCmd(0x60, 0x22),
			bcEnd(),
		),
		Capabilities: CapRegionalRefresh,
		SleepCmd:     0x02,
		SleepData:    0x00,
	},
	{
		Name:         "epd_1in02d",
		Width:        80,
		Height:       128,
		Format:       Mono,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 20, LowMS: 2, PostMS: 20},
		DisplayCmd:   0x13,
		InitSequence: concatBytes(
			bcHWReset(),
			bcCmd(0x01, 0x9F, 0x00, 0x00),
			bcCmd(0x11, 0x03),
			bcWindow(0, 0, 79, 127),
			bcCursor(0, 0),
			bcWaitBusy(),
			bcEnd(),
		),
		Capabilities: 0,
		SleepCmd:     0x10,
		SleepData:    0x01,
	},
}
