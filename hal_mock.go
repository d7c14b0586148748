//go:build headless

package chromawave

import (
	"time"

	"github.com/jtp184/chromawave/internal/buildinfo"
)

func init() {
	buildinfo.RegisterFeature("hal: mock (headless)")
}

// mockHAL is the no-op HAL: it records every call instead of touching
// real hardware, so Device and the driver registry can be exercised
// without a host SPI bus. Compiles on any platform.
type mockHAL struct {
	closed bool
	pins   map[GPIOPin]bool

	// BusyScript, when non-empty, is the sequence of levels ReadPin
	// returns for PinBusy on successive calls; the last entry repeats
	// once exhausted. Tests set this to simulate a busy pin going idle
	// after N polls.
	BusyScript []bool
	busyIdx    int

	Commands  []byte
	DataBytes [][]byte
	Resets    int
	Sleeps    []time.Duration
}

func newMockHAL() *mockHAL {
	return &mockHAL{pins: make(map[GPIOPin]bool)}
}

// PeriphHALConfig has the same fields as the real build's config type,
// so callers compile under either build tag; the headless build never
// reads it.
type PeriphHALConfig struct {
	SPIPort  string
	ResetPin string
	DCPin    string
	CSPin    string
	BusyPin  string
}

// NewDefaultHAL builds this build's HAL implementation. The headless
// build ignores cfg entirely and returns a recording mockHAL so cmd/
// and tests work on any platform without real SPI/GPIO hardware.
func NewDefaultHAL(cfg PeriphHALConfig) HAL {
	return newMockHAL()
}

func (h *mockHAL) Init() error  { return nil }
func (h *mockHAL) Close() error { h.closed = true; return nil }

func (h *mockHAL) SetPin(pin GPIOPin, high bool) error {
	h.pins[pin] = high
	if pin == PinReset && !high {
		h.Resets++
	}
	return nil
}

func (h *mockHAL) ReadPin(pin GPIOPin) (bool, error) {
	if pin != PinBusy || len(h.BusyScript) == 0 {
		return h.pins[pin], nil
	}
	idx := h.busyIdx
	if idx >= len(h.BusyScript) {
		idx = len(h.BusyScript) - 1
	} else {
		h.busyIdx++
	}
	return h.BusyScript[idx], nil
}

func (h *mockHAL) SPIWrite(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	if h.pins[PinDC] {
		h.DataBytes = append(h.DataBytes, cp)
	} else if len(cp) == 1 {
		h.Commands = append(h.Commands, cp[0])
	}
	return nil
}

func (h *mockHAL) Sleep(d time.Duration) {
	h.Sleeps = append(h.Sleeps, d)
}
