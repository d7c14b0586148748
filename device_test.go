package chromawave

import (
	"testing"
	"time"
)

// testHAL is a minimal HAL fake local to this test file, independent
// of the headless-build mockHAL, so these tests build and run under
// either build tag.
type testHAL struct {
	pins       map[GPIOPin]bool
	busyScript []bool
	busyIdx    int
	commands   []byte
	dataRuns   [][]byte
	resets     int
}

func newTestHAL() *testHAL {
	return &testHAL{pins: make(map[GPIOPin]bool)}
}

func (h *testHAL) Init() error  { return nil }
func (h *testHAL) Close() error { return nil }

func (h *testHAL) SetPin(pin GPIOPin, high bool) error {
	h.pins[pin] = high
	if pin == PinReset && !high {
		h.resets++
	}
	return nil
}

func (h *testHAL) ReadPin(pin GPIOPin) (bool, error) {
	if pin != PinBusy || len(h.busyScript) == 0 {
		return h.pins[pin], nil
	}
	idx := h.busyIdx
	if idx >= len(h.busyScript) {
		idx = len(h.busyScript) - 1
	} else {
		h.busyIdx++
	}
	return h.busyScript[idx], nil
}

func (h *testHAL) SPIWrite(data []byte) error {
	cp := append([]byte(nil), data...)
	if h.pins[PinDC] {
		h.dataRuns = append(h.dataRuns, cp)
	} else if len(cp) == 1 {
		h.commands = append(h.commands, cp[0])
	}
	return nil
}

func (h *testHAL) Sleep(d time.Duration) {}

func testModel() *ModelConfig {
	return &ModelConfig{
		Name:         "test_model",
		Width:        8,
		Height:       8,
		Format:       Mono,
		BusyPolarity: ActiveHigh,
		ResetTiming:  ResetTiming{PreMS: 1, LowMS: 1, PostMS: 1},
		DisplayCmd:   0x24,
		SleepCmd:     0x10,
		SleepData:    0x01,
	}
}

func TestDeviceLoggerDefaultsToNoOp(t *testing.T) {
	hal := newTestHAL()
	dev := &Device{model: testModel(), hal: hal}
	if err := dev.sendCommand(0x24); err != nil { // must not panic with Logger unset
		t.Fatalf("sendCommand: %v", err)
	}
}

func TestDeviceLoggerReceivesCommandBytes(t *testing.T) {
	hal := newTestHAL()
	dev := &Device{model: testModel(), hal: hal}
	var lines []string
	dev.Logger = func(format string, args ...any) {
		lines = append(lines, format)
	}
	if err := dev.sendCommand(0x24); err != nil {
		t.Fatalf("sendCommand: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %d", len(lines))
	}
}

func TestDeviceSendCommandAndData(t *testing.T) {
	hal := newTestHAL()
	dev := &Device{model: testModel(), hal: hal}

	if err := dev.sendCommand(0x24); err != nil {
		t.Fatalf("sendCommand: %v", err)
	}
	if err := dev.sendDataBulk([]byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("sendDataBulk: %v", err)
	}

	if len(hal.commands) != 1 || hal.commands[0] != 0x24 {
		t.Fatalf("commands = %v, want [0x24]", hal.commands)
	}
	if len(hal.dataRuns) != 1 || hal.dataRuns[0][0] != 0xAA || hal.dataRuns[0][1] != 0xBB {
		t.Fatalf("dataRuns = %v, want [[0xAA 0xBB]]", hal.dataRuns)
	}
}

func TestDeviceResetDrivesThreePhases(t *testing.T) {
	hal := newTestHAL()
	dev := &Device{model: testModel(), hal: hal}

	if err := dev.reset(ResetTiming{PreMS: 1, LowMS: 1, PostMS: 1}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if hal.resets != 1 {
		t.Fatalf("resets = %d, want 1", hal.resets)
	}
	if !hal.pins[PinReset] {
		t.Fatalf("reset pin should end high")
	}
}

func TestDeviceWaitBusyReady(t *testing.T) {
	hal := newTestHAL()
	hal.busyScript = []bool{true, true, false}
	dev := &Device{model: testModel(), hal: hal}

	if err := dev.waitBusy(ActiveHigh, 1000); err != nil {
		t.Fatalf("waitBusy: %v", err)
	}
}

func TestDeviceWaitBusyTimeout(t *testing.T) {
	hal := newTestHAL()
	hal.busyScript = []bool{true, true, true, true, true}
	dev := &Device{model: testModel(), hal: hal}
	dev.currentMode = ModeFull
	dev.modeValid = true

	err := dev.waitBusy(ActiveHigh, 5)
	if err == nil {
		t.Fatal("expected BusyTimeout, got nil")
	}
	ce, ok := err.(*ChromaError)
	if !ok || ce.Kind != BusyTimeout {
		t.Fatalf("got %v, want BusyTimeout", err)
	}
	if dev.modeValid {
		t.Fatal("BusyTimeout must invalidate the mode cache so the next Init re-inits")
	}
}

func TestDeviceWaitBusyCancelled(t *testing.T) {
	hal := newTestHAL()
	hal.busyScript = []bool{true, true, true, true, true, true, true, true}
	dev := &Device{model: testModel(), hal: hal}
	dev.currentMode = ModeFull
	dev.modeValid = true
	dev.Cancel()

	err := dev.waitBusy(ActiveHigh, 60000)
	ce, ok := err.(*ChromaError)
	if !ok || ce.Kind != Cancelled {
		t.Fatalf("got %v, want Cancelled", err)
	}
	if dev.modeValid {
		t.Fatal("Cancelled must invalidate the mode cache so the next Init re-inits")
	}
}

func TestDeviceInitFailureInvalidatesModeCache(t *testing.T) {
	hal := newTestHAL()
	model := testModel()
	model.InitSequence = []byte{0x01} // a command byte with a truncated length prefix: BadBytecode
	dev := &Device{model: model, hal: hal}
	// A valid cache entry for a different mode, so Init(ModeFull) is not
	// a cache hit and actually runs the malformed sequence.
	dev.currentMode = ModeFast
	dev.modeValid = true

	if err := dev.Init(ModeFull); err == nil {
		t.Fatal("expected an error from a malformed init sequence")
	}
	if dev.modeValid {
		t.Fatal("a failed Init must invalidate the mode cache")
	}
}

func TestDeviceClosedRejectsOperations(t *testing.T) {
	hal := newTestHAL()
	dev := &Device{model: testModel(), hal: hal}
	if err := dev.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := dev.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got: %v", err)
	}

	err := dev.Show([]byte{0})
	ce, ok := err.(*ChromaError)
	if !ok || ce.Kind != DeviceClosed {
		t.Fatalf("got %v, want DeviceClosed", err)
	}
}
