package chromawave

import "testing"

func TestEpd2in7CustomInitLoadsLUTOnlyInGrayscaleMode(t *testing.T) {
	entry := driverOverrides["epd_2in7"]
	if entry == nil || entry.CustomInit == nil {
		t.Fatal("expected epd_2in7 to have a CustomInit override")
	}

	cfg := &ModelConfig{Name: "epd_2in7", BusyPolarity: ActiveLow, InitSequence: []byte{byte(opEnd)}}
	hal := newTestHAL()
	hal.busyScript = []bool{true} // ActiveLow idle == high
	dev := &Device{model: cfg, hal: hal}

	if err := entry.CustomInit(dev, cfg, ModeFull); err != nil {
		t.Fatalf("CustomInit(ModeFull): %v", err)
	}
	if len(hal.commands) != 0 {
		t.Fatalf("ModeFull init should not write the grayscale LUT, got commands %v", hal.commands)
	}
}

func TestEpd2in7CustomInitGrayscaleWritesLUT(t *testing.T) {
	entry := driverOverrides["epd_2in7"]
	cfg := &ModelConfig{Name: "epd_2in7", BusyPolarity: ActiveLow, InitSequence: []byte{byte(opEnd)}}
	hal := newTestHAL()
	hal.busyScript = []bool{true}
	dev := &Device{model: cfg, hal: hal}

	if err := entry.CustomInit(dev, cfg, ModeGrayscale); err != nil {
		t.Fatalf("CustomInit(ModeGrayscale): %v", err)
	}
	found := false
	for _, c := range hal.commands {
		if c == 0x32 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the LUT command 0x32 among commands %v", hal.commands)
	}
}

func TestEpd4in2bV2CustomDisplayDualWritesBothPlanes(t *testing.T) {
	entry := driverOverrides["epd_4in2b_v2"]
	if entry == nil || entry.CustomDisplayDual == nil {
		t.Fatal("expected epd_4in2b_v2 to have a CustomDisplayDual override")
	}

	cfg := &ModelConfig{Name: "epd_4in2b_v2", BusyPolarity: ActiveLow, DisplayCmd: 0x10, DisplayCmd2: 0x13}
	hal := newTestHAL()
	hal.busyScript = []bool{true}
	dev := &Device{model: cfg, hal: hal}

	black := []byte{0xAA, 0xAA}
	red := []byte{0xBB, 0xBB}
	if err := entry.CustomDisplayDual(dev, cfg, black, red); err != nil {
		t.Fatalf("CustomDisplayDual: %v", err)
	}

	wantCmds := []byte{0x10, 0x13, cmdRefreshTrigger}
	if len(hal.commands) != len(wantCmds) {
		t.Fatalf("commands = %v, want %v", hal.commands, wantCmds)
	}
	for i, w := range wantCmds {
		if hal.commands[i] != w {
			t.Fatalf("commands = %v, want %v", hal.commands, wantCmds)
		}
	}
	if len(hal.dataRuns) != 2 {
		t.Fatalf("expected 2 data runs (black, red), got %d", len(hal.dataRuns))
	}
}

func TestEpd5in83V2CustomDisplayRegionSequence(t *testing.T) {
	entry := driverOverrides["epd_5in83_v2"]
	if entry == nil || entry.CustomDisplayRegion == nil {
		t.Fatal("expected epd_5in83_v2 to have a CustomDisplayRegion override")
	}

	cfg := &ModelConfig{Name: "epd_5in83_v2", BusyPolarity: ActiveLow, DisplayCmd: 0x24}
	hal := newTestHAL()
	hal.busyScript = []bool{true}
	dev := &Device{model: cfg, hal: hal}

	if err := entry.CustomDisplayRegion(dev, cfg, []byte{0x00}, 0, 0, 8, 8); err != nil {
		t.Fatalf("CustomDisplayRegion: %v", err)
	}
	if len(hal.commands) == 0 {
		t.Fatal("expected at least one command byte sent")
	}
	last := hal.commands[len(hal.commands)-1]
	if last != cmdRefreshTrigger {
		t.Fatalf("last command = 0x%02X, want refresh trigger 0x%02X", last, cmdRefreshTrigger)
	}
}
