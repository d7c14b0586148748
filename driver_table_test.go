package chromawave

import "testing"

func TestHasCapabilityTrueAndFalse(t *testing.T) {
	cfg := &ModelConfig{Capabilities: CapPartialRefresh | CapFastRefresh}
	if !cfg.HasCapability(CapPartialRefresh) {
		t.Fatal("expected CapPartialRefresh to be set")
	}
	if cfg.HasCapability(CapDualBuffer) {
		t.Fatal("CapDualBuffer should not be set")
	}
}

func TestSequenceForModes(t *testing.T) {
	cfg := &ModelConfig{
		InitSequence:        []byte{1},
		InitFastSequence:    []byte{2},
		InitPartialSequence: []byte{3},
	}
	cases := []struct {
		mode InitMode
		want byte
	}{
		{ModeFull, 1},
		{ModeGrayscale, 1},
		{ModeFast, 2},
		{ModePartial, 3},
	}
	for _, tc := range cases {
		got := cfg.sequenceFor(tc.mode)
		if len(got) != 1 || got[0] != tc.want {
			t.Errorf("sequenceFor(%v) = %v, want [%d]", tc.mode, got, tc.want)
		}
	}
	if got := cfg.sequenceFor(ModeNone); got != nil {
		t.Errorf("sequenceFor(ModeNone) = %v, want nil", got)
	}
}

func TestDriverTableEntriesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, cfg := range driverTable {
		if cfg.Name == "" {
			t.Fatal("found a driverTable entry with an empty Name")
		}
		if seen[cfg.Name] {
			t.Fatalf("duplicate model name in driverTable: %s", cfg.Name)
		}
		seen[cfg.Name] = true
		if cfg.Width <= 0 || cfg.Height <= 0 {
			t.Errorf("%s: non-positive dimensions %dx%d", cfg.Name, cfg.Width, cfg.Height)
		}
		if cfg.Format == nil {
			t.Errorf("%s: nil Format", cfg.Name)
		}
		if len(cfg.InitSequence) == 0 {
			t.Errorf("%s: empty InitSequence", cfg.Name)
		}
	}
}

func TestDriverTableCoversAllFormats(t *testing.T) {
	seen := make(map[*PixelFormat]bool)
	for _, cfg := range driverTable {
		seen[cfg.Format] = true
	}
	for _, f := range []*PixelFormat{Mono, Gray4, Color4, Color7} {
		if !seen[f] {
			t.Errorf("no driverTable entry uses format %s", f.Name)
		}
	}
}

func TestBcCmdEncodesLengthPrefix(t *testing.T) {
	got := bcCmd(0x11, 0x03, 0x04)
	want := []byte{0x11, 0x02, 0x03, 0x04}
	if len(got) != len(want) {
		t.Fatalf("bcCmd length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bcCmd = %v, want %v", got, want)
		}
	}
}

func TestConcatBytes(t *testing.T) {
	got := concatBytes([]byte{1, 2}, []byte{3}, nil, []byte{4})
	want := []byte{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("concatBytes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("concatBytes = %v, want %v", got, want)
		}
	}
}
