package chromawave

import "testing"

func TestLookupModelFound(t *testing.T) {
	cfg, err := LookupModel("epd_2in13_v4")
	if err != nil {
		t.Fatalf("LookupModel: %v", err)
	}
	if cfg.Width != 122 || cfg.Height != 250 {
		t.Fatalf("got %dx%d, want 122x250", cfg.Width, cfg.Height)
	}
}

func TestLookupModelNotFoundSuggestsClosestNames(t *testing.T) {
	_, err := LookupModel("epd_2in13_v5")
	ce, ok := err.(*ChromaError)
	if !ok || ce.Kind != ModelNotFound {
		t.Fatalf("got %v, want ModelNotFound", err)
	}
	if len(ce.Suggestions) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	found := false
	for _, s := range ce.Suggestions {
		if s == "epd_2in13_v4" || s == "epd_2in13_v3" {
			found = true
		}
	}
	if !found {
		t.Fatalf("suggestions = %v, expected a 2in13 variant", ce.Suggestions)
	}
}

func TestLevenshteinIdenticalStrings(t *testing.T) {
	if d := levenshtein("epd_2in13_v4", "epd_2in13_v4"); d != 0 {
		t.Fatalf("levenshtein(same, same) = %d, want 0", d)
	}
}

func TestLevenshteinSingleEdit(t *testing.T) {
	if d := levenshtein("cat", "cats"); d != 1 {
		t.Fatalf("levenshtein(cat, cats) = %d, want 1", d)
	}
	if d := levenshtein("cat", "bat"); d != 1 {
		t.Fatalf("levenshtein(cat, bat) = %d, want 1", d)
	}
}

func TestDispatchShowDualUsesOverrideWhenPresent(t *testing.T) {
	hal := newTestHAL()
	hal.busyScript = []bool{false}
	cfg := &ModelConfig{Name: "epd_4in2b_v2", BusyPolarity: ActiveHigh, DisplayCmd: 0x10, DisplayCmd2: 0x13}
	dev := &Device{model: cfg, hal: hal}

	if err := dispatchShowDual(dev, cfg, []byte{0xAA}, []byte{0xBB}); err != nil {
		t.Fatalf("dispatchShowDual: %v", err)
	}
	if len(hal.commands) < 3 {
		t.Fatalf("expected display_cmd, display_cmd_2, refresh trigger; got %v", hal.commands)
	}
}

func TestDispatchShowDualRejectsModelWithoutHook(t *testing.T) {
	hal := newTestHAL()
	cfg := testModel()
	dev := &Device{model: cfg, hal: hal}

	err := dispatchShowDual(dev, cfg, nil, nil)
	ce, ok := err.(*ChromaError)
	if !ok || ce.Kind != UnsupportedFormat {
		t.Fatalf("got %v, want UnsupportedFormat", err)
	}
}
