package buildinfo

import "testing"

func TestRegisterFeatureAppends(t *testing.T) {
	before := len(compiledFeatures)
	RegisterFeature("test: sentinel-feature")
	if len(compiledFeatures) != before+1 {
		t.Fatalf("compiledFeatures grew by %d, want 1", len(compiledFeatures)-before)
	}
}

func TestPrintBannerDoesNotPanic(t *testing.T) {
	PrintBanner("test-program") // no assertions on stdout content, just must not panic
}
