package chromawave

import "testing"

func TestPaletteIndexOfFound(t *testing.T) {
	p := NewPalette([]PaletteEntry{{"black", Black}, {"white", White}})
	i, err := p.IndexOf("white")
	if err != nil || i != 1 {
		t.Fatalf("IndexOf(white) = (%d, %v), want (1, nil)", i, err)
	}
}

func TestPaletteIndexOfMissing(t *testing.T) {
	p := NewPalette([]PaletteEntry{{"black", Black}})
	_, err := p.IndexOf("red")
	ce, ok := err.(*ChromaError)
	if !ok || ce.Kind != UnknownPaletteEntry {
		t.Fatalf("got %v, want UnknownPaletteEntry", err)
	}
}

func TestPaletteColorAtOutOfRange(t *testing.T) {
	p := NewPalette([]PaletteEntry{{"black", Black}})
	_, _, err := p.ColorAt(5)
	ce, ok := err.(*ChromaError)
	if !ok || ce.Kind != UnknownPaletteEntry {
		t.Fatalf("got %v, want UnknownPaletteEntry", err)
	}
}

func TestPaletteNearestColorExactMatch(t *testing.T) {
	p := NewPalette([]PaletteEntry{{"black", Black}, {"white", White}, {"red", Red}})
	if got := p.NearestColor(Red); got != "red" {
		t.Fatalf("NearestColor(red) = %q, want red", got)
	}
}

func TestPaletteNearestColorTiesBreakLow(t *testing.T) {
	// Two identical entries: the lower index must win.
	p := NewPalette([]PaletteEntry{{"a", Black}, {"b", Black}})
	if got := p.NearestColor(Black); got != "a" {
		t.Fatalf("NearestColor tie = %q, want a (lowest index)", got)
	}
}

func TestPaletteNearestColorIsMemoized(t *testing.T) {
	p := NewPalette([]PaletteEntry{{"black", Black}, {"white", White}})
	first := p.NearestColor(RGB(10, 10, 10))
	second := p.NearestColor(RGB(10, 10, 10))
	if first != second {
		t.Fatalf("memoized lookup changed: %q vs %q", first, second)
	}
}
