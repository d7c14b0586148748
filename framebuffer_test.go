package chromawave

import "testing"

func TestFramebufferSetGetPixelMono(t *testing.T) {
	fb, err := NewFramebuffer(9, 2, Mono)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	if err := fb.SetPixel(8, 0, "black"); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	name, ok := fb.GetPixel(8, 0)
	if !ok || name != "black" {
		t.Fatalf("GetPixel(8,0) = (%q, %v), want (black, true)", name, ok)
	}
	// The neighbouring pixel (7,0), in the preceding byte, must be
	// untouched; a zeroed buffer decodes to palette index 0, i.e. "black".
	if name, _ := fb.GetPixel(7, 0); name != "black" {
		t.Fatalf("GetPixel(7,0) = %q, want black (untouched, zeroed bit)", name)
	}
}

func TestFramebufferSetPixelUnknownName(t *testing.T) {
	fb, _ := NewFramebuffer(4, 4, Mono)
	if err := fb.SetPixel(0, 0, "nonexistent"); err == nil {
		t.Fatal("expected UnknownPaletteEntry for unrecognized name")
	}
}

func TestFramebufferOutOfBoundsSetIsNoOp(t *testing.T) {
	fb, _ := NewFramebuffer(4, 4, Mono)
	if err := fb.SetPixel(100, 100, "black"); err != nil {
		t.Fatalf("out-of-bounds SetPixel should be a nil-error no-op, got %v", err)
	}
}

func TestFramebufferGetPixelOutOfBounds(t *testing.T) {
	fb, _ := NewFramebuffer(4, 4, Mono)
	if _, ok := fb.GetPixel(-1, 0); ok {
		t.Fatal("expected GetPixel(-1,0) to report false")
	}
}

func TestFramebufferClearByIndex(t *testing.T) {
	fb, _ := NewFramebuffer(8, 1, Mono)
	if err := fb.Clear(1); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	name, _ := fb.GetPixel(3, 0)
	if name != "white" {
		t.Fatalf("GetPixel(3,0) after Clear(1) = %q, want white", name)
	}
}

func TestFramebufferClearNameRoundTrip(t *testing.T) {
	fb, _ := NewFramebuffer(8, 1, Color7)
	if err := fb.ClearName("blue"); err != nil {
		t.Fatalf("ClearName: %v", err)
	}
	name, _ := fb.GetPixel(5, 0)
	if name != "blue" {
		t.Fatalf("GetPixel(5,0) after ClearName(blue) = %q, want blue", name)
	}
}

func TestFramebufferCopyIsIndependent(t *testing.T) {
	fb, _ := NewFramebuffer(8, 1, Mono)
	fb.SetPixel(0, 0, "black")
	cp := fb.Copy()
	fb.SetPixel(0, 0, "white")

	name, _ := cp.GetPixel(0, 0)
	if name != "black" {
		t.Fatalf("copy mutated alongside original: GetPixel(0,0) = %q, want black", name)
	}
}

func TestFramebufferEquals(t *testing.T) {
	a, _ := NewFramebuffer(8, 1, Mono)
	b, _ := NewFramebuffer(8, 1, Mono)
	if !a.Equals(b) {
		t.Fatal("two freshly-allocated framebuffers of the same shape should be equal")
	}
	a.SetPixel(0, 0, "white")
	if a.Equals(b) {
		t.Fatal("framebuffers with different content should not be equal")
	}
}

func TestFramebufferEqualsDifferentFormat(t *testing.T) {
	a, _ := NewFramebuffer(8, 1, Mono)
	b, _ := NewFramebuffer(8, 1, Color7)
	if a.Equals(b) {
		t.Fatal("framebuffers with different formats should not be equal")
	}
}

func TestFramebufferColor4PackingIndependence(t *testing.T) {
	fb, _ := NewFramebuffer(4, 1, Color4)
	if err := fb.SetPixel(0, 0, "red"); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if err := fb.SetPixel(1, 0, "yellow"); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	n0, _ := fb.GetPixel(0, 0)
	n1, _ := fb.GetPixel(1, 0)
	if n0 != "red" || n1 != "yellow" {
		t.Fatalf("adjacent 4bpp pixels interfered: (0,0)=%q (1,0)=%q", n0, n1)
	}
}
