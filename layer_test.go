package chromawave

import "testing"

func TestColorLayerTranslatesToParent(t *testing.T) {
	parent := NewCanvasFilled(10, 10, White)
	layer := NewColorLayer(parent, 2, 3, 4, 4)
	layer.SetPixel(0, 0, Red)

	col, ok := parent.GetPixel(2, 3)
	if !ok || col != Red {
		t.Fatalf("parent.GetPixel(2,3) = (%v, %v), want (red, true)", col, ok)
	}
}

func TestColorLayerClipsToLocalBounds(t *testing.T) {
	parent := NewCanvasFilled(10, 10, White)
	layer := NewColorLayer(parent, 0, 0, 4, 4)
	layer.SetPixel(4, 0, Red) // outside the 4x4 local window

	if col, _ := parent.GetPixel(4, 0); col == Red {
		t.Fatal("write outside the layer's local bounds leaked to the parent")
	}
}

func TestColorLayerGetPixelOutOfBounds(t *testing.T) {
	parent := NewCanvasFilled(10, 10, White)
	layer := NewColorLayer(parent, 0, 0, 4, 4)
	if _, ok := layer.GetPixel(-1, 0); ok {
		t.Fatal("expected GetPixel(-1,0) to report false")
	}
}

func TestIndexLayerTranslatesToParent(t *testing.T) {
	fb, err := NewFramebuffer(10, 10, Mono)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	layer := NewIndexLayer(fb, 1, 1, 4, 4)
	if err := layer.SetPixel(0, 0, "black"); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	name, ok := fb.GetPixel(1, 1)
	if !ok || name != "black" {
		t.Fatalf("fb.GetPixel(1,1) = (%q, %v), want (black, true)", name, ok)
	}
}

func TestIndexLayerOutOfLocalBoundsIsNoOp(t *testing.T) {
	fb, err := NewFramebuffer(10, 10, Mono)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	layer := NewIndexLayer(fb, 0, 0, 2, 2)
	if err := layer.SetPixel(5, 5, "black"); err != nil {
		t.Fatalf("out-of-bounds SetPixel should be a nil-error no-op, got %v", err)
	}
}
