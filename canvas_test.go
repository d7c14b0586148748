package chromawave

import "testing"

func TestNewCanvasDefaultsToWhite(t *testing.T) {
	c := NewCanvas(4, 4)
	col, ok := c.GetPixel(0, 0)
	if !ok || col != White {
		t.Fatalf("GetPixel(0,0) = (%v, %v), want (white, true)", col, ok)
	}
}

func TestCanvasSetGetPixel(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetPixel(1, 2, Red)
	col, ok := c.GetPixel(1, 2)
	if !ok || col != Red {
		t.Fatalf("GetPixel(1,2) = (%v, %v), want (red, true)", col, ok)
	}
}

func TestCanvasOutOfBoundsIsSilentNoOp(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetPixel(-1, 0, Red) // must not panic
	if _, ok := c.GetPixel(10, 10); ok {
		t.Fatal("expected out-of-bounds GetPixel to report false")
	}
}

func TestCanvasClearNonUniform(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Clear(Black)
	col, _ := c.GetPixel(2, 2)
	if col != Black {
		t.Fatalf("Clear(black) left %v at (2,2)", col)
	}
}

func TestCanvasClearUniform(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Clear(Transparent)
	col, _ := c.GetPixel(1, 1)
	if col != Transparent {
		t.Fatalf("Clear(transparent) left %v at (1,1)", col)
	}
}

func TestCanvasBlitCanvasFastPath(t *testing.T) {
	dst := NewCanvasFilled(4, 4, White)
	src := NewCanvasFilled(2, 2, Red)
	dst.Blit(src, 1, 1)

	col, _ := dst.GetPixel(1, 1)
	if col != Red {
		t.Fatalf("GetPixel(1,1) after blit = %v, want red", col)
	}
	col, _ = dst.GetPixel(0, 0)
	if col != White {
		t.Fatalf("GetPixel(0,0) after blit = %v, want untouched white", col)
	}
}

func TestCanvasBlitClipsAtEdges(t *testing.T) {
	dst := NewCanvasFilled(2, 2, White)
	src := NewCanvasFilled(4, 4, Red)
	dst.Blit(src, 1, 1) // must not panic despite overflowing the destination
	col, _ := dst.GetPixel(1, 1)
	if col != Red {
		t.Fatalf("GetPixel(1,1) = %v, want red", col)
	}
}

func TestCanvasLoadRGBABytes(t *testing.T) {
	c := NewCanvasFilled(4, 4, White)
	data := []byte{
		1, 2, 3, 255, 4, 5, 6, 255,
		7, 8, 9, 255, 10, 11, 12, 255,
	}
	c.LoadRGBABytes(data, 2, 2, 1, 1)
	col, _ := c.GetPixel(1, 1)
	if col.R != 1 || col.G != 2 || col.B != 3 || col.A != 255 {
		t.Fatalf("GetPixel(1,1) = %v, want (1,2,3,255)", col)
	}
}
