package chromawave

import "testing"

func TestPixelsPerByte(t *testing.T) {
	cases := []struct {
		format *PixelFormat
		want   int
	}{
		{Mono, 8},
		{Gray4, 4},
		{Color4, 2},
		{Color7, 2},
	}
	for _, tc := range cases {
		if got := tc.format.PixelsPerByte(); got != tc.want {
			t.Errorf("%s.PixelsPerByte() = %d, want %d", tc.format.Name, got, tc.want)
		}
	}
}

func TestRowBytesRoundsUp(t *testing.T) {
	if got := Mono.RowBytes(9); got != 2 {
		t.Fatalf("Mono.RowBytes(9) = %d, want 2", got)
	}
	if got := Mono.RowBytes(8); got != 1 {
		t.Fatalf("Mono.RowBytes(8) = %d, want 1", got)
	}
}

func TestBufferSizeRejectsOutOfRangeDimensions(t *testing.T) {
	if _, err := Mono.BufferSize(0, 10); err == nil {
		t.Fatal("expected InvalidDimension for width 0")
	}
	if _, err := Mono.BufferSize(10, maxDimension+1); err == nil {
		t.Fatal("expected InvalidDimension for height over max")
	}
}

func TestBufferSizeComputesCorrectly(t *testing.T) {
	n, err := Mono.BufferSize(122, 250)
	if err != nil {
		t.Fatalf("BufferSize: %v", err)
	}
	want := 16 * 250 // RowBytes(122) = ceil(122/8) = 16
	if n != want {
		t.Fatalf("BufferSize(122,250) = %d, want %d", n, want)
	}
}

func TestLookupFormatByName(t *testing.T) {
	if LookupFormat(FormatColor4) != Color4 {
		t.Fatal("LookupFormat(color4) did not return the Color4 singleton")
	}
	if LookupFormat("nonexistent") != nil {
		t.Fatal("expected nil for an unregistered format name")
	}
}
