// pixelformat.go - immutable PixelFormat descriptors (§4.1)

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package chromawave

// FormatName identifies one of the four device pixel formats ChromaWave
// packs into a Framebuffer.
type FormatName string

const (
	FormatMono   FormatName = "mono"
	FormatGray4  FormatName = "gray4"
	FormatColor4 FormatName = "color4"
	FormatColor7 FormatName = "color7"
)

// PixelFormat is an immutable value object: bpp plus an ordered palette.
// Registry lookup by name always returns the same *PixelFormat, so
// pointer equality can stand in for value equality.
type PixelFormat struct {
	Name         FormatName
	BitsPerPixel int
	Palette      *Palette
}

// PixelsPerByte is 8 / BitsPerPixel.
func (f *PixelFormat) PixelsPerByte() int {
	return 8 / f.BitsPerPixel
}

// RowBytes returns the number of bytes needed to store one row of width
// pixels, i.e. ceil(width / PixelsPerByte()).
func (f *PixelFormat) RowBytes(width int) int {
	ppb := f.PixelsPerByte()
	return (width + ppb - 1) / ppb
}

// BufferSize computes ceil(w / pixels_per_byte) * h, failing with
// InvalidDimension if w or h is outside (0, 4096].
func (f *PixelFormat) BufferSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return 0, errInvalidDimension("width and height must be in (0, 4096]")
	}
	return f.RowBytes(width) * height, nil
}

const maxDimension = 4096

// Registry of the four process-wide pixel formats, built once.
var (
	monoPalette = NewPalette([]PaletteEntry{
		{Name: "black", Color: Black},
		{Name: "white", Color: White},
	})
	gray4Palette = NewPalette([]PaletteEntry{
		{Name: "black", Color: Black},
		{Name: "dark_gray", Color: DarkGray},
		{Name: "light_gray", Color: LightGray},
		{Name: "white", Color: White},
	})
	color4Palette = NewPalette([]PaletteEntry{
		{Name: "black", Color: Black},
		{Name: "white", Color: White},
		{Name: "yellow", Color: Yellow},
		{Name: "red", Color: Red},
	})
	color7Palette = NewPalette([]PaletteEntry{
		{Name: "black", Color: Black},
		{Name: "white", Color: White},
		{Name: "green", Color: Green},
		{Name: "blue", Color: Blue},
		{Name: "red", Color: Red},
		{Name: "yellow", Color: Yellow},
		{Name: "orange", Color: Orange},
	})

	Mono   = &PixelFormat{Name: FormatMono, BitsPerPixel: 1, Palette: monoPalette}
	Gray4  = &PixelFormat{Name: FormatGray4, BitsPerPixel: 2, Palette: gray4Palette}
	Color4 = &PixelFormat{Name: FormatColor4, BitsPerPixel: 4, Palette: color4Palette}
	Color7 = &PixelFormat{Name: FormatColor7, BitsPerPixel: 4, Palette: color7Palette}

	formatsByName = map[FormatName]*PixelFormat{
		FormatMono:   Mono,
		FormatGray4:  Gray4,
		FormatColor4: Color4,
		FormatColor7: Color7,
	}
)

// LookupFormat returns the process-wide PixelFormat for name, or nil.
func LookupFormat(name FormatName) *PixelFormat {
	return formatsByName[name]
}
