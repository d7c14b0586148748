// framebuffer.go - device-format pixel storage with bit-level pack/unpack (§4.2)

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

// Framebuffer is device-format pixel storage: fixed dimensions, fixed
// format, exclusively owned by its holder. It satisfies the Surface
// protocol with palette-entry-name pixel values.
type Framebuffer struct {
	width, height int
	format        *PixelFormat
	buf           []byte
}

// NewFramebuffer allocates a zeroed Framebuffer of the given dimensions
// and format. Fails with InvalidDimension per PixelFormat.BufferSize.
func NewFramebuffer(width, height int, format *PixelFormat) (*Framebuffer, error) {
	size, err := format.BufferSize(width, height)
	if err != nil {
		return nil, err
	}
	return &Framebuffer{
		width:  width,
		height: height,
		format: format,
		buf:    make([]byte, size),
	}, nil
}

func (fb *Framebuffer) Width() int            { return fb.width }
func (fb *Framebuffer) Height() int           { return fb.height }
func (fb *Framebuffer) Format() *PixelFormat  { return fb.format }
func (fb *Framebuffer) Bytes() []byte         { return fb.buf }

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// bitLocation returns the byte index and bit-packing parameters for
// pixel (x,y) under fb.format, implementing the packing rules of §4.2.
func (fb *Framebuffer) bitLocation(x, y int) (byteIdx int, shift uint, mask byte) {
	rowBytes := fb.format.RowBytes(fb.width)
	switch fb.format.BitsPerPixel {
	case 1:
		byteIdx = y*rowBytes + (x >> 3)
		bit := uint(x & 7)
		shift = 7 - bit
		mask = 0x01
	case 2:
		byteIdx = y*rowBytes + (x >> 2)
		shift = uint(6 - 2*(x&3))
		mask = 0x03
	case 4:
		byteIdx = y*rowBytes + (x >> 1)
		if x&1 == 0 {
			shift = 4
		} else {
			shift = 0
		}
		mask = 0x0F
	}
	return
}

// SetPixelIndex writes the raw palette index v at (x,y). v must name a
// valid palette entry, or UnknownPaletteEntry is returned (checked
// before the bounds check) — a masked-and-succeed write is deliberately
// not supported (§9 open question). With a valid v, out-of-bounds
// writes are a silent no-op.
func (fb *Framebuffer) SetPixelIndex(x, y, v int) error {
	if v < 0 || v >= fb.format.Palette.Len() {
		return errUnknownPaletteEntry("palette index out of range for this format")
	}
	if !fb.inBounds(x, y) {
		return nil
	}
	byteIdx, shift, mask := fb.bitLocation(x, y)
	fb.buf[byteIdx] = fb.buf[byteIdx]&^(mask<<shift) | (byte(v)&mask)<<shift
	return nil
}

// SetPixel writes the palette entry named name at (x,y). Out-of-bounds
// writes are a silent no-op; an unrecognized name fails with
// UnknownPaletteEntry.
func (fb *Framebuffer) SetPixel(x, y int, name string) error {
	idx, err := fb.format.Palette.IndexOf(name)
	if err != nil {
		return err
	}
	return fb.SetPixelIndex(x, y, idx)
}

// GetPixel returns the palette entry name at (x,y), or "", false for
// out-of-bounds coordinates.
func (fb *Framebuffer) GetPixel(x, y int) (string, bool) {
	if !fb.inBounds(x, y) {
		return "", false
	}
	byteIdx, shift, mask := fb.bitLocation(x, y)
	v := int(fb.buf[byteIdx]>>shift) & int(mask)
	name, _, err := fb.format.Palette.ColorAt(v)
	if err != nil {
		return "", false
	}
	return name, true
}

// Clear sets every pixel (including row-padding bits) to the packed
// repeat of palette index v.
func (fb *Framebuffer) Clear(v int) error {
	if v < 0 || v >= fb.format.Palette.Len() {
		return errUnknownPaletteEntry("palette index out of range for this format")
	}
	fb.clearIndex(byte(v))
	return nil
}

// ClearName is Clear by palette entry name.
func (fb *Framebuffer) ClearName(name string) error {
	idx, err := fb.format.Palette.IndexOf(name)
	if err != nil {
		return err
	}
	return fb.Clear(idx)
}

func (fb *Framebuffer) clearIndex(v byte) {
	bpp := fb.format.BitsPerPixel
	var repeat byte
	switch bpp {
	case 1:
		if v == 0 {
			repeat = 0x00
		} else {
			repeat = 0xFF
		}
	case 2:
		repeat = v&0x03 * 0x55 // 01010101 pattern scaled by the 2-bit value
	case 4:
		repeat = v&0x0F<<4 | v&0x0F
	}
	for i := range fb.buf {
		fb.buf[i] = repeat
	}
}

// Copy returns a deep copy: a distinct buffer with identical content.
func (fb *Framebuffer) Copy() *Framebuffer {
	out := &Framebuffer{width: fb.width, height: fb.height, format: fb.format, buf: make([]byte, len(fb.buf))}
	copy(out.buf, fb.buf)
	return out
}

// Equals reports whether other has the same dimensions, format, and
// byte content.
func (fb *Framebuffer) Equals(other *Framebuffer) bool {
	if other == nil {
		return false
	}
	if fb.width != other.width || fb.height != other.height || fb.format != other.format {
		return false
	}
	if len(fb.buf) != len(other.buf) {
		return false
	}
	for i := range fb.buf {
		if fb.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}
