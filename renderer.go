// renderer.go - Canvas -> Framebuffer quantization (§4.4)

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

// Renderer quantizes an RGBA Canvas into a Framebuffer of a fixed
// target PixelFormat, using a pluggable DitherStrategy. Background is
// always opaque white for alpha-flattening; the renderer itself never
// allocates Color values in its inner loop beyond what the dither
// strategy and palette lookup require.
type Renderer struct {
	format  *PixelFormat
	dither  DitherStrategy
	background Color
}

// NewRenderer builds a Renderer targeting format, using strategy as the
// dither algorithm. Background flattening always uses White.
func NewRenderer(format *PixelFormat, strategy DitherStrategy) *Renderer {
	return &Renderer{format: format, dither: strategy, background: White}
}

// Format returns the renderer's target PixelFormat.
func (r *Renderer) Format() *PixelFormat { return r.format }

// Render quantizes canvas into a freshly allocated Framebuffer of the
// renderer's target format.
func (r *Renderer) Render(canvas *Canvas) (*Framebuffer, error) {
	fb, err := NewFramebuffer(canvas.Width(), canvas.Height(), r.format)
	if err != nil {
		return nil, err
	}
	if err := r.RenderInto(canvas, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// RenderInto quantizes canvas into the caller-supplied into Framebuffer,
// reusing its buffer. into's dimensions must match canvas's, or
// DimensionMismatch is returned.
func (r *Renderer) RenderInto(canvas *Canvas, into *Framebuffer) error {
	if into.Width() != canvas.Width() || into.Height() != canvas.Height() {
		return &ChromaError{
			Kind:     DimensionMismatch,
			Expected: dimString(canvas.Width(), canvas.Height()),
			Actual:   dimString(into.Width(), into.Height()),
		}
	}

	w, h := canvas.Width(), canvas.Height()
	buf := canvas.Bytes()
	r.dither.reset(w, h)
	palette := into.format.Palette

	idx := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := Color{R: buf[idx], G: buf[idx+1], B: buf[idx+2], A: buf[idx+3]}
			idx += 4

			flat := flattenOver(src, r.background)
			biased := r.dither.apply(x, y, flat)
			name := palette.NearestColor(biased)
			_, picked, _ := palette.ColorAt(mustIndexOf(palette, name))
			r.dither.feedback(x, y, biased, picked)

			if err := into.SetPixel(x, y, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderDual quantizes canvas to the color4 palette, then splits the
// result into two mono Framebuffers (black plane, red/accent plane)
// per the dual-buffer routing table. Only valid when the Renderer's
// target format is Color4.
func (r *Renderer) RenderDual(canvas *Canvas) (black, red *Framebuffer, err error) {
	if r.format != Color4 {
		return nil, nil, &ChromaError{Kind: UnsupportedFormat, Detail: "render_dual requires a color4 renderer"}
	}

	w, h := canvas.Width(), canvas.Height()
	black, err = NewFramebuffer(w, h, Mono)
	if err != nil {
		return nil, nil, err
	}
	red, err = NewFramebuffer(w, h, Mono)
	if err != nil {
		return nil, nil, err
	}

	buf := canvas.Bytes()
	r.dither.reset(w, h)
	palette := r.format.Palette

	idx := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := Color{R: buf[idx], G: buf[idx+1], B: buf[idx+2], A: buf[idx+3]}
			idx += 4

			flat := flattenOver(src, r.background)
			biased := r.dither.apply(x, y, flat)
			name := palette.NearestColor(biased)
			_, picked, _ := palette.ColorAt(mustIndexOf(palette, name))
			r.dither.feedback(x, y, biased, picked)

			blackBit, redBit := dualBufferRoute(name)
			if err := black.SetPixel(x, y, blackBit); err != nil {
				return nil, nil, err
			}
			if err := red.SetPixel(x, y, redBit); err != nil {
				return nil, nil, err
			}
		}
	}
	return black, red, nil
}

// dualBufferRoute implements the §4.4 routing table: each mono plane is
// 1 = off/white, 0 = pigment active.
func dualBufferRoute(entry string) (blackEntry, redEntry string) {
	switch entry {
	case "black":
		return "black", "white"
	case "white":
		return "white", "white"
	case "red", "yellow":
		return "white", "black"
	default:
		return "white", "white"
	}
}

func mustIndexOf(p *Palette, name string) int {
	idx, err := p.IndexOf(name)
	if err != nil {
		// NearestColor only ever returns names drawn from this same
		// palette, so this can't fail in practice.
		return 0
	}
	return idx
}

func dimString(w, h int) string {
	return itoa(w) + "x" + itoa(h)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
