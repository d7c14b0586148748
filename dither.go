// dither.go - threshold / ordered-Bayer / Floyd-Steinberg dither strategies (§4.4)

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

// DitherStrategy is the per-pixel quantization bias applied before a
// palette lookup. All three built-in strategies produce byte-identical
// output for a canvas filled with an exact palette color — that
// invariant is what the test suite checks, not any aesthetic property.
// Other solid colors can differ: ordered dither turns a mid-gray into a
// checker on mono.
type DitherStrategy interface {
	// name identifies the strategy for diagnostics.
	name() string
	// reset is called once per render, before the first pixel, so a
	// stateful strategy (Floyd-Steinberg) can zero its error buffers.
	reset(width, height int)
	// apply takes the flattened opaque RGB for pixel (x,y) and returns
	// the RGB the palette lookup should actually quantize against.
	apply(x, y int, c Color) Color
	// feedback is called after the palette pick with the picked color,
	// so error-diffusion strategies can propagate the residual. No-op
	// for threshold and ordered.
	feedback(x, y int, wanted, picked Color)
}

// ThresholdDither performs a direct nearest-color lookup with no bias
// and no error distribution.
type ThresholdDither struct{}

func (ThresholdDither) name() string                                 { return "threshold" }
func (ThresholdDither) reset(width, height int)                      {}
func (ThresholdDither) apply(x, y int, c Color) Color                { return c }
func (ThresholdDither) feedback(x, y int, wanted, picked Color)      {}

// bayer4x4 is the standard 4x4 ordered-dither threshold matrix, scaled
// to 0..15 so it can be remapped to a signed per-channel bias.
var bayer4x4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// OrderedDither biases each pixel by a value drawn from a 4x4 Bayer
// matrix indexed by (x&3, y&3) before the palette lookup, so a solid
// mid-gray on mono renders as a 50% checker rather than collapsing to
// one solid tone.
type OrderedDither struct {
	// Strength scales the per-channel bias (m-7)*Strength/15 for matrix
	// value m, so the bias runs from -14 to +17 at 32. Defaults to 32 (via NewOrderedDither) — large enough to flip a
	// true mid-gray across the mono threshold in a checker pattern.
	Strength int
}

func NewOrderedDither() *OrderedDither { return &OrderedDither{Strength: 32} }

func (d *OrderedDither) name() string            { return "ordered" }
func (d *OrderedDither) reset(width, height int) {}

func (d *OrderedDither) apply(x, y int, c Color) Color {
	// Map the matrix's 0..15 range to a signed bias centered on 0.
	bias := (bayer4x4[y&3][x&3] - 7) * d.Strength / 15
	return Color{
		R: clampAddI(int(c.R), bias),
		G: clampAddI(int(c.G), bias),
		B: clampAddI(int(c.B), bias),
		A: c.A,
	}
}

func (d *OrderedDither) feedback(x, y int, wanted, picked Color) {}

func clampAddI(base, delta int) uint8 {
	v := base + delta
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FloydSteinbergDither performs left-to-right, top-to-bottom error
// diffusion using the canonical 7/16, 3/16, 5/16, 1/16 weights. Error
// is tracked per channel across two rows (current + next), recycled
// after each row completes.
type FloydSteinbergDither struct {
	width   int
	errCur  [][3]int
	errNext [][3]int
}

func NewFloydSteinbergDither() *FloydSteinbergDither { return &FloydSteinbergDither{} }

func (d *FloydSteinbergDither) name() string { return "floyd_steinberg" }

func (d *FloydSteinbergDither) reset(width, height int) {
	d.width = width
	d.errCur = make([][3]int, width+1)
	d.errNext = make([][3]int, width+1)
}

// apply adds the accumulated error at (x,y) to the incoming color. At
// the start of each row (x == 0) it swaps the current and next row
// buffers and zeroes the new next row so it can accumulate fresh error.
func (d *FloydSteinbergDither) apply(x, y int, c Color) Color {
	if x == 0 {
		d.errCur, d.errNext = d.errNext, d.errCur
		for i := range d.errNext {
			d.errNext[i] = [3]int{}
		}
	}
	e := d.errCur[x]
	return Color{
		R: clampAddI(int(c.R), e[0]),
		G: clampAddI(int(c.G), e[1]),
		B: clampAddI(int(c.B), e[2]),
		A: c.A,
	}
}

// feedback distributes the quantization error (wanted - picked) to the
// four neighbors per the canonical weights.
func (d *FloydSteinbergDither) feedback(x, y int, wanted, picked Color) {
	errR := int(wanted.R) - int(picked.R)
	errG := int(wanted.G) - int(picked.G)
	errB := int(wanted.B) - int(picked.B)

	d.distribute(x+1, errR, errG, errB, 7, d.errCur)
	d.distribute(x-1, errR, errG, errB, 3, d.errNext)
	d.distribute(x, errR, errG, errB, 5, d.errNext)
	d.distribute(x+1, errR, errG, errB, 1, d.errNext)
}

func (d *FloydSteinbergDither) distribute(x, errR, errG, errB, weight int, buf [][3]int) {
	if x < 0 || x >= d.width {
		return
	}
	buf[x][0] += errR * weight / 16
	buf[x][1] += errG * weight / 16
	buf[x][2] += errB * weight / 16
}
