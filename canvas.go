// canvas.go - RGBA compositing buffer (§3.1, §4.3)

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

// Canvas is an RGBA compositing buffer: a single contiguous row-major
// buffer of width*height*4 bytes in R,G,B,A order. Caller-owned;
// out-of-bounds writes are silently clipped, out-of-bounds reads
// return (Color{}, false).
type Canvas struct {
	width, height int
	buf           []byte
}

// NewCanvas allocates a Canvas filled with an opaque background color
// (White by default via NewCanvasFilled, or Transparent if the caller
// asks for it explicitly).
func NewCanvas(width, height int) *Canvas {
	return NewCanvasFilled(width, height, White)
}

// NewCanvasFilled allocates a Canvas pre-filled with bg.
func NewCanvasFilled(width, height int, bg Color) *Canvas {
	c := &Canvas{width: width, height: height, buf: make([]byte, width*height*4)}
	c.Clear(bg)
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Bytes returns the raw packed RGBA buffer, row-major, stride 4. The
// renderer's quantization inner loop iterates this directly rather
// than materializing Color values.
func (c *Canvas) Bytes() []byte { return c.buf }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) offset(x, y int) int {
	return (y*c.width + x) * 4
}

// SetPixel writes 4 bytes at offset (y*width+x)*4. Out-of-bounds writes
// are silently dropped.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	off := c.offset(x, y)
	c.buf[off] = col.R
	c.buf[off+1] = col.G
	c.buf[off+2] = col.B
	c.buf[off+3] = col.A
}

// GetPixel materializes a Color from the 4 bytes at (x,y), or returns
// (Color{}, false) out of bounds.
func (c *Canvas) GetPixel(x, y int) (Color, bool) {
	if !c.inBounds(x, y) {
		return Color{}, false
	}
	off := c.offset(x, y)
	return Color{R: c.buf[off], G: c.buf[off+1], B: c.buf[off+2], A: c.buf[off+3]}, true
}

// Clear replaces every pixel with col. When all four channels are
// equal, a fast byte-fill path is used instead of a per-pixel loop.
func (c *Canvas) Clear(col Color) {
	if col.R == col.G && col.G == col.B && col.B == col.A {
		fillByte := col.R
		for i := range c.buf {
			c.buf[i] = fillByte
		}
		return
	}
	row := make([]byte, c.width*4)
	for x := 0; x < c.width; x++ {
		row[x*4] = col.R
		row[x*4+1] = col.G
		row[x*4+2] = col.B
		row[x*4+3] = col.A
	}
	for y := 0; y < c.height; y++ {
		copy(c.buf[y*c.width*4:(y+1)*c.width*4], row)
	}
}

// Blit copies source onto c at (x,y) using Porter-Duff "source over"
// compositing, clipping at both ends. When source is also a *Canvas, a
// bulk accelerated path composites packed bytes directly without
// materializing intermediate Color values; opaque source pixels copy
// directly and fully transparent ones are skipped.
func (c *Canvas) Blit(source ColorSurface, x, y int) {
	if sc, ok := source.(*Canvas); ok {
		c.blitCanvas(sc, x, y)
		return
	}
	sw, sh := source.Width(), source.Height()
	for sy := 0; sy < sh; sy++ {
		for sx := 0; sx < sw; sx++ {
			col, ok := source.GetPixel(sx, sy)
			if !ok {
				continue
			}
			dx, dy := x+sx, y+sy
			if !c.inBounds(dx, dy) {
				continue
			}
			dst, _ := c.GetPixel(dx, dy)
			c.SetPixel(dx, dy, blendOver(dst, col))
		}
	}
}

func (c *Canvas) blitCanvas(src *Canvas, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= c.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			dx := x + sx
			if dx < 0 || dx >= c.width {
				continue
			}
			soff := src.offset(sx, sy)
			sa := src.buf[soff+3]
			if sa == 0 {
				continue
			}
			doff := c.offset(dx, dy)
			if sa == 255 {
				c.buf[doff] = src.buf[soff]
				c.buf[doff+1] = src.buf[soff+1]
				c.buf[doff+2] = src.buf[soff+2]
				c.buf[doff+3] = src.buf[soff+3]
				continue
			}
			da := 255 - int(sa)
			c.buf[doff] = byte((int(src.buf[soff])*int(sa) + int(c.buf[doff])*da) / 255)
			c.buf[doff+1] = byte((int(src.buf[soff+1])*int(sa) + int(c.buf[doff+1])*da) / 255)
			c.buf[doff+2] = byte((int(src.buf[soff+2])*int(sa) + int(c.buf[doff+2])*da) / 255)
			c.buf[doff+3] = byte(int(sa) + int(c.buf[doff+3])*da/255)
		}
	}
}

// LoadRGBABytes copies a foreign RGBA byte buffer of dimensions w x h
// onto the canvas at (dstX, dstY), clipping at the canvas edges. This
// is the image-loader fast path: no Color materialization.
func (c *Canvas) LoadRGBABytes(data []byte, w, h, dstX, dstY int) {
	for sy := 0; sy < h; sy++ {
		dy := dstY + sy
		if dy < 0 || dy >= c.height {
			continue
		}
		srcRowOff := sy * w * 4
		for sx := 0; sx < w; sx++ {
			dx := dstX + sx
			if dx < 0 || dx >= c.width {
				continue
			}
			so := srcRowOff + sx*4
			do := c.offset(dx, dy)
			c.buf[do] = data[so]
			c.buf[do+1] = data[so+1]
			c.buf[do+2] = data[so+2]
			c.buf[do+3] = data[so+3]
		}
	}
}
