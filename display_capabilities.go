// display_capabilities.go - optional-capability composition over Display (§3.1, §4)

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package chromawave

// Most of a Display's surface is shared by every model; only a handful
// of operations are optional, gated by the model's capability bitmask.
// Each optional behavior is named by its own interface below. *Display
// implements all five for every model, so a type assertion on a
// *Display always succeeds; whether the model supports an operation is
// reported by HasCapability, and a call the model does not support
// returns UnsupportedFormat.

// PartialRefresher is the operation for models with
// CapPartialRefresh: faster, lower-flicker redraws that skip the
// clearing flash of a full refresh.
type PartialRefresher interface {
	ShowPartial(canvas *Canvas) error
}

// FastRefresher is the operation for models with
// CapFastRefresh: an alternate init sequence trading image quality for
// shorter full-refresh latency.
type FastRefresher interface {
	ShowFast(canvas *Canvas) error
}

// GrayscaleCapable is the operation for models with
// CapGrayscaleMode.
type GrayscaleCapable interface {
	ShowGrayscale(canvas *Canvas) error
}

// DualBufferCapable is the operation set for models with
// CapDualBuffer (color4 black/red or black/yellow panels).
type DualBufferCapable interface {
	ShowDual(canvas *Canvas) error
	ShowRaw(black, red *Framebuffer) error
}

// RegionalRefresher is the operation for models with
// CapRegionalRefresh: redraw of an (x,y,w,h) sub-rectangle only.
type RegionalRefresher interface {
	ShowRegion(canvas *Canvas, x, y, w, h int) error
}

// HasCapability reports whether this Display's model advertises cap,
// without needing a type assertion.
func (disp *Display) HasCapability(cap Capability) bool {
	return disp.dev.Model().HasCapability(cap)
}

// ShowPartial renders canvas and drives a partial refresh. Returns
// UnsupportedFormat if the model lacks CapPartialRefresh.
func (disp *Display) ShowPartial(canvas *Canvas) error {
	if !disp.HasCapability(CapPartialRefresh) {
		return &ChromaError{Kind: UnsupportedFormat, Model: disp.Model().Name, Detail: "model has no CapPartialRefresh"}
	}
	if err := disp.dev.Init(ModePartial); err != nil {
		return err
	}
	fb, err := disp.renderer.Render(canvas)
	if err != nil {
		return err
	}
	return disp.dev.Show(fb.Bytes())
}

// ShowFast renders canvas and drives a fast-refresh cycle. Returns
// UnsupportedFormat if the model lacks CapFastRefresh.
func (disp *Display) ShowFast(canvas *Canvas) error {
	if !disp.HasCapability(CapFastRefresh) {
		return &ChromaError{Kind: UnsupportedFormat, Model: disp.Model().Name, Detail: "model has no CapFastRefresh"}
	}
	if err := disp.dev.Init(ModeFast); err != nil {
		return err
	}
	fb, err := disp.renderer.Render(canvas)
	if err != nil {
		return err
	}
	return disp.dev.Show(fb.Bytes())
}

// ShowGrayscale renders canvas and drives a grayscale refresh. Returns
// UnsupportedFormat if the model lacks CapGrayscaleMode.
func (disp *Display) ShowGrayscale(canvas *Canvas) error {
	if !disp.HasCapability(CapGrayscaleMode) {
		return &ChromaError{Kind: UnsupportedFormat, Model: disp.Model().Name, Detail: "model has no CapGrayscaleMode"}
	}
	if err := disp.dev.Init(ModeGrayscale); err != nil {
		return err
	}
	fb, err := disp.renderer.Render(canvas)
	if err != nil {
		return err
	}
	return disp.dev.Show(fb.Bytes())
}

// ShowRegion renders canvas and drives a regional refresh of only the
// (x,y,w,h) sub-rectangle. Returns UnsupportedFormat if the model lacks
// CapRegionalRefresh.
//
// The controller's RAM window addresses x in byte units, so x and w
// are silently aligned to the enclosing byte boundary (x rounded down,
// w rounded up) rather than rejecting a caller's pixel-precise
// rectangle.
func (disp *Display) ShowRegion(canvas *Canvas, x, y, w, h int) error {
	if !disp.HasCapability(CapRegionalRefresh) {
		return &ChromaError{Kind: UnsupportedFormat, Model: disp.Model().Name, Detail: "model has no CapRegionalRefresh"}
	}
	x, w = alignRegionToByte(x, w)
	if err := disp.dev.Init(ModePartial); err != nil {
		return err
	}
	fb, err := disp.renderer.Render(canvas)
	if err != nil {
		return err
	}
	return disp.dev.ShowRegion(fb.Bytes(), x, y, w, h)
}

// alignRegionToByte rounds x down and w up so the resulting [x, x+w)
// range lands on 8-pixel (one-byte) boundaries.
func alignRegionToByte(x, w int) (int, int) {
	aligned := x &^ 7
	w += x - aligned
	w = (w + 7) &^ 7
	return aligned, w
}
