// display.go - public Display facade binding a Device to its Renderer (§4)

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

// Display is the package's main entry point: a panel opened by model
// name, bound to a Renderer that targets that panel's native pixel
// format. Open a Display once per physical panel; it owns the Device
// and its HAL for its whole lifetime.
type Display struct {
	dev      *Device
	renderer *Renderer
}

// DisplayOptions configures Open. DitherStrategy defaults to
// ThresholdDither when nil.
type DisplayOptions struct {
	HAL            HAL
	DitherStrategy DitherStrategy
}

// Open resolves modelName, acquires the HAL, and returns a Display
// ready to Show canvases. InitMode defaults to ModeFull on first Show.
func Open(modelName string, opts DisplayOptions) (*Display, error) {
	dev, err := OpenDevice(modelName, opts.HAL)
	if err != nil {
		return nil, err
	}
	strategy := opts.DitherStrategy
	if strategy == nil {
		strategy = &ThresholdDither{}
	}
	return &Display{
		dev:      dev,
		renderer: NewRenderer(dev.Model().Format, strategy),
	}, nil
}

// Model returns the underlying ModelConfig this Display was opened
// against.
func (disp *Display) Model() *ModelConfig { return disp.dev.Model() }

// Show renders canvas to the panel's native format and drives a full
// refresh. Equivalent to Clear-free drawing: canvas content becomes the
// whole new screen. Models with CapDualBuffer are routed through
// render_dual and custom_display_dual automatically — callers never
// need to know a given model is black/red instead of single-plane. A
// CapDualBuffer model without a Tier 2 CustomDisplayDual hook fails with
// UnsupportedFormat.
func (disp *Display) Show(canvas *Canvas) error {
	if disp.HasCapability(CapDualBuffer) {
		return disp.ShowDual(canvas)
	}
	if err := disp.dev.Init(ModeFull); err != nil {
		return err
	}
	fb, err := disp.renderer.Render(canvas)
	if err != nil {
		return err
	}
	return disp.dev.Show(fb.Bytes())
}

// ShowDual renders canvas through the color4 dual-buffer path and
// drives both planes. Returns UnsupportedFormat if the model has no
// CapDualBuffer.
func (disp *Display) ShowDual(canvas *Canvas) error {
	if !disp.HasCapability(CapDualBuffer) {
		return &ChromaError{Kind: UnsupportedFormat, Model: disp.Model().Name, Detail: "model has no CapDualBuffer"}
	}
	if err := disp.dev.Init(ModeFull); err != nil {
		return err
	}
	black, red, err := disp.renderer.RenderDual(canvas)
	if err != nil {
		return err
	}
	return disp.dev.ShowDual(black.Bytes(), red.Bytes())
}

// ShowRaw bypasses rendering entirely and drives both planes from
// caller-supplied framebuffers, for callers that already hold
// pre-quantized black/red planes (e.g. a cached frame) and want to
// skip re-dithering the canvas. Returns UnsupportedFormat if the model
// has no CapDualBuffer, and DimensionMismatch if either framebuffer's
// size disagrees with the model.
func (disp *Display) ShowRaw(black, red *Framebuffer) error {
	if !disp.HasCapability(CapDualBuffer) {
		return &ChromaError{Kind: UnsupportedFormat, Model: disp.Model().Name, Detail: "model has no CapDualBuffer"}
	}
	m := disp.Model()
	if black.Width() != m.Width || black.Height() != m.Height || red.Width() != m.Width || red.Height() != m.Height {
		return &ChromaError{Kind: DimensionMismatch, Model: m.Name, Detail: "ShowRaw framebuffer size disagrees with model"}
	}
	if err := disp.dev.Init(ModeFull); err != nil {
		return err
	}
	return disp.dev.ShowDual(black.Bytes(), red.Bytes())
}

// Clear fills the whole panel with background (white) and drives a
// full refresh, discarding any partial-refresh state.
func (disp *Display) Clear() error {
	canvas := NewCanvasFilled(disp.dev.Model().Width, disp.dev.Model().Height, White)
	return disp.Show(canvas)
}

// DeepSleep runs the model's sleep sequence and resets the mode cache,
// so the panel draws minimal power until the next Show re-inits it.
// Waking is implicit: there is no separate wake call, matching the
// periph waveshare213v4 driver's own Sleep() doc comment.
func (disp *Display) DeepSleep() error {
	return disp.dev.Sleep()
}

// String identifies which model and dimensions this Display wraps,
// for logging a ChromaError's origin without a debugger.
func (disp *Display) String() string {
	m := disp.dev.Model()
	return m.Name + " (" + dimString(m.Width, m.Height) + ")"
}

// Cancel interrupts any in-flight busy-wait, surfacing Cancelled from
// the call currently blocked in Show/ShowDual/ShowRegion.
func (disp *Display) Cancel() {
	disp.dev.Cancel()
}

// Close releases the Device's HAL. Idempotent.
func (disp *Display) Close() error {
	return disp.dev.Close()
}
