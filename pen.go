// pen.go - drawing-style value object consumed by the (out-of-scope)
// drawing primitives library (§3.1)

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

// Pen describes a drawing style: stroke color, fill color, and stroke
// width. At least one of Stroke/Fill must be present; StrokeWidth must
// be ≥ 1. Pen itself draws nothing — it is a value object handed to the
// out-of-scope drawing primitives library alongside a Surface.
type Pen struct {
	Stroke      *Color
	Fill        *Color
	StrokeWidth int
}

// NewStrokePen builds a Pen with only a stroke color.
func NewStrokePen(stroke Color, width int) Pen {
	return Pen{Stroke: &stroke, StrokeWidth: width}
}

// NewFillPen builds a Pen with only a fill color.
func NewFillPen(fill Color) Pen {
	return Pen{Fill: &fill, StrokeWidth: 1}
}

// NewStrokeFillPen builds a Pen with both a stroke and fill color.
func NewStrokeFillPen(stroke, fill Color, width int) Pen {
	return Pen{Stroke: &stroke, Fill: &fill, StrokeWidth: width}
}

// Valid reports whether the Pen satisfies its invariant: at least one
// of Stroke/Fill present, and StrokeWidth ≥ 1.
func (p Pen) Valid() bool {
	if p.Stroke == nil && p.Fill == nil {
		return false
	}
	return p.StrokeWidth >= 1
}
