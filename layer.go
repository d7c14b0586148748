// layer.go - clipped, offset sub-region over a Surface (§3.1, §4.3)

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

// ColorLayer is a clipped, offset view onto a ColorSurface parent. It
// holds a back-reference to the parent — a relation, not ownership;
// the parent must outlive the Layer by scope discipline. Layers of
// Layers compose by additive offset.
type ColorLayer struct {
	parent        ColorSurface
	offX, offY    int
	width, height int
}

// NewColorLayer creates a logical width x height window onto parent
// starting at (offX, offY) in the parent's coordinate space.
func NewColorLayer(parent ColorSurface, offX, offY, width, height int) *ColorLayer {
	return &ColorLayer{parent: parent, offX: offX, offY: offY, width: width, height: height}
}

func (l *ColorLayer) Width() int  { return l.width }
func (l *ColorLayer) Height() int { return l.height }

// SetPixel translates local (x,y) to parent (x+offX, y+offY). An
// out-of-local-bounds write is a silent no-op; no additional bounds
// intersection with the parent is performed beyond what the parent's
// own SetPixel already clips.
func (l *ColorLayer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}
	l.parent.SetPixel(x+l.offX, y+l.offY, c)
}

// GetPixel is the read counterpart of SetPixel.
func (l *ColorLayer) GetPixel(x, y int) (Color, bool) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return Color{}, false
	}
	return l.parent.GetPixel(x+l.offX, y+l.offY)
}

// IndexLayer is the IndexSurface analog of ColorLayer, wrapping a
// Framebuffer (or another IndexLayer).
type IndexLayer struct {
	parent        IndexSurface
	offX, offY    int
	width, height int
}

func NewIndexLayer(parent IndexSurface, offX, offY, width, height int) *IndexLayer {
	return &IndexLayer{parent: parent, offX: offX, offY: offY, width: width, height: height}
}

func (l *IndexLayer) Width() int  { return l.width }
func (l *IndexLayer) Height() int { return l.height }

func (l *IndexLayer) SetPixel(x, y int, name string) error {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return nil
	}
	return l.parent.SetPixel(x+l.offX, y+l.offY, name)
}

func (l *IndexLayer) GetPixel(x, y int) (string, bool) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return "", false
	}
	return l.parent.GetPixel(x+l.offX, y+l.offY)
}
