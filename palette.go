// palette.go - ordered (name, RGBA) palette with memoized nearest-color (§3.1, §4.1)

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

import "fmt"

// PaletteEntry is one named color slot. Index within the owning
// Palette's entries equals the value stored in a Framebuffer.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette is an ordered, immutable sequence of named colors. Index 0 is
// the "blackest"/off value for its format.
type Palette struct {
	entries []PaletteEntry
	byName  map[string]int
	cache   *lruCache
}

const paletteCacheCapacity = 256

// NewPalette builds a Palette from an ordered list of entries. Names
// must be unique; this is a construction-time invariant, not a
// runtime check, since palettes are only ever built from the four
// process-wide constants in pixelformat.go.
func NewPalette(entries []PaletteEntry) *Palette {
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		byName[e.Name] = i
	}
	return &Palette{
		entries: entries,
		byName:  byName,
		cache:   newLRUCache(paletteCacheCapacity),
	}
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int { return len(p.entries) }

// IndexOf returns the palette index for entry name, failing with
// UnknownPaletteEntry if it is not present.
func (p *Palette) IndexOf(name string) (int, error) {
	i, ok := p.byName[name]
	if !ok {
		return 0, errUnknownPaletteEntry(fmt.Sprintf("no palette entry named %q", name))
	}
	return i, nil
}

// ColorAt returns the (name, color) pair at index, failing with
// PaletteIndexOutOfRange (modeled here as UnknownPaletteEntry, since
// both signal "no such entry" to the caller) if index is out of range.
func (p *Palette) ColorAt(index int) (string, Color, error) {
	if index < 0 || index >= len(p.entries) {
		return "", Color{}, errUnknownPaletteEntry(fmt.Sprintf("palette index %d out of range [0,%d)", index, len(p.entries)))
	}
	e := p.entries[index]
	return e.Name, e.Color, nil
}

// NearestColor returns the name of the palette entry closest to c by
// squared Euclidean distance over (R,G,B); alpha is ignored, since by
// the time a color reaches a palette lookup it has already been
// flattened against an opaque background. Ties break toward the lower
// palette index. Results are memoized in a bounded LRU keyed by the
// packed 32-bit color.
func (p *Palette) NearestColor(c Color) string {
	key := c.packed32()
	if name, ok := p.cache.get(key); ok {
		return name
	}

	best := 0
	bestDist := squaredDistance(c, p.entries[0].Color)
	for i := 1; i < len(p.entries); i++ {
		d := squaredDistance(c, p.entries[i].Color)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	name := p.entries[best].Name
	p.cache.put(key, name)
	return name
}

func squaredDistance(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
