// driver_registry.go - O(1) model lookup, Levenshtein suggestion, two-tier dispatch (§4.5)

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

import "sort"

// modelsByName is the O(1) lookup index built once from driverTable.
var modelsByName = buildModelIndex()

func buildModelIndex() map[string]*ModelConfig {
	idx := make(map[string]*ModelConfig, len(driverTable))
	for _, m := range driverTable {
		idx[m.Name] = m
	}
	return idx
}

// LookupModel returns the Tier 1 entry for name, or ModelNotFound with
// up to three Levenshtein-nearest suggestions from the registry.
func LookupModel(name string) (*ModelConfig, error) {
	if m, ok := modelsByName[name]; ok {
		return m, nil
	}
	return nil, errModelNotFound(name, suggestModels(name, 3))
}

// overridesFor returns the Tier 2 entry for name, or nil when the
// generic interpreter handles this model unassisted.
func overridesFor(name string) *DriverEntry {
	return driverOverrides[name]
}

// suggestModels returns up to limit registered model names closest to
// name by Levenshtein edit distance, ascending by distance then name.
func suggestModels(name string, limit int) []string {
	type candidate struct {
		name string
		dist int
	}
	candidates := make([]candidate, 0, len(driverTable))
	for n := range modelsByName {
		candidates = append(candidates, candidate{n, levenshtein(name, n)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	out := make([]string, 0, limit)
	for i := 0; i < len(candidates) && i < limit; i++ {
		out = append(out, candidates[i].name)
	}
	return out
}

// levenshtein computes the classic edit distance between a and b using
// a two-row dynamic-programming table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// dispatchShow runs the two-tier show sequence: Tier 2 pre/custom/post
// hooks when present, the generic interpreter otherwise.
func dispatchShow(dev *Device, cfg *ModelConfig, buf []byte) error {
	entry := overridesFor(cfg.Name)
	if entry != nil && entry.PreDisplay != nil {
		if err := entry.PreDisplay(dev, cfg); err != nil {
			return err
		}
	}
	var err error
	if entry != nil && entry.CustomDisplay != nil {
		err = entry.CustomDisplay(dev, cfg, buf)
	} else {
		err = genericDisplay(dev, cfg, buf)
	}
	if err != nil {
		return err
	}
	if entry != nil && entry.PostDisplay != nil {
		return entry.PostDisplay(dev, cfg)
	}
	return nil
}

// dispatchShowDual is dispatchShow's DualBuffer-capability counterpart.
func dispatchShowDual(dev *Device, cfg *ModelConfig, black, red []byte) error {
	entry := overridesFor(cfg.Name)
	if entry == nil || entry.CustomDisplayDual == nil {
		return errUnsupportedDualBuffer(cfg.Name)
	}
	if entry.PreDisplay != nil {
		if err := entry.PreDisplay(dev, cfg); err != nil {
			return err
		}
	}
	if err := entry.CustomDisplayDual(dev, cfg, black, red); err != nil {
		return err
	}
	if entry.PostDisplay != nil {
		return entry.PostDisplay(dev, cfg)
	}
	return nil
}

// dispatchInit runs the two-tier init sequence.
func dispatchInit(dev *Device, cfg *ModelConfig, mode InitMode) error {
	entry := overridesFor(cfg.Name)
	if entry != nil && entry.CustomInit != nil {
		return entry.CustomInit(dev, cfg, mode)
	}
	return genericInit(dev, cfg, mode)
}

func errUnsupportedDualBuffer(model string) error {
	return &ChromaError{Kind: UnsupportedFormat, Model: model, Detail: "model has no Tier 2 custom_display_dual hook"}
}
