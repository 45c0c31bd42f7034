package ansi

import (
	"sort"
	"strings"
)

var namedPalettes = map[string]*Palette{
	"default":        &PaletteDefault,
	"bright":         &PaletteBright,
	"alert":          &PaletteAlert,
	"synthwave-84":   &PaletteSynthwave84,
	"nord":           &PaletteNord,
	"gruvbox":        &PaletteGruvbox,
	"solarized-dark": &PaletteSolarizedDark,
}

var paletteAliases = map[string]string{
	"synthwave84":   "synthwave-84",
	"solarizeddark": "solarized-dark",
	"solarized":     "solarized-dark",
}

// LookupPalette resolves a built-in palette and reports whether name was
// recognised. Names are case-insensitive and support compatibility aliases.
// The empty name resolves to PaletteDefault.
func LookupPalette(name string) (*Palette, bool) {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault, true
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette, true
	}
	return nil, false
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
