// Package ansi provides the ANSI escape sequences used to highlight escape
// sequences in escfmt output on terminals. Built-in palettes are resolved by
// name with LookupPalette. SetPalette swaps the process-wide palette, which
// escfmt.WithHighlight uses when it is given an empty Palette.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants are the colours the built-in palettes use.
const (
	Reset         = "\x1b[0m"
	Yellow        = "\x1b[33m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	BrightRed     = "\x1b[1;31m"
	BrightYellow  = "\x1b[1;33m"
	BrightMagenta = "\x1b[1;35m"
)

// Escape colours letter escapes (\t, \n, \\, ...) and Hex colours \xHH
// escapes. Read them through Snapshot; writes go through SetPalette.
var (
	Escape = Yellow
	Hex    = Magenta
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette, see the Palette* variables for
// examples.
type Palette struct {
	Escape string
	Hex    string
}

// Built-in palettes.
var (
	PaletteDefault = Palette{Escape: Yellow, Hex: Magenta}
	PaletteBright  = Palette{Escape: BrightYellow, Hex: BrightMagenta}
	PaletteAlert   = Palette{Escape: Cyan, Hex: BrightRed}

	PaletteSynthwave84 = Palette{
		Escape: "\x1b[38;5;219m",
		Hex:    "\x1b[38;5;51m",
	}
	PaletteNord = Palette{
		Escape: "\x1b[38;5;110m",
		Hex:    "\x1b[38;5;174m",
	}
	PaletteGruvbox = Palette{
		Escape: "\x1b[38;5;214m",
		Hex:    "\x1b[38;5;167m",
	}
	PaletteSolarizedDark = Palette{
		Escape: "\x1b[38;5;136m",
		Hex:    "\x1b[38;5;125m",
	}
)

// SetPalette sets the package-level Escape and Hex variables. Empty fields
// keep the current value.
//
//	ansi.SetPalette(ansi.PaletteSynthwave84)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	current := snapshotLocked()
	Escape = f(palette.Escape, current.Escape)
	Hex = f(palette.Hex, current.Hex)
}

// Snapshot returns the current ANSI palette values.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteSynthwave84)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		Escape: Escape,
		Hex:    Hex,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
