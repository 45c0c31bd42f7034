package ansi

import "testing"

func TestLookupPaletteCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Palette
	}{
		{name: "default", want: PaletteDefault},
		{name: "bright", want: PaletteBright},
		{name: "synthwave-84", want: PaletteSynthwave84},
		{name: "nord", want: PaletteNord},
	}

	for _, tc := range cases {
		got, ok := LookupPalette(tc.name)
		if !ok || got == nil {
			t.Fatalf("expected palette %q to resolve", tc.name)
		}
		if *got != tc.want {
			t.Fatalf("palette %q mismatch", tc.name)
		}
	}
}

func TestLookupPaletteAliases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Palette
	}{
		{name: "synthwave84", want: PaletteSynthwave84},
		{name: "Solarized_Dark", want: PaletteSolarizedDark},
		{name: "solarized", want: PaletteSolarizedDark},
		{name: "PaletteGruvbox", want: PaletteGruvbox},
		{name: "  palette-nord ", want: PaletteNord},
	}

	for _, tc := range cases {
		got, ok := LookupPalette(tc.name)
		if !ok || got == nil {
			t.Fatalf("expected alias %q to resolve", tc.name)
		}
		if *got != tc.want {
			t.Fatalf("alias %q mismatch", tc.name)
		}
	}
}

func TestLookupPaletteInvalid(t *testing.T) {
	t.Parallel()

	if p, ok := LookupPalette("does-not-exist"); ok || p != nil {
		t.Fatalf("LookupPalette should report unknown names, got %v, %v", p, ok)
	}
	if p, ok := LookupPalette(""); !ok || p != &PaletteDefault {
		t.Fatalf("LookupPalette(\"\") = %v, %v; want default, true", p, ok)
	}
}

func TestAvailablePaletteNames(t *testing.T) {
	t.Parallel()

	names := AvailablePaletteNames()
	if len(names) != len(namedPalettes) {
		t.Fatalf("expected %d palette names, got %d", len(namedPalettes), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, name := range names {
		if _, ok := LookupPalette(name); !ok {
			t.Fatalf("catalog name %q does not resolve", name)
		}
	}
}
