package escfmt

import (
	"fmt"
	"strings"
	"testing"
)

func TestEscapeTableInvariant(t *testing.T) {
	if err := validateEscapeTable(&escapeTable); err != nil {
		t.Fatalf("escape table invalid: %v", err)
	}
	for i := range escapeTable {
		for _, b := range escapeTable[i].bytes() {
			if b < 0x20 || b > 0x7e {
				t.Fatalf("escape for 0x%02x contains 0x%02x", i, b)
			}
		}
	}
}

func TestEscapeTableMatchesASCIIDefault(t *testing.T) {
	named := map[byte]string{
		'\t': `\t`,
		'\r': `\r`,
		'\n': `\n`,
		'\\': `\\`,
		'\'': `\'`,
		'"':  `\"`,
	}
	for i := range 256 {
		c := byte(i)
		var want string
		switch {
		case named[c] != "":
			want = named[c]
		case c >= 0x20 && c <= 0x7e:
			want = string(rune(c))
		default:
			want = fmt.Sprintf(`\x%02x`, c)
		}
		if got := string(escapeTable[c].bytes()); got != want {
			t.Fatalf("escape for 0x%02x = %q, want %q", c, got, want)
		}
		if needsEscape[c] != (want != string(rune(c))) {
			t.Fatalf("needsEscape[0x%02x] = %v inconsistent with %q", c, needsEscape[c], want)
		}
	}
}

func TestEscapeTableHexIsLowercase(t *testing.T) {
	for i := range escapeTable {
		seq := string(escapeTable[i].bytes())
		if strings.HasPrefix(seq, `\x`) && strings.ToLower(seq) != seq {
			t.Fatalf("hex escape for 0x%02x is not lowercase: %q", i, seq)
		}
	}
}

func TestValidateEscapeTableRejectsCorruption(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*[256]escapeSeq)
	}{
		{"empty", func(tb *[256]escapeSeq) { tb['a'].n = 0 }},
		{"too_long", func(tb *[256]escapeSeq) { tb['a'].n = 5 }},
		{"raw_control", func(tb *[256]escapeSeq) { tb[0x01] = escapeSeq{n: 1, buf: [4]byte{0x01}} }},
		{"raw_high", func(tb *[256]escapeSeq) { tb[0xff] = escapeSeq{n: 1, buf: [4]byte{0xff}} }},
		{"bare_backslash", func(tb *[256]escapeSeq) { tb['\\'] = escapeSeq{n: 1, buf: [4]byte{'\\'}} }},
		{"no_backslash_prefix", func(tb *[256]escapeSeq) { tb[0x00] = escapeSeq{n: 2, buf: [4]byte{'x', '0'}} }},
		{"backslash_collision", func(tb *[256]escapeSeq) { tb[0x00] = escapeSeq{n: 2, buf: [4]byte{'\\', '\\'}} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := escapeTable
			tc.mutate(&table)
			if err := validateEscapeTable(&table); err == nil {
				t.Fatalf("expected corrupted table to be rejected")
			}
		})
	}
}
