package escfmt

import (
	"strings"
	"testing"
)

func naiveFirstEscapeIndex(b []byte) int {
	for i, c := range b {
		if needsEscape[c] {
			return i
		}
	}
	return len(b)
}

func TestFirstEscapeIndexEveryByteEveryLane(t *testing.T) {
	base := []byte(strings.Repeat("a", 19))
	for c := range 256 {
		for pos := range base {
			buf := append([]byte(nil), base...)
			buf[pos] = byte(c)
			want := naiveFirstEscapeIndex(buf)
			if got := firstEscapeIndex(buf); got != want {
				t.Fatalf("firstEscapeIndex(byte 0x%02x at %d) = %d, want %d", c, pos, got, want)
			}
		}
	}
}

func TestFirstEscapeIndexSafeInput(t *testing.T) {
	safe := "console-safe text with spaces ~ and {braces}"
	if got := firstEscapeIndex([]byte(safe)); got != len(safe) {
		t.Fatalf("firstEscapeIndex(%q) = %d, want %d", safe, got, len(safe))
	}
	if got := firstEscapeIndex(nil); got != 0 {
		t.Fatalf("firstEscapeIndex(nil) = %d, want 0", got)
	}

	composite := strings.Repeat("a", 17) + "\x7f" + "tail"
	if got := firstEscapeIndex([]byte(composite)); got != 17 {
		t.Fatalf("firstEscapeIndex composite = %d, want 17", got)
	}
}

func TestChunkEscapeMaskLowestLaneExact(t *testing.T) {
	// A control byte borrows from the lane above it; the lowest flagged lane
	// must still be the real one.
	buf := []byte{'a', 'b', 0x00, ' ', 'c', 'd', 'e', 'f'}
	if got := firstEscapeIndex(buf); got != 2 {
		t.Fatalf("firstEscapeIndex = %d, want 2", got)
	}
}
