package escfmt

import "encoding/binary"

// firstEscapeIndex returns the index of the first byte in b that needs
// escaping, or len(b) when the whole slice passes through unchanged.
func firstEscapeIndex(b []byte) int {
	n := len(b)
	i := 0
	for i+8 <= n {
		if chunkEscapeMask(binary.LittleEndian.Uint64(b[i:])) != 0 {
			break
		}
		i += 8
	}
	for ; i < n; i++ {
		if needsEscape[b[i]] {
			return i
		}
	}
	return n
}
