package escfmt

import "io"

// style alters how escape sequences are emitted. A nil style renders the
// plain escape table.
type style struct {
	escape     []byte
	hex        []byte
	reset      []byte
	rawNewline bool
}

// render writes the escaped form of b to w, handing runs of bytes that need
// no escaping to the sink as sub-slices of b. It stops at the first failed
// or short write. consumed is the number of input bytes whose escaped form
// the sink fully accepted.
func render(w io.Writer, b []byte, st *style) (consumed int, written int64, err error) {
	i := 0
	for i < len(b) {
		j := i + firstEscapeIndex(b[i:])
		if j > i {
			n, werr := writeAll(w, b[i:j])
			written += int64(n)
			if werr != nil {
				return i + n, written, werr
			}
			i = j
			if i == len(b) {
				break
			}
		}
		c := b[i]
		seq := escapeTable[c].bytes()
		if st == nil {
			n, werr := writeAll(w, seq)
			written += int64(n)
			if werr != nil {
				return i, written, werr
			}
			i++
			continue
		}
		if c == '\n' && st.rawNewline {
			seq = newline
		}
		n, werr := st.emit(w, c, seq)
		written += n
		if werr != nil {
			return i, written, werr
		}
		i++
	}
	return i, written, nil
}

var newline = []byte{'\n'}

func (st *style) emit(w io.Writer, c byte, seq []byte) (int64, error) {
	open := st.escape
	if escapeTable[c].n == 4 {
		open = st.hex
	}
	if len(seq) == 1 || len(open) == 0 {
		n, err := writeAll(w, seq)
		return int64(n), err
	}
	var written int64
	for _, part := range [...][]byte{open, seq, st.reset} {
		if len(part) == 0 {
			continue
		}
		n, err := writeAll(w, part)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
