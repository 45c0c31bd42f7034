package escfmt

import (
	"fmt"
	"io"
	"unsafe"
)

// Renderer renders a borrowed byte slice as ASCII-default escaped text. It
// holds only the slice header: Wrap copies nothing, and the caller must not
// modify the slice while a render is in progress.
//
// The zero Renderer renders as the empty string. A Renderer is safe for
// concurrent use.
type Renderer struct {
	b []byte
}

// Wrap returns a Renderer over b. It never fails and does not allocate.
func Wrap(b []byte) Renderer {
	return Renderer{b: b}
}

// Bytes returns the wrapped slice.
func (r Renderer) Bytes() []byte {
	return r.b
}

// Len returns the length of the escaped text without rendering it.
func (r Renderer) Len() int {
	n := len(r.b)
	for i := 0; i < len(r.b); i++ {
		i += firstEscapeIndex(r.b[i:])
		if i == len(r.b) {
			break
		}
		n += int(escapeTable[r.b[i]].n) - 1
	}
	return n
}

// WriteTo writes the escaped text to w and returns the number of bytes w
// accepted. Rendering stops at the first failed or short write, which is
// reported as a *WriteError wrapping the sink error. Nothing is buffered:
// unescaped runs are passed to w straight from the wrapped slice.
func (r Renderer) WriteTo(w io.Writer) (int64, error) {
	consumed, written, err := render(w, r.b, nil)
	if err != nil {
		return written, &WriteError{Err: err, Offset: consumed, Written: written}
	}
	return written, nil
}

// AppendTo appends the escaped text to dst and returns the extended slice.
func (r Renderer) AppendTo(dst []byte) []byte {
	b := r.b
	for len(b) > 0 {
		idx := firstEscapeIndex(b)
		dst = append(dst, b[:idx]...)
		if idx == len(b) {
			break
		}
		dst = append(dst, escapeTable[b[idx]].bytes()...)
		b = b[idx+1:]
	}
	return dst
}

// String returns the escaped text. The result is sized exactly, so it costs
// a single allocation.
func (r Renderer) String() string {
	n := r.Len()
	if n == 0 {
		return ""
	}
	buf := r.AppendTo(make([]byte, 0, n))
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

var (
	doubleQuote = []byte{'"'}
	closeParen  = []byte{')'}
	padding     = []byte("                ")
)

// Format implements fmt.Formatter so a Renderer can be passed straight to
// the fmt printing functions without materialising the escaped string. %s
// and %v print the escaped text, %q surrounds it with double quotes. A width
// pads with spaces, on the right when the '-' flag is set. %#v prints the
// Go syntax of the Renderer with the raw wrapped bytes, not the escaped text.
func (r Renderer) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprintf(f, "escfmt.Renderer{b:%#v}", r.b)
		return
	}
	switch verb {
	case 's', 'v', 'q':
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(escfmt.Renderer=", verb)
		_, _ = r.WriteTo(f)
		_, _ = f.Write(closeParen)
		return
	}
	pad := 0
	if width, ok := f.Width(); ok {
		n := r.Len()
		if verb == 'q' {
			n += 2
		}
		pad = width - n
	}
	left := f.Flag('-')
	if !left {
		writePadding(f, pad)
	}
	if verb == 'q' {
		_, _ = f.Write(doubleQuote)
	}
	_, _ = r.WriteTo(f)
	if verb == 'q' {
		_, _ = f.Write(doubleQuote)
	}
	if left {
		writePadding(f, pad)
	}
}

func writePadding(w io.Writer, n int) {
	for n > 0 {
		chunk := min(n, len(padding))
		_, _ = w.Write(padding[:chunk])
		n -= chunk
	}
}

// EscapeString returns the escaped text of b. It never fails.
func EscapeString(b []byte) string {
	return Wrap(b).String()
}

// Escape returns the escaped text of s, treating s as raw bytes.
func Escape(s string) string {
	return Wrap(unsafe.Slice(unsafe.StringData(s), len(s))).String()
}

// Append appends the escaped text of b to dst.
func Append(dst, b []byte) []byte {
	return Wrap(b).AppendTo(dst)
}
