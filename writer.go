package escfmt

import (
	"io"
	"sync/atomic"
	"unsafe"

	"pkt.systems/escfmt/ansi"
)

// WriterStats captures cumulative counters for a Writer.
type WriterStats struct {
	// In counts input bytes fully rendered.
	In uint64
	// Out counts bytes accepted by the destination, colour sequences included.
	Out uint64
	// Failures counts writes that returned an error.
	Failures uint64
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithHighlight wraps every multi-byte escape sequence in the palette's
// colour and a trailing ansi.Reset. Letter escapes use palette.Escape and
// \xHH escapes use palette.Hex; an empty field leaves that kind uncoloured.
// An empty Palette selects the current ansi.Snapshot, as set by
// ansi.SetPalette.
func WithHighlight(palette ansi.Palette) WriterOption {
	return func(w *Writer) {
		if palette == (ansi.Palette{}) {
			palette = ansi.Snapshot()
		}
		if palette.Escape == "" && palette.Hex == "" {
			return
		}
		st := w.ensureStyle()
		st.escape = []byte(palette.Escape)
		st.hex = []byte(palette.Hex)
		st.reset = []byte(ansi.Reset)
	}
}

// WithLineBreaks passes line feeds through unescaped so the output keeps the
// line structure of the input.
func WithLineBreaks() WriterOption {
	return func(w *Writer) {
		w.ensureStyle().rawNewline = true
	}
}

// WithFailureHook registers fn to be called with every failed write.
func WithFailureHook(fn func(*WriteError)) WriterOption {
	return func(w *Writer) {
		w.onFailure = fn
	}
}

// Writer is an io.Writer that escapes everything written to it before
// passing it on to the destination. Escaping is per byte, so the output does
// not depend on how the input is split across Write calls.
type Writer struct {
	dst       io.Writer
	style     *style
	onFailure func(*WriteError)
	in        atomic.Uint64
	out       atomic.Uint64
	failures  atomic.Uint64
}

// NewWriter returns a Writer escaping into dst. A nil dst discards output.
func NewWriter(dst io.Writer, opts ...WriterOption) *Writer {
	if dst == nil {
		dst = io.Discard
	}
	w := &Writer{dst: dst}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

func (w *Writer) ensureStyle() *style {
	if w.style == nil {
		w.style = &style{}
	}
	return w.style
}

// Write escapes p into the destination. On failure it returns the number of
// input bytes whose escaped form was fully written and a *WriteError.
func (w *Writer) Write(p []byte) (int, error) {
	if w == nil || w.dst == nil {
		return len(p), nil
	}
	consumed, written, err := render(w.dst, p, w.style)
	w.in.Add(uint64(consumed))
	w.out.Add(uint64(written))
	if err != nil {
		werr := &WriteError{Err: err, Offset: consumed, Written: written}
		w.failures.Add(1)
		if w.onFailure != nil {
			w.onFailure(werr)
		}
		return consumed, werr
	}
	return consumed, nil
}

// WriteString is like Write but takes a string, avoiding a copy.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Stats returns cumulative counters.
func (w *Writer) Stats() WriterStats {
	if w == nil {
		return WriterStats{}
	}
	return WriterStats{
		In:       w.in.Load(),
		Out:      w.out.Load(),
		Failures: w.failures.Load(),
	}
}

// Close closes the destination if it implements io.Closer.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	if c, ok := w.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
