package escfmt

import (
	"fmt"
	"io"
)

// WriteError reports a sink failure during rendering. It is the only error
// this package produces, and it always wraps the error returned by the sink
// (io.ErrShortWrite when the sink accepted fewer bytes without complaining).
type WriteError struct {
	// Err is the sink error.
	Err error
	// Offset is the index of the first input byte whose escaped form was not
	// fully accepted by the sink.
	Offset int
	// Written counts escaped bytes the sink accepted before failing.
	Written int64
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("escfmt: write failed at input offset %d after %d bytes: %v", e.Offset, e.Written, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// writeAll hands p to w once and normalises the result: the count is clamped
// to [0, len(p)] and a short write without an error becomes io.ErrShortWrite.
func writeAll(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(p)
	if n < 0 {
		n = 0
	} else if n > len(p) {
		n = len(p)
	}
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}
