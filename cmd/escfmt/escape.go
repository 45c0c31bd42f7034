package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"pkt.systems/escfmt"
	"pkt.systems/escfmt/ansi"
)

// lastByteWriter remembers the final byte that passed through it.
type lastByteWriter struct {
	w    io.Writer
	last byte
	seen bool
}

func (l *lastByteWriter) Write(p []byte) (int, error) {
	n, err := l.w.Write(p)
	if n > 0 {
		l.last = p[n-1]
		l.seen = true
	}
	return n, err
}

func (l *lastByteWriter) reset() {
	l.last, l.seen = 0, false
}

// escaper renders each input through one escfmt.Writer into a buffered
// destination.
type escaper struct {
	cfg     config
	newline bool
	buf     *bufio.Writer
	esc     *escfmt.Writer
	track   *lastByteWriter
	log     zerolog.Logger
}

func newEscaper(cfg config, out io.Writer, terminal bool, log zerolog.Logger) (*escaper, error) {
	var opts []escfmt.WriterOption
	if cfg.Lines {
		opts = append(opts, escfmt.WithLineBreaks())
	}
	if cfg.Color.resolve(terminal && !cfg.NoColor) {
		palette, ok := ansi.LookupPalette(cfg.Palette)
		if !ok {
			return nil, fmt.Errorf("unknown palette %q (available: %v)", cfg.Palette, ansi.AvailablePaletteNames())
		}
		ansi.SetPalette(*palette)
		opts = append(opts, escfmt.WithHighlight(ansi.Snapshot()))
	}
	opts = append(opts, escfmt.WithFailureHook(func(werr *escfmt.WriteError) {
		log.Debug().Err(werr.Err).Int("offset", werr.Offset).Int64("written", werr.Written).Msg("escfmt.write.failed")
	}))
	buf := bufio.NewWriter(out)
	e := &escaper{
		cfg:     cfg,
		newline: cfg.Newline.resolve(terminal),
		buf:     buf,
		esc:     escfmt.NewWriter(buf, opts...),
		log:     log,
	}
	e.track = &lastByteWriter{w: e.esc}
	return e, nil
}

// escapeLiteral renders each argument as its own input.
func (e *escaper) escapeLiteral(args []string) error {
	for i, arg := range args {
		e.track.reset()
		if _, err := io.WriteString(e.track, arg); err != nil {
			return fmt.Errorf("escape argument %d: %w", i+1, err)
		}
		if err := e.endInput(); err != nil {
			return err
		}
	}
	return e.flush()
}

// escapeFiles renders each named file, or stdin for "-" or when names is
// empty.
func (e *escaper) escapeFiles(names []string, stdin io.Reader) error {
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		if err := e.escapeFile(name, stdin); err != nil {
			return err
		}
	}
	return e.flush()
}

func (e *escaper) escapeFile(name string, stdin io.Reader) (err error) {
	var r io.Reader
	label := name
	if name == "-" {
		if stdin == nil {
			return errors.New("no standard input available")
		}
		r, label = stdin, "<stdin>"
	} else {
		f, openErr := os.Open(name)
		if openErr != nil {
			return fmt.Errorf("open input: %w", openErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", name, closeErr)
			}
		}()
		r = f
	}

	before := e.esc.Stats()
	e.track.reset()
	if _, err := io.Copy(e.track, r); err != nil {
		return fmt.Errorf("escape %s: %w", label, err)
	}
	if err := e.endInput(); err != nil {
		return err
	}
	after := e.esc.Stats()
	e.log.Debug().
		Str("input", label).
		Uint64("bytes_in", after.In-before.In).
		Uint64("bytes_out", after.Out-before.Out).
		Msg("escfmt.input.done")
	return nil
}

// endInput appends the trailing line feed when enabled. In line mode an input
// that already ended with a raw line feed gets no second one.
func (e *escaper) endInput() error {
	if !e.newline {
		return nil
	}
	if e.cfg.Lines && e.track.seen && e.track.last == '\n' {
		return nil
	}
	if err := e.buf.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (e *escaper) flush() error {
	if err := e.buf.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
