package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

type teeWriter struct {
	writers []io.Writer
}

func newTeeWriter(writers ...io.Writer) io.Writer {
	return &teeWriter{writers: writers}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	for _, w := range t.writers {
		n, err := w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// ownedOutput closes a file the command opened itself, exactly once.
type ownedOutput struct {
	writer   io.Writer
	closer   io.Closer
	closeErr error
	once     sync.Once
}

func newOwnedOutput(writer io.Writer, closer io.Closer) io.Writer {
	if writer == nil {
		writer = io.Discard
	}
	if closer == nil {
		return writer
	}
	return &ownedOutput{writer: writer, closer: closer}
}

func (o *ownedOutput) Write(p []byte) (int, error) {
	return o.writer.Write(p)
}

func (o *ownedOutput) Close() error {
	o.once.Do(func() {
		o.closeErr = o.closer.Close()
	})
	return o.closeErr
}

// closeOutput closes w only when it is an output the command owns; stdout and
// stderr are never closed.
func closeOutput(w io.Writer) error {
	if owned, ok := w.(*ownedOutput); ok {
		return owned.Close()
	}
	return nil
}

// resolveOutput maps the --output value to a writer. It accepts stdout,
// stderr, default (the command's stdout), a file path, or
// stdout+/stderr+/default+<path> to tee into a file as well.
func resolveOutput(value string, base, stderr io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if base == nil {
		base = io.Discard
	}
	if trimmed == "" {
		return base, nil
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout", "default", "-":
		return base, nil
	case "stderr":
		return stderr, nil
	}
	const (
		stdoutPrefix  = "stdout+"
		stderrPrefix  = "stderr+"
		defaultPrefix = "default+"
	)
	var primary io.Writer
	var path string
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		primary, path = base, trimmed[len(stdoutPrefix):]
	case strings.HasPrefix(lowered, defaultPrefix):
		primary, path = base, trimmed[len(defaultPrefix):]
	case strings.HasPrefix(lowered, stderrPrefix):
		primary, path = stderr, trimmed[len(stderrPrefix):]
	default:
		file, err := openOutputFile(trimmed)
		if err != nil {
			return nil, err
		}
		return newOwnedOutput(file, file), nil
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return primary, nil
	}
	file, err := openOutputFile(path)
	if err != nil {
		return nil, err
	}
	return newOwnedOutput(newTeeWriter(primary, file), file), nil
}

func openOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %q: %w", path, err)
	}
	return file, nil
}
