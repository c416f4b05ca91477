package writers

import (
	"io"
	"os"
)

// LazyWriteCloser delays initialization until the writer is written to.
type LazyWriteCloser struct {
	init   func() (io.WriteCloser, error)
	writer io.WriteCloser
}

// NewLazyWriteCloser returns a LazyWriteCloser whose init is called once, on
// the first Write.
func NewLazyWriteCloser(init func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{init: init}
}

// NewLazyFile opens (and truncates) path on the first Write. Nothing is
// created if nothing is written.
func NewLazyFile(path string) *LazyWriteCloser {
	return NewLazyWriteCloser(func() (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	})
}

func (f *LazyWriteCloser) Write(p []byte) (int, error) {
	if f.writer == nil {
		var err error
		f.writer, err = f.init()
		if err != nil {
			return 0, err
		}
	}

	return f.writer.Write(p)
}

func (f *LazyWriteCloser) Close() error {
	if f.writer != nil {
		return f.writer.Close()
	}
	return nil
}

// NopCloser wraps w, typically os.Stdout, so closing it is a no-op.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
