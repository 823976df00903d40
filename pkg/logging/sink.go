package logging

import (
	"bufio"
	"io"
)

// Sink is the destination a Logger writes complete lines to.
type Sink interface {
	// WriteAll writes all of p or returns an error.
	WriteAll(p []byte) error
	// Flush pushes any buffered bytes to the underlying stream.
	Flush() error
}

// StreamSink is a buffered Sink over an io.Writer such as os.Stdout.
//
// A StreamSink is not safe for concurrent use.
type StreamSink struct {
	w   io.Writer
	buf *bufio.Writer
}

// NewStreamSink returns a StreamSink buffering writes to w.
func NewStreamSink(w io.Writer) *StreamSink {
	full := &fullWriter{w: w}

	return &StreamSink{
		w:   full,
		buf: bufio.NewWriter(full),
	}
}

// WriteAll buffers p. On failure the pending buffer is dropped so a later call
// can succeed once the stream recovers.
func (s *StreamSink) WriteAll(p []byte) error {
	if _, err := s.buf.Write(p); err != nil {
		s.buf.Reset(s.w)

		return err
	}

	return nil
}

// Flush writes the buffered bytes to the stream.
func (s *StreamSink) Flush() error {
	if err := s.buf.Flush(); err != nil {
		s.buf.Reset(s.w)

		return err
	}

	return nil
}

// Buffered returns the number of bytes waiting to be flushed.
func (s *StreamSink) Buffered() int {
	return s.buf.Buffered()
}

// fullWriter retries short writes until p is written or the stream fails.
type fullWriter struct {
	w io.Writer
}

func (f *fullWriter) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := f.w.Write(p[written:])
		written += n

		if err != nil {
			return written, err
		}

		if n == 0 {
			return written, io.ErrShortWrite
		}
	}

	return written, nil
}
