package swiftlogger

import (
	"os"

	"github.com/rxtech-lab/argo-logger/internal/types"
)

var (
	osStdout = os.Stdout
	osStderr = os.Stderr
)

// helperSink hands each flushed batch of complete lines to a LoggerHelper callback.
type helperSink struct {
	deliver func(line string) error
	pending []byte
}

func (s *helperSink) WriteAll(p []byte) error {
	s.pending = append(s.pending, p...)

	return nil
}

func (s *helperSink) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}

	lines := string(s.pending)
	s.pending = s.pending[:0]

	return s.deliver(lines)
}

func newInstanceID() string {
	return types.NewUUID4().String()
}

func instanceString(id [16]byte) string {
	return types.UUID4FromBytes(id).String()
}
