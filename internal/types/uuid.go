package types

import (
	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-logger/pkg/errors"
)

// UUID4 tags a single process invocation.
type UUID4 struct {
	value uuid.UUID
}

// NewUUID4 returns a random version 4 UUID.
func NewUUID4() UUID4 {
	return UUID4{value: uuid.New()}
}

// ParseUUID4 parses the canonical textual form of a version 4 UUID.
func ParseUUID4(s string) (UUID4, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID4{}, errors.Wrapf(errors.ErrCodeInvalidInstanceID, err, "invalid instance id %q", s)
	}

	if parsed.Version() != 4 || parsed.Variant() != uuid.RFC4122 {
		return UUID4{}, errors.Newf(errors.ErrCodeInvalidInstanceID, "instance id %q is not a version 4 uuid", s)
	}

	return UUID4{value: parsed}, nil
}

// UUID4FromBytes builds a UUID4 from its 16 raw bytes without validation.
func UUID4FromBytes(b [16]byte) UUID4 {
	return UUID4{value: uuid.UUID(b)}
}

// Bytes returns the 128-bit value.
func (u UUID4) Bytes() [16]byte {
	return u.value
}

// IsZero reports whether u is the all-zero value.
func (u UUID4) IsZero() bool {
	return u.value == uuid.Nil
}

func (u UUID4) String() string {
	return u.value.String()
}
