package types

import (
	"strings"

	"github.com/rxtech-lab/argo-logger/pkg/errors"
)

// TraderID identifies the trader a process runs for, e.g. "TRADER-001".
// The value is a name and a tag joined by a hyphen.
type TraderID string

// NewTraderID validates value and returns it as a TraderID.
func NewTraderID(value string) (TraderID, error) {
	if value == "" {
		return "", errors.New(errors.ErrCodeInvalidTraderID, "trader id must not be empty")
	}

	name, tag, found := strings.Cut(value, "-")
	if !found || name == "" || tag == "" {
		return "", errors.Newf(errors.ErrCodeInvalidTraderID,
			"trader id %q must be a name and tag joined by '-'", value)
	}

	return TraderID(value), nil
}

// MustTraderID is like NewTraderID but panics on an invalid value.
func MustTraderID(value string) TraderID {
	id, err := NewTraderID(value)
	if err != nil {
		panic(err)
	}

	return id
}

func (t TraderID) String() string {
	return string(t)
}
