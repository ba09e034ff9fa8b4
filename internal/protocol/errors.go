package protocol

import (
	"github.com/pkg/errors"
)

// ErrParse is the only failure Extract reports. Match it with errors.Is.
var ErrParse = errors.New("could not parse provided protobuf bytes")

// ParseError carries a diagnostic for a failed top-level decode. The internal
// cause is kept as text only so callers cannot branch on it.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return ErrParse.Error()
	}
	return ErrParse.Error() + ": " + e.Reason
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
