package sections

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSections is returned when a PR body lacks required sections.
var ErrMissingSections = errors.New("missing required sections")

// SectionError represents a section check failure with the sections involved
type SectionError struct {
	Op      string   // Operation that failed
	Missing []string // Sections that were not found
	Err     error    // Underlying error
}

func (e *SectionError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("section %s failed: %v: %s", e.Op, e.Err, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("section %s failed: %v", e.Op, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// NewSectionError creates a new SectionError
func NewSectionError(op string, missing []string, err error) *SectionError {
	return &SectionError{
		Op:      op,
		Missing: missing,
		Err:     err,
	}
}
