package scales

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey matches any *InvalidKeyError via errors.Is.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidDegree matches any *InvalidDegreeError via errors.Is.
	ErrInvalidDegree = errors.New("invalid degree")
)

// InvalidKeyError reports a key that is not in the scale table.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %q: not one of the %d major keys", e.Key, len(keys))
}

func (e *InvalidKeyError) Is(target error) bool { return target == ErrInvalidKey }

// InvalidDegreeError reports a degree outside 1..7.
type InvalidDegreeError struct {
	Degree int
}

func (e *InvalidDegreeError) Error() string {
	return fmt.Sprintf("invalid degree %d: must be between 1 and %d", e.Degree, DegreeCount)
}

func (e *InvalidDegreeError) Is(target error) bool { return target == ErrInvalidDegree }
