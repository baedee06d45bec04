package dynamics

import "errors"

// Domain errors for engine configuration.
var (
	// ErrInvalidMaxIter indicates a zero or negative iteration budget.
	ErrInvalidMaxIter = errors.New("dynamics: max iteration count must be positive")

	// ErrInvalidEscapeRadius indicates a non-positive escape radius.
	ErrInvalidEscapeRadius = errors.New("dynamics: escape radius must be positive")

	// ErrNilFamily indicates a missing family value.
	ErrNilFamily = errors.New("dynamics: family must not be nil")
)

// ValidateFamily rejects invalid family configuration eagerly, before any
// computation starts.
func ValidateFamily(f Family) error {
	if f == nil {
		return ErrNilFamily
	}
	if f.MaxIter() <= 0 {
		return ErrInvalidMaxIter
	}
	if f.EscapeRadius() <= 0 {
		return ErrInvalidEscapeRadius
	}
	return nil
}
