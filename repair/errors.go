package repair

import "errors"

// Sentinel errors for option validation. Stage functions themselves
// never fail; plan-content problems become report warnings instead.
var (
	// ErrBadGridSize indicates GridSize ≤ 0.
	ErrBadGridSize = errors.New("repair: grid size must be positive")
	// ErrBadTolerance indicates SnapTolerance ≤ 0 or AngleTolerance
	// outside (0, 45).
	ErrBadTolerance = errors.New("repair: tolerance out of range")
	// ErrBadPassLimit indicates MaxPasses < 1.
	ErrBadPassLimit = errors.New("repair: pass limit must be at least 1")
	// ErrBadMinLength indicates MinWallLength < 0.
	ErrBadMinLength = errors.New("repair: minimum wall length must be non-negative")
)
