package plan

import "errors"

// Sentinel errors for document-model validation. Callers branch with
// errors.Is; messages are stable.
var (
	// ErrDegenerateWall indicates a wall whose start and end coincide.
	ErrDegenerateWall = errors.New("plan: wall start and end coincide")
	// ErrBadThickness indicates a wall thickness outside [0.08, 0.6] m.
	ErrBadThickness = errors.New("plan: wall thickness out of range")
	// ErrUnknownWall indicates an opening referencing a missing wall ID.
	ErrUnknownWall = errors.New("plan: opening references unknown wall")
	// ErrOpeningOutOfBounds indicates an opening offset or extent beyond
	// the end of its wall.
	ErrOpeningOutOfBounds = errors.New("plan: opening exceeds wall bounds")
	// ErrNonPositiveArea indicates a room with area ≤ 0.
	ErrNonPositiveArea = errors.New("plan: room area must be positive")
)
