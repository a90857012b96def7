package validate

import (
	"github.com/planforge/planforge/compliance"
	"github.com/planforge/planforge/plan"
)

// Aggregate area sanity bounds: the total room area must fall within
// [60%, 120%] of the caller's target, and never below 20 m² absolute.
const (
	areaLowerRatio  = 0.6
	areaUpperRatio  = 1.2
	absoluteMinArea = 20.0
)

// CheckSet toggles individual validation checks. The zero value runs
// nothing; start from DefaultPolicy.
type CheckSet struct {
	Grid         bool `yaml:"grid"`
	ExteriorLoop bool `yaml:"exterior_loop"`
	Dangling     bool `yaml:"dangling"`
	Openings     bool `yaml:"openings"`
	WallLengths  bool `yaml:"wall_lengths"`
	Areas        bool `yaml:"areas"`
}

// Policy is the caller's enforcement contract for one gate invocation.
// It is immutable per call.
type Policy struct {
	Checks CheckSet `yaml:"checks"`

	// RejectOnBlocker and RejectOnCritical decide whether Validate
	// escalates an invalid result to a *RejectionError.
	RejectOnBlocker  bool `yaml:"reject_on_blocker"`
	RejectOnCritical bool `yaml:"reject_on_critical"`

	// TargetArea enables the aggregate area check when positive.
	TargetArea float64 `yaml:"target_area"`

	// GridSize is the quantization unit coordinates are checked against.
	GridSize float64 `yaml:"grid_size"`
	// SeamTolerance is the widest exterior-loop seam still considered
	// coincident.
	SeamTolerance float64 `yaml:"seam_tolerance"`
	// MinWallLength is the shortest acceptable wall; zero-length walls
	// block regardless.
	MinWallLength float64 `yaml:"min_wall_length"`

	// MinRoomArea holds the per-type minimum areas for the area check.
	MinRoomArea map[plan.RoomType]float64 `yaml:"min_room_area"`
}

// DefaultPolicy runs every check, rejects on blockers only, and shares
// the building code's per-type area minimums so the two validators agree
// on what "too small" means.
func DefaultPolicy() Policy {
	return Policy{
		Checks: CheckSet{
			Grid:         true,
			ExteriorLoop: true,
			Dangling:     true,
			Openings:     true,
			WallLengths:  true,
			Areas:        true,
		},
		RejectOnBlocker: true,
		GridSize:        0.1,
		SeamTolerance:   0.01,
		MinWallLength:   0.3,
		MinRoomArea:     compliance.DefaultBuildingCode().MinRoomArea,
	}
}
