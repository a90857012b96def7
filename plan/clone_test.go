package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/plan"
)

// TestPlan_Clone_DeepCopy verifies that mutating a clone leaves the
// original untouched: wall slices, polygons and pointer-valued optionals
// must all be re-allocated.
func TestPlan_Clone_DeepCopy(t *testing.T) {
	ceiling := 2.5
	threshold := 0.02
	original := &plan.Plan{
		Walls: []plan.WallSegment{
			plan.NewWall("w1", plan.Point{}, plan.Point{X: 4}, 0.2, plan.WallExterior, plan.MaterialConcrete, true),
		},
		Openings: []plan.Opening{
			{ID: "o1", WallID: "w1", Type: plan.OpeningDoor, Width: 0.9, Height: 2.1, ThresholdHeight: &threshold},
		},
		Rooms: []plan.RoomZone{
			{
				ID:            "r1",
				Type:          plan.RoomLiving,
				Area:          plan.Area{Value: 20},
				Polygon:       []plan.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 5}, {X: 0, Y: 5}},
				CeilingHeight: &ceiling,
				Stair:         &plan.StairGeometry{Rise: 0.18, Tread: 0.27, Headroom: 2.1},
			},
		},
		Meta: plan.Metadata{TargetArea: 100, FloorLabel: "1"},
	}

	clone := original.Clone()
	require.NotNil(t, clone)

	clone.Walls[0].End.X = 99
	clone.Rooms[0].Polygon[0].X = 99
	*clone.Rooms[0].CeilingHeight = 99
	*clone.Openings[0].ThresholdHeight = 99
	clone.Rooms[0].Stair.Rise = 99

	assert.Equal(t, 4.0, original.Walls[0].End.X, "wall slice must not be shared")
	assert.Equal(t, 0.0, original.Rooms[0].Polygon[0].X, "polygon must not be shared")
	assert.Equal(t, 2.5, *original.Rooms[0].CeilingHeight, "ceiling pointer must not be shared")
	assert.Equal(t, 0.02, *original.Openings[0].ThresholdHeight, "threshold pointer must not be shared")
	assert.Equal(t, 0.18, original.Rooms[0].Stair.Rise, "stair pointer must not be shared")
	assert.Equal(t, original.Meta, clone.Meta)
}

// TestPlan_Clone_Nil confirms a nil plan clones to nil.
func TestPlan_Clone_Nil(t *testing.T) {
	var p *plan.Plan
	assert.Nil(t, p.Clone())
}
