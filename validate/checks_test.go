package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/plan"
	"github.com/planforge/planforge/validate"
)

// only builds a policy running just the given checks, with the default
// thresholds.
func only(set validate.CheckSet) validate.Policy {
	pol := validate.DefaultPolicy()
	pol.Checks = set
	return pol
}

func TestCheckGrid(t *testing.T) {
	p := &plan.Plan{Walls: []plan.WallSegment{
		plan.NewWall("off", plan.Point{X: 0.05, Y: 2}, plan.Point{X: 3, Y: 2.13}, 0.1, plan.WallPartition, plan.MaterialGypsum, false),
		plan.NewWall("on", plan.Point{X: 0, Y: 4}, plan.Point{X: 3, Y: 4}, 0.1, plan.WallPartition, plan.MaterialGypsum, false),
	}}

	res := validate.Report(p, only(validate.CheckSet{Grid: true}))
	require.Len(t, res.Issues, 2, "one blocker per off-grid coordinate")
	for _, issue := range res.Issues {
		assert.Equal(t, "grid-alignment", issue.Check)
		assert.Equal(t, validate.SeverityBlocker, issue.Severity)
		assert.Equal(t, "off", issue.ElementID)
	}
	assert.False(t, res.Valid)
}

func TestCheckExteriorLoop(t *testing.T) {
	loopOnly := only(validate.CheckSet{ExteriorLoop: true})

	t.Run("no boundary", func(t *testing.T) {
		interior := plan.NewWall("w", plan.Point{}, plan.Point{X: 5}, 0.1, plan.WallPartition, plan.MaterialGypsum, false)
		res := validate.Report(&plan.Plan{Walls: []plan.WallSegment{interior}}, loopOnly)
		require.Len(t, res.Issues, 1)
		assert.Contains(t, res.Issues[0].Message, "no exterior boundary")
	})

	t.Run("too few walls", func(t *testing.T) {
		res := validate.Report(&plan.Plan{Walls: envelope()[:2]}, loopOnly)
		require.Len(t, res.Issues, 1)
		assert.Contains(t, res.Issues[0].Message, "at least 3")
	})

	t.Run("open seam", func(t *testing.T) {
		walls := envelope()
		walls[3].End = plan.Point{X: 0, Y: 0.4} // west stops short of south's start
		res := validate.Report(&plan.Plan{Walls: walls}, loopOnly)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, validate.SeverityBlocker, res.Issues[0].Severity)
		assert.Contains(t, res.Issues[0].Message, "open by 0.40 m")
	})

	t.Run("closed", func(t *testing.T) {
		res := validate.Report(&plan.Plan{Walls: envelope()}, loopOnly)
		assert.Empty(t, res.Issues)
		assert.True(t, res.Valid)
	})
}

// TestCheckDangling: interior danglers are critical; a dangler whose
// wall is part of the envelope is ambiguous and only warns.
func TestCheckDangling(t *testing.T) {
	danglingOnly := only(validate.CheckSet{Dangling: true})

	t.Run("interior stub", func(t *testing.T) {
		p := &plan.Plan{Walls: append(envelope(),
			plan.NewWall("stub", plan.Point{X: 2, Y: 2}, plan.Point{X: 5, Y: 2}, 0.1, plan.WallPartition, plan.MaterialGypsum, false))}
		res := validate.Report(p, danglingOnly)
		require.Len(t, res.Issues, 2)
		for _, issue := range res.Issues {
			assert.Equal(t, validate.SeverityCritical, issue.Severity)
			assert.Equal(t, "stub", issue.ElementID)
		}
		assert.Equal(t, 2, res.Critical)
		assert.True(t, res.Valid, "criticals invalidate only under RejectOnCritical")
	})

	t.Run("exterior seam downgrades", func(t *testing.T) {
		walls := envelope()
		walls[3].End = plan.Point{X: 0, Y: 0.4}
		res := validate.Report(&plan.Plan{Walls: walls}, danglingOnly)
		require.Len(t, res.Issues, 2, "both sides of the seam dangle")
		for _, issue := range res.Issues {
			assert.Equal(t, validate.SeverityWarning, issue.Severity)
		}
		assert.True(t, res.Valid)
	})
}

func TestCheckOpenings(t *testing.T) {
	p := &plan.Plan{
		Walls: envelope(),
		Openings: []plan.Opening{
			plan.NewOpening("ok", "south", plan.OpeningDoor, 0.9, 2.1, 1.5),
			plan.NewOpening("ghost", "nope", plan.OpeningDoor, 0.9, 2.1, 1.5),
			plan.NewOpening("overhang", "south", plan.OpeningWindow, 0.9, 1.2, 11.5),
		},
	}

	res := validate.Report(p, only(validate.CheckSet{Openings: true}))
	require.Len(t, res.Issues, 2)

	assert.Equal(t, "opening-reference", res.Issues[0].Check)
	assert.Equal(t, validate.SeverityBlocker, res.Issues[0].Severity)
	assert.Equal(t, "ghost", res.Issues[0].ElementID)

	assert.Equal(t, "opening-position", res.Issues[1].Check)
	assert.Equal(t, validate.SeverityCritical, res.Issues[1].Severity)
	assert.Equal(t, "overhang", res.Issues[1].ElementID)
}

func TestCheckWallLengths(t *testing.T) {
	p := &plan.Plan{Walls: []plan.WallSegment{
		{ID: "degenerate", Start: plan.Point{X: 5, Y: 5}, End: plan.Point{X: 5, Y: 5}, Thickness: 0.1, Type: plan.WallPartition, Material: plan.MaterialGypsum},
		plan.NewWall("short", plan.Point{X: 0, Y: 0}, plan.Point{X: 0.2, Y: 0}, 0.1, plan.WallPartition, plan.MaterialGypsum, false),
		plan.NewWall("fine", plan.Point{X: 0, Y: 2}, plan.Point{X: 4, Y: 2}, 0.1, plan.WallPartition, plan.MaterialGypsum, false),
	}}

	res := validate.Report(p, only(validate.CheckSet{WallLengths: true}))
	require.Len(t, res.Issues, 2)
	assert.Equal(t, validate.SeverityBlocker, res.Issues[0].Severity)
	assert.Equal(t, "degenerate", res.Issues[0].ElementID)
	assert.Equal(t, validate.SeverityWarning, res.Issues[1].Severity)
	assert.Equal(t, "short", res.Issues[1].ElementID)
	assert.False(t, res.Valid)
	assert.Equal(t, 1, res.Warnings)
}

func TestCheckAreas(t *testing.T) {
	areasOnly := only(validate.CheckSet{Areas: true})

	t.Run("no rooms", func(t *testing.T) {
		res := validate.Report(&plan.Plan{}, areasOnly)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, "plan has no rooms", res.Issues[0].Message)
		assert.False(t, res.Valid)
	})

	t.Run("below absolute floor", func(t *testing.T) {
		p := &plan.Plan{Rooms: []plan.RoomZone{
			plan.NewRoom("living", "", plan.RoomLiving, 15, plan.Point{}),
		}}
		res := validate.Report(p, areasOnly)
		require.Len(t, res.Issues, 1)
		assert.Contains(t, res.Issues[0].Message, "absolute")
	})

	t.Run("room under type minimum", func(t *testing.T) {
		p := &plan.Plan{Rooms: []plan.RoomZone{
			plan.NewRoom("living", "", plan.RoomLiving, 20, plan.Point{}),
			plan.NewRoom("tiny-bed", "", plan.RoomBedroom, 4, plan.Point{}),
		}}
		res := validate.Report(p, areasOnly)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, "tiny-bed", res.Issues[0].ElementID)
		assert.Equal(t, validate.SeverityBlocker, res.Issues[0].Severity)
	})

	t.Run("overshoot warns", func(t *testing.T) {
		pol := areasOnly
		pol.TargetArea = 100
		p := &plan.Plan{Rooms: []plan.RoomZone{
			plan.NewRoom("living", "", plan.RoomLiving, 70, plan.Point{}),
			plan.NewRoom("bed", "", plan.RoomBedroom, 60, plan.Point{}),
		}}
		res := validate.Report(p, pol)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, validate.SeverityWarning, res.Issues[0].Severity)
		assert.Contains(t, res.Issues[0].Message, "total area too large")
		assert.True(t, res.Valid, "overshoot alone does not invalidate")
	})
}
