package repair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
	"github.com/planforge/planforge/repair"
)

// messyRectangle returns a 12×10 exterior envelope whose corners carry
// generator noise: off-grid coordinates, slightly non-orthogonal walls
// and mismatched seams small enough for the pipeline to repair.
func messyRectangle() *plan.Plan {
	mk := func(id string, sx, sy, ex, ey float64) plan.WallSegment {
		return plan.NewWall(id, plan.Point{X: sx, Y: sy}, plan.Point{X: ex, Y: ey}, 0.3, plan.WallExterior, plan.MaterialConcrete, true)
	}
	return &plan.Plan{
		Walls: []plan.WallSegment{
			mk("south", 0.03, -0.02, 11.98, 0.01),
			mk("east", 12.02, -0.03, 12.01, 9.97),
			mk("north", 11.99, 10.04, 0.02, 10.01),
			mk("west", -0.01, 9.98, 0.01, 0.04),
		},
	}
}

// TestRun_Idempotence re-runs the pipeline on its own output and
// requires zero additional fixes under identical options.
func TestRun_Idempotence(t *testing.T) {
	opts := repair.DefaultOptions()

	first, firstReport, err := repair.Run(messyRectangle(), opts)
	require.NoError(t, err)
	require.Greater(t, firstReport.TotalFixes, 0, "the fixture must need repairs")

	second, secondReport, err := repair.Run(first, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, secondReport.TotalFixes, "repaired plan must need no further fixes")
	assert.Equal(t, first.Walls, second.Walls, "walls must be unchanged on the second run")
}

// TestRun_GridInvariant asserts that after repair every wall coordinate
// is an exact multiple of the grid size within float epsilon.
func TestRun_GridInvariant(t *testing.T) {
	opts := repair.DefaultOptions()
	repaired, _, err := repair.Run(messyRectangle(), opts)
	require.NoError(t, err)

	for _, w := range repaired.Walls {
		for _, v := range []float64{w.Start.X, w.Start.Y, w.End.X, w.End.Y} {
			assert.True(t, geom.OnGrid(v, opts.GridSize), "wall %s coordinate %v is off-grid", w.ID, v)
		}
	}
}

// TestRun_OrthogonalityInvariant: a wall within the angle tolerance of a
// right angle is corrected to exactly 0/90/180/270°, with its length
// preserved to within one grid unit.
func TestRun_OrthogonalityInvariant(t *testing.T) {
	skewed := plan.NewWall("skew", plan.Point{X: 0, Y: 0}, plan.Point{X: 5, Y: 0.1}, 0.2, plan.WallPartition, plan.MaterialGypsum, false)
	originalLength := skewed.Length()

	repaired, _, err := repair.Run(&plan.Plan{Walls: []plan.WallSegment{skewed}}, repair.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, repaired.Walls, 1)

	w := repaired.Walls[0]
	assert.Equal(t, plan.Point{X: 5, Y: 0}, w.End, "wall must be rotated onto the axis")
	assert.InDelta(t, originalLength, w.Length(), repair.DefaultGridSize, "length preserved to within one grid unit")
	assert.Equal(t, 0.0, w.Angle())
}

// TestRun_DiagonalWallsUntouched: a genuinely diagonal wall lies outside
// the tolerance band and must not be rotated.
func TestRun_DiagonalWallsUntouched(t *testing.T) {
	diagonal := plan.NewWall("diag", plan.Point{X: 0, Y: 0}, plan.Point{X: 4, Y: 4}, 0.2, plan.WallPartition, plan.MaterialTimber, false)

	repaired, _, err := repair.Run(&plan.Plan{Walls: []plan.WallSegment{diagonal}}, repair.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, repaired.Walls, 1)
	assert.Equal(t, plan.Point{X: 4, Y: 4}, repaired.Walls[0].End)
}

// TestRun_DoesNotMutateInput pins the copy-on-transform contract.
func TestRun_DoesNotMutateInput(t *testing.T) {
	input := messyRectangle()
	before := input.Clone()

	_, _, err := repair.Run(input, repair.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, before, input, "Run must not mutate its input plan")
}

// TestRun_BadOptions: the only hard failure Run knows is invalid
// options.
func TestRun_BadOptions(t *testing.T) {
	opts := repair.DefaultOptions()
	opts.GridSize = 0
	_, _, err := repair.Run(messyRectangle(), opts)
	assert.ErrorIs(t, err, repair.ErrBadGridSize)
}

// TestRun_ShortWallElimination drops fragments below the minimum length
// and reports each removal.
func TestRun_ShortWallElimination(t *testing.T) {
	p := messyRectangle()
	p.Walls = append(p.Walls, plan.NewWall("stub", plan.Point{X: 5, Y: 5}, plan.Point{X: 5.2, Y: 5}, 0.1, plan.WallPartition, plan.MaterialGypsum, false))

	repaired, report, err := repair.Run(p, repair.DefaultOptions())
	require.NoError(t, err)

	for _, w := range repaired.Walls {
		assert.NotEqual(t, "stub", w.ID, "the 0.2 m stub must be removed")
	}
	assert.Equal(t, len(repaired.Walls), report.FinalWallCount)

	last := report.Stages[len(report.Stages)-1]
	assert.Equal(t, repair.StageShortWalls, last.Stage)
	require.Len(t, last.Fixes, 1)
	assert.Equal(t, "stub", last.Fixes[0].WallID)
}

// TestRun_MergesCoincidentEndpoints: endpoints within the same 0.1 m
// cell collapse onto one exact point.
func TestRun_MergesCoincidentEndpoints(t *testing.T) {
	a := plan.NewWall("a", plan.Point{X: 0, Y: 0}, plan.Point{X: 6.03, Y: 0.02}, 0.2, plan.WallPartition, plan.MaterialGypsum, false)
	b := plan.NewWall("b", plan.Point{X: 5.98, Y: -0.02}, plan.Point{X: 6, Y: 5}, 0.2, plan.WallPartition, plan.MaterialGypsum, false)

	repaired, _, err := repair.Run(&plan.Plan{Walls: []plan.WallSegment{a, b}}, repair.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, repaired.Walls, 2)
	assert.Equal(t, repaired.Walls[0].End, repaired.Walls[1].Start, "touching endpoints must coincide exactly")
}

// TestReport_Summary sanity-checks the human-readable digest.
func TestReport_Summary(t *testing.T) {
	_, report, err := repair.Run(messyRectangle(), repair.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, report.Summary(), "fixes")
}
