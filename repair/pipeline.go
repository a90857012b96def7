package repair

import (
	"github.com/planforge/planforge/plan"
)

// stageFn is the contract every stage satisfies: a pure function of
// (walls, Options) returning a new wall slice and its report. Stages
// never mutate their input and never fail on plan content.
type stageFn func([]plan.WallSegment, Options) ([]plan.WallSegment, StageReport)

// stages lists the pipeline in its fixed execution order.
var stages = [stageCount]stageFn{
	snapToGrid,
	normalizeAngles,
	mergeDuplicatePoints,
	reconnectDangling,
	closeExteriorLoop,
	dropShortWalls,
}

// Run executes all six repair stages in order against a clone of p and
// returns the repaired plan with an aggregate report. The input plan is
// never mutated. The only possible error is invalid Options; plan
// content problems surface as report warnings instead.
//
// Re-running Run on its own output with identical Options yields zero
// additional fixes.
func Run(p *plan.Plan, opts Options) (*plan.Plan, *Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	repaired := p.Clone()
	walls := repaired.Walls
	report := &Report{}
	for i, stage := range stages {
		walls, report.Stages[i] = stage(walls, opts)
		report.TotalFixes += report.Stages[i].FixCount()
	}
	repaired.Walls = walls
	report.FinalWallCount = len(walls)
	return repaired, report, nil
}
