package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/compliance"
	"github.com/planforge/planforge/plan"
)

// apartment builds a small but fully populated plan that trips several
// rules at once: a cramped bedroom, a narrow door, an unresolved opening
// reference and no windows anywhere.
func apartment() *plan.Plan {
	tall := 2.5
	return &plan.Plan{
		Walls: envelope(),
		Openings: []plan.Opening{
			plan.NewOpening("entry", "south", plan.OpeningDoor, 0.9, 2.1, 1.5),
			plan.NewOpening("narrow", "north", plan.OpeningDoor, 0.7, 2.1, 3.0),
			plan.NewOpening("ghost", "missing-wall", plan.OpeningDoor, 0.9, 2.1, 0.5),
		},
		Rooms: []plan.RoomZone{
			{ID: "bed", Label: "Bedroom", Type: plan.RoomBedroom, Area: plan.Area{Value: 5}, Center: plan.Point{X: 9, Y: 8}, CeilingHeight: &tall},
			{ID: "living", Label: "Living", Type: plan.RoomLiving, Area: plan.Area{Value: 16}, Center: plan.Point{X: 4, Y: 5}, CeilingHeight: &tall},
		},
	}
}

// TestEvaluate_Determinism: identical inputs produce identical reports,
// run after run, issue for issue.
func TestEvaluate_Determinism(t *testing.T) {
	p := apartment()
	code := compliance.DefaultBuildingCode()
	rules := compliance.DefaultRuleSet()

	first := compliance.Evaluate(p, code, rules)
	for i := 0; i < 5; i++ {
		again := compliance.Evaluate(p, code, rules)
		assert.Equal(t, first, again, "run %d diverged", i)
	}
}

// TestEvaluate_PassingMeansZeroViolations: warnings and checks never
// fail a plan; a single violation always does.
func TestEvaluate_PassingMeansZeroViolations(t *testing.T) {
	p := apartment()
	report := compliance.Evaluate(p, compliance.DefaultBuildingCode(), compliance.DefaultRuleSet())

	require.NotEmpty(t, report.Violations)
	assert.False(t, report.Passing)
	assert.Equal(t, len(report.Violations), report.Summary.Violations)
	assert.Equal(t, len(report.Warnings), report.Summary.Warnings)
	assert.Equal(t, len(report.Checks), report.Summary.Checks)
	assert.Contains(t, report.String(), "FAIL")

	// With every rule disabled nothing can fail.
	empty := compliance.Evaluate(p, compliance.DefaultBuildingCode(), compliance.RuleSet{})
	assert.True(t, empty.Passing)
	assert.Empty(t, empty.Violations)
	assert.Nil(t, empty.Egress)
	assert.Contains(t, empty.String(), "PASS")
}

// TestEvaluate_RuleToggles: disabling a rule removes exactly its
// findings and nothing else.
func TestEvaluate_RuleToggles(t *testing.T) {
	p := apartment()
	code := compliance.DefaultBuildingCode()

	full := compliance.Evaluate(p, code, compliance.DefaultRuleSet())

	noRefs := compliance.DefaultRuleSet()
	noRefs.OpeningRefs = false
	trimmed := compliance.Evaluate(p, code, noRefs)

	count := func(r *compliance.Report, rule string) int {
		n := 0
		for _, bucket := range [][]compliance.Issue{r.Violations, r.Warnings, r.Checks} {
			for _, issue := range bucket {
				if issue.Rule == rule {
					n++
				}
			}
		}
		return n
	}

	assert.Positive(t, count(full, "opening-reference"))
	assert.Zero(t, count(trimmed, "opening-reference"))
	assert.Equal(t, count(full, "door-width"), count(trimmed, "door-width"))
	assert.Equal(t, count(full, "room-area"), count(trimmed, "room-area"))
}

// TestEvaluate_DoesNotMutate: the engine is read-only over the plan.
func TestEvaluate_DoesNotMutate(t *testing.T) {
	p := apartment()
	before := p.Clone()

	compliance.Evaluate(p, compliance.DefaultBuildingCode(), compliance.DefaultRuleSet())

	assert.Equal(t, before.Walls, p.Walls)
	assert.Equal(t, before.Openings, p.Openings)
	assert.Equal(t, before.Rooms, p.Rooms)
}
