package compliance

import (
	"fmt"

	"github.com/planforge/planforge/plan"
)

// checkDoorWidths applies the hard 0.77 m floor (violation) and the soft
// 0.9 m floor (warning). Doors meeting the recommended width yield a
// passing check entry.
func checkDoorWidths(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	for _, o := range p.Openings {
		if !o.Type.IsDoor() {
			continue
		}
		switch {
		case o.Width < code.MinDoorWidth:
			issues = append(issues, Issue{
				Rule:      "door-width",
				Category:  CategoryViolation,
				Severity:  SeverityMajor,
				Message:   fmt.Sprintf("door is %.2f m wide, hard minimum is %.2f m", o.Width, code.MinDoorWidth),
				ElementID: o.ID,
			})
		case o.Width < code.RecommendedDoorWidth:
			issues = append(issues, Issue{
				Rule:      "door-width",
				Category:  CategoryWarning,
				Severity:  SeverityMinor,
				Message:   fmt.Sprintf("door is %.2f m wide, recommended minimum is %.2f m", o.Width, code.RecommendedDoorWidth),
				ElementID: o.ID,
			})
		default:
			issues = append(issues, Issue{
				Rule:      "door-width",
				Category:  CategoryCheck,
				Severity:  SeverityMinor,
				Message:   fmt.Sprintf("door width %.2f m meets the recommended %.2f m", o.Width, code.RecommendedDoorWidth),
				ElementID: o.ID,
			})
		}
	}
	return issues
}

// checkOpeningReferences verifies referential integrity: every opening
// must resolve to an existing wall. Broken references are critical; all
// other opening rules skip unresolved openings.
func checkOpeningReferences(p *plan.Plan) []Issue {
	var issues []Issue
	walls := p.WallIndex()
	for _, o := range p.Openings {
		if _, ok := walls[o.WallID]; !ok {
			issues = append(issues, Issue{
				Rule:      "opening-reference",
				Category:  CategoryViolation,
				Severity:  SeverityCritical,
				Message:   fmt.Sprintf("opening references missing wall %q", o.WallID),
				ElementID: o.ID,
			})
		}
	}
	return issues
}

// checkThresholds caps door threshold heights at 25 mm when specified.
func checkThresholds(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	for _, o := range p.Openings {
		if !o.Type.IsDoor() || o.ThresholdHeight == nil {
			continue
		}
		if *o.ThresholdHeight > code.MaxThresholdHeight {
			issues = append(issues, Issue{
				Rule:      "threshold-height",
				Category:  CategoryViolation,
				Severity:  SeverityMinor,
				Message:   fmt.Sprintf("threshold is %.0f mm high, maximum is %.0f mm", *o.ThresholdHeight*1000, code.MaxThresholdHeight*1000),
				ElementID: o.ID,
			})
		}
	}
	return issues
}

// checkRescueWindows requires every bedroom to have at least one
// associated window whose width+height sum qualifies it as an emergency
// escape. Association uses the same proximity heuristic as the
// natural-light rule.
func checkRescueWindows(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	walls := p.WallIndex()
	for _, room := range p.Rooms {
		if room.Type != plan.RoomBedroom {
			continue
		}
		hasRescue := false
		for _, o := range p.Openings {
			if !o.Type.IsWindow() {
				continue
			}
			if !openingNearRoom(o, room, walls, code.LightSearchCoeff) {
				continue
			}
			if o.Width+o.Height >= code.MinRescueOpening {
				hasRescue = true
				break
			}
		}
		if !hasRescue {
			issues = append(issues, Issue{
				Rule:      "rescue-window",
				Category:  CategoryViolation,
				Severity:  SeverityMajor,
				Message:   fmt.Sprintf("%s has no rescue window (width+height ≥ %.1f m required)", roomName(room), code.MinRescueOpening),
				ElementID: room.ID,
			})
		}
	}
	return issues
}
