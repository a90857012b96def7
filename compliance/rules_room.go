package compliance

import (
	"fmt"

	"github.com/planforge/planforge/plan"
)

// checkRoomAreas enforces the per-type minimum floor areas.
func checkRoomAreas(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	for _, room := range p.Rooms {
		min, ok := code.MinRoomArea[room.Type]
		if !ok {
			continue
		}
		if room.Area.Value < min {
			issues = append(issues, Issue{
				Rule:      "room-area",
				Category:  CategoryViolation,
				Severity:  SeverityMajor,
				Message:   fmt.Sprintf("%s is %.1f m², minimum for %s is %.1f m²", roomName(room), room.Area.Value, room.Type, min),
				ElementID: room.ID,
			})
		}
	}
	return issues
}

// checkCeilingHeights enforces 2.3 m for habitable and 2.1 m for
// non-habitable rooms. Rooms without a recorded ceiling height are
// skipped; plans from early generation passes rarely carry one.
func checkCeilingHeights(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	for _, room := range p.Rooms {
		if room.CeilingHeight == nil {
			continue
		}
		min := code.MinCeilingOther
		if room.Type.Habitable() {
			min = code.MinCeilingHabitable
		}
		if *room.CeilingHeight < min {
			issues = append(issues, Issue{
				Rule:      "ceiling-height",
				Category:  CategoryViolation,
				Severity:  SeverityMajor,
				Message:   fmt.Sprintf("%s ceiling is %.2f m, minimum is %.2f m", roomName(room), *room.CeilingHeight, min),
				ElementID: room.ID,
			})
		}
	}
	return issues
}

// roomName prefers the human label and falls back to the type.
func roomName(room plan.RoomZone) string {
	if room.Label != "" {
		return room.Label
	}
	return string(room.Type)
}
