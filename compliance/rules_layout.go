package compliance

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/plan"
)

// checkBathrooms enforces accessibility: the footprint must fit the
// turning circle, and the door must swing outward. The explicit swing
// field is authoritative; when it is absent the finding downgrades to a
// warning requesting manual verification.
func checkBathrooms(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	walls := p.WallIndex()
	minArea := code.TurningCircle * code.TurningCircle
	for _, room := range p.Rooms {
		if room.Type != plan.RoomBathroom && room.Type != plan.RoomWC {
			continue
		}
		if room.Area.Value < minArea {
			issues = append(issues, Issue{
				Rule:      "bathroom-access",
				Category:  CategoryViolation,
				Severity:  SeverityMajor,
				Message:   fmt.Sprintf("%s is %.1f m², too small for a %.1f m turning circle", roomName(room), room.Area.Value, code.TurningCircle),
				ElementID: room.ID,
			})
		}
		issues = append(issues, checkBathroomDoor(p, room, walls, code)...)
	}
	return issues
}

// checkBathroomDoor locates the room's door via the proximity heuristic
// and decides whether it swings into the room. A door leaf on the same
// side of its wall as the room center opens inward.
func checkBathroomDoor(p *plan.Plan, room plan.RoomZone, walls map[string]plan.WallSegment, code BuildingCode) []Issue {
	var issues []Issue
	for _, o := range p.Openings {
		if !o.Type.IsDoor() {
			continue
		}
		if !openingNearRoom(o, room, walls, code.LightSearchCoeff) {
			continue
		}
		switch o.Swing {
		case plan.SwingNone:
			// Sliding doors never block the room.
		case plan.SwingLeft, plan.SwingRight:
			wall := walls[o.WallID]
			if swingSide(o.Swing) == roomSide(wall, room.Center) {
				issues = append(issues, Issue{
					Rule:      "bathroom-access",
					Category:  CategoryViolation,
					Severity:  SeverityMajor,
					Message:   fmt.Sprintf("%s door swings inward; accessible bathrooms require an outward swing", roomName(room)),
					ElementID: o.ID,
				})
			}
		default:
			issues = append(issues, Issue{
				Rule:      "bathroom-access",
				Category:  CategoryWarning,
				Severity:  SeverityMinor,
				Message:   fmt.Sprintf("%s door swing is unspecified; verify manually that it opens outward", roomName(room)),
				ElementID: o.ID,
			})
		}
	}
	return issues
}

// roomSide returns +1 when the point lies left of the wall's start→end
// direction, -1 when right, 0 when collinear.
func roomSide(w plan.WallSegment, pt plan.Point) int {
	cross := (w.End.X-w.Start.X)*(pt.Y-w.Start.Y) - (w.End.Y-w.Start.Y)*(pt.X-w.Start.X)
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// swingSide maps a swing direction to the wall side the leaf occupies.
func swingSide(s plan.Swing) int {
	if s == plan.SwingLeft {
		return 1
	}
	return -1
}

// checkLayout applies the corridor, utility and stair heuristics.
func checkLayout(p *plan.Plan, code BuildingCode) []Issue {
	var issues []Issue
	for _, room := range p.Rooms {
		switch room.Type {
		case plan.RoomCorridor:
			issues = append(issues, checkCorridor(room, code)...)
		case plan.RoomUtility:
			if room.Area.Value < code.MinUtilityArea {
				issues = append(issues, Issue{
					Rule:      "utility-size",
					Category:  CategoryWarning,
					Severity:  SeverityMinor,
					Message:   fmt.Sprintf("%s is %.1f m², below the recommended %.1f m²", roomName(room), room.Area.Value, code.MinUtilityArea),
					ElementID: room.ID,
				})
			}
		case plan.RoomStairs:
			issues = append(issues, checkStairs(room, code)...)
		}
	}
	return issues
}

// checkCorridor estimates corridor width from the polygon's bounding box
// when a polygon is present; without one the width cannot be verified
// and a check entry records that.
func checkCorridor(room plan.RoomZone, code BuildingCode) []Issue {
	if len(room.Polygon) < 3 {
		return []Issue{{
			Rule:      "corridor-width",
			Category:  CategoryCheck,
			Severity:  SeverityMinor,
			Message:   fmt.Sprintf("%s has no polygon; corridor width not verifiable", roomName(room)),
			ElementID: room.ID,
		}}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range room.Polygon {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	width := math.Min(maxX-minX, maxY-minY)
	if width < code.MinCorridorWidth {
		return []Issue{{
			Rule:      "corridor-width",
			Category:  CategoryWarning,
			Severity:  SeverityMajor,
			Message:   fmt.Sprintf("%s is %.2f m wide, minimum is %.2f m", roomName(room), width, code.MinCorridorWidth),
			ElementID: room.ID,
		}}
	}
	return nil
}

// checkStairs applies the step formula 2×rise+tread within
// [StairFormulaMin, StairFormulaMax], the rise cap and the headroom
// floor. Rooms without stair data get a check entry instead.
func checkStairs(room plan.RoomZone, code BuildingCode) []Issue {
	if room.Stair == nil {
		return []Issue{{
			Rule:      "stair-geometry",
			Category:  CategoryCheck,
			Severity:  SeverityMinor,
			Message:   fmt.Sprintf("%s has no stair dimensions; verify step geometry manually", roomName(room)),
			ElementID: room.ID,
		}}
	}
	var issues []Issue
	stair := room.Stair
	formula := 2*stair.Rise + stair.Tread
	if formula < code.StairFormulaMin || formula > code.StairFormulaMax {
		issues = append(issues, Issue{
			Rule:      "stair-geometry",
			Category:  CategoryViolation,
			Severity:  SeverityMajor,
			Message:   fmt.Sprintf("2×rise+tread is %.0f cm, must be %.0f–%.0f cm", formula*100, code.StairFormulaMin*100, code.StairFormulaMax*100),
			ElementID: room.ID,
		})
	}
	if stair.Rise > code.MaxStairRise {
		issues = append(issues, Issue{
			Rule:      "stair-geometry",
			Category:  CategoryViolation,
			Severity:  SeverityMajor,
			Message:   fmt.Sprintf("rise is %.0f cm, maximum is %.0f cm", stair.Rise*100, code.MaxStairRise*100),
			ElementID: room.ID,
		})
	}
	if stair.Headroom < code.MinStairHeadroom {
		issues = append(issues, Issue{
			Rule:      "stair-geometry",
			Category:  CategoryViolation,
			Severity:  SeverityMajor,
			Message:   fmt.Sprintf("headroom is %.2f m, minimum is %.2f m", stair.Headroom, code.MinStairHeadroom),
			ElementID: room.ID,
		})
	}
	return issues
}
