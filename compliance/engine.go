package compliance

import (
	"github.com/planforge/planforge/plan"
)

// Evaluate runs every enabled rule against the plan and buckets the
// findings. The plan is read-only; the report is deterministic for a
// given (plan, code, rules) triple. Evaluate never fails: structural
// problems become critical violations, not errors.
func Evaluate(p *plan.Plan, code BuildingCode, rules RuleSet) *Report {
	var issues []Issue

	if rules.RoomArea {
		issues = append(issues, checkRoomAreas(p, code)...)
	}
	if rules.CeilingHeight {
		issues = append(issues, checkCeilingHeights(p, code)...)
	}
	if rules.DoorWidth {
		issues = append(issues, checkDoorWidths(p, code)...)
	}
	if rules.OpeningRefs {
		issues = append(issues, checkOpeningReferences(p)...)
	}
	if rules.NaturalLight {
		issues = append(issues, checkNaturalLight(p, code)...)
	}
	if rules.Connectivity {
		issues = append(issues, checkConnectivity(p)...)
	}
	if rules.RescueWindow {
		issues = append(issues, checkRescueWindows(p, code)...)
	}
	if rules.Bathroom {
		issues = append(issues, checkBathrooms(p, code)...)
	}
	if rules.Threshold {
		issues = append(issues, checkThresholds(p, code)...)
	}
	if rules.Layout {
		issues = append(issues, checkLayout(p, code)...)
	}

	report := &Report{}
	if rules.Egress {
		var egressIssues []Issue
		egressIssues, report.Egress = analyzeEgress(p, code)
		issues = append(issues, egressIssues...)
	}

	for _, issue := range issues {
		switch issue.Category {
		case CategoryViolation:
			report.Violations = append(report.Violations, issue)
		case CategoryWarning:
			report.Warnings = append(report.Warnings, issue)
		case CategoryCheck:
			report.Checks = append(report.Checks, issue)
		}
	}
	report.Summary = Summary{
		Violations: len(report.Violations),
		Warnings:   len(report.Warnings),
		Checks:     len(report.Checks),
	}
	report.Passing = report.Summary.Violations == 0
	return report
}
