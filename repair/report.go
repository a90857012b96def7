package repair

import (
	"fmt"
	"strings"
)

// Stage names the six pipeline stages in their fixed execution order.
type Stage string

const (
	StageGridSnap      Stage = "grid-snap"
	StageAngles        Stage = "angle-normalize"
	StageMergePoints   Stage = "merge-duplicate-points"
	StageDangling      Stage = "reconnect-dangling"
	StageExteriorLoop  Stage = "close-exterior-loop"
	StageShortWalls    Stage = "drop-short-walls"
	stageCount               = 6
)

// Fix records one autonomous repair made by a stage. Fixes are always
// non-fatal; they exist for UX and logging on the caller's side.
type Fix struct {
	Stage  Stage  `json:"stage"`
	WallID string `json:"wallId,omitempty"`
	Detail string `json:"detail"`
}

// StageReport is one stage's outcome: the fixes it applied and the
// problems it saw but could not repair.
type StageReport struct {
	Stage    Stage    `json:"stage"`
	Fixes    []Fix    `json:"fixes,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// FixCount returns the number of fixes this stage applied.
func (r StageReport) FixCount() int { return len(r.Fixes) }

// Report aggregates the whole pipeline run.
type Report struct {
	Stages         [stageCount]StageReport `json:"stages"`
	TotalFixes     int                     `json:"totalFixes"`
	FinalWallCount int                     `json:"finalWallCount"`
}

// Warnings returns every unresolved problem across all stages, in stage
// order.
func (r *Report) Warnings() []string {
	var all []string
	for _, s := range r.Stages {
		all = append(all, s.Warnings...)
	}
	return all
}

// Summary renders a one-line, human-readable digest of the run.
func (r *Report) Summary() string {
	var parts []string
	for _, s := range r.Stages {
		if n := s.FixCount(); n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", s.Stage, n))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("no fixes needed; %d walls", r.FinalWallCount)
	}
	return fmt.Sprintf("%d fixes (%s); %d walls", r.TotalFixes, strings.Join(parts, ", "), r.FinalWallCount)
}
