package repair

import (
	"fmt"
	"sort"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// reconnectDangling is stage 4: iterative dangling-endpoint correction.
//
// Each pass builds an endpoint→incident-wall-count map, then snaps every
// endpoint with exactly one incident wall onto the nearest endpoint with
// at least two connections within the fixed SnapTolerance. The loop
// exits early when a pass fixes nothing, and is hard-bounded by
// MaxPasses.
//
// Termination argument: a pass either fixes at least one endpoint or
// exits. A fixed endpoint becomes coincident with a connected cluster,
// so the dangling count is non-increasing pass-over-pass; endpoints with
// no anchor within tolerance are never touched, so no pass can create a
// new dangler. Worst case is MaxPasses full scans, O(MaxPasses·W²).
func reconnectDangling(walls []plan.WallSegment, opts Options) ([]plan.WallSegment, StageReport) {
	report := StageReport{Stage: StageDangling}
	out := make([]plan.WallSegment, len(walls))
	copy(out, walls)

	for pass := 1; pass <= opts.MaxPasses; pass++ {
		incidence := buildIncidence(out)
		fixed := 0
		for _, key := range sortedKeys(incidence) {
			refs := incidence[key]
			if len(refs) != 1 {
				continue
			}
			dangler := refs[0]
			from := dangler.point(out)
			anchor, ok := nearestAnchor(out, incidence, key, from, opts.SnapTolerance)
			if !ok {
				continue
			}
			dangler.setPoint(out, anchor)
			fixed++
			report.Fixes = append(report.Fixes, Fix{
				Stage:  StageDangling,
				WallID: out[dangler.wall].ID,
				Detail: fmt.Sprintf("pass %d: (%.2f, %.2f) → (%.2f, %.2f)", pass, from.X, from.Y, anchor.X, anchor.Y),
			})
		}
		if fixed == 0 {
			break // converged
		}
	}

	if remaining := len(DanglingEndpoints(out)); remaining > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d dangling endpoints remain after correction", remaining))
	}
	return out, report
}

// buildIncidence groups wall endpoints into 0.1 m cells. The cell count
// is the endpoint's connection count: 1 means dangling.
func buildIncidence(walls []plan.WallSegment) map[string][]endpointRef {
	incidence := make(map[string][]endpointRef, len(walls)*2)
	for i := range walls {
		startKey := geom.CellKey(walls[i].Start, mergeCellSize)
		endKey := geom.CellKey(walls[i].End, mergeCellSize)
		incidence[startKey] = append(incidence[startKey], endpointRef{wall: i, start: true})
		incidence[endKey] = append(incidence[endKey], endpointRef{wall: i, start: false})
	}
	return incidence
}

// nearestAnchor finds the closest endpoint with ≥2 connections within
// tol of p, excluding the dangler's own cell. Ties resolve to the
// lexicographically smallest cell key via the sorted scan order.
func nearestAnchor(walls []plan.WallSegment, incidence map[string][]endpointRef, selfKey string, p plan.Point, tol float64) (plan.Point, bool) {
	var best plan.Point
	bestDist := tol
	found := false
	for _, key := range sortedKeys(incidence) {
		refs := incidence[key]
		if key == selfKey || len(refs) < 2 {
			continue
		}
		candidate := refs[0].point(walls)
		if d := geom.Dist(p, candidate); d <= bestDist {
			if !found || d < bestDist {
				best = candidate
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}

// sortedKeys returns the incidence map keys in stable order so fixes and
// reports are deterministic across runs.
func sortedKeys(m map[string][]endpointRef) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DanglingEndpoints returns the endpoints incident to exactly one wall.
// The compliance engine and the validation gate report these without
// repairing them; stage 4 is the only consumer that snaps them.
func DanglingEndpoints(walls []plan.WallSegment) []plan.Point {
	incidence := buildIncidence(walls)
	var out []plan.Point
	for _, key := range sortedKeys(incidence) {
		if refs := incidence[key]; len(refs) == 1 {
			out = append(out, refs[0].point(walls))
		}
	}
	return out
}

// DanglingWallIDs returns, for each dangling endpoint, the ID of its
// only incident wall, in the same stable order as DanglingEndpoints.
func DanglingWallIDs(walls []plan.WallSegment) []string {
	incidence := buildIncidence(walls)
	var out []string
	for _, key := range sortedKeys(incidence) {
		if refs := incidence[key]; len(refs) == 1 {
			out = append(out, walls[refs[0].wall].ID)
		}
	}
	return out
}
