package repair

import (
	"fmt"
	"sort"

	"github.com/planforge/planforge/geom"
	"github.com/planforge/planforge/plan"
)

// mergeCellSize is the fixed clustering precision for duplicate-point
// merging. It matches the default grid, so endpoints meant to touch land
// in the same cell after stage 1.
const mergeCellSize = 0.1

// endpointRef addresses one endpoint of one wall by index.
type endpointRef struct {
	wall  int
	start bool
}

// point returns the referenced endpoint's current coordinates.
func (r endpointRef) point(walls []plan.WallSegment) plan.Point {
	if r.start {
		return walls[r.wall].Start
	}
	return walls[r.wall].End
}

// setPoint overwrites the referenced endpoint.
func (r endpointRef) setPoint(walls []plan.WallSegment, p plan.Point) {
	if r.start {
		walls[r.wall].Start = p
	} else {
		walls[r.wall].End = p
	}
}

// mergeDuplicatePoints is stage 3: endpoints are clustered by 0.1 m cell
// key; each cluster of more than one endpoint is remapped to its
// grid-snapped centroid, guaranteeing exact coincidence where points are
// meant to touch.
func mergeDuplicatePoints(walls []plan.WallSegment, opts Options) ([]plan.WallSegment, StageReport) {
	report := StageReport{Stage: StageMergePoints}
	out := make([]plan.WallSegment, len(walls))
	copy(out, walls)

	clusters := make(map[string][]endpointRef)
	for i := range out {
		clusters[geom.CellKey(out[i].Start, mergeCellSize)] = append(clusters[geom.CellKey(out[i].Start, mergeCellSize)], endpointRef{wall: i, start: true})
		clusters[geom.CellKey(out[i].End, mergeCellSize)] = append(clusters[geom.CellKey(out[i].End, mergeCellSize)], endpointRef{wall: i, start: false})
	}

	// Deterministic cluster ordering for stable reports.
	keys := make([]string, 0, len(clusters))
	for k := range clusters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		refs := clusters[key]
		if len(refs) < 2 {
			continue
		}
		pts := make([]plan.Point, len(refs))
		for i, r := range refs {
			pts[i] = r.point(out)
		}
		target := geom.SnapPoint(geom.Centroid(pts), opts.GridSize)
		moved := 0
		for _, r := range refs {
			if r.point(out) != target {
				r.setPoint(out, target)
				moved++
			}
		}
		if moved > 0 {
			report.Fixes = append(report.Fixes, Fix{
				Stage:  StageMergePoints,
				Detail: fmt.Sprintf("merged %d endpoints at (%.2f, %.2f)", len(refs), target.X, target.Y),
			})
		}
	}
	return out, report
}
