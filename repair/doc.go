// Package repair implements the geometry repair pipeline: six ordered,
// pure transforms that correct a candidate plan's wall coordinates and
// connectivity before rule evaluation.
//
// Stages, in fixed order:
//
//  1. Grid snapping     — round every coordinate to the nearest grid
//     multiple (GridSize, default 0.1 m).
//  2. Angle normalization — rotate walls within AngleTolerance (default
//     2°) of 0/90/180/270° to the exact orthogonal angle, preserving the
//     start point and wall length, then re-snap to grid.
//  3. Duplicate merging — cluster endpoints by 0.1 m cell key and remap
//     each cluster to its grid-snapped centroid.
//  4. Dangling-endpoint correction — up to MaxPasses (default 10) passes
//     snapping endpoints with exactly one incident wall onto the nearest
//     endpoint with ≥2 connections within a fixed SnapTolerance.
//  5. Exterior-loop closure — force seams of the external polyline shut
//     when the gap is ≤ 10× SnapTolerance; wider gaps become warnings.
//  6. Short-wall elimination — drop walls shorter than MinWallLength
//     (default 0.3 m).
//
// Each stage is a pure function of (walls, Options) returning a new wall
// slice and a StageReport; Run clones the input plan, so callers' plans
// are never mutated. No stage raises a hard error: unresolvable issues
// are downgraded to warnings for the caller, who may still reject the
// plan through the validation gate.
//
// Guarantees:
//
//   - Idempotence: re-running on an already-repaired plan yields zero
//     additional fixes under identical Options.
//   - Convergence: stage 4 terminates within MaxPasses and the
//     remaining-dangling count never increases pass-over-pass.
//
// Errors:
//
//   - ErrBadGridSize, ErrBadTolerance, ErrBadPassLimit, ErrBadMinLength:
//     Options.Validate failures. The only errors Run can return.
package repair
