// Package validate is the topological validation and enforcement gate:
// a second, independent checker over a plan's structure with its own
// severity tiers {blocker, critical, warning}, distinct from the
// compliance engine's code categories.
//
// Checks:
//
//   - Grid alignment and coordinate precision — off-grid endpoints are
//     blockers.
//   - Exterior loop — fewer than three exterior walls, or any open seam
//     between consecutive exterior walls (wrap-around included), blocks.
//   - Dangling endpoints — critical, downgraded to warning when the
//     endpoint sits on an exterior edge.
//   - Opening references — unresolved wall IDs block; out-of-bounds
//     offsets are critical.
//   - Wall lengths — zero-length walls block; short walls warn.
//   - Area sanity — total room area against a caller target within
//     [60%, 120%], a 20 m² absolute floor, and per-type minimums.
//
// Enforcement contract:
//
//	The caller supplies a Policy: which checks to run, RejectOnBlocker,
//	RejectOnCritical and an optional target area. A result is valid when
//	it has zero blockers and, under RejectOnCritical, zero criticals.
//	Validate returns a *RejectionError when the policy demands rejection
//	and the result is invalid; the error carries at most ten messages,
//	blockers ordered before criticals, as feedback for an external
//	regeneration loop. Report is the non-throwing entry point for
//	diagnostics.
//
// Errors:
//
//   - ErrPlanRejected: matched by errors.Is for every rejection.
package validate
