// Package compliance is the stateless building-code rule engine. It
// evaluates a repaired plan's rooms, walls and openings against an
// immutable BuildingCode constants table and produces categorized
// issues plus an egress (emergency-exit distance) analysis.
//
// What:
//
//   - Issues land in three buckets: violation, warning and check, each
//     carrying a rule code, message, optional element reference and a
//     severity (critical/major/minor).
//   - A plan is passing iff its violation count is zero, independent of
//     warnings.
//   - Rules: room area, ceiling height, door width, natural light, wall
//     connectivity, opening reference integrity, egress distance, rescue
//     windows, bathroom accessibility, threshold height, and
//     corridor/utility/stair heuristics.
//
// Every rule function is side-effect-free and independently evaluable;
// Evaluate simply concatenates their issues in a fixed order, so
// identical plan + code ⇒ identical report. Only the egress rule depends
// on a prior step (exterior-door detection) within the same pass.
//
// The BuildingCode table is constructed once (DefaultBuildingCode or
// LoadBuildingCode) and passed explicitly into Evaluate; there is no
// ambient global state.
package compliance
