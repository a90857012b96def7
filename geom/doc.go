// Package geom provides the small pure geometry utilities shared by the
// repair pipeline, the compliance rule engine, and the validation gate.
//
// What:
//
//   - Grid snapping and on-grid checks at a configurable grid size.
//   - Distances, angles in degrees, and nearest-orthogonal rotation.
//   - Endpoint cluster keys at fixed cell precision, for duplicate
//     merging and incidence counting.
//
// Why:
//
//	Snapping and re-snapping after rotation appear in several pipeline
//	stages; keeping one implementation here guarantees every stage
//	quantizes coordinates identically, which the downstream grid
//	invariant depends on.
//
// All functions are pure and allocation-free except Centroid.
// Float comparisons use Epsilon (1e-9).
package geom
