// Package plan defines the floor-plan document model shared by the
// repair pipeline, the compliance rule engine, and the validation gate.
//
// What:
//
//   - Point, WallSegment, Opening, RoomZone and Plan mirror the external
//     document shape (JSON-tagged, string IDs, meters everywhere).
//   - Loosely-typed fields of the upstream document (wall type, material,
//     opening type, swing, room type) are closed string enumerations with
//     Valid/Parse helpers so every rule lookup is compiler-checked.
//   - Plan.Clone performs a deep copy; pipeline stages operate on clones
//     and never mutate a caller's plan (copy-on-transform contract).
//
// Lifecycle:
//
//	A Plan is produced externally (generation or storage load), consumed
//	by repair which returns a new Plan, then read-only by compliance and
//	validate. No entity outlives the Plan it belongs to; there is no
//	cross-plan sharing.
//
// Errors:
//
//   - ErrDegenerateWall: wall start and end coincide.
//   - ErrBadThickness: wall thickness outside [0.08, 0.6] m.
//   - ErrUnknownWall: opening references a wall ID that does not exist.
//   - ErrOpeningOutOfBounds: opening offset or extent exceeds its wall.
//   - ErrNonPositiveArea: room area is zero or negative.
package plan
