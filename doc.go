// Package planforge turns untrusted, possibly-malformed candidate floor
// plans into structurally sound, code-compliant plans — or into bounded,
// ranked rejections explaining why a plan cannot be accepted.
//
// What is planforge?
//
//	A pure, deterministic library with three components, consumed in
//	sequence by an external orchestrator:
//		• repair/     — six ordered pure transforms correcting wall
//		  coordinates and connectivity (grid snapping, angle
//		  normalization, duplicate merging, dangling-endpoint
//		  correction, exterior-loop closure, short-wall elimination)
//		• compliance/ — a stateless rule engine evaluating a repaired
//		  plan against a building-code constants table, including an
//		  egress (emergency-exit distance) analysis
//		• validate/   — an independent topological sanity gate with
//		  severity tiers that can reject a plan under caller policy
//
// Why choose planforge?
//
//   - Referentially transparent: same input + config ⇒ same output;
//     every stage returns a new collection, inputs are never mutated
//   - Bounded: the only internal loop (dangling correction) is capped
//     and provably terminates
//   - No I/O: no network, filesystem, or database access inside the
//     core; those belong to the surrounding application
//
// Supporting packages:
//
//	plan/ — the floor-plan document model: walls, openings, rooms,
//	        closed enumerations, deep-clone semantics
//	geom/ — small shared geometry utilities: grid snapping, angles,
//	        distances, endpoint cluster keys
//
// Data flow:
//
//	candidate plan → repair.Run → {compliance.Evaluate, validate.Validate}
//	→ accept, or a bounded rejection handed back for regeneration.
package planforge
