// Package decoder turns the packed "pool" payload exported by the comic metadata
// mirror into IssueData records.
//
// # Payload Format
//
// The export compresses repeated values by storing them once in a flat pool array and
// referring to them by integer position:
//
//	pool[0] = "Avengers"
//	pool[1] = "(2012)"
//	pool[2] = {"title": 0, "year": 1}
//
//	resolve(pool[2]) -> {"title": "Avengers", "year": "(2012)"}
//
// The pool normally sits at payload.nodes[2].data, but the format is owned by a third
// party and drifts, so LocatePool falls back to searching the whole tree.
//
// # Pipeline
//
//  1. LocatePool finds the pool (ErrPoolNotFound when there is none).
//  2. IsPackedRecord picks issue-shaped entries before anything is resolved.
//  3. Resolver materializes each candidate; references past the pool become null.
//  4. ExtractIssues validates title/detailUrl, canonicalizes the URL and attaches the
//     year page.
//
// Broken individual records are dropped and counted in Diagnostics instead of failing
// the batch. Both the tree walk and the resolver stop at Options.MaxDepth with
// ErrResolutionDepthExceeded.
package decoder
