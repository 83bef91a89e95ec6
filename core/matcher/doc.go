// Package matcher resolves free-form comic titles to detail URLs.
//
// A Corpus indexes known titles twice: by exact title and by normalize.ForMatch key.
// TitleMatcher.Match reports which tier hit through a discrete confidence value:
//
//	1.0  exact title
//	0.9  same match key
//	0.8  same match key once edition words (variant, director, deluxe, annual) are removed
//	0.0  no match
//
// Cache keeps matchers per corpus source so repeated builds within the TTL reuse the
// same index.
package matcher
