// Package readinglist builds reading-list checklists: it expands issue ranges, matches
// each title against a corpus of decoded issues and renders the result.
//
// Items are matched in order through a core/matcher.TitleMatcher. Corpora come from a
// JSONL export or a database table and are kept in an explicit matcher.Cache owned by
// the Service, so repeated builds reuse one index until the TTL runs out.
//
// An item that cannot be matched is kept with a nil URL and zero confidence; the
// formatters flag it instead of dropping it.
package readinglist
