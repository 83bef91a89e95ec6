package decoder

import (
	"errors"
	"fmt"
	"io"

	"marvel-metadata/core/jsonvalue"
	"marvel-metadata/core/normalize"
)

// Result is the outcome of decoding one payload.
type Result struct {
	Issues      []IssueData `json:"issues"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Diagnostics counts what was lost or degraded while decoding. Dropped records and
// null-resolved references never raise errors, so this is the only place they show.
type Diagnostics struct {
	// PoolSize is the number of pool entries.
	PoolSize int `json:"pool_size"`
	// Candidates is the number of entries shaped like packed issues.
	Candidates int `json:"candidates"`
	// Decoded is the number of issues emitted.
	Decoded int `json:"decoded"`
	// Dropped is the number of candidates discarded, for any reason.
	Dropped int `json:"dropped"`
	// DepthExceeded is the subset of Dropped that hit the depth ceiling.
	DepthExceeded int `json:"depth_exceeded"`
	// OutOfRangeRefs is the number of references that resolved to null.
	OutOfRangeRefs int `json:"out_of_range_refs"`
}

// IsPackedRecord reports whether v is an issue object whose title and detailUrl are
// still integer references. Only unresolved values are inspected.
func IsPackedRecord(v jsonvalue.Value) bool {
	if v.Kind() != jsonvalue.KindObject {
		return false
	}
	detail, ok := v.Get("detailUrl")
	if !ok || !detail.IsInteger() {
		return false
	}
	title, ok := v.Get("title")
	return ok && title.IsInteger()
}

// ExtractIssues decodes every packed issue record in pool, in pool order.
// yearPage, when non-nil, is attached to each record. Duplicate ids are kept.
func ExtractIssues(pool jsonvalue.Value, yearPage *int, opts Options) Result {
	entries := pool.Items()
	resolver := NewResolver(entries, opts)

	res := Result{Issues: []IssueData{}}
	res.Diagnostics.PoolSize = len(entries)

	for _, entry := range entries {
		if !IsPackedRecord(entry) {
			continue
		}
		res.Diagnostics.Candidates++

		resolved, err := resolver.Resolve(entry)
		if err != nil {
			res.Diagnostics.Dropped++
			if errors.Is(err, ErrResolutionDepthExceeded) {
				res.Diagnostics.DepthExceeded++
			}
			continue
		}

		issue, ok := issueFromValue(resolved)
		if !ok {
			res.Diagnostics.Dropped++
			continue
		}

		issue.DetailURL = normalize.URL(issue.DetailURL)
		if yearPage != nil {
			yp := *yearPage
			issue.YearPage = &yp
		}
		res.Issues = append(res.Issues, issue)
	}

	res.Diagnostics.Decoded = len(res.Issues)
	res.Diagnostics.OutOfRangeRefs = resolver.OutOfRange()
	return res
}

// DecodePayload locates the pool of a parsed payload and extracts its issues.
func DecodePayload(payload jsonvalue.Value, yearPage *int, opts Options) (Result, error) {
	pool, err := LocatePool(payload, opts)
	if err != nil {
		return Result{}, err
	}
	return ExtractIssues(pool, yearPage, opts), nil
}

// Decode parses a raw payload document from r and decodes it.
func Decode(r io.Reader, yearPage *int, opts Options) (Result, error) {
	payload, err := jsonvalue.Decode(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse payload: %w", err)
	}
	return DecodePayload(payload, yearPage, opts)
}
