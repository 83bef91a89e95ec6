package matcher

import (
	"strings"

	"marvel-metadata/core/normalize"
)

// Confidence tiers reported by Match.
const (
	ConfidenceExact      = 1.0
	ConfidenceNormalized = 0.9
	ConfidenceSimplified = 0.8
	ConfidenceNone       = 0.0
)

// simplifyWords are removed anywhere in a match key by the last fuzzy tier.
var simplifyWords = []string{" variant", " director", " deluxe", " annual"}

// Result is the outcome of one Match call.
type Result struct {
	URL        string
	Confidence float64
	Matched    bool
}

// TitleMatcher resolves titles against a Corpus. It never mutates the corpus and is
// safe for concurrent use.
type TitleMatcher struct {
	corpus *Corpus
}

// New creates a matcher over corpus.
func New(corpus *Corpus) *TitleMatcher {
	return &TitleMatcher{corpus: corpus}
}

// Corpus returns the corpus the matcher reads.
func (m *TitleMatcher) Corpus() *Corpus { return m.corpus }

// Match looks title up, trying the tiers in order and stopping at the first hit:
// exact title (1.0), match key (0.9), match key with edition words removed (0.8).
// With fuzzy disabled only the exact tier runs.
func (m *TitleMatcher) Match(title string, fuzzy bool) Result {
	if url, ok := m.corpus.exact[title]; ok {
		return Result{URL: url, Confidence: ConfidenceExact, Matched: true}
	}
	if !fuzzy {
		return Result{}
	}

	key := normalize.ForMatch(title)
	if url, ok := m.corpus.normalized[key]; ok {
		return Result{URL: url, Confidence: ConfidenceNormalized, Matched: true}
	}

	if url, ok := m.corpus.normalized[simplify(key)]; ok {
		return Result{URL: url, Confidence: ConfidenceSimplified, Matched: true}
	}

	return Result{}
}

// FindSimilar returns up to limit corpus entries whose match key contains the query's
// key or is contained by it, in corpus order.
func (m *TitleMatcher) FindSimilar(title string, limit int) []Entry {
	if limit <= 0 {
		return nil
	}

	key := normalize.ForMatch(title)
	var out []Entry
	for i, e := range m.corpus.entries {
		candidate := m.corpus.keys[i]
		if strings.Contains(candidate, key) || strings.Contains(key, candidate) {
			out = append(out, e)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

func simplify(key string) string {
	for _, w := range simplifyWords {
		key = strings.ReplaceAll(key, w, "")
	}
	return strings.TrimSpace(key)
}
