package readinglist

import "time"

// Config holds configuration for reading-list matching.
type Config struct {
	// Fuzzy enables the normalized and simplified match tiers.
	Fuzzy bool `mapstructure:"fuzzy" default:"false"`
	// SimilarLimit caps the suggestions shown for a missing title.
	SimilarLimit int `mapstructure:"similar_limit" default:"5"`
	// CacheTTLSeconds is how long a loaded corpus is reused; 0 disables reuse.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// CorpusTable is the database table holding title and detail_url columns.
	CorpusTable string `mapstructure:"corpus_table" default:"issues"`
	// MaxRangeSpan is the largest range a single item may expand to.
	MaxRangeSpan int `mapstructure:"max_range_span" default:"10000"`
}

// CacheTTL returns the corpus cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
