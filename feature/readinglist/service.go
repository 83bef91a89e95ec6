package readinglist

import (
	"context"

	"marvel-metadata/core/matcher"

	"go.uber.org/zap"
)

// MatchedItem is a reading-list item with its match outcome. URL is nil when no corpus
// title matched.
type MatchedItem struct {
	Title      string  `json:"title"`
	URL        *string `json:"url"`
	Confidence float64 `json:"confidence"`
	Note       string  `json:"note"`
}

// Found reports whether the item resolved to a URL.
func (m MatchedItem) Found() bool { return m.URL != nil }

// Checklist is a named, matched reading list.
type Checklist struct {
	Name        string
	Description string
	Items       []MatchedItem
}

// Found returns how many items resolved to a URL.
func (c Checklist) Found() int {
	var n int
	for _, item := range c.Items {
		if item.Found() {
			n++
		}
	}
	return n
}

// Missing returns the items that did not resolve.
func (c Checklist) Missing() []MatchedItem {
	var out []MatchedItem
	for _, item := range c.Items {
		if !item.Found() {
			out = append(out, item)
		}
	}
	return out
}

// Service builds checklists from reading-list items.
type Service struct {
	logger *zap.Logger
	cfg    Config
	cache  *matcher.Cache
}

// NewService creates a new reading-list service with its own corpus cache.
func NewService(logger *zap.Logger, cfg Config) *Service {
	return &Service{
		logger: logger,
		cfg:    cfg,
		cache:  matcher.NewCache(cfg.CacheTTL()),
	}
}

// Expander returns the range expander configured for this service.
func (s *Service) Expander() Expander {
	return Expander{MaxSpan: s.cfg.MaxRangeSpan}
}

// Matcher returns the matcher for source, loading the corpus if it is not cached.
func (s *Service) Matcher(ctx context.Context, source CorpusSource) (*matcher.TitleMatcher, error) {
	m, err := s.cache.Get(ctx, source.Key(), source.Load)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Corpus ready", zap.String("source", source.Key()), zap.Int("titles", m.Corpus().Len()))
	return m, nil
}

// Build matches items against source and returns the checklist in item order.
func (s *Service) Build(ctx context.Context, source CorpusSource, name, description string, items []Item) (*Checklist, error) {
	m, err := s.Matcher(ctx, source)
	if err != nil {
		return nil, err
	}

	list := &Checklist{
		Name:        name,
		Description: description,
		Items:       MatchItems(m, items, s.cfg.Fuzzy),
	}

	s.logger.Info("Matched reading list",
		zap.String("name", name),
		zap.Int("total", len(list.Items)),
		zap.Int("found", list.Found()),
		zap.Bool("fuzzy", s.cfg.Fuzzy),
	)
	for _, item := range list.Missing() {
		s.logger.Debug("Title not found", zap.String("title", item.Title))
	}
	return list, nil
}

// Suggestion is the fuzzy match for a title plus the corpus titles that resemble it.
type Suggestion struct {
	Match   matcher.Result
	Similar []matcher.Entry
}

// Suggest matches title with every tier enabled and lists similar corpus titles, up to
// Config.SimilarLimit.
func (s *Service) Suggest(ctx context.Context, source CorpusSource, title string) (Suggestion, error) {
	m, err := s.Matcher(ctx, source)
	if err != nil {
		return Suggestion{}, err
	}
	return Suggestion{
		Match:   m.Match(title, true),
		Similar: m.FindSimilar(title, s.cfg.SimilarLimit),
	}, nil
}

// MatchItems matches each item in order.
func MatchItems(m *matcher.TitleMatcher, items []Item, fuzzy bool) []MatchedItem {
	out := make([]MatchedItem, len(items))
	for i, item := range items {
		res := m.Match(item.Title, fuzzy)
		matched := MatchedItem{
			Title:      item.Title,
			Confidence: res.Confidence,
			Note:       item.Note,
		}
		if res.Matched {
			url := res.URL
			matched.URL = &url
		}
		out[i] = matched
	}
	return out
}
