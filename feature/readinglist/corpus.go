package readinglist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marvel-metadata/core/database"
	"marvel-metadata/core/decoder"
	"marvel-metadata/core/matcher"
	"marvel-metadata/core/normalize"
	"marvel-metadata/feature/issues"

	"gorm.io/gorm"
)

// ErrEmptyCorpus is returned when a corpus source yields no usable titles.
var ErrEmptyCorpus = errors.New("corpus has no titles")

// CorpusSource loads title/URL pairs for a matcher.
type CorpusSource interface {
	// Key identifies the source in the matcher cache.
	Key() string
	// Load reads the entries.
	Load(ctx context.Context) ([]matcher.Entry, error)
}

// BuildCorpus turns decoded issues into corpus entries. Titles are spacing-normalized;
// records without a title or URL are skipped.
func BuildCorpus(records []decoder.IssueData) []matcher.Entry {
	entries := make([]matcher.Entry, 0, len(records))
	for _, r := range records {
		title := normalize.Spacing(r.Title)
		if title == "" || r.DetailURL == "" {
			continue
		}
		entries = append(entries, matcher.Entry{Title: title, URL: r.DetailURL})
	}
	return entries
}

// JSONLSource reads a JSONL export written by the parse command.
type JSONLSource struct {
	Path string
}

// Key implements CorpusSource.
func (s JSONLSource) Key() string { return "jsonl:" + s.Path }

// Load implements CorpusSource.
func (s JSONLSource) Load(ctx context.Context) ([]matcher.Entry, error) {
	records, err := issues.ReadJSONLFile(s.Path)
	if err != nil {
		return nil, err
	}
	entries := BuildCorpus(records)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCorpus, s.Path)
	}
	return entries, nil
}

// DBSource reads title and detail_url columns from a database table.
type DBSource struct {
	DB    *gorm.DB
	Table string
}

type corpusRow struct {
	Title     string
	DetailURL string `gorm:"column:detail_url"`
}

// Key implements CorpusSource.
func (s DBSource) Key() string {
	return fmt.Sprintf("db:%s:%s", s.DB.Dialector.Name(), s.Table)
}

// Load implements CorpusSource.
func (s DBSource) Load(ctx context.Context) ([]matcher.Entry, error) {
	missing, err := database.MissingColumns(s.DB, s.Table, "title", "detail_url")
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("table %s is missing columns: %s", s.Table, strings.Join(missing, ", "))
	}

	var rows []corpusRow
	// Table name was validated by MissingColumns
	query := fmt.Sprintf("SELECT title, detail_url FROM %s", s.Table)
	if err := s.DB.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read corpus from %s: %w", s.Table, err)
	}

	records := make([]decoder.IssueData, len(rows))
	for i, r := range rows {
		records[i] = decoder.IssueData{Title: r.Title, DetailURL: r.DetailURL}
	}
	entries := BuildCorpus(records)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: table %s", ErrEmptyCorpus, s.Table)
	}
	return entries, nil
}
