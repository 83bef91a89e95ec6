package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marvel-metadata/core/decoder"
	"marvel-metadata/feature/issues"
	"marvel-metadata/feature/readinglist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"#", "Title"}, [][]string{{"1", "Avengers (2012) #1"}, {"2"}}, []columnAlignment{alignRight})
	assert.Contains(t, out, "Avengers (2012) #1")
	assert.Contains(t, out, "TITLE")
	assert.Equal(t, 6, strings.Count(out, "\n")+1)

	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestParseRows(t *testing.T) {
	year := 2012
	rows := parseRows([]issues.PayloadResult{
		{Name: "2012.json", Year: &year, Result: decoder.Result{Diagnostics: decoder.Diagnostics{PoolSize: 10, Decoded: 3, Dropped: 1}}},
		{Name: "bad.json", Err: errors.New("could not locate pool list in payload")},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2012.json", "2012", "10", "3", "1", "0", "ok"}, rows[0])
	assert.Equal(t, "-", rows[1][1])
	assert.Equal(t, "could not locate pool list in payload", rows[1][6])
}

func TestCorpusFlags_Open(t *testing.T) {
	_, _, err := (&corpusFlags{}).open(nil)
	assert.ErrorContains(t, err, "must specify")

	_, _, err = (&corpusFlags{jsonl: "a.jsonl", db: true}).open(nil)
	assert.ErrorContains(t, err, "only one")

	src, release, err := (&corpusFlags{jsonl: "a.jsonl"}).open(nil)
	require.NoError(t, err)
	defer release()
	assert.Equal(t, readinglist.JSONLSource{Path: "a.jsonl"}, src)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"parse", "list-build", "similar", "normalize", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestWriteChecklistFile(t *testing.T) {
	url := "https://www.marvel.com/comics/issue/1"
	list := &readinglist.Checklist{
		Name:  "Secret Wars",
		Items: []readinglist.MatchedItem{{Title: "Secret Wars (2015) #1", URL: &url, Confidence: 1}},
	}

	t.Run("Markdown", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lists", "secret-wars.md")
		require.NoError(t, writeChecklistFile(path, readinglist.FormatMarkdown, list))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "# Secret Wars\n"))
		assert.Contains(t, string(data), "[Secret Wars (2015) #1]("+url+")")
		assert.True(t, strings.HasSuffix(string(data), "\n"))
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret-wars.json")
		require.NoError(t, writeChecklistFile(path, readinglist.FormatJSON, list))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"name": "Secret Wars"`)
	})

	t.Run("PathIsDirectory", func(t *testing.T) {
		err := writeChecklistFile(t.TempDir(), readinglist.FormatMarkdown, list)
		assert.Error(t, err)
	})
}
