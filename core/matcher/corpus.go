package matcher

import "marvel-metadata/core/normalize"

// Entry is one known title and the detail URL it resolves to.
type Entry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Corpus is an immutable title index. Build it with NewCorpus and share it freely.
type Corpus struct {
	entries    []Entry
	exact      map[string]string
	normalized map[string]string
	keys       []string
}

// NewCorpus indexes entries. A repeated title keeps its first position and its last
// URL. When several titles share a match key, the first title in that order owns it.
func NewCorpus(entries []Entry) *Corpus {
	c := &Corpus{
		exact:      make(map[string]string, len(entries)),
		normalized: make(map[string]string, len(entries)),
	}

	pos := make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := pos[e.Title]; ok {
			c.entries[i].URL = e.URL
			continue
		}
		pos[e.Title] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	c.keys = make([]string, len(c.entries))
	for i, e := range c.entries {
		c.exact[e.Title] = e.URL
		key := normalize.ForMatch(e.Title)
		c.keys[i] = key
		if _, taken := c.normalized[key]; !taken {
			c.normalized[key] = e.URL
		}
	}
	return c
}

// Len returns the number of distinct titles.
func (c *Corpus) Len() int { return len(c.entries) }

// Entries returns the distinct titles in corpus order. The slice must not be modified.
func (c *Corpus) Entries() []Entry { return c.entries }
