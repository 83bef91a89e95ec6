package readinglist

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formats accepted by Format.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Format writes list in the named format. Unknown names fall back to Markdown.
func Format(w io.Writer, list *Checklist, format string) error {
	if strings.EqualFold(format, FormatJSON) {
		return WriteJSON(w, list)
	}
	return WriteMarkdown(w, list)
}

// WriteMarkdown renders list as a Markdown checklist with a totals footer.
func WriteMarkdown(w io.Writer, list *Checklist) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", list.Name)
	if list.Description != "" {
		sb.WriteString(list.Description)
		sb.WriteString("\n\n")
	}
	sb.WriteString("## Checklist\n\n")

	for _, item := range list.Items {
		if item.URL != nil {
			fmt.Fprintf(&sb, "- [ ] [%s](%s)", item.Title, *item.URL)
		} else {
			fmt.Fprintf(&sb, "- [ ] %s  **(URL not found)**", item.Title)
		}
		if item.Note != "" {
			sb.WriteString(" — ")
			sb.WriteString(item.Note)
		}
		sb.WriteByte('\n')
	}

	total := len(list.Items)
	missing := total - list.Found()
	fmt.Fprintf(&sb, "\n---\nTotal: %d", total)
	if missing > 0 {
		fmt.Fprintf(&sb, "\nMissing URLs: %d", missing)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonItem struct {
	MatchedItem
	Found bool `json:"found"`
}

type jsonChecklist struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Total       int        `json:"total"`
	Found       int        `json:"found"`
	Missing     int        `json:"missing"`
	Items       []jsonItem `json:"items"`
}

// WriteJSON renders list as an indented JSON document with totals.
func WriteJSON(w io.Writer, list *Checklist) error {
	out := jsonChecklist{
		Name:        list.Name,
		Description: list.Description,
		Total:       len(list.Items),
		Found:       list.Found(),
		Items:       make([]jsonItem, len(list.Items)),
	}
	out.Missing = out.Total - out.Found
	for i, item := range list.Items {
		out.Items[i] = jsonItem{MatchedItem: item, Found: item.Found()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
