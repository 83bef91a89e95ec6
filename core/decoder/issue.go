package decoder

import (
	"marvel-metadata/core/jsonvalue"
)

// IssueData is a decoded, validated issue record.
// ID, Title and DetailURL are always set; the rest is optional.
type IssueData struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	DetailURL string `json:"detailUrl"`

	DigitalID *int64  `json:"digitalId,omitempty"`
	Issue     *string `json:"issue,omitempty"`

	Description *string `json:"description,omitempty"`
	Modified    *string `json:"modified,omitempty"`
	PageCount   *int64  `json:"pageCount,omitempty"`

	Series   *Series   `json:"series,omitempty"`
	Dates    *Dates    `json:"dates,omitempty"`
	Creators []Creator `json:"creators,omitempty"`
	Cover    *Cover    `json:"cover,omitempty"`

	// YearPage is the caller-supplied source year page, e.g. 2022.
	YearPage *int `json:"yearPage,omitempty"`
}

// Series identifies the series an issue belongs to.
type Series struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Dates holds the on-sale and Marvel Unlimited availability dates.
type Dates struct {
	OnSale    *string `json:"onSale"`
	Unlimited *string `json:"unlimited"`
}

// Creator is a credited person on an issue.
type Creator struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Cover points at the cover image.
type Cover struct {
	Path string  `json:"path"`
	Ext  *string `json:"ext"`
}

// issueFromValue converts a resolved packed record. It fails when title or
// detailUrl is not a string.
func issueFromValue(v jsonvalue.Value) (IssueData, bool) {
	title, ok := stringField(v, "title")
	if !ok {
		return IssueData{}, false
	}
	detail, ok := stringField(v, "detailUrl")
	if !ok {
		return IssueData{}, false
	}

	issue := IssueData{
		Title:     title,
		DetailURL: detail,
	}
	if id, ok := intField(v, "id"); ok {
		issue.ID = id
	}
	issue.DigitalID = intPtr(v, "digitalId")
	issue.Issue = issueToken(v)
	issue.Description = stringPtr(v, "description")
	issue.Modified = stringPtr(v, "modified")
	issue.PageCount = intPtr(v, "pageCount")
	issue.Series = seriesFrom(v)
	issue.Dates = datesFrom(v)
	issue.Creators = creatorsFrom(v)
	issue.Cover = coverFrom(v)

	return issue, true
}

func stringField(v jsonvalue.Value, key string) (string, bool) {
	f, ok := v.Get(key)
	if !ok {
		return "", false
	}
	return f.AsString()
}

func intField(v jsonvalue.Value, key string) (int64, bool) {
	f, ok := v.Get(key)
	if !ok {
		return 0, false
	}
	return f.AsInt()
}

func stringPtr(v jsonvalue.Value, key string) *string {
	s, ok := stringField(v, key)
	if !ok {
		return nil
	}
	return &s
}

func intPtr(v jsonvalue.Value, key string) *int64 {
	i, ok := intField(v, key)
	if !ok {
		return nil
	}
	return &i
}

// issueToken keeps the issue number as text; numeric values keep their literal so
// "0.1" stays "0.1".
func issueToken(v jsonvalue.Value) *string {
	f, ok := v.Get("issue")
	if !ok {
		return nil
	}
	if s, ok := f.AsString(); ok {
		return &s
	}
	if lit := f.Literal(); lit != "" {
		return &lit
	}
	return nil
}

func seriesFrom(v jsonvalue.Value) *Series {
	s, ok := v.Get("series")
	if !ok || s.Kind() != jsonvalue.KindObject {
		return nil
	}
	id, hasID := intField(s, "id")
	name, hasName := stringField(s, "name")
	if !hasID && !hasName {
		return nil
	}
	return &Series{ID: id, Name: name}
}

func datesFrom(v jsonvalue.Value) *Dates {
	d, ok := v.Get("dates")
	if !ok || d.Kind() != jsonvalue.KindObject {
		return nil
	}
	return &Dates{
		OnSale:    stringPtr(d, "onSale"),
		Unlimited: stringPtr(d, "unlimited"),
	}
}

// creatorsFrom accepts a plain list or a {"items": [...]} wrapper.
func creatorsFrom(v jsonvalue.Value) []Creator {
	c, ok := v.Get("creators")
	if !ok {
		return nil
	}
	if items, ok := c.Get("items"); ok {
		c = items
	}
	if c.Kind() != jsonvalue.KindArray {
		return nil
	}

	creators := make([]Creator, 0, c.Len())
	for _, item := range c.Items() {
		if item.Kind() != jsonvalue.KindObject {
			continue
		}
		id, _ := intField(item, "id")
		name, _ := stringField(item, "name")
		role, _ := item.Get("role")
		creators = append(creators, Creator{
			ID:   id,
			Name: name,
			Role: RoleName(role),
		})
	}
	return creators
}

func coverFrom(v jsonvalue.Value) *Cover {
	c, ok := v.Get("cover")
	if !ok || c.Kind() != jsonvalue.KindObject {
		return nil
	}
	path, ok := stringField(c, "path")
	if !ok {
		return nil
	}
	ext := stringPtr(c, "ext")
	if ext == nil {
		ext = stringPtr(c, "extension")
	}
	return &Cover{Path: path, Ext: ext}
}
