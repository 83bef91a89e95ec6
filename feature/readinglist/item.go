package readinglist

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultMaxRangeSpan is the largest expansion ExpandRange performs.
const DefaultMaxRangeSpan = 10000

var rangeAnchorRe = regexp.MustCompile(`^(.+#)[0-9]+`)

// Item is one reading-list entry.
type Item struct {
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
}

// Expander expands "A-B" ranges into one title per issue.
type Expander struct {
	// MaxSpan caps B-A+1; larger ranges are left unexpanded. Zero means
	// DefaultMaxRangeSpan.
	MaxSpan int
}

func (e Expander) maxSpan() int {
	if e.MaxSpan <= 0 {
		return DefaultMaxRangeSpan
	}
	return e.MaxSpan
}

// ExpandRange expands base with the default span limit.
func ExpandRange(base, rangeSpec string) []string {
	return Expander{MaxSpan: DefaultMaxRangeSpan}.Range(base, rangeSpec)
}

// ExpandItem expands item with the default span limit.
func ExpandItem(item Item, rangeSpec string) []Item {
	return Expander{MaxSpan: DefaultMaxRangeSpan}.Item(item, rangeSpec)
}

// Range turns base "Avengers (2012) #1" and rangeSpec "1-3" into "Avengers (2012) #1",
// "#2" and "#3" titles. The prefix runs up to the last "#" that is followed by digits.
//
// Anything that cannot be expanded (bad syntax, no "#N" anchor, A > B, a span over
// MaxSpan) yields just base.
func (e Expander) Range(base, rangeSpec string) []string {
	titles, ok := e.expand(base, rangeSpec)
	if !ok {
		return []string{base}
	}
	return titles
}

func (e Expander) expand(base, rangeSpec string) ([]string, bool) {
	start, end, ok := parseRange(rangeSpec)
	if !ok || start > end {
		return nil, false
	}
	if uint64(end-start) >= uint64(e.maxSpan()) {
		return nil, false
	}

	m := rangeAnchorRe.FindStringSubmatch(base)
	if m == nil {
		return nil, false
	}
	prefix := m[1]

	// Iterate by offset so an end of math.MaxInt cannot wrap the counter.
	span := end - start
	out := make([]string, 0, span+1)
	for i := 0; i <= span; i++ {
		out = append(out, prefix+strconv.Itoa(start+i))
	}
	return out, true
}

// Item expands item by rangeSpec. Expanded items carry no note; an empty rangeSpec or
// a range that fails to expand returns item unchanged.
func (e Expander) Item(item Item, rangeSpec string) []Item {
	titles, ok := e.expand(item.Title, rangeSpec)
	if !ok {
		return []Item{item}
	}

	out := make([]Item, len(titles))
	for i, t := range titles {
		out[i] = Item{Title: t}
	}
	return out
}

func parseRange(spec string) (int, int, bool) {
	a, b, found := strings.Cut(spec, "-")
	if !found {
		return 0, 0, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}
