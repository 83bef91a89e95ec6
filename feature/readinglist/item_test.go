package readinglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name string
		base string
		spec string
		want []string
	}{
		{
			name: "Basic",
			base: "Avengers (2012) #1",
			spec: "1-3",
			want: []string{"Avengers (2012) #1", "Avengers (2012) #2", "Avengers (2012) #3"},
		},
		{
			name: "SpacesAroundNumbers",
			base: "Thor #5",
			spec: " 9 - 10 ",
			want: []string{"Thor #9", "Thor #10"},
		},
		{
			name: "LastHashWins",
			base: "Issue #2 of Secret Wars #1",
			spec: "1-2",
			want: []string{"Issue #2 of Secret Wars #1", "Issue #2 of Secret Wars #2"},
		},
		{
			name: "DecimalIssueUsesIntegerPart",
			base: "Amazing Spider-Man #0.1",
			spec: "1-2",
			want: []string{"Amazing Spider-Man #1", "Amazing Spider-Man #2"},
		},
		{name: "NoDash", base: "Thor #1", spec: "5", want: []string{"Thor #1"}},
		{name: "NotNumbers", base: "Thor #1", spec: "a-b", want: []string{"Thor #1"}},
		{name: "EmptySpec", base: "Thor #1", spec: "", want: []string{"Thor #1"}},
		{name: "NoAnchor", base: "Thor Omnibus", spec: "1-3", want: []string{"Thor Omnibus"}},
		{name: "HashWithoutDigits", base: "Thor #A", spec: "1-3", want: []string{"Thor #A"}},
		{name: "Descending", base: "Thor #1", spec: "3-1", want: []string{"Thor #1"}},
		{name: "TooLarge", base: "Thor #1", spec: "1-20000", want: []string{"Thor #1"}},
		{name: "Overflow", base: "Thor #1", spec: "0-9223372036854775807", want: []string{"Thor #1"}},
		{
			name: "EndsAtMaxInt",
			base: "Avengers (2012) #1",
			spec: "9223372036854775805-9223372036854775807",
			want: []string{
				"Avengers (2012) #9223372036854775805",
				"Avengers (2012) #9223372036854775806",
				"Avengers (2012) #9223372036854775807",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandRange(tt.base, tt.spec))
		})
	}
}

func TestExpander_MaxSpan(t *testing.T) {
	e := Expander{MaxSpan: 3}
	assert.Len(t, e.Range("X #1", "1-3"), 3)
	assert.Equal(t, []string{"X #1"}, e.Range("X #1", "1-4"))
}

func TestExpandItem(t *testing.T) {
	t.Run("ExpandedItemsDropNote", func(t *testing.T) {
		got := ExpandItem(Item{Title: "Avengers (2012) #1", Note: "Hickman run"}, "1-2")
		assert.Equal(t, []Item{{Title: "Avengers (2012) #1"}, {Title: "Avengers (2012) #2"}}, got)
	})

	t.Run("SingleIssueRangeStillExpanded", func(t *testing.T) {
		got := ExpandItem(Item{Title: "Avengers (2012) #1", Note: "n"}, "1-1")
		assert.Equal(t, []Item{{Title: "Avengers (2012) #1"}}, got)
	})

	t.Run("NoRangeKeepsNote", func(t *testing.T) {
		item := Item{Title: "Infinity #1", Note: "event"}
		assert.Equal(t, []Item{item}, ExpandItem(item, ""))
	})

	t.Run("FailSoftKeepsNote", func(t *testing.T) {
		item := Item{Title: "Infinity", Note: "event"}
		assert.Equal(t, []Item{item}, ExpandItem(item, "1-6"))
	})
}
