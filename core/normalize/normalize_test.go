package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"HTTPBareHost", "http://marvel.com/x", "https://www.marvel.com/x"},
		{"HTTPSBareHost", "https://marvel.com/comics/issue/123", "https://www.marvel.com/comics/issue/123"},
		{"HTTPWWW", "http://www.marvel.com/comics/issue/1", "https://www.marvel.com/comics/issue/1"},
		{"AlreadyCanonical", "https://www.marvel.com/comics/issue/1", "https://www.marvel.com/comics/issue/1"},
		{"UppercaseScheme", "HTTP://marvel.com/a", "https://www.marvel.com/a"},
		{"PathKeptVerbatim", "http://marvel.com/a/http://marvel.com/b", "https://www.marvel.com/a/http://marvel.com/b"},
		{"QueryOnly", "http://marvel.com?x=1", "https://www.marvel.com?x=1"},
		{"OtherHost", "http://cdn.marvel.com/i.jpg", "https://cdn.marvel.com/i.jpg"},
		{"LookalikeHost", "http://marvel.company/x", "https://marvel.company/x"},
		{"NoScheme", "marvel.com/x", "marvel.com/x"},
		{"RelativePath", "/comics/issue/1", "/comics/issue/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := URL(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, URL(got), "must be idempotent")
		})
	}
}

func TestSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Avengers  (2012)#1", "Avengers (2012) #1"},
		{"  Secret Wars\t(2015) #1 ", "Secret Wars (2015) #1"},
		{"X-Men (1991)#1)#2", "X-Men (1991) #1) #2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Spacing(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Spacing(got))
		})
	}
}

func TestForMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Avengers (2012) #001", "avengers 2012 #1"},
		{"Avengers  (2012) #001", "avengers 2012 #1"},
		{"SECRET WARS (2015) #1", "secret wars 2015 #1"},
		{"Amazing Spider-Man #0.1", "amazing spider man #0.1"},
		{"Amazing Spider-Man (1963) #000", "amazing spider man 1963 #0"},
		{"Avengers: Endgame!", "avengers endgame"},
		{"Avengers (2012) #1.50", "avengers 2012 #1.50"},
		{"Doctor Strange, Sorcerer Supreme #010", "doctor strange sorcerer supreme #10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ForMatch(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ForMatch(got), "must be idempotent")
		})
	}
}

func TestIssueNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Avengers (2012) #5", "5", true},
		{"Amazing Spider-Man #0.1", "0.1", true},
		{"Avengers (2012) #1AU", "1AU", true},
		{"Avengers #1 Director's Cut #2", "2", true},
		{"Avengers Annual", "", false},
		{"Avengers #", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := IssueNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeriesName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Avengers (2012) #5", "Avengers", true},
		{"Amazing Spider-Man (1963) #129", "Amazing Spider-Man", true},
		{"Secret Wars #1", "Secret Wars", true},
		{"Infinity Gauntlet", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := SeriesName(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYear(t *testing.T) {
	year, ok := Year("Avengers (2012) #5")
	assert.True(t, ok)
	assert.Equal(t, 2012, year)

	_, ok = Year("Avengers #5")
	assert.False(t, ok)

	_, ok = Year("Avengers (12) #5")
	assert.False(t, ok)
}
