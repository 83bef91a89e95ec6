package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	canonicalHost = "www.marvel.com"
	bareHost      = "marvel.com"
)

var (
	issueTokenRe  = regexp.MustCompile(`#([0-9]+(?:\.[0-9]+)?)`)
	issueNumberRe = regexp.MustCompile(`#([0-9]+(?:\.[0-9]+)?(?:[A-Za-z]+)?)`)
	seriesYearRe  = regexp.MustCompile(`^(.+?)\s*\([0-9]{4}`)
	seriesHashRe  = regexp.MustCompile(`^(.+?)\s*#`)
	yearRe        = regexp.MustCompile(`\(([0-9]{4})\)`)
)

// URL returns the canonical form of a marvel.com URL: https scheme and the www host.
// The path, query and fragment are kept verbatim.
func URL(raw string) string {
	u := raw
	if hasPrefixFold(u, "http://") {
		u = "https://" + u[len("http://"):]
	} else if hasPrefixFold(u, "https://") {
		u = "https://" + u[len("https://"):]
	} else {
		return u
	}

	rest := u[len("https://"):]
	hostEnd := strings.IndexAny(rest, "/?#")
	host := rest
	if hostEnd >= 0 {
		host = rest[:hostEnd]
	}
	if strings.EqualFold(host, bareHost) {
		return "https://" + canonicalHost + rest[len(host):]
	}
	return u
}

// Spacing collapses whitespace runs to one space, separates ")#" into ") #" and trims
// both ends.
func Spacing(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	return strings.ReplaceAll(title, ")#", ") #")
}

// ForMatch returns the canonical match key of a title. The key is only meant for
// comparing titles and is never shown.
//
//	ForMatch("Avengers (2012) #001") == "avengers 2012 #1"
func ForMatch(title string) string {
	title = Spacing(strings.ToLower(title))

	title = strings.Map(func(r rune) rune {
		switch {
		case r == '(' || r == ')':
			return ' '
		case r == '#' || r == '.' || r == '_':
			return r
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, title)

	title = issueTokenRe.ReplaceAllStringFunc(title, func(tok string) string {
		num := tok[1:]
		if strings.Contains(num, ".") {
			return tok
		}
		num = strings.TrimLeft(num, "0")
		if num == "" {
			num = "0"
		}
		return "#" + num
	})

	return strings.Join(strings.Fields(title), " ")
}

// IssueNumber returns the issue token after the last "#" in title: digits, an
// optional ".digits" part and optional trailing letters ("5", "0.1", "1AU").
func IssueNumber(title string) (string, bool) {
	matches := issueNumberRe.FindAllStringSubmatch(title, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1][1], true
}

// SeriesName returns the text before a parenthesized four-digit year, or failing
// that the text before the first "#".
func SeriesName(title string) (string, bool) {
	if m := seriesYearRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := seriesHashRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// Year returns the four-digit year written in parentheses, as in "Avengers (2012) #5".
func Year(title string) (int, bool) {
	m := yearRe.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
