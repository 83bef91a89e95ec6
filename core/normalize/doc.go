// Package normalize holds the pure string canonicalization used for comic titles and
// marvel.com URLs.
//
// Every function is idempotent: applying it to its own output changes nothing.
//
//   - URL: https scheme, www.marvel.com host, path untouched.
//   - Spacing: display-safe whitespace cleanup ("Avengers  (2012)#1" -> "Avengers (2012) #1").
//   - ForMatch: aggressive match key ("Avengers (2012) #001" -> "avengers 2012 #1").
//   - IssueNumber, SeriesName, Year: structural fields pulled out of a title.
package normalize
