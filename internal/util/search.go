package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a task search string.
type SearchQuery struct {
	Dates     []string
	Important bool
	Text      []string
}

var (
	dateRegex      = regexp.MustCompile(`date:(\d{4}-\d{2}-\d{2})`)
	importantRegex = regexp.MustCompile(`(?i)\b(?:is:important|important:(?:yes|true|1))\b|(?:^|\s)!(?:\s|$)`)
)

// ParseSearchQuery breaks down a raw query such as
// "date:2026-10-19 is:important report" into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	matches := dateRegex.FindAllStringSubmatch(query, -1)
	for _, match := range matches {
		if len(match) > 1 {
			sq.Dates = append(sq.Dates, match[1])
		}
	}
	query = dateRegex.ReplaceAllString(query, "")

	if importantRegex.MatchString(query) {
		sq.Important = true
		query = importantRegex.ReplaceAllString(query, "")
	}
	if words := strings.Fields(query); len(words) > 0 {
		sq.Text = words
	}

	return sq
}

// Empty reports whether the query places no constraint.
func (q SearchQuery) Empty() bool {
	return len(q.Dates) == 0 && !q.Important && len(q.Text) == 0
}
