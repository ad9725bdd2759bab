package usecase

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/standup-digest/internal/domain"
)

// hotThreshold is the count above which a line gets a fire marker.
const hotThreshold = 10

// Style controls how headers and links are written.
type Style struct {
	Header func(string) string
	Link   func(domain.LinkKey) string
}

var slackEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// SlackStyle renders bold headers and mrkdwn links.
var SlackStyle = Style{
	Header: func(s string) string { return "*" + s + "*" },
	Link: func(k domain.LinkKey) string {
		return fmt.Sprintf("<%s|%s> (%s)", k.URL(), slackEscaper.Replace(k.Label()), k.Ref())
	},
}

// PlainStyle renders plain text, for terminals.
var PlainStyle = Style{
	Header: func(s string) string { return s },
	Link: func(k domain.LinkKey) string {
		return fmt.Sprintf("%s (%s)", k.Label(), k.Ref())
	},
}

// Render turns the tallies into a digest. Every list is in first-seen order.
// Sections without lines are left out.
func Render(t *domain.Tallies, style Style) domain.Digest {
	var d domain.Digest

	pullRequests := itemLines(t.CreatedPullRequests, t.CommentedPullRequests, style, nil)
	shown := func(k domain.LinkKey) bool {
		return t.CreatedPullRequests.Has(k) || t.CommentedPullRequests.Has(k)
	}
	issues := itemLines(t.CreatedIssues, t.CommentedIssues, style, shown)

	var wiki []string
	for _, k := range t.EditedWikiPages.Keys() {
		count := t.EditedWikiPages.Count(k)
		wiki = append(wiki, fmt.Sprintf("Edit %s %s", style.Link(k), times(count))+hot(count))
	}

	for _, s := range []domain.Section{
		{Header: "Pull requests", Lines: pullRequests},
		{Header: "Issues", Lines: issues},
		{Header: "Wiki", Lines: wiki},
	} {
		if len(s.Lines) == 0 {
			continue
		}
		s.Header = style.Header(s.Header)
		d.Sections = append(d.Sections, s)
	}
	return d
}

// itemLines merges the created and commented tallies of one category.
// Keys for which skip returns true are left out.
func itemLines(created, commented *domain.Tally, style Style, skip func(domain.LinkKey) bool) []string {
	var lines []string
	for _, k := range created.Keys() {
		if skip != nil && skip(k) {
			continue
		}
		line := "Open " + style.Link(k)
		if count := commented.Count(k); count > 0 {
			line += " and comment " + times(count) + hot(count)
		}
		lines = append(lines, line)
	}
	for _, k := range commented.Keys() {
		if created.Has(k) || (skip != nil && skip(k)) {
			continue
		}
		count := commented.Count(k)
		lines = append(lines, fmt.Sprintf("Comment %s on %s", times(count), style.Link(k))+hot(count))
	}
	return lines
}

func times(n int) string {
	if n == 1 {
		return "1 time"
	}
	return fmt.Sprintf("%d times", n)
}

func hot(n int) string {
	if n > hotThreshold {
		return " 🔥"
	}
	return ""
}
