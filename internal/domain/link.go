package domain

import "fmt"

const githubURL = "https://github.com"

// LinkKey identifies a repository item (pull request, issue or wiki page).
// It is comparable and used as a tally bucket key, so two events that refer
// to the same target must build equal keys.
type LinkKey struct {
	Repo   string
	Number int
	Title  string
	Page   string
}

// ItemKey builds the key of a pull request or issue.
func ItemKey(repo string, number int, title string) LinkKey {
	return LinkKey{Repo: repo, Number: number, Title: title}
}

// WikiKey builds the key of a wiki page.
func WikiKey(repo, page string) LinkKey {
	return LinkKey{Repo: repo, Page: page}
}

// IsWiki reports whether the key points at a wiki page.
func (k LinkKey) IsWiki() bool { return k.Page != "" }

// Label is the human-readable name of the item.
func (k LinkKey) Label() string {
	if k.IsWiki() {
		return k.Page
	}
	return k.Title
}

// Ref is the short reference, e.g. "org/a#1" or "org/c.wiki/Home".
func (k LinkKey) Ref() string {
	if k.IsWiki() {
		return fmt.Sprintf("%s.wiki/%s", k.Repo, k.Page)
	}
	return fmt.Sprintf("%s#%d", k.Repo, k.Number)
}

// URL points at the item on GitHub. Pull requests use the issues path too,
// GitHub redirects it to the pull request.
func (k LinkKey) URL() string {
	if k.IsWiki() {
		return fmt.Sprintf("%s/%s/wiki/%s", githubURL, k.Repo, k.Page)
	}
	return fmt.Sprintf("%s/%s/issues/%d", githubURL, k.Repo, k.Number)
}
