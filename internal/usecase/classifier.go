package usecase

import (
	"fmt"
	"iter"

	"github.com/naka-gawa/standup-digest/internal/domain"
)

// Classify consumes events once and counts them per category.
// An error from the sequence aborts classification and is returned as is.
func Classify(events iter.Seq2[domain.ActivityEvent, error]) (*domain.Tallies, error) {
	t := domain.NewTallies()
	for e, err := range events {
		if err != nil {
			return nil, err
		}
		if err := classify(t, e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func classify(t *domain.Tallies, e domain.ActivityEvent) error {
	switch e.Type {
	case domain.PullRequestReviewComment, domain.PullRequestReview:
		p, ok := e.Payload.(domain.PullRequestPayload)
		if !ok {
			return malformed(e)
		}
		t.CommentedPullRequests.Add(domain.ItemKey(e.Repo, p.Number, p.Title))
	case domain.PullRequestOpened:
		p, ok := e.Payload.(domain.PullRequestPayload)
		if !ok {
			return malformed(e)
		}
		t.CreatedPullRequests.Add(domain.ItemKey(e.Repo, p.Number, p.Title))
	case domain.IssueComment, domain.IssueStateChange:
		p, ok := e.Payload.(domain.IssuePayload)
		if !ok {
			return malformed(e)
		}
		t.CommentedIssues.Add(domain.ItemKey(e.Repo, p.Number, p.Title))
	case domain.WikiEdit:
		p, ok := e.Payload.(domain.WikiPayload)
		if !ok {
			return malformed(e)
		}
		for _, page := range p.Pages {
			t.EditedWikiPages.Add(domain.WikiKey(e.Repo, page))
		}
	}
	return nil
}

func malformed(e domain.ActivityEvent) error {
	return fmt.Errorf("%w: %s on %s carries %T", domain.ErrMalformedEvent, e.Type, e.Repo, e.Payload)
}
