package usecase

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/standup-digest/internal/domain"
)

// seq turns a slice into an error-free event sequence.
func seq(events ...domain.ActivityEvent) iter.Seq2[domain.ActivityEvent, error] {
	return func(yield func(domain.ActivityEvent, error) bool) {
		for _, e := range events {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func prEvent(typ domain.EventType, repo string, number int, title string) domain.ActivityEvent {
	return domain.ActivityEvent{Type: typ, Repo: repo, Payload: domain.PullRequestPayload{Number: number, Title: title}}
}

func issueEvent(typ domain.EventType, repo string, number int, title string) domain.ActivityEvent {
	return domain.ActivityEvent{Type: typ, Repo: repo, Payload: domain.IssuePayload{Number: number, Title: title}}
}

func wikiEvent(repo string, pages ...string) domain.ActivityEvent {
	return domain.ActivityEvent{Type: domain.WikiEdit, Repo: repo, Payload: domain.WikiPayload{Pages: pages}}
}

func TestClassify(t *testing.T) {
	events := []domain.ActivityEvent{
		prEvent(domain.PullRequestReviewComment, "org/a", 2, "Refactor"),
		prEvent(domain.PullRequestOpened, "org/a", 1, "Fix bug"),
		prEvent(domain.PullRequestReview, "org/a", 1, "Fix bug"),
		prEvent(domain.PullRequestReviewComment, "org/a", 2, "Refactor"),
		issueEvent(domain.IssueComment, "org/b", 5, "Crash"),
		issueEvent(domain.IssueStateChange, "org/b", 5, "Crash"),
		wikiEvent("org/c", "Home", "FAQ", "Home"),
		{Type: domain.Other, Repo: "org/d"},
	}

	tallies, err := Classify(seq(events...))
	require.NoError(t, err)

	fixBug := domain.ItemKey("org/a", 1, "Fix bug")
	refactor := domain.ItemKey("org/a", 2, "Refactor")
	crash := domain.ItemKey("org/b", 5, "Crash")
	home := domain.WikiKey("org/c", "Home")
	faq := domain.WikiKey("org/c", "FAQ")

	assert.Equal(t, []domain.LinkKey{fixBug}, tallies.CreatedPullRequests.Keys())
	assert.Equal(t, []domain.LinkKey{refactor, fixBug}, tallies.CommentedPullRequests.Keys())
	assert.Equal(t, 2, tallies.CommentedPullRequests.Count(refactor))
	assert.Equal(t, 1, tallies.CommentedPullRequests.Count(fixBug))
	assert.Equal(t, []domain.LinkKey{crash}, tallies.CommentedIssues.Keys())
	assert.Equal(t, 2, tallies.CommentedIssues.Count(crash))
	assert.Equal(t, []domain.LinkKey{home, faq}, tallies.EditedWikiPages.Keys())
	assert.Equal(t, 2, tallies.EditedWikiPages.Count(home))
	assert.Equal(t, 0, tallies.CreatedIssues.Len(), "no event type opens an issue")

	again, err := Classify(seq(events...))
	require.NoError(t, err)
	assert.Equal(t, tallies, again, "classification is a pure function of its input")
}

func TestClassify_Errors(t *testing.T) {
	t.Run("source error is returned unchanged", func(t *testing.T) {
		boom := errors.New("github api error")
		events := func(yield func(domain.ActivityEvent, error) bool) {
			if !yield(issueEvent(domain.IssueComment, "org/b", 5, "Crash"), nil) {
				return
			}
			yield(domain.ActivityEvent{}, boom)
		}
		tallies, err := Classify(events)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, tallies)
	})

	for _, e := range []domain.ActivityEvent{
		{Type: domain.PullRequestOpened, Repo: "org/a"},
		{Type: domain.PullRequestReview, Repo: "org/a", Payload: domain.IssuePayload{Number: 1}},
		{Type: domain.IssueComment, Repo: "org/a", Payload: domain.PullRequestPayload{Number: 1}},
		{Type: domain.WikiEdit, Repo: "org/a"},
	} {
		t.Run("malformed "+e.Type.String(), func(t *testing.T) {
			_, err := Classify(seq(e))
			assert.ErrorIs(t, err, domain.ErrMalformedEvent)
		})
	}
}

func TestClassify_StopsReadingOnError(t *testing.T) {
	var seen []domain.EventType
	events := func(yield func(domain.ActivityEvent, error) bool) {
		for _, e := range []domain.ActivityEvent{
			{Type: domain.WikiEdit, Repo: "org/a"},
			wikiEvent("org/a", "Home"),
		} {
			seen = append(seen, e.Type)
			if !yield(e, nil) {
				return
			}
		}
	}
	_, err := Classify(events)
	require.Error(t, err)
	assert.True(t, slices.Equal([]domain.EventType{domain.WikiEdit}, seen))
}
