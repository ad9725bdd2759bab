// Package gateway provides gateways to the GitHub and Slack APIs,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/rs/zerolog"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/standup-digest/internal/domain"
)

const eventsPerPage = 100

// EventSource defines the behavior of a gateway for reading a user's event feed.
type EventSource interface {
	// Events yields the events of user newest-first, down to since (inclusive).
	// A non-empty org skips events that belong to another organization.
	Events(ctx context.Context, user, org string, since time.Time) iter.Seq2[domain.ActivityEvent, error]
	// Viewer returns the login of the authenticated user.
	Viewer(ctx context.Context) (string, error)
}

// GitHubGateway is the concrete implementation of the EventSource interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        zerolog.Logger
}

// viewerQuery asks GraphQL for the login behind the token.
type viewerQuery struct {
	Viewer struct {
		Login githubv4.String
	}
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token makes unauthenticated requests, which only see public events.
func NewGitHubGateway(token string, logger zerolog.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{Transport: transport}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// Events pages through the feed and stops at the first event older than since.
// The feed is ordered newest-first, so nothing after that event can qualify.
func (g *GitHubGateway) Events(ctx context.Context, user, org string, since time.Time) iter.Seq2[domain.ActivityEvent, error] {
	return func(yield func(domain.ActivityEvent, error) bool) {
		opts := &github.ListOptions{PerPage: eventsPerPage}
		for {
			g.logger.Debug().Str("user", user).Int("page", opts.Page).Msg("Fetching events page")
			events, resp, err := g.restClient.Activity.ListEventsPerformedByUser(ctx, user, false, opts)
			if err != nil {
				yield(domain.ActivityEvent{}, fmt.Errorf("failed to list events with REST API: %w", err))
				return
			}
			for _, e := range events {
				if e.GetCreatedAt().Time.Before(since) {
					g.logger.Debug().Time("created_at", e.GetCreatedAt().Time).Msg("Reached the end of the time window")
					return
				}
				if org != "" && e.Org != nil && e.GetOrg().GetLogin() != org {
					continue
				}
				event, err := toActivityEvent(e)
				if err != nil {
					yield(domain.ActivityEvent{}, err)
					return
				}
				if !yield(event, nil) {
					return
				}
			}
			if resp.NextPage == 0 {
				return
			}
			opts.Page = resp.NextPage
		}
	}
}

// Viewer resolves the login of the token owner over GraphQL.
func (g *GitHubGateway) Viewer(ctx context.Context) (string, error) {
	var q viewerQuery
	if err := g.graphqlClient.Query(ctx, &q, nil); err != nil {
		return "", fmt.Errorf("failed to execute GraphQL query for viewer: %w", err)
	}
	return string(q.Viewer.Login), nil
}

// toActivityEvent converts a feed entry into the domain tagged union.
func toActivityEvent(e *github.Event) (domain.ActivityEvent, error) {
	event := domain.ActivityEvent{
		Type:      domain.Other,
		CreatedAt: e.GetCreatedAt().Time,
		Repo:      e.GetRepo().GetName(),
		Org:       e.GetOrg().GetLogin(),
	}

	switch e.GetType() {
	case "PullRequestEvent", "PullRequestReviewEvent", "PullRequestReviewCommentEvent",
		"IssueCommentEvent", "IssuesEvent", "GollumEvent":
	default:
		return event, nil
	}

	raw, err := e.ParsePayload()
	if err != nil {
		return event, fmt.Errorf("%w: %s %s: %v", domain.ErrMalformedEvent, e.GetType(), e.GetID(), err)
	}

	var pr *github.PullRequest
	var issue *github.Issue
	switch p := raw.(type) {
	case *github.PullRequestEvent:
		if p.GetAction() != "opened" {
			return event, nil
		}
		event.Type, pr = domain.PullRequestOpened, p.PullRequest
	case *github.PullRequestReviewEvent:
		event.Type, pr = domain.PullRequestReview, p.PullRequest
	case *github.PullRequestReviewCommentEvent:
		event.Type, pr = domain.PullRequestReviewComment, p.PullRequest
	case *github.IssueCommentEvent:
		event.Type, issue = domain.IssueComment, p.Issue
	case *github.IssuesEvent:
		event.Type, issue = domain.IssueStateChange, p.Issue
	case *github.GollumEvent:
		pages := make([]string, 0, len(p.Pages))
		for _, page := range p.Pages {
			pages = append(pages, page.GetPageName())
		}
		event.Type, event.Payload = domain.WikiEdit, domain.WikiPayload{Pages: pages}
		return event, nil
	}

	switch {
	case pr != nil:
		event.Payload = domain.PullRequestPayload{Number: pr.GetNumber(), Title: pr.GetTitle()}
	case issue != nil:
		event.Payload = domain.IssuePayload{Number: issue.GetNumber(), Title: issue.GetTitle()}
	default:
		return event, fmt.Errorf("%w: %s %s has no target", domain.ErrMalformedEvent, e.GetType(), e.GetID())
	}
	return event, nil
}
