// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/naka-gawa/standup-digest/internal/config"
	"github.com/naka-gawa/standup-digest/internal/domain"
	"github.com/naka-gawa/standup-digest/internal/gateway"
)

// Standup is the use case for building and posting a digest.
// It runs the pipeline fetch, classify, render, publish in order.
type Standup struct {
	source    gateway.EventSource
	publisher gateway.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStandup creates a new Standup instance. publisher may be nil when the
// digest is only previewed.
func NewStandup(source gateway.EventSource, publisher gateway.Publisher, logger zerolog.Logger) *Standup {
	return &Standup{
		source:    source,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Window resolves the lower bound of recent activity from the current clock.
func (s *Standup) Window() time.Time {
	return Since(s.now())
}

// Digest fetches the events of user since the given bound, classifies them
// and renders the result with style.
func (s *Standup) Digest(ctx context.Context, user, org string, since time.Time, style Style) (domain.Digest, error) {
	user, err := s.resolveUser(ctx, user)
	if err != nil {
		return domain.Digest{}, err
	}
	s.logger.Info().Str("user", user).Str("org", org).Time("since", since).Msg("Usecase: Fetching activity...")

	tallies, err := Classify(s.source.Events(ctx, user, org, since))
	if err != nil {
		return domain.Digest{}, fmt.Errorf("failed to classify events: %w", err)
	}
	for _, t := range []struct {
		name  string
		tally *domain.Tally
	}{
		{"created_pull_requests", tallies.CreatedPullRequests},
		{"commented_pull_requests", tallies.CommentedPullRequests},
		{"commented_issues", tallies.CommentedIssues},
		{"edited_wiki_pages", tallies.EditedWikiPages},
	} {
		st := t.tally.Stats()
		s.logger.Debug().Str("tally", t.name).Int("items", st.Items).Int("total", st.Total).Int("max", st.Max).Msg("Tally")
	}

	digest := Render(tallies, style)
	s.logger.Info().Int("sections", len(digest.Sections)).Msg("Usecase: Digest rendered.")
	return digest, nil
}

// Run builds today's digest and posts it to channel. An empty digest is not posted.
func (s *Standup) Run(ctx context.Context, user, org, channel string) error {
	if s.publisher == nil {
		return fmt.Errorf("no publisher configured")
	}
	digest, err := s.Digest(ctx, user, org, s.Window(), SlackStyle)
	if err != nil {
		return err
	}
	if digest.IsEmpty() {
		s.logger.Info().Msg("Usecase: No activity in the time window, nothing to post.")
		return nil
	}
	if err := s.publisher.Publish(ctx, channel, digest.String()); err != nil {
		return err
	}
	s.logger.Info().Str("channel", channel).Msg("Usecase: Digest published.")
	return nil
}

func (s *Standup) resolveUser(ctx context.Context, user string) (string, error) {
	if user != config.ViewerUser {
		return user, nil
	}
	login, err := s.source.Viewer(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", config.ViewerUser, err)
	}
	return login, nil
}
