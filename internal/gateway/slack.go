package gateway

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// Publisher defines the behavior of a gateway for delivering a digest.
type Publisher interface {
	Publish(ctx context.Context, channel, text string) error
}

// SlackGateway posts messages with a bot token.
type SlackGateway struct {
	client *slack.Client
	logger zerolog.Logger
}

// slackLogAdapter adapts zerolog to slack-go's log interface.
type slackLogAdapter struct {
	logger zerolog.Logger
}

func (a *slackLogAdapter) Output(calldepth int, s string) error {
	a.logger.Debug().Msg(s)
	return nil
}

// NewSlackGateway creates a SlackGateway. Extra options are passed to the
// slack client, e.g. slack.OptionAPIURL.
func NewSlackGateway(token string, logger zerolog.Logger, options ...slack.Option) *SlackGateway {
	adapter := &slackLogAdapter{logger: logger.With().Str("component", "slack-api").Logger()}
	options = append([]slack.Option{slack.OptionLog(adapter)}, options...)
	return &SlackGateway{
		client: slack.New(token, options...),
		logger: logger,
	}
}

// Publish sends text to channel as a single message.
func (s *SlackGateway) Publish(ctx context.Context, channel, text string) error {
	postedTo, ts, err := s.client.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", channel, err)
	}
	s.logger.Info().Str("channel", postedTo).Str("ts", ts).Msg("Posted digest")
	return nil
}
