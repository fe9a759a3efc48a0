package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/martige/matchbot/internal/metrics"
	"github.com/martige/matchbot/internal/notifier"
	"github.com/martige/matchbot/internal/scoreboard"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = (*Notifier)(nil)

// Notifier handles sending match summaries to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// SendMatchSummary publishes the scoreboard to the configured channel with a
// button linking the archived demo.
func (s *Notifier) SendMatchSummary(ctx context.Context, summary *scoreboard.Summary, demoURL string) error {
	msg := s.formatMatchSummary(summary, demoURL)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(msg.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// formatMatchSummary builds the Block Kit message: the scoreboard text plus
// one Download Demo button.
func (s *Notifier) formatMatchSummary(summary *scoreboard.Summary, demoURL string) slack.Message {
	blocks := make([]slack.Block, 0, 2)

	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, summary.Text, false, false), nil, nil,
	))

	if demoURL != "" {
		btn := slack.NewButtonBlockElement(
			"download_demo", demoURL,
			slack.NewTextBlockObject(slack.PlainTextType, "Download Demo", false, false),
		)
		btn.URL = demoURL
		blocks = append(blocks, slack.NewActionBlock("demo_actions", btn))
	}

	return slack.NewBlockMessage(blocks...)
}
