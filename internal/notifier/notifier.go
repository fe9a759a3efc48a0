package notifier

import (
	"context"

	"github.com/martige/matchbot/internal/scoreboard"
)

// Notifier defines a high-level interface for publishing match summaries.
// This decouples the pipeline from the specific chat provider (e.g., Slack).
type Notifier interface {
	// SendMatchSummary publishes the end-of-match summary with a link to the
	// archived demo. It is best-effort from the pipeline's point of view.
	SendMatchSummary(ctx context.Context, summary *scoreboard.Summary, demoURL string) error
}
