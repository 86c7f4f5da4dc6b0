package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/metrics"
	"github.com/mauv0809/dsj-tournaments/internal/notifier"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
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

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendJumpAccepted(j *jump.Jump, t *tournament.Tournament, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatJumpAccepted(j, t), dryRun)
	return err
}

func (s *Notifier) SendUnassignedJump(j *jump.Jump, candidates []string, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatUnassignedJump(j, candidates), dryRun)
	return err
}

// FormatJumpResponse formats an accepted jump for a slash command response.
func (s *Notifier) FormatJumpResponse(j *jump.Jump) (any, error) {
	return s.formatJump(j), nil
}

// FormatRejectionResponse formats a rejected submission for a slash command response.
func (s *Notifier) FormatRejectionResponse(rejection *acceptance.Rejection) (any, error) {
	return s.formatRejection(rejection), nil
}

// FormatJumpNotFoundResponse formats a missing jump for a slash command response.
func (s *Notifier) FormatJumpNotFoundResponse(replayCode string) (any, error) {
	return s.formatJumpNotFound(replayCode), nil
}

func (s *Notifier) formatJumpAccepted(j *jump.Jump, t *tournament.Tournament) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎿 New jump! 🎿", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s flew *%s m* on %s for *%s* points.", j.Player, formatNumber(j.Distance), j.Hill, formatNumber(j.Points))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", detailsText, false, false), nil, nil))

	contextElements := []slack.MixedElement{
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Tournament `%s` | Replay `%s`", t.Code, j.ReplayCode), false, false),
	}
	if j.User.Username != "" {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", "Sent by "+j.User.Username, true, false))
	}
	blocks = append(blocks, slack.NewContextBlock("", contextElements...))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatUnassignedJump(j *jump.Jump, candidates []string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚠️ Jump without tournament", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var reason string
	if len(candidates) == 0 {
		reason = "No active tournament on this hill covers the jump date."
	} else {
		quoted := make([]string, len(candidates))
		for i, c := range candidates {
			quoted[i] = "`" + c + "`"
		}
		reason = "The jump matches several tournaments: " + strings.Join(quoted, ", ")
	}
	text := fmt.Sprintf("Replay `%s` by %s on %s (%s) was accepted but does not compete.\n%s",
		j.ReplayCode, j.Player, j.Hill, j.Date.Format(jump.DateLayout), reason)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatJump creates the confirmation sent back to the user who submitted the jump.
func (s *Notifier) formatJump(j *jump.Jump) slack.Message {
	text := fmt.Sprintf("✅ Jump accepted: %s, *%s m*, *%s* points on %s.", j.Player, formatNumber(j.Distance), formatNumber(j.Points), j.Hill)
	if j.TournamentCode == nil {
		text += "\n> It is not counted in any tournament."
	}
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

func (s *Notifier) formatRejection(rejection *acceptance.Rejection) slack.Message {
	text := fmt.Sprintf("❌ %s", rejection.Reason.Message())
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
		slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Reason: `%s`", rejection.Reason), false, false)),
	)
}

func (s *Notifier) formatJumpNotFound(replayCode string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find an accepted jump with replay code *%s*.", replayCode)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

// formatNumber drops the fraction of whole numbers.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}
