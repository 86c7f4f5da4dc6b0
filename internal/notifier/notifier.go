package notifier

import (
	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For accepted jumps in tournaments with a live board
	SendJumpAccepted(j *jump.Jump, t *tournament.Tournament, dryRun bool) error
	// For accepted jumps that could not be assigned to a single tournament
	SendUnassignedJump(j *jump.Jump, candidates []string, dryRun bool) error

	// For formatting responses for slash commands
	FormatJumpResponse(j *jump.Jump) (any, error)
	FormatRejectionResponse(rejection *acceptance.Rejection) (any, error)
	FormatJumpNotFoundResponse(replayCode string) (any, error)
}
