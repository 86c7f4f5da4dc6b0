package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// JumpCommandHandler serves the /jump slash command.
//
//	/jump <replayCode>         shows the accepted jump
//	/jump submit <replayCode>  submits the jump on behalf of the caller
func (s *Server) JumpCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		args := strings.Fields(cmd.Text)
		submit := len(args) == 2 && strings.EqualFold(args[0], "submit")
		if len(args) != 1 && !submit {
			http.Error(w, "Usage: /jump [submit] <replay code>", http.StatusBadRequest)
			return
		}
		replayCode := args[len(args)-1]
		loggerFor(r).Info("Received jump command", "replayCode", replayCode, "submit", submit, "user", cmd.UserName)

		var msg any
		if submit {
			msg, err = s.submitFromSlack(r, cmd, replayCode)
		} else {
			msg, err = s.lookupFromSlack(r, replayCode)
		}
		if err != nil {
			http.Error(w, "Failed to process command", http.StatusInternalServerError)
			loggerFor(r).Error("Failed to process jump command", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			loggerFor(r).Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

func (s *Server) lookupFromSlack(r *http.Request, replayCode string) (any, error) {
	j, err := s.Jumps.Get(r.Context(), replayCode)
	if errors.Is(err, jump.ErrNotFound) {
		return s.Notifier.FormatJumpNotFoundResponse(replayCode)
	}
	if err != nil {
		return nil, err
	}
	return s.Notifier.FormatJumpResponse(j)
}

func (s *Server) submitFromSlack(r *http.Request, cmd slack.SlashCommand, replayCode string) (any, error) {
	sub := acceptance.Submission{
		ReplayCode: replayCode,
		User:       &jump.User{ID: cmd.UserID, Username: cmd.UserName},
	}
	j, err := s.Jumps.Submit(r.Context(), sub)
	if rejection, ok := acceptance.AsRejection(err); ok {
		return s.Notifier.FormatRejectionResponse(rejection)
	}
	if err != nil {
		return nil, err
	}
	return s.Notifier.FormatJumpResponse(j)
}
