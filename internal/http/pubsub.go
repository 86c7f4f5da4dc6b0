package http

import (
	"encoding/json"
	"net/http"

	"github.com/mauv0809/dsj-tournaments/internal/pubsub"
)

// decodeJumpEvent unwraps a Pub/Sub push request carrying a JumpEvent.
func (s *Server) decodeJumpEvent(w http.ResponseWriter, r *http.Request) (*pubsub.JumpEvent, bool) {
	var push pubsub.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&push); err != nil {
		loggerFor(r).Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	loggerFor(r).Debug("Received push message", "subscription", push.Subscription, "messageID", push.Message.ID)

	var event pubsub.JumpEvent
	if err := s.pubsub.ProcessMessage(push.Message.Data, &event); err != nil {
		http.Error(w, "Invalid message data", http.StatusBadRequest)
		return nil, false
	}
	return &event, true
}

func (s *Server) JumpAcceptedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, ok := s.decodeJumpEvent(w, r)
		if !ok {
			return
		}
		outcome, err := s.Processor.ProcessJumpAccepted(r.Context(), event, isDryRunFromContext(r))
		if err != nil {
			loggerFor(r).Error("Failed to process accepted jump", "error", err, "replayCode", event.Jump.ReplayCode)
		}
		loggerFor(r).Debug("Processed accepted jump", "replayCode", event.Jump.ReplayCode, "outcome", outcome)
		w.Write([]byte("OK"))
	}
}

func (s *Server) JumpUnassignedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, ok := s.decodeJumpEvent(w, r)
		if !ok {
			return
		}
		if _, err := s.Processor.ProcessJumpUnassigned(r.Context(), event, isDryRunFromContext(r)); err != nil {
			loggerFor(r).Error("Failed to process unassigned jump", "error", err, "replayCode", event.Jump.ReplayCode)
		}
		w.Write([]byte("OK"))
	}
}
