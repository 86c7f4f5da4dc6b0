package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/dsj-tournaments/internal/acceptance"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
	"github.com/mauv0809/dsj-tournaments/internal/replay"
	"github.com/mauv0809/dsj-tournaments/internal/tournament"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loggerFor(r).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) SubmitJumpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub acceptance.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			loggerFor(r).Warn("Failed to decode jump submission", "error", err)
			writeJSON(w, http.StatusBadRequest, ApiError{Message: "Invalid request body."})
			return
		}

		j, err := s.Jumps.Submit(r.Context(), sub)
		if rejection, ok := acceptance.AsRejection(err); ok {
			writeRejection(w, rejection)
			return
		}
		if err != nil {
			loggerFor(r).Error("Failed to process jump submission", "error", err, "replayCode", sub.ReplayCode)
			writeJSON(w, http.StatusInternalServerError, ApiError{Message: "Failed to process jump.", Input: sub})
			return
		}

		writeJSON(w, http.StatusOK, j)
	}
}

func (s *Server) GetJumpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		replayCode := r.PathValue("replayCode")
		j, err := s.Jumps.Get(r.Context(), replayCode)
		if errors.Is(err, jump.ErrNotFound) {
			loggerFor(r).Info("Jump not found", "replayCode", replayCode)
			writeJSON(w, http.StatusNotFound, ApiError{
				Message: acceptance.JumpNotFound.Message(),
				Reason:  string(acceptance.JumpNotFound),
				Input:   replayCode,
			})
			return
		}
		if err != nil {
			loggerFor(r).Error("Failed to get jump", "error", err, "replayCode", replayCode)
			http.Error(w, "Failed to get jump", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, j)
	}
}

func (s *Server) DeleteJumpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		replayCode := r.PathValue("replayCode")
		if err := s.Jumps.Delete(r.Context(), replayCode); err != nil {
			loggerFor(r).Error("Failed to delete jump", "error", err, "replayCode", replayCode)
			http.Error(w, "Failed to delete jump", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, replayCode)
	}
}

// PreviewReplayHandler shows what the replay service reports for a replay
// without submitting it.
func (s *Server) PreviewReplayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		replayCode := r.PathValue("replayCode")
		j, err := s.Jumps.Preview(r.Context(), replayCode)
		if err != nil {
			if !errors.Is(err, replay.ErrNotFound) {
				loggerFor(r).Warn("Replay lookup failed", "error", err, "replayCode", replayCode)
			}
			writeJSON(w, http.StatusNotFound, ApiError{
				Message: acceptance.JumpNotFound.Message(),
				Reason:  string(acceptance.JumpNotFound),
				Input:   replayCode,
			})
			return
		}
		writeJSON(w, http.StatusOK, j)
	}
}

func (s *Server) TournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.PathValue("code")
		results, err := s.Jumps.Tournament(r.Context(), code)
		if errors.Is(err, tournament.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, ApiError{Message: "Tournament with given code doesn't exist.", Input: code})
			return
		}
		if err != nil {
			loggerFor(r).Error("Failed to get tournament", "error", err, "code", code)
			http.Error(w, "Failed to get tournament", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func (s *Server) ActiveTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, err := s.Jumps.ActiveTournaments(r.Context())
		if err != nil {
			loggerFor(r).Error("Failed to list active tournaments", "error", err)
			http.Error(w, "Failed to list active tournaments", http.StatusInternalServerError)
			return
		}
		if active == nil {
			active = []tournament.Tournament{}
		}
		writeJSON(w, http.StatusOK, active)
	}
}

// statusFor maps a rejection reason to the HTTP status reported to clients.
func statusFor(reason acceptance.Reason) int {
	switch reason {
	case acceptance.NoActiveTournament, acceptance.JumpNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func writeRejection(w http.ResponseWriter, rejection *acceptance.Rejection) {
	writeJSON(w, statusFor(rejection.Reason), ApiError{
		Message: rejection.Reason.Message(),
		Reason:  string(rejection.Reason),
		Input:   rejection.Input,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
