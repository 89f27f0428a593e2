package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/ledger"
	"github.com/mauv0809/scoreline/internal/roster"
	"github.com/mauv0809/scoreline/internal/rules"
	"github.com/mauv0809/scoreline/internal/tracker"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case rules.IsClientError(err):
		return http.StatusBadRequest
	case rules.IsConflict(err), errors.Is(err, ledger.ErrNothingToUndo):
		return http.StatusConflict
	case tracker.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
		writeJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	log.Debug("Request rejected", "status", status, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// decode reads a JSON body into v, answering 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

// sportParam reads the sport query parameter, defaulting to cricket.
func sportParam(w http.ResponseWriter, r *http.Request) (history.Sport, bool) {
	sport := history.Sport(r.URL.Query().Get("sport"))
	if sport == "" {
		sport = history.SportCricket
	}
	if !sport.Valid() {
		writeError(w, fmt.Errorf("%w: unknown sport %q", rules.ErrValidation, sport))
		return "", false
	}
	return sport, true
}

func (s *Server) ListMatchesHandler(sport history.Sport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := s.Tracker.Keys(sport)
		if err != nil {
			writeError(w, err)
			return
		}
		if ids == nil {
			ids = []string{}
		}
		writeJSON(w, http.StatusOK, ids)
	}
}

func (s *Server) HistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		records, err := s.Tracker.History(sport)
		if err != nil {
			writeError(w, err)
			return
		}
		if records == nil {
			records = []history.Record{}
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func (s *Server) SummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		summary, err := s.Tracker.Summary(sport)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func (s *Server) ClearHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		if err := s.Tracker.ClearHistory(sport, isDryRunFromContext(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Cleared %s history!", sport)
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		teams, err := s.Tracker.Roster(sport)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) SaveTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		var team roster.Team
		if !decode(w, r, &team) {
			return
		}
		if err := s.Tracker.SaveTeam(sport, team, isDryRunFromContext(r)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, team)
	}
}

func (s *Server) GetSetupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		setup, err := s.Tracker.Setup(sport)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, setup)
	}
}

func (s *Server) SaveSetupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		var setup roster.Setup
		if !decode(w, r, &setup) {
			return
		}
		if err := s.Tracker.SaveSetup(sport, setup, isDryRunFromContext(r)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, setup)
	}
}
