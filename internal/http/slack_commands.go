package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/history"
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

// parseCommandText splits "football <bracket id>" into its sport and optional
// argument. The sport defaults to cricket.
func parseCommandText(text string) (history.Sport, string, bool) {
	parts := strings.Fields(strings.ToLower(text))
	sport := history.SportCricket
	if len(parts) > 0 {
		sport = history.Sport(parts[0])
		parts = parts[1:]
	}
	if !sport.Valid() {
		return "", "", false
	}
	arg := ""
	if len(parts) > 0 {
		// bracket IDs are lowercase UUIDs
		arg = parts[0]
	}
	return sport, arg, true
}

func (s *Server) writeSlackResponse(w http.ResponseWriter, msg any, err error) {
	if err != nil {
		http.Error(w, "Failed to format response", http.StatusInternalServerError)
		log.Error("Failed to format slack response", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

func (s *Server) StandingsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Invalid slash command", http.StatusBadRequest)
			return
		}
		sport, _, ok := parseCommandText(cmd.Text)
		if !ok {
			http.Error(w, "Usage: /standings [cricket|football]", http.StatusBadRequest)
			return
		}
		summary, err := s.Tracker.Summary(sport)
		if err != nil {
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			log.Error("Failed to get standings", "error", err, "sport", sport)
			return
		}
		msg, err := s.Notifier.FormatStandingsResponse(sport, summary.Standings)
		s.writeSlackResponse(w, msg, err)
	}
}

func (s *Server) BracketCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Invalid slash command", http.StatusBadRequest)
			return
		}
		sport, id, ok := parseCommandText(cmd.Text)
		if !ok {
			http.Error(w, "Usage: /bracket [cricket|football] [bracket id]", http.StatusBadRequest)
			return
		}
		var b bracket.Bracket
		if id != "" {
			b, err = s.Tracker.Tournament(sport, id)
		} else {
			b, err = s.Tracker.ActiveTournament(sport)
		}
		var current *bracket.Bracket
		switch {
		case err == nil:
			current = &b
		case statusFor(err) != http.StatusNotFound:
			http.Error(w, "Failed to get bracket", http.StatusInternalServerError)
			log.Error("Failed to get bracket", "error", err, "sport", sport)
			return
		}
		msg, err := s.Notifier.FormatBracketResponse(sport, current)
		s.writeSlackResponse(w, msg, err)
	}
}
