package http

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/tracker"
)

// readPushMessage unwraps a Pub/Sub push delivery into v.
func (s *Server) readPushMessage(w http.ResponseWriter, r *http.Request, v any) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return false
	}
	log.Debug("Received push message", "path", r.URL.Path, "body", string(bodyBytes))

	var pushMsg pushRequest
	if err := json.Unmarshal(bodyBytes, &pushMsg); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	rawData, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		http.Error(w, "Invalid base64 data", http.StatusBadRequest)
		return false
	}
	if err := s.pubsub.ProcessMessage(rawData, v); err != nil {
		http.Error(w, "Invalid message payload", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) deliver(w http.ResponseWriter, r *http.Request, event any) {
	if err := tracker.Deliver(s.Notifier, event, isDryRunFromContext(r)); err != nil {
		log.Error("Failed to deliver notification", "error", err)
		http.Error(w, "Failed to deliver notification", http.StatusInternalServerError)
		return
	}
	w.Write([]byte("OK"))
}

func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.MatchCompleted
		if !s.readPushMessage(w, r, &event) {
			return
		}
		s.deliver(w, r, event)
	}
}

func (s *Server) NotifyRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.RoundAdvanced
		if !s.readPushMessage(w, r, &event) {
			return
		}
		s.deliver(w, r, event)
	}
}

func (s *Server) NotifyChampionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.ChampionCrowned
		if !s.readPushMessage(w, r, &event) {
			return
		}
		s.deliver(w, r, event)
	}
}
