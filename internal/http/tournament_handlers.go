package http

import (
	"net/http"

	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/tracker"
)

func (s *Server) CreateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		var req tracker.CreateTournamentRequest
		if r.ContentLength != 0 && !decode(w, r, &req) {
			return
		}
		b, err := s.Tracker.CreateTournament(sport, req, isDryRunFromContext(r))
		respond(w, http.StatusCreated, b, err)
	}
}

func (s *Server) ListTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		all, err := s.Tracker.Tournaments(sport)
		if all == nil {
			all = []bracket.Bracket{}
		}
		respond(w, http.StatusOK, all, err)
	}
}

func (s *Server) TournamentResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		var req resultRequest
		if !decode(w, r, &req) {
			return
		}
		b, err := s.Tracker.RecordTournamentResult(sport, req.BracketID, req.FixtureID, req.Winner, req.ScoreA, req.ScoreB, isDryRunFromContext(r))
		respond(w, http.StatusOK, b, err)
	}
}

func (s *Server) AdvanceTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		var req bracketRequest
		if !decode(w, r, &req) {
			return
		}
		b, err := s.Tracker.AdvanceTournament(sport, req.BracketID, isDryRunFromContext(r))
		respond(w, http.StatusOK, b, err)
	}
}

func (s *Server) RestartTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		var req bracketRequest
		if !decode(w, r, &req) {
			return
		}
		b, err := s.Tracker.RestartTournament(sport, req.BracketID, isDryRunFromContext(r))
		respond(w, http.StatusCreated, b, err)
	}
}

// BracketHandler returns the bracket with the given id, or the tournament in
// progress when no id is passed.
func (s *Server) BracketHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sport, ok := sportParam(w, r)
		if !ok {
			return
		}
		var (
			b   bracket.Bracket
			err error
		)
		if id := r.URL.Query().Get("id"); id != "" {
			b, err = s.Tracker.Tournament(sport, id)
		} else {
			b, err = s.Tracker.ActiveTournament(sport)
		}
		respond(w, http.StatusOK, b, err)
	}
}
