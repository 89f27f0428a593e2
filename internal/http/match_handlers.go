package http

import (
	"fmt"
	"net/http"

	"github.com/mauv0809/scoreline/internal/rules"
	"github.com/mauv0809/scoreline/internal/tracker"
)

// respond writes the result of a tracker action.
func respond(w http.ResponseWriter, status int, v any, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, v)
}

func matchIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, fmt.Errorf("%w: id query parameter is required", rules.ErrValidation))
		return "", false
	}
	return id, true
}

func (s *Server) StartCricketHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tracker.StartCricketRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.StartCricket(req, isDryRunFromContext(r))
		respond(w, http.StatusCreated, snap, err)
	}
}

func (s *Server) TossHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tossRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.Toss(req.MatchID, req.Team, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) DecisionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req decisionRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.Decide(req.MatchID, req.Decision, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) BallHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ballRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.RecordBall(req.MatchID, req.Delivery, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) UndoBallHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.UndoBall(req.MatchID, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) CricketMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := matchIDParam(w, r)
		if !ok {
			return
		}
		snap, err := s.Tracker.CricketMatch(id)
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) StartFootballHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tracker.StartFootballRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.StartFootball(req, isDryRunFromContext(r))
		respond(w, http.StatusCreated, snap, err)
	}
}

func (s *Server) AddedTimeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addedTimeRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.ConfirmAddedTime(req.MatchID, req.Minutes, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) SecondHalfHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.StartSecondHalf(req.MatchID, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) GoalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req goalRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.RecordGoal(req.MatchID, req.Side, req.Scorer, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) UndoGoalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.UndoGoal(req.MatchID, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) DrawHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req drawRequest
		if !decode(w, r, &req) {
			return
		}
		var penalties bool
		switch req.Decision {
		case "penalties":
			penalties = true
		case "draw":
		default:
			writeError(w, fmt.Errorf("%w: decision must be penalties or draw, got %q", rules.ErrValidation, req.Decision))
			return
		}
		snap, err := s.Tracker.DrawDecision(req.MatchID, penalties, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) PenaltyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req penaltyRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.RecordPenalty(req.MatchID, req.Side, req.Result, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) UndoPenaltyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if !decode(w, r, &req) {
			return
		}
		snap, err := s.Tracker.UndoPenalty(req.MatchID, isDryRunFromContext(r))
		respond(w, http.StatusOK, snap, err)
	}
}

func (s *Server) FootballMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := matchIDParam(w, r)
		if !ok {
			return
		}
		snap, err := s.Tracker.FootballMatch(id)
		respond(w, http.StatusOK, snap, err)
	}
}
