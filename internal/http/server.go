package http

import (
	"net/http"

	"github.com/mauv0809/scoreline/internal/config"
	"github.com/mauv0809/scoreline/internal/notifier"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/mauv0809/scoreline/internal/tracker"
)

func NewServer(tr *tracker.Tracker, notifier notifier.Notifier, metricsHandler http.Handler, live http.Handler, cfg config.Config, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Tracker:        tr,
		Notifier:       notifier,
		MetricsHandler: metricsHandler,
		Live:           live,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	if s.Live != nil {
		s.Router.Handle("GET /live", s.Live)
	}

	s.Router.Handle("GET /cricket/matches", Chain(s.ListMatchesHandler("cricket"), paramsMiddleware))
	s.Router.Handle("POST /cricket/matches", Chain(s.StartCricketHandler(), paramsMiddleware))
	s.Router.Handle("POST /cricket/toss", Chain(s.TossHandler(), paramsMiddleware))
	s.Router.Handle("POST /cricket/decision", Chain(s.DecisionHandler(), paramsMiddleware))
	s.Router.Handle("POST /cricket/ball", Chain(s.BallHandler(), paramsMiddleware))
	s.Router.Handle("POST /cricket/undo", Chain(s.UndoBallHandler(), paramsMiddleware))
	s.Router.Handle("GET /cricket/match", Chain(s.CricketMatchHandler(), paramsMiddleware))

	s.Router.Handle("GET /football/matches", Chain(s.ListMatchesHandler("football"), paramsMiddleware))
	s.Router.Handle("POST /football/matches", Chain(s.StartFootballHandler(), paramsMiddleware))
	s.Router.Handle("POST /football/added-time", Chain(s.AddedTimeHandler(), paramsMiddleware))
	s.Router.Handle("POST /football/second-half", Chain(s.SecondHalfHandler(), paramsMiddleware))
	s.Router.Handle("POST /football/goal", Chain(s.GoalHandler(), paramsMiddleware))
	s.Router.Handle("POST /football/undo-goal", Chain(s.UndoGoalHandler(), paramsMiddleware))
	s.Router.Handle("POST /football/draw", Chain(s.DrawHandler(), paramsMiddleware))
	s.Router.Handle("POST /football/penalty", Chain(s.PenaltyHandler(), paramsMiddleware))
	s.Router.Handle("POST /football/undo-penalty", Chain(s.UndoPenaltyHandler(), paramsMiddleware))
	s.Router.Handle("GET /football/match", Chain(s.FootballMatchHandler(), paramsMiddleware))

	s.Router.Handle("GET /tournaments", Chain(s.ListTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments", Chain(s.CreateTournamentHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/result", Chain(s.TournamentResultHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/advance", Chain(s.AdvanceTournamentHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/restart", Chain(s.RestartTournamentHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/bracket", Chain(s.BracketHandler(), paramsMiddleware))

	s.Router.Handle("GET /history", Chain(s.HistoryHandler(), paramsMiddleware))
	s.Router.Handle("GET /history/summary", Chain(s.SummaryHandler(), paramsMiddleware))
	s.Router.Handle("POST /history/clear", Chain(s.ClearHistoryHandler(), paramsMiddleware))

	s.Router.Handle("GET /teams", Chain(s.ListTeamsHandler(), paramsMiddleware))
	s.Router.Handle("POST /teams", Chain(s.SaveTeamHandler(), paramsMiddleware))
	s.Router.Handle("GET /setup", Chain(s.GetSetupHandler(), paramsMiddleware))
	s.Router.Handle("POST /setup", Chain(s.SaveSetupHandler(), paramsMiddleware))

	s.Router.Handle("POST /notify-result", Chain(s.NotifyResultHandler(), paramsMiddleware))
	s.Router.Handle("POST /notify-round", Chain(s.NotifyRoundHandler(), paramsMiddleware))
	s.Router.Handle("POST /notify-champion", Chain(s.NotifyChampionHandler(), paramsMiddleware))

	s.Router.Handle("POST /slack/command/standings", Chain(s.StandingsCommandHandler(), paramsMiddleware, s.slackVerifier))
	s.Router.Handle("POST /slack/command/bracket", Chain(s.BracketCommandHandler(), paramsMiddleware, s.slackVerifier))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
