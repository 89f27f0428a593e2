package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd, metricsCmd, standingsCmd, historyCmd, bracketCmd, tournamentCmd, cricketCmd, footballCmd)

	tournamentCmd.AddCommand(tournamentCreateCmd, tournamentAdvanceCmd, tournamentResultCmd)
	cricketCmd.AddCommand(cricketStartCmd, cricketTossCmd, cricketDecideCmd, cricketBallCmd, cricketUndoCmd, cricketShowCmd)
	footballCmd.AddCommand(footballStartCmd, footballGoalCmd, footballAddedTimeCmd, footballSecondHalfCmd, footballDrawCmd, footballPenaltyCmd, footballShowCmd)

	cricketStartCmd.Flags().Int("overs", 0, "Overs per innings; 0 uses the configured setup")
	cricketBallCmd.Flags().String("extra", "", "Extra type: wide, no_ball or leg_bye")
	cricketBallCmd.Flags().Bool("wicket", false, "A wicket fell on this delivery")
	footballStartCmd.Flags().Int("duration", 0, "Match length in seconds; 0 uses the configured setup")
	footballStartCmd.Flags().Bool("allow-draw", false, "Allow the match to end level")
	footballGoalCmd.Flags().String("scorer", "", "Name of the goal scorer")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the win/loss table and counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/history/summary?sport=" + sport)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/history?sport=" + sport)
	},
}

var bracketCmd = &cobra.Command{
	Use:   "bracket [bracket id]",
	Short: "Show a bracket, by default the active one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{"sport": {sport}}
		if len(args) == 1 {
			q.Set("id", args[0])
		}
		return performGetRequest("/tournaments/bracket?" + q.Encode())
	},
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Manage knockout tournaments",
}

var tournamentCreateCmd = &cobra.Command{
	Use:   "create [team...]",
	Short: "Draw a new bracket; without teams the roster is used",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournaments", map[string]any{"teams": args})
	},
}

var tournamentAdvanceCmd = &cobra.Command{
	Use:   "advance <bracket id>",
	Short: "Close the current round and draw the next",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/tournaments/advance", map[string]any{"bracketId": args[0]})
	},
}

var tournamentResultCmd = &cobra.Command{
	Use:   "result <bracket id> <fixture id> <winner> <score a> <score b>",
	Short: "Record the result of a fixture played elsewhere",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		scoreA, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[3], err)
		}
		scoreB, err := strconv.Atoi(args[4])
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[4], err)
		}
		return performPostRequest("/tournaments/result", map[string]any{
			"bracketId": args[0], "fixtureId": args[1], "winner": args[2], "scoreA": scoreA, "scoreB": scoreB,
		})
	},
}

var cricketCmd = &cobra.Command{
	Use:   "cricket",
	Short: "Score a cricket match",
}

var cricketStartCmd = &cobra.Command{
	Use:   "start <team a> <team b>",
	Short: "Create a match awaiting the toss",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		overs, _ := cmd.Flags().GetInt("overs")
		return performPostRequest("/cricket/matches", map[string]any{"teamA": args[0], "teamB": args[1], "oversLimit": overs})
	},
}

var cricketTossCmd = &cobra.Command{
	Use:   "toss <match id> [winner]",
	Short: "Record the toss winner, or flip a coin",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"matchId": args[0]}
		if len(args) == 2 {
			body["team"] = args[1]
		}
		return performPostRequest("/cricket/toss", body)
	},
}

var cricketDecideCmd = &cobra.Command{
	Use:   "decide <match id> <bat|bowl>",
	Short: "Record the toss winner's decision",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/cricket/decision", map[string]any{"matchId": args[0], "decision": args[1]})
	},
}

var cricketBallCmd = &cobra.Command{
	Use:   "ball <match id> <runs>",
	Short: "Record one delivery",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid runs %q: %w", args[1], err)
		}
		extra, _ := cmd.Flags().GetString("extra")
		wicket, _ := cmd.Flags().GetBool("wicket")
		return performPostRequest("/cricket/ball", map[string]any{"matchId": args[0], "runs": runs, "extra": extra, "wicket": wicket})
	},
}

var cricketUndoCmd = &cobra.Command{
	Use:   "undo <match id>",
	Short: "Undo the last delivery of the innings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/cricket/undo", map[string]any{"matchId": args[0]})
	},
}

var cricketShowCmd = &cobra.Command{
	Use:   "show <match id>",
	Short: "Show a cricket match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/cricket/match?id=" + url.QueryEscape(args[0]))
	},
}

var footballCmd = &cobra.Command{
	Use:   "football",
	Short: "Score a football match",
}

var footballStartCmd = &cobra.Command{
	Use:   "start <team a> <team b>",
	Short: "Kick off a match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		allowDraw, _ := cmd.Flags().GetBool("allow-draw")
		return performPostRequest("/football/matches", map[string]any{
			"teamA": args[0], "teamB": args[1], "durationSeconds": duration, "allowDraw": allowDraw,
		})
	},
}

var footballGoalCmd = &cobra.Command{
	Use:   "goal <match id> <A|B>",
	Short: "Record a goal for a side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scorer, _ := cmd.Flags().GetString("scorer")
		return performPostRequest("/football/goal", map[string]any{"matchId": args[0], "side": args[1], "scorer": scorer})
	},
}

var footballAddedTimeCmd = &cobra.Command{
	Use:   "added-time <match id> <minutes>",
	Short: "Confirm stoppage time for the paused half",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid minutes %q: %w", args[1], err)
		}
		return performPostRequest("/football/added-time", map[string]any{"matchId": args[0], "minutes": minutes})
	},
}

var footballSecondHalfCmd = &cobra.Command{
	Use:   "second-half <match id>",
	Short: "Start the second half",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/football/second-half", map[string]any{"matchId": args[0]})
	},
}

var footballDrawCmd = &cobra.Command{
	Use:   "draw <match id> <penalties|draw>",
	Short: "Decide a level match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/football/draw", map[string]any{"matchId": args[0], "decision": args[1]})
	},
}

var footballPenaltyCmd = &cobra.Command{
	Use:   "penalty <match id> <A|B> <scored|missed>",
	Short: "Record a shootout attempt",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/football/penalty", map[string]any{"matchId": args[0], "side": args[1], "result": args[2]})
	},
}

var footballShowCmd = &cobra.Command{
	Use:   "show <match id>",
	Short: "Show a football match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/football/match?id=" + url.QueryEscape(args[0]))
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func performPostRequest(endpoint string, body any) error {
	target, err := url.Parse(host + endpoint)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	q := target.Query()
	if strings.HasPrefix(target.Path, "/tournaments") {
		q.Set("sport", sport)
	}
	if dryRun {
		q.Set("dry_run", "true")
	}
	target.RawQuery = q.Encode()
	fmt.Printf("Making request to %s\n", target)

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	resp, err := http.Post(target.String(), "application/json", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
