package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scoreline/internal/bracket"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/metrics"
	"github.com/mauv0809/scoreline/internal/notifier"
	"github.com/mauv0809/scoreline/internal/pubsub"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. Without a token every message is only logged.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	var api slackClient
	if token != "" {
		api = slack.New(token)
	} else {
		log.Warn("SLACK_BOT_TOKEN not set, Slack messages will only be logged")
	}
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.api == nil {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendMatchResult(event pubsub.MatchCompleted, dryRun bool) error {
	_, _, err := s.sendMessage(formatMatchResult(event), dryRun)
	return err
}

func (s *Notifier) SendRoundFixtures(event pubsub.RoundAdvanced, dryRun bool) error {
	_, _, err := s.sendMessage(formatRoundFixtures(event), dryRun)
	return err
}

func (s *Notifier) SendChampion(event pubsub.ChampionCrowned, dryRun bool) error {
	_, _, err := s.sendMessage(formatChampion(event), dryRun)
	return err
}

// FormatStandingsResponse formats the standings table for a slash command response.
func (s *Notifier) FormatStandingsResponse(sport history.Sport, standings []history.TeamRecord) (any, error) {
	return formatStandings(sport, standings), nil
}

// FormatBracketResponse formats the current round of a bracket for a slash command response.
func (s *Notifier) FormatBracketResponse(sport history.Sport, b *bracket.Bracket) (any, error) {
	return formatBracket(sport, b), nil
}

func sportEmoji(sport string) string {
	if sport == string(history.SportFootball) {
		return "⚽"
	}
	return "🏏"
}

func sportTitle(sport string) string {
	if sport == "" {
		return "The"
	}
	return strings.ToUpper(sport[:1]) + sport[1:]
}

func plainSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil)
}

// formatMatchResult creates the Slack message for a finished match using Block Kit.
func formatMatchResult(event pubsub.MatchCompleted) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("%s Match finished! %s", sportEmoji(event.Sport), sportEmoji(event.Sport))
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	blocks = append(blocks, plainSection(fmt.Sprintf("%s vs %s", event.TeamA, event.TeamB)))

	if len(event.Summary) > 0 {
		blocks = append(blocks, plainSection(strings.Join(event.Summary, "\n")))
	}

	resultText := fmt.Sprintf("*Result:* %s", event.Result)
	if event.Winner != "" {
		resultText += " 🏆"
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", resultText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatRoundFixtures lists the draw of a new knockout round.
func formatRoundFixtures(event pubsub.RoundAdvanced) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("%s %s draw", sportEmoji(event.Sport), event.RoundName)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	if len(event.Fixtures) == 0 {
		blocks = append(blocks, plainSection("No fixtures in this round."))
		return slack.NewBlockMessage(blocks...)
	}
	lines := make([]string, len(event.Fixtures))
	for i, f := range event.Fixtures {
		lines[i] = fmt.Sprintf("• %s", f)
	}
	blocks = append(blocks, plainSection(strings.Join(lines, "\n")))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", fmt.Sprintf("Round %d", event.Round), true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatChampion announces a tournament winner.
func formatChampion(event pubsub.ChampionCrowned) slack.Message {
	headerText := fmt.Sprintf("🏆 %s are the champions! 🏆", event.Champion)
	return slack.NewBlockMessage(
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)),
		plainSection(fmt.Sprintf("%s %s knockout decided after %d rounds.", sportEmoji(event.Sport), sportTitle(event.Sport), event.Rounds)),
	)
}

// formatStandings creates a Slack message with the win/loss table.
func formatStandings(sport history.Sport, standings []history.TeamRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("%s Standings %s", sportEmoji(string(sport)), sportEmoji(string(sport)))
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	if len(standings) == 0 {
		blocks = append(blocks, plainSection("No matches played yet. Go play some matches!"))
		return slack.NewBlockMessage(blocks...)
	}

	for i, st := range standings {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}
		text := fmt.Sprintf("%d. %s %s\n> P %d | W %d | L %d | T %d",
			rank, medal, st.Team, st.Played, st.Won, st.Lost, st.Tied)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatBracket shows the current round and its fixtures.
func formatBracket(sport history.Sport, b *bracket.Bracket) slack.Message {
	if b == nil {
		return slack.NewBlockMessage(plainSection("No tournament in progress."))
	}
	blocks := make([]slack.Block, 0)
	headerText := fmt.Sprintf("%s %s", sportEmoji(string(sport)), b.Name())
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	if b.Champion != "" {
		blocks = append(blocks, plainSection(fmt.Sprintf("🏆 %s", b.Champion)))
		return slack.NewBlockMessage(blocks...)
	}
	lines := make([]string, 0, len(b.Fixtures))
	for _, f := range b.Fixtures {
		lines = append(lines, fixtureLine(f))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))
	return slack.NewBlockMessage(blocks...)
}

func fixtureLine(f bracket.Fixture) string {
	switch {
	case f.IsBye():
		return fmt.Sprintf("• %s advances (bye)", f.TeamA)
	case f.Status == bracket.FixtureCompleted:
		return fmt.Sprintf("• %s vs %s: %s, *%s* won", f.TeamA, f.TeamB, f.Score, f.Winner)
	case f.Status == bracket.FixtureInProgress:
		return fmt.Sprintf("• %s vs %s (live)", f.TeamA, f.TeamB)
	default:
		return fmt.Sprintf("• %s vs %s", f.TeamA, f.TeamB)
	}
}
