package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/scoreline/internal/config"
	"github.com/mauv0809/scoreline/internal/database"
	"github.com/mauv0809/scoreline/internal/history"
	"github.com/mauv0809/scoreline/internal/kvstore"
	"github.com/mauv0809/scoreline/internal/roster"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SportSeed is the roster and tournament setup of one sport.
type SportSeed struct {
	Setup roster.Setup  `yaml:"setup"`
	Teams []roster.Team `yaml:"teams"`
}

// SeedFile is the layout of the YAML roster file.
type SeedFile struct {
	Cricket  *SportSeed `yaml:"cricket"`
	Football *SportSeed `yaml:"football"`
}

var (
	seedPath   string
	numMatches int
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Load team rosters and dummy match history into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&seedPath, "file", "f", "rosters.yaml", "YAML file with setups and teams per sport")
	rootCmd.Flags().IntVar(&numMatches, "matches", 0, "Number of dummy history records to insert per sport")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("Seeding failed", "error", err)
	}
}

func run() error {
	log.Info("Starting database seeder...")
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer teardown()
	log.Info("Successfully connected to the database.")

	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	file, err := parseSeedFile(raw)
	if err != nil {
		return err
	}

	kv := kvstore.New(db)
	if err := seedRosters(roster.New(kv), file); err != nil {
		return err
	}
	if numMatches > 0 {
		startTime := time.Now()
		if err := seedHistory(history.New(kv), file, numMatches, rand.New(rand.NewPCG(uint64(startTime.UnixNano()), 0))); err != nil {
			return err
		}
		log.Info("Successfully inserted dummy matches.", "perSport", numMatches, "duration", time.Since(startTime))
	}
	return nil
}

func parseSeedFile(raw []byte) (SeedFile, error) {
	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return SeedFile{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if file.Cricket == nil && file.Football == nil {
		return SeedFile{}, fmt.Errorf("seed file has no cricket or football section")
	}
	return file, nil
}

func (f SeedFile) sports() map[history.Sport]*SportSeed {
	out := make(map[history.Sport]*SportSeed, 2)
	if f.Cricket != nil {
		out[history.SportCricket] = f.Cricket
	}
	if f.Football != nil {
		out[history.SportFootball] = f.Football
	}
	return out
}

func seedRosters(store roster.Store, file SeedFile) error {
	for sport, s := range file.sports() {
		if err := store.SaveSetup(sport, s.Setup); err != nil {
			return fmt.Errorf("failed to save %s setup: %w", sport, err)
		}
		for _, team := range s.Teams {
			if err := store.SaveTeam(sport, team); err != nil {
				return fmt.Errorf("failed to save %s team %q: %w", sport, team.Name, err)
			}
		}
		log.Info("Seeded roster", "sport", sport, "teams", len(s.Teams), "configured", s.Setup.Teams)
	}
	return nil
}

// seedHistory appends n finished matches between random pairs of seeded teams.
func seedHistory(store history.Store, file SeedFile, n int, rng *rand.Rand) error {
	for sport, s := range file.sports() {
		if len(s.Teams) < 2 {
			log.Warn("Not enough teams to seed history", "sport", sport)
			continue
		}
		for i := 0; i < n; i++ {
			a := rng.IntN(len(s.Teams))
			b := (a + 1 + rng.IntN(len(s.Teams)-1)) % len(s.Teams)
			teamA, teamB := s.Teams[a].Name, s.Teams[b].Name
			rec := history.Record{
				ID:       uuid.NewString(),
				Sport:    sport,
				MatchID:  uuid.NewString(),
				TeamA:    teamA,
				TeamB:    teamB,
				PlayedAt: time.Now().Add(-time.Duration(rng.IntN(365*24)) * time.Hour),
			}
			switch rng.IntN(5) {
			case 0:
				rec.Result = "Match Tied!"
			case 1, 2:
				rec.Winner = teamA
				rec.Result = teamA + " Wins!"
			default:
				rec.Winner = teamB
				rec.Result = teamB + " Wins!"
			}
			if err := store.Append(rec); err != nil {
				return fmt.Errorf("failed to append %s record: %w", sport, err)
			}
		}
	}
	return nil
}
