package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	stdlog "log"
	"os"

	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// demoProfile is a canned set of quiz responses used by the demo command.
type demoProfile struct {
	Name      string
	Responses []string
}

var demoProfiles = []demoProfile{
	{
		Name: "Tech Leader",
		Responses: []string{
			"I led a team of 5 engineers through a critical project. I love guiding people and solving architectural problems.",
			"I handle pressure by staying calm and breaking problems into manageable pieces.",
			"I thrive in dynamic startup environments where I can wear multiple hats.",
			"I love technical challenges but also enjoy mentoring junior developers.",
			"I want to grow into a CTO role at an innovative tech company.",
		},
	},
	{
		Name: "Emergency Responder",
		Responses: []string{
			"I'm at my best when helping people in crisis situations. Last year I responded to an emergency and coordinated the response.",
			"High pressure energizes me. I stay focused and make quick, critical decisions.",
			"I prefer fast-paced, high-stakes environments where every second counts.",
			"I love solving urgent problems and being part of a tight-knit team.",
			"I want a career where I can make a real difference in people's lives.",
		},
	},
	{
		Name: "Creative Designer",
		Responses: []string{
			"I designed a complete UI overhaul that increased user engagement by 40%. I love the creative process.",
			"I'm calm under deadline pressure. I use creative thinking to overcome obstacles.",
			"I prefer collaborative environments with regular feedback and iteration.",
			"I'm energized by visual design problems and user experience challenges.",
			"I aspire to lead a design team at a product-focused company.",
		},
	},
}

// batchEntry is one demo profile's outcome in the saved results file.
type batchEntry struct {
	ProfileName string          `json:"profile_name"`
	SessionID   string          `json:"session_id"`
	Summary     session.Summary `json:"summary"`
	MatchCount  int             `json:"matches_count"`
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the quiz over built-in demo profiles and save a results file",
	Run: func(cmd *cobra.Command, _ []string) {
		demo(cmd)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringP("output", "o", "batch_results.json", "file to write batch results to")
}

func demo(cmd *cobra.Command) {
	ctx := context.Background()

	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		stdlog.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("running batch demo", zap.Int("profiles", len(demoProfiles)))

	sess := newSession(ctx, config, log)

	entries := make([]batchEntry, 0, len(demoProfiles))
	for _, profile := range demoProfiles {
		sess.Reset()
		log.Info("processing demo profile",
			zap.String("name", profile.Name),
			zap.String("session_id", sess.ID()),
		)

		for _, response := range profile.Responses {
			result, err := sess.ProcessResponse(ctx, response, "")
			if err != nil {
				log.Fatal("processing response", zap.Error(err))
			}
			if result.Status != session.StatusSuccess {
				log.Warn("turn failed", zap.String("message", result.Message))
			}
		}

		summary := sess.Summary()
		entries = append(entries, batchEntry{
			ProfileName: profile.Name,
			SessionID:   sess.ID(),
			Summary:     summary,
			MatchCount:  len(sess.TopMatches(3)),
		})

		log.Info("demo profile processed",
			zap.String("name", profile.Name),
			zap.Int("jobs_found", summary.JobsFound),
			zap.Int("matches", summary.MatchCount),
		)
	}

	output := cmd.Flag("output").Value.String()
	if err := writeBatchResults(output, entries); err != nil {
		log.Fatal("saving batch results", zap.Error(err))
	}

	log.Info("batch results saved", zap.String("filename", output))
}

func writeBatchResults(path string, entries []batchEntry) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode batch results: %w", err)
	}
	return nil
}

// dumpReport writes a session report to a temporary JSON file and returns its name.
func dumpReport(report session.Report) (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}
	return file.Name(), nil
}
