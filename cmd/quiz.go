package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	stdlog "log"
	"strings"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/ai/gemini"
	"github.com/spigell/career-compass/internal/jobs"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/secrets"
	"github.com/spigell/career-compass/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowReport  = "Show detailed report"
	PromptDumpMatches = "Dump matches to file"
	PromptDumpJobs    = "Dump found jobs to file"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

// quizQuestion is one interactive quiz step.
type quizQuestion struct {
	Question string
	Hint     string
}

var quizQuestions = []quizQuestion{
	{
		Question: "Tell us about a time you felt most successful or accomplished.",
		Hint:     "(Focus on what skills or traits made you successful)",
	},
	{
		Question: "How do you typically react when faced with high-pressure situations?",
		Hint:     "(Describe your approach and how you handle stress)",
	},
	{
		Question: "Describe your ideal work environment and team dynamic.",
		Hint:     "(Fast-paced? Structured? Independent? Collaborative?)",
	},
	{
		Question: "What types of problems or challenges energize you most?",
		Hint:     "(Technical? People-related? Strategic? Creative?)",
	},
	{
		Question: "Tell us about your career aspirations and what success looks like to you.",
		Hint:     "(Growth trajectory, impact, compensation, work-life balance, etc.)",
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run the interactive career quiz",
	Run: func(cmd *cobra.Command, _ []string) {
		quiz(cmd)
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().BoolP("auto-aprove", "y", false, "skip the final action prompt and just print matches")
}

// quiz is the interactive command for the cli.
func quiz(cmd *cobra.Command) {
	ctx := context.Background()

	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		stdlog.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("starting the career-compass", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	log.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	sess := newSession(ctx, config, log)

	log.Info("starting the quiz", zap.String("session_id", sess.ID()))

	for i, q := range quizQuestions {
		fmt.Printf("\n[Question %d/%d]\n%s\nHint: %s\n", i+1, len(quizQuestions), q.Question, q.Hint)

		answerPrompt := promptui.Prompt{Label: "Your response"}
		answer, err := answerPrompt.Run()
		if err != nil {
			log.Fatal("reading response", zap.Error(err))
		}

		if strings.TrimSpace(answer) == "" {
			fmt.Println("(Skipping empty response)")
			continue
		}

		result, err := sess.ProcessResponse(ctx, answer, q.Question)
		if err != nil {
			log.Fatal("processing response", zap.Error(err))
		}

		if result.Status != session.StatusSuccess {
			log.Warn("turn failed", zap.String("message", result.Message))
			continue
		}

		if result.Reasoning != "" {
			fmt.Printf("Traits extracted: %s\n", logger.TruncateForLog(result.Reasoning, 100))
		}
		if result.Searched {
			fmt.Println("Searching for matching jobs...")
		}
	}

	printRecommendations(sess, config.TopMatches)

	if cmd.Flag("auto-aprove").Value.String() == "true" {
		return
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: []string{PromptShowReport, PromptDumpMatches, PromptDumpJobs, PromptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, sess, log); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, sess *session.Session, log *zap.Logger) error {
	switch action {
	case PromptShowReport:
		pretty, err := json.MarshalIndent(sess.Report(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(pretty))
		return nil
	case PromptDumpMatches:
		filename, err := dumpReport(sess.Report())
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		log.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptDumpJobs:
		filename, err := sess.Jobs().DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump jobs to file: %w", err)
		}
		log.Info("dumping jobs to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		log.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printRecommendations(sess *session.Session, topN int) {
	summary := sess.Summary()

	fmt.Println("\n=== YOUR CAREER PROFILE ===")
	for trait, level := range summary.Levels {
		fmt.Printf("  %s: %s\n", trait, level)
	}
	if len(summary.Keywords) > 0 {
		fmt.Printf("  keywords: %s\n", strings.Join(summary.Keywords, ", "))
	}

	matches := sess.TopMatches(topN)

	fmt.Println("\n=== TOP JOB MATCHES ===")
	if len(matches) == 0 {
		fmt.Println("No job matches found. Try providing more detailed responses.")
		return
	}

	for i, m := range matches {
		fmt.Printf("\n[%d] %s at %s\n", i+1, m.JobTitle, m.Company)
		fmt.Printf("    Match: %d%% - %s\n", m.Percentage, m.Recommendation)
		fmt.Printf("    Why: %s\n", m.Reasoning)
		fmt.Printf("    Market: %s\n", m.MarketAvailability)
		fmt.Printf("    Strengths: %s\n", strings.Join(m.KeyStrengths, ", "))
		fmt.Printf("    Growth Areas: %s\n", strings.Join(m.GrowthAreas, ", "))
	}
}

// newSession wires the configured job source and trait oracle into a session.
// Missing or broken AI configuration degrades to the lexical extractor;
// it never aborts the command.
func newSession(ctx context.Context, config *Config, log *zap.Logger) *session.Session {
	return session.New(
		newExtractor(ctx, config.AI, log),
		newSource(ctx, config, log),
		config.Location,
		log,
	)
}

func newSource(ctx context.Context, config *Config, log *zap.Logger) jobs.Source {
	if config.Source == nil || config.Source.Kind == "" || config.Source.Kind == "catalog" {
		return jobs.NewCatalog(config.MaxResults)
	}

	token := ""
	if config.Source.TokenFile != "" {
		loaded, err := secrets.Load(secrets.Source{
			Name: "job source token",
			File: config.Source.TokenFile,
		})
		if err != nil {
			log.Warn("job source token not loaded", zap.Error(err))
		} else {
			token = loaded
		}
	}

	return jobs.NewClient(ctx, log, config.Source.APIURL, token)
}

func newExtractor(ctx context.Context, config *AIConfig, log *zap.Logger) ai.Extractor {
	if config == nil || !config.Enabled {
		log.Info("ai extractor disabled, using lexical extraction only")
		return nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		log.Warn("unsupported ai provider, using lexical extraction only", zap.String("provider", config.Provider))
		return nil
	}

	if config.Gemini == nil {
		log.Warn("gemini configuration is missing, using lexical extraction only")
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
	})
	if err != nil {
		log.Warn("gemini api key not loaded, using lexical extraction only",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model)
	if err != nil {
		log.Warn("building gemini generator failed, using lexical extraction only", zap.Error(err))
		return nil
	}

	extractorLogger := log.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewExtractor(generator, extractorLogger, config.Gemini.MaxLogLength)
}
