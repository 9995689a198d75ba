package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spencebuilds/smartapply/internal/filtering"
	"github.com/spencebuilds/smartapply/internal/job"
	"github.com/spencebuilds/smartapply/internal/logger"
	"github.com/spencebuilds/smartapply/internal/matching"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes             = "Mark matched postings as processed"
	PromptNo              = "No"
	PromptReportByCompany = "Report by companies"
	PromptPostingsToFile  = "Dump postings to file"
	PromptReportsToFile   = "Dump match reports to file"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo, PromptReportByCompany, PromptPostingsToFile, PromptReportsToFile},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score the postings export against the resume profiles",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("do-not-exclude-processed", "f", false, "do not exclude postings already in the processed ledger")
	runCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation if found matching postings")
	runCmd.Flags().StringP("input", "i", "", "postings export file to scan. Overrides the config value.")

	viper.BindPFlag("input", runCmd.Flags().Lookup("input"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting smartapply", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	input := viper.GetString("input")
	if input == "" && config != nil {
		input = config.Input
	}
	if input == "" {
		logger.Fatal("postings input file is required",
			zap.String("hint", "set the input key in the configuration file or pass --input"),
		)
	}

	matcher, gate := buildMatcher(config, logger)

	postings, err := job.LoadPostingsFromFile(input)
	if err != nil {
		logger.Fatal("loading postings", zap.Error(err))
	}

	logger.Info("loaded postings", zap.String("input", input), zap.Int("count", postings.Len()))

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings found"))
		return
	}

	ledger, err := loadLedger(config)
	if err != nil {
		logger.Fatal("loading processed ledger", zap.Error(err))
	}

	deps := filtering.Deps{
		Logger:    logger,
		Matcher:   matcher,
		Processed: ledger,
	}

	steps := []filtering.Filter{
		filtering.NewProcessed(cmd),
		filtering.NewRoleGate(gate),
		filtering.NewMatch(),
	}
	if config.RoleGate != nil && !config.RoleGate.Enabled {
		filtering.DisableByName(steps, "role_gate", "disabled via config")
	}

	threshold := 0.0
	if config.Match != nil {
		threshold = config.Match.Threshold
	}

	filtered, reports, err := filtering.Run(&filtering.Config{MatchThreshold: threshold}, deps, steps, postings)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	postings = filtered

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left after filters"))
		return
	}

	action := PromptYes
	for {
		var err error
		if cmd.Flag("auto-aprove").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of postings", zap.Int("count", postings.Len()))

		if err := handleAction(action, logger, ledger, postings, reports); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto-aprove").Value.String() == "true" {
			return
		}
	}
}

func handleAction(action string, logger *zap.Logger, ledger *job.ProcessedLedger, postings *job.Postings, reports map[string]*matching.MatchReport) error {
	switch action {
	case PromptYes:
		return markProcessed(logger, ledger, postings)
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(postings.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("postings count", postings.Len()))
		return nil
	case PromptPostingsToFile:
		filename, err := postings.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump postings to file: %w", err)
		}
		logger.Info("dumping postings to file", zap.String("filename", filename))
		return nil
	case PromptReportsToFile:
		filename, err := dumpReports(reports)
		if err != nil {
			return fmt.Errorf("dump match reports to file: %w", err)
		}
		logger.Info("dumping match reports to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func buildMatcher(config *Config, log *zap.Logger) (*matching.Matcher, *matching.RoleGate) {
	profiles := config.Profiles
	if len(profiles) == 0 {
		log.Info("no profiles configured, using built-in defaults")
		profiles = matching.DefaultProfiles()
	}

	taxonomy, err := matching.NewTaxonomy(profiles, log)
	if err != nil {
		log.Fatal("loading resume taxonomy", zap.Error(err))
	}

	gateEnabled := true
	var extraTitles []string
	if config.RoleGate != nil {
		gateEnabled = config.RoleGate.Enabled
		extraTitles = config.RoleGate.ExtraTitles
	}
	gate := matching.NewRoleGate(gateEnabled, extraTitles)

	ceiling := 0
	if config.Match != nil {
		ceiling = config.Match.NormalizationCeiling
	}

	return matching.NewMatcher(matching.NewHandle(taxonomy), gate, ceiling, log), gate
}

func loadLedger(config *Config) (*job.ProcessedLedger, error) {
	path := viper.GetString("processed-file")
	if path == "" && config != nil {
		path = config.ProcessedFile
	}
	if path == "" {
		path = "processed_jobs.json"
	}

	return job.LoadProcessedLedger(path, time.Now())
}

func markProcessed(log *zap.Logger, ledger *job.ProcessedLedger, postings *job.Postings) error {
	for _, posting := range postings.Items {
		if posting.Match == nil {
			continue
		}
		log.Info("recommended resume for posting",
			zap.String("job_id", posting.ID),
			zap.String("title", posting.Title),
			zap.String("company", posting.Company),
			zap.String("best_resume", posting.Match.BestResume),
			zap.Float64("match_score", posting.Match.Score),
			zap.String("recommendation", posting.Match.Recommendation),
		)
	}

	ledger.Mark(time.Now(), postings.IDs()...)
	if err := ledger.Save(); err != nil {
		return err
	}

	log.Info("postings marked as processed", zap.Int("count", postings.Len()))
	return errExit
}

func dumpReports(reports map[string]*matching.MatchReport) (string, error) {
	file, err := os.CreateTemp("", "match_reports_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return "", err
	}
	return file.Name(), nil
}
