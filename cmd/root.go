package cmd

import (
	"log"

	"github.com/mitchellh/mapstructure"
	"github.com/spencebuilds/smartapply/internal/matching"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "smartapply"
)

type Config struct {
	Input         string          `mapstructure:"input"`
	ProcessedFile string          `mapstructure:"processed-file"`
	Match         *MatchConfig    `mapstructure:"match"`
	RoleGate      *RoleGateConfig `mapstructure:"role-gate"`

	// Profiles is decoded separately because the taxonomy shape lives in
	// the matching package.
	Profiles []matching.ProfileConfig `mapstructure:"-"`
}

type MatchConfig struct {
	Threshold            float64 `mapstructure:"threshold"`
	NormalizationCeiling int     `mapstructure:"normalization-ceiling"`
}

type RoleGateConfig struct {
	Enabled     bool     `mapstructure:"enabled"`
	ExtraTitles []string `mapstructure:"extra-titles"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "smartapply is a cli for scoring job postings against resume profiles and picking the resume to send",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("processed-file", "SMARTAPPLY_PROCESSED_FILE"); err != nil {
		log.Fatalf("binding SMARTAPPLY_PROCESSED_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is smartapply.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	// The profiles section keeps the taxonomy shape owned by the matching
	// package, so it is decoded with that package's config structs.
	if raw := viper.Get("profiles"); raw != nil {
		if err := mapstructure.Decode(raw, &config.Profiles); err != nil {
			return config, err
		}
	}

	return config, nil
}
