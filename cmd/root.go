package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tastebud-labs/foodadmin/internal/audit"
	"github.com/tastebud-labs/foodadmin/internal/client"
	"github.com/tastebud-labs/foodadmin/internal/console"
	"github.com/tastebud-labs/foodadmin/internal/logger"
	"github.com/tastebud-labs/foodadmin/internal/models"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodadmin",
	Short: "Admin console for the Tastebud food ordering platform",
	Long:  `foodadmin manages the restaurants and sub-admin accounts of the Tastebud platform from the terminal: listing, creation, editing, activation toggles and data export against the platform REST API.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.foodadmin.yaml)")

	flags := rootCmd.PersistentFlags()
	flags.String("base-url", "", "Platform API base URL")
	flags.String("token", "", "Bearer token for the admin account")
	flags.Int("page-size", 10, "Rows per page when listing")
	flags.Duration("debounce-window", 0, "Delay before repeated actions fire")
	flags.Bool("kafka-enabled", false, "Publish audit events to Kafka")
	flags.String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	for flagName, key := range map[string]string{
		"base-url":          "base_url",
		"token":             "token",
		"page-size":         "page_size",
		"debounce-window":   "debounce_window",
		"kafka-enabled":     "kafka_enabled",
		"kafka-broker-list": "kafka_broker_list",
	} {
		viper.BindPFlag(key, flags.Lookup(flagName))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".foodadmin")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// session bundles the wired dependencies every subcommand needs.
type session struct {
	cfg    *models.Config
	api    *client.Client
	aud    *audit.Publisher
	notify *console.PrintNotifier
}

func newSession() (*session, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	api, err := client.New(client.Config{BaseURL: cfg.BaseURL, Token: cfg.Token})
	if err != nil {
		return nil, err
	}
	aud, err := audit.NewPublisher(cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		api:    api,
		aud:    aud,
		notify: console.NewPrintNotifier(os.Stdout),
	}, nil
}

func (s *session) close() {
	if s.aud != nil {
		s.aud.Close()
	}
	logger.Sync()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
