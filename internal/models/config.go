package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	Token          string        `mapstructure:"token"`
	PageSize       int           `mapstructure:"page_size"`
	DebounceWindow time.Duration `mapstructure:"debounce_window"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	AuditTopic      string `mapstructure:"audit_topic"`

	ExportFormat string `mapstructure:"export_format"`
	ExportPath   string `mapstructure:"export_path"`
	S3Bucket     string `mapstructure:"s3_bucket"`
	S3Region     string `mapstructure:"s3_region"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("foodadmin")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("foodadmin")
	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("page_size", 10)
	viper.SetDefault("debounce_window", 300*time.Millisecond)
	viper.SetDefault("audit_topic", "foodadmin-audit")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("export_format", "csv")
	viper.SetDefault("export_path", "restaurants.csv")

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; flags and env can carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.PageSize < 1 {
		config.PageSize = 10
	}
	if config.DebounceWindow <= 0 {
		config.DebounceWindow = 300 * time.Millisecond
	}

	return &config, nil
}
