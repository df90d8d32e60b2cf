package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ConnString renders the config as a pgx connection string.
func (c *DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	OrderTopic      string `mapstructure:"order_topic"`

	// Interval of the cutoff refresh worker; the evaluator recomputes the
	// window on every call, so this only keeps persisted overrides honest.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`

	Timezone             string `mapstructure:"timezone"`
	DefaultBusinessStart string `mapstructure:"default_business_start"`
	DefaultOrderCutoff   string `mapstructure:"default_order_cutoff"`

	// Seed command parameters.
	SeedStores       int `mapstructure:"seed_stores"`
	SeedItemsPerMenu int `mapstructure:"seed_items_per_menu"`
	SeedMaxQuantity  int `mapstructure:"seed_max_quantity"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("refresh_interval", "1m")
	viper.SetDefault("order_topic", "store_order_events")
	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("default_business_start", "09:00")
	viper.SetDefault("default_order_cutoff", "15:00")
	viper.SetDefault("seed_stores", 5)
	viper.SetDefault("seed_items_per_menu", 8)
	viper.SetDefault("seed_max_quantity", 30)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
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

	return &config, nil
}
