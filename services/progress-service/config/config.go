package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`
	GRPCPort   string `mapstructure:"GRPC_PORT"`
	RedisAddr  string `mapstructure:"REDIS_ADDR"`
	LogMode    string `mapstructure:"LOG_MODE"`

	// Storage is "postgres" or "memory".
	Storage string `mapstructure:"STORAGE"`
	// SeedCatalog loads the catalog at startup; SeedFile overrides the embedded one.
	SeedCatalog bool   `mapstructure:"SEED_CATALOG"`
	SeedFile    string `mapstructure:"SEED_FILE"`

	DailyQuestionProgram string `mapstructure:"DAILY_QUESTION_PROGRAM"`
	MilestonesEnabled    bool   `mapstructure:"MILESTONES_ENABLED"`
	NotifyChannel        string `mapstructure:"NOTIFY_CHANNEL"`
	CatalogCacheTTL      string `mapstructure:"CATALOG_CACHE_TTL"`
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("GRPC_PORT", ":50053")
	v.SetDefault("LOG_MODE", "dev")
	v.SetDefault("STORAGE", "postgres")
	v.SetDefault("SEED_CATALOG", false)
	v.SetDefault("DAILY_QUESTION_PROGRAM", "daily-questions")
	v.SetDefault("MILESTONES_ENABLED", false)
	v.SetDefault("CATALOG_CACHE_TTL", "1h")

	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"GRPC_PORT", "REDIS_ADDR", "LOG_MODE", "STORAGE", "SEED_CATALOG", "SEED_FILE",
		"DAILY_QUESTION_PROGRAM", "MILESTONES_ENABLED", "NOTIFY_CHANNEL", "CATALOG_CACHE_TTL",
	} {
		_ = v.BindEnv(key)
	}

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}
	err = v.Unmarshal(&config)
	return
}
