package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	ProgressSvcUrl string `mapstructure:"PROGRESS_SVC_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	LogMode        string `mapstructure:"LOG_MODE"`

	// JWTSecret verifies HS256 access tokens minted by the identity provider.
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTAudience string `mapstructure:"JWT_AUDIENCE"`

	// Timezone decides where "today" starts and ends.
	Timezone string `mapstructure:"TIMEZONE"`

	// AllowDateOverride lets clients pin "today" with ?date=. Local testing only.
	AllowDateOverride bool `mapstructure:"ALLOW_DATE_OVERRIDE"`
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	v.SetDefault("PORT", ":8080")
	v.SetDefault("PROGRESS_SVC_URL", "localhost:50053")
	v.SetDefault("LOG_MODE", "dev")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("ALLOW_DATE_OVERRIDE", false)

	for _, key := range []string{
		"PORT", "PROGRESS_SVC_URL", "ALLOWED_ORIGINS", "REDIS_ADDR", "LOG_MODE",
		"JWT_SECRET", "JWT_AUDIENCE", "TIMEZONE", "ALLOW_DATE_OVERRIDE",
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
