package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Admin API and cron authorization.
	AdminAPIToken string `mapstructure:"ADMIN_API_TOKEN"`
	CronSecret    string `mapstructure:"CRON_SECRET"`

	// Email (Resend).
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`
	EmailReplyTo string `mapstructure:"EMAIL_REPLY_TO"`

	// SMS (Solapi).
	SolapiAPIKey     string `mapstructure:"SOLAPI_API_KEY"`
	SolapiAPISecret  string `mapstructure:"SOLAPI_API_SECRET"`
	SolapiFromNumber string `mapstructure:"SOLAPI_FROM_NUMBER"`

	// Office phone that receives new-booking alert SMS.
	OfficeAlertPhone string `mapstructure:"OFFICE_ALERT_PHONE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("EMAIL_FROM", "info@theyool.com")
	viper.SetDefault("EMAIL_REPLY_TO", "info@theyool.com")
	viper.SetDefault("SOLAPI_FROM_NUMBER", "0212345678")
	viper.SetDefault("OFFICE_ALERT_PHONE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
