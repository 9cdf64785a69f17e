package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Mailer   MailerConfig
	Payments PaymentsConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type MailerConfig struct {
	BaseURL        string
	APIKey         string
	FromAddress    string
	FromName       string
	OpsEmail       string
	TimeoutSeconds int
}

type PaymentsConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

type BookingConfig struct {
	DefaultCancellationHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MAILER_TIMEOUT_SECONDS", 15)
	viper.SetDefault("MAILER_FROM_NAME", "Stackbnb")
	viper.SetDefault("PAYMENTS_TIMEOUT_SECONDS", 15)
	viper.SetDefault("DEFAULT_CANCELLATION_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Mailer: MailerConfig{
			BaseURL:        viper.GetString("MAILER_BASE_URL"),
			APIKey:         viper.GetString("MAILER_API_KEY"),
			FromAddress:    viper.GetString("MAILER_FROM_ADDRESS"),
			FromName:       viper.GetString("MAILER_FROM_NAME"),
			OpsEmail:       viper.GetString("MAILER_OPS_EMAIL"),
			TimeoutSeconds: viper.GetInt("MAILER_TIMEOUT_SECONDS"),
		},
		Payments: PaymentsConfig{
			BaseURL:        viper.GetString("PAYMENTS_BASE_URL"),
			APIKey:         viper.GetString("PAYMENTS_API_KEY"),
			TimeoutSeconds: viper.GetInt("PAYMENTS_TIMEOUT_SECONDS"),
		},
		Booking: BookingConfig{
			DefaultCancellationHours: viper.GetInt("DEFAULT_CANCELLATION_HOURS"),
		},
	}

	return config, nil
}
