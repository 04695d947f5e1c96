package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Ticket   TicketConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret     string
	ExpiryDays int
}

type EmailConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	From           string
	TimeoutSeconds int
}

type TicketConfig struct {
	Prefix   string
	SeqWidth int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	// Token must stay valid from registration day until the event gate
	viper.SetDefault("JWT_EXPIRY_DAYS", 300)
	viper.SetDefault("EMAIL_TIMEOUT_SECONDS", 30)
	viper.SetDefault("TICKET_PREFIX", "GT")
	viper.SetDefault("TICKET_SEQ_WIDTH", 6)

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
			BaseURL: viper.GetString("BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("JWT_SECRET"),
			ExpiryDays: viper.GetInt("JWT_EXPIRY_DAYS"),
		},
		Email: EmailConfig{
			Host:           viper.GetString("SMTP_HOST"),
			Port:           viper.GetInt("SMTP_PORT"),
			User:           viper.GetString("SMTP_USER"),
			Password:       viper.GetString("SMTP_PASS"),
			From:           viper.GetString("EMAIL_FROM"),
			TimeoutSeconds: viper.GetInt("EMAIL_TIMEOUT_SECONDS"),
		},
		Ticket: TicketConfig{
			Prefix:   viper.GetString("TICKET_PREFIX"),
			SeqWidth: viper.GetInt("TICKET_SEQ_WIDTH"),
		},
	}

	return config, nil
}
