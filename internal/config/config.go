package config

import (
	"log"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/format"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	DiscordClientID               string `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret           string `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURL            string `mapstructure:"DISCORD_REDIRECT_URL"`
	DiscordGuildID                string `mapstructure:"DISCORD_GUILD_ID"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	FrontendURL                   string `mapstructure:"FRONTEND_URL"`
	WifiRate                      string `mapstructure:"WIFI_RATE"`
	Currency                      string `mapstructure:"CURRENCY"`
	Language                      string `mapstructure:"LANGUAGE"`
	Timezone                      string `mapstructure:"TIMEZONE"`
	SeedSample                    bool   `mapstructure:"SEED_SAMPLE"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "hotel.db")
	viper.SetDefault("DISCORD_REDIRECT_URL", "http://127.0.0.1:8080/auth/discord/callback")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000/guests")
	viper.SetDefault("WIFI_RATE", "0.3")
	viper.SetDefault("CURRENCY", "USD")
	viper.SetDefault("LANGUAGE", "en")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("SEED_SAMPLE", false)

	viper.BindEnv("DISCORD_CLIENT_ID")
	viper.BindEnv("DISCORD_CLIENT_SECRET")
	viper.BindEnv("DISCORD_GUILD_ID")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("JWT_SECRET")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if _, err := config.Settings(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return &config
}

// Settings holds the typed values derived from the raw strings.
type Settings struct {
	WifiRate decimal.Decimal
	Currency format.Currency
	Language language.Tag
	Location *time.Location
}

func (c *Config) Settings() (Settings, error) {
	var s Settings
	var err error

	if s.WifiRate, err = decimal.NewFromString(c.WifiRate); err != nil {
		return s, err
	}
	if s.Currency, err = format.ParseCurrency(c.Currency); err != nil {
		return s, err
	}
	if s.Language, err = language.Parse(c.Language); err != nil {
		return s, err
	}
	if s.Location, err = time.LoadLocation(c.Timezone); err != nil {
		return s, err
	}
	return s, nil
}
