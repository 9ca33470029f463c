package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Gemini    Gemini
	Interview Interview
	History   History
}

type Server struct {
	Port         string
	AllowOrigins []string
}

type Gemini struct {
	APIKey       string
	DefaultModel string
	VisionModel  string
}

type Interview struct {
	DefaultPosition string
}

type History struct {
	TTL        time.Duration
	MaxEntries int
	RedisURL   string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ALLOW_ORIGINS", "*")
	viper.SetDefault("DEFAULT_MODEL", "gemini-1.5-flash")
	viper.SetDefault("VISION_MODEL", "gemini-1.5-flash")
	viper.SetDefault("DEFAULT_POSITION", "Python Developer")
	viper.SetDefault("HISTORY_TTL_SECONDS", 60*60*24)
	viper.SetDefault("HISTORY_MAX_ENTRIES", 50)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.AllowOrigins = viper.GetStringSlice("ALLOW_ORIGINS")

	config.Gemini.APIKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.DefaultModel = viper.GetString("DEFAULT_MODEL")
	config.Gemini.VisionModel = viper.GetString("VISION_MODEL")

	config.Interview.DefaultPosition = viper.GetString("DEFAULT_POSITION")

	config.History.TTL = time.Duration(viper.GetInt("HISTORY_TTL_SECONDS")) * time.Second
	config.History.MaxEntries = viper.GetInt("HISTORY_MAX_ENTRIES")
	config.History.RedisURL = viper.GetString("REDIS_URL")

	log.Info().
		Str("port", config.Server.Port).
		Str("defaultModel", config.Gemini.DefaultModel).
		Str("visionModel", config.Gemini.VisionModel).
		Dur("historyTTL", config.History.TTL).
		Bool("redisBacked", config.History.RedisURL != "").
		Msg("Config loaded")
	return &config, nil
}
