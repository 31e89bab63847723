package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	OLLAMA struct {
		Host            string `mapstructure:"HOST"`
		Port            int    `mapstructure:"PORT"`
		Model           string `mapstructure:"MODEL"`
		TimeoutSeconds  int    `mapstructure:"TIMEOUT_SECONDS"`
		AnalysisEnabled bool   `mapstructure:"ANALYSIS_ENABLED"`
	}

	SCHEDULER struct {
		Timezone             string   `mapstructure:"TIMEZONE"`
		Weekdays             []string `mapstructure:"WEEKDAYS"`
		PopupStartHour       int      `mapstructure:"POPUP_START_HOUR"`
		PopupEndHour         int      `mapstructure:"POPUP_END_HOUR"`
		PopupMinute          int      `mapstructure:"POPUP_MINUTE"`
		PopupGraceMinutes    int      `mapstructure:"POPUP_GRACE_MINUTES"`
		DailyNoteHour        int      `mapstructure:"DAILY_NOTE_HOUR"`
		DailyNoteMinute      int      `mapstructure:"DAILY_NOTE_MINUTE"`
		AnalysisHour         int      `mapstructure:"ANALYSIS_HOUR"`
		AnalysisMinute       int      `mapstructure:"ANALYSIS_MINUTE"`
		AnalysisGraceMinutes int      `mapstructure:"ANALYSIS_GRACE_MINUTES"`
	}

	STATUS struct {
		AutoCompleteProjects bool `mapstructure:"AUTO_COMPLETE_PROJECTS"`
	}
}

// OllamaBaseURL renders the generation endpoint base, e.g. "http://192.168.200.5:11434".
func (c *AppConfig) OllamaBaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.OLLAMA.Host, c.OLLAMA.Port)
}

func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("failed to read configuration file")
		return nil
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal configuration")
		return nil
	}

	if config.APP.Port == "" {
		config.APP.Port = "5000"
	}

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("database DSN is not configured")
		return nil
	}

	if config.OLLAMA.Host == "" {
		config.OLLAMA.Host = "127.0.0.1"
	}
	if config.OLLAMA.Port == 0 {
		config.OLLAMA.Port = 11434
	}
	if config.OLLAMA.Model == "" {
		config.OLLAMA.Model = "deepseek-r1:7b"
	}
	if config.OLLAMA.TimeoutSeconds == 0 {
		config.OLLAMA.TimeoutSeconds = 300
	}

	if config.SCHEDULER.Timezone == "" {
		config.SCHEDULER.Timezone = "Local"
	}
	if len(config.SCHEDULER.Weekdays) == 0 {
		config.SCHEDULER.Weekdays = []string{"mon", "tue", "wed", "thu", "fri"}
	}
	if config.SCHEDULER.PopupStartHour == 0 {
		config.SCHEDULER.PopupStartHour = 8
	}
	if config.SCHEDULER.PopupEndHour == 0 {
		config.SCHEDULER.PopupEndHour = 17
	}
	if config.SCHEDULER.PopupMinute == 0 {
		config.SCHEDULER.PopupMinute = 30
	}
	if config.SCHEDULER.PopupGraceMinutes == 0 {
		config.SCHEDULER.PopupGraceMinutes = 5
	}
	if config.SCHEDULER.DailyNoteHour == 0 {
		config.SCHEDULER.DailyNoteHour = 16
	}
	if config.SCHEDULER.DailyNoteMinute == 0 {
		config.SCHEDULER.DailyNoteMinute = 55
	}
	if config.SCHEDULER.AnalysisHour == 0 {
		config.SCHEDULER.AnalysisHour = 17
	}
	if config.SCHEDULER.AnalysisGraceMinutes == 0 {
		config.SCHEDULER.AnalysisGraceMinutes = 10
	}

	log.Info().Msg("configuration loaded")
	return &config
}
