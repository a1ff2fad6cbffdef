package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
)

type Config struct {
	BotDifficulty bot.BotDifficulty
	SearchDepth   int
	Reward        int
	Pruning       bool
	TieBreak      bot.TieBreak
	Seed          int64
	Workers       int
	HumanFirst    bool
	ClearScreen   bool
	LogLevel      string
	LogFile       string

	// Warnings lists values that were ignored in favour of defaults. They
	// are logged once the logger exists.
	Warnings []string
}

// EngineOptions turns the bot settings into engine options. An explicit
// SearchDepth wins over the difficulty preset.
func (c *Config) EngineOptions() bot.Options {
	depth := c.SearchDepth
	if depth <= 0 {
		depth = c.BotDifficulty.Depth()
	}
	return bot.Options{
		MaxDepth:       depth,
		Reward:         c.Reward,
		DisablePruning: !c.Pruning,
		TieBreak:       c.TieBreak,
		Workers:        c.Workers,
	}
}

type loader struct {
	warnings []string
}

func LoadConfig() *Config {
	l := &loader{}

	difficulty := GetEnv("BOT_DIFFICULTY", string(bot.DifficultyMedium))
	tieBreak := strings.ToLower(GetEnv("BOT_TIE_BREAK", string(bot.TieBreakRandom)))
	if tieBreak != string(bot.TieBreakRandom) && tieBreak != string(bot.TieBreakFirst) {
		l.warn("BOT_TIE_BREAK", tieBreak, bot.TieBreakRandom)
	}

	cfg := &Config{
		BotDifficulty: bot.ParseDifficulty(strings.ToLower(difficulty)),
		SearchDepth:   l.getEnvAsInt("BOT_SEARCH_DEPTH", 0),
		Reward:        l.getEnvAsInt("BOT_REWARD", bot.DefaultReward),
		Pruning:       l.getEnvAsBool("BOT_PRUNING", true),
		TieBreak:      bot.ParseTieBreak(tieBreak),
		Seed:          int64(l.getEnvAsInt("BOT_SEED", 0)),
		Workers:       l.getEnvAsInt("BOT_WORKERS", 1),
		HumanFirst:    l.getEnvAsBool("HUMAN_FIRST", true),
		ClearScreen:   l.getEnvAsBool("CLEAR_SCREEN", true),
		LogLevel:      GetEnv("LOG_LEVEL", "warn"),
		LogFile:       GetEnv("LOG_FILE", ""),
	}

	if cfg.SearchDepth < 0 {
		l.warn("BOT_SEARCH_DEPTH", strconv.Itoa(cfg.SearchDepth), 0)
		cfg.SearchDepth = 0
	}
	if cfg.Reward <= 0 {
		l.warn("BOT_REWARD", strconv.Itoa(cfg.Reward), bot.DefaultReward)
		cfg.Reward = bot.DefaultReward
	}
	if cfg.Workers < 1 {
		l.warn("BOT_WORKERS", strconv.Itoa(cfg.Workers), 1)
		cfg.Workers = 1
	}

	cfg.Warnings = l.warnings
	return cfg
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (l *loader) warn(key, value string, defaultValue any) {
	l.warnings = append(l.warnings, fmt.Sprintf("Invalid value for %s: %s, using default: %v", key, value, defaultValue))
}

func (l *loader) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		l.warn(key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func (l *loader) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		l.warn(key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
