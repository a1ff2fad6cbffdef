package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/terminal/internal/config"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/game"
	"github.com/iamasit07/4-in-a-row/terminal/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/terminal/pkg/logging"
)

func main() {
	envLoaded := godotenv.Load() == nil

	cfg := config.LoadConfig()
	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger, err = logging.NewLogger("warn", cfg.LogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Debug("[CONFIG] No .env file found")
	}
	for _, w := range cfg.Warnings {
		logger.Warn("[CONFIG] " + w)
	}

	engine := newEngine(cfg, logger)
	service := game.NewService(engine, cfg.BotDifficulty, logger)
	session := service.NewSession(cfg.HumanFirst)

	driver := console.NewDriver(os.Stdin, os.Stdout, cfg.ClearScreen, logger)
	if err := driver.Run(session); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			logger.Infow("[SESSION] Input closed, leaving game", "moves", session.Game.MoveCount)
			return
		}
		logger.Errorw("[SESSION] Game aborted", "error", err)
		os.Exit(1)
	}

	sum := session.Summary()
	logger.Infow("[SESSION] Finished",
		"reason", sum.Reason,
		"winner", sum.Winner.String(),
		"moves", sum.MoveCount,
		"duration", sum.Duration)
}

func newEngine(cfg *config.Config, logger *zap.SugaredLogger) *bot.Engine {
	opts := cfg.EngineOptions()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts.Rand = rand.New(rand.NewSource(seed))

	engine := bot.New(opts)
	logger.Infow("[BOT] Engine ready",
		"difficulty", string(cfg.BotDifficulty),
		"depth", engine.MaxDepth(),
		"reward", engine.Reward(),
		"pruning", !opts.DisablePruning,
		"tie_break", string(opts.TieBreak),
		"workers", opts.Workers,
		"seed", seed)
	return engine
}
