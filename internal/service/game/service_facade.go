package game

import (
	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/terminal/pkg/logging"
)

// MoveRecommender is the part of the bot engine a session needs.
type MoveRecommender interface {
	Search(board domain.Board) bot.Result
	Side() domain.PlayerID
}

// Service is the entry point for game logic (facade)
type Service struct {
	engine     MoveRecommender
	difficulty bot.BotDifficulty
	log        *zap.SugaredLogger
}

func NewService(engine MoveRecommender, difficulty bot.BotDifficulty, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		engine:     engine,
		difficulty: difficulty,
		log:        log,
	}
}

// NewSession starts a game between the human and the engine.
func (s *Service) NewSession(humanFirst bool) *GameSession {
	return NewGameSession(s.engine, s.difficulty, humanFirst, s.log)
}
