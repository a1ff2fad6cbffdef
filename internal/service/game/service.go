package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/terminal/pkg/logging"
	"github.com/iamasit07/4-in-a-row/terminal/pkg/uid"
)

const (
	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
)

// GameSession is one human versus bot game.
type GameSession struct {
	GameID      string
	Game        *domain.Game
	HumanPlayer domain.PlayerID
	BotPlayer   domain.PlayerID
	BotName     string
	Reason      string
	CreatedAt   time.Time
	FinishedAt  time.Time

	engine MoveRecommender
	log    *zap.SugaredLogger
	now    func() time.Time
}

// MoveResult describes a move that was just applied.
type MoveResult struct {
	Column int
	Row    int
	Player domain.PlayerID
	Status domain.GameStatus
	Winner domain.PlayerID
}

// Summary is the outcome of a finished (or abandoned) session.
type Summary struct {
	GameID    string
	Winner    domain.PlayerID
	Reason    string
	MoveCount int
	Duration  time.Duration
}

func NewGameSession(engine MoveRecommender, difficulty bot.BotDifficulty, humanFirst bool, log *zap.SugaredLogger) *GameSession {
	if log == nil {
		log = logging.Nop()
	}
	botPlayer := engine.Side()
	humanPlayer := domain.Opponent(botPlayer)

	first := humanPlayer
	if !humanFirst {
		first = botPlayer
	}

	gs := &GameSession{
		GameID:      uid.GenerateGameID(),
		Game:        domain.NewGame(first),
		HumanPlayer: humanPlayer,
		BotPlayer:   botPlayer,
		BotName:     difficulty.BotName(),
		engine:      engine,
		now:         time.Now,
	}
	gs.CreatedAt = gs.now()
	gs.log = log.With("game_id", uid.ShortID(gs.GameID))

	gs.log.Infow("[SESSION] Created session",
		"bot", gs.BotName,
		"difficulty", string(difficulty),
		"human_first", humanFirst)
	return gs
}

func (gs *GameSession) Board() domain.Board       { return gs.Game.Board }
func (gs *GameSession) LegalMoves() []int         { return gs.Game.Board.LegalMoves() }
func (gs *GameSession) Status() domain.GameStatus { return gs.Game.Status() }
func (gs *GameSession) Winner() domain.PlayerID   { return gs.Game.Winner() }
func (gs *GameSession) IsFinished() bool          { return gs.Game.IsFinished() }

func (gs *GameSession) IsHumanTurn() bool {
	return !gs.IsFinished() && gs.Game.CurrentPlayer == gs.HumanPlayer
}

// HandleMove applies the human's column. Only columns in LegalMoves are
// accepted.
func (gs *GameSession) HandleMove(column int) (MoveResult, error) {
	if gs.Game.CurrentPlayer != gs.HumanPlayer && !gs.IsFinished() {
		return MoveResult{}, domain.ErrNotYourTurn
	}
	return gs.apply(gs.HumanPlayer, column)
}

// HandleBotMove asks the engine for a move and plays it.
func (gs *GameSession) HandleBotMove() (MoveResult, error) {
	if gs.IsFinished() {
		return MoveResult{}, domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer != gs.BotPlayer {
		return MoveResult{}, domain.ErrNotYourTurn
	}

	started := gs.now()
	res := gs.engine.Search(gs.Game.Board)
	if !res.OK {
		// unreachable: an unfinished game always has a legal move
		return MoveResult{}, domain.ErrGameOver
	}

	gs.log.Debugw("[BOT] Search finished",
		"column", res.Column,
		"score", res.Score,
		"candidates", res.Candidates,
		"nodes", res.Nodes,
		"elapsed", gs.now().Sub(started))

	return gs.apply(gs.BotPlayer, res.Column)
}

func (gs *GameSession) apply(player domain.PlayerID, column int) (MoveResult, error) {
	row, err := gs.Game.MakeMove(player, column)
	if err != nil {
		return MoveResult{}, fmt.Errorf("move in column %d: %w", column, err)
	}

	result := MoveResult{
		Column: column,
		Row:    row,
		Player: player,
		Status: gs.Game.Status(),
		Winner: gs.Game.Winner(),
	}

	gs.log.Debugw("[SESSION] Move made",
		"player", player.String(),
		"column", column,
		"row", row,
		"move", gs.Game.MoveCount)

	switch result.Status {
	case domain.StatusWon:
		gs.finish(ReasonConnectFour)
	case domain.StatusDraw:
		gs.finish(ReasonDraw)
	}
	return result, nil
}

func (gs *GameSession) finish(reason string) {
	gs.Reason = reason
	gs.FinishedAt = gs.now()
	gs.log.Infow("[SESSION] Game over",
		"reason", reason,
		"winner", gs.Game.Winner().String(),
		"moves", gs.Game.MoveCount,
		"duration", gs.FinishedAt.Sub(gs.CreatedAt))
}

func (gs *GameSession) Summary() Summary {
	end := gs.FinishedAt
	if end.IsZero() {
		end = gs.now()
	}
	return Summary{
		GameID:    gs.GameID,
		Winner:    gs.Game.Winner(),
		Reason:    gs.Reason,
		MoveCount: gs.Game.MoveCount,
		Duration:  end.Sub(gs.CreatedAt),
	}
}
