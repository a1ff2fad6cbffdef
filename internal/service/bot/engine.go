package bot

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
)

const (
	DefaultDepth  = 4
	DefaultReward = 100
)

// TieBreak decides between top-level moves that share the best score.
type TieBreak string

const (
	TieBreakRandom TieBreak = "random" // uniform among the tied columns
	TieBreakFirst  TieBreak = "first"  // lowest tied column
)

// ParseTieBreak defaults to TieBreakRandom for anything it does not know.
func ParseTieBreak(s string) TieBreak {
	if TieBreak(s) == TieBreakFirst {
		return TieBreakFirst
	}
	return TieBreakRandom
}

// RandomSource is what the engine needs from a generator. *rand.Rand
// satisfies it.
type RandomSource interface {
	Intn(n int) int
}

type Options struct {
	MaxDepth int             // plies searched after the candidate move, DefaultDepth when <= 0
	Reward   int             // terminal win magnitude, DefaultReward when <= 0
	Side     domain.PlayerID // side the engine plays, Player2 when Empty

	// DisablePruning turns the search into plain minimax. Scores and the
	// chosen move are unchanged, only more nodes are visited.
	DisablePruning bool
	TieBreak       TieBreak

	// Workers > 1 scores the top-level moves concurrently.
	Workers int
	Rand    RandomSource
}

// Engine recommends moves for one side. It is not safe for concurrent use
// when the tie-break draws from a shared RandomSource.
type Engine struct {
	maxDepth int
	reward   int
	side     domain.PlayerID
	opponent domain.PlayerID
	pruning  bool
	tieBreak TieBreak
	workers  int
	rand     RandomSource
}

func New(opts Options) *Engine {
	e := &Engine{
		maxDepth: opts.MaxDepth,
		reward:   opts.Reward,
		side:     opts.Side,
		pruning:  !opts.DisablePruning,
		tieBreak: opts.TieBreak,
		workers:  opts.Workers,
		rand:     opts.Rand,
	}
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultDepth
	}
	if e.reward <= 0 {
		e.reward = DefaultReward
	}
	if e.side != domain.Player1 {
		e.side = domain.Player2
	}
	e.opponent = domain.Opponent(e.side)
	if e.tieBreak != TieBreakFirst {
		e.tieBreak = TieBreakRandom
	}
	if e.workers < 1 {
		e.workers = 1
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

func (e *Engine) Side() domain.PlayerID { return e.side }
func (e *Engine) MaxDepth() int         { return e.maxDepth }
func (e *Engine) Reward() int           { return e.reward }

// Scored is the search score of one top-level column.
type Scored struct {
	Column int
	Score  int
}

type Result struct {
	Column     int      // chosen column, -1 when OK is false
	Score      int      // score of the chosen column
	Scores     []Scored // every legal column in ascending order
	Candidates []int    // columns sharing the best score
	Nodes      int64    // evaluate calls made
	OK         bool
}

// RecommendMove returns the column the engine would play, or false when the
// board has no legal move.
func (e *Engine) RecommendMove(board domain.Board) (int, bool) {
	res := e.Search(board)
	return res.Column, res.OK
}

// Search scores every legal move of the engine's side. The board is passed
// by value, so the caller's board is never touched.
func (e *Engine) Search(board domain.Board) Result {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Result{Column: -1}
	}

	scores := make([]Scored, len(moves))
	nodes := make([]int64, len(moves))

	if e.workers > 1 {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for i, col := range moves {
			g.Go(func() error {
				work := board
				scores[i].Column = col
				scores[i].Score, nodes[i] = e.scoreMove(&work, col)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		work := board
		for i, col := range moves {
			scores[i].Column = col
			scores[i].Score, nodes[i] = e.scoreMove(&work, col)
		}
	}

	res := Result{Score: math.MinInt, OK: true}
	for i, s := range scores {
		res.Nodes += nodes[i]
		switch {
		case s.Score > res.Score:
			res.Score = s.Score
			res.Candidates = append(res.Candidates[:0], s.Column)
		case s.Score == res.Score:
			res.Candidates = append(res.Candidates, s.Column)
		}
	}
	res.Scores = scores
	res.Column = e.pick(res.Candidates)
	return res
}

// scoreMove plays column for the engine on work, scores the position with
// the opponent to move and takes the piece back.
func (e *Engine) scoreMove(work *domain.Board, column int) (int, int64) {
	s := searcher{Engine: e}
	if !work.ApplyMove(column, e.side) {
		return math.MinInt, 0
	}
	score := e.reward
	if !work.HasLineOfFour(e.side) {
		score = s.evaluate(work, e.maxDepth, math.MinInt, math.MaxInt, false)
	}
	work.UndoMove(column)
	return score, s.nodes
}

func (e *Engine) pick(candidates []int) int {
	if len(candidates) == 1 || e.tieBreak == TieBreakFirst {
		return candidates[0]
	}
	return candidates[e.rand.Intn(len(candidates))]
}
