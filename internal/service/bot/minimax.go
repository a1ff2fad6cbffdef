package bot

import (
	"math"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
)

// Evaluate scores board with the engine's side maximizing. Leaves at depth 0
// or on a full board are worth 0; a move completing four is worth +Reward
// for the engine and -Reward for the opponent. The board is restored before
// Evaluate returns.
func (e *Engine) Evaluate(board *domain.Board, depth, alpha, beta int, maximizing bool) int {
	s := searcher{Engine: e}
	return s.evaluate(board, depth, alpha, beta, maximizing)
}

// searcher carries the node count of one top-level branch.
type searcher struct {
	*Engine
	nodes int64
}

// evaluate implements the minimax algorithm with alpha-beta pruning
func (s *searcher) evaluate(board *domain.Board, depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	validColumns := board.LegalMoves()

	// Terminal conditions
	if depth == 0 || len(validColumns) == 0 {
		return 0
	}

	if maximizing {
		maxEval := math.MinInt
		for _, col := range validColumns {
			board.ApplyMove(col, s.side)

			eval := s.reward
			if !board.HasLineOfFour(s.side) {
				eval = s.evaluate(board, depth-1, alpha, beta, false)
			}
			board.UndoMove(col)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if s.pruning && beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, col := range validColumns {
		board.ApplyMove(col, s.opponent)

		eval := -s.reward
		if !board.HasLineOfFour(s.opponent) {
			eval = s.evaluate(board, depth-1, alpha, beta, true)
		}
		board.UndoMove(col)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if s.pruning && beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval
}
