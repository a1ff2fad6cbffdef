package domain

// Game is one session's live board. Its status is never stored; it is read
// off the board whenever it is asked for.
type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	MoveCount     int
	History       []int
}

func NewGame(first PlayerID) *Game {
	if first != Player2 {
		first = Player1
	}
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: first,
	}
}

func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	if !inColumns(column) {
		return -1, ErrInvalidMove
	}

	row, err := g.Board.Drop(column, player)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.History = append(g.History, column)
	g.CurrentPlayer = Opponent(player)

	return row, nil
}

// Winner returns the side holding a line of four, or Empty.
func (g *Game) Winner() PlayerID {
	switch {
	case g.Board.HasLineOfFour(Player1):
		return Player1
	case g.Board.HasLineOfFour(Player2):
		return Player2
	default:
		return Empty
	}
}

func (g *Game) Status() GameStatus {
	if g.Winner() != Empty {
		return StatusWon
	}
	if g.Board.IsFull() {
		return StatusDraw
	}
	return StatusActive
}

func (g *Game) IsFinished() bool {
	return g.Status() != StatusActive
}

// LastMove returns the row and column of the most recent move.
func (g *Game) LastMove() (row, column int, ok bool) {
	if len(g.History) == 0 {
		return -1, -1, false
	}
	column = g.History[len(g.History)-1]
	return Rows - g.Board.Height(column), column, true
}
