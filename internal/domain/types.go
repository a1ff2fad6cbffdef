package domain

// PlayerID is the content of a cell: empty or one of the two sides.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1 // the human
	Player2 PlayerID = 2 // the bot
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other side. Empty has no opponent.
func Opponent(p PlayerID) PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "empty"
	}
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove    Error = "invalid move"
	ErrColumnFull     Error = "column is full"
	ErrGameOver       Error = "game is already over"
	ErrNotYourTurn    Error = "not your turn"
	ErrMalformedBoard Error = "malformed board"
	ErrFloatingPiece  Error = "piece is not supported from below"
)
