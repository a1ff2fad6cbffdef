package domain

import (
	"fmt"
	"strings"
)

// Glyphs used by Render and understood by ParseBoard.
const (
	GlyphEmpty   = "."
	GlyphPlayer1 = "o"
	GlyphPlayer2 = "x"
)

// Board is the 6x7 grid. Row 0 is the top row, Rows-1 the bottom one.
// Copying a Board value gives an independent board.
type Board struct {
	cells [Rows][Columns]PlayerID
}

func NewBoard() Board {
	return Board{}
}

func inColumns(column int) bool {
	return column >= 0 && column < Columns
}

// At returns the cell at (row, column), Empty when out of range.
func (b *Board) At(row, column int) PlayerID {
	if row < 0 || row >= Rows || !inColumns(column) {
		return Empty
	}
	return b.cells[row][column]
}

// LegalMoves returns the playable columns in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.cells[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

// Height is the number of pieces stacked in a column.
func (b *Board) Height(column int) int {
	if !inColumns(column) {
		return 0
	}
	h := 0
	for row := Rows - 1; row >= 0 && b.cells[row][column] != Empty; row-- {
		h++
	}
	return h
}

// Count is the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for col := 0; col < Columns; col++ {
		n += b.Height(col)
	}
	return n
}

// Drop lets the disk fall to the lowest empty row of the column and
// reports the row it landed on.
func (b *Board) Drop(column int, player PlayerID) (int, error) {
	if !inColumns(column) || player == Empty {
		return -1, ErrInvalidMove
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// ApplyMove places side's piece in the column. It reports false and leaves
// the board untouched when the move is not possible.
func (b *Board) ApplyMove(column int, side PlayerID) bool {
	_, err := b.Drop(column, side)
	return err == nil
}

// UndoMove lifts the topmost piece of a column. Together with ApplyMove it
// forms the make/unmake pair used by the search.
func (b *Board) UndoMove(column int) bool {
	if !inColumns(column) {
		return false
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][column] != Empty {
			b.cells[row][column] = Empty
			return true
		}
	}
	return false
}

// HasLineOfFour scans every window of four cells, horizontally, vertically
// and along both diagonals.
func (b *Board) HasLineOfFour(side PlayerID) bool {
	if side == Empty {
		return false
	}

	// horizontal
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if b.window(row, col, 0, 1, side) {
				return true
			}
		}
	}

	// vertical
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col < Columns; col++ {
			if b.window(row, col, 1, 0, side) {
				return true
			}
		}
	}

	// both diagonals share the same 4x4 window: \ starts at its top-left
	// corner, / starts at its bottom-left corner
	for row := 0; row <= Rows-ToWin; row++ {
		for col := 0; col <= Columns-ToWin; col++ {
			if b.window(row, col, 1, 1, side) {
				return true
			}
			if b.window(row+ToWin-1, col, -1, 1, side) {
				return true
			}
		}
	}

	return false
}

func (b *Board) window(row, col, deltaRow, deltaCol int, side PlayerID) bool {
	for i := 0; i < ToWin; i++ {
		if b.cells[row+i*deltaRow][col+i*deltaCol] != side {
			return false
		}
	}
	return true
}

// this counts the number of disks in a specific direction
func (b *Board) CountDiskInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func glyph(p PlayerID) string {
	switch p {
	case Player1:
		return GlyphPlayer1
	case Player2:
		return GlyphPlayer2
	default:
		return GlyphEmpty
	}
}

// Render draws the board top row first, one glyph per cell separated by a
// single space, every line terminated by a newline.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(Rows * Columns * 2)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(glyph(b.cells[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) String() string {
	return b.Render()
}

// ParseBoard reads the format produced by Render. Blank lines and extra
// spaces are ignored.
func ParseBoard(text string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if row >= Rows {
			return Board{}, fmt.Errorf("%w: more than %d rows", ErrMalformedBoard, Rows)
		}
		if len(fields) != Columns {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, row, len(fields))
		}
		for col, f := range fields {
			switch f {
			case GlyphEmpty:
				b.cells[row][col] = Empty
			case GlyphPlayer1:
				b.cells[row][col] = Player1
			case GlyphPlayer2:
				b.cells[row][col] = Player2
			default:
				return Board{}, fmt.Errorf("%w: unknown glyph %q at row %d column %d", ErrMalformedBoard, f, row, col)
			}
		}
		row++
	}
	if row != Rows {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrMalformedBoard, row)
	}

	for col := 0; col < Columns; col++ {
		for r := 1; r < Rows; r++ {
			if b.cells[r-1][col] != Empty && b.cells[r][col] == Empty {
				return Board{}, fmt.Errorf("%w: column %d row %d", ErrFloatingPiece, col, r-1)
			}
		}
	}
	return b, nil
}
