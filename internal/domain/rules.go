package domain

var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// ConnectsAt reports whether the piece at (row, column) is part of a line of
// four for player. Only lines passing through that cell are checked, which is
// enough to classify the move that was just played.
func (b *Board) ConnectsAt(row, column int, player PlayerID) bool {
	if player == Empty || b.At(row, column) != player {
		return false
	}

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		total := 1 +
			b.CountDiskInDirection(row, column, dRow, dCol, player) +
			b.CountDiskInDirection(row, column, -dRow, -dCol, player)
		if total >= ToWin {
			return true
		}
	}
	return false
}
