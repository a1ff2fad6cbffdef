package bot

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
)

// Player1 has three in column 3 and it is the engine's turn.
const threeInColumn = `
. . . . . . .
. . . . . . .
. . . . . . .
. . . o . . .
. . . o . . .
. . . o . . .
`

// The engine wins at column 3 and has to block column 6 otherwise.
const winOrBlock = `
. . . . . . .
. . . . . . .
. . . . . . .
. . . . . . o
. . . . . . o
x x x . . . o
`

// fixedSource always returns the same index and records the n it was asked for.
type fixedSource struct {
	index int
	asked []int
}

func (f *fixedSource) Intn(n int) int {
	f.asked = append(f.asked, n)
	return f.index % n
}

func parse(t testing.TB, text string) domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(text)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func scoreMap(res Result) map[int]int {
	m := make(map[int]int, len(res.Scores))
	for _, s := range res.Scores {
		m[s.Column] = s.Score
	}
	return m
}

func TestNewDefaults(t *testing.T) {
	e := New(Options{})
	if e.MaxDepth() != DefaultDepth || e.Reward() != DefaultReward || e.Side() != domain.Player2 {
		t.Errorf("defaults: depth %d reward %d side %v", e.MaxDepth(), e.Reward(), e.Side())
	}
	if !e.pruning || e.tieBreak != TieBreakRandom || e.workers != 1 || e.rand == nil {
		t.Errorf("unexpected defaults: %+v", e)
	}
}

func TestBlocksVerticalThreat(t *testing.T) {
	board := parse(t, threeInColumn)
	for seed := int64(0); seed < 5; seed++ {
		e := New(Options{Rand: rand.New(rand.NewSource(seed))})
		res := e.Search(board)
		if !res.OK || res.Column != 3 {
			t.Fatalf("seed %d: Column = %d, want 3 (scores %v)", seed, res.Column, res.Scores)
		}
		want := map[int]int{0: -100, 1: -100, 2: -100, 3: 0, 4: -100, 5: -100, 6: -100}
		if got := scoreMap(res); !reflect.DeepEqual(got, want) {
			t.Errorf("scores = %v, want %v", got, want)
		}
	}
}

func TestTakesImmediateWin(t *testing.T) {
	board := parse(t, winOrBlock)
	e := New(Options{TieBreak: TieBreakFirst})
	res := e.Search(board)
	if res.Column != 3 || res.Score != DefaultReward {
		t.Fatalf("Search = column %d score %d, want column 3 score %d", res.Column, res.Score, DefaultReward)
	}
	want := map[int]int{0: -100, 1: -100, 2: -100, 3: 100, 4: -100, 5: -100, 6: 0}
	if got := scoreMap(res); !reflect.DeepEqual(got, want) {
		t.Errorf("scores = %v, want %v", got, want)
	}

	after := board
	after.ApplyMove(res.Column, domain.Player2)
	if !after.HasLineOfFour(domain.Player2) {
		t.Error("recommended move does not win")
	}
}

func TestEngineCanPlayEitherSide(t *testing.T) {
	// same position with the colours swapped
	board := parse(t, `
. . . . . . .
. . . . . . .
. . . . . . .
. . . . . . x
. . . . . . x
o o o . . . x
`)
	e := New(Options{Side: domain.Player1, TieBreak: TieBreakFirst})
	col, ok := e.RecommendMove(board)
	if !ok || col != 3 {
		t.Errorf("RecommendMove = %d, %v; want 3, true", col, ok)
	}
}

func TestFullBoardHasNoMove(t *testing.T) {
	board := parse(t, `
o o x x o o x
x x o o x x o
o o x x o o x
x x o o x x o
o o x x o o x
x x o o x x o
`)
	e := New(Options{})
	col, ok := e.RecommendMove(board)
	if ok || col != -1 {
		t.Errorf("RecommendMove = %d, %v; want -1, false", col, ok)
	}
	if res := e.Search(board); res.OK || len(res.Scores) != 0 {
		t.Errorf("Search on a full board = %+v", res)
	}
}

func TestEmptyBoardTies(t *testing.T) {
	board := domain.NewBoard()

	first := New(Options{TieBreak: TieBreakFirst})
	res := first.Search(board)
	if res.Column != 0 || res.Score != 0 {
		t.Errorf("first tie: column %d score %d, want 0 0", res.Column, res.Score)
	}
	if !reflect.DeepEqual(res.Candidates, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("Candidates = %v, want every column", res.Candidates)
	}

	src := &fixedSource{index: 5}
	random := New(Options{Rand: src})
	if col, _ := random.RecommendMove(board); col != 5 {
		t.Errorf("random tie: column %d, want 5", col)
	}
	if !reflect.DeepEqual(src.asked, []int{7}) {
		t.Errorf("Intn called with %v, want [7]", src.asked)
	}
}

func TestUniqueBestSkipsRandomSource(t *testing.T) {
	src := &fixedSource{}
	e := New(Options{Rand: src})
	if col, _ := e.RecommendMove(parse(t, threeInColumn)); col != 3 {
		t.Errorf("column %d, want 3", col)
	}
	if len(src.asked) != 0 {
		t.Errorf("random source used for a unique best move: %v", src.asked)
	}
}

func TestPruningDoesNotChangeScores(t *testing.T) {
	boards := []string{threeInColumn, winOrBlock, `
. . . . . . .
. . . . . . .
. . . x . . .
. . o o x . .
. x o x o . .
o x o x o o x
`}
	for i, text := range boards {
		board := parse(t, text)
		pruned := New(Options{TieBreak: TieBreakFirst}).Search(board)
		plain := New(Options{TieBreak: TieBreakFirst, DisablePruning: true}).Search(board)

		if !reflect.DeepEqual(pruned.Scores, plain.Scores) {
			t.Errorf("board %d: pruned scores %v, plain %v", i, pruned.Scores, plain.Scores)
		}
		if pruned.Column != plain.Column {
			t.Errorf("board %d: pruned column %d, plain %d", i, pruned.Column, plain.Column)
		}
		if pruned.Nodes >= plain.Nodes {
			t.Errorf("board %d: pruning visited %d nodes, plain %d", i, pruned.Nodes, plain.Nodes)
		}
		t.Logf("board %d: %d nodes pruned, %d plain", i, pruned.Nodes, plain.Nodes)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	board := parse(t, winOrBlock)
	serial := New(Options{TieBreak: TieBreakFirst}).Search(board)
	parallel := New(Options{TieBreak: TieBreakFirst, Workers: 4}).Search(board)

	if !reflect.DeepEqual(serial.Scores, parallel.Scores) || serial.Column != parallel.Column {
		t.Errorf("parallel %+v differs from serial %+v", parallel, serial)
	}
	if serial.Nodes != parallel.Nodes {
		t.Errorf("node count: parallel %d, serial %d", parallel.Nodes, serial.Nodes)
	}
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	board := parse(t, winOrBlock)
	before := board
	e := New(Options{Workers: 3})
	e.Search(board)
	if board != before {
		t.Error("Search modified the caller's board")
	}
}

func TestEvaluate(t *testing.T) {
	e := New(Options{})
	full := math.MaxInt

	tests := []struct {
		name       string
		board      string
		depth      int
		maximizing bool
		want       int
	}{
		{"engine wins on its move", winOrBlock, 1, true, DefaultReward},
		{"opponent wins on its move", winOrBlock, 1, false, -DefaultReward},
		{"depth zero is neutral", winOrBlock, 0, true, 0},
		{"nothing within reach", threeInColumn, 1, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := parse(t, tt.board)
			before := board
			got := e.Evaluate(&board, tt.depth, -full, full, tt.maximizing)
			if got != tt.want {
				t.Errorf("Evaluate = %d, want %d", got, tt.want)
			}
			if board != before {
				t.Errorf("board not restored:\n%s", board.Render())
			}
		})
	}
}

func TestParseTieBreak(t *testing.T) {
	if ParseTieBreak("first") != TieBreakFirst || ParseTieBreak("random") != TieBreakRandom || ParseTieBreak("") != TieBreakRandom {
		t.Error("ParseTieBreak mapping is wrong")
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		in    string
		want  BotDifficulty
		depth int
		name  string
	}{
		{"easy", DifficultyEasy, 2, "Alice"},
		{"medium", DifficultyMedium, 4, "Bob"},
		{"hard", DifficultyHard, 6, "Charles"},
		{"", DifficultyMedium, 4, "Bob"},
		{"impossible", DifficultyMedium, 4, "Bob"},
	}
	for _, tt := range tests {
		d := ParseDifficulty(tt.in)
		if d != tt.want || d.Depth() != tt.depth || d.BotName() != tt.name {
			t.Errorf("ParseDifficulty(%q) = %s depth %d name %s", tt.in, d, d.Depth(), d.BotName())
		}
	}
}

func BenchmarkSearchEmptyBoard(b *testing.B) {
	e := New(Options{TieBreak: TieBreakFirst})
	board := domain.NewBoard()
	for i := 0; i < b.N; i++ {
		e.Search(board)
	}
}

func BenchmarkSearchEmptyBoardNoPruning(b *testing.B) {
	e := New(Options{TieBreak: TieBreakFirst, DisablePruning: true})
	board := domain.NewBoard()
	for i := 0; i < b.N; i++ {
		e.Search(board)
	}
}
