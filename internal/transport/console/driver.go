package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/terminal/internal/domain"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/game"
	"github.com/iamasit07/4-in-a-row/terminal/pkg/logging"
)

const clearSequence = "\x1b[2J\x1b[H"

var ErrInputClosed = errors.New("input closed before the game ended")

var (
	errNotANumber   = errors.New("not a number")
	errOutOfRange   = errors.New("out of range")
	errColumnIsFull = errors.New("column is full")
)

// Driver plays a session on a line oriented terminal. Columns are numbered
// 1 to 7 for the human.
type Driver struct {
	in          *bufio.Scanner
	out         io.Writer
	clearScreen bool
	log         *zap.SugaredLogger
}

func NewDriver(in io.Reader, out io.Writer, clearScreen bool, log *zap.SugaredLogger) *Driver {
	if log == nil {
		log = logging.Nop()
	}
	return &Driver{
		in:          bufio.NewScanner(in),
		out:         out,
		clearScreen: clearScreen,
		log:         log,
	}
}

// Run alternates turns until the game is over or the input runs dry.
func (d *Driver) Run(gs *game.GameSession) error {
	notice := ""
	for {
		d.draw(gs, notice)
		notice = ""

		if gs.IsFinished() {
			d.announce(gs)
			return nil
		}

		if !gs.IsHumanTurn() {
			if _, err := gs.HandleBotMove(); err != nil {
				return fmt.Errorf("bot move: %w", err)
			}
			continue
		}

		fmt.Fprintf(d.out, "Enter column number (1-%d):\n", domain.Columns)
		if !d.in.Scan() {
			if err := d.in.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return ErrInputClosed
		}

		line := d.in.Text()
		column, err := parseColumn(line, gs.LegalMoves())
		if err != nil {
			d.log.Debugw("[CONSOLE] Rejected input", "input", line, "error", err)
			notice = rejection(line, err)
			continue
		}

		if _, err := gs.HandleMove(column); err != nil {
			return fmt.Errorf("human move: %w", err)
		}
	}
}

func (d *Driver) draw(gs *game.GameSession, notice string) {
	if d.clearScreen {
		io.WriteString(d.out, clearSequence)
	}
	board := gs.Board()
	io.WriteString(d.out, board.Render())
	io.WriteString(d.out, columnLabels()+"\n")
	if notice != "" {
		fmt.Fprintln(d.out, notice)
	}
}

func (d *Driver) announce(gs *game.GameSession) {
	switch gs.Winner() {
	case gs.HumanPlayer:
		fmt.Fprintln(d.out, "Game over! You win.")
	case gs.BotPlayer:
		fmt.Fprintf(d.out, "Game over! %s wins.\n", gs.BotName)
	default:
		fmt.Fprintln(d.out, "Draw!")
	}
}

func columnLabels() string {
	labels := make([]string, domain.Columns)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return strings.Join(labels, " ")
}

// parseColumn turns a 1-based column typed by the human into a legal
// 0-based column.
func parseColumn(line string, legal []int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, errNotANumber
	}
	column := n - 1
	if column < 0 || column >= domain.Columns {
		return -1, errOutOfRange
	}
	for _, c := range legal {
		if c == column {
			return column, nil
		}
	}
	return -1, errColumnIsFull
}

func rejection(line string, err error) string {
	switch {
	case errors.Is(err, errColumnIsFull):
		return fmt.Sprintf("Column %s is full.", strings.TrimSpace(line))
	default:
		return fmt.Sprintf("Please enter a number between 1 and %d.", domain.Columns)
	}
}
