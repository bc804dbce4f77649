package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/othello"
)

// terminal draws the game and reads moves from stdin.
type terminal struct {
	output *termenv.Output
	input  *bufio.Scanner
	bell   bool
}

func (t *terminal) stone(cell othello.Cell) string {
	switch cell {
	case othello.Black:
		return t.output.String("●").Foreground(t.output.Color("1")).Bold().String()
	case othello.White:
		return t.output.String("●").Foreground(t.output.Color("15")).Bold().String()
	default:
		return " "
	}
}

func (t *terminal) draw(game *engine.Game) {
	board := game.Board()

	fmt.Fprintln(t.output, "  a b c d e f g h")
	for y := range othello.Size {
		line := fmt.Sprintf("%d ", y+1)
		for x := range othello.Size {
			cell, _ := board.Get(x, y)
			switch {
			case cell != othello.Empty:
				line += t.stone(cell) + " "
			case game.Turn() == engine.Human && board.IsLegal(x, y):
				line += t.output.String("·").Faint().String() + " "
			default:
				line += "  "
			}
		}
		fmt.Fprintln(t.output, line)
	}

	tally := game.Tally()
	fmt.Fprintf(t.output, "%s %d  %s %d\n", t.stone(othello.Black), tally.Black, t.stone(othello.White), tally.White)
}

func (t *terminal) report(plies []engine.Ply) {
	for _, ply := range plies {
		if ply.Pass {
			fmt.Fprintf(t.output, "%s passes\n", ply.Color)
			continue
		}

		fmt.Fprintf(t.output, "%s plays %s, flipping %d\n", ply.Color, ply.Move, len(ply.Flipped))

		// One cue per flipped disc.
		if t.bell {
			fmt.Fprint(t.output, strings.Repeat("\a", len(ply.Flipped)))
		}
	}
}

func (t *terminal) readMove() (othello.Coord, error) {
	fmt.Fprint(t.output, "your move> ")

	if !t.input.Scan() {
		if err := t.input.Err(); err != nil {
			return othello.Coord{}, err
		}
		return othello.Coord{}, io.EOF
	}

	return othello.ParseCoord(strings.TrimSpace(t.input.Text()))
}

func (t *terminal) run(game *engine.Game) error {
	for !game.Over() {
		t.draw(game)

		var plies []engine.Ply
		var err error

		switch {
		case game.Turn() == engine.Computer:
			plies, err = game.PlayComputer()
		case game.CountLegalMoves() == 0:
			var ply engine.Ply
			ply, err = game.Pass()
			plies = []engine.Ply{ply}
		default:
			var move othello.Coord
			move, err = t.readMove()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err == nil {
				plies, err = game.PlayHuman(move.X, move.Y)
			}
		}

		if errors.Is(err, othello.ErrIllegalMove) || errors.Is(err, othello.ErrInvalidCoordinate) {
			fmt.Fprintln(t.output, err)
			continue
		}
		if err != nil {
			return err
		}

		t.report(plies)
	}

	t.draw(game)

	switch winner := game.Winner(); winner {
	case othello.Empty:
		fmt.Fprintln(t.output, "draw")
	default:
		fmt.Fprintf(t.output, "%s wins\n", winner)
	}

	return nil
}

func main() {
	config.SetLogLevel()
	cfg := config.LoadPlayConfig()

	bell := flag.Bool("bell", false, "ring the terminal bell once per flipped disc")
	flag.Parse()

	t := &terminal{
		output: termenv.NewOutput(os.Stdout),
		input:  bufio.NewScanner(os.Stdin),
		bell:   *bell,
	}

	game := engine.NewGame(engine.WithSearchLevel(cfg.SearchLevel))
	if err := t.run(game); err != nil {
		slog.Error("Game aborted", "error", err)
		os.Exit(1)
	}
}
