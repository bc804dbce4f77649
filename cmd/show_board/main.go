package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoardStart().String(), "the board to show")
	evaluate := flag.Bool("evaluate", false, "also print the evaluation and the computer's move")
	depth := flag.Int("depth", engine.DefaultSearchLevel, "search depth used with -evaluate")
	flag.Parse()

	if err := run(os.Stdout, *boardString, *evaluate, *depth); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(w io.Writer, boardString string, evaluate bool, depth int) error {
	board, err := othello.NewBoardFromString(boardString)
	if err != nil {
		return err
	}

	for _, line := range board.ASCIIArtLines() {
		fmt.Fprintln(w, line)
	}

	tally := board.Tally()
	fmt.Fprintf(w, "black: %d  white: %d  to move: %s  legal moves: %d\n",
		tally.Black, tally.White, board.Turn(), board.CountLegalMoves())

	if !evaluate {
		return nil
	}

	fmt.Fprintf(w, "evaluation: %d\n", engine.Evaluate(board))

	// Search maximizes for the computer, its answer is meaningless for the human.
	if board.Turn() != engine.Computer {
		fmt.Fprintf(w, "search only runs for the computer (%s)\n", engine.Computer)
		return nil
	}

	result := engine.Search(board, depth)
	if result.HasMove {
		fmt.Fprintf(w, "best move at depth %d: %s (score %d, nodes %d)\n", depth, result.Move, result.Score, result.Nodes)
	} else {
		fmt.Fprintf(w, "no move for %s\n", engine.Computer)
	}

	return nil
}
