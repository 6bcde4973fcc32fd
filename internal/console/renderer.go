package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gridrow/tictactoe/internal/game"
)

// Renderer prints board snapshots and results. Purely presentational;
// it never touches game state.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render - prints the grid. Empty cells show their 1-based number so a
// human player can answer the move prompt directly.
func (that *Renderer) Render(board *game.Board) {
	var builder strings.Builder

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			label := string(board[cell])
			if board[cell] == game.MarkEmpty {
				label = fmt.Sprintf("%d", cell+1)
			}

			builder.WriteString(" " + label + " ")
			if col < 2 {
				builder.WriteString("|")
			}
		}
		builder.WriteString("\n")
		if row < 2 {
			builder.WriteString("---+---+---\n")
		}
	}

	fmt.Fprintln(that.out, builder.String())
}

// RenderResult - announces a terminal result.
func (that *Renderer) RenderResult(result game.Result, winnerName string) {
	if result.State == game.StateDraw {
		fmt.Fprintln(that.out, "It's a draw.")
		return
	}

	fmt.Fprintf(that.out, "%s (%s) wins!\n", winnerName, result.Winner)
}
