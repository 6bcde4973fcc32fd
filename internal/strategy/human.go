package strategy

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gridrow/tictactoe/internal/game"
)

// lineReader is the interactive input collaborator; console.Reader
// satisfies it.
type lineReader interface {
	ReadLine(prompt string) (string, error)
}

// Human asks a person for a cell number 1-9 and re-prompts until the
// answer parses and targets an empty cell. There is no retry bound; an
// input-stream failure is the only way out besides a legal move.
type Human struct {
	name   string
	mark   game.Mark
	reader lineReader
}

func NewHuman(name string, mark game.Mark, reader lineReader) *Human {
	return &Human{
		name:   name,
		mark:   mark,
		reader: reader,
	}
}

func (that *Human) Name() string {
	return that.name
}

func (that *Human) Mark() game.Mark {
	return that.mark
}

func (that *Human) NextMove(ctx context.Context, board *game.Board) (int, error) {
	prompt := fmt.Sprintf("%s (%s), pick a cell [1-9]: ", that.name, that.mark)

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("move input canceled: %w", err)
		}

		line, err := that.reader.ReadLine(prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		number, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || number < 1 || number > game.BoardSize {
			prompt = "Please enter a number from 1 to 9: "
			continue
		}

		cell := number - 1
		if board[cell] != game.MarkEmpty {
			prompt = fmt.Sprintf("Cell %d is taken, pick another [1-9]: ", number)
			continue
		}

		return cell, nil
	}
}
