package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gridrow/tictactoe/internal/apperror"
)

// Reader asks for one line of input at a time. ReadLine blocks until a
// full line arrives or the stream ends.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (that *Reader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", apperror.ErrInputClosed
	}

	return that.scanner.Text(), nil
}
