package input

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Command is a numbered choice from the move menu.
type Command int

const (
	Unknown Command = 0
	Hit     Command = 1
	Stand   Command = 2
	Split   Command = 3
	Exit    Command = 4
)

func (c Command) String() string {
	switch c {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Split:
		return "split"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Reader reads one command per line.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadCommand blocks for the next line. It returns io.EOF once the input is
// exhausted. Lines that are not a number, or an unlisted number, yield Unknown.
// A final line without a newline is still read.
func (r *Reader) ReadCommand() (Command, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return Unknown, err
	}
	return Parse(line), nil
}

// Parse converts a line of user input into a Command.
func Parse(line string) Command {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Unknown
	}
	switch c := Command(n); c {
	case Hit, Stand, Split, Exit:
		return c
	default:
		return Unknown
	}
}
