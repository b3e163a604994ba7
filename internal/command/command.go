// Package command reads control commands from a line-oriented text stream and
// hands them to the simulation loop through an unbounded FIFO queue.
package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Command is a control token understood by the simulation loop.
type Command string

const (
	Pause      Command = "pause"
	Resume     Command = "resume"
	Faster     Command = "faster"
	Slower     Command = "slower"
	ToggleWrap Command = "toggle_wrap"
	Step       Command = "step"
)

// Vocabulary lists every recognised command.
var Vocabulary = []Command{Pause, Resume, Faster, Slower, ToggleWrap, Step}

// ErrUnknown is returned by Parse for tokens outside the vocabulary.
var ErrUnknown = errors.New("unknown command")

// Parse trims line and matches it against the vocabulary.
func Parse(line string) (Command, error) {
	tok := strings.TrimSpace(line)
	for _, c := range Vocabulary {
		if tok == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknown, tok)
}

// Queue is an unbounded FIFO of commands. Push never blocks, so a slow or
// paused consumer cannot stall the producer.
type Queue struct {
	mu    sync.Mutex
	items []Command
}

// NewQueue returns an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Push appends c to the queue.
func (q *Queue) Push(c Command) {
	q.mu.Lock()
	q.items = append(q.items, c)
	q.mu.Unlock()
}

// TryPop removes and returns the oldest command without blocking.
func (q *Queue) TryPop() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return "", false
	}
	c := q.items[0]
	q.items[0] = ""
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return c, true
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// maxLineLen caps how much of one input line is kept. Longer lines are
// truncated and reported like any other unknown command.
const maxLineLen = 1024

// Listen reads r line by line until it is exhausted. Recognised commands are
// pushed onto q; anything else is reported on out and dropped. It returns
// nil at end of input and the read error otherwise.
func Listen(r io.Reader, q *Queue, out io.Writer) error {
	br := bufio.NewReader(r)
	for {
		line, err := readLine(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		c, err := Parse(line)
		if err != nil {
			fmt.Fprintf(out, "Unknown command: %s\n", strings.TrimSpace(line))
			continue
		}
		q.Push(c)
	}
}

// readLine returns the next line without its terminator, keeping at most
// maxLineLen bytes and discarding the rest of the line.
func readLine(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		frag, more, err := br.ReadLine()
		if err != nil {
			return "", err
		}
		if room := maxLineLen - len(buf); room > 0 {
			buf = append(buf, frag[:min(len(frag), room)]...)
		}
		if !more {
			return string(buf), nil
		}
	}
}
