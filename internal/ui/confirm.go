package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"nexusfile/internal/logging"
)

// Confirmer reads yes/no answers from an input stream. Anything other
// than an explicit "y" is a rejection: a typo, an empty line, a closed
// stream, or a cancelled context all refuse.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates a confirmer reading from in and prompting on out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

type readResult struct {
	line string
	err  error
}

// Confirm prints the prompt and waits for a single line of input. It
// returns true only for "y" (case-insensitive, surrounding whitespace
// ignored). Context cancellation while waiting counts as a rejection.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	// On cancellation the reader goroutine stays blocked in Read until
	// the process exits; acceptable for a one-shot CLI.
	ch := make(chan readResult, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		logging.Info("confirmation interrupted", "error", ctx.Err())
		return false
	case res := <-ch:
		if res.err != nil && res.line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(res.line))
		return answer == "y"
	}
}
