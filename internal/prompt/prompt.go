// Package prompt reads line-oriented answers from an interactive user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInputClosed indicates input ended before an answer was read.
var ErrInputClosed = errors.New("input closed")

// Messages printed when a number cannot be accepted.
const (
	msgNotANumber  = "[Error] Please enter a valid number.\n"
	msgOutOfRangeF = "[Error] Please enter a number between %d and %d.\n"
)

// Prompter writes prompts to w and reads answers from r.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	maxLen int
}

// New creates a Prompter. Answers longer than maxLen characters are
// truncated; maxLen <= 0 disables truncation.
func New(r io.Reader, w io.Writer, maxLen int) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		maxLen: maxLen,
	}
}

// Line prints prompt and returns one line of input without its line ending.
// The rest of an over-long line is consumed and dropped.
func (p *Prompter) Line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", fmt.Errorf("%w: %w", ErrInputClosed, io.EOF)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return truncate(line, p.maxLen), nil
}

// Int prints prompt until the answer is an integer in [lo, hi].
// Invalid answers print an error line and ask again.
func (p *Prompter) Int(prompt string, lo, hi int) (int, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			fmt.Fprint(p.out, msgNotANumber)
			continue
		}
		if n < lo || n > hi {
			fmt.Fprintf(p.out, msgOutOfRangeF, lo, hi)
			continue
		}
		return n, nil
	}
}

// Wait prints prompt and blocks until a line or end of input is read.
func (p *Prompter) Wait(prompt string) {
	fmt.Fprint(p.out, prompt)
	_, _ = p.in.ReadString('\n')
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	i := 0
	for pos := range s {
		if i == limit {
			return s[:pos]
		}
		i++
	}
	return s
}
