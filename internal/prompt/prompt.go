// Package prompt reads validated answers from an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when the input reaches EOF before a valid answer
var ErrInputClosed = errors.New("input closed before a valid answer was given")

const repeatQuestion = "Please repeat your input here: "

// Prompter asks questions on out and reads line answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Out returns the writer questions are printed to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Normalize lowercases an answer and strips surrounding whitespace
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Ask prints question and returns the raw answer line without its line ending
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still an answer
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Choose asks question until the normalized answer is one of accepted.
// accepted must hold normalized values. There is no retry limit.
func (p *Prompter) Choose(question string, accepted []string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return "", err
	}

	for {
		answer = Normalize(answer)
		if contains(accepted, answer) {
			return answer, nil
		}

		fmt.Fprintf(p.out, "\nSorry, we can't handle your input! \nPlease choose only between %s\n", formatChoices(accepted))
		answer, err = p.Ask(repeatQuestion)
		if err != nil {
			return "", err
		}
	}
}

// YesNo asks a yes/no question and reports whether the answer was yes
func (p *Prompter) YesNo(question string) (bool, error) {
	answer, err := p.Choose(question, []string{"yes", "no"})
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// formatChoices renders the accepted set as ['a', 'b', 'c']
func formatChoices(accepted []string) string {
	quoted := make([]string, len(accepted))
	for i, a := range accepted {
		quoted[i] = "'" + a + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
