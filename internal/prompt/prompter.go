package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrAborted is returned when input ends or the operator interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Question is a free-text prompt. An empty answer becomes Default before
// Validate runs; a nil Validate accepts anything.
type Question struct {
	Message  string
	Default  string
	Validate func(string) error
}

// Prompter asks questions. Implementations re-ask until the answer is valid.
type Prompter interface {
	// Section prints a heading before a group of prompts.
	Section(title string)
	// Choose shows a numbered menu and returns the zero-based index picked.
	Choose(title string, options []string) (int, error)
	// Ask reads a trimmed free-text answer.
	Ask(q Question) (string, error)
}

// LinePrompter reads newline-terminated answers from any reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a prompter over in and out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Section(title string) {
	fmt.Fprintf(p.out, "\n%s\n", title)
}

func (p *LinePrompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("choose: no options")
	}
	p.Section(title)
	keys := make([]string, len(options))
	for i, option := range options {
		keys[i] = strconv.Itoa(i + 1)
		fmt.Fprintf(p.out, "%s. %s\n", keys[i], option)
	}
	for {
		fmt.Fprintf(p.out, "Choose [%s]: ", strings.Join(keys, "/"))
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		for i, key := range keys {
			if answer == key {
				return i, nil
			}
		}
		fmt.Fprintf(p.out, "Invalid choice. Please enter %s.\n", joinOr(keys))
	}
}

func (p *LinePrompter) Ask(q Question) (string, error) {
	for {
		fmt.Fprint(p.out, q.Message)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = q.Default
		}
		if q.Validate != nil {
			if err := q.Validate(answer); err != nil {
				fmt.Fprintln(p.out, err)
				continue
			}
		}
		return answer, nil
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrAborted
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// joinOr renders ["1","2","3"] as "1, 2 or 3".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
