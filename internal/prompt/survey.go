package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyPrompter renders interactive terminal prompts with arrow-key menus.
// It needs a real terminal on both ends.
type SurveyPrompter struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyPrompter binds survey to the given terminal streams.
func NewSurveyPrompter(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyPrompter {
	return &SurveyPrompter{
		out:  out,
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

func (p *SurveyPrompter) Section(title string) {
	fmt.Fprintf(p.out, "\n%s\n", title)
}

func (p *SurveyPrompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("choose: no options")
	}
	p.Section(title)
	selected := 0
	err := survey.AskOne(&survey.Select{
		Message: "Choose:",
		Options: options,
	}, &selected, p.opts...)
	if err != nil {
		return 0, surveyError(err)
	}
	return selected, nil
}

func (p *SurveyPrompter) Ask(q Question) (string, error) {
	opts := append([]survey.AskOpt{}, p.opts...)
	if q.Validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			value, _ := ans.(string)
			value = strings.TrimSpace(value)
			if value == "" {
				value = q.Default
			}
			return q.Validate(value)
		}))
	}

	var answer string
	err := survey.AskOne(&survey.Input{
		Message: strings.TrimSpace(q.Message),
		Default: q.Default,
	}, &answer, opts...)
	if err != nil {
		return "", surveyError(err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = q.Default
	}
	return answer, nil
}

func surveyError(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return fmt.Errorf("prompt: %w", err)
}
