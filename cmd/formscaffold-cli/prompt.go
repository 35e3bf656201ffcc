package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPromptCancelled is returned when the user aborts a prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

type prompter interface {
	Choose(ctx context.Context, message string, options []string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Choose(ctx context.Context, message string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", errors.New("nothing to choose from")
	}
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: options[0],
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrPromptCancelled
		}
		return "", err
	}
	return out, nil
}
