package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formprops/pkg/properties"
)

var errAborted = errors.New("prompt aborted")

// promptKind asks which kind to resolve. Tests replace it.
var promptKind = surveyPromptKind

func surveyPromptKind(ctx context.Context) (properties.Kind, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	kinds := properties.Kinds()
	options := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		options = append(options, string(kind))
	}

	var out string
	prompt := &survey.Select{
		Message: "Which properties do you want to resolve?",
		Options: options,
		Default: options[0],
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return properties.ParseKind(out)
}
