package ui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt with Ctrl+C
var ErrAborted = errors.New("prompt aborted")

// PromptPassword asks for a secret without echoing it.
// validate may be nil; when set, the prompt repeats until it returns nil.
func PromptPassword(message, help string, validate func(string) error) (string, error) {
	var out string
	prompt := &survey.Password{
		Message: message,
		Help:    help,
	}

	var opts []survey.AskOpt
	opts = append(opts, survey.WithValidator(survey.Required))
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}

	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// PromptInput asks for a line of text with a default value.
func PromptInput(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(survey.Required)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Confirm asks a yes/no question.
func Confirm(message string, def bool) (bool, error) {
	var out bool
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
