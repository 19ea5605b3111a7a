package actions

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via SCAFFKIT_NON_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (SCAFFKIT_NON_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv("SCAFFKIT_NON_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// confirmFunc asks a yes/no question. Tests replace it.
var confirmFunc = func(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}
	answer := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}
