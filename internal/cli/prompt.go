package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc prompts for free-text input. validate may be nil; the
// interactive implementation re-asks until validate accepts the value.
type PromptFunc func(prompt string, validate func(string) error) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string, validate func(string) error) (string, error) {
		var result string
		input := huh.NewInput().
			Title(prompt).
			Value(&result)
		if validate != nil {
			input = input.Validate(validate)
		}
		err := input.Run()
		return result, err
	}
}

// SecretFunc prompts for a secret, pre-filled with current, without echoing it.
type SecretFunc func(prompt, current string) (string, error)

// NewSecretFunc creates a SecretFunc using huh's password input.
func NewSecretFunc() SecretFunc {
	return func(prompt, current string) (string, error) {
		result := current
		err := huh.NewInput().
			Title(prompt).
			EchoMode(huh.EchoModePassword).
			Value(&result).
			Run()
		return result, err
	}
}

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// NewSelectFunc creates a SelectFunc using huh's interactive select component.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string) (int, error) {
		var result int
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt  PromptFunc
	Secret  SecretFunc
	Confirm ConfirmFunc
	Select  SelectFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:  NewPromptFunc(),
		Secret:  NewSecretFunc(),
		Confirm: NewConfirmFunc(),
		Select:  NewSelectFunc(),
	}
}

// isAbort reports whether err means the user closed the prompt (ctrl+c / esc).
func isAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}
