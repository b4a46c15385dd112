package tui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Accessible reports whether prompts should run in accessible mode.
func Accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// Confirm asks a yes/no question. A cancelled prompt returns ErrAborted.
func Confirm(title, affirmative string) (bool, error) {
	confirm := false
	field := huh.NewConfirm().
		Title(title).
		Affirmative(affirmative).
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(Accessible(), huh.NewGroup(field)); err != nil {
		return false, err
	}
	return confirm, nil
}

// Spin runs action behind a spinner written to w. When w is not a terminal
// the action runs without any decoration.
func Spin(w io.Writer, title string, action func() error) error {
	if !IsTerminal(w) {
		return action()
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Accessible(Accessible()).
		Output(w).
		Action(func() {
			actionErr = action()
		}).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
