package round

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a blank guess is submitted.
	ErrEmptyInput = errors.New("empty input")

	// ErrDuplicateGuess is returned when a letter was already tried this round.
	ErrDuplicateGuess = errors.New("duplicate guess")
)

// DuplicateError carries the letter that was rejected.
type DuplicateError struct {
	Letter rune
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("letter %c already guessed", e.Letter)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateGuess
}

// Message converts a Submit error into the text shown to the player.
func Message(err error) string {
	var dup *DuplicateError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &dup):
		return "Você já utilizou a letra " + string(dup.Letter)
	case errors.Is(err, ErrEmptyInput):
		return "Digite uma letra!"
	default:
		return err.Error()
	}
}
