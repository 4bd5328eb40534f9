// Package logging sets up zerolog for the game. The terminal belongs to the
// TUI, so logs are written to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/f3rmion/palpite/internal/round"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing JSON lines to w at the given level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Open creates (or appends to) the log file at path. When the level is
// "disabled" no file is touched and a no-op logger is returned.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if lvl == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("opening log file: %w", err)
	}

	return zerolog.New(f).Level(lvl).With().Timestamp().Logger(), f, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// RoundEvents returns a round subscriber that logs every controller event.
// The hidden word is only logged once the round is over.
func RoundEvents(log zerolog.Logger) func(round.Event) {
	return func(ev round.Event) {
		switch ev.Kind {
		case round.EventRoundStarted, round.EventRestarted:
			log.Info().
				Str("event", ev.Kind.String()).
				Int("round", ev.Round).
				Msg("round started")
		case round.EventGuessed:
			log.Debug().
				Str("event", ev.Kind.String()).
				Int("round", ev.Round).
				Str("letter", ev.Result.Guess.String()).
				Bool("correct", ev.Result.Guess.Correct).
				Int("hits", ev.Result.Hits).
				Int("score", ev.Result.Score).
				Msg("guess accepted")
		case round.EventRejected:
			log.Debug().
				Str("event", ev.Kind.String()).
				Int("round", ev.Round).
				Err(ev.Err).
				Msg("guess rejected")
		case round.EventRoundEnded:
			log.Info().
				Str("event", ev.Kind.String()).
				Int("round", ev.Round).
				Str("outcome", ev.End.Outcome.String()).
				Str("word", ev.End.Entry.Word).
				Int("score", ev.End.Score).
				Int("attempts", len(ev.End.Guesses)).
				Msg("round ended")
		}
	}
}
