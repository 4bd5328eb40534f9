// Package round implements the lifecycle of a single guessing round:
// word selection, letter evaluation, scoring and the win/loss check.
package round

import "github.com/f3rmion/palpite/internal/words"

// AttemptLimit is the number of guesses allowed per round.
const AttemptLimit = 10

// Phase is the controller's position in the round state machine.
type Phase int

const (
	PhaseIdle       Phase = iota // No round started yet
	PhaseInRound                 // Accepting guesses
	PhaseRoundEnded              // Only visible to subscribers while a round end is announced
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInRound:
		return "in_round"
	case PhaseRoundEnded:
		return "round_ended"
	default:
		return "unknown"
	}
}

// Guess records one submitted letter.
type Guess struct {
	Value   rune // Uppercase letter
	Correct bool // Whether the letter occurs in the word, fixed at submission
}

// String returns the guessed letter.
func (g Guess) String() string {
	return string(g.Value)
}

// Outcome is how a round finished.
type Outcome int

const (
	OutcomeWin Outcome = iota + 1
	OutcomeLoss
)

// Message is the announcement shown to the player.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return "Parabéns, você descobriu a palavra!"
	case OutcomeLoss:
		return "Que pena, você usou todas as tentativas!"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// RoundEnd describes a finished round. By the time a caller sees it the
// controller has already started the next round.
type RoundEnd struct {
	Outcome Outcome
	Entry   words.Entry
	Score   int
	Guesses []Guess
}

// Result is returned by a successful Submit.
type Result struct {
	Guess Guess
	Hits  int       // Occurrences of the letter in the word
	Score int       // Score after this guess
	End   *RoundEnd // Non-nil when this guess finished the round
}

// Cell is one position of the hidden word as seen by the player.
// Letter is zero while the position is hidden.
type Cell struct {
	Letter   rune
	Revealed bool
}

// Snapshot is a read-only copy of the round state for rendering.
type Snapshot struct {
	Round        int
	Phase        Phase
	Tip          string
	WordLength   int
	Cells        []Cell
	Guesses      []Guess
	Score        int
	AttemptsUsed int
	AttemptLimit int
	Pending      string
}

// EventKind identifies a controller event.
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventGuessed
	EventRejected
	EventRoundEnded
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round_started"
	case EventGuessed:
		return "guessed"
	case EventRejected:
		return "rejected"
	case EventRoundEnded:
		return "round_ended"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after every state change or rejected
// submission.
type Event struct {
	Kind   EventKind
	Round  int
	Result *Result   // EventGuessed
	End    *RoundEnd // EventRoundEnded
	Err    error     // EventRejected
}
