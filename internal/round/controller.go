package round

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/f3rmion/palpite/internal/words"
)

// Controller owns the state of the current round. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Controller struct {
	catalog words.Catalog
	rng     *rand.Rand

	phase   Phase
	round   int
	active  words.Entry
	score   int
	guesses []Guess
	pending string

	subscribers []func(Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the source used to pick words.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = r
	}
}

// WithSeed makes word selection deterministic. A zero seed keeps the
// default random source.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		if seed != 0 {
			c.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
		}
	}
}

// WithSubscriber registers fn before the first round starts, so it also
// sees the initial EventRoundStarted.
func WithSubscriber(fn func(Event)) Option {
	return func(c *Controller) {
		c.subscribers = append(c.subscribers, fn)
	}
}

// New creates a controller over catalog and starts the first round.
func New(catalog words.Catalog, opts ...Option) (*Controller, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Controller{catalog: catalog}
	for _, opt := range opts {
		opt(c)
	}

	c.StartRound()
	return c, nil
}

// Subscribe registers fn to receive every subsequent event.
func (c *Controller) Subscribe(fn func(Event)) {
	c.subscribers = append(c.subscribers, fn)
}

// StartRound picks a new word and resets score, guesses and pending input.
func (c *Controller) StartRound() {
	c.reset()
	c.emit(Event{Kind: EventRoundStarted, Round: c.round})
}

// Restart is the user-initiated restart. Confirmation is the caller's job.
func (c *Controller) Restart() {
	c.reset()
	c.emit(Event{Kind: EventRestarted, Round: c.round})
}

func (c *Controller) reset() {
	c.active = c.catalog.Pick(c.rng)
	c.score = 0
	c.guesses = nil
	c.pending = ""
	c.round++
	c.phase = PhaseInRound
}

// SetPending stores the in-progress input. Only the first character is kept.
func (c *Controller) SetPending(s string) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		c.pending = ""
		return
	}
	c.pending = string(r)
}

// Submit evaluates a guess. Blank and repeated letters are rejected without
// touching the round state. When the guess ends the round, the end is
// announced to subscribers and a new round is started before Submit returns.
func (c *Controller) Submit(raw string) (Result, error) {
	value, err := c.validate(raw)
	if err != nil {
		c.emit(Event{Kind: EventRejected, Round: c.round, Err: err})
		return Result{}, err
	}

	hits := countRune(c.active.Word, value)
	g := Guess{Value: value, Correct: hits > 0}

	c.guesses = append(c.guesses, g)
	c.score += hits
	c.pending = ""

	res := Result{Guess: g, Hits: hits, Score: c.score}
	c.emit(Event{Kind: EventGuessed, Round: c.round, Result: &res})

	if end := c.checkRoundEnd(); end != nil {
		res.End = end
		c.phase = PhaseRoundEnded
		c.emit(Event{Kind: EventRoundEnded, Round: c.round, End: end})
		c.StartRound()
	}

	return res, nil
}

func (c *Controller) validate(raw string) (rune, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrEmptyInput
	}

	r, _ := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError {
		return 0, ErrEmptyInput
	}
	value := unicode.ToUpper(r)

	for _, g := range c.guesses {
		if g.Value == value {
			return 0, &DuplicateError{Letter: value}
		}
	}
	return value, nil
}

// checkRoundEnd reports a finished round, if any. The win check compares
// the score with the word length; repeated letters are rejected, so the
// score always equals the number of revealed positions.
func (c *Controller) checkRoundEnd() *RoundEnd {
	var outcome Outcome
	switch {
	case c.score == utf8.RuneCountInString(c.active.Word):
		outcome = OutcomeWin
	case len(c.guesses) == AttemptLimit:
		outcome = OutcomeLoss
	default:
		return nil
	}

	return &RoundEnd{
		Outcome: outcome,
		Entry:   c.active,
		Score:   c.score,
		Guesses: append([]Guess(nil), c.guesses...),
	}
}

// Solved reports whether every position of the word has been revealed.
func (c *Controller) Solved() bool {
	for _, cell := range c.cells() {
		if !cell.Revealed {
			return false
		}
	}
	return true
}

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the accumulated score of the current round.
func (c *Controller) Score() int {
	return c.score
}

// Snapshot returns a copy of the round state for rendering.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Round:        c.round,
		Phase:        c.phase,
		Tip:          c.active.Tip,
		WordLength:   utf8.RuneCountInString(c.active.Word),
		Cells:        c.cells(),
		Guesses:      append([]Guess(nil), c.guesses...),
		Score:        c.score,
		AttemptsUsed: len(c.guesses),
		AttemptLimit: AttemptLimit,
		Pending:      c.pending,
	}
}

func (c *Controller) cells() []Cell {
	cells := make([]Cell, 0, len(c.active.Word))
	for _, r := range c.active.Word {
		letter := unicode.ToUpper(r)
		cell := Cell{}
		for _, g := range c.guesses {
			if g.Value == letter {
				cell = Cell{Letter: g.Value, Revealed: true}
				break
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

func (c *Controller) emit(ev Event) {
	for _, fn := range c.subscribers {
		fn(ev)
	}
}

func countRune(word string, value rune) int {
	n := 0
	for _, r := range word {
		if unicode.ToUpper(r) == value {
			n++
		}
	}
	return n
}
