/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// State is a session's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateAsking
	StateGuessing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAsking:
		return "asking"
	case StateGuessing:
		return "guessing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Question is a trait ready to be put to the player.
type Question struct {
	Number int    `json:"number"`
	Max    int    `json:"max"`
	Trait  string `json:"trait"`
	Text   string `json:"text"`
}

// Result is the final guess.
type Result struct {
	EntityID   string     `json:"entity_id"`
	Name       string     `json:"name"`
	Confidence float64    `json:"confidence"`
	Questions  int        `json:"questions"`
	Stop       StopReason `json:"stop"`
}

// Answerer collects the player's confidence that the question's trait
// applies. It is the only point where a session waits.
type Answerer interface {
	Answer(ctx context.Context, q Question) (float64, error)
}

type AnswererFunc func(ctx context.Context, q Question) (float64, error)

func (f AnswererFunc) Answer(ctx context.Context, q Question) (float64, error) {
	return f(ctx, q)
}

// Session drives one game. It owns its belief exclusively and is not safe for
// concurrent use; callers serialise access.
type Session struct {
	engine *Engine
	belief *Belief
	state  State

	pending *Selection
	stop    StopReason
	result  Result

	selected  int
	totalGain float64

	startedAt  time.Time
	finishedAt time.Time
}

func (e *Engine) NewSession() *Session {
	return &Session{
		engine: e,
		belief: e.NewBelief(),
		state:  StateIdle,
	}
}

func (s *Session) State() State {
	return s.state
}

// Belief exposes the session's belief for inspection. Mutating it outside
// Answer breaks the session's bookkeeping.
func (s *Session) Belief() *Belief {
	return s.belief
}

// Next selects the next question. While a question is waiting for its answer
// the same selection is returned again. A selection with a stop reason moves
// the session to StateGuessing.
func (s *Session) Next() Selection {
	switch s.state {
	case StateGuessing, StateDone:
		return Selection{Stop: s.stop}
	case StateIdle:
		s.state = StateAsking
		s.startedAt = s.engine.now()
	}

	if s.pending != nil {
		return *s.pending
	}

	if s.belief.Len() >= s.engine.cfg.MaxQuestions {
		return s.stopAsking(Selection{Stop: StopMaxQuestions})
	}

	sel := s.engine.selector.SelectNext(s.belief)
	if sel.Done() {
		return s.stopAsking(sel)
	}

	s.pending = &sel
	s.selected++
	s.totalGain += sel.Gain

	return sel
}

func (s *Session) stopAsking(sel Selection) Selection {
	s.state = StateGuessing
	s.stop = sel.Stop

	s.engine.logger.Debug("stopped asking",
		zap.String("reason", string(sel.Stop)),
		zap.Int("questions", s.belief.Len()),
	)

	return sel
}

// Pending returns the question awaiting an answer.
func (s *Session) Pending() (Question, bool) {
	if s.pending == nil {
		return Question{}, false
	}

	return Question{
		Number: s.belief.Len() + 1,
		Max:    s.engine.cfg.MaxQuestions,
		Trait:  s.pending.Trait.Key,
		Text:   s.pending.Trait.Question,
	}, true
}

// Answer records the player's confidence for the pending question. A
// rejected answer leaves the question pending.
func (s *Session) Answer(confidence float64) error {
	if s.state != StateAsking || s.pending == nil {
		return fmt.Errorf("%w: no question is waiting for an answer (state %s)", ErrInvalidState, s.state)
	}

	if err := s.belief.RecordAnswer(s.pending.Trait.Key, confidence); err != nil {
		return err
	}
	s.pending = nil

	return nil
}

// Guess ranks the full entity set, settles near ties and commits to the top
// entity. Calling it again after the session is done returns the same
// result.
func (s *Session) Guess() (Result, error) {
	switch s.state {
	case StateDone:
		return s.result, nil
	case StateGuessing:
	default:
		return Result{}, fmt.Errorf("%w: cannot guess while %s", ErrInvalidState, s.state)
	}

	ranked := s.engine.tieBreaker.ResolveCloseTies(s.engine.ranker.ScoreAll(s.belief))
	top := ranked[0]

	s.result = Result{
		EntityID:   top.Entity.ID,
		Name:       top.Entity.DisplayName(),
		Confidence: top.Confidence,
		Questions:  s.belief.Len(),
		Stop:       s.stop,
	}
	s.state = StateDone
	s.finishedAt = s.engine.now()

	s.engine.logger.Debug("final guess",
		zap.String("entity", s.result.EntityID),
		zap.Float64("confidence", s.result.Confidence),
		zap.Int("questions", s.result.Questions),
		zap.Float64("average_gain", s.averageGain()),
	)

	return s.result, nil
}

// Run plays the whole game, asking a for every answer.
func (s *Session) Run(ctx context.Context, a Answerer) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if sel := s.Next(); sel.Done() {
			return s.Guess()
		}

		q, _ := s.Pending()
		confidence, err := a.Answer(ctx, q)
		if err != nil {
			return Result{}, err
		}

		if err := s.Answer(confidence); err != nil {
			return Result{}, err
		}
	}
}

func (s *Session) averageGain() float64 {
	if s.selected == 0 {
		return 0
	}

	return s.totalGain / float64(s.selected)
}
