package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/logic-gates/internal/gates"
)

// Quiz is one question posed after a solved level. It can be answered once.
type Quiz struct {
	gate     gates.Gate
	question Question
	answered bool
	correct  bool
	choice   string
}

// New draws one question for gate uniformly from the bank.
func New(b Bank, gate gates.Gate, rng *rand.Rand) (*Quiz, error) {
	qs := b[gate]
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w %s", ErrEmptyBank, gate)
	}
	return &Quiz{gate: gate, question: qs[rng.Intn(len(qs))]}, nil
}

// Answer records option as the player's answer and reports whether it is
// correct. Only the first call counts; later calls return the stored result.
func (q *Quiz) Answer(option string) bool {
	if q.answered {
		return q.correct
	}
	q.answered = true
	q.choice = option
	q.correct = option == q.question.Answer
	return q.correct
}

// Choose answers with the option at index i. ok is false when i is out of
// range or the quiz was already answered; nothing changes then.
func (q *Quiz) Choose(i int) (correct, ok bool) {
	if q.answered || i < 0 || i >= len(q.question.Options) {
		return q.correct, false
	}
	return q.Answer(q.question.Options[i]), true
}

// Gate returns the gate the quiz is about.
func (q *Quiz) Gate() gates.Gate { return q.gate }

// Question returns the drawn question.
func (q *Quiz) Question() Question { return q.question }

// Answered reports whether Answer has been called.
func (q *Quiz) Answered() bool { return q.answered }

// Correct reports whether the recorded answer was right.
func (q *Quiz) Correct() bool { return q.correct }

// Choice returns the recorded answer, empty until answered.
func (q *Quiz) Choice() string { return q.choice }
