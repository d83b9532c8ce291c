// Package quiz picks a question about a gate and judges the answer.
package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/logic-gates/internal/gates"
)

// QuestionsPerGate is the fixed size of each gate's question set.
const QuestionsPerGate = 3

// ErrEmptyBank is returned when a gate has no questions to draw from.
var ErrEmptyBank = errors.New("quiz: no questions for gate")

//go:embed bank.yaml
var bankYAML []byte

// Question is one static quiz record.
type Question struct {
	Text    string   `yaml:"question"`
	Options []string `yaml:"options"`
	Answer  string   `yaml:"answer"`
}

// AnswerIndex returns the index of the correct option, or -1.
func (q Question) AnswerIndex() int {
	return slices.Index(q.Options, q.Answer)
}

// Bank maps every gate to its questions.
type Bank map[gates.Gate][]Question

var (
	defaultOnce sync.Once
	defaultBank Bank
	defaultErr  error
)

// LoadBank parses and validates the built-in question bank.
func LoadBank() (Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = ParseBank(bankYAML)
	})
	return defaultBank, defaultErr
}

// MustLoadBank is LoadBank for callers that already validated the data.
func MustLoadBank() Bank {
	b, err := LoadBank()
	if err != nil {
		panic(err)
	}
	return b
}

// ParseBank decodes a YAML bank and checks that every gate has exactly
// QuestionsPerGate questions, each with its answer among the options.
func ParseBank(data []byte) (Bank, error) {
	var raw map[string][]Question
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("quiz: parse bank: %w", err)
	}

	b := make(Bank, len(raw))
	for name, qs := range raw {
		g, err := gates.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("quiz: %w", err)
		}
		b[g] = qs
	}

	for _, g := range gates.All() {
		if len(b[g]) == 0 {
			return nil, fmt.Errorf("%w %s", ErrEmptyBank, g)
		}
	}

	for _, g := range gates.All() {
		qs := b[g]
		if len(qs) != QuestionsPerGate {
			return nil, fmt.Errorf("quiz: %s has %d questions, want %d", g, len(qs), QuestionsPerGate)
		}
		for i, q := range qs {
			if err := q.validate(); err != nil {
				return nil, fmt.Errorf("quiz: %s question %d: %w", g, i+1, err)
			}
		}
	}
	return b, nil
}

func (q Question) validate() error {
	switch {
	case q.Text == "":
		return errors.New("empty question text")
	case len(q.Options) < 2:
		return fmt.Errorf("needs at least 2 options, has %d", len(q.Options))
	case q.AnswerIndex() < 0:
		return fmt.Errorf("answer %q is not one of the options", q.Answer)
	}
	return nil
}
