// Package sokoban implements the box-pushing puzzle: level definitions, the
// grid model parsed from them, the push engine and the win check.
package sokoban

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/logic-gates/internal/gates"
)

//go:embed levels.yaml
var levelsYAML []byte

// Level is an immutable level template. It is never mutated during play;
// every start or restart parses it into a fresh Grid.
type Level struct {
	Name   string     `yaml:"name"`
	Gate   gates.Gate `yaml:"gate"`
	Layout []string   `yaml:"layout"`
}

var (
	builtinOnce sync.Once
	builtin     []Level
	builtinErr  error
)

// LoadLevels parses and validates the built-in levels. A malformed level is a
// programmer error; callers report it at startup and abort.
func LoadLevels() ([]Level, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = ParseLevels(levelsYAML)
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	out := make([]Level, len(builtin))
	for i, l := range builtin {
		out[i] = l.Clone()
	}
	return out, nil
}

// MustLoadLevels is LoadLevels for callers that already validated the data.
func MustLoadLevels() []Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}

// ParseLevels decodes a YAML level list and validates each entry by parsing it.
func ParseLevels(data []byte) ([]Level, error) {
	var levels []Level
	if err := yaml.Unmarshal(data, &levels); err != nil {
		return nil, fmt.Errorf("sokoban: parse levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("sokoban: no levels defined")
	}

	for i := range levels {
		if err := levels[i].Validate(); err != nil {
			return nil, fmt.Errorf("sokoban: level %d (%s): %w", i+1, levels[i].Name, err)
		}
	}
	return levels, nil
}

// Validate checks the gate identifier and that the layout parses.
func (l Level) Validate() error {
	g, err := gates.Parse(string(l.Gate))
	if err != nil {
		return err
	}
	if g != l.Gate {
		return fmt.Errorf("gate %q must be written as %q", l.Gate, g)
	}
	_, err = Parse(l)
	return err
}

// Clone returns a copy of l that shares no memory with it.
func (l Level) Clone() Level {
	l.Layout = slices.Clone(l.Layout)
	return l
}

// Counts returns the number of boxes and targets in the layout.
func (l Level) Counts() (boxes, targets int) {
	for _, row := range l.Layout {
		for _, ch := range row {
			switch ch {
			case '$':
				boxes++
			case '.':
				targets++
			}
		}
	}
	return boxes, targets
}
