package gates

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

// Lesson is the read-only reference material for one gate.
type Lesson struct {
	Gate        Gate       `yaml:"-"`
	Name        string     `yaml:"name"`
	Symbol      string     `yaml:"symbol"`
	Description string     `yaml:"description"`
	TruthTable  [][]string `yaml:"truth_table"` // Row 0 is the header
	RealWorld   string     `yaml:"real_world"`
}

// Header returns the truth table header row.
func (l Lesson) Header() []string {
	if len(l.TruthTable) == 0 {
		return nil
	}
	return l.TruthTable[0]
}

// Rows returns the truth table rows without the header.
func (l Lesson) Rows() [][]string {
	if len(l.TruthTable) < 2 {
		return nil
	}
	return l.TruthTable[1:]
}

// Markdown renders the lesson as a markdown document.
func (l Lesson) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l.Name)
	fmt.Fprintf(&b, "`%s`\n\n", l.Symbol)
	fmt.Fprintf(&b, "%s\n\n", l.Description)
	b.WriteString("## Truth table\n\n")

	header := l.Header()
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" :-: |", len(header)) + "\n")
	for _, row := range l.Rows() {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	fmt.Fprintf(&b, "\n## In the real world\n\n%s\n", l.RealWorld)
	return b.String()
}

var (
	lessonsOnce sync.Once
	lessons     map[Gate]Lesson
	lessonsErr  error
)

// LoadLessons parses and validates the embedded lesson material.
// The result is cached; every caller sees the same error.
func LoadLessons() (map[Gate]Lesson, error) {
	lessonsOnce.Do(func() {
		lessons, lessonsErr = ParseLessons(lessonsYAML)
	})
	return lessons, lessonsErr
}

// LessonFor returns the lesson for a gate. It panics if the embedded
// material is invalid, which LoadLessons reports at startup.
func LessonFor(g Gate) Lesson {
	all, err := LoadLessons()
	if err != nil {
		panic(err)
	}
	return all[g]
}

// ParseLessons decodes lesson YAML keyed by gate identifier and checks that
// every gate is present and that each truth table matches the gate.
func ParseLessons(data []byte) (map[Gate]Lesson, error) {
	var raw map[string]Lesson
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("gates: parse lessons: %w", err)
	}

	out := make(map[Gate]Lesson, len(raw))
	for id, lesson := range raw {
		g, err := Parse(id)
		if err != nil {
			return nil, err
		}
		lesson.Gate = g
		if err := checkTruthTable(lesson); err != nil {
			return nil, err
		}
		out[g] = lesson
	}

	for _, g := range order {
		if _, ok := out[g]; !ok {
			return nil, fmt.Errorf("gates: missing lesson for %s", g)
		}
	}
	return out, nil
}

func checkTruthTable(l Lesson) error {
	width := l.Gate.Arity() + 1
	if len(l.Header()) != width {
		return fmt.Errorf("gates: %s truth table header has %d columns, want %d", l.Gate, len(l.Header()), width)
	}

	rows := l.Rows()
	if len(rows) != 1<<l.Gate.Arity() {
		return fmt.Errorf("gates: %s truth table has %d rows, want %d", l.Gate, len(rows), 1<<l.Gate.Arity())
	}

	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("gates: %s truth table row %d has %d columns", l.Gate, i+1, len(row))
		}
		bits := make([]bool, width)
		for j, cell := range row {
			switch cell {
			case "0":
			case "1":
				bits[j] = true
			default:
				return fmt.Errorf("gates: %s truth table row %d: bad bit %q", l.Gate, i+1, cell)
			}
		}
		if l.Gate.Eval(bits[:width-1]...) != bits[width-1] {
			return fmt.Errorf("gates: %s truth table row %d disagrees with the gate", l.Gate, i+1)
		}
	}
	return nil
}
