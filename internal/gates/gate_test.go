package gates

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Gate
		wantErr bool
	}{
		{"AND", AND, false},
		{"xnor", XNOR, false},
		{" nand ", NAND, false},
		{"BUF", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownGate) {
				t.Errorf("Parse(%q) error = %v, expected ErrUnknownGate", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("Parse(%q) = (%v, %v), expected %v", tc.in, got, err, tc.want)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		gate Gate
		a, b bool
		want bool
	}{
		{AND, true, true, true},
		{AND, false, true, false},
		{OR, false, true, true},
		{OR, false, false, false},
		{NAND, true, true, false},
		{NAND, false, false, true},
		{NOR, false, false, true},
		{NOR, true, false, false},
		{XOR, true, true, false},
		{XOR, false, true, true},
		{XNOR, true, true, true},
		{XNOR, false, true, false},
	}

	for _, tc := range tests {
		if got := tc.gate.Eval(tc.a, tc.b); got != tc.want {
			t.Errorf("%s.Eval(%v, %v) = %v, expected %v", tc.gate, tc.a, tc.b, got, tc.want)
		}
	}

	if NOT.Eval(true) || !NOT.Eval(false) {
		t.Error("NOT should invert its single input")
	}
}

func TestAllOrder(t *testing.T) {
	want := []Gate{AND, OR, NOT, NAND, NOR, XOR, XNOR}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d gates, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %s, expected %s", i, got[i], want[i])
		}
	}

	// Mutating the returned slice must not affect the package order.
	got[0] = XOR
	if g, _ := At(0); g != AND {
		t.Errorf("At(0) = %s after mutating All(), expected AND", g)
	}
	if _, ok := At(7); ok {
		t.Error("At(7) should be out of range")
	}
}

func TestLoadLessons(t *testing.T) {
	lessons, err := LoadLessons()
	if err != nil {
		t.Fatalf("LoadLessons() failed: %v", err)
	}

	for _, g := range All() {
		l, ok := lessons[g]
		if !ok {
			t.Errorf("missing lesson for %s", g)
			continue
		}
		if l.Gate != g {
			t.Errorf("lesson %s has Gate %s", g, l.Gate)
		}
		if l.Name == "" || l.Symbol == "" || l.Description == "" || l.RealWorld == "" {
			t.Errorf("lesson %s has empty fields: %+v", g, l)
		}
	}

	if rows := lessons[NOT].Rows(); len(rows) != 2 {
		t.Errorf("NOT truth table should have 2 rows, got %d", len(rows))
	}
}

func TestParseLessonsRejectsWrongTable(t *testing.T) {
	data := strings.Replace(string(lessonsYAML), `["1", "1", "1"]`, `["1", "1", "0"]`, 1)

	_, err := ParseLessons([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "disagrees") {
		t.Errorf("ParseLessons() error = %v, expected truth table mismatch", err)
	}
}

func TestParseLessonsRequiresEveryGate(t *testing.T) {
	data := []byte(`
AND:
  name: AND Gate
  symbol: A AND B = Y
  description: d
  truth_table:
    - [A, B, Y]
    - ["0", "0", "0"]
    - ["0", "1", "0"]
    - ["1", "0", "0"]
    - ["1", "1", "1"]
  real_world: r
`)

	_, err := ParseLessons(data)
	if err == nil || !strings.Contains(err.Error(), "missing lesson") {
		t.Errorf("ParseLessons() error = %v, expected missing lesson", err)
	}
}

func TestLessonMarkdown(t *testing.T) {
	md := LessonFor(XOR).Markdown()

	for _, want := range []string{"# XOR Gate", "`A XOR B = Y`", "| A | B | Y |", "| 1 | 1 | 0 |", "hallway"} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}
}
