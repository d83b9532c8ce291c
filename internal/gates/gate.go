// Package gates holds the seven logic gates taught by the game and their
// static lesson material.
package gates

import (
	"errors"
	"fmt"
	"strings"
)

// Gate identifies one of the logic gates.
type Gate string

const (
	AND  Gate = "AND"
	OR   Gate = "OR"
	NOT  Gate = "NOT"
	NAND Gate = "NAND"
	NOR  Gate = "NOR"
	XOR  Gate = "XOR"
	XNOR Gate = "XNOR"
)

// ErrUnknownGate is returned when a gate identifier is not one of the seven gates.
var ErrUnknownGate = errors.New("gates: unknown gate")

var order = []Gate{AND, OR, NOT, NAND, NOR, XOR, XNOR}

// All returns the gates in lesson order.
func All() []Gate {
	out := make([]Gate, len(order))
	copy(out, order)
	return out
}

// Count returns the number of gates.
func Count() int {
	return len(order)
}

// At returns the gate at index i in lesson order.
func At(i int) (Gate, bool) {
	if i < 0 || i >= len(order) {
		return "", false
	}
	return order[i], true
}

// Parse converts an identifier such as "xor" into a Gate.
func Parse(s string) (Gate, error) {
	g := Gate(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownGate, s)
	}
	return g, nil
}

// Valid reports whether g is one of the seven gates.
func (g Gate) Valid() bool {
	for _, known := range order {
		if g == known {
			return true
		}
	}
	return false
}

// Arity returns the number of inputs the gate takes.
func (g Gate) Arity() int {
	if g == NOT {
		return 1
	}
	return 2
}

// Eval computes the gate output. NOT reads only the first input; the
// two-input gates read the first two.
func (g Gate) Eval(in ...bool) bool {
	a := len(in) > 0 && in[0]
	b := len(in) > 1 && in[1]

	switch g {
	case AND:
		return a && b
	case OR:
		return a || b
	case NOT:
		return !a
	case NAND:
		return !(a && b)
	case NOR:
		return !(a || b)
	case XOR:
		return a != b
	case XNOR:
		return a == b
	}
	return false
}

func (g Gate) String() string {
	return string(g)
}
