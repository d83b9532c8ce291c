package core

import "testing"

func TestDirDelta(t *testing.T) {
	tests := []struct {
		dir    Dir
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestCoordStep(t *testing.T) {
	c := C(3, 2)

	if got := c.Step(DirDown); got != C(3, 3) {
		t.Errorf("Step(Down) = %v, expected (3,3)", got)
	}
	if got := c.Step(DirLeft).Step(DirLeft); got != C(1, 2) {
		t.Errorf("Step(Left) twice = %v, expected (1,2)", got)
	}
	if c.String() != "(3,2)" {
		t.Errorf("String() = %q, expected (3,2)", c.String())
	}
}

func TestActionDir(t *testing.T) {
	tests := []struct {
		action Action
		dir    Dir
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionRestart, 0, false},
		{ActionContinue, 0, false},
	}

	for _, tc := range tests {
		d, ok := tc.action.Dir()
		if ok != tc.ok || (ok && d != tc.dir) {
			t.Errorf("%v.Dir() = (%v, %v), expected (%v, %v)", tc.action, d, ok, tc.dir, tc.ok)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
