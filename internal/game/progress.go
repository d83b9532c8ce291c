package game

// Progress is the session-only record of completed levels and the level that
// Play starts. It lives in memory and is never saved.
type Progress struct {
	completed []bool
	current   int
}

// NewProgress returns empty progress for n levels.
func NewProgress(n int) Progress {
	return Progress{completed: make([]bool, n)}
}

// Current returns the current level index.
func (p Progress) Current() int {
	return p.current
}

// Completed reports whether level i has been passed.
func (p Progress) Completed(i int) bool {
	return i >= 0 && i < len(p.completed) && p.completed[i]
}

// CompletedLevels returns the passed level indices in ascending order.
func (p Progress) CompletedLevels() []int {
	var out []int
	for i, done := range p.completed {
		if done {
			out = append(out, i)
		}
	}
	return out
}

// Levels returns the number of levels tracked.
func (p Progress) Levels() int {
	return len(p.completed)
}

// Last reports whether the current level is the final one.
func (p Progress) Last() bool {
	return p.current >= len(p.completed)-1
}

func (p *Progress) complete(i int) {
	p.completed[i] = true
}

func (p *Progress) clone() Progress {
	c := Progress{completed: make([]bool, len(p.completed)), current: p.current}
	copy(c.completed, p.completed)
	return c
}
