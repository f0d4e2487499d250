// Package tally keeps the running statistics of a walk.
package tally

import (
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/walker"
)

type Tally struct {
	steps    int
	turns    int
	diagonal int // moves along a diagonal octant
	straight int // current run without a heading change
	longest  int // longest straight run
	visited  map[grid.Position]int
	best     int
}

func New() *Tally {
	return &Tally{visited: make(map[grid.Position]int)}
}

// Start records the first cursor of a walk.
func (t *Tally) Start(c walker.Cursor) {
	t.Reset()
	t.visited[c.Pos]++
}

// Observe records one successful move from prev to next.
func (t *Tally) Observe(prev, next walker.Cursor) {
	t.steps++
	if next.Heading%2 == 1 {
		t.diagonal++
	}
	if next.Heading != prev.Heading {
		t.turns++
		t.straight = 0
	}
	t.straight++
	t.longest = max(t.longest, t.straight)
	t.visited[next.Pos]++
}

func (t *Tally) Reset() {
	t.steps = 0
	t.turns = 0
	t.diagonal = 0
	t.straight = 0
	t.longest = 0
	clear(t.visited)
}

func (t *Tally) Steps() int { return t.steps }
func (t *Tally) Turns() int { return t.turns }
func (t *Tally) Diagonal() int { return t.diagonal }
func (t *Tally) Longest() int { return t.longest }

// Visited reports whether the cursor has stood on pos during this walk.
func (t *Tally) Visited(pos grid.Position) bool {
	return t.visited[pos] > 0
}

// Revisits counts moves that landed on an already visited position, the
// sign of a loop.
func (t *Tally) Revisits() int {
	n := 0
	for _, c := range t.visited {
		n += c - 1
	}
	return n
}

// Best is the longest earlier walk over the same file.
func (t *Tally) Best() int {
	return max(t.best, t.steps)
}

func (t *Tally) SetBest(steps int) {
	t.best = steps
}
