package walker

// MaxSteps caps Run when no positive limit is given; a cyclic path never
// reaches a terminal state on its own.
const MaxSteps = 1 << 20

// Trace is the cursor trajectory of a run. Cursors[0] is where the run
// started and every successful step appends one entry.
type Trace struct {
	Cursors []Cursor
	State   State
	Err     error
}

// Len returns the number of recorded cursors.
func (t Trace) Len() int {
	return len(t.Cursors)
}

// Run steps until a terminal state or until limit moves have been made.
func (p *Path) Run(limit int) Trace {
	if limit <= 0 {
		limit = MaxSteps
	}
	t := Trace{Cursors: []Cursor{p.cursor}}
	for moves := 0; moves < limit; moves++ {
		state, err := p.Step()
		if state.Terminal() {
			t.State, t.Err = state, err
			return t
		}
		t.Cursors = append(t.Cursors, p.cursor)
	}
	t.State = p.state
	return t
}
