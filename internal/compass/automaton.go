package compass

import "math/bits"

// Cursor-relative octants.
const (
	Ahead     Mask = 1 << iota // 0°
	VeerLeft                   // 45°
	Left                       // 90°
	BackLeft                   // 135°
	Behind                     // 180°
	BackRight                  // 225°
	Right                      // 270°
	VeerRight                  // 315°
)

// Verdict is what the priority table decided for one relative mask.
type Verdict uint8

const (
	// Move means a single direction was chosen.
	Move Verdict = iota
	// Branch means the two 90° turns are both open and nothing breaks the tie.
	Branch
	// Halt means nothing but the way back is left.
	Halt
	// ForwardDiagonal means both 45° veers are set, which no valid path produces.
	ForwardDiagonal
	// BackwardDiagonal means both 135° turns are set.
	BackwardDiagonal
)

var verdictNames = [...]string{"move", "branch", "halt", "forward diagonal branch", "backward diagonal branch"}

func (v Verdict) String() string {
	if int(v) < len(verdictNames) {
		return verdictNames[v]
	}
	return "unknown"
}

// Choose applies the fixed priority table to a cursor-relative mask. The
// backward bit is ignored so a cursor never simply reverses.
func Choose(rel Mask) (Mask, Verdict) {
	rel &^= Behind
	switch {
	case rel&Ahead != 0:
		return Ahead, Move
	case rel&VeerLeft != 0:
		if rel&VeerRight != 0 {
			return 0, ForwardDiagonal
		}
		return VeerLeft, Move
	case rel&VeerRight != 0:
		return VeerRight, Move
	case rel&Left != 0:
		if rel&Right != 0 {
			return 0, Branch
		}
		return Left, Move
	case rel&Right != 0:
		return Right, Move
	case rel&BackLeft != 0:
		if rel&BackRight != 0 {
			return 0, BackwardDiagonal
		}
		return BackLeft, Move
	case rel&BackRight != 0:
		return BackRight, Move
	}
	return 0, Halt
}

// unit vectors per octant, y up.
var deltas = [8][2]int64{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Delta returns the unit vector of a single-bit world mask, or 0, 0 when m
// is not exactly one octant.
func Delta(world Mask) (dx, dy int64) {
	h, ok := HeadingOf(world)
	if !ok {
		return 0, 0
	}
	return deltas[h][0], deltas[h][1]
}

// Turn returns the heading after moving in the relative direction rel.
func Turn(h Heading, rel Mask) Heading {
	return Heading((int(h%8) + bits.TrailingZeros8(uint8(rel))) % 8)
}

// Advance resolves a chosen relative direction into a world displacement and
// the new heading.
func Advance(h Heading, rel Mask) (dx, dy int64, next Heading) {
	dx, dy = Delta(Absolute(rel, h))
	return dx, dy, Turn(h, rel)
}
