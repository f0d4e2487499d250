// Package compass implements the octant arithmetic of the path walker:
// headings, direction masks, rotation into cursor-relative space, the
// priority table that picks the next move and the unit movement vectors.
//
// Octant i is i*45° counter-clockwise from east with y growing upward:
// 0 east, 1 north-east, 2 north, 3 north-west, 4 west, 5 south-west,
// 6 south, 7 south-east. Bit i of a Mask stands for octant i.
package compass

import (
	"math/bits"
	"strings"
)

// Heading is the octant a cursor faces.
type Heading uint8

const (
	East Heading = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

var headingNames = [8]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

func (h Heading) String() string {
	if !h.Valid() {
		return "?"
	}
	return headingNames[h]
}

// Valid reports whether h is one of the eight octants.
func (h Heading) Valid() bool {
	return h < 8
}

// Mask returns the single-bit mask of h.
func (h Heading) Mask() Mask {
	return Bit(int(h))
}

// Opposite returns the heading rotated by 180°.
func (h Heading) Opposite() Heading {
	return (h + 4) % 8
}

// HeadingOf returns the heading encoded by a single-bit mask.
func HeadingOf(m Mask) (Heading, bool) {
	if bits.OnesCount8(uint8(m)) != 1 {
		return 0, false
	}
	return Heading(bits.TrailingZeros8(uint8(m))), true
}

// Mask is a set of octants, one bit each.
type Mask uint8

// Bit returns the mask with only octant i set.
func Bit(i int) Mask {
	return Mask(1) << (uint(i) & 7)
}

// Has reports whether every bit of o is set in m.
func (m Mask) Has(o Mask) bool {
	return m&o == o
}

// Count returns the number of octants in m.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m))
}

func (m Mask) String() string {
	if m == 0 {
		return "-"
	}
	var parts []string
	for i := 0; i < 8; i++ {
		if m&Bit(i) != 0 {
			parts = append(parts, headingNames[i])
		}
	}
	return strings.Join(parts, "|")
}

// Rotate rotates m by k octants counter-clockwise (negative k turns clockwise).
func Rotate(m Mask, k int) Mask {
	return Mask(bits.RotateLeft8(uint8(m), k))
}

// Relative rotates a world mask into cursor space: the octant h lands on bit 0.
func Relative(m Mask, h Heading) Mask {
	return Rotate(m, -int(h%8))
}

// Absolute is the inverse of Relative.
func Absolute(m Mask, h Heading) Mask {
	return Rotate(m, int(h%8))
}
