// Package pathfile reads and writes .lin path files.
//
//	file        := cursor_byte point*
//	cursor_byte := u8                  ; exactly one bit set, the initial heading
//	point       := varint(x) varint(y) u8(direction_mask)
//
// The first point is where the walk starts.
package pathfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vinser/linwalk/internal/compass"
	"github.com/vinser/linwalk/internal/grid"
	"github.com/vinser/linwalk/internal/varint"
)

// Ext is the conventional file extension.
const Ext = ".lin"

var (
	// ErrMalformed marks a stream that does not follow the file layout.
	ErrMalformed = errors.New("pathfile: malformed stream")
	// ErrInvalidCursorByte is returned when the first byte does not have exactly one bit set.
	ErrInvalidCursorByte = errors.New("pathfile: cursor byte must have exactly one bit set")
	// ErrDuplicatePoint is wrapped with ErrMalformed when two records share a position.
	ErrDuplicatePoint = errors.New("pathfile: duplicate point position")
	// ErrNegativeCoordinate is returned by the encoder; coordinates are stored as magnitudes.
	ErrNegativeCoordinate = errors.New("pathfile: negative coordinate")
)

// File is a decoded path: the initial heading and the graph points.
type File struct {
	Heading compass.Heading
	Points  []grid.Point
}

// Start returns where a walk over f begins.
func (f *File) Start() (grid.Position, compass.Heading, bool) {
	if len(f.Points) == 0 {
		return grid.Position{}, f.Heading, false
	}
	return f.Points[0].Pos, f.Heading, true
}

// Bounds returns the bounding rectangle of all points.
func (f *File) Bounds() grid.Bounds {
	return grid.BoundsOf(f.Points)
}

// DecodeError reports where decoding stopped.
type DecodeError struct {
	Offset int // byte offset of the item that failed
	Record int // index of the point record, -1 for the cursor byte
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("cursor byte at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("point %d at offset %d: %v", e.Record, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses a complete .lin file held in memory.
func Decode(b []byte) (*File, error) {
	return DecodeReader(bytes.NewReader(b))
}

// DecodeReader parses a .lin stream until EOF. A stream that ends in the
// middle of a record is malformed; nothing decoded so far is returned.
func DecodeReader(r io.Reader) (*File, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	d := &decoder{r: br}
	return d.decode()
}

type decoder struct {
	r      io.ByteReader
	offset int
}

func (d *decoder) decode() (*File, error) {
	cursor, err := d.r.ReadByte()
	if err != nil {
		return nil, &DecodeError{Offset: 0, Record: -1, Err: malformed(err)}
	}
	d.offset++
	heading, ok := compass.HeadingOf(compass.Mask(cursor))
	if !ok {
		return nil, &DecodeError{Offset: 0, Record: -1, Err: fmt.Errorf("%w: %#04x", ErrInvalidCursorByte, cursor)}
	}

	f := &File{Heading: heading}
	seen := make(map[grid.Position]int)
	for record := 0; ; record++ {
		start := d.offset
		pt, err := d.point()
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return nil, &DecodeError{Offset: start, Record: record, Err: malformed(err)}
		}
		if first, dup := seen[pt.Pos]; dup {
			err = fmt.Errorf("%w: %w: %v also at point %d", ErrMalformed, ErrDuplicatePoint, pt.Pos, first)
			return nil, &DecodeError{Offset: start, Record: record, Err: err}
		}
		seen[pt.Pos] = record
		f.Points = append(f.Points, pt)
	}
}

// point reads one record. io.EOF is returned only when the stream ends
// exactly on a record boundary.
func (d *decoder) point() (grid.Point, error) {
	x, err := d.coordinate()
	if err != nil {
		return grid.Point{}, err
	}
	y, err := d.coordinate()
	if err != nil {
		return grid.Point{}, partial(err)
	}
	dirs, err := d.r.ReadByte()
	if err != nil {
		return grid.Point{}, partial(err)
	}
	d.offset++
	return grid.Point{Pos: grid.Position{X: x, Y: y}, Dirs: compass.Mask(dirs)}, nil
}

func (d *decoder) coordinate() (int64, error) {
	v, n, err := varint.Decode(d.r)
	d.offset += n
	if err != nil {
		return 0, err
	}
	return coordinate(v)
}

func coordinate(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, varint.ErrOverflow
	}
	return int64(v), nil
}

// partial reports a clean EOF inside a record as truncation.
func partial(err error) error {
	if errors.Is(err, io.EOF) {
		return varint.ErrUnexpectedEOS
	}
	return err
}

// malformed turns a read failure into an ErrMalformed chain; a bare EOF
// becomes an unexpected end of stream.
func malformed(err error) error {
	if errors.Is(err, io.EOF) {
		err = varint.ErrUnexpectedEOS
	}
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}
