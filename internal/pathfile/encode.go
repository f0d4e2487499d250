package pathfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/vinser/linwalk/internal/varint"
)

// Encode writes f in .lin layout. Points are written in order, so a walk
// over the re-decoded file starts at the same place.
func Encode(w io.Writer, f *File) error {
	if !f.Heading.Valid() {
		return fmt.Errorf("pathfile: invalid heading %d", f.Heading)
	}
	bw := bufio.NewWriter(w)
	if err := bw.WriteByte(byte(f.Heading.Mask())); err != nil {
		return err
	}
	var buf [2*varint.MaxLen + 1]byte
	for i, p := range f.Points {
		if p.Pos.X < 0 || p.Pos.Y < 0 {
			return fmt.Errorf("point %d %v: %w", i, p.Pos, ErrNegativeCoordinate)
		}
		rec := varint.Append(buf[:0], uint64(p.Pos.X))
		rec = varint.Append(rec, uint64(p.Pos.Y))
		rec = append(rec, byte(p.Dirs))
		if _, err := bw.Write(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Marshal returns the .lin encoding of f.
func Marshal(f *File) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, f); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
