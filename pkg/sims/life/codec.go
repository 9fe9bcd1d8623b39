package life

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"lifeca/pkg/core"
)

// pairSize is the encoded width of one (row, col) pair: two uint16 values.
const pairSize = 4

// MaxCodecDim is the largest grid side whose coordinates fit the file format.
const MaxCodecDim = math.MaxUint16 + 1

// Encode serializes the live cells of g as little-endian uint16 (row, col)
// pairs in row-major order. The format carries no header or dimensions.
func Encode(g *core.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the encoded live cells of g to w.
func EncodeTo(w io.Writer, g *core.Grid) error {
	if g.W > MaxCodecDim || g.H > MaxCodecDim {
		return fmt.Errorf("%w: %dx%d grid exceeds 16-bit coordinates", core.ErrIndex, g.W, g.H)
	}
	bw := bufio.NewWriter(w)
	var pair [pairSize]byte
	for _, c := range g.LiveCells() {
		binary.LittleEndian.PutUint16(pair[0:2], uint16(c.Row))
		binary.LittleEndian.PutUint16(pair[2:4], uint16(c.Col))
		if _, err := bw.Write(pair[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode marks every cell listed in data alive in g. Cells not listed are
// left as they are. Nothing is written unless the whole payload is valid.
func Decode(data []byte, g *core.Grid) error {
	if rem := len(data) % pairSize; rem != 0 {
		return fmt.Errorf("%w: %d trailing bytes after %d pairs", core.ErrMalformedData, rem, len(data)/pairSize)
	}
	cells := make([]core.Cell, 0, len(data)/pairSize)
	for off := 0; off < len(data); off += pairSize {
		row := int(binary.LittleEndian.Uint16(data[off:]))
		col := int(binary.LittleEndian.Uint16(data[off+2:]))
		if !g.InBounds(row, col) {
			return &core.IndexError{Row: row, Col: col, W: g.W, H: g.H}
		}
		cells = append(cells, core.Cell{Row: row, Col: col})
	}
	for _, c := range cells {
		if err := g.Set(c.Row, c.Col, true); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFrom reads r to the end and decodes it into g.
func DecodeFrom(r io.Reader, g *core.Grid) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrMalformedData, err)
	}
	return Decode(data, g)
}

// EncodeToFile writes the live cells of g to path, replacing any existing file.
func EncodeToFile(path string, g *core.Grid) error {
	data, err := Encode(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DecodeFromFile loads the live cells stored at path into g.
func DecodeFromFile(path string, g *core.Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrMalformedData, err)
	}
	defer f.Close()
	return DecodeFrom(f, g)
}
