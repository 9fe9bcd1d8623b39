package core

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation reports a grid that could not be allocated.
	ErrAllocation = errors.New("grid allocation failed")
	// ErrIndex reports a coordinate outside the grid.
	ErrIndex = errors.New("cell index out of range")
	// ErrNoSnapshot is returned when restoring before anything was saved.
	ErrNoSnapshot = errors.New("no snapshot saved")
	// ErrMalformedData reports unreadable or truncated live-cell data.
	ErrMalformedData = errors.New("malformed live-cell data")
	// ErrConfigParse reports a config source that could not be read or parsed.
	ErrConfigParse = errors.New("malformed config")
)

// IndexError describes an out-of-range cell access.
type IndexError struct {
	Row, Col int
	W, H     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.W, e.H)
}

// Is lets errors.Is match IndexError against ErrIndex.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }
