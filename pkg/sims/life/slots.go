package life

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SlotCount is the number of named save slots.
const SlotCount = 10

// ErrBadSlot is returned for a slot number outside [0, SlotCount).
var ErrBadSlot = errors.New("slot out of range")

// Slots maps slot numbers to pattern files inside Dir.
type Slots struct {
	Dir string
}

// Path returns the file backing slot.
func (s Slots) Path(slot int) (string, error) {
	if slot < 0 || slot >= SlotCount {
		return "", fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, fmt.Sprintf("slot-%d.bin", slot)), nil
}

// Exists reports whether slot has a saved pattern.
func (s Slots) Exists(slot int) bool {
	path, err := s.Path(slot)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Save writes the live grid of sim into slot.
func (s Slots) Save(sim *Simulation, slot int) error {
	path, err := s.Path(slot)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return sim.EncodeToFile(path)
}

// Load replaces the live grid of sim with the pattern in slot.
func (s Slots) Load(sim *Simulation, slot int) error {
	path, err := s.Path(slot)
	if err != nil {
		return err
	}
	return sim.DecodeFromFile(path)
}

// Delete removes the file behind slot. Deleting an empty slot is not an error.
func (s Slots) Delete(slot int) error {
	path, err := s.Path(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
