package cyclecursor

import (
	"errors"
	"fmt"
)

var (
	ErrStalePosition = errors.New("stale cursor position")
	ErrOutOfRange    = errors.New("index out of range")
)

// StalePositionError is returned by Get when the backing sequence was
// shortened below the cursor position. Move the cursor to recover.
type StalePositionError struct {
	Position int
	Length   int
}

func (e *StalePositionError) Error() string {
	return fmt.Sprintf("%s: position %d, length %d; call CycleNext, CyclePrev or Seek to recover", ErrStalePosition, e.Position, e.Length)
}

func (e *StalePositionError) Unwrap() error {
	return ErrStalePosition
}
