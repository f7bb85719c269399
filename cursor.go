// Package cyclecursor implements a cyclic, bidirectional and peekable cursor
// over a finite sequence of elements.
//
// A new cursor points at nothing. The first call to CycleNext enters the
// sequence at the first element, the first call to CyclePrev enters it at the
// last element. From there the cursor wraps around at both ends.
package cyclecursor

import (
	"fmt"
)

// Cursor is a cycling, seekable and peekable cursor over Elements.
//
// The zero value is an empty cursor with no position.
type Cursor[T any] struct {
	// Elements is the backing sequence and may be used with any slice
	// operation (append, slices.Delete, slices.Sort, ...).
	//
	// Mutating Elements leaves the cursor position unchanged. If the sequence
	// shrinks below the position, Get reports ErrStalePosition until the
	// cursor is moved again with CycleNext, CyclePrev, Seek or Reset.
	Elements []T

	position   int
	positioned bool
}

// CycleNext moves to the next element, wrapping to the first one after the
// last. On an unpositioned cursor it moves to the first element.
func (c *Cursor[T]) CycleNext() {
	n := len(c.Elements)
	if n == 0 {
		return
	}

	if !c.positioned {
		c.moveTo(0)
		return
	}
	c.moveTo((c.position + 1) % n)
}

// CyclePrev moves to the previous element, wrapping to the last one before
// the first. On an unpositioned cursor it moves to the last element.
func (c *Cursor[T]) CyclePrev() {
	n := len(c.Elements)
	if n == 0 {
		return
	}

	if !c.positioned {
		c.moveTo(n - 1)
		return
	}
	c.moveTo((c.position - 1 + n) % n)
}

// Peek returns the element offset slots away from the current position
// without moving the cursor. An unpositioned cursor peeks as if it sat just
// before the first element, so Peek(1) is the first element.
func (c *Cursor[T]) Peek(offset int) (T, bool) {
	if len(c.Elements) == 0 {
		var value T
		return value, false
	}

	return c.Elements[c.target(offset)], true
}

// Seek moves the cursor offset slots away from the current position. It
// lands on the element Peek(offset) would have returned.
func (c *Cursor[T]) Seek(offset int) {
	if len(c.Elements) == 0 {
		return
	}

	c.moveTo(c.target(offset))
}

// Get returns the element under the cursor. It returns false when the
// cursor has no position yet.
//
// If Elements was shortened below the position since the cursor last moved,
// Get returns a *StalePositionError instead of reading a wrong element.
func (c *Cursor[T]) Get() (T, bool, error) {
	var value T
	if !c.positioned {
		return value, false, nil
	}

	if c.position >= len(c.Elements) {
		err := &StalePositionError{Position: c.position, Length: len(c.Elements)}
		plog.Warn().
			Int("position", c.position).
			Int("length", len(c.Elements)).
			Msg("Cursor read after backing sequence shrank")
		return value, false, err
	}

	return c.Elements[c.position], true, nil
}

// MustGet is like Get but panics on a stale position.
func (c *Cursor[T]) MustGet() (T, bool) {
	value, ok, err := c.Get()
	if err != nil {
		panic(err)
	}
	return value, ok
}

// Position returns the current index and whether the cursor has one.
func (c *Cursor[T]) Position() (int, bool) {
	return c.position, c.positioned
}

// SetPosition points the cursor at index i of Elements.
func (c *Cursor[T]) SetPosition(i int) error {
	if i < 0 || i >= len(c.Elements) {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(c.Elements))
	}

	c.moveTo(i)
	return nil
}

// Reset clears the position, as if the cursor was just created.
func (c *Cursor[T]) Reset() {
	c.position = 0
	c.positioned = false
}

func (c *Cursor[T]) Len() int {
	return len(c.Elements)
}

// Clone returns a cursor with its own copy of Elements at the same position.
func (c *Cursor[T]) Clone() *Cursor[T] {
	clone := FromSlice(c.Elements)
	clone.position = c.position
	clone.positioned = c.positioned
	return clone
}

func (c *Cursor[T]) String() string {
	if !c.positioned {
		return fmt.Sprintf("Cursor{Elements: %v, Position: none}", c.Elements)
	}
	return fmt.Sprintf("Cursor{Elements: %v, Position: %d}", c.Elements, c.position)
}

// target computes the index offset slots away from the current position.
// Callers must check for an empty sequence first.
//
// Negative offsets get a single wrap by the length. The remainder taken
// before the final sum keeps the result in range for offsets beyond one wrap
// in either direction.
func (c *Cursor[T]) target(offset int) int {
	n := len(c.Elements)

	base := n - 1
	if c.positioned {
		base = c.position
	}

	if offset < 0 {
		offset += n
	}

	return (base + n + offset%n) % n
}

func (c *Cursor[T]) moveTo(i int) {
	c.position = i
	c.positioned = true

	plog.Trace().Int("position", i).Int("length", len(c.Elements)).Msg("Cursor moved")
}
