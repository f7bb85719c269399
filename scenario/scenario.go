// Package scenario replays scripted cursor sessions stored as TOML.
//
// A scenario file holds any number of [[scenario]] tables:
//
//	[[scenario]]
//	name = "wraps forward"
//	elements = [1, 2, 3, 4]
//	steps = ["next", "get = 1", "seek 3", "get = 4", "next", "get = 1"]
package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"gregoryjjb/cyclecursor"
	"gregoryjjb/cyclecursor/circularbuffer"
	"gregoryjjb/cyclecursor/logging"
)

var ErrMismatch = errors.New("unexpected result")

// Number of preceding steps quoted in a failure
const historySize = 5

var plog zerolog.Logger

func init() {
	plog = logging.Component("scenario")
}

type Scenario struct {
	Name     string   `toml:"name"`
	Elements []int    `toml:"elements"`
	Steps    []string `toml:"steps"`
}

type File struct {
	Scenarios []Scenario `toml:"scenario"`
}

func Parse(data []byte) ([]Scenario, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}

	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario #%d has no name", i+1)
		}
	}

	return f.Scenarios, nil
}

func Load(fs afero.Fs, path string) ([]Scenario, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// Run replays every step against a fresh cursor over s.Elements and stops at
// the first step that fails to parse or check.
func Run(s Scenario) error {
	cursor := cyclecursor.FromSlice(s.Elements)
	history := circularbuffer.New[string](historySize)

	for i, raw := range s.Steps {
		step, err := ParseStep(raw)
		if err != nil {
			return fmt.Errorf("scenario %q step %d: %w", s.Name, i+1, err)
		}

		plog.Debug().
			Str("scenario", s.Name).
			Int("step", i+1).
			Str("op", step.String()).
			Msg("Applying step")

		if err := step.Apply(cursor); err != nil {
			trail := "start"
			if history.Len() > 0 {
				trail = strings.Join(history.Slice(), ", ")
			}
			return fmt.Errorf("scenario %q step %d %q (after %s): %w", s.Name, i+1, raw, trail, err)
		}

		history.Push(step.String())
	}

	return nil
}

// Apply performs the step on c and checks its expectation, if any
func (s Step) Apply(c *cyclecursor.Cursor[int]) error {
	switch s.Op {
	case OpNext:
		c.CycleNext()
	case OpPrev:
		c.CyclePrev()
	case OpSeek:
		c.Seek(s.Arg)
	case OpReset:
		c.Reset()

	case OpPeek:
		v, ok := c.Peek(s.Arg)
		return s.Expect.check(v, ok)

	case OpGet:
		v, ok, err := c.Get()
		if s.Expect.Kind == ExpectStale {
			if errors.Is(err, cyclecursor.ErrStalePosition) {
				return nil
			}
			return fmt.Errorf("%w: want stale position error, got %s", ErrMismatch, describe(v, ok, err))
		}
		if err != nil {
			return err
		}
		return s.Expect.check(v, ok)

	case OpPosition:
		p, ok := c.Position()
		return s.Expect.check(p, ok)

	case OpRemove:
		if s.Arg < 0 || s.Arg >= len(c.Elements) {
			return fmt.Errorf("remove %d: %w (length %d)", s.Arg, cyclecursor.ErrOutOfRange, len(c.Elements))
		}
		c.Elements = slices.Delete(c.Elements, s.Arg, s.Arg+1)
	case OpPush:
		c.Elements = append(c.Elements, s.Arg)
	case OpClear:
		c.Elements = c.Elements[:0]

	default:
		return fmt.Errorf("%w: unknown operation %q", ErrSyntax, s.Op)
	}

	return nil
}

func (e Expectation) check(v int, ok bool) error {
	switch e.Kind {
	case ExpectNone:
		if ok {
			return fmt.Errorf("%w: want none, got %d", ErrMismatch, v)
		}
	case ExpectValue:
		if !ok || v != e.Value {
			return fmt.Errorf("%w: want %d, got %s", ErrMismatch, e.Value, describe(v, ok, nil))
		}
	}
	return nil
}

func describe(v int, ok bool, err error) string {
	switch {
	case err != nil:
		return "error: " + err.Error()
	case !ok:
		return "none"
	default:
		return fmt.Sprint(v)
	}
}
