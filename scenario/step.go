package scenario

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("invalid step")

type Op string

const (
	OpNext     Op = "next"
	OpPrev     Op = "prev"
	OpSeek     Op = "seek"
	OpReset    Op = "reset"
	OpPeek     Op = "peek"
	OpGet      Op = "get"
	OpPosition Op = "position"
	OpRemove   Op = "remove"
	OpPush     Op = "push"
	OpClear    Op = "clear"
)

type ExpectKind int

const (
	ExpectNothing ExpectKind = iota
	ExpectValue
	ExpectNone  // no element / no position
	ExpectStale // get only
)

type Expectation struct {
	Kind  ExpectKind
	Value int
}

// Step is one parsed line of a scenario, e.g. "seek -3" or "peek 2 = 4"
type Step struct {
	Op     Op
	Arg    int
	Expect Expectation
}

type opShape struct {
	arg    bool
	expect bool
	none   string
	stale  bool
}

var shapes = map[Op]opShape{
	OpNext:     {},
	OpPrev:     {},
	OpReset:    {},
	OpClear:    {},
	OpSeek:     {arg: true},
	OpRemove:   {arg: true},
	OpPush:     {arg: true},
	OpPeek:     {arg: true, expect: true, none: "none"},
	OpGet:      {expect: true, none: "none", stale: true},
	OpPosition: {expect: true, none: "unset"},
}

func ParseStep(raw string) (Step, error) {
	lhs, rhs, hasExpect := strings.Cut(raw, "=")

	fields := strings.Fields(lhs)
	if len(fields) == 0 {
		return Step{}, fmt.Errorf("%w: empty step", ErrSyntax)
	}

	step := Step{Op: Op(fields[0])}
	shape, ok := shapes[step.Op]
	if !ok {
		return Step{}, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}

	switch {
	case shape.arg && len(fields) != 2:
		return Step{}, fmt.Errorf("%w: %q takes one integer argument", ErrSyntax, step.Op)
	case !shape.arg && len(fields) != 1:
		return Step{}, fmt.Errorf("%w: %q takes no argument", ErrSyntax, step.Op)
	case shape.expect != hasExpect:
		if shape.expect {
			return Step{}, fmt.Errorf("%w: %q needs an expected result", ErrSyntax, step.Op)
		}
		return Step{}, fmt.Errorf("%w: %q has no result to check", ErrSyntax, step.Op)
	}

	if shape.arg {
		arg, err := strconv.Atoi(fields[1])
		if err != nil {
			return Step{}, fmt.Errorf("%w: argument %q: %w", ErrSyntax, fields[1], err)
		}
		step.Arg = arg
	}

	if hasExpect {
		want := strings.TrimSpace(rhs)
		switch {
		case want == shape.none:
			step.Expect.Kind = ExpectNone
		case want == "stale" && shape.stale:
			step.Expect.Kind = ExpectStale
		default:
			v, err := strconv.Atoi(want)
			if err != nil {
				return Step{}, fmt.Errorf("%w: expected result %q", ErrSyntax, want)
			}
			step.Expect = Expectation{Kind: ExpectValue, Value: v}
		}
	}

	return step, nil
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(string(s.Op))

	if shapes[s.Op].arg {
		fmt.Fprintf(&b, " %d", s.Arg)
	}

	switch s.Expect.Kind {
	case ExpectValue:
		fmt.Fprintf(&b, " = %d", s.Expect.Value)
	case ExpectNone:
		fmt.Fprintf(&b, " = %s", shapes[s.Op].none)
	case ExpectStale:
		b.WriteString(" = stale")
	}

	return b.String()
}
