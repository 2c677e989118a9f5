package linsys

import (
	"math"

	"github.com/pkg/errors"
)

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

type branchFrame struct {
	position Point
	heading  float64
}

// TurtleState is the drawing state shared by all turtle variants: a
// position, a heading in degrees (counterclockwise, 0 pointing right), the
// recorded trace and a stack of saved (position, heading) pairs for
// bracketed branches. Stack entries are snapshots; moving after a push
// never alters the saved state.
type TurtleState struct {
	Position Point
	Heading  float64
	trace    []Point
	stack    []branchFrame
}

// Move advances the position by step units along the current heading.
func (s *TurtleState) Move(step float64) {
	rad := s.Heading * math.Pi / 180
	s.Position.X += step * math.Cos(rad)
	s.Position.Y += step * math.Sin(rad)
}

// Turn rotates the heading by delta degrees.
func (s *TurtleState) Turn(delta float64) {
	s.Heading += delta
}

// Record appends the current position to the trace.
func (s *TurtleState) Record() {
	s.trace = append(s.trace, s.Position)
}

// Push saves the current position and heading on the branch stack.
func (s *TurtleState) Push() {
	s.stack = append(s.stack, branchFrame{position: s.Position, heading: s.Heading})
}

// Pop restores the most recently saved position and heading, failing with
// ErrEmptyStack when no branch is open.
func (s *TurtleState) Pop() error {
	if len(s.stack) == 0 {
		return ErrEmptyStack
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.Position = top.position
	s.Heading = top.heading
	return nil
}

// Trace returns the recorded positions in drawing order.
func (s *TurtleState) Trace() []Point {
	return s.trace
}

// Turtle interprets one symbol at a time against its drawing state.
// Symbols outside a variant's vocabulary are ignored, so a mixed-alphabet
// string can be fed without filtering first.
type Turtle interface {
	Feed(s Symbol) error
	Trace() []Point
}

// Interpret feeds symbols to t strictly left to right, stopping at the
// first error. On error the interpretation is aborted; no usable partial
// trace is produced.
func Interpret(t Turtle, symbols string) error {
	for i, r := range symbols {
		if err := t.Feed(Symbol(r)); err != nil {
			return errors.Wrapf(err, "symbol %q at index %d", r, i)
		}
	}
	return nil
}
