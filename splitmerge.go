// Package splitmerge counts the shortest ways of turning one partition of
// a line into another by elementary merge and split operations.
//
// A partition of the line [0, L] is given as a sequence of positive piece
// lengths. Solve reports the minimum number of operations and the number
// of distinct orderings of those operations, modulo modular.Mod.
package splitmerge

import (
	"errors"
	"fmt"

	"github.com/glaslos/splitmerge/modular"
	"github.com/glaslos/splitmerge/zigzag"
)

// MaxLength bounds the line length and the number of pieces per partition.
const MaxLength = 3000

// ErrInvalidInput is wrapped by every error caused by a malformed problem.
var ErrInvalidInput = errors.New("invalid input")

// A Problem describes two partitions of the line [0, Length].
type Problem struct {
	Length int
	A, B   []int // piece lengths, left to right
}

// Validate checks the sizes of p. The pieces themselves are checked by Mark.
func (p Problem) Validate() error {
	if p.Length < 1 || p.Length > MaxLength {
		return fmt.Errorf("%w: line length %d out of range [1, %d]", ErrInvalidInput, p.Length, MaxLength)
	}
	if len(p.A) > MaxLength || len(p.B) > MaxLength {
		return fmt.Errorf("%w: more than %d pieces", ErrInvalidInput, MaxLength)
	}
	return nil
}

// A Result is the answer to a Problem.
type Result struct {
	Operations int    // minimum number of operations
	Ways       uint64 // orderings achieving the minimum, mod modular.Mod

	// Contributions lists every segment in line order.
	Contributions []Contribution
}

// String formats r as "<operations> <ways>".
func (r Result) String() string {
	return fmt.Sprintf("%d %d", r.Operations, r.Ways)
}

// Solve computes the minimum operation count for p and the number of
// orderings achieving it, using the process-wide zigzag table.
func Solve(p Problem) (Result, error) {
	return solve(p, zigzag.Default)
}

func solve(p Problem, tab *zigzag.Table) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	a, err := Mark(p.Length, p.A)
	if err != nil {
		return Result{}, fmt.Errorf("first partition: %w", err)
	}
	b, err := Mark(p.Length, p.B)
	if err != nil {
		return Result{}, fmt.Errorf("second partition: %w", err)
	}
	if !a[p.Length] || !b[p.Length] {
		return Result{}, fmt.Errorf("%w: partitions must both end at %d", ErrInvalidInput, p.Length)
	}

	segs := Partition(a, b)
	cs := make([]Contribution, len(segs))
	for i, s := range segs {
		cs[i] = contribute(s, a, b, tab)
	}
	return aggregate(cs), nil
}

// aggregate combines independent segments. Each segment's orderings are
// divided by the factorial of its operation count, and the product is
// multiplied by the factorial of the total: a multinomial coefficient
// counting the interleavings of the per-segment sequences.
func aggregate(cs []Contribution) Result {
	r := Result{Ways: 1, Contributions: cs}
	for _, c := range cs {
		if c.Trap {
			continue
		}
		r.Operations += c.Operations
		r.Ways = modular.Mul(r.Ways, c.Orderings)
		r.Ways = modular.Divide(r.Ways, modular.Factorial(c.Operations))
	}
	r.Ways = modular.Mul(r.Ways, modular.Factorial(r.Operations))
	return r
}
