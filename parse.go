package splitmerge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Parse reads a Problem as whitespace separated integers:
//
//	L n a_1 ... a_n m b_1 ... b_m
//
// Trailing input is ignored. The result is not validated; see Solve.
func Parse(r io.Reader) (Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("reading %s: %w", what, err)
			}
			return 0, fmt.Errorf("reading %s: %w", what, io.ErrUnexpectedEOF)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidInput, what, err)
		}
		return v, nil
	}
	pieces := func(name string) ([]int, error) {
		n, err := next(name + " count")
		if err != nil {
			return nil, err
		}
		if n < 0 || n > MaxLength {
			return nil, fmt.Errorf("%w: %s count %d out of range [0, %d]", ErrInvalidInput, name, n, MaxLength)
		}
		ds := make([]int, n)
		for i := range ds {
			if ds[i], err = next(fmt.Sprintf("%s piece %d", name, i)); err != nil {
				return nil, err
			}
		}
		return ds, nil
	}

	var p Problem
	var err error
	if p.Length, err = next("line length"); err != nil {
		return Problem{}, err
	}
	if p.A, err = pieces("first"); err != nil {
		return Problem{}, err
	}
	if p.B, err = pieces("second"); err != nil {
		return Problem{}, err
	}
	return p, nil
}
