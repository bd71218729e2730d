// Package zigzag computes Entringer numbers and Euler zigzag numbers
// modulo modular.Mod.
//
// E(n, k) is the number of down-up permutations of {1, ..., n+1} that
// start with k+1. The zigzag number E_n = E(n, n) counts the alternating
// permutations of n elements: 1, 1, 1, 2, 5, 16, 61, 272, ...
package zigzag

import (
	"sync"

	"github.com/alphadose/haxmap"

	"github.com/glaslos/splitmerge/modular"
)

// Table caches Entringer numbers row by row.
// Rows are only ever appended, so an entry is either present with its
// final value or absent; zero-valued entries are cached like any other.
// A Table is safe for concurrent use.
type Table struct {
	mu sync.Mutex
	// rows[n] has length n+1 and holds E(n, 0..n).
	rows [][]uint32

	numbers *haxmap.Map[int, uint64]
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{numbers: haxmap.New[int, uint64]()}
}

// Entringer returns E(n, k) mod modular.Mod, and 0 outside 0 <= k <= n.
func (t *Table) Entringer(n, k int) uint64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.grow(n)
	return uint64(t.rows[n][k])
}

// Number returns the zigzag number E_n mod modular.Mod, and 0 for
// negative n.
func (t *Table) Number(n int) uint64 {
	if n < 0 {
		return 0
	}
	if v, ok := t.numbers.Get(n); ok {
		return v
	}
	v := t.Entringer(n, n)
	t.numbers.Set(n, v)
	return v
}

// Rows reports how many rows have been computed so far.
func (t *Table) Rows() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// grow extends the table up to and including row n.
// E(0, 0) = 1, E(n, 0) = 0 and E(n, k) = E(n, k-1) + E(n-1, n-k).
func (t *Table) grow(n int) {
	for len(t.rows) <= n {
		m := len(t.rows)
		row := make([]uint32, m+1)
		if m == 0 {
			row[0] = 1
		} else {
			prev := t.rows[m-1]
			for k := 1; k <= m; k++ {
				row[k] = uint32((uint64(row[k-1]) + uint64(prev[m-k])) % modular.Mod)
			}
		}
		t.rows = append(t.rows, row)
	}
}

// Default is the process-wide table used by Entringer and Number.
var Default = NewTable()

// Entringer returns E(n, k) from the default table.
func Entringer(n, k int) uint64 { return Default.Entringer(n, k) }

// Number returns E_n from the default table.
func Number(n int) uint64 { return Default.Number(n) }
