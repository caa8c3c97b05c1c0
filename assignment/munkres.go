package assignment

import "math"

// munkres holds the per-call working state of the Munkres (Hungarian)
// algorithm: a mutable copy of the cost matrix plus the star/prime/cover
// bookkeeping. Starred zeros form the current partial matching; primed zeros
// are candidates discovered while searching for an augmenting path. Nothing
// here outlives one solve call.
type munkres struct {
	dim        int
	costs      [][]float64
	starred    [][]bool
	primed     [][]bool
	rowCovered []bool
	colCovered []bool
}

// newMunkres takes ownership of costs and mutates it during the solve.
func newMunkres(costs [][]float64) *munkres {
	dim := len(costs)
	m := &munkres{
		dim:        dim,
		costs:      costs,
		starred:    make([][]bool, dim),
		primed:     make([][]bool, dim),
		rowCovered: make([]bool, dim),
		colCovered: make([]bool, dim),
	}
	for i := 0; i < dim; i++ {
		m.starred[i] = make([]bool, dim)
		m.primed[i] = make([]bool, dim)
	}
	return m
}

// solve returns the minimum-cost perfect matching as the final star matrix:
// exactly one true per row and per column. All scans run in row-major order,
// so ties between equal-cost matchings resolve the same way on every call.
func (m *munkres) solve() [][]bool {
	if m.dim == 0 {
		return nil
	}
	m.reduceRows()
	m.starInitial()
	for !m.coverStarredColumns() {
		for {
			row, col, found := m.findUncoveredZero()
			if !found {
				m.createZero()
				continue
			}
			m.primed[row][col] = true
			starCol, hasStar := m.starInRow(row)
			if !hasStar {
				m.augment(row, col)
				break
			}
			m.rowCovered[row] = true
			m.colCovered[starCol] = false
		}
	}
	return m.starred
}

// reduceRows subtracts each row's minimum from the row, leaving at least one
// zero per row and no negative entries.
func (m *munkres) reduceRows() {
	for i := 0; i < m.dim; i++ {
		rowMin := m.costs[i][0]
		for j := 1; j < m.dim; j++ {
			if m.costs[i][j] < rowMin {
				rowMin = m.costs[i][j]
			}
		}
		for j := 0; j < m.dim; j++ {
			m.costs[i][j] -= rowMin
		}
	}
}

// starInitial greedily seeds the matching: a zero is starred when neither
// its row nor its column holds a star yet.
func (m *munkres) starInitial() {
	rowHasStar := make([]bool, m.dim)
	colHasStar := make([]bool, m.dim)
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			if m.costs[i][j] == 0 && !rowHasStar[i] && !colHasStar[j] {
				m.starred[i][j] = true
				rowHasStar[i] = true
				colHasStar[j] = true
			}
		}
	}
}

// coverStarredColumns covers every column containing a starred zero and
// reports whether all columns are covered, i.e. the matching is perfect.
// Rows are always uncovered when this runs.
func (m *munkres) coverStarredColumns() bool {
	covered := 0
	for j := 0; j < m.dim; j++ {
		m.colCovered[j] = false
		for i := 0; i < m.dim; i++ {
			if m.starred[i][j] {
				m.colCovered[j] = true
				covered++
				break
			}
		}
	}
	return covered == m.dim
}

// findUncoveredZero scans row-major for a zero not covered by any row or
// column cover.
func (m *munkres) findUncoveredZero() (int, int, bool) {
	for i := 0; i < m.dim; i++ {
		if m.rowCovered[i] {
			continue
		}
		for j := 0; j < m.dim; j++ {
			if !m.colCovered[j] && m.costs[i][j] == 0 {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// createZero is the dual-adjustment step, run when no uncovered zero is
// left: the minimum uncovered entry is added to every doubly-covered entry
// and subtracted from every doubly-uncovered one, producing at least one new
// uncovered zero without changing which matchings are optimal.
func (m *munkres) createZero() {
	minUncovered := math.MaxFloat64
	for i := 0; i < m.dim; i++ {
		if m.rowCovered[i] {
			continue
		}
		for j := 0; j < m.dim; j++ {
			if !m.colCovered[j] && m.costs[i][j] < minUncovered {
				minUncovered = m.costs[i][j]
			}
		}
	}
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			if m.rowCovered[i] && m.colCovered[j] {
				m.costs[i][j] += minUncovered
			} else if !m.rowCovered[i] && !m.colCovered[j] {
				m.costs[i][j] -= minUncovered
			}
		}
	}
}

// augment grows the matching by one along the alternating path that starts
// at the primed zero (row, col): each primed zero on the path becomes
// starred, each starred zero sharing a column with it becomes unstarred.
// Afterwards primes and row covers are reset for the next round.
func (m *munkres) augment(row, col int) {
	for {
		starRow, hasStar := m.starInColumn(col)
		m.starred[row][col] = true
		if !hasStar {
			break
		}
		m.starred[starRow][col] = false
		// The path always continues through a primed zero in the row
		// that just lost its star
		primeCol, _ := m.primeInRow(starRow)
		row, col = starRow, primeCol
	}
	for i := 0; i < m.dim; i++ {
		m.rowCovered[i] = false
		for j := 0; j < m.dim; j++ {
			m.primed[i][j] = false
		}
	}
}

func (m *munkres) starInRow(row int) (int, bool) {
	for j := 0; j < m.dim; j++ {
		if m.starred[row][j] {
			return j, true
		}
	}
	return 0, false
}

func (m *munkres) starInColumn(col int) (int, bool) {
	for i := 0; i < m.dim; i++ {
		if m.starred[i][col] {
			return i, true
		}
	}
	return 0, false
}

func (m *munkres) primeInRow(row int) (int, bool) {
	for j := 0; j < m.dim; j++ {
		if m.primed[row][j] {
			return j, true
		}
	}
	return 0, false
}
