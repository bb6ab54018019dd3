package assign

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sliceforge/cakecut/internal/geometry"
	"github.com/sliceforge/cakecut/internal/model"
)

// Hungarian performs an exact minimum-cost matching between requests and
// pieces. The cost of a pair is the penalty percentage it would contribute
// (zero within tolerance); leaving a request unassigned costs the fixed
// unassigned penalty, modeled as one dummy column per request.
type Hungarian struct{}

func (Hungarian) Name() string { return "hungarian" }

func (Hungarian) Assign(pieces []geometry.Polygon, requests []float64, tolerance float64) model.Assignment {
	n := len(requests)
	m := len(pieces)
	if n == 0 {
		return model.Assignment{}
	}

	areas := make([]float64, m)
	for j, p := range pieces {
		areas[j] = p.Area()
	}

	// Cost matrix: n requests by m pieces plus n dummy "unassigned" slots.
	cols := m + n
	cost := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			pct := 100 * math.Abs(areas[j]-requests[i]) / requests[i]
			if pct <= tolerance {
				pct = 0
			}
			cost.Set(i, j, pct)
		}
		for j := m; j < cols; j++ {
			cost.Set(i, j, UnassignedPenalty)
		}
	}

	match := solveRectangular(cost)

	assignment := make(model.Assignment, n)
	for i, j := range match {
		if j < m {
			assignment[i] = j
		} else {
			assignment[i] = -1
		}
	}
	return assignment
}

// solveRectangular runs the Hungarian algorithm with potentials on an
// n-by-m cost matrix, n <= m, returning the matched column per row.
func solveRectangular(cost *mat.Dense) []int {
	n, m := cost.Dims()

	// 1-based arrays per the classic formulation.
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)   // p[j]: row matched to column j
	way := make([]int, m+1) // way[j]: previous column on the augmenting path

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	match := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] > 0 {
			match[p[j]-1] = j - 1
		}
	}
	return match
}
