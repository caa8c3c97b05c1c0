package assignment

import "gonum.org/v1/gonum/mat"

// AssignDense adapts Assign for callers holding gonum matrices, which is the
// usual shape of a Kalman/Mahalanobis gating pipeline. The inputs are copied
// into plain slices; the matrices are not mutated.
func AssignDense(costMatrix mat.Matrix, unassignedTrackCost, unassignedDetectionCost mat.Vector) (*Assignment, error) {
	rows, cols := costMatrix.Dims()
	cost := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		cost[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			cost[i][j] = costMatrix.At(i, j)
		}
	}
	return Assign(cost, vecToSlice(unassignedTrackCost), vecToSlice(unassignedDetectionCost))
}

func vecToSlice(v mat.Vector) []float64 {
	if v == nil {
		return []float64{}
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
