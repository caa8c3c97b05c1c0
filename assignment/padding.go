package assignment

import (
	"math"

	"github.com/pkg/errors"
)

// validateInputs rejects malformed inputs before any algorithmic work and
// returns the matrix dimensions (numTracks, numDetections).
func validateInputs(costMatrix [][]float64, trackCost, detectionCost []float64) (int, int, error) {
	numTracks := len(costMatrix)
	// With no rows the matrix cannot tell how many detections there are,
	// so the detection cost vector defines it
	numDetections := len(detectionCost)
	if numTracks > 0 {
		numDetections = len(costMatrix[0])
	}
	for i := range costMatrix {
		if len(costMatrix[i]) != numDetections {
			return 0, 0, errors.Errorf("cost matrix is ragged: row %d has %d columns, expected %d", i, len(costMatrix[i]), numDetections)
		}
		for j, v := range costMatrix[i] {
			if math.IsNaN(v) {
				return 0, 0, errors.Errorf("cost matrix contains NaN at (%d, %d)", i, j)
			}
			// Only +Inf is meaningful (forbidden pair); -Inf would break minimization
			if math.IsInf(v, -1) {
				return 0, 0, errors.Errorf("cost matrix contains -Inf at (%d, %d)", i, j)
			}
		}
	}
	if len(trackCost) != numTracks {
		return 0, 0, errors.Errorf("unassigned track cost must have %d entries to match the cost matrix rows, got %d", numTracks, len(trackCost))
	}
	if len(detectionCost) != numDetections {
		return 0, 0, errors.Errorf("unassigned detection cost must have %d entries to match the cost matrix columns, got %d", numDetections, len(detectionCost))
	}
	for i, v := range trackCost {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, errors.Errorf("unassigned track cost must be finite, got %v at index %d", v, i)
		}
	}
	for j, v := range detectionCost {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, errors.Errorf("unassigned detection cost must be finite, got %v at index %d", v, j)
		}
	}
	return numTracks, numDetections, nil
}

// costSentinel computes a stand-in for infinity: strictly greater than any
// finite pairing cost and than any track-plus-detection unassigned cost, so a
// forbidden pair is never cheaper than leaving both sides unmatched. A tight
// bound is used instead of math.MaxFloat64 so the dual-adjustment step of the
// solver never works near overflow.
func costSentinel(costMatrix [][]float64, trackCost, detectionCost []float64) float64 {
	maxCost := 0.0
	for i := range costMatrix {
		for _, v := range costMatrix[i] {
			if !math.IsInf(v, 1) && v > maxCost {
				maxCost = v
			}
		}
	}
	maxTrack := 0.0
	for _, v := range trackCost {
		if v > maxTrack {
			maxTrack = v
		}
	}
	maxDetection := 0.0
	for _, v := range detectionCost {
		if v > maxDetection {
			maxDetection = v
		}
	}
	return maxCost + maxTrack + maxDetection + 1.0
}

// padCostMatrix builds the (M+N)×(M+N) square matrix the solver runs on:
//
//	| cost (Inf → sentinel) | diag(trackCost), sentinel off-diagonal |
//	| diag(detectionCost),  |                                        |
//	| sentinel off-diagonal | zeros (dummy-to-dummy pairs are free)  |
//
// With this layout a perfect matching on the square matrix encodes every
// possible partial assignment of the original rectangular problem.
func padCostMatrix(costMatrix [][]float64, trackCost, detectionCost []float64, sentinel float64) [][]float64 {
	numTracks := len(trackCost)
	numDetections := len(detectionCost)
	dim := numTracks + numDetections
	padded := make([][]float64, dim)
	for i := range padded {
		padded[i] = make([]float64, dim)
	}
	for i := 0; i < numTracks; i++ {
		for j := 0; j < numDetections; j++ {
			v := costMatrix[i][j]
			if math.IsInf(v, 1) {
				v = sentinel
			}
			padded[i][j] = v
		}
		for j := numDetections; j < dim; j++ {
			padded[i][j] = sentinel
		}
		padded[i][numDetections+i] = trackCost[i]
	}
	for i := numTracks; i < dim; i++ {
		for j := 0; j < numDetections; j++ {
			padded[i][j] = sentinel
		}
		padded[i][i-numTracks] = detectionCost[i-numTracks]
	}
	return padded
}
