// Package assignment solves the detection-to-track assignment problem that
// shows up in every frame of a multi-object tracker: given a matrix of
// pairing costs (e.g. Mahalanobis or Euclidean distances between predicted
// track states and fresh detections) and the cost of leaving any track or
// detection unmatched, it computes the globally optimal set of pairs via the
// Munkres (Hungarian) algorithm.
//
// All indices in inputs and outputs are 0-based.
package assignment

// Match pairs a track (row of the cost matrix) with the detection (column)
// assigned to it.
type Match struct {
	Track     int
	Detection int
}

// Assignment is the outcome of one solver call. Every track index appears in
// exactly one of Matches or UnassignedTracks; every detection index appears
// in exactly one of Matches or UnassignedDetections. Matches is ordered by
// ascending track index, the unassigned lists are ascending too.
type Assignment struct {
	Matches              []Match
	UnassignedTracks     []int
	UnassignedDetections []int
}

// Assign computes the minimum-cost assignment of detections to tracks.
//
// costMatrix is M×N: entry (i, j) is the cost of pairing track i with
// detection j, lower is better. math.Inf(1) forbids the pair entirely.
// unassignedTrackCost (length M) and unassignedDetectionCost (length N) give
// the price of leaving each track/detection unmatched and must be finite.
//
// The rectangular problem is turned into a square one by padding the cost
// matrix with dummy rows and columns carrying the unassigned costs, so the
// solver itself always sees a standard square minimum-cost matching problem.
// The call is deterministic: equal inputs produce equal outputs, ties are
// broken by scan order.
func Assign(costMatrix [][]float64, unassignedTrackCost, unassignedDetectionCost []float64) (*Assignment, error) {
	numTracks, numDetections, err := validateInputs(costMatrix, unassignedTrackCost, unassignedDetectionCost)
	if err != nil {
		return nil, err
	}
	sentinel := costSentinel(costMatrix, unassignedTrackCost, unassignedDetectionCost)
	padded := padCostMatrix(costMatrix, unassignedTrackCost, unassignedDetectionCost, sentinel)
	starred := newMunkres(padded).solve()
	return partitionMatching(starred, numTracks, numDetections), nil
}

// AssignUniform is Assign with a single scalar unassigned cost broadcast to
// every track and every detection. An empty cost matrix carries no column
// count, so with zero tracks the result is empty; use Assign with an
// explicit detection cost vector when detections may outlive all tracks.
func AssignUniform(costMatrix [][]float64, unassignedCost float64) (*Assignment, error) {
	numTracks := len(costMatrix)
	numDetections := 0
	if numTracks > 0 {
		numDetections = len(costMatrix[0])
	}
	trackCost := make([]float64, numTracks)
	detectionCost := make([]float64, numDetections)
	for i := range trackCost {
		trackCost[i] = unassignedCost
	}
	for j := range detectionCost {
		detectionCost[j] = unassignedCost
	}
	return Assign(costMatrix, trackCost, detectionCost)
}
