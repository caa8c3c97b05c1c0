package mot

import "math"

// CostFunc computes the cost of pairing a live track with a fresh detection.
// Lower is better. Return math.Inf(1) to forbid the pair entirely (gating).
type CostFunc[B Blob[B]] func(track, detection B) float64

// CenterDistanceCost pairs by Euclidean distance between the track's
// predicted center and the detection's measured center. Pairs farther apart
// than gatingDistance are forbidden.
func CenterDistanceCost[B Blob[B]](gatingDistance float64) CostFunc[B] {
	return func(track, detection B) float64 {
		dist := euclideanDistance(track.GetPredictedBBox().Center(), detection.GetCenter())
		if dist > gatingDistance {
			return math.Inf(1)
		}
		return dist
	}
}

// IoUCost pairs by bounding box overlap: the cost is 1 - IoU between the
// track's predicted box and the detection's box. Pairs overlapping less than
// minIoU are forbidden.
func IoUCost[B Blob[B]](minIoU float64) CostFunc[B] {
	return func(track, detection B) float64 {
		overlap := IoU(track.GetPredictedBBox(), detection.GetBBox())
		if overlap < minIoU {
			return math.Inf(1)
		}
		return 1.0 - overlap
	}
}

// MahalanobisCost pairs by the Mahalanobis distance between the track's
// Kalman filter state and the detection's bounding box measurement, so the
// filter's own uncertainty drives the gating. Pairs beyond gatingDistance are
// forbidden.
func MahalanobisCost(gatingDistance float64) CostFunc[*BBoxBlob] {
	return func(track, detection *BBoxBlob) float64 {
		dist, err := track.MahalanobisDistanceTo(detection)
		if err != nil || dist > gatingDistance {
			return math.Inf(1)
		}
		return dist
	}
}
