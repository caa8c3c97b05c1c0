package assignment

import "sort"

// partitionMatching maps a perfect matching on the padded square matrix back
// into the original track/detection index space. A starred cell in the real
// block is a match, one in the track-padding block means the track stayed
// unmatched, one in the detection-padding block means the detection stayed
// unmatched, and dummy-to-dummy pairs carry no meaning.
func partitionMatching(starred [][]bool, numTracks, numDetections int) *Assignment {
	result := &Assignment{
		Matches:              []Match{},
		UnassignedTracks:     []int{},
		UnassignedDetections: []int{},
	}
	dim := numTracks + numDetections
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if !starred[r][c] {
				continue
			}
			switch {
			case r < numTracks && c < numDetections:
				result.Matches = append(result.Matches, Match{Track: r, Detection: c})
			case r < numTracks:
				result.UnassignedTracks = append(result.UnassignedTracks, r)
			case c < numDetections:
				result.UnassignedDetections = append(result.UnassignedDetections, c)
			}
		}
	}
	// Row-major traversal already orders Matches and UnassignedTracks by
	// track index; unassigned detections arrive ordered by dummy row
	sort.Ints(result.UnassignedDetections)
	return result
}
