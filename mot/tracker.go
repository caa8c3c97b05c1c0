package mot

import (
	"github.com/LdDl/assignments-go/assignment"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tracker is a Multi-object tracker (MOT) resolving detection-to-track
// correspondence each frame with an optimal assignment solver instead of
// greedy nearest-neighbour matching, so two detections can never compete for
// the same track.
// B is the blob type implementing Blob[B] interface.
type Tracker[B Blob[B]] struct {
	// Cost of leaving a single track or detection unmatched for one frame
	unassignedCost float64
	// Max no match (max number of frames when object could not be found again)
	maxNoMatch int
	// Pairing cost between a track and a detection
	costFunc CostFunc[B]
	// Main storage
	Objects map[uuid.UUID]B
	// Track IDs in registration order; map iteration order is randomized,
	// matching must stay deterministic
	order []uuid.UUID
}

// NewTracker creates a new instance of Tracker with specified parameters.
func NewTracker[B Blob[B]](unassignedCost float64, maxNoMatch int, costFunc CostFunc[B]) *Tracker[B] {
	return &Tracker[B]{
		unassignedCost: unassignedCost,
		maxNoMatch:     maxNoMatch,
		costFunc:       costFunc,
		Objects:        make(map[uuid.UUID]B),
		order:          make([]uuid.UUID, 0),
	}
}

// NewTrackerDefault creates a Tracker with default parameters: center
// distance matching gated at 150px, unassigned cost 30px, 75 frames before a
// lost track is dropped.
func NewTrackerDefault[B Blob[B]]() *Tracker[B] {
	return NewTracker(30.0, 75, CenterDistanceCost[B](150.0))
}

// MatchObjects matches detections in the current frame with existing tracks.
// Matched tracks are updated with their detection, unmatched detections
// start new tracks, unmatched tracks age and are eventually removed.
func (tracker *Tracker[B]) MatchObjects(detections []B) error {
	trackIDs := make([]uuid.UUID, len(tracker.order))
	copy(trackIDs, tracker.order)

	for _, id := range trackIDs {
		tracker.Objects[id].Deactivate()
		tracker.Objects[id].PredictNextPosition()
	}

	costMatrix := make([][]float64, len(trackIDs))
	for i, id := range trackIDs {
		track := tracker.Objects[id]
		row := make([]float64, len(detections))
		for j := range detections {
			row[j] = tracker.costFunc(track, detections[j])
		}
		costMatrix[i] = row
	}
	trackCost := make([]float64, len(trackIDs))
	detectionCost := make([]float64, len(detections))
	for i := range trackCost {
		trackCost[i] = tracker.unassignedCost
	}
	for j := range detectionCost {
		detectionCost[j] = tracker.unassignedCost
	}

	result, err := assignment.Assign(costMatrix, trackCost, detectionCost)
	if err != nil {
		return errors.Wrap(err, "Can't solve detection-to-track assignment")
	}

	for _, match := range result.Matches {
		id := trackIDs[match.Track]
		if err := tracker.Objects[id].Update(detections[match.Detection]); err != nil {
			return errors.Wrapf(err, "Can't update track with id %s", id.String())
		}
		// We need to update ID of new object to match existing one
		detections[match.Detection].SetID(id)
	}

	for _, detectionIdx := range result.UnassignedDetections {
		newTrack := detections[detectionIdx]
		newTrack.Activate()
		tracker.Objects[newTrack.GetID()] = newTrack
		tracker.order = append(tracker.order, newTrack.GetID())
	}

	for _, trackIdx := range result.UnassignedTracks {
		tracker.Objects[trackIDs[trackIdx]].IncNoMatch()
	}

	// Remove tracks that were not found for a long time
	kept := tracker.order[:0]
	for _, id := range tracker.order {
		if tracker.Objects[id].GetNoMatchTimes() > tracker.maxNoMatch {
			delete(tracker.Objects, id)
			continue
		}
		kept = append(kept, id)
	}
	tracker.order = kept
	return nil
}

// GetActiveTracks returns tracks matched or created in the latest frame, in
// registration order.
func (tracker *Tracker[B]) GetActiveTracks() []B {
	activeTracks := make([]B, 0, len(tracker.order))
	for _, id := range tracker.order {
		if tracker.Objects[id].GetNoMatchTimes() == 0 {
			activeTracks = append(activeTracks, tracker.Objects[id])
		}
	}
	return activeTracks
}
