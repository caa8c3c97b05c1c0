package mot

import (
	"testing"

	"github.com/google/uuid"
)

func TestTrackerTwoObjects(t *testing.T) {
	// Two well separated objects moving towards each other
	bboxesIterations := make([][]Rectangle, 0, 10)
	for frame := 0; frame < 10; frame++ {
		shift := float64(frame) * 5.0
		bboxesIterations = append(bboxesIterations, []Rectangle{
			NewRect(100.0+shift, 100.0, 50.0, 50.0),
			NewRect(400.0-shift, 400.0, 60.0, 60.0),
		})
	}

	tracker := NewTracker(30.0, 5, CenterDistanceCost[*KalmanBlob](150.0))
	dt := 1.0 / 25.0 // emulate 25 fps

	for _, iteration := range bboxesIterations {
		blobs := make([]*KalmanBlob, len(iteration))
		for j, bbox := range iteration {
			blobs[j] = NewKalmanBlobWithTime(bbox, dt)
		}
		if err := tracker.MatchObjects(blobs); err != nil {
			t.Error(err)
			return
		}
	}

	correctNumOfObjects := 2
	if len(tracker.Objects) != correctNumOfObjects {
		t.Errorf("Incorrect number of objects: %d, expected: %d", len(tracker.Objects), correctNumOfObjects)
	}
	activeTracks := tracker.GetActiveTracks()
	if len(activeTracks) != correctNumOfObjects {
		t.Errorf("Incorrect number of active tracks: %d, expected: %d", len(activeTracks), correctNumOfObjects)
	}
	for _, track := range activeTracks {
		// One initial point plus one per matched frame
		if len(track.GetTrack()) < 5 {
			t.Errorf("Track %s history too short: %d points", track.GetID(), len(track.GetTrack()))
		}
	}
}

func TestTrackerKeepsIdentity(t *testing.T) {
	tracker := NewTracker(30.0, 5, CenterDistanceCost[*KalmanBlob](150.0))

	first := NewKalmanBlob(NewRect(100, 100, 50, 50))
	if err := tracker.MatchObjects([]*KalmanBlob{first}); err != nil {
		t.Error(err)
		return
	}
	trackID := first.GetID()

	for frame := 1; frame <= 5; frame++ {
		next := NewKalmanBlob(NewRect(100.0+float64(frame)*3.0, 100, 50, 50))
		if err := tracker.MatchObjects([]*KalmanBlob{next}); err != nil {
			t.Error(err)
			return
		}
		// Matched detection inherits the track ID
		if next.GetID() != trackID {
			t.Errorf("Frame %d: detection got ID %s, expected track ID %s", frame, next.GetID(), trackID)
		}
	}
	if len(tracker.Objects) != 1 {
		t.Errorf("Incorrect number of objects: %d, expected: 1", len(tracker.Objects))
	}
}

func TestTrackerDropsLostObject(t *testing.T) {
	maxNoMatch := 2
	tracker := NewTracker(30.0, maxNoMatch, CenterDistanceCost[*KalmanBlob](150.0))

	// Both objects present
	for frame := 0; frame < 4; frame++ {
		shift := float64(frame) * 4.0
		blobs := []*KalmanBlob{
			NewKalmanBlob(NewRect(100.0+shift, 100, 50, 50)),
			NewKalmanBlob(NewRect(400.0, 400.0+shift, 60, 60)),
		}
		if err := tracker.MatchObjects(blobs); err != nil {
			t.Error(err)
			return
		}
	}
	if len(tracker.Objects) != 2 {
		t.Errorf("Incorrect number of objects: %d, expected: 2", len(tracker.Objects))
		return
	}

	// Second object disappears
	for frame := 4; frame < 4+maxNoMatch+2; frame++ {
		shift := float64(frame) * 4.0
		blobs := []*KalmanBlob{
			NewKalmanBlob(NewRect(100.0+shift, 100, 50, 50)),
		}
		if err := tracker.MatchObjects(blobs); err != nil {
			t.Error(err)
			return
		}
	}
	if len(tracker.Objects) != 1 {
		t.Errorf("Lost object was not dropped: %d objects, expected: 1", len(tracker.Objects))
	}
}

func TestTrackerRegistersNewObject(t *testing.T) {
	tracker := NewTracker(30.0, 5, CenterDistanceCost[*KalmanBlob](150.0))

	if err := tracker.MatchObjects([]*KalmanBlob{NewKalmanBlob(NewRect(100, 100, 50, 50))}); err != nil {
		t.Error(err)
		return
	}
	if len(tracker.Objects) != 1 {
		t.Errorf("Incorrect number of objects: %d, expected: 1", len(tracker.Objects))
		return
	}

	// A second object appears far from the first one
	blobs := []*KalmanBlob{
		NewKalmanBlob(NewRect(102, 100, 50, 50)),
		NewKalmanBlob(NewRect(800, 800, 40, 40)),
	}
	if err := tracker.MatchObjects(blobs); err != nil {
		t.Error(err)
		return
	}
	if len(tracker.Objects) != 2 {
		t.Errorf("Incorrect number of objects: %d, expected: 2", len(tracker.Objects))
	}
}

func TestTrackerEmptyFrames(t *testing.T) {
	tracker := NewTracker(30.0, 1, CenterDistanceCost[*KalmanBlob](150.0))

	// Empty frame on an empty tracker is a no-op
	if err := tracker.MatchObjects([]*KalmanBlob{}); err != nil {
		t.Error(err)
		return
	}
	if len(tracker.Objects) != 0 {
		t.Errorf("Incorrect number of objects: %d, expected: 0", len(tracker.Objects))
	}

	if err := tracker.MatchObjects([]*KalmanBlob{NewKalmanBlob(NewRect(100, 100, 50, 50))}); err != nil {
		t.Error(err)
		return
	}
	// Two empty frames exceed maxNoMatch=1
	for i := 0; i < 2; i++ {
		if err := tracker.MatchObjects([]*KalmanBlob{}); err != nil {
			t.Error(err)
			return
		}
	}
	if len(tracker.Objects) != 0 {
		t.Errorf("Object should expire after empty frames, got %d objects", len(tracker.Objects))
	}
}

func TestTrackerWithIoUCost(t *testing.T) {
	tracker := NewTracker(0.6, 5, IoUCost[*BBoxBlob](0.1))

	var trackID uuid.UUID
	for frame := 0; frame < 8; frame++ {
		shift := float64(frame) * 5.0
		blob := NewBBoxBlob(NewRect(100.0+shift, 100.0, 80.0, 80.0))
		if err := tracker.MatchObjects([]*BBoxBlob{blob}); err != nil {
			t.Error(err)
			return
		}
		if frame == 0 {
			trackID = blob.GetID()
		} else if blob.GetID() != trackID {
			t.Errorf("Frame %d: identity lost, got %s, expected %s", frame, blob.GetID(), trackID)
		}
	}
	if len(tracker.Objects) != 1 {
		t.Errorf("Incorrect number of objects: %d, expected: 1", len(tracker.Objects))
	}
}
