package mot

import (
	"math"

	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BBoxBlob is a tracked object using 8-D Kalman filter for full bounding box dynamics.
// State vector: [cx, cy, w, h, vx, vy, vw, vh] - center position, size, and velocities.
// It implements Blob[*BBoxBlob] interface.
type BBoxBlob struct {
	id            uuid.UUID
	currentBBox   Rectangle
	predictedBBox Rectangle
	track         []Point
	maxTrackLen   int
	active        bool
	noMatchTimes  int
	diagonal      float64
	tracker       *kalman_filter.KalmanBBox
}

// NewBBoxBlobWithTime creates a new BBoxBlob with specified time step.
func NewBBoxBlobWithTime(currentBbox Rectangle, dt float64) *BBoxBlob {
	center := currentBbox.Center()
	diagonal := math.Sqrt(math.Pow(currentBbox.Width, 2) + math.Pow(currentBbox.Height, 2))

	// Kalman filter props
	uCx := 1.0
	uCy := 1.0
	uW := 0.0
	uH := 0.0
	stdDevA := 2.0
	stdDevMCx := 0.1
	stdDevMCy := 0.1
	stdDevMW := 0.1
	stdDevMH := 0.1
	kf := kalman_filter.NewKalmanBBox(
		dt, uCx, uCy, uW, uH,
		stdDevA, stdDevMCx, stdDevMCy, stdDevMW, stdDevMH,
		kalman_filter.WithStateBBox(center.X, center.Y, currentBbox.Width, currentBbox.Height),
	)

	blob := BBoxBlob{
		id:            uuid.New(),
		currentBBox:   currentBbox,
		predictedBBox: currentBbox,
		track:         make([]Point, 0, 150),
		maxTrackLen:   150,
		active:        false,
		noMatchTimes:  0,
		diagonal:      diagonal,
		tracker:       kf,
	}
	blob.track = append(blob.track, center)
	return &blob
}

// NewBBoxBlob creates a new BBoxBlob with default time step of 1.0.
func NewBBoxBlob(currentBbox Rectangle) *BBoxBlob {
	return NewBBoxBlobWithTime(currentBbox, 1.0)
}

// Activate activates blob
func (blob *BBoxBlob) Activate() {
	blob.active = true
}

// Deactivate deactivates blob
func (blob *BBoxBlob) Deactivate() {
	blob.active = false
}

// GetID returns blob's identifier
func (blob *BBoxBlob) GetID() uuid.UUID {
	return blob.id
}

// SetID sets blob's identifier
func (blob *BBoxBlob) SetID(newID uuid.UUID) {
	blob.id = newID
}

// GetCenter returns blob's current center
func (blob *BBoxBlob) GetCenter() Point {
	return blob.currentBBox.Center()
}

// GetBBox returns blob's current bounding box
func (blob *BBoxBlob) GetBBox() Rectangle {
	return blob.currentBBox
}

// GetPredictedBBox returns predicted bounding box from Kalman filter
func (blob *BBoxBlob) GetPredictedBBox() Rectangle {
	return blob.predictedBBox
}

// GetDiagonal returns blob's estimated diagonal
func (blob *BBoxBlob) GetDiagonal() float64 {
	return blob.diagonal
}

// GetTrack returns blob's current track. Be careful: this is not copy of track, but reference to it
func (blob *BBoxBlob) GetTrack() []Point {
	return blob.track
}

// GetMaxTrackLen returns blob's max track length
func (blob *BBoxBlob) GetMaxTrackLen() int {
	return blob.maxTrackLen
}

// SetMaxTrackLen sets blob's max track length
func (blob *BBoxBlob) SetMaxTrackLen(newMaxTrackLen int) {
	blob.maxTrackLen = newMaxTrackLen
}

// GetNoMatchTimes returns blob's no match times
func (blob *BBoxBlob) GetNoMatchTimes() int {
	return blob.noMatchTimes
}

// IncNoMatch increases blob's no match times
func (blob *BBoxBlob) IncNoMatch() {
	blob.noMatchTimes++
}

// ResetNoMatch resets blob's no match times
func (blob *BBoxBlob) ResetNoMatch() {
	blob.noMatchTimes = 0
}

// DistanceTo returns distance to other blob (center to center)
func (blob *BBoxBlob) DistanceTo(otherBlob *BBoxBlob) float64 {
	return euclideanDistance(blob.GetCenter(), otherBlob.GetCenter())
}

// PredictNextPosition executes Kalman filter prediction step
func (blob *BBoxBlob) PredictNextPosition() {
	blob.tracker.Predict()
	cx, cy, w, h := blob.tracker.GetState()
	blob.predictedBBox = Rectangle{
		X:      cx - w/2.0,
		Y:      cy - h/2.0,
		Width:  w,
		Height: h,
	}
}

// Update updates blob's bounding box and executes Kalman filter update step
func (blob *BBoxBlob) Update(newBlob *BBoxBlob) error {
	// Get measurement from new blob
	measured := newBlob.currentBBox
	measuredCenter := measured.Center()

	// Update Kalman filter with full bbox measurement
	err := blob.tracker.Update(measuredCenter.X, measuredCenter.Y, measured.Width, measured.Height)
	if err != nil {
		return errors.Wrap(err, "Can't update object tracker")
	}

	// Get smoothed state from Kalman filter
	cx, cy, w, h := blob.tracker.GetState()
	blob.currentBBox = Rectangle{
		X:      cx - w/2.0,
		Y:      cy - h/2.0,
		Width:  w,
		Height: h,
	}

	// Update diagonal
	blob.diagonal = math.Sqrt(math.Pow(w, 2) + math.Pow(h, 2))

	// Update remaining properties
	blob.active = true
	blob.noMatchTimes = 0

	// Update track with center position
	blob.track = append(blob.track, Point{X: cx, Y: cy})
	if len(blob.track) > blob.maxTrackLen {
		blob.track = blob.track[1:]
	}
	return nil
}

// GetVelocity returns current velocity estimates (vx, vy, vw, vh) from Kalman filter
func (blob *BBoxBlob) GetVelocity() (float64, float64, float64, float64) {
	return blob.tracker.GetVelocity()
}

// MahalanobisDistanceTo returns the Mahalanobis distance from the filter state
// to the other blob's bounding box measurement
func (blob *BBoxBlob) MahalanobisDistanceTo(otherBlob *BBoxBlob) (float64, error) {
	otherBBox := otherBlob.currentBBox
	otherCenter := otherBBox.Center()
	return blob.tracker.MahalanobisDistance(otherCenter.X, otherCenter.Y, otherBBox.Width, otherBBox.Height)
}
