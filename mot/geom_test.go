package mot

import (
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
}

func TestRectangleCenter(t *testing.T) {
	rect := NewRect(10.0, 20.0, 30.0, 40.0)
	correctCenter := Point{X: 25.0, Y: 40.0}
	center := rect.Center()
	if center != correctCenter {
		t.Errorf("Wrong center: %v, correct center: %v", center, correctCenter)
	}
}

func TestIoU(t *testing.T) {
	cases := []struct {
		r1            Rectangle
		r2            Rectangle
		correctAnswer float64
	}{
		{
			r1:            NewRect(0, 0, 10, 10),
			r2:            NewRect(0, 0, 10, 10),
			correctAnswer: 1.0,
		},
		{
			r1:            NewRect(0, 0, 10, 10),
			r2:            NewRect(20, 20, 10, 10),
			correctAnswer: 0.0,
		},
		{
			r1:            NewRect(0, 0, 10, 10),
			r2:            NewRect(5, 0, 10, 10),
			correctAnswer: 50.0 / 150.0,
		},
	}
	for k, tc := range cases {
		answer := IoU(tc.r1, tc.r2)
		if math.Abs(answer-tc.correctAnswer) > eps {
			t.Errorf("Case %d: wrong answer: %v, correct answer: %v", k, answer, tc.correctAnswer)
		}
	}
}
