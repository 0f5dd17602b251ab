package physics

// scriptedRand replays fixed values so launch direction and angle are predictable
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

// straightLeft launches at angle 0 toward -X
func straightLeft() *scriptedRand {
	return &scriptedRand{floats: []float64{0.5}, ints: []int{0}}
}

// newTestBall returns a 12x12 ball on an 800x600 field with a horizontal leftward launch
func newTestBall(x, y float64) *Ball {
	return NewBall(x, y, 12, 12, 600, DefaultBallProfile, straightLeft())
}
