package random

// Scripted replays fixed draws in order. Exhausted queues return zero, and
// integer draws are reduced modulo n so a script never goes out of range.
type Scripted struct {
	ints   []int
	floats []float64
}

// NewScripted creates a source that replays ints for Intn and floats for Float64.
func NewScripted(ints []int, floats []float64) *Scripted {
	return &Scripted{ints: ints, floats: floats}
}

// Intn returns the next scripted integer
func (s *Scripted) Intn(n int) int {
	if n <= 0 || len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next scripted float
func (s *Scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// Remaining reports how many draws are left in each queue.
func (s *Scripted) Remaining() (ints, floats int) {
	return len(s.ints), len(s.floats)
}
