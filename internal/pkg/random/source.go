// Package random is the injectable randomness behind encounter draws, catch
// rolls and opponent action choices.
package random

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// floatResolution is the die size used to build a uniform float in [0, 1).
const floatResolution = 1 << 30

// Source yields uniform draws.
type Source interface {
	// Intn returns a uniform integer in [0, n). n <= 0 yields 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// DiceSource draws through an rpg-toolkit dice roller. A nil roller rolls
// with the toolkit's default roller via dice.NewRoll.
type DiceSource struct {
	roller dice.Roller
}

// NewDiceSource wraps roller. Pass nil for the toolkit default.
func NewDiceSource(roller dice.Roller) *DiceSource {
	return &DiceSource{roller: roller}
}

// Intn rolls a single n-sided die and shifts it to start at zero.
func (s *DiceSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 0
	}
	return s.roll(n) - 1
}

// Float64 rolls a large die and scales it into [0, 1).
func (s *DiceSource) Float64() float64 {
	return float64(s.roll(floatResolution)-1) / floatResolution
}

func (s *DiceSource) roll(size int) int {
	if s.roller != nil {
		v, err := s.roller.Roll(size)
		if err != nil {
			slog.Error("dice roller failed", "size", size, "error", err)
			return 1
		}
		return clamp(v, 1, size)
	}

	r, err := dice.NewRoll(1, size)
	if err != nil {
		slog.Error("failed to create dice roll", "size", size, "error", err)
		return 1
	}
	return clamp(r.GetValue(), 1, size)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
