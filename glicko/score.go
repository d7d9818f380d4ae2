package glicko

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// --- helpers for mapping game outcomes to scores in [0,1] ---

// ScoreFromWL returns the score for a pure outcome: win=1, tie=0.5, loss=0.
func ScoreFromWL(win bool, tie bool) float64 {
	if tie {
		return Draw
	}
	if win {
		return Win
	}
	return Loss
}

// ParseScore maps "win", "draw" (or "tie") and "loss" to a score.
func ParseScore(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "w", "1":
		return Win, nil
	case "draw", "tie", "d", "0.5":
		return Draw, nil
	case "loss", "l", "0":
		return Loss, nil
	}
	return 0, errors.Wrapf(ErrInputShape, "unknown result %q", s)
}

// ScoreFromMargin maps a normalized margin m (e.g. points won over points
// at stake) to a score in [0,1] with a tanh curve. k controls steepness.
func ScoreFromMargin(m, k float64) float64 {
	return 0.5 + 0.5*math.Tanh(k*m)
}
