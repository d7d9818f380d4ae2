package glicko

import "github.com/pkg/errors"

var (
	// ErrInputShape is returned when opponents and scores do not line up,
	// the batch is empty or a score is outside [0,1].
	ErrInputShape = errors.New("glicko: invalid input shape")

	// ErrDivergence is returned when the volatility solver cannot converge
	// within its iteration cap.
	ErrDivergence = errors.New("glicko: volatility did not converge")

	// ErrInvalidState is returned for a rating with a non-positive deviation
	// or volatility, or a non-finite value.
	ErrInvalidState = errors.New("glicko: invalid rating state")
)
