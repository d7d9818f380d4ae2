package glicko

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

// System holds the tuning parameters of the rating system.
type System struct {
	// Tau constrains how fast volatility may change between periods.
	// Sensible values are 0.3 to 1.2.
	Tau float64
	// Epsilon is the convergence tolerance of the volatility solver.
	Epsilon float64
	// MaxIterations bounds the volatility solver, bracketing included.
	MaxIterations int
	// Logger receives solver diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// DefaultSystem returns a System with the paper's suggested parameters.
func DefaultSystem() System {
	return System{
		Tau:           DefaultTau,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

func (s System) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// volatility solves f(x) = 0 for x = ln(sigma'^2) with the Illinois
// algorithm and returns sigma'.
func (s System) volatility(delta, v, phi, sigma float64) (float64, error) {
	switch {
	case !(s.Tau > 0):
		return 0, errors.Wrapf(ErrDivergence, "tau must be positive (tau=%v)", s.Tau)
	case !(s.Epsilon > 0):
		return 0, errors.Wrapf(ErrDivergence, "epsilon must be positive (epsilon=%v)", s.Epsilon)
	case s.MaxIterations < 1:
		return 0, errors.Wrapf(ErrDivergence, "iteration cap must be at least 1 (cap=%d)", s.MaxIterations)
	}

	log := s.logger()
	dS, pS, tS := delta*delta, phi*phi, s.Tau*s.Tau
	a := math.Log(sigma * sigma)
	fn := func(x float64) float64 { return f(x, dS, pS, v, a, tS) }

	it := 0

	// Bracket the root: f(A) and f(B) must differ in sign.
	A := a
	var B float64
	if dS > pS+v {
		B = math.Log(dS - pS - v)
	} else {
		k := 1.0
		for fn(a-k*s.Tau) < 0 {
			if it++; it >= s.MaxIterations {
				log.Warn("volatility bracket not found", "iterations", it, "delta", delta, "v", v)
				return 0, errors.Wrapf(ErrDivergence, "no bracket after %d steps", it)
			}
			k *= 2
		}
		B = a - k*s.Tau
	}
	fA, fB := fn(A), fn(B)
	if !finite(fA) || !finite(fB) {
		return 0, errors.Wrapf(ErrDivergence, "f not finite at bracket [%v, %v]", A, B)
	}
	log.Debug("volatility bracket", "A", A, "B", B, "fA", fA, "fB", fB)

	for math.Abs(B-A) > s.Epsilon {
		if it >= s.MaxIterations {
			log.Warn("volatility did not converge", "iterations", it, "A", A, "B", B)
			return 0, errors.Wrapf(ErrDivergence, "|B-A|=%g after %d iterations", math.Abs(B-A), it)
		}
		it++

		C := A + (A-B)*fA/(fB-fA)
		fC := fn(C)
		if !finite(fC) {
			return 0, errors.Wrapf(ErrDivergence, "f not finite at x=%v", C)
		}
		if fC*fB < 0 {
			A, fA = B, fB
		} else {
			fA /= 2
		}
		B, fB = C, fC
	}

	sigmaPrime := math.Exp(B / 2)
	log.Debug("volatility converged", "iterations", it, "sigma", sigmaPrime)
	return sigmaPrime, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
