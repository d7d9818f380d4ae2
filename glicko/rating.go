package glicko

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Rating is a player's strength estimate on the Glicko-2 scale.
//
// The zero value is not a valid rating; use New or Default. A Rating is a
// plain value: assigning it copies both the current and the pending state.
type Rating struct {
	mu    float64 // rating
	phi   float64 // deviation
	sigma float64 // volatility

	// pending values written by Update, made current by Commit
	muPrime    float64
	phiPrime   float64
	sigmaPrime float64
}

// New builds a rating from conventional-scale values.
func New(rating, deviation, volatility float64) (Rating, error) {
	mu, phi := toMuPhi(rating, deviation)
	r := Rating{mu: mu, phi: phi, sigma: volatility}
	if err := r.validate(); err != nil {
		return Rating{}, errors.Wrapf(err, "new rating %.2f/%.2f/%g", rating, deviation, volatility)
	}
	r.resetPending()
	return r, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(rating, deviation, volatility float64) Rating {
	r, err := New(rating, deviation, volatility)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns a fresh player at the standard defaults (1500, 350, 0.06).
func Default() Rating {
	return MustNew(DefaultRating, DefaultDeviation, DefaultVolatility)
}

// Copy makes a snapshot of r, pending state included.
func (r *Rating) Copy() *Rating {
	cp := *r
	return &cp
}

// Rating1 returns the conventional (Glicko-1 scale) rating.
func (r Rating) Rating1() float64 {
	rating, _ := fromMuPhi(r.mu, r.phi)
	return rating
}

// Deviation1 returns the conventional (Glicko-1 scale) deviation.
func (r Rating) Deviation1() float64 {
	_, rd := fromMuPhi(r.mu, r.phi)
	return rd
}

// Rating2 returns mu.
func (r Rating) Rating2() float64 { return r.mu }

// Deviation2 returns phi.
func (r Rating) Deviation2() float64 { return r.phi }

// Volatility returns sigma.
func (r Rating) Volatility() float64 { return r.sigma }

// Pending returns the uncommitted state on the conventional scale. It equals
// the current state until Update has run.
func (r Rating) Pending() (rating, deviation, volatility float64) {
	rating, deviation = fromMuPhi(r.muPrime, r.phiPrime)
	return rating, deviation, r.sigmaPrime
}

// Decay grows the deviation by one rating period without games.
// Rating and volatility are unchanged. Decay resets the pending state to
// the decayed current state, so an Update that has not been committed yet
// is discarded.
func (r *Rating) Decay() {
	r.phi = math.Sqrt(r.phi*r.phi + r.sigma*r.sigma)
	r.resetPending()
}

// DecayPeriods applies n inactive periods.
func (r *Rating) DecayPeriods(n int) {
	for i := 0; i < n; i++ {
		r.Decay()
	}
}

// Commit makes the pending state current.
func (r *Rating) Commit() {
	r.mu, r.phi, r.sigma = r.muPrime, r.phiPrime, r.sigmaPrime
}

// String formats the rating as [rating:deviation] on the conventional scale.
func (r Rating) String() string {
	return fmt.Sprintf("[%.6g:%.6g]", r.Rating1(), r.Deviation1())
}

func (r *Rating) resetPending() {
	r.muPrime, r.phiPrime, r.sigmaPrime = r.mu, r.phi, r.sigma
}

func (r Rating) validate() error {
	switch {
	case math.IsNaN(r.mu) || math.IsInf(r.mu, 0):
		return errors.Wrapf(ErrInvalidState, "rating is not finite (mu=%v)", r.mu)
	case !(r.phi > 0) || math.IsInf(r.phi, 0):
		return errors.Wrapf(ErrInvalidState, "deviation must be positive (phi=%v)", r.phi)
	case !(r.sigma > 0) || math.IsInf(r.sigma, 0):
		return errors.Wrapf(ErrInvalidState, "volatility must be positive (sigma=%v)", r.sigma)
	}
	return nil
}
