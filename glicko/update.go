package glicko

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Result is one game (or aggregate score) against an opponent in a rating
// period. Score must be in [0,1]: 1=win, 0.5=draw, 0=loss.
type Result struct {
	Opponent Rating
	Score    float64
}

// Update computes the pending rating of r from games against opponents
// with the matching scores. Opponents should hold their ratings as they were
// at the start of the period. r's current state is unchanged until Commit.
//
// On error the pending state is left untouched.
func (s System) Update(r *Rating, opponents []Rating, scores []float64) error {
	if len(opponents) != len(scores) {
		return errors.Wrapf(ErrInputShape, "%d opponents but %d scores", len(opponents), len(scores))
	}
	if len(opponents) == 0 {
		return errors.Wrap(ErrInputShape, "no games in batch")
	}
	if err := r.validate(); err != nil {
		return errors.Wrap(err, "subject")
	}

	var invV float64   // Σ g^2 * E * (1-E)
	var dInner float64 // Σ g * (S - E)
	for i, opp := range opponents {
		if err := opp.validate(); err != nil {
			return errors.Wrapf(err, "opponent %d", i)
		}
		sc := scores[i]
		if !(sc >= 0 && sc <= 1) {
			return errors.Wrapf(ErrInputShape, "score %d out of [0,1]: %v", i, sc)
		}
		gj := g(opp.phi)
		ej := e(gj, r.mu, opp.mu)
		invV += gj * gj * ej * (1.0 - ej)
		dInner += gj * (sc - ej)
	}
	if !(invV > 0) {
		// every E saturated at 0 or 1; the batch carries no information
		return errors.Wrap(ErrInputShape, "batch has zero information")
	}

	v := 1.0 / invV
	delta := v * dInner

	sigmaPrime, err := s.volatility(delta, v, r.phi, r.sigma)
	if err != nil {
		return err
	}
	phiPrime := 1.0 / math.Sqrt(1.0/(r.phi*r.phi+sigmaPrime*sigmaPrime)+invV)
	muPrime := r.mu + phiPrime*phiPrime*dInner

	r.muPrime, r.phiPrime, r.sigmaPrime = muPrime, phiPrime, sigmaPrime
	return nil
}

// UpdateSingle is Update for a period with a single game.
func (s System) UpdateSingle(r *Rating, opponent Rating, score float64) error {
	return s.Update(r, []Rating{opponent}, []float64{score})
}

// UpdateResults is Update with opponents and scores paired up.
func (s System) UpdateResults(r *Rating, results []Result) error {
	opponents := lo.Map(results, func(res Result, _ int) Rating { return res.Opponent })
	scores := lo.Map(results, func(res Result, _ int) float64 { return res.Score })
	return s.Update(r, opponents, scores)
}

// Update is System.Update with DefaultSystem.
func (r *Rating) Update(opponents []Rating, scores []float64) error {
	return DefaultSystem().Update(r, opponents, scores)
}

// UpdateSingle is System.UpdateSingle with DefaultSystem.
func (r *Rating) UpdateSingle(opponent Rating, score float64) error {
	return DefaultSystem().UpdateSingle(r, opponent, score)
}

// UpdateResults is System.UpdateResults with DefaultSystem.
func (r *Rating) UpdateResults(results []Result) error {
	return DefaultSystem().UpdateResults(r, results)
}
