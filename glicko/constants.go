// Package glicko implements the Glicko-2 rating system.
//
// Ratings are stored on the Glicko-2 scale (mu, phi, sigma) and can be read
// back on the conventional 1500-centred scale. Updates are two-phase: Update
// computes a pending rating and Commit makes it current, so a whole rating
// period can be evaluated against a consistent snapshot of opponents.
//
// See http://www.glicko.net/glicko/glicko2.pdf for the algorithm.
package glicko

// --- scale & defaults (paper values) ---
const (
	Scale             = 173.7178 // rating scale between r<->mu
	DefaultRating     = 1500.0
	DefaultDeviation  = 350.0
	DefaultVolatility = 0.06
)

// --- solver defaults ---
const (
	DefaultTau           = 0.5
	DefaultEpsilon       = 1e-6
	DefaultMaxIterations = 100
)

// Scores for a single game.
const (
	Loss = 0.0
	Draw = 0.5
	Win  = 1.0
)

func toMuPhi(r, rd float64) (mu, phi float64)   { return (r - DefaultRating) / Scale, rd / Scale }
func fromMuPhi(mu, phi float64) (r, rd float64) { return mu*Scale + DefaultRating, phi * Scale }
