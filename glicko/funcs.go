package glicko

import "math"

const pi2 = math.Pi * math.Pi

// g reduces the weight of an opponent with deviation phi.
func g(phi float64) float64 { return 1.0 / math.Sqrt(1.0+3.0*phi*phi/pi2) }

// e is the expected score of a player at mu against an opponent at muOpp,
// with gOpp = g(opponent phi).
func e(gOpp, mu, muOpp float64) float64 {
	return 1.0 / (1.0 + math.Exp(-gOpp*(mu-muOpp)))
}

// f is the function whose root x = ln(sigma'^2) gives the new volatility.
// dS, pS and tS are delta^2, phi^2 and tau^2.
func f(x, dS, pS, v, a, tS float64) float64 {
	ex := math.Exp(x)
	num := ex * (dS - pS - v - ex)
	den := pS + v + ex
	return num/(2.0*den*den) - (x-a)/tS
}

// ExpectedScore returns the probability-like expected score of subject
// against opponent, weighted by the opponent's deviation.
func ExpectedScore(subject, opponent Rating) float64 {
	return e(g(opponent.phi), subject.mu, opponent.mu)
}
