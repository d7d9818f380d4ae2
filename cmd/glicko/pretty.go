package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/rollends/Glicko2/glicko"
)

var useColor bool

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

func paint(code, s string) string {
	if !useColor {
		return s
	}
	return code + s + ansiReset
}

// outcome labels a score, coloured by who came out ahead.
func outcome(s float64) string {
	switch {
	case s >= glicko.Win:
		return paint(ansiGreen, "win")
	case s <= glicko.Loss:
		return paint(ansiRed, "loss")
	case s == glicko.Draw:
		return paint(ansiYellow, "draw")
	}
	return paint(ansiYellow, fmt.Sprintf("%.3f", s))
}

// printPeriod writes the player and the games of the period.
func printPeriod(w io.Writer, player glicko.Rating, results []glicko.Result) {
	wins := lo.CountBy(results, func(r glicko.Result) bool { return r.Score >= glicko.Win })
	losses := lo.CountBy(results, func(r glicko.Result) bool { return r.Score <= glicko.Loss })

	fmt.Fprintf(w, "\n%s %s %s\n", paint(ansiDim, "──"), paint(ansiBold, "Rating period"), paint(ansiDim, "──"))
	printRating(w, "Player →", player)
	for i, res := range results {
		fmt.Fprintf(w, "%s %d %s %s (expected %.3f)\n",
			paint(ansiDim, "game"), i+1, res.Opponent, outcome(res.Score), glicko.ExpectedScore(player, res.Opponent))
	}
	fmt.Fprintf(w, "%s games=%d W/D/L=%d/%d/%d\n",
		paint(ansiDim, "•"), len(results), wins, len(results)-wins-losses, losses)
}

// printRating writes a rating on both scales.
func printRating(w io.Writer, label string, r glicko.Rating) {
	fmt.Fprintf(w, "%s %s σ=%.5f %s\n",
		paint(ansiBold, label), paint(ansiGreen, r.String()), r.Volatility(),
		paint(ansiDim, fmt.Sprintf("(μ=%.4f φ=%.4f)", r.Rating2(), r.Deviation2())))
}
