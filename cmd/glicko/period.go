package main

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/rollends/Glicko2/config"
	"github.com/rollends/Glicko2/glicko"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// period is one rating period read from a JSON file.
type period struct {
	Player      entry  `json:"player"`
	Games       []game `json:"games"`
	IdlePeriods int    `json:"idle_periods"`
}

// entry is a rating on the conventional scale; missing fields take the
// configured defaults.
type entry struct {
	Rating     *float64 `json:"rating,omitempty"`
	Deviation  *float64 `json:"deviation,omitempty"`
	Volatility *float64 `json:"volatility,omitempty"`
}

func newEntry(rating, deviation float64) entry {
	return entry{Rating: lo.ToPtr(rating), Deviation: lo.ToPtr(deviation)}
}

// game is an opponent plus either a numeric score or a result word.
type game struct {
	entry
	Score  *float64 `json:"score,omitempty"`
	Result string   `json:"result,omitempty"`
}

// paperPeriod is the worked example from the Glicko-2 paper.
func paperPeriod() period {
	return period{
		Player: newEntry(1500, 200),
		Games: []game{
			{entry: newEntry(1400, 30), Result: "win"},
			{entry: newEntry(1550, 100), Result: "loss"},
			{entry: newEntry(1700, 300), Result: "loss"},
		},
	}
}

func loadPeriod(path string) (period, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return period{}, errors.Wrap(err, "unable to read period file")
	}

	var p period
	if err := json.Unmarshal(data, &p); err != nil {
		return period{}, errors.Wrapf(err, "unable to decode %s", path)
	}
	if p.IdlePeriods < 0 {
		return period{}, errors.Errorf("idle_periods must not be negative: %d", p.IdlePeriods)
	}

	return p, nil
}

func (e entry) rating(cfg config.Config) (glicko.Rating, error) {
	return glicko.New(
		lo.FromPtrOr(e.Rating, cfg.Glicko.DefaultRating),
		lo.FromPtrOr(e.Deviation, cfg.Glicko.DefaultDeviation),
		lo.FromPtrOr(e.Volatility, cfg.Glicko.DefaultVolatility),
	)
}

func (g game) score() (float64, error) {
	if g.Score != nil {
		return *g.Score, nil
	}
	return glicko.ParseScore(g.Result)
}

func (p period) build(cfg config.Config) (glicko.Rating, []glicko.Result, error) {
	player, err := p.Player.rating(cfg)
	if err != nil {
		return glicko.Rating{}, nil, errors.Wrap(err, "player")
	}

	results := make([]glicko.Result, 0, len(p.Games))
	for i, g := range p.Games {
		opp, err := g.rating(cfg)
		if err != nil {
			return glicko.Rating{}, nil, errors.Wrapf(err, "game %d", i+1)
		}
		s, err := g.score()
		if err != nil {
			return glicko.Rating{}, nil, errors.Wrapf(err, "game %d", i+1)
		}
		results = append(results, glicko.Result{Opponent: opp, Score: s})
	}

	return player, results, nil
}
