package glicko_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollends/Glicko2/glicko"
)

func TestNew(t *testing.T) {
	rq := require.New(t)

	r, err := glicko.New(1700, 300, 0.05)
	rq.NoError(err)
	rq.InDelta(1700, r.Rating1(), 1e-9)
	rq.InDelta(300, r.Deviation1(), 1e-9)
	rq.InDelta(200/glicko.Scale, r.Rating2(), 1e-12)
	rq.InDelta(300/glicko.Scale, r.Deviation2(), 1e-12)
	rq.Equal(0.05, r.Volatility())

	rating, deviation, volatility := r.Pending()
	rq.InDelta(1700, rating, 1e-9)
	rq.InDelta(300, deviation, 1e-9)
	rq.Equal(0.05, volatility)
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name       string
		rating     float64
		deviation  float64
		volatility float64
	}{
		{"zero deviation", 1500, 0, 0.06},
		{"negative deviation", 1500, -10, 0.06},
		{"zero volatility", 1500, 350, 0},
		{"NaN volatility", 1500, 350, math.NaN()},
		{"infinite rating", math.Inf(1), 350, 0.06},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := glicko.New(test.rating, test.deviation, test.volatility)
			require.ErrorIs(t, err, glicko.ErrInvalidState)
		})
	}

	assert.Panics(t, func() { glicko.MustNew(1500, 0, 0.06) })
}

func TestDefault(t *testing.T) {
	r := glicko.Default()

	assert.Equal(t, 0.0, r.Rating2())
	assert.InDelta(t, 1500, r.Rating1(), 1e-9)
	assert.InDelta(t, 350, r.Deviation1(), 1e-9)
	assert.Equal(t, glicko.DefaultVolatility, r.Volatility())
}

func TestScaleConsistency(t *testing.T) {
	for _, rating := range []float64{0, 800, 1500, 1623.5, 2900} {
		r := glicko.MustNew(rating, 120, glicko.DefaultVolatility)
		assert.InDelta(t, r.Rating1(), r.Rating2()*glicko.Scale+1500, 1e-9)
		assert.InDelta(t, r.Deviation1(), r.Deviation2()*glicko.Scale, 1e-9)
	}
}

func TestCopy(t *testing.T) {
	rq := require.New(t)

	r := glicko.MustNew(1500, 200, glicko.DefaultVolatility)
	rq.NoError(r.UpdateSingle(glicko.MustNew(1400, 30, glicko.DefaultVolatility), glicko.Win))

	cp := r.Copy()
	value := r
	r.Commit()

	// both copies still hold the pre-commit state and the same pending state
	rq.InDelta(1500, cp.Rating1(), 1e-9)
	rq.InDelta(1500, value.Rating1(), 1e-9)
	cp.Commit()
	value.Commit()
	rq.Equal(r, *cp)
	rq.Equal(r, value)
}

func TestString(t *testing.T) {
	r := glicko.MustNew(1500, 200, glicko.DefaultVolatility)
	assert.Equal(t, "[1500:200]", r.String())
}

func TestDecay(t *testing.T) {
	rq := require.New(t)

	r := glicko.MustNew(1600, 50, glicko.DefaultVolatility)
	phi := r.Deviation2()
	r.Decay()

	rq.InDelta(math.Sqrt(phi*phi+0.06*0.06), r.Deviation2(), 1e-12)
	rq.InDelta(1600, r.Rating1(), 1e-9)
	rq.Equal(glicko.DefaultVolatility, r.Volatility())

	// commit without update must not undo the decay
	decayed := r.Deviation2()
	r.Commit()
	rq.Equal(decayed, r.Deviation2())
}

func TestDecayMonotoneAndCommutes(t *testing.T) {
	rq := require.New(t)

	a := glicko.MustNew(1500, 80, 0.09)
	b := a
	prev := a.Deviation2()
	for i := 0; i < 10; i++ {
		a.Decay()
		rq.GreaterOrEqual(a.Deviation2(), prev)
		prev = a.Deviation2()
	}

	b.DecayPeriods(4)
	b.DecayPeriods(6)
	rq.InDelta(a.Deviation2(), b.Deviation2(), 1e-12)

	// n periods of decay add n*sigma^2 to phi^2
	c := glicko.MustNew(1500, 80, 0.09)
	phi := c.Deviation2()
	c.DecayPeriods(10)
	rq.InDelta(phi*phi+10*0.09*0.09, c.Deviation2()*c.Deviation2(), 1e-12)
}

func TestCommitIdempotent(t *testing.T) {
	rq := require.New(t)

	r := glicko.MustNew(1500, 200, glicko.DefaultVolatility)
	rq.NoError(r.UpdateSingle(glicko.MustNew(1550, 100, glicko.DefaultVolatility), glicko.Loss))

	r.Commit()
	once := r
	r.Commit()
	rq.Equal(once, r)
}
