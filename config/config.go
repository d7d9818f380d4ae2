package config

import (
	"io"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"

	"github.com/rollends/Glicko2/glicko"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Config struct {
	Glicko Glicko

	Debug   bool `env:"DEBUG" envDefault:"false"`
	NoColor bool `env:"NO_COLOR" envDefault:"false"`
}

// Glicko holds the rating system parameters.
type Glicko struct {
	Tau           float64 `env:"GLICKO_TAU" envDefault:"0.5" validate:"gt=0"`
	Epsilon       float64 `env:"GLICKO_EPSILON" envDefault:"0.000001" validate:"gt=0"`
	MaxIterations int     `env:"GLICKO_MAX_ITERATIONS" envDefault:"100" validate:"gte=1"`

	DefaultRating     float64 `env:"GLICKO_DEFAULT_RATING" envDefault:"1500"`
	DefaultDeviation  float64 `env:"GLICKO_DEFAULT_DEVIATION" envDefault:"350" validate:"gt=0"`
	DefaultVolatility float64 `env:"GLICKO_DEFAULT_VOLATILITY" envDefault:"0.06" validate:"gt=0"`
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, errors.Wrap(err, "env.Parse")
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	return errors.Wrap(validate.Struct(c), "invalid config")
}

// System builds the rating system. logger may be nil.
func (c Config) System(logger *slog.Logger) glicko.System {
	return glicko.System{
		Tau:           c.Glicko.Tau,
		Epsilon:       c.Glicko.Epsilon,
		MaxIterations: c.Glicko.MaxIterations,
		Logger:        logger,
	}
}

// NewRating builds a rating with the configured default volatility.
func (c Config) NewRating(rating, deviation float64) (glicko.Rating, error) {
	return glicko.New(rating, deviation, c.Glicko.DefaultVolatility)
}

// DefaultRating builds a rating at the configured defaults.
func (c Config) DefaultRating() (glicko.Rating, error) {
	return c.NewRating(c.Glicko.DefaultRating, c.Glicko.DefaultDeviation)
}

func (c Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: c.NoColor,
	}))
}
