package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"

	"github.com/rollends/Glicko2/config"
)

func main() {
	periodFile := flag.String("period", "", "JSON rating period file (default: Glicko-2 paper example)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}

	useColor = !cfg.NoColor
	log := cfg.Logger(os.Stderr)

	if err := run(cfg, log, os.Stdout, *periodFile); err != nil {
		log.Error("rating period failed", tint.Err(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger, out io.Writer, path string) error {
	p := paperPeriod()
	if path != "" {
		var err error
		if p, err = loadPeriod(path); err != nil {
			return err
		}
	}

	player, results, err := p.build(cfg)
	if err != nil {
		return err
	}

	printPeriod(out, player, results)

	if p.IdlePeriods > 0 {
		player.DecayPeriods(p.IdlePeriods)
		log.Info("idle periods applied", "periods", p.IdlePeriods, "deviation", player.Deviation1())
	}

	if len(results) == 0 {
		player.Decay()
		log.Info("no games this period, deviation decayed", "deviation", player.Deviation1())
	} else {
		sys := cfg.System(log)
		if err := sys.UpdateResults(&player, results); err != nil {
			return errors.Wrap(err, "update")
		}
		player.Commit()
	}

	printRating(out, "Result →", player)

	return nil
}
