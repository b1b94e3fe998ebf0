package app

import (
	"context"
	"time"

	"silo-monitor.klederson.com/internal/config"
	"silo-monitor.klederson.com/internal/level"
	"silo-monitor.klederson.com/internal/sensor"

	log "github.com/sirupsen/logrus"
)

// RunPlain drives the same pipeline as the TUI without a terminal UI,
// logging a line whenever the displayed level changes.
// It returns when ctx is done.
func RunPlain(ctx context.Context, cfg config.Config, src sensor.Source) error {
	params := level.NewParams(cfg)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	log.WithFields(log.Fields{
		"source":   src.Describe(),
		"interval": cfg.PollInterval,
	}).Info("polling sensor")

	var (
		state   level.State
		last    level.Sample
		logged  bool
		dropped uint64
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		var sample level.Sample
		sample, state = pollOnce(params, src, state)

		if sample.Raw != "" {
			log.WithField("raw", sample.Raw).Debug("sensor line")
		}
		if !logged || sample.Shown != last.Shown {
			log.WithFields(log.Fields{
				"distance": sample.Distance.String(),
				"level":    sample.Shown,
				"high":     sample.High,
			}).Info("silo level")
			logged = true
		}
		last = sample

		if d := src.Dropped(); d != dropped {
			log.WithField("dropped", d).Warn("sensor lines dropped, poll loop is behind")
			dropped = d
		}
	}
}
