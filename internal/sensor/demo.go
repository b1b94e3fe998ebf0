package sensor

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"silo-monitor.klederson.com/internal/config"

	log "github.com/sirupsen/logrus"
)

// demoSensor fakes an ultrasonic sensor over a silo that slowly fills
// and drains, speaking the same wire format as the real one.
type demoSensor struct {
	near, far float64
	interval  time.Duration
	phase     float64
	rng       *rand.Rand
}

// OpenDemo returns a source fed by a simulated sensor.
func OpenDemo(cfg config.Config) *LineReader {
	pr, pw := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	d := &demoSensor{
		near:     cfg.Near,
		far:      cfg.Far,
		interval: config.DemoInterval,
		phase:    rng.Float64() * 2 * math.Pi,
		rng:      rng,
	}
	go d.loop(ctx, pw)

	return NewLineReader("demo", &demoCloser{PipeReader: pr, cancel: cancel}, cfg.LineBacklog, false)
}

type demoCloser struct {
	*io.PipeReader
	cancel context.CancelFunc
}

func (c *demoCloser) Close() error {
	c.cancel()
	return c.PipeReader.Close()
}

func (d *demoSensor) loop(ctx context.Context, w *io.PipeWriter) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	defer w.Close()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += d.interval.Seconds()
			if _, err := io.WriteString(w, d.line(t)+"\n"); err != nil {
				log.WithError(err).Debug("demo sensor stopped")
				return
			}
		}
	}
}

// line produces the reading at time t (seconds).
func (d *demoSensor) line(t float64) string {
	switch r := d.rng.Float64(); {
	case r < 0.03:
		return ErrorToken
	case r < 0.05:
		return ""
	}

	// Fill oscillates between 5% and 95% over roughly a minute
	fill := 0.5 + 0.45*math.Sin(t*0.1+d.phase)
	dist := d.far - fill*(d.far-d.near)
	dist += (d.rng.Float64() - 0.5) * 3 // +-1.5cm echo noise
	return fmt.Sprintf("%.1fcm", dist)
}
