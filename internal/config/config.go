package config

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

const (
	// Serial connection
	DefaultPort  = "/dev/ttyUSB0"
	DefaultBaud  = 9600
	ReadTimeout  = 500 * time.Millisecond
	LineBacklog  = 64  // Lines buffered between reader and poll tick
	MaxLineBytes = 256 // Longer unterminated input is discarded

	// Calibration (sensor mounted at the top of the silo)
	FarDistance  = 280.0 // cm -> 0%
	NearDistance = 10.0  // cm -> 100%

	// Signal processing
	SmoothingAlpha = 0.3 // EMA smoothing factor (30% new, 70% old)
	HighThreshold  = 90  // Rounded percent at or above which the indicator turns red

	// Display
	PollInterval  = 50 * time.Millisecond
	HistoryLength = 120 // Smoothed levels kept for the sparkline
	AspectRatio   = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)

	// Demo mode
	DemoInterval = 100 * time.Millisecond

	// App
	AppName    = "SILO-MONITOR"
	AppVersion = "1.0"
)

// Config carries everything the pipeline needs, fixed at start.
type Config struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration

	Near float64
	Far  float64

	Alpha         float64
	HighThreshold int
	PollInterval  time.Duration

	LineBacklog   int
	HistoryLength int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:          DefaultPort,
		Baud:          DefaultBaud,
		ReadTimeout:   ReadTimeout,
		Near:          NearDistance,
		Far:           FarDistance,
		Alpha:         SmoothingAlpha,
		HighThreshold: HighThreshold,
		PollInterval:  PollInterval,
		LineBacklog:   LineBacklog,
		HistoryLength: HistoryLength,
	}
}

// Validate reports the first invariant the configuration breaks.
func (c Config) Validate() error {
	if math.IsInf(c.Near, 0) || math.IsInf(c.Far, 0) {
		return errors.New("calibration distances must be finite")
	}
	// Written as negations so NaN fails too
	if !(c.Far > c.Near) {
		return errors.Errorf("far distance %.1f cm must be greater than near distance %.1f cm", c.Far, c.Near)
	}
	if !(c.Alpha >= 0 && c.Alpha <= 1) {
		return errors.Errorf("smoothing alpha %v outside [0, 1]", c.Alpha)
	}
	if c.HighThreshold < 0 || c.HighThreshold > 100 {
		return errors.Errorf("high threshold %d outside [0, 100]", c.HighThreshold)
	}
	if c.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}
	if c.Baud <= 0 {
		return errors.Errorf("invalid baud rate %d", c.Baud)
	}
	if c.LineBacklog < 1 {
		return errors.Errorf("line backlog %d must be at least 1", c.LineBacklog)
	}
	if c.HistoryLength < 1 {
		return errors.Errorf("history length %d must be at least 1", c.HistoryLength)
	}
	return nil
}
