package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"silo-monitor.klederson.com/internal/app"
	"silo-monitor.klederson.com/internal/config"
	"silo-monitor.klederson.com/internal/sensor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDemo     bool
	flagPlain    bool
	flagPort     string
	flagBaud     int
	flagNear     float64
	flagFar      float64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "silo-monitor",
		Short: "Silo Monitor - Terminal fill-level display for an ultrasonic silo sensor",
		Long: `Silo Monitor reads distance lines ("123.4cm" or "ERR") from an ultrasonic
sensor on a serial port, converts them to a fill percentage, smooths the
signal and shows it live in the terminal.

If the serial port cannot be opened the monitor keeps running with no input.
Use --demo for a simulated sensor, or --plain to log readings without a UI.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with a simulated sensor (no serial port required)")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Log readings instead of starting the terminal UI")
	rootCmd.Flags().StringVar(&flagPort, "port", config.DefaultPort, "Serial port the sensor is attached to")
	rootCmd.Flags().IntVar(&flagBaud, "baud", config.DefaultBaud, "Serial baud rate")
	rootCmd.Flags().Float64Var(&flagNear, "near", config.NearDistance, "Distance in cm that reads as 100% full")
	rootCmd.Flags().Float64Var(&flagFar, "far", config.FarDistance, "Distance in cm that reads as empty")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the UI otherwise discards them)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logFile, err := setupLogging()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	cfg.Port = flagPort
	cfg.Baud = flagBaud
	cfg.Near = flagNear
	cfg.Far = flagFar
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	var src sensor.Source
	if flagDemo {
		src = sensor.OpenDemo(cfg)
	} else {
		src = sensor.Open(cfg)
	}
	defer src.Close()

	if flagPlain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.RunPlain(ctx, cfg, src)
	}

	// The UI owns the terminal from here on
	if logFile == nil {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		app.New(cfg, src),
		tea.WithAltScreen(),
		tea.WithFPS(30),
	)
	_, err = p.Run()
	return err
}

func setupLogging() (*os.File, error) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "bad --log-level %q", flagLogLevel)
	}
	log.SetLevel(lvl)

	if flagLogFile == "" {
		log.SetOutput(os.Stderr)
		return nil, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", flagLogFile)
	}
	log.SetOutput(f)
	return f, nil
}
