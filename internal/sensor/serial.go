package sensor

import (
	"fmt"

	"silo-monitor.klederson.com/internal/config"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tarm/serial"
)

// OpenSerial opens the sensor's serial port and starts reading lines.
// The port's read timeout keeps the reader responsive to Close.
func OpenSerial(cfg config.Config) (*LineReader, error) {
	c := &serial.Config{Name: cfg.Port, Baud: cfg.Baud, ReadTimeout: cfg.ReadTimeout}
	port, err := serial.OpenPort(c)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open serial port %s", cfg.Port)
	}

	log.WithFields(log.Fields{
		"port":    cfg.Port,
		"baud":    cfg.Baud,
		"timeout": cfg.ReadTimeout,
	}).Info("serial port opened")

	name := fmt.Sprintf("%s @ %d", cfg.Port, cfg.Baud)
	return NewLineReader(name, port, cfg.LineBacklog, true), nil
}

// Open returns the serial source, or a NoSource when the port is
// unavailable. Failure to open is logged and never fatal.
func Open(cfg config.Config) Source {
	src, err := OpenSerial(cfg)
	if err != nil {
		log.WithError(err).Warn("running without sensor input")
		return NoSource{Name: cfg.Port + " (offline)"}
	}
	return src
}
