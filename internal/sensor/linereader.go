package sensor

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"silo-monitor.klederson.com/internal/config"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LineReader reads newline-terminated lines from a device on its own
// goroutine and buffers up to backlog of them for Poll.
//
// When the buffer is full the oldest pending line is dropped, so a slow
// poll loop always sees recent readings instead of an ever-growing queue.
type LineReader struct {
	name   string
	rc     io.ReadCloser
	follow bool // keep reading after io.EOF (ports with a read timeout)

	lines   chan string
	dropped atomic.Uint64
	alive   atomic.Bool
	closing atomic.Bool

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewLineReader starts reading rc in the background.
func NewLineReader(name string, rc io.ReadCloser, backlog int, follow bool) *LineReader {
	if backlog < 1 {
		backlog = 1
	}
	l := &LineReader{
		name:   name,
		rc:     rc,
		follow: follow,
		lines:  make(chan string, backlog),
		done:   make(chan struct{}),
	}
	l.alive.Store(true)
	go l.loop()
	return l
}

// Poll returns the oldest buffered line, if any.
func (l *LineReader) Poll() (string, bool) {
	select {
	case line := <-l.lines:
		return line, true
	default:
		return "", false
	}
}

// Connected reports whether the reader goroutine is still running.
func (l *LineReader) Connected() bool { return l.alive.Load() }

// Dropped returns how many lines were discarded for backlog.
func (l *LineReader) Dropped() uint64 { return l.dropped.Load() }

func (l *LineReader) Describe() string { return l.name }

// Close stops the reader and waits for its goroutine to exit.
func (l *LineReader) Close() error {
	l.closeOnce.Do(func() {
		l.closing.Store(true)
		l.closeErr = l.rc.Close()
		<-l.done
	})
	return l.closeErr
}

func (l *LineReader) loop() {
	defer close(l.done)
	defer l.alive.Store(false)

	br := bufio.NewReaderSize(l.rc, config.MaxLineBytes)
	var pending []byte
	skipping := false

	for {
		chunk, err := br.ReadSlice('\n')
		pending = append(pending, chunk...)

		// A line may also grow across read timeouts, so cap it here
		size := len(pending)
		if err == nil {
			size-- // terminator
		}
		if size >= config.MaxLineBytes {
			if !skipping {
				log.WithField("source", l.name).Debug("discarding overlong sensor line")
			}
			pending = pending[:0]
			skipping = true
		}

		switch {
		case err == nil:
			if !skipping {
				l.push(decodeLine(pending))
			}
			pending = pending[:0]
			skipping = false

		case errors.Is(err, bufio.ErrBufferFull):
			// Rest of the line follows on the next read.

		case l.follow && !l.closing.Load() && (err == io.EOF || err == io.ErrNoProgress):
			// Read timeout with nothing new; the partial line stays pending.

		default:
			if len(pending) > 0 && !skipping && err == io.EOF {
				l.push(decodeLine(pending))
			}
			if !l.closing.Load() && err != io.EOF {
				log.WithError(err).WithField("source", l.name).Warn("sensor read failed, input is now absent")
			}
			return
		}
	}
}

func (l *LineReader) push(line string) {
	for {
		select {
		case l.lines <- line:
			return
		default:
		}
		select {
		case <-l.lines:
			l.dropped.Add(1)
		default:
		}
	}
}

// decodeLine drops invalid UTF-8 and the line terminator.
func decodeLine(b []byte) string {
	return strings.TrimRight(strings.ToValidUTF8(string(b), ""), "\r\n")
}
