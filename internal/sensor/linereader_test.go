package sensor

import (
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"silo-monitor.klederson.com/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pollN(t *testing.T, src Source, n int) []string {
	t.Helper()
	var got []string
	require.Eventually(t, func() bool {
		if line, ok := src.Poll(); ok {
			got = append(got, line)
		}
		return len(got) == n
	}, time.Second, time.Millisecond)
	return got
}

func TestLineReaderDeliversOneLinePerPoll(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewLineReader("test", pr, 8, false)
	defer r.Close()

	go io.WriteString(pw, "12.0cm\r\nERR\n\n")

	assert.Equal(t, []string{"12.0cm", "ERR", ""}, pollN(t, r, 3))

	line, ok := r.Poll()
	assert.False(t, ok)
	assert.Empty(t, line)
	assert.True(t, r.Connected())
}

func TestLineReaderDropsOldestWhenFull(t *testing.T) {
	r := NewLineReader("test", io.NopCloser(strings.NewReader("1cm\n2cm\n3cm\n4cm\n5cm\n")), 2, false)
	require.Eventually(t, func() bool { return !r.Connected() }, time.Second, time.Millisecond)

	assert.Equal(t, uint64(3), r.Dropped())
	assert.Equal(t, []string{"4cm", "5cm"}, pollN(t, r, 2))
	require.NoError(t, r.Close())
}

func TestLineReaderDecodesBestEffort(t *testing.T) {
	r := NewLineReader("test", io.NopCloser(strings.NewReader("12\xff.5cm\n42cm")), 4, false)
	defer r.Close()

	got := pollN(t, r, 2)
	assert.Equal(t, "12.5cm", got[0])
	assert.Equal(t, "42cm", got[1], "unterminated final line is kept at EOF")
	assert.Equal(t, Measured(12.5), ParseLine(got[0]))
}

func TestLineReaderDiscardsOverlongLines(t *testing.T) {
	input := strings.Repeat("x", config.MaxLineBytes+44) + "\n20cm\n"
	r := NewLineReader("test", io.NopCloser(strings.NewReader(input)), 4, false)
	defer r.Close()

	assert.Equal(t, []string{"20cm"}, pollN(t, r, 1))
	require.Eventually(t, func() bool { return !r.Connected() }, time.Second, time.Millisecond)
	_, ok := r.Poll()
	assert.False(t, ok)
}

type chunk struct {
	data string
	err  error
}

// scriptedPort behaves like a serial port with a read timeout: reads
// may come back empty with io.EOF and the line continues afterwards.
type scriptedPort struct {
	chunks []chunk
}

func (p *scriptedPort) Read(b []byte) (int, error) {
	if len(p.chunks) == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	c := p.chunks[0]
	p.chunks = p.chunks[1:]
	return copy(b, c.data), c.err
}

func (p *scriptedPort) Close() error { return nil }

func TestLineReaderFollowsAcrossTimeouts(t *testing.T) {
	port := &scriptedPort{chunks: []chunk{
		{"12", nil},
		{"", io.EOF},
		{".5cm\n", nil},
		{"", io.EOF},
		{"30cm\n", nil},
	}}
	r := NewLineReader("test", port, 4, true)

	assert.Equal(t, []string{"12.5cm", "30cm"}, pollN(t, r, 2))
	require.Eventually(t, func() bool { return !r.Connected() }, time.Second, time.Millisecond)
	assert.NoError(t, r.Close())
}

func TestLineReaderCapsLineGrowingAcrossTimeouts(t *testing.T) {
	var chunks []chunk
	for i := 0; i < 2000; i++ {
		chunks = append(chunks, chunk{"x", nil}, chunk{"", io.EOF})
	}
	chunks = append(chunks, chunk{"\n", nil}, chunk{"7cm\n", nil})
	r := NewLineReader("test", &scriptedPort{chunks: chunks}, 4, true)

	assert.Equal(t, []string{"7cm"}, pollN(t, r, 1))
	require.Eventually(t, func() bool { return !r.Connected() }, time.Second, time.Millisecond)
	_, ok := r.Poll()
	assert.False(t, ok)
}

func TestLineReaderKeepsLineAtLimit(t *testing.T) {
	line := strings.Repeat("1", config.MaxLineBytes-1)
	r := NewLineReader("test", io.NopCloser(strings.NewReader(line+"\n")), 4, false)
	defer r.Close()

	assert.Equal(t, []string{line}, pollN(t, r, 1))
}

func TestLineReaderCloseStopsReader(t *testing.T) {
	pr, _ := io.Pipe()
	r := NewLineReader("test", pr, 4, true)
	assert.True(t, r.Connected())

	require.NoError(t, r.Close())
	assert.False(t, r.Connected())
	require.NoError(t, r.Close(), "second close is a no-op")
}

func TestNoSource(t *testing.T) {
	var src Source = NoSource{Name: "/dev/ttyUSB9 (offline)"}
	line, ok := src.Poll()
	assert.False(t, ok)
	assert.Empty(t, line)
	assert.False(t, src.Connected())
	assert.Equal(t, "/dev/ttyUSB9 (offline)", src.Describe())
	assert.Equal(t, "no sensor", NoSource{}.Describe())
}

func TestDemoLinesStayInCalibratedRange(t *testing.T) {
	d := &demoSensor{near: 10, far: 280, interval: config.DemoInterval, rng: rand.New(rand.NewSource(1))}

	present := 0
	for i := 0; i < 1000; i++ {
		dist := ParseLine(d.line(float64(i) * 0.1))
		if !dist.Valid {
			continue
		}
		present++
		assert.GreaterOrEqual(t, dist.CM, 10.0)
		assert.LessOrEqual(t, dist.CM, 280.0)
	}
	assert.Greater(t, present, 900)
}

func TestOpenDemo(t *testing.T) {
	src := OpenDemo(config.Default())
	assert.Equal(t, "demo", src.Describe())

	pollN(t, src, 1)
	require.NoError(t, src.Close())
	assert.False(t, src.Connected())
}
