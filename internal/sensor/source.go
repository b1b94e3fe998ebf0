package sensor

// Source hands the polling loop at most one raw line per call.
// Poll never blocks.
type Source interface {
	Poll() (line string, ok bool)
	Connected() bool
	Dropped() uint64
	Describe() string
	Close() error
}

// NoSource stands in when the serial port could not be opened.
// Every poll comes back empty, so every tick is Absent.
type NoSource struct {
	Name string
}

func (s NoSource) Poll() (string, bool) { return "", false }
func (s NoSource) Connected() bool      { return false }
func (s NoSource) Dropped() uint64      { return 0 }
func (s NoSource) Close() error         { return nil }

func (s NoSource) Describe() string {
	if s.Name == "" {
		return "no sensor"
	}
	return s.Name
}
