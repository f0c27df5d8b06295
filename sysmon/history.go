package sysmon

import "time"

// DefaultDataPoints is how many samples the rolling history keeps; at a
// one-second interval that is one minute of data.
const DefaultDataPoints = 60

// History keeps fixed-capacity rolling series of CPU usage, memory usage
// and network transfer rates derived from successive snapshots.
type History struct {
	capacity int

	cpu      []float64
	memory   []float64
	recvRate []float64
	sendRate []float64

	lastRecv uint64
	lastSent uint64
	hasLast  bool
}

// NewHistory creates a history holding at most capacity samples per series.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultDataPoints
	}
	return &History{capacity: capacity}
}

// Observe folds one snapshot into the history. interval is the time since
// the previous observation and is used to turn the cumulative network
// counters into byte-per-second rates.
func (h *History) Observe(s *Snapshot, interval time.Duration) {
	h.cpu = push(h.cpu, s.CPUAverage(), h.capacity)
	h.memory = push(h.memory, s.Memory.UsedPercent, h.capacity)

	var recvRate, sendRate float64
	if h.hasLast && interval > 0 {
		recvRate = float64(s.Network.BytesRecv-h.lastRecv) / interval.Seconds()
		sendRate = float64(s.Network.BytesSent-h.lastSent) / interval.Seconds()
	}
	h.recvRate = push(h.recvRate, recvRate, h.capacity)
	h.sendRate = push(h.sendRate, sendRate, h.capacity)

	h.lastRecv = s.Network.BytesRecv
	h.lastSent = s.Network.BytesSent
	h.hasLast = true
}

// CPU returns the CPU usage series, oldest first.
func (h *History) CPU() []float64 { return clone(h.cpu) }

// Memory returns the memory usage series, oldest first.
func (h *History) Memory() []float64 { return clone(h.memory) }

// RecvRate returns the receive rate series in bytes per second, oldest first.
func (h *History) RecvRate() []float64 { return clone(h.recvRate) }

// SendRate returns the send rate series in bytes per second, oldest first.
func (h *History) SendRate() []float64 { return clone(h.sendRate) }

// Len returns the number of samples currently held.
func (h *History) Len() int { return len(h.cpu) }

func push(series []float64, v float64, capacity int) []float64 {
	series = append(series, v)
	if len(series) > capacity {
		series = series[len(series)-capacity:]
	}
	return series
}

func clone(series []float64) []float64 {
	out := make([]float64, len(series))
	copy(out, series)
	return out
}
