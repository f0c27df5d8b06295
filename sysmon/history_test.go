package sysmon

import (
	"testing"
	"time"
)

func sampleSnapshot(cpu float64, memPercent float64, recv, sent uint64) *Snapshot {
	return &Snapshot{
		CPUPercents: []float64{cpu},
		Memory:      MemoryStats{UsedPercent: memPercent},
		Network:     NetworkStats{BytesRecv: recv, BytesSent: sent},
	}
}

func TestHistory_Observe(t *testing.T) {
	h := NewHistory(3)

	h.Observe(sampleSnapshot(10, 50, 1000, 500), time.Second)
	h.Observe(sampleSnapshot(20, 55, 3000, 1500), time.Second)

	if h.Len() != 2 {
		t.Fatalf("Expected 2 samples, got %d", h.Len())
	}

	cpu := h.CPU()
	if cpu[0] != 10 || cpu[1] != 20 {
		t.Errorf("Unexpected CPU series: %v", cpu)
	}

	// The first observation has no baseline, so rates start at 0
	recv := h.RecvRate()
	if recv[0] != 0 {
		t.Errorf("Expected first recv rate 0, got %f", recv[0])
	}
	if recv[1] != 2000 {
		t.Errorf("Expected recv rate 2000 B/s, got %f", recv[1])
	}

	send := h.SendRate()
	if send[1] != 1000 {
		t.Errorf("Expected send rate 1000 B/s, got %f", send[1])
	}
}

func TestHistory_CapacityTrim(t *testing.T) {
	h := NewHistory(3)

	for i := 0; i < 10; i++ {
		h.Observe(sampleSnapshot(float64(i), 0, 0, 0), time.Second)
	}

	if h.Len() != 3 {
		t.Fatalf("Expected history trimmed to 3 samples, got %d", h.Len())
	}

	cpu := h.CPU()
	if cpu[0] != 7 || cpu[2] != 9 {
		t.Errorf("Expected newest 3 samples [7 8 9], got %v", cpu)
	}
}

func TestHistory_DefaultCapacity(t *testing.T) {
	h := NewHistory(0)

	for i := 0; i < DefaultDataPoints+10; i++ {
		h.Observe(sampleSnapshot(1, 1, 0, 0), time.Second)
	}

	if h.Len() != DefaultDataPoints {
		t.Errorf("Expected default capacity %d, got %d", DefaultDataPoints, h.Len())
	}
}

func TestHistory_ReturnedSlicesAreCopies(t *testing.T) {
	h := NewHistory(5)
	h.Observe(sampleSnapshot(42, 0, 0, 0), time.Second)

	cpu := h.CPU()
	cpu[0] = 99

	if h.CPU()[0] != 42 {
		t.Error("Mutating a returned series must not affect the history")
	}
}

func TestSnapshot_CPUAverage(t *testing.T) {
	tests := []struct {
		name     string
		percents []float64
		expected float64
	}{
		{name: "Empty", percents: nil, expected: 0},
		{name: "Single core", percents: []float64{40}, expected: 40},
		{name: "Multiple cores", percents: []float64{10, 20, 30, 40}, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Snapshot{CPUPercents: tt.percents}
			if got := s.CPUAverage(); got != tt.expected {
				t.Errorf("CPUAverage() = %f, expected %f", got, tt.expected)
			}
		})
	}
}
