package sysmon

import (
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// MemoryStats holds virtual memory and swap usage.
type MemoryStats struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
	SwapTotal   uint64
	SwapUsed    uint64
	SwapPercent float64
}

// DiskStats holds usage for one mounted partition.
type DiskStats struct {
	Mountpoint  string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// NetworkStats holds cumulative network IO counters.
type NetworkStats struct {
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// ProcessStats holds the per-process numbers shown in the top-processes list.
type ProcessStats struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float32
}

// Snapshot is one sample of overall system state.
type Snapshot struct {
	Taken         time.Time
	PhysicalCores int
	LogicalCores  int
	CPUPercents   []float64 // one entry per logical core
	Memory        MemoryStats
	Disks         []DiskStats
	Network       NetworkStats
	TopProcesses  []ProcessStats
}

// CPUAverage returns the mean usage across all cores.
func (s *Snapshot) CPUAverage() float64 {
	if len(s.CPUPercents) == 0 {
		return 0
	}
	var sum float64
	for _, p := range s.CPUPercents {
		sum += p
	}
	return sum / float64(len(s.CPUPercents))
}

// Collect gathers one snapshot. Individual probes that fail leave their
// section zero-valued rather than failing the whole sample, so a snapshot
// is always usable. topN limits the process list; 0 disables it.
func Collect(topN int) *Snapshot {
	s := &Snapshot{Taken: time.Now()}

	if percents, err := cpu.Percent(0, true); err == nil {
		s.CPUPercents = percents
	}
	if n, err := cpu.Counts(false); err == nil {
		s.PhysicalCores = n
	}
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCores = n
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.Memory.Total = vm.Total
		s.Memory.Available = vm.Available
		s.Memory.Used = vm.Used
		s.Memory.UsedPercent = vm.UsedPercent
	}
	if swap, err := mem.SwapMemory(); err == nil {
		s.Memory.SwapTotal = swap.Total
		s.Memory.SwapUsed = swap.Used
		s.Memory.SwapPercent = swap.UsedPercent
	}

	if partitions, err := disk.Partitions(false); err == nil {
		for _, part := range partitions {
			usage, err := disk.Usage(part.Mountpoint)
			if err != nil {
				continue
			}
			s.Disks = append(s.Disks, DiskStats{
				Mountpoint:  part.Mountpoint,
				Total:       usage.Total,
				Used:        usage.Used,
				Free:        usage.Free,
				UsedPercent: usage.UsedPercent,
			})
		}
	}

	if counters, err := gopsnet.IOCounters(false); err == nil && len(counters) > 0 {
		s.Network.BytesSent = counters[0].BytesSent
		s.Network.BytesRecv = counters[0].BytesRecv
		s.Network.PacketsSent = counters[0].PacketsSent
		s.Network.PacketsRecv = counters[0].PacketsRecv
	}

	if topN > 0 {
		s.TopProcesses = topProcesses(topN)
	}

	return s
}

// topProcesses returns the topN processes by CPU usage. Processes that
// disappear or deny access mid-iteration are skipped.
func topProcesses(topN int) []ProcessStats {
	procs, err := process.Processes()
	if err != nil {
		return nil
	}

	var stats []ProcessStats
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		cpuPercent, err := p.CPUPercent()
		if err != nil {
			continue
		}
		memPercent, err := p.MemoryPercent()
		if err != nil {
			continue
		}
		stats = append(stats, ProcessStats{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPercent,
			MemPercent: memPercent,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].CPUPercent > stats[j].CPUPercent
	})

	if len(stats) > topN {
		stats = stats[:topN]
	}
	return stats
}
