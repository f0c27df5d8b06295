package sysmon

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Render formats a snapshot as the plain-text resource report printed by
// the monitor command and appended to its log file.
func Render(s *Snapshot) string {
	var b strings.Builder
	bar := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "%s\n", bar)
	fmt.Fprintf(&b, "System Monitor - %s\n", s.Taken.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n", bar)

	b.WriteString("\nCPU Information:\n")
	fmt.Fprintf(&b, "Physical cores: %d\n", s.PhysicalCores)
	fmt.Fprintf(&b, "Logical cores: %d\n", s.LogicalCores)
	for i, percent := range s.CPUPercents {
		fmt.Fprintf(&b, "Core %d: %.1f%%\n", i, percent)
	}

	b.WriteString("\nMemory Information:\n")
	fmt.Fprintf(&b, "Total: %s\n", humanize.IBytes(s.Memory.Total))
	fmt.Fprintf(&b, "Available: %s\n", humanize.IBytes(s.Memory.Available))
	fmt.Fprintf(&b, "Used: %s (%.1f%%)\n", humanize.IBytes(s.Memory.Used), s.Memory.UsedPercent)
	fmt.Fprintf(&b, "Swap Used: %s (%.1f%%)\n", humanize.IBytes(s.Memory.SwapUsed), s.Memory.SwapPercent)

	if len(s.Disks) > 0 {
		b.WriteString("\nDisk Information:\n")
		for _, d := range s.Disks {
			fmt.Fprintf(&b, "\nMount Point: %s\n", d.Mountpoint)
			fmt.Fprintf(&b, "Total: %s\n", humanize.IBytes(d.Total))
			fmt.Fprintf(&b, "Used: %s (%.1f%%)\n", humanize.IBytes(d.Used), d.UsedPercent)
			fmt.Fprintf(&b, "Free: %s\n", humanize.IBytes(d.Free))
		}
	}

	b.WriteString("\nNetwork Information:\n")
	fmt.Fprintf(&b, "Bytes Sent: %s\n", humanize.IBytes(s.Network.BytesSent))
	fmt.Fprintf(&b, "Bytes Received: %s\n", humanize.IBytes(s.Network.BytesRecv))
	fmt.Fprintf(&b, "Packets Sent: %d\n", s.Network.PacketsSent)
	fmt.Fprintf(&b, "Packets Received: %d\n", s.Network.PacketsRecv)

	if len(s.TopProcesses) > 0 {
		b.WriteString("\nTop Processes:\n")
		for _, p := range s.TopProcesses {
			fmt.Fprintf(&b, "%-15.15s PID: %-6d CPU: %5.1f%% MEM: %5.1f%%\n",
				p.Name, p.PID, p.CPUPercent, p.MemPercent)
		}
	}

	return b.String()
}
