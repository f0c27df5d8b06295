package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/lepinkainen/fsutils/sysmon"
)

// Minimum terminal size the dashboard renders into
const (
	minDashboardWidth  = 40
	minDashboardHeight = 12
)

// topProcessCount is how many processes the dashboard lists.
const topProcessCount = 5

// tickMsg drives the periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a freshly collected sample back into the model.
type snapshotMsg struct {
	snapshot *sysmon.Snapshot
}

// MonitorModel is the full-screen live system dashboard.
type MonitorModel struct {
	interval time.Duration
	history  *sysmon.History
	snapshot *sysmon.Snapshot

	// Layout
	width  int
	height int

	// Control state
	quitting bool
}

// NewMonitorModel creates a dashboard refreshing at the given interval.
func NewMonitorModel(interval time.Duration) MonitorModel {
	if interval <= 0 {
		interval = time.Second
	}
	return MonitorModel{
		interval: interval,
		history:  sysmon.NewHistory(sysmon.DefaultDataPoints),
	}
}

// Init implements tea.Model
func (m MonitorModel) Init() tea.Cmd {
	return tea.Batch(collectSnapshot(), m.tick())
}

func (m MonitorModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func collectSnapshot() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snapshot: sysmon.Collect(topProcessCount)}
	}
}

// Update implements tea.Model
func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(collectSnapshot(), m.tick())

	case snapshotMsg:
		m.snapshot = msg.snapshot
		m.history.Observe(msg.snapshot, m.interval)
	}

	return m, nil
}

// View implements tea.Model
func (m MonitorModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	if m.width > 0 && (m.width < minDashboardWidth || m.height < minDashboardHeight) {
		return fmt.Sprintf("Terminal too small. Min size: %dx%d\n", minDashboardWidth, minDashboardHeight)
	}

	if m.snapshot == nil {
		return "Gathering first sample...\n"
	}

	s := m.snapshot
	var content strings.Builder

	header := fmt.Sprintf("System Monitor - %s", s.Taken.Format("2006-01-02 15:04:05"))
	content.WriteString(HeaderStyle.Render(header))
	content.WriteString("\n")
	content.WriteString("Press 'q' to quit\n\n")

	// CPU
	content.WriteString(SuccessStyle.Render("CPU Usage:"))
	content.WriteString(fmt.Sprintf(" %.1f%% average\n", s.CPUAverage()))
	for i, percent := range s.CPUPercents {
		content.WriteString(fmt.Sprintf("  Core %d: %s %.1f%%\n", i, usageBar(percent), percent))
	}
	content.WriteString("\n")

	// Memory
	content.WriteString(ErrorStyle.Render("Memory Usage:"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("  Total: %s\n", humanize.IBytes(s.Memory.Total)))
	content.WriteString(fmt.Sprintf("  Used:  %s (%.1f%%)\n", humanize.IBytes(s.Memory.Used), s.Memory.UsedPercent))
	content.WriteString(fmt.Sprintf("  Free:  %s\n", humanize.IBytes(s.Memory.Available)))
	content.WriteString("\n")

	// Disk (first partition keeps the dashboard compact)
	if len(s.Disks) > 0 {
		d := s.Disks[0]
		content.WriteString(WarningStyle.Render("Disk Usage:"))
		content.WriteString(fmt.Sprintf(" %s\n", d.Mountpoint))
		content.WriteString(fmt.Sprintf("  Total: %s\n", humanize.IBytes(d.Total)))
		content.WriteString(fmt.Sprintf("  Used:  %s (%.1f%%)\n", humanize.IBytes(d.Used), d.UsedPercent))
		content.WriteString(fmt.Sprintf("  Free:  %s\n", humanize.IBytes(d.Free)))
		content.WriteString("\n")
	}

	// Network
	content.WriteString(InfoStyle.Render("Network:"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("  Bytes Sent: %s\n", humanize.IBytes(s.Network.BytesSent)))
	content.WriteString(fmt.Sprintf("  Bytes Recv: %s\n", humanize.IBytes(s.Network.BytesRecv)))
	if rates := m.history.RecvRate(); len(rates) > 0 {
		recv := rates[len(rates)-1]
		send := m.history.SendRate()[len(rates)-1]
		content.WriteString(fmt.Sprintf("  Rates: ↓ %s/s  ↑ %s/s\n", humanize.IBytes(uint64(recv)), humanize.IBytes(uint64(send))))
	}
	content.WriteString("\n")

	// Processes
	if len(s.TopProcesses) > 0 {
		content.WriteString(ProcessingStyle.Render("Top Processes:"))
		content.WriteString("\n")
		for _, p := range s.TopProcesses {
			content.WriteString(fmt.Sprintf("  %-15.15s PID: %-6d CPU: %5.1f%% MEM: %5.1f%%\n",
				p.Name, p.PID, p.CPUPercent, p.MemPercent))
		}
	}

	return content.String()
}

// usageBar renders a ten-segment bar for a 0-100 percentage.
func usageBar(percent float64) string {
	filled := int(percent / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}
