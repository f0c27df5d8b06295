package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lepinkainen/fsutils/sysmon"
	"github.com/lepinkainen/fsutils/ui"
)

// MonitorCmd prints a plain-text system resource report at a fixed
// interval until interrupted.
type MonitorCmd struct {
	Interval time.Duration `help:"Sampling interval" default:"1s"`
	Count    int           `help:"Number of samples to take, 0 runs until interrupted" default:"0"`
	Log      string        `help:"Append each report to this file" type:"path"`
	Procs    int           `help:"Number of top processes to include" default:"5"`
}

func (cmd *MonitorCmd) Run() error {
	var logFile *os.File
	if cmd.Log != "" {
		f, err := os.OpenFile(cmd.Log, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		defer func() { _ = logFile.Close() }()
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	ticker := time.NewTicker(cmd.Interval)
	defer ticker.Stop()

	taken := 0
	for {
		snapshot := sysmon.Collect(cmd.Procs)
		report := sysmon.Render(snapshot)

		fmt.Println(report)
		if logFile != nil {
			if _, err := logFile.WriteString(report + "\n"); err != nil {
				fmt.Printf("%s\n", ui.WarningStyle.Render(fmt.Sprintf("⚠️  Failed to write log: %v", err)))
			}
		}

		taken++
		if cmd.Count > 0 && taken >= cmd.Count {
			return nil
		}

		select {
		case <-interrupt:
			fmt.Println("Monitoring stopped.")
			return nil
		case <-ticker.C:
		}
	}
}
