// Package main is the entry point for the pulse demo application.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/async-mocks/internal/config"
	"github.com/joe/async-mocks/internal/monitor"
	"github.com/joe/async-mocks/internal/tui"
	"github.com/joe/async-mocks/pkg/sched"
	"github.com/joe/async-mocks/pkg/timing"
)

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Wire the monitor to the real runtime and clock; tests wire the same
	// monitor to the mocks instead.
	runtime := &sched.Runtime{}

	mon := monitor.New(runtime, timing.Clock{})
	mon.Warmup = cfg.Warmup
	mon.Period = cfg.Period
	mon.Count = cfg.Count

	beats := make(chan monitor.Beat, 16)
	mon.SetEventSink(func(beat monitor.Beat) {
		select {
		case beats <- beat:
		default: // a stalled consumer never stalls the monitor
		}
	})

	if err := mon.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	go func() {
		runtime.Wait()
		close(beats)
	}()

	if cfg.Plain {
		for beat := range beats {
			fmt.Printf("beat %d at %s\n", beat.Seq, beat.At.Format(time.RFC3339))
		}

		return
	}

	// Create and run TUI
	model := tui.NewModel(cfg, mon, beats)

	// Only use alt screen if stdout is a TTY
	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	_, err = p.Run()
	mon.Cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
