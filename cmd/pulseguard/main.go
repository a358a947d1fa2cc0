package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseguard/pulseguard/internal/config"
	"github.com/pulseguard/pulseguard/internal/host"
	"github.com/pulseguard/pulseguard/internal/tui"
	"github.com/pulseguard/pulseguard/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("pulseguard " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	identity := host.ResolveIdentity(cfg.UserID, cfg.Username)
	haptics := host.NewHaptics(cfg.Haptics)
	c := client.New(cfg.APIURL)

	app := tui.NewApp(c, haptics, identity, cfg.PollInterval)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func printHelp() {
	fmt.Print(`pulseguard — terminal client for the Pulse Guardian raid

usage:
  pulseguard            launch the raid screen
  pulseguard version    print version

environment:
  PULSE_API_URL         raid service base URL
  PULSE_USER_ID         identity override (numeric)
  PULSE_USERNAME        display name override
  PULSE_POLL_INTERVAL   raid refresh cadence (default 3s)
  PULSE_HAPTICS         set to false to silence terminal feedback
`)
}
