package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulseguard/pulseguard/pkg/domain"
)

// orbitOffset places participant index of total on a ring of the given
// radius, index 0 at the top, evenly spaced clockwise. Caller-provided
// order is trusted; the engine never sorts. total 0 yields the origin.
func orbitOffset(index, total int, radius float64) (x, y float64) {
	if total <= 0 {
		return 0, 0
	}
	angle := float64(index)/float64(total)*2*math.Pi - math.Pi/2
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// renderOrbit draws the participant ring around the boss on a character
// canvas. Terminal cells are roughly twice as tall as wide, so the x
// offset is doubled to keep the ring circular on screen.
func renderOrbit(participants []domain.RaidParticipant, radius int) string {
	if radius < 2 {
		radius = 2
	}
	rows := 2*radius + 1
	cols := 4*radius + 1
	canvas := make([][]string, rows)
	for i := range canvas {
		canvas[i] = make([]string, cols)
		for j := range canvas[i] {
			canvas[i][j] = " "
		}
	}

	cy, cx := radius, 2*radius
	canvas[cy][cx] = dangerStyle.Render("☠")

	for i, p := range participants {
		x, y := orbitOffset(i, len(participants), float64(radius))
		row := cy + int(math.Round(y))
		col := cx + int(math.Round(2*x))
		if row < 0 || row >= rows || col < 0 || col >= cols {
			continue
		}
		canvas[row][col] = avatarStyle(p.AvatarColor).Render(avatarInitial(p.Username))
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(" " + strings.TrimRight(strings.Join(row, ""), " ") + "\n")
	}
	return b.String()
}

// avatarInitial picks the one-cell badge for a participant.
func avatarInitial(username string) string {
	for _, r := range username {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// avatarStyle colors a badge with the server-assigned avatar color.
func avatarStyle(hex string) lipgloss.Style {
	if hex == "" {
		return normalStyle
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex))
}
