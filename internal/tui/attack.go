package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseguard/pulseguard/internal/host"
	"github.com/pulseguard/pulseguard/pkg/client"
	"github.com/pulseguard/pulseguard/pkg/domain"
)

type attackField int

const (
	fieldDuration attackField = iota
	fieldCalories
	fieldDistance
	fieldHeartRate
	numAttackFields
)

var attackFieldLabels = [numAttackFields]string{"minutes", "kcal", "km", "avg hr"}

// attackResolvedMsg carries the server's resolution of one attack.
type attackResolvedMsg struct {
	result *domain.AttackResult
	err    error
}

// attackModel is the workout form overlay on the main screen plus the
// submission path. Validation runs before any network call; the
// optimistic merge and forced refresh happen at the App level where the
// user record and poller live.
type attackModel struct {
	client     *client.Client
	open       bool
	sportIdx   int
	fields     [numAttackFields]string
	focus      attackField
	submitting bool
	status     string
	lastResult *domain.AttackResult
}

func newAttackModel(c *client.Client) attackModel {
	m := attackModel{client: c}
	m.resetFields()
	return m
}

// resetFields restores the simulated-tracker defaults.
func (m *attackModel) resetFields() {
	m.fields = [numAttackFields]string{"35", "300", "5.0", "140"}
	m.focus = fieldDuration
}

// show opens the form overlay.
func (m *attackModel) show() {
	m.open = true
	m.status = ""
	m.lastResult = nil
}

// sport returns the currently selected sport type.
func (m attackModel) sport() domain.SportType {
	return domain.SportTypes[m.sportIdx]
}

func (m attackModel) updateKeys(msg tea.KeyMsg, userID int64, haptics host.Haptics) (attackModel, tea.Cmd) {
	if m.submitting {
		// One attack round trip at a time; esc still closes.
		if msg.String() == "esc" {
			m.open = false
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.open = false
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % numAttackFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numAttackFields) % numAttackFields
	case "h", "left":
		m.sportIdx = (m.sportIdx - 1 + len(domain.SportTypes)) % len(domain.SportTypes)
		haptics.Select()
	case "l", "right":
		m.sportIdx = (m.sportIdx + 1) % len(domain.SportTypes)
		haptics.Select()
	case "backspace":
		f := &m.fields[m.focus]
		*f = editRune(*f, "backspace")
	case "enter", "ctrl+s":
		return m.submit(userID)
	default:
		key := msg.String()
		if len(key) == 1 && (key[0] >= '0' && key[0] <= '9' || key == ".") {
			m.fields[m.focus] += key
		}
	}
	return m, nil
}

// submit validates the form and, if it passes, sends the attack.
// Validation failures block before any network call.
func (m attackModel) submit(userID int64) (attackModel, tea.Cmd) {
	fields, err := parseAttackFields(m.fields)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	req, err := domain.BuildAttackRequest(userID, m.sport(), fields)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.submitting = true
	m.status = ""
	c := m.client
	return m, func() tea.Msg {
		res, err := c.Attack(context.Background(), req)
		return attackResolvedMsg{result: res, err: err}
	}
}

// parseAttackFields converts raw form strings to numbers. Empty fields
// parse as zero so the per-sport required-field rules decide whether
// that is acceptable.
func parseAttackFields(raw [numAttackFields]string) (domain.AttackFields, error) {
	var f domain.AttackFields
	var err error
	if f.DurationMinutes, err = parseIntField(raw[fieldDuration], "minutes"); err != nil {
		return domain.AttackFields{}, err
	}
	if f.Calories, err = parseIntField(raw[fieldCalories], "kcal"); err != nil {
		return domain.AttackFields{}, err
	}
	if raw[fieldDistance] != "" {
		if f.DistanceKM, err = strconv.ParseFloat(raw[fieldDistance], 64); err != nil {
			return domain.AttackFields{}, fmt.Errorf("km is not a number")
		}
	}
	if f.AvgHeartRate, err = parseIntField(raw[fieldHeartRate], "avg hr"); err != nil {
		return domain.AttackFields{}, err
	}
	return f, nil
}

func parseIntField(s, label string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s is not a number", label)
	}
	return n, nil
}

// View renders the attack form overlay.
func (m attackModel) View() string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("log a workout") + "\n\n")

	// Sport picker line.
	var sports []string
	for i, s := range domain.SportTypes {
		label := domain.SportGlyph(s) + " " + string(s)
		if i == m.sportIdx {
			sports = append(sports, accentStyle.Render("["+label+"]"))
		} else {
			sports = append(sports, dimStyle.Render(" "+label+" "))
		}
	}
	b.WriteString("   " + strings.Join(sports, " ") + "  " + metaStyle.Render("(h/l to switch)") + "\n\n")

	for i := attackField(0); i < numAttackFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(attackFieldLabels[i]), value)
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("resolving damage..."))
	case m.status != "":
		b.WriteString(" " + dangerStyle.Render(m.status))
	case m.lastResult != nil:
		b.WriteString(" " + renderAttackResult(m.lastResult))
	}
	return b.String()
}

// renderAttackResult renders the confirmation line after a landed hit.
func renderAttackResult(r *domain.AttackResult) string {
	line := r.Message
	if r.IsCritical {
		line = "CRIT! " + line
	}
	return hpStyle.Render(line) + goldStyle.Render(fmt.Sprintf("  +%d xp  +%d gold", r.XPEarned, r.GoldEarned))
}
