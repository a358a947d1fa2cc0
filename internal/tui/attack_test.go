package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseguard/pulseguard/internal/host"
	"github.com/pulseguard/pulseguard/pkg/domain"
)

func attackKeys(t *testing.T, m attackModel, keys ...string) (attackModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.updateKeys(keyMsg(k), 42, host.NoopHaptics{})
	}
	return m, cmd
}

func TestAttackFormDefaults(t *testing.T) {
	m := newAttackModel(nil)
	fields, err := parseAttackFields(m.fields)
	if err != nil {
		t.Fatalf("default fields must parse: %v", err)
	}
	if fields.DurationMinutes != 35 || fields.Calories != 300 || fields.DistanceKM != 5.0 || fields.AvgHeartRate != 140 {
		t.Errorf("unexpected defaults: %+v", fields)
	}
	if m.sport() != domain.SportRun {
		t.Errorf("default sport = %q, want run", m.sport())
	}
}

func TestAttackFormSportCycling(t *testing.T) {
	m := newAttackModel(nil)
	m.show()

	m, _ = attackKeys(t, m, "l")
	if m.sport() != domain.SportCycle {
		t.Errorf("after l: sport = %q, want cycle", m.sport())
	}
	m, _ = attackKeys(t, m, "h", "h")
	if m.sport() != domain.SportFootball {
		t.Errorf("after h h: sport = %q, want football (wraps)", m.sport())
	}
}

func TestAttackFormValidationBlocksSubmission(t *testing.T) {
	m := newAttackModel(nil)
	m.show()
	// Switch to swim and zero out the distance field.
	m, _ = attackKeys(t, m, "l", "l")
	if m.sport() != domain.SportSwim {
		t.Fatalf("setup: sport = %q", m.sport())
	}
	m.fields[fieldDistance] = "0"

	m, cmd := attackKeys(t, m, "enter")
	if cmd != nil {
		t.Fatal("invalid form must not reach the network")
	}
	if !strings.Contains(m.status, "distance_km") {
		t.Errorf("status = %q, want the rejected field named", m.status)
	}
	if m.submitting {
		t.Error("submitting flag must not be set on rejection")
	}
}

func TestAttackFormValidSwimSubmits(t *testing.T) {
	m := newAttackModel(nil)
	m.show()
	m, _ = attackKeys(t, m, "l", "l")
	m.fields[fieldDistance] = "2.5"

	m, cmd := attackKeys(t, m, "enter")
	if cmd == nil {
		t.Fatal("valid swim must submit")
	}
	if !m.submitting {
		t.Error("submitting flag must be set while in flight")
	}
}

func TestAttackFormNonNumericField(t *testing.T) {
	m := newAttackModel(nil)
	m.show()
	m.fields[fieldDistance] = "5.0.1"

	m, cmd := attackKeys(t, m, "enter")
	if cmd != nil {
		t.Fatal("unparseable field must block submission")
	}
	if !strings.Contains(m.status, "km") {
		t.Errorf("status = %q, want the field named", m.status)
	}
}

func TestAttackFormKeyEditing(t *testing.T) {
	m := newAttackModel(nil)
	m.show()
	m.fields[fieldDuration] = ""

	m, _ = attackKeys(t, m, "4", "5")
	if m.fields[fieldDuration] != "45" {
		t.Errorf("field = %q, want 45", m.fields[fieldDuration])
	}
	m, _ = attackKeys(t, m, "x")
	if m.fields[fieldDuration] != "45" {
		t.Error("non-numeric keys must be ignored")
	}
	m, _ = attackKeys(t, m, "backspace")
	if m.fields[fieldDuration] != "4" {
		t.Errorf("field = %q after backspace, want 4", m.fields[fieldDuration])
	}
}

func TestAttackFormFocusCycles(t *testing.T) {
	m := newAttackModel(nil)
	m.show()
	if m.focus != fieldDuration {
		t.Fatalf("initial focus = %d", m.focus)
	}
	m, _ = attackKeys(t, m, "tab", "tab")
	if m.focus != fieldDistance {
		t.Errorf("focus = %d, want distance", m.focus)
	}
	m, _ = attackKeys(t, m, "shift+tab", "shift+tab", "shift+tab")
	if m.focus != fieldHeartRate {
		t.Errorf("focus = %d, want heart rate (wraps)", m.focus)
	}
}

func TestAttackFormEscCloses(t *testing.T) {
	m := newAttackModel(nil)
	m.show()
	m, _ = attackKeys(t, m, "esc")
	if m.open {
		t.Error("esc must close the form")
	}
}

func TestAttackOverlayCapturesKeysOnMain(t *testing.T) {
	a := enterMain(t)
	a, _ = update(t, a, keyMsg("a"))
	if !a.attack.open {
		t.Fatal("a on main must open the attack form")
	}

	// "s" while the form is open edits the form, it must not jump to shop.
	a, _ = update(t, a, keyMsg("s"))
	if a.screen != screenMain {
		t.Error("form must capture keys; screen changed")
	}
}
