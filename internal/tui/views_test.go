package tui

import (
	"strings"
	"testing"

	"github.com/pulseguard/pulseguard/pkg/domain"
)

func TestViewLoading(t *testing.T) {
	a := newTestApp()
	if !strings.Contains(a.View(), "reaching the titans") {
		t.Error("loading screen missing its status line")
	}
}

func TestViewRulesShowsIdentity(t *testing.T) {
	a := newTestApp()
	a.screen = screenRules
	out := a.View()
	if !strings.Contains(out, "tester") {
		t.Error("rules screen must greet the host identity")
	}
	if !strings.Contains(out, "join the raid") {
		t.Error("rules screen must prompt for registration")
	}
}

func TestViewWelcomeShowsProgress(t *testing.T) {
	a := newTestApp()
	a, _ = update(t, a, userCheckedMsg{user: &domain.User{ID: 42, Username: "tester", Level: 3, XP: 250, Gold: 80}})
	out := a.View()
	for _, want := range []string{"welcome back, tester", "level 3", "250 xp", "80 gold"} {
		if !strings.Contains(out, want) {
			t.Errorf("welcome view missing %q", want)
		}
	}
}

func TestViewMainRendersSnapshot(t *testing.T) {
	a := enterMain(t)
	a, _ = update(t, a, raidFetchedMsg{gen: a.pollGen, seq: 1, snapshot: &domain.RaidSnapshot{
		BossName:           "Titan Sloth",
		BossType:           "toxic",
		Traits:             map[string]any{"thick_hide": true},
		CurrentHP:          850,
		MaxHP:              1000,
		ActivePlayersCount: 4,
		ActiveDebuffs:      map[string]any{"armor_break": true},
		Participants:       []domain.RaidParticipant{{Username: "alice", Level: 2}},
		RecentLogs:         []domain.RaidLogEntry{{Username: "alice", Damage: 150, SportType: "swim"}},
	}})

	out := a.View()
	for _, want := range []string{"Titan Sloth", "850/1000", "4 guardians online", "armor broken", "thick_hide", "alice", "-150", "battle log"} {
		if !strings.Contains(out, want) {
			t.Errorf("main view missing %q", want)
		}
	}
}

func TestViewMainBeforeFirstSnapshot(t *testing.T) {
	a := enterMain(t)
	if !strings.Contains(a.View(), "contacting the raid") {
		t.Error("main view must show a placeholder before the first snapshot")
	}
}

func TestHPBar(t *testing.T) {
	full := hpBar(100, 10)
	if strings.Contains(full, "░") {
		t.Error("full bar must have no empty cells")
	}
	empty := hpBar(0, 10)
	if strings.Contains(empty, "█") {
		t.Error("empty bar must have no filled cells")
	}
	half := hpBar(50, 10)
	if got := strings.Count(half, "█"); got != 5 {
		t.Errorf("half bar fill = %d cells, want 5", got)
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("short", 10); got != "short" {
		t.Errorf("truncStr(short) = %q", got)
	}
	if got := truncStr("a very long item name", 10); len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncStr long = %q, want 10 runes ending in ellipsis", got)
	}
}

func TestEditRune(t *testing.T) {
	if got := editRune("ab", "c"); got != "abc" {
		t.Errorf("append = %q", got)
	}
	if got := editRune("abc", "backspace"); got != "ab" {
		t.Errorf("backspace = %q", got)
	}
	if got := editRune("", "backspace"); got != "" {
		t.Errorf("backspace on empty = %q", got)
	}
	if got := editRune("ab", "enter"); got != "ab" {
		t.Errorf("non-printable key mutated input: %q", got)
	}
}
