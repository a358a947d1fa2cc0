package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseguard/pulseguard/pkg/domain"
)

// defaultPollInterval is the raid refresh cadence on the main screen.
const defaultPollInterval = 3 * time.Second

// pollerConfig carries the tunable poller settings.
type pollerConfig struct {
	interval time.Duration
}

func newPollerConfig(interval time.Duration) pollerConfig {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return pollerConfig{interval: interval}
}

// raidTickMsg fires on each poll interval. It carries the generation it
// was scheduled under; ticks from a stale generation die silently.
type raidTickMsg struct {
	gen int
}

// raidFetchedMsg carries one raid snapshot fetch result.
type raidFetchedMsg struct {
	gen      int
	seq      uint64
	snapshot *domain.RaidSnapshot
	err      error
}

// raidStore holds the latest applied raid snapshot. Writes are gated on
// the issue-order sequence number: a fetch that was issued earlier but
// completed later than one already applied is discarded, so a forced
// refresh racing a scheduled tick can never roll the view backwards.
type raidStore struct {
	snapshot *domain.RaidSnapshot
	lastSeq  uint64
}

// apply replaces the snapshot wholesale if seq is newer than the last
// applied fetch. Returns whether the write happened.
func (s *raidStore) apply(seq uint64, snap *domain.RaidSnapshot) bool {
	if snap == nil || seq <= s.lastSeq {
		return false
	}
	s.snapshot = snap
	s.lastSeq = seq
	return true
}

// armPoller starts a fresh poll generation: one immediate fetch plus the
// tick chain. Arming under a new generation guarantees at most one live
// tick chain no matter how often screens flip.
func (a *App) armPoller() tea.Cmd {
	a.pollGen++
	a.armed = true
	a.applied = 0
	return tea.Batch(a.fetchRaid(), a.tick())
}

// disarmPoller stops the poller. Bumping the generation invalidates the
// pending tick and any in-flight fetch before they can write back.
func (a *App) disarmPoller() {
	a.armed = false
	a.pollGen++
}

// fetchRaid issues one snapshot fetch under the current generation with
// the next sequence number. Used by the tick chain and for the forced
// refresh after an attack.
func (a *App) fetchRaid() tea.Cmd {
	a.seq++
	c, gen, seq := a.client, a.pollGen, a.seq
	return func() tea.Msg {
		snap, err := c.GetRaid(context.Background())
		return raidFetchedMsg{gen: gen, seq: seq, snapshot: snap, err: err}
	}
}

// tick schedules the next poll tick under the current generation.
func (a App) tick() tea.Cmd {
	gen := a.pollGen
	return tea.Tick(a.poller.interval, func(time.Time) tea.Msg {
		return raidTickMsg{gen: gen}
	})
}

// copyBattleReport writes a plain-text raid summary to the clipboard.
func copyBattleReport(snap *domain.RaidSnapshot) tea.Cmd {
	report := buildBattleReport(snap)
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.WriteAll(report)}
	}
}

// buildBattleReport renders the shareable text form of a snapshot.
func buildBattleReport(snap *domain.RaidSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %d/%d HP (%d guardians online)\n", snap.BossName, snap.CurrentHP, snap.MaxHP, snap.ActivePlayersCount)
	if snap.HasDebuff("armor_break") {
		b.WriteString("armor broken: +15% damage\n")
	}
	for _, l := range snap.RecentLogs {
		fmt.Fprintf(&b, "%s hit for %d (%s)\n", l.Username, l.Damage, l.SportType)
	}
	return b.String()
}
