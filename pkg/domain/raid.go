package domain

import "time"

// RaidParticipant is one guardian in the current raid's ring.
type RaidParticipant struct {
	Username    string `json:"username"`
	Level       int    `json:"level"`
	AvatarColor string `json:"avatar_color"`
}

// RaidLogEntry is one recent hit in the battle log.
type RaidLogEntry struct {
	Username  string    `json:"username"`
	Damage    int       `json:"damage"`
	SportType string    `json:"sport_type"`
	CreatedAt time.Time `json:"created_at"`
}

// RaidSnapshot is the shared raid state as of one poll.
// Snapshots are replaced wholesale, never mutated in place.
type RaidSnapshot struct {
	BossName           string            `json:"boss_name"`
	BossType           string            `json:"boss_type"`
	Traits             map[string]any    `json:"traits"`
	MaxHP              int               `json:"max_hp"`
	CurrentHP          int               `json:"current_hp"`
	ActiveDebuffs      map[string]any    `json:"active_debuffs"`
	ActivePlayersCount int               `json:"active_players_count"`
	RecentLogs         []RaidLogEntry    `json:"recent_logs"`
	Participants       []RaidParticipant `json:"participants"`
}

// HPPercent returns boss HP as a 0..100 percentage, clamped.
func (s *RaidSnapshot) HPPercent() float64 {
	if s.MaxHP <= 0 {
		return 0
	}
	p := float64(s.CurrentHP) / float64(s.MaxHP) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// HasDebuff reports whether a named debuff is currently active on the boss.
func (s *RaidSnapshot) HasDebuff(name string) bool {
	v, ok := s.ActiveDebuffs[name]
	if !ok {
		return false
	}
	b, isBool := v.(bool)
	return !isBool || b
}
