package domain

// Identity is the host-supplied identity for this session.
// It is resolved once at startup and never changes.
type Identity struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// User is a registered guardian as the server knows them.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Gold     int    `json:"gold"`
}

// ApplyReward merges an attack reward into the user record.
// The merge is strictly additive: the attack response carries only the
// earned deltas, so overwriting any other field would erase server-side
// state (level-ups, boss-kill payouts) not present in the payload.
func (u *User) ApplyReward(r AttackResult) {
	if r.XPEarned > 0 {
		u.XP += r.XPEarned
	}
	if r.GoldEarned > 0 {
		u.Gold += r.GoldEarned
	}
}
