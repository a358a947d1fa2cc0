package domain

import "fmt"

// SportType selects the workout kind and its damage profile.
type SportType string

const (
	SportRun      SportType = "run"
	SportCycle    SportType = "cycle"
	SportSwim     SportType = "swim"
	SportFootball SportType = "football"
)

// SportTypes lists all submittable sports in display order.
var SportTypes = []SportType{SportRun, SportCycle, SportSwim, SportFootball}

// ValidSport reports whether s is a known sport type.
func ValidSport(s SportType) bool {
	for _, t := range SportTypes {
		if t == s {
			return true
		}
	}
	return false
}

// AttackRequest is the workout payload sent to the attack endpoint.
type AttackRequest struct {
	UserID          int64     `json:"user_id"`
	SportType       SportType `json:"sport_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Calories        int       `json:"calories"`
	DistanceKM      float64   `json:"distance_km"`
	AvgHeartRate    int       `json:"avg_heart_rate"`
}

// AttackResult is the server's resolution of one attack.
type AttackResult struct {
	DamageDealt int    `json:"damage_dealt"`
	GoldEarned  int    `json:"gold_earned"`
	XPEarned    int    `json:"xp_earned"`
	IsCritical  bool   `json:"is_critical"`
	NewBossHP   int    `json:"new_boss_hp"`
	Message     string `json:"message"`
}

// AttackFields holds the raw workout form values before validation.
type AttackFields struct {
	DurationMinutes int
	Calories        int
	DistanceKM      float64
	AvgHeartRate    int
}

// FieldError rejects an attack form naming the field that blocked it.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// BuildAttackRequest validates raw form fields against the selected
// sport's required set and returns a submittable request. Each sport
// gates on different fields: run and cycle need duration and distance,
// swim needs distance, football needs calories. Fields outside the
// required set are passed through untouched but never block submission.
// Pure: no network, no side effects.
func BuildAttackRequest(userID int64, sport SportType, f AttackFields) (AttackRequest, error) {
	if !ValidSport(sport) {
		return AttackRequest{}, &FieldError{Field: "sport_type", Reason: fmt.Sprintf("unknown sport %q", sport)}
	}

	switch sport {
	case SportRun, SportCycle:
		if f.DurationMinutes <= 0 {
			return AttackRequest{}, &FieldError{Field: "duration_minutes", Reason: "must be greater than zero"}
		}
		if f.DistanceKM <= 0 {
			return AttackRequest{}, &FieldError{Field: "distance_km", Reason: "must be greater than zero"}
		}
	case SportSwim:
		if f.DistanceKM <= 0 {
			return AttackRequest{}, &FieldError{Field: "distance_km", Reason: "must be greater than zero"}
		}
	case SportFootball:
		if f.Calories <= 0 {
			return AttackRequest{}, &FieldError{Field: "calories", Reason: "must be greater than zero"}
		}
	}

	return AttackRequest{
		UserID:          userID,
		SportType:       sport,
		DurationMinutes: f.DurationMinutes,
		Calories:        f.Calories,
		DistanceKM:      f.DistanceKM,
		AvgHeartRate:    f.AvgHeartRate,
	}, nil
}

// SportGlyph returns the battle-log marker for a sport.
func SportGlyph(s SportType) string {
	switch s {
	case SportRun:
		return "🏃"
	case SportCycle:
		return "🚴"
	case SportSwim:
		return "🏊"
	case SportFootball:
		return "⚽"
	}
	return "•"
}
