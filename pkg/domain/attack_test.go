package domain

import (
	"errors"
	"testing"
)

func TestBuildAttackRequest_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		sport     SportType
		fields    AttackFields
		wantField string // empty means accepted
	}{
		{"run ok", SportRun, AttackFields{DurationMinutes: 30, DistanceKM: 5}, ""},
		{"run no duration", SportRun, AttackFields{DistanceKM: 5}, "duration_minutes"},
		{"run no distance", SportRun, AttackFields{DurationMinutes: 30}, "distance_km"},
		{"cycle ok", SportCycle, AttackFields{DurationMinutes: 45, DistanceKM: 20}, ""},
		{"cycle zero duration", SportCycle, AttackFields{DistanceKM: 20}, "duration_minutes"},
		{"swim ok", SportSwim, AttackFields{DistanceKM: 2.5}, ""},
		{"swim zero distance", SportSwim, AttackFields{DistanceKM: 0}, "distance_km"},
		{"swim negative distance", SportSwim, AttackFields{DistanceKM: -1}, "distance_km"},
		{"football ok", SportFootball, AttackFields{Calories: 600}, ""},
		{"football zero calories", SportFootball, AttackFields{Calories: 0}, "calories"},
		{"unknown sport", SportType("yoga"), AttackFields{Calories: 600}, "sport_type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := BuildAttackRequest(42, tc.sport, tc.fields)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected rejection: %v", err)
				}
				if req.UserID != 42 || req.SportType != tc.sport {
					t.Errorf("payload identity wrong: %+v", req)
				}
				return
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError, got %v", err)
			}
			if fe.Field != tc.wantField {
				t.Errorf("rejected field = %q, want %q", fe.Field, tc.wantField)
			}
		})
	}
}

func TestBuildAttackRequest_NonRequiredFieldsPassThrough(t *testing.T) {
	// Fields outside swim's required set are carried but never gate.
	req, err := BuildAttackRequest(1, SportSwim, AttackFields{
		DistanceKM: 2.5, Calories: 0, DurationMinutes: 0, AvgHeartRate: 120,
	})
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if req.DistanceKM != 2.5 {
		t.Errorf("DistanceKM = %v, want 2.5", req.DistanceKM)
	}
	if req.AvgHeartRate != 120 {
		t.Errorf("AvgHeartRate = %d, want 120 (pass-through)", req.AvgHeartRate)
	}
}

func TestApplyRewardIsAdditive(t *testing.T) {
	u := User{ID: 1, Username: "hero", Level: 2, XP: 500, Gold: 40}

	u.ApplyReward(AttackResult{XPEarned: 100, GoldEarned: 5})
	if u.XP != 600 || u.Gold != 45 {
		t.Errorf("after reward: xp=%d gold=%d, want 600/45", u.XP, u.Gold)
	}

	// A zero reward never regresses anything.
	u.ApplyReward(AttackResult{})
	if u.XP != 600 || u.Gold != 45 {
		t.Errorf("zero reward changed state: xp=%d gold=%d", u.XP, u.Gold)
	}

	// Negative values in a malformed payload must not subtract.
	u.ApplyReward(AttackResult{XPEarned: -50, GoldEarned: -10})
	if u.XP != 600 || u.Gold != 45 {
		t.Errorf("negative reward subtracted: xp=%d gold=%d", u.XP, u.Gold)
	}

	// Level and username are untouched by merges.
	if u.Level != 2 || u.Username != "hero" {
		t.Errorf("merge touched non-reward fields: %+v", u)
	}
}

func TestHPPercent(t *testing.T) {
	tests := []struct {
		current, max int
		want         float64
	}{
		{900, 1000, 90},
		{0, 1000, 0},
		{1000, 1000, 100},
		{-5, 1000, 0},
		{500, 0, 0},
	}
	for _, tc := range tests {
		s := RaidSnapshot{CurrentHP: tc.current, MaxHP: tc.max}
		if got := s.HPPercent(); got != tc.want {
			t.Errorf("HPPercent(%d/%d) = %v, want %v", tc.current, tc.max, got, tc.want)
		}
	}
}

func TestShopItemBuyable(t *testing.T) {
	item := ShopItem{Key: "run_watch", NextPrice: 100}
	if !item.Buyable(100) {
		t.Error("exact gold should be buyable")
	}
	if item.Buyable(99) {
		t.Error("insufficient gold should not be buyable")
	}
	if (ShopItem{IsLocked: true, NextPrice: 1}).Buyable(100) {
		t.Error("locked item should not be buyable")
	}
	if (ShopItem{IsMaxed: true}).Buyable(100) {
		t.Error("maxed item should not be buyable")
	}
}
