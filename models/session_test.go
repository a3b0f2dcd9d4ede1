package models

import (
	"testing"
	"time"
)

func TestPendingConfirmationLifecycle(t *testing.T) {
	now := time.Now()
	s := NewUserSession("5511999990000")

	if s.PendingConfirmation(now) != nil {
		t.Fatal("fresh session has a pending confirmation")
	}

	data := PendingNutritionData{Items: []PendingItem{
		{Name: "arroz", WeightGrams: 200},
	}}
	s.SetPendingConfirmation(data, now.Add(30*time.Minute))

	got := s.PendingConfirmation(now)
	if got == nil || len(got.Items) != 1 || got.Items[0].Name != "arroz" {
		t.Fatalf("pending = %+v, want the stored items back", got)
	}

	if s.PendingConfirmation(now.Add(31*time.Minute)) != nil {
		t.Error("expired pending confirmation still returned")
	}

	s.ClearPendingConfirmation()
	if s.PendingConfirmation(now) != nil {
		t.Error("pending confirmation survives a clear")
	}
	if s.PendingData != "" || s.PendingExpiresAt != nil {
		t.Error("clear left residue on the row")
	}
}

func TestPendingConfirmationIgnoresGarbage(t *testing.T) {
	now := time.Now()
	s := NewUserSession("5511999990000")

	s.PendingData = "{not json"
	if s.PendingConfirmation(now) != nil {
		t.Error("malformed payload treated as pending")
	}

	s.PendingData = `{"items":[]}`
	if s.PendingConfirmation(now) != nil {
		t.Error("empty item list treated as pending")
	}
}

func TestNewUserSessionDefaults(t *testing.T) {
	s := NewUserSession("5511988887777")
	if s.OnboardingStep != StepWelcome {
		t.Errorf("step = %q, want welcome", s.OnboardingStep)
	}
	if s.DailyCalorieGoal != nil {
		t.Errorf("goal = %v, want unset", *s.DailyCalorieGoal)
	}
	if s.PendingGoalUpdate {
		t.Error("goal update flag set on a fresh session")
	}
}
