package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type OnboardingStep string

const (
	StepWelcome     OnboardingStep = "welcome"
	StepGoalSetting OnboardingStep = "goal_setting"
	StepExplaining  OnboardingStep = "explaining"
	StepPracticing  OnboardingStep = "practicing"
	StepCompleted   OnboardingStep = "completed"
)

// One food item awaiting a yes/no reply from the user.
type PendingItem struct {
	Name        string  `json:"name"`
	Quantity    string  `json:"quantity"`
	WeightGrams float64 `json:"weight_grams"`
	Unit        string  `json:"unit,omitempty"`
}

type PendingNutritionData struct {
	Items []PendingItem `json:"items"`
}

// UserSession tracks where a user is in the onboarding flow, their daily
// calorie goal and the two transient interrupt slots. Pending state lives on
// the row (not in a process-local map) so a restart does not drop it; an
// expired pending confirmation is treated as absent on read.
type UserSession struct {
	gorm.Model
	UserPhone         string         `gorm:"uniqueIndex;not null"`
	OnboardingStep    OnboardingStep `gorm:"type:varchar(20);not null;default:'welcome'"`
	DailyCalorieGoal  *int
	PendingData       string `gorm:"type:text"` // JSON PendingNutritionData, "" when none
	PendingExpiresAt  *time.Time
	PendingGoalUpdate bool
}

func NewUserSession(phone string) *UserSession {
	return &UserSession{UserPhone: phone, OnboardingStep: StepWelcome}
}

// PendingConfirmation decodes the pending slot, honoring expiry.
func (s *UserSession) PendingConfirmation(now time.Time) *PendingNutritionData {
	if s.PendingData == "" {
		return nil
	}
	if s.PendingExpiresAt != nil && now.After(*s.PendingExpiresAt) {
		return nil
	}
	var data PendingNutritionData
	if err := json.Unmarshal([]byte(s.PendingData), &data); err != nil {
		return nil
	}
	if len(data.Items) == 0 {
		return nil
	}
	return &data
}

func (s *UserSession) SetPendingConfirmation(data PendingNutritionData, expiresAt time.Time) {
	raw, _ := json.Marshal(data)
	s.PendingData = string(raw)
	s.PendingExpiresAt = &expiresAt
}

func (s *UserSession) ClearPendingConfirmation() {
	s.PendingData = ""
	s.PendingExpiresAt = nil
}
