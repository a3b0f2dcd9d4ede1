package services

import (
	"context"
	"errors"

	"github.com/gustta03/meals-api/models"

	"gorm.io/gorm"
)

// SessionService is the gorm-backed SessionStore. Absence of a session is not
// an error; callers create one lazily.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService { return &SessionService{db: db} }

func (s *SessionService) Get(ctx context.Context, phone string) (*models.UserSession, error) {
	var session models.UserSession
	err := s.db.WithContext(ctx).Where("user_phone = ?", phone).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, externalErr("session get", err)
	}
	return &session, nil
}

func (s *SessionService) Upsert(ctx context.Context, session *models.UserSession) error {
	if session.ID != 0 {
		if err := s.db.WithContext(ctx).Save(session).Error; err != nil {
			return externalErr("session save", err)
		}
		return nil
	}
	if err := s.db.WithContext(ctx).
		Where("user_phone = ?", session.UserPhone).
		Assign(map[string]any{
			"onboarding_step":     session.OnboardingStep,
			"daily_calorie_goal":  session.DailyCalorieGoal,
			"pending_data":        session.PendingData,
			"pending_expires_at":  session.PendingExpiresAt,
			"pending_goal_update": session.PendingGoalUpdate,
		}).
		FirstOrCreate(session).Error; err != nil {
		return externalErr("session upsert", err)
	}
	return nil
}
