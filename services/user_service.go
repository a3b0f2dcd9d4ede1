package services

import (
	"context"
	"errors"

	"github.com/gustta03/meals-api/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// EnsureExists creates the user row on first contact. Identity is the phone;
// the display name is filled in when the transport provides one.
func (s *UserService) EnsureExists(ctx context.Context, phone, name string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if err == nil {
		if name != "" && user.Name == "" {
			user.Name = name
			if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
				return nil, externalErr("user update", err)
			}
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, externalErr("user lookup", err)
	}

	user = models.User{Phone: phone, Name: name}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, externalErr("user create", err)
	}
	return &user, nil
}

func (s *UserService) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, externalErr("user lookup", err)
	}
	return &user, nil
}
