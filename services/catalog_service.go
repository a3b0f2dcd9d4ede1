package services

import (
	"context"
	"errors"
	"strings"

	"github.com/gustta03/meals-api/models"

	"gorm.io/gorm"
)

// CatalogService is the gorm-backed FoodCatalog.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{db: db} }

// FindByName matches the canonical name or any alternate name, case
// insensitively and exactly.
func (s *CatalogService) FindByName(ctx context.Context, name string) (*models.Food, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, nil
	}
	var food models.Food
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = ? OR ',' || LOWER(alt_names) || ',' LIKE ?",
			needle, "%,"+needle+",%").
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, externalErr("catalog find", err)
	}
	return &food, nil
}

// Search matches substrings in either direction: the row name containing the
// query, or the query containing the row name.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]models.Food, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR ? LIKE '%' || LOWER(name) || '%'",
			"%"+needle+"%", needle).
		Order("LENGTH(name) ASC").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, externalErr("catalog search", err)
	}
	return foods, nil
}

// CRUD used by the admin API.

func (s *CatalogService) Create(ctx context.Context, food *models.Food) error {
	if food.PortionG <= 0 {
		return errors.New("portion weight must be greater than zero")
	}
	return s.db.WithContext(ctx).Create(food).Error
}

func (s *CatalogService) Get(ctx context.Context, code string) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *CatalogService) List(ctx context.Context, limit, offset int) ([]models.Food, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Order("name ASC").Limit(limit).Offset(offset).Find(&foods).Error
	return foods, err
}

func (s *CatalogService) Update(ctx context.Context, food *models.Food) error {
	if food.PortionG <= 0 {
		return errors.New("portion weight must be greater than zero")
	}
	return s.db.WithContext(ctx).Save(food).Error
}

func (s *CatalogService) Delete(ctx context.Context, code string) error {
	res := s.db.WithContext(ctx).Where("code = ?", code).Delete(&models.Food{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
