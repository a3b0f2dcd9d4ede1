package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealOther     MealType = "other"
)

// One analyzed meal. Date is normalized to start of day in the bot timezone;
// totals are the rounded sums of the item nutrients. Immutable once saved.
type Meal struct {
	gorm.Model
	UUID      string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserPhone string    `gorm:"index;not null"`
	Type      MealType  `gorm:"type:varchar(12);not null;default:'other'"`
	Date      time.Time `gorm:"index;not null"`
	AteAt     time.Time
	Items     []MealItem

	KcalTotal    float64
	ProteinTotal float64
	CarbTotal    float64
	FatTotal     float64
}

// Each MealItem keeps the nutrition snapshot at logging time, so later catalog
// edits never rewrite history.
type MealItem struct {
	gorm.Model
	MealID uint `gorm:"index;not null"`

	FoodRef     string // catalog code ("taco_<code>") or "gemini_<uuid>"
	Name        string `gorm:"not null"`
	Quantity    string // human label, e.g. "200g"
	WeightGrams float64

	Kcal     float64
	ProteinG float64
	CarbG    float64
	FatG     float64
}

var ErrEmptyMeal = errors.New("meal must have at least one item")

// Validate enforces the construction invariants. A violation here is a
// programming error, not bad user input.
func (m *Meal) Validate() error {
	if m.UUID == "" || m.UserPhone == "" {
		return errors.New("meal uuid and user phone are required")
	}
	if len(m.Items) == 0 {
		return ErrEmptyMeal
	}
	if m.KcalTotal < 0 || m.ProteinTotal < 0 || m.CarbTotal < 0 || m.FatTotal < 0 {
		return errors.New("meal totals cannot be negative")
	}
	return nil
}
