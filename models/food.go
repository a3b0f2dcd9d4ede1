package models

import "gorm.io/gorm"

// A nutrition reference row (TACO-style table). Nutrient values are per
// PortionG grams; PortionG must be > 0.
type Food struct {
	gorm.Model
	Code       string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name       string `gorm:"index;not null"`
	AltNames   string // comma-separated alternate names
	FoodGroup  string
	EnergyKcal float64
	ProteinG   float64
	CarbG      float64
	FatG       float64
	FiberG     float64
	PortionG   float64 `gorm:"not null"`
	Unit       string  `gorm:"type:varchar(4);default:'g'"` // g|ml
}
