package models

import "gorm.io/gorm"

// A WhatsApp contact. Phone is the canonical identity and is created once.
type User struct {
	gorm.Model
	Phone string `gorm:"uniqueIndex;not null"`
	Name  string
}
