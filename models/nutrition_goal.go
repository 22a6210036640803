package models

import (
	"gorm.io/gorm"
)

// NutritionGoal holds a user's daily macro targets. One row per user in
// practice; the upsert in the goal service keeps it that way.
type NutritionGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Calories float64 `gorm:"not null"`
	Protein  float64 `gorm:"not null"`
	Carbs    float64 `gorm:"not null"`
	Fat      float64 `gorm:"not null"`
}
