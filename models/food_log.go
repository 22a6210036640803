package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLog is one consumed-food entry with its nutrition snapshot.
// Entries are immutable after creation.
type FoodLog struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	FoodName    string    `gorm:"type:varchar(100);not null"`
	ServingSize float64   `gorm:"not null"`
	Calories    float64   `gorm:"not null"`
	Protein     float64   `gorm:"not null"`
	Carbs       float64   `gorm:"not null"`
	Fat         float64   `gorm:"not null"`
	MealType    string    `gorm:"type:varchar(20);not null"` // breakfast|lunch|dinner|snack
	Date        time.Time `gorm:"index;not null"`
	USDAFoodID  string    `gorm:"type:varchar(20)"`
}
