package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Elziee/BIOOO-comp/models"
)

// ValidationError marks caller-fixable input errors; controllers map it
// to 400 with the message as-is.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// LogFoodInput carries a log-food request. Pointer fields distinguish
// "absent" from a supplied zero.
type LogFoodInput struct {
	FoodName    string   `json:"food_name"`
	ServingSize *float64 `json:"serving_size"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	MealType    string   `json:"meal_type"`
	USDAFoodID  string   `json:"usda_food_id"`
}

// FoodLogEntry is the flat wire form of one stored entry.
type FoodLogEntry struct {
	ID          uint    `json:"id"`
	FoodName    string  `json:"food_name"`
	ServingSize float64 `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	MealType    string  `json:"meal_type"`
	Date        string  `json:"date"`
}

type FoodLogService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewFoodLogService(db *gorm.DB, log *logrus.Logger) *FoodLogService {
	return &FoodLogService{db: db, log: log}
}

// Log validates and persists one immutable entry. Nothing is written when
// validation fails.
func (s *FoodLogService) Log(userID uint, in LogFoodInput) error {
	if in.FoodName == "" || in.ServingSize == nil || in.Calories == nil {
		return ValidationError("Missing required food data")
	}
	if *in.ServingSize <= 0 {
		return ValidationError("serving_size must be positive")
	}

	protein := valueOrZero(in.Protein)
	carbs := valueOrZero(in.Carbs)
	fat := valueOrZero(in.Fat)
	if *in.Calories < 0 || protein < 0 || carbs < 0 || fat < 0 {
		return ValidationError("nutrient values must not be negative")
	}

	mealType := in.MealType
	if mealType == "" {
		mealType = "snack"
	}
	if !mealTypes[mealType] {
		return ValidationError("meal_type must be one of breakfast, lunch, dinner, snack")
	}

	entry := models.FoodLog{
		UserID:      userID,
		FoodName:    in.FoodName,
		ServingSize: *in.ServingSize,
		Calories:    *in.Calories,
		Protein:     protein,
		Carbs:       carbs,
		Fat:         fat,
		MealType:    mealType,
		Date:        time.Now(),
		USDAFoodID:  in.USDAFoodID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		s.log.WithError(err).Error("failed to persist food log entry")
		return err
	}
	return nil
}

// ListForDate returns the caller's entries for one calendar date,
// time-of-day ignored. dateStr is YYYY-MM-DD; empty means today.
func (s *FoodLogService) ListForDate(userID uint, dateStr string) ([]FoodLogEntry, error) {
	date := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, ValidationError("Invalid date format. Use YYYY-MM-DD")
		}
		date = parsed
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	end := start.Add(24 * time.Hour)

	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date").
		Find(&logs).Error
	if err != nil {
		s.log.WithError(err).Error("failed to query food log entries")
		return nil, err
	}

	entries := make([]FoodLogEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, FoodLogEntry{
			ID:          l.ID,
			FoodName:    l.FoodName,
			ServingSize: l.ServingSize,
			Calories:    l.Calories,
			Protein:     l.Protein,
			Carbs:       l.Carbs,
			Fat:         l.Fat,
			MealType:    l.MealType,
			Date:        l.Date.Format("2006-01-02 15:04:05"),
		})
	}
	return entries, nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
