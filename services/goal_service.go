package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Elziee/BIOOO-comp/models"
)

// Baseline daily targets used whenever a field is not supplied.
const (
	DefaultCalories = 2000
	DefaultProtein  = 50
	DefaultCarbs    = 250
	DefaultFat      = 70
)

// GoalValues is the wire form of a user's daily targets.
type GoalValues struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// GoalInput carries a set-goals request; nil fields fall back to the
// baseline constants.
type GoalInput struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

type GoalService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGoalService(db *gorm.DB, log *logrus.Logger) *GoalService {
	return &GoalService{db: db, log: log}
}

// Get returns the stored targets, or the baselines when the user has
// never set any. Reading never creates a record.
func (s *GoalService) Get(userID uint) (GoalValues, error) {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GoalValues{
			Calories: DefaultCalories,
			Protein:  DefaultProtein,
			Carbs:    DefaultCarbs,
			Fat:      DefaultFat,
		}, nil
	}
	if err != nil {
		s.log.WithError(err).Error("failed to load nutrition goal")
		return GoalValues{}, err
	}
	return GoalValues{
		Calories: goal.Calories,
		Protein:  goal.Protein,
		Carbs:    goal.Carbs,
		Fat:      goal.Fat,
	}, nil
}

// Set upserts the user's targets. Every field is overwritten: a supplied
// value wins, an omitted one resets to its baseline. That holds on update
// too, matching the long-standing behavior of the goals endpoint.
func (s *GoalService) Set(userID uint, in GoalInput) error {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.WithError(err).Error("failed to load nutrition goal")
		return err
	}
	created := errors.Is(err, gorm.ErrRecordNotFound)

	goal.UserID = userID
	goal.Calories = valueOr(in.Calories, DefaultCalories)
	goal.Protein = valueOr(in.Protein, DefaultProtein)
	goal.Carbs = valueOr(in.Carbs, DefaultCarbs)
	goal.Fat = valueOr(in.Fat, DefaultFat)

	if created {
		err = s.db.Create(&goal).Error
	} else {
		err = s.db.Save(&goal).Error
	}
	if err != nil {
		s.log.WithError(err).Error("failed to persist nutrition goal")
	}
	return err
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
