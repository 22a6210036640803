package services

import (
	"testing"

	"github.com/Elziee/BIOOO-comp/models"
)

func TestGetBeforeSetReturnsBaselines(t *testing.T) {
	db := testDB(t)
	svc := NewGoalService(db, testLogger())
	user := createUser(t, db, "alice", "alice@example.com")

	values, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := GoalValues{Calories: 2000, Protein: 50, Carbs: 250, Fat: 70}
	if values != want {
		t.Errorf("values = %+v, want %+v", values, want)
	}

	// Reading must not create a record.
	var count int64
	db.Model(&models.NutritionGoal{}).Count(&count)
	if count != 0 {
		t.Fatalf("read created %d goal rows", count)
	}
}

func TestSetThenGet(t *testing.T) {
	db := testDB(t)
	svc := NewGoalService(db, testLogger())
	user := createUser(t, db, "alice", "alice@example.com")

	in := GoalInput{
		Calories: floatPtr(1800),
		Protein:  floatPtr(120),
		Carbs:    floatPtr(200),
		Fat:      floatPtr(60),
	}
	if err := svc.Set(user.ID, in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	values, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := GoalValues{Calories: 1800, Protein: 120, Carbs: 200, Fat: 60}
	if values != want {
		t.Errorf("values = %+v, want %+v", values, want)
	}
}

func TestSetAppliesBaselinesToOmittedFields(t *testing.T) {
	db := testDB(t)
	svc := NewGoalService(db, testLogger())
	user := createUser(t, db, "alice", "alice@example.com")

	if err := svc.Set(user.ID, GoalInput{Calories: floatPtr(1600)}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	values, _ := svc.Get(user.ID)
	want := GoalValues{Calories: 1600, Protein: 50, Carbs: 250, Fat: 70}
	if values != want {
		t.Errorf("values = %+v, want %+v", values, want)
	}
}

func TestSetOverwritesWithBaselineOnUpdate(t *testing.T) {
	db := testDB(t)
	svc := NewGoalService(db, testLogger())
	user := createUser(t, db, "alice", "alice@example.com")

	full := GoalInput{
		Calories: floatPtr(1800),
		Protein:  floatPtr(120),
		Carbs:    floatPtr(200),
		Fat:      floatPtr(60),
	}
	if err := svc.Set(user.ID, full); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// An update that omits a field resets it to the baseline, not to the
	// previously stored custom value.
	if err := svc.Set(user.ID, GoalInput{Calories: floatPtr(1900)}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	values, _ := svc.Get(user.ID)
	want := GoalValues{Calories: 1900, Protein: 50, Carbs: 250, Fat: 70}
	if values != want {
		t.Errorf("values = %+v, want %+v", values, want)
	}

	// Still a single row per user after repeated sets.
	var count int64
	db.Model(&models.NutritionGoal{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one goal row, found %d", count)
	}
}
