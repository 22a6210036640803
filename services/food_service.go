package services

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// localFood is one entry of the built-in fallback table.
type localFood struct {
	Name      string
	Nutrients Nutrients
}

// Fallback table used when the USDA API is unreachable or empty.
var localFoods = []localFood{
	{Name: "apple", Nutrients: Nutrients{Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3}},
	{Name: "banana", Nutrients: Nutrients{Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4}},
	{Name: "chicken breast", Nutrients: Nutrients{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}},
	{Name: "rice", Nutrients: Nutrients{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}},
	{Name: "egg", Nutrients: Nutrients{Calories: 70, Protein: 6, Carbs: 0, Fat: 5}},
	{Name: "milk", Nutrients: Nutrients{Calories: 103, Protein: 8, Carbs: 12, Fat: 2.4}},
}

// FoodService resolves food queries with a remote-first, local-fallback chain.
type FoodService struct {
	usda *USDAService
	log  *logrus.Logger
}

func NewFoodService(usda *USDAService, log *logrus.Logger) *FoodService {
	return &FoodService{usda: usda, log: log}
}

// Search returns normalized candidates for a free-text query. Remote
// failures are absorbed: any USDA error or an empty USDA result set falls
// back to the local table, and the caller never sees an error.
func (s *FoodService) Search(query string) []FoodResult {
	if query == "" {
		return []FoodResult{}
	}

	results, err := s.usda.SearchFoods(query)
	if err != nil {
		s.log.WithError(err).Warn("USDA lookup failed, using local food table")
	} else if len(results) > 0 {
		return results
	}

	return searchLocal(query)
}

// searchLocal does a case-insensitive substring match against the
// built-in table.
func searchLocal(query string) []FoodResult {
	q := strings.ToLower(query)
	results := []FoodResult{}
	for _, f := range localFoods {
		if !strings.Contains(f.Name, q) {
			continue
		}
		results = append(results, FoodResult{
			FoodID:    "local_" + strings.ReplaceAll(f.Name, " ", "_"),
			Name:      titleCase(f.Name),
			Source:    "local",
			Nutrients: f.Nutrients,
		})
	}
	return results
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
