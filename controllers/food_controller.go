package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elziee/BIOOO-comp/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /api/search-food?query=apple
func (f *FoodController) SearchFood(c *gin.Context) {
	results := f.foods.Search(c.Query("query"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}
