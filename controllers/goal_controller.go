package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elziee/BIOOO-comp/services"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

// GET /api/nutrition-goals
func (g *GoalController) GetGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	values, err := g.goals.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error occurred",
		})
		return
	}
	c.JSON(http.StatusOK, values)
}

// POST /api/nutrition-goals
func (g *GoalController) UpdateGoals(c *gin.Context) {
	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid data format: " + err.Error(),
		})
		return
	}

	userID := c.MustGet("userID").(uint)
	if err := g.goals.Set(userID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error occurred",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
