package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elziee/BIOOO-comp/services"
)

type FoodLogController struct {
	logs *services.FoodLogService
}

func NewFoodLogController(logs *services.FoodLogService) *FoodLogController {
	return &FoodLogController{logs: logs}
}

// POST /api/log-food
func (f *FoodLogController) LogFood(c *gin.Context) {
	var input services.LogFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid data format: " + err.Error(),
		})
		return
	}

	userID := c.MustGet("userID").(uint)
	if err := f.logs.Log(userID, input); err != nil {
		var ve services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "An unexpected error occurred",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GET /api/get-logs?date=YYYY-MM-DD
func (f *FoodLogController) GetLogs(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entries, err := f.logs.ListForDate(userID, c.Query("date"))
	if err != nil {
		var ve services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error occurred",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entries})
}
