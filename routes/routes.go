package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Elziee/BIOOO-comp/config"
	"github.com/Elziee/BIOOO-comp/controllers"
	"github.com/Elziee/BIOOO-comp/middlewares"
	"github.com/Elziee/BIOOO-comp/services"
)

// SetupRouter wires services, controllers and middleware onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	secret := []byte(cfg.SecretKey)

	authSvc := services.NewAuthService(db)
	foodSvc := services.NewFoodService(services.NewUSDAService(cfg), log)
	logSvc := services.NewFoodLogService(db, log)
	goalSvc := services.NewGoalService(db, log)

	authCtl := controllers.NewAuthController(authSvc, secret, log)
	foodCtl := controllers.NewFoodController(foodSvc)
	logCtl := controllers.NewFoodLogController(logSvc)
	goalCtl := controllers.NewGoalController(goalSvc)

	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", "./static")

	// Page routes
	guest := r.Group("/")
	guest.Use(middlewares.RedirectIfAuthenticated(secret))
	{
		guest.GET("/login", authCtl.ShowLogin)
		guest.POST("/login", authCtl.Login)
		guest.GET("/register", authCtl.ShowRegister)
		guest.POST("/register", authCtl.Register)
	}

	pages := r.Group("/")
	pages.Use(middlewares.PageAuthMiddleware(secret))
	{
		pages.GET("/", authCtl.Home)
		pages.GET("/logout", authCtl.Logout)
	}

	// Protected JSON API
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(secret))
	{
		api.GET("/search-food", foodCtl.SearchFood)
		api.POST("/log-food", logCtl.LogFood)
		api.GET("/get-logs", logCtl.GetLogs)
		api.GET("/nutrition-goals", goalCtl.GetGoals)
		api.POST("/nutrition-goals", goalCtl.UpdateGoals)
	}

	return r
}
