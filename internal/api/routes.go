package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharmasaravanan/workout-tracker-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	logService service.LogService,
	reportService service.ReportService,
) {
	authHandler := NewAuthHandler(authService)
	logHandler := NewLogHandler(logService)
	planHandler := NewPlanHandler()
	reportHandler := NewReportHandler(reportService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			accountID, err := getAccountIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"accountId": accountID})
		})

		// Static workout plan catalog for the entry form.
		protected.GET("/plan", planHandler.GetPlan)

		// --- Workout Log Routes ---
		logGroup := protected.Group("/logs")
		{
			// POST /api/v1/logs - record a new entry
			logGroup.POST("", logHandler.CreateEntry)
			// GET /api/v1/logs - raw log, newest first
			logGroup.GET("", logHandler.ListEntries)
			// GET /api/v1/logs/export - CSV download
			logGroup.GET("/export", logHandler.ExportEntries)
		}

		// GET /api/v1/dashboard - aggregated views over the log
		protected.GET("/dashboard", reportHandler.Dashboard)
	}
}
