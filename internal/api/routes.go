package api

import (
	"net/http"

	"alcyxob/training-periodization/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes registers every endpoint. metricsHandler is mounted at metricsPath
// when non-nil.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	macroCycleService service.MacroCycleService,
	logger *zap.Logger,
	metricsHandler http.Handler,
	metricsPath string,
) {
	macroCycleHandler := NewMacroCycleHandler(macroCycleService, logger)
	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if metricsHandler != nil {
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		router.GET(metricsPath, gin.WrapH(metricsHandler))
	}

	apiV1 := router.Group("/api/v1")
	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		macroGroup := protected.Group("/macrocycles")
		{
			macroGroup.POST("", macroCycleHandler.CreateMacroCycle)
			macroGroup.GET("", macroCycleHandler.ListMacroCycles)
			macroGroup.POST("/preview", macroCycleHandler.PreviewMacroCycle)
			macroGroup.GET("/:id", macroCycleHandler.GetMacroCycle)
			macroGroup.GET("/:id/current", macroCycleHandler.GetCurrentWeek)
			macroGroup.POST("/:id/activate", macroCycleHandler.ActivateMacroCycle)
			macroGroup.POST("/:id/export", macroCycleHandler.ExportMacroCycle)
		}
	}
}
