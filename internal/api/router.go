package api

import (
	"net/http"

	"azimute/agenda-assistant-api/internal/api/controllers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates and configures a new Gin router. Controllers that were
// not initialized (missing configuration) simply have their routes omitted.
func NewRouter(chatController *controllers.ChatController, agendaController *controllers.AgendaController) *gin.Engine {
	router := gin.Default() // Includes Logger and Recovery middleware

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		if chatController != nil {
			v1.POST("/chat", chatController.Chat)
			v1.POST("/chat/confirm", chatController.Confirm)
		}

		if agendaController != nil {
			v1.GET("/agendas", agendaController.List)
			v1.POST("/agendas", agendaController.Create)
			v1.PATCH("/agendas/:id/detalhes", agendaController.UpdateDetails)
			v1.DELETE("/agendas/:id", agendaController.Delete)
			v1.GET("/agendas/disponibilidade", agendaController.Availability)
		}
	}

	return router
}
