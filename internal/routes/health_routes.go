package routes

import (
	"bus_transport/internal/controllers"
	"github.com/gin-gonic/gin"
)

func HealthRoutes(r *gin.Engine, health *controllers.HealthController) {
	if health == nil {
		return
	}
	r.GET("/healthz", health.Health)
}
