package routes

import (
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"bus_transport/internal/controllers"
)

// Deps are the handlers the router mounts.
type Deps struct {
	Routes *controllers.RouteController
	Buses  *controllers.BusController
	Health *controllers.HealthController

	// AccessLog receives one line per request; nil disables request logging.
	AccessLog io.Writer
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()

	// Request logging middleware
	if deps.AccessLog != nil {
		r.Use(ginlog.SetLogger(
			ginlog.WithWriter(deps.AccessLog),
			ginlog.WithUTC(true),
			ginlog.WithSkipPath([]string{"/healthz"}),
		))
	}

	// Recovery middleware
	r.Use(gin.CustomRecovery(controllers.Recover))
	r.NoRoute(controllers.NoRoute)

	HealthRoutes(r, deps.Health)
	TransportRoutes(r, deps.Routes, deps.Buses)

	return r
}
