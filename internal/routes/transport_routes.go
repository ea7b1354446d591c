package routes

import (
	"bus_transport/internal/controllers"
	"github.com/gin-gonic/gin"
)

func TransportRoutes(r *gin.Engine, routeCtl *controllers.RouteController, busCtl *controllers.BusController) {
	transport := r.Group("/transport")
	{
		transport.POST("/route", routeCtl.CreateRoute)
		transport.GET("/route/:id", routeCtl.GetRoute)

		transport.POST("/bus", busCtl.CreateBus)
		transport.GET("/bus/search/:routeId", busCtl.ListBusesByRoute)
	}
}
