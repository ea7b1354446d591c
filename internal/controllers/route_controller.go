package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_transport/internal/models"
	"bus_transport/internal/services"
	"bus_transport/internal/validation"
)

// RouteService is what RouteController needs from the service layer.
type RouteService interface {
	CreateRoute(ctx context.Context, in services.CreateRouteInput) (*models.Route, error)
	GetRouteByID(ctx context.Context, id int64) (*services.RouteDetails, error)
}

type RouteController struct {
	routes RouteService
}

func NewRouteController(routes RouteService) *RouteController {
	return &RouteController{routes: routes}
}

// CreateRoute handles POST /transport/route.
func (rc *RouteController) CreateRoute(c *gin.Context) {
	var input services.CreateRouteInput
	if err := bindJSON(c, &input); err != nil {
		writeError(c, err)
		return
	}
	if err := validation.Struct(input); err != nil {
		writeError(c, err)
		return
	}

	route, err := rc.routes.CreateRoute(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRouteResponse(*route))
}

// GetRoute handles GET /transport/route/:id.
func (rc *RouteController) GetRoute(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	details, err := rc.routes.GetRouteByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRouteDetailResponse(details))
}
