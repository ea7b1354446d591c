package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_transport/internal/models"
	"bus_transport/internal/services"
	"bus_transport/internal/validation"
)

// BusService is what BusController needs from the service layer.
type BusService interface {
	CreateBus(ctx context.Context, in services.CreateBusInput) (*models.Bus, error)
	ListBusesByRoute(ctx context.Context, routeID int64) ([]models.Bus, error)
}

type BusController struct {
	buses BusService
}

func NewBusController(buses BusService) *BusController {
	return &BusController{buses: buses}
}

// CreateBus handles POST /transport/bus.
func (bc *BusController) CreateBus(c *gin.Context) {
	var input services.CreateBusInput
	if err := bindJSON(c, &input); err != nil {
		writeError(c, err)
		return
	}
	if err := validation.Struct(input); err != nil {
		writeError(c, err)
		return
	}

	bus, err := bc.buses.CreateBus(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBusResponse(*bus))
}

// ListBusesByRoute handles GET /transport/bus/search/:routeId.
func (bc *BusController) ListBusesByRoute(c *gin.Context) {
	routeID, err := idParam(c, "routeId")
	if err != nil {
		writeError(c, err)
		return
	}

	buses, err := bc.buses.ListBusesByRoute(c.Request.Context(), routeID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBusResponses(buses))
}
