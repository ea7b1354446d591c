package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"bus_transport/internal/apperrors"
	"bus_transport/internal/models"
	"bus_transport/internal/validation"
)

// BusStore is the storage the bus service needs.
type BusStore interface {
	RouteExists(ctx context.Context, id uint) (bool, error)
	SaveBus(ctx context.Context, bus *models.Bus) error
	FindBusesByRouteID(ctx context.Context, routeID uint) ([]models.Bus, error)
}

// CreateBusInput is the payload accepted when creating a bus.
type CreateBusInput struct {
	BusNo    string  `json:"busNo" validate:"notblank"`
	Color    *string `json:"color"`
	Capacity *int    `json:"capacity"`
	RouteID  *int64  `json:"routeId" validate:"required"`
}

type BusService struct {
	store BusStore
	log   logrus.FieldLogger
}

func NewBusService(store BusStore, log logrus.FieldLogger) *BusService {
	return &BusService{store: store, log: log}
}

// CreateBus stores a new bus on an existing route. The route is checked
// before anything is written.
func (s *BusService) CreateBus(ctx context.Context, in CreateBusInput) (*models.Bus, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	routeID, err := s.requireRoute(ctx, *in.RouteID)
	if err != nil {
		return nil, err
	}

	bus := models.Bus{
		BusNo:    in.BusNo,
		Color:    in.Color,
		Capacity: in.Capacity,
		RouteID:  routeID,
	}
	if err := s.store.SaveBus(ctx, &bus); err != nil {
		s.log.WithError(err).WithField("route_id", routeID).Error("CreateBus: failed to save bus")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"bus_id": bus.ID, "route_id": routeID}).Info("bus created")
	return &bus, nil
}

// ListBusesByRoute returns every bus on routeID. Order is not guaranteed.
func (s *BusService) ListBusesByRoute(ctx context.Context, routeID int64) ([]models.Bus, error) {
	key, err := s.requireRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	return s.store.FindBusesByRouteID(ctx, key)
}

// requireRoute returns the storage key of routeID once the route is known to exist.
func (s *BusService) requireRoute(ctx context.Context, routeID int64) (uint, error) {
	key, err := storeID(routeID)
	if err != nil {
		s.log.WithField("route_id", routeID).Warn("route not found")
		return 0, err
	}

	exists, err := s.store.RouteExists(ctx, key)
	if err != nil {
		return 0, err
	}
	if !exists {
		s.log.WithField("route_id", routeID).Warn("route not found")
		return 0, apperrors.RouteNotFound(routeID)
	}
	return key, nil
}

// storeID maps an API id onto the database key. Ids the database never
// assigns (zero, negative) cannot name a route.
func storeID(id int64) (uint, error) {
	if id <= 0 || uint64(id) > uint64(^uint(0)) {
		return 0, apperrors.RouteNotFound(id)
	}
	return uint(id), nil
}
