// Package services holds the route and bus use cases. Services receive their
// storage explicitly and never talk to HTTP.
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"bus_transport/internal/models"
	"bus_transport/internal/validation"
)

// RouteStore is the storage the route service needs.
type RouteStore interface {
	SaveRoute(ctx context.Context, route *models.Route) error
	FindRouteByID(ctx context.Context, id uint) (*models.Route, error)
	FindBusesByRouteID(ctx context.Context, routeID uint) ([]models.Bus, error)
}

// CreateRouteInput is the payload accepted when creating a route.
type CreateRouteInput struct {
	Title       string  `json:"title" validate:"notblank"`
	Source      string  `json:"source" validate:"notblank"`
	Destination string  `json:"destination" validate:"notblank"`
	// sqlite does not enforce the column size, so the limit is checked here
	Stations    *string `json:"stations" validate:"omitempty,max=1000"`
}

// RouteDetails is a route together with the buses currently assigned to it.
type RouteDetails struct {
	Route models.Route
	Buses []models.Bus
}

type RouteService struct {
	store RouteStore
	log   logrus.FieldLogger
}

func NewRouteService(store RouteStore, log logrus.FieldLogger) *RouteService {
	return &RouteService{store: store, log: log}
}

// CreateRoute validates in and stores a new route with no buses.
func (s *RouteService) CreateRoute(ctx context.Context, in CreateRouteInput) (*models.Route, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	route := models.Route{
		Title:       in.Title,
		Source:      in.Source,
		Destination: in.Destination,
		Stations:    in.Stations,
	}
	if err := s.store.SaveRoute(ctx, &route); err != nil {
		s.log.WithError(err).Error("CreateRoute: failed to save route")
		return nil, err
	}

	s.log.WithField("route_id", route.ID).Info("route created")
	return &route, nil
}

// GetRouteByID returns the route and its buses, or apperrors.RouteNotFoundError.
func (s *RouteService) GetRouteByID(ctx context.Context, id int64) (*RouteDetails, error) {
	key, err := storeID(id)
	if err != nil {
		return nil, err
	}

	route, err := s.store.FindRouteByID(ctx, key)
	if err != nil {
		s.log.WithError(err).WithField("route_id", id).Warn("GetRouteByID: lookup failed")
		return nil, err
	}

	buses, err := s.store.FindBusesByRouteID(ctx, route.ID)
	if err != nil {
		return nil, err
	}
	return &RouteDetails{Route: *route, Buses: buses}, nil
}
