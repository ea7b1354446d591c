package controllers

import (
	"bus_transport/internal/models"
	"bus_transport/internal/services"
)

// BusResponse is the bus view shared by every endpoint.
type BusResponse struct {
	ID       uint    `json:"id"`
	BusNo    string  `json:"busNo"`
	Color    *string `json:"color"`
	Capacity *int    `json:"capacity"`
	RouteID  uint    `json:"routeId"`
}

// RouteResponse is returned on route creation; it carries no buses.
type RouteResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Stations    *string `json:"stations"`
}

// RouteDetailResponse is RouteResponse plus the route's buses.
type RouteDetailResponse struct {
	RouteResponse
	Buses []BusResponse `json:"buses"`
}

func toBusResponse(bus models.Bus) BusResponse {
	return BusResponse{
		ID:       bus.ID,
		BusNo:    bus.BusNo,
		Color:    bus.Color,
		Capacity: bus.Capacity,
		RouteID:  bus.RouteID,
	}
}

func toBusResponses(buses []models.Bus) []BusResponse {
	out := make([]BusResponse, 0, len(buses))
	for _, b := range buses {
		out = append(out, toBusResponse(b))
	}
	return out
}

func toRouteResponse(route models.Route) RouteResponse {
	return RouteResponse{
		ID:          route.ID,
		Title:       route.Title,
		Source:      route.Source,
		Destination: route.Destination,
		Stations:    route.Stations,
	}
}

func toRouteDetailResponse(details *services.RouteDetails) RouteDetailResponse {
	return RouteDetailResponse{
		RouteResponse: toRouteResponse(details.Route),
		Buses:         toBusResponses(details.Buses),
	}
}
