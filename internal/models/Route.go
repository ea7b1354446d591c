package models

import (
	"time"
)

// Route represents a named bus path between a source and a destination.
// Buses belong to a route through Bus.RouteID; the route itself holds no
// bus collection, they are always looked up by route id.
type Route struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Source      string `gorm:"not null" json:"source"`
	Destination string `gorm:"not null" json:"destination"`

	// Free-form, usually a comma separated list of stations
	Stations *string `gorm:"size:1000" json:"stations"`
}

func (Route) TableName() string {
	return "bus_routes"
}
