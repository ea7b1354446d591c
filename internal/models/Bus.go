package models

import (
	"time"
)

// Bus is a vehicle assigned to exactly one route.
type Bus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	BusNo    string  `gorm:"not null" json:"busNo"`
	Color    *string `json:"color"`
	Capacity *int    `json:"capacity"`

	RouteID uint `gorm:"not null;index" json:"routeId"`
	// Only used to declare the foreign key; never loaded.
	Route *Route `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Bus) TableName() string {
	return "buses"
}
