// Package store persists routes and buses through GORM.
package store

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"bus_transport/internal/apperrors"
	"bus_transport/internal/models"
)

// foreignKeyViolation is the Postgres SQLSTATE for a broken FK reference.
const foreignKeyViolation = "23503"

// Store wraps a *gorm.DB handle. It is safe for concurrent use.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the bus_routes and buses tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Route{}, &models.Bus{})
}

// Ping checks that the underlying database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// SaveRoute inserts route, letting the database assign its id.
func (s *Store) SaveRoute(ctx context.Context, route *models.Route) error {
	return s.db.WithContext(ctx).Create(route).Error
}

// FindRouteByID returns apperrors.RouteNotFoundError when no row matches.
func (s *Store) FindRouteByID(ctx context.Context, id uint) (*models.Route, error) {
	var route models.Route
	if err := s.db.WithContext(ctx).First(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.RouteNotFound(int64(id))
		}
		return nil, err
	}
	return &route, nil
}

func (s *Store) RouteExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Route{}).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveBus inserts bus. Callers are expected to have checked that the route
// exists; if it disappeared in the meantime the FK violation is reported as
// a missing route.
func (s *Store) SaveBus(ctx context.Context, bus *models.Bus) error {
	err := s.db.WithContext(ctx).Omit("Route").Create(bus).Error
	if err == nil {
		return nil
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return apperrors.RouteNotFound(int64(bus.RouteID))
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.RouteNotFound(int64(bus.RouteID))
	}
	return err
}

// FindBusesByRouteID returns an empty, non-nil slice when the route has no buses.
func (s *Store) FindBusesByRouteID(ctx context.Context, routeID uint) ([]models.Bus, error) {
	buses := []models.Bus{}
	err := s.db.WithContext(ctx).Where("route_id = ?", routeID).Order("id").Find(&buses).Error
	if err != nil {
		return nil, err
	}
	return buses, nil
}

// DeleteRoute removes the route and every bus that references it. The buses
// are deleted explicitly so the cascade holds even where the database does
// not enforce foreign keys.
func (s *Store) DeleteRoute(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", id).Delete(&models.Bus{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Route{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.RouteNotFound(int64(id))
		}
		return nil
	})
}
