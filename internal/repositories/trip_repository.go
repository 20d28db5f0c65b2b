package repositories

import (
	"context"
	"errors"

	"tripwise/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripRepository is the persistence contract for trips. Lookups scoped
// by owner return (nil, nil) when no matching record exists, including
// when the trip belongs to someone else.
type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*db_models.Trip, error)
	FindByShareID(ctx context.Context, shareID string) (*db_models.Trip, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Trip, error)
	UpdateFields(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func withItinerary(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := withItinerary(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByShareID(ctx context.Context, shareID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := withItinerary(r.db.WithContext(ctx)).
		Where("share_id = ?", shareID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) UpdateFields(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&db_models.Trip{})
	return res.RowsAffected, res.Error
}
