package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotrip/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *db_models.Trip) error
	ListTripsByUserId(ctx context.Context, userId uuid.UUID) ([]db_models.Trip, error)
	GetTripByIdForUser(ctx context.Context, tripId string, userId uuid.UUID) (*db_models.Trip, error)
	DeleteTripByIdForUser(ctx context.Context, tripId string, userId uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListTripsByUserId(ctx context.Context, userId uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetTripByIdForUser(ctx context.Context, tripId string, userId uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) DeleteTripByIdForUser(ctx context.Context, tripId string, userId uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		Delete(&db_models.Trip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
