package repository

import (
	"context"

	"gorm.io/gorm"

	"cinereserve/internal/model"
)

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByUser(ctx context.Context, userID uint) ([]model.Reservation, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository builds a GORM-backed repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
