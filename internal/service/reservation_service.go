package service

import (
	"context"
	"fmt"
	"time"

	"cinereserve/internal/model"
	"cinereserve/internal/repository"
)

// ReservationService exposes reservation operations for an authenticated user.
type ReservationService interface {
	Create(ctx context.Context, userID uint, movie string, date time.Time, showtime string, room int) (*model.Reservation, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error)
}

type reservationService struct {
	repo repository.ReservationRepository
}

// NewReservationService builds a ReservationService.
func NewReservationService(repo repository.ReservationRepository) ReservationService {
	return &reservationService{repo: repo}
}

// Create persists a reservation owned by userID and returns the stored
// record including its assigned id.
func (s *reservationService) Create(ctx context.Context, userID uint, movie string, date time.Time, showtime string, room int) (*model.Reservation, error) {
	reservation := &model.Reservation{
		Movie:    movie,
		Date:     date,
		Showtime: showtime,
		Room:     room,
		UserID:   userID,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	return reservation, nil
}

// ListByUser returns every reservation owned by userID, in store order.
func (s *reservationService) ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	return s.repo.FindByUser(ctx, userID)
}
