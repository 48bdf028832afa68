package service

import (
	"context"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/google/uuid"
)

type tripService struct {
	trips repository.TripRepo
}

func NewTripService(trips repository.TripRepo) TripService {
	return &tripService{trips: trips}
}

func (s *tripService) Create(ctx context.Context, t *domain.Trip) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Days < 1 {
		t.Days = 1
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.trips.Create(ctx, t)
}

func (s *tripService) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *tripService) List(ctx context.Context) ([]*domain.Trip, error) {
	return s.trips.List(ctx)
}

func (s *tripService) Update(ctx context.Context, t *domain.Trip) error {
	t.UpdatedAt = time.Now().UTC()
	return s.trips.Update(ctx, t)
}

func (s *tripService) Delete(ctx context.Context, id string) error {
	return s.trips.Delete(ctx, id)
}
