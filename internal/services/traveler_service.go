package services

import (
	"context"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

type TravelerService struct {
	Store     TravelerStore
	Trips     TripStore
	RequestID string
}

func NewTravelerService(requestID string) TravelerService {
	return TravelerService{
		Store:     repositories.TravelerRepository{},
		Trips:     repositories.TripRepository{},
		RequestID: requestID,
	}
}

func (s TravelerService) Create(ctx context.Context, tr models.Traveler) (models.Traveler, error) {
	if tr.UserID <= 0 {
		return models.Traveler{}, domain.ValidationError{Field: "user", Msg: "user id is required"}
	}
	if err := requireTrip(ctx, s.Trips, tr.TripID); err != nil {
		return models.Traveler{}, err
	}
	if err := s.Store.Create(ctx, &tr); err != nil {
		return models.Traveler{}, err
	}
	utils.LogEvent(s.RequestID, "traveler", "create", "traveler added",
		zap.Int64("traveler_id", tr.ID), zap.Int64("trip_id", tr.TripID), zap.Int64("user_id", tr.UserID))
	return tr, nil
}

func (s TravelerService) Get(ctx context.Context, id int64) (models.Traveler, error) {
	if err := requireID("travelerId", id); err != nil {
		return models.Traveler{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s TravelerService) List(ctx context.Context) ([]models.Traveler, error) {
	return s.Store.List(ctx)
}

func (s TravelerService) ListByTrip(ctx context.Context, tripID int64) ([]models.Traveler, error) {
	if err := requireID("tripId", tripID); err != nil {
		return nil, err
	}
	return s.Store.ListByTrip(ctx, tripID)
}

func (s TravelerService) Update(ctx context.Context, tr models.Traveler, id int64) (models.Traveler, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Traveler{}, err
	}
	tr.ID = id
	if tr.UserID <= 0 {
		tr.UserID = existing.UserID
	}
	if tr.TripID <= 0 {
		tr.TripID = existing.TripID
	} else if tr.TripID != existing.TripID {
		if err := requireTrip(ctx, s.Trips, tr.TripID); err != nil {
			return models.Traveler{}, err
		}
	}
	if err := s.Store.Update(ctx, tr); err != nil {
		return models.Traveler{}, err
	}
	return tr, nil
}

func (s TravelerService) Delete(ctx context.Context, id int64) error {
	if err := requireID("travelerId", id); err != nil {
		return err
	}
	return s.Store.Delete(ctx, id)
}
