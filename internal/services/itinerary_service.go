package services

import (
	"context"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

type ItineraryService struct {
	Store     ItineraryStore
	Trips     TripStore
	RequestID string
}

func NewItineraryService(requestID string) ItineraryService {
	return ItineraryService{
		Store:     repositories.ItineraryRepository{},
		Trips:     repositories.TripRepository{},
		RequestID: requestID,
	}
}

func (s ItineraryService) Create(ctx context.Context, it models.Itinerary) (models.Itinerary, error) {
	if it.Date.IsZero() {
		return models.Itinerary{}, domain.ValidationError{Field: "date", Msg: "date is required"}
	}
	if err := requireTrip(ctx, s.Trips, it.TripID); err != nil {
		return models.Itinerary{}, err
	}
	it.Date = utils.StartOfDay(it.Date)
	if err := s.Store.Create(ctx, &it); err != nil {
		return models.Itinerary{}, err
	}
	utils.LogEvent(s.RequestID, "itinerary", "create", "itinerary day created",
		zap.Int64("itinerary_id", it.ID), zap.String("date", utils.FormatDate(it.Date)))
	return it, nil
}

func (s ItineraryService) Get(ctx context.Context, id int64) (models.Itinerary, error) {
	if err := requireID("itineraryId", id); err != nil {
		return models.Itinerary{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s ItineraryService) List(ctx context.Context) ([]models.Itinerary, error) {
	return s.Store.List(ctx)
}

func (s ItineraryService) ListByTrip(ctx context.Context, tripID int64) ([]models.Itinerary, error) {
	if err := requireID("tripId", tripID); err != nil {
		return nil, err
	}
	return s.Store.ListByTrip(ctx, tripID)
}

func (s ItineraryService) Update(ctx context.Context, it models.Itinerary, id int64) (models.Itinerary, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Itinerary{}, err
	}
	it.ID = id
	if it.TripID <= 0 {
		it.TripID = existing.TripID
	} else if it.TripID != existing.TripID {
		if err := requireTrip(ctx, s.Trips, it.TripID); err != nil {
			return models.Itinerary{}, err
		}
	}
	if it.Date.IsZero() {
		it.Date = existing.Date
	}
	it.Date = utils.StartOfDay(it.Date)
	if err := s.Store.Update(ctx, it); err != nil {
		return models.Itinerary{}, err
	}
	utils.LogEvent(s.RequestID, "itinerary", "update", "itinerary day updated", zap.Int64("itinerary_id", id))
	return it, nil
}

func (s ItineraryService) Delete(ctx context.Context, id int64) error {
	if err := requireID("itineraryId", id); err != nil {
		return err
	}
	return s.Store.Delete(ctx, id)
}
