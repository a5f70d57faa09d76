package services

import (
	"context"
	"fmt"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

// TripService owns trip CRUD and the cascade that seeds a new trip's
// budget, expense, itinerary days and first traveler.
type TripService struct {
	Stores    Stores
	UoW       UnitOfWork
	Codes     TripCodeGenerator
	RequestID string
}

// NewTripService wires the MySQL stores and the shared code generator.
func NewTripService(requestID string) TripService {
	return TripService{
		Stores:    SQLStores(nil),
		UoW:       SQLUnitOfWork{},
		Codes:     defaultTripCodes,
		RequestID: requestID,
	}
}

func (s TripService) codes() TripCodeGenerator {
	if s.Codes != nil {
		return s.Codes
	}
	return defaultTripCodes
}

func validateTrip(trip models.Trip) error {
	if trip.UserID <= 0 {
		return domain.ValidationError{Field: "user", Msg: "user id is required"}
	}
	if trip.StartDate.IsZero() {
		return domain.ValidationError{Field: "startDate", Msg: "start date is required"}
	}
	if trip.EndDate.IsZero() {
		return domain.ValidationError{Field: "endDate", Msg: "end date is required"}
	}
	return nil
}

// CreateTrip assigns a trip code, stores the trip and its default child
// records in one unit of work, and returns the stored trip.
func (s TripService) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return models.Trip{}, err
	}
	trip.TripCode = s.codes().Next()

	var days []time.Time
	err := s.UoW.Do(ctx, func(st Stores) error {
		if err := st.Trips.Create(ctx, &trip); err != nil {
			return err
		}
		var err error
		days, err = s.createInitialRecords(ctx, st, trip)
		return err
	})
	if err != nil {
		utils.LogWarn(s.RequestID, "trip", "create", "trip creation aborted", zap.Error(err))
		return models.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trip", "create", "trip created",
		zap.Int64("trip_id", trip.ID),
		zap.String("trip_code", trip.TripCode),
		zap.Int("itinerary_days", len(days)))
	return trip, nil
}

func (s TripService) createInitialRecords(ctx context.Context, st Stores, trip models.Trip) ([]time.Time, error) {
	budget := models.InitialBudget(trip.ID)
	if err := st.Budgets.Create(ctx, &budget); err != nil {
		return nil, fmt.Errorf("initial budget: %w", err)
	}

	expense := models.InitialExpense(trip.ID, trip.UserID)
	if err := st.Expenses.Create(ctx, &expense); err != nil {
		return nil, fmt.Errorf("initial expense: %w", err)
	}

	days := ItineraryDays(trip.StartDate, trip.EndDate)
	if len(days) == 0 {
		utils.LogWarn(s.RequestID, "trip", "create", "start date is not before end date, no itinerary days",
			zap.Int64("trip_id", trip.ID))
	}
	for _, day := range days {
		it := models.InitialItinerary(trip.ID, day)
		if err := st.Itineraries.Create(ctx, &it); err != nil {
			return nil, fmt.Errorf("itinerary %s: %w", utils.FormatDate(day), err)
		}
	}

	traveler := models.InitialTraveler(trip.ID, trip.UserID)
	if err := st.Travelers.Create(ctx, &traveler); err != nil {
		return nil, fmt.Errorf("initial traveler: %w", err)
	}
	return days, nil
}

func (s TripService) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "tripId", Msg: "invalid trip id"}
	}
	return s.Stores.Trips.GetByID(ctx, id)
}

func (s TripService) GetAllTrips(ctx context.Context) ([]models.Trip, error) {
	return s.Stores.Trips.List(ctx)
}

// UpdateTrip replaces the stored trip. Code, owner and creation time are
// carried over when the payload leaves them empty.
func (s TripService) UpdateTrip(ctx context.Context, trip models.Trip, id int64) (models.Trip, error) {
	existing, err := s.GetTrip(ctx, id)
	if err != nil {
		return models.Trip{}, err
	}

	trip.ID = id
	trip.TripCode = utils.FirstNonEmpty(trip.TripCode, existing.TripCode)
	if trip.UserID <= 0 {
		trip.UserID = existing.UserID
	}
	if trip.StartDate.IsZero() {
		trip.StartDate = existing.StartDate
	}
	if trip.EndDate.IsZero() {
		trip.EndDate = existing.EndDate
	}
	trip.CreatedAt = existing.CreatedAt

	if err := s.Stores.Trips.Update(ctx, trip); err != nil {
		return models.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "update", "trip updated", zap.Int64("trip_id", id))
	return s.Stores.Trips.GetByID(ctx, id)
}

// DeleteTrip removes a trip. Deleting a missing trip is a NotFoundError.
func (s TripService) DeleteTrip(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "tripId", Msg: "invalid trip id"}
	}
	if err := s.Stores.Trips.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "delete", "trip deleted", zap.Int64("trip_id", id))
	return nil
}
