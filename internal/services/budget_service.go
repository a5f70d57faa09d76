package services

import (
	"context"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

type BudgetService struct {
	Store     BudgetStore
	Trips     TripStore
	RequestID string
}

func NewBudgetService(requestID string) BudgetService {
	return BudgetService{
		Store:     repositories.BudgetRepository{},
		Trips:     repositories.TripRepository{},
		RequestID: requestID,
	}
}

func (s BudgetService) Create(ctx context.Context, b models.Budget) (models.Budget, error) {
	if b.Amount < 0 {
		return models.Budget{}, domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	if err := requireTrip(ctx, s.Trips, b.TripID); err != nil {
		return models.Budget{}, err
	}
	if err := s.Store.Create(ctx, &b); err != nil {
		return models.Budget{}, err
	}
	utils.LogEvent(s.RequestID, "budget", "create", "budget created", zap.Int64("budget_id", b.ID), zap.Int64("trip_id", b.TripID))
	return b, nil
}

func (s BudgetService) Get(ctx context.Context, id int64) (models.Budget, error) {
	if err := requireID("budgetId", id); err != nil {
		return models.Budget{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s BudgetService) List(ctx context.Context) ([]models.Budget, error) {
	return s.Store.List(ctx)
}

func (s BudgetService) ListByTrip(ctx context.Context, tripID int64) ([]models.Budget, error) {
	if err := requireID("tripId", tripID); err != nil {
		return nil, err
	}
	return s.Store.ListByTrip(ctx, tripID)
}

func (s BudgetService) Update(ctx context.Context, b models.Budget, id int64) (models.Budget, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Budget{}, err
	}
	if b.Amount < 0 {
		return models.Budget{}, domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	b.ID = id
	if b.TripID <= 0 {
		b.TripID = existing.TripID
	} else if b.TripID != existing.TripID {
		if err := requireTrip(ctx, s.Trips, b.TripID); err != nil {
			return models.Budget{}, err
		}
	}
	if err := s.Store.Update(ctx, b); err != nil {
		return models.Budget{}, err
	}
	utils.LogEvent(s.RequestID, "budget", "update", "budget updated", zap.Int64("budget_id", id))
	return b, nil
}

func (s BudgetService) Delete(ctx context.Context, id int64) error {
	if err := requireID("budgetId", id); err != nil {
		return err
	}
	return s.Store.Delete(ctx, id)
}
