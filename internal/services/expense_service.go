package services

import (
	"context"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

type ExpenseService struct {
	Store     ExpenseStore
	Trips     TripStore
	RequestID string
}

func NewExpenseService(requestID string) ExpenseService {
	return ExpenseService{
		Store:     repositories.ExpenseRepository{},
		Trips:     repositories.TripRepository{},
		RequestID: requestID,
	}
}

func validateExpense(e models.Expense) error {
	if e.Amount < 0 {
		return domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	if e.UserID <= 0 {
		return domain.ValidationError{Field: "user", Msg: "user id is required"}
	}
	return nil
}

func (s ExpenseService) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	if err := validateExpense(e); err != nil {
		return models.Expense{}, err
	}
	if err := requireTrip(ctx, s.Trips, e.TripID); err != nil {
		return models.Expense{}, err
	}
	if err := s.Store.Create(ctx, &e); err != nil {
		return models.Expense{}, err
	}
	utils.LogEvent(s.RequestID, "expense", "create", "expense created",
		zap.Int64("expense_id", e.ID), zap.Int64("trip_id", e.TripID), zap.String("amount", utils.FormatMoney(e.Amount)))
	return e, nil
}

func (s ExpenseService) Get(ctx context.Context, id int64) (models.Expense, error) {
	if err := requireID("expenseId", id); err != nil {
		return models.Expense{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	return s.Store.List(ctx)
}

func (s ExpenseService) ListByTrip(ctx context.Context, tripID int64) ([]models.Expense, error) {
	if err := requireID("tripId", tripID); err != nil {
		return nil, err
	}
	return s.Store.ListByTrip(ctx, tripID)
}

func (s ExpenseService) Update(ctx context.Context, e models.Expense, id int64) (models.Expense, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Expense{}, err
	}
	e.ID = id
	if e.UserID <= 0 {
		e.UserID = existing.UserID
	}
	if e.TripID <= 0 {
		e.TripID = existing.TripID
	} else if e.TripID != existing.TripID {
		if err := requireTrip(ctx, s.Trips, e.TripID); err != nil {
			return models.Expense{}, err
		}
	}
	if err := validateExpense(e); err != nil {
		return models.Expense{}, err
	}
	if err := s.Store.Update(ctx, e); err != nil {
		return models.Expense{}, err
	}
	utils.LogEvent(s.RequestID, "expense", "update", "expense updated", zap.Int64("expense_id", id))
	return e, nil
}

func (s ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := requireID("expenseId", id); err != nil {
		return err
	}
	return s.Store.Delete(ctx, id)
}
