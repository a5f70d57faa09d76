package services

import (
	"context"
	"database/sql"

	intconfig "tripplanner/internal/config"
	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/repositories"
)

type TripStore interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id int64) (models.Trip, error)
	List(ctx context.Context) ([]models.Trip, error)
	Update(ctx context.Context, trip models.Trip) error
	Delete(ctx context.Context, id int64) error
}

type BudgetStore interface {
	Create(ctx context.Context, b *models.Budget) error
	GetByID(ctx context.Context, id int64) (models.Budget, error)
	List(ctx context.Context) ([]models.Budget, error)
	ListByTrip(ctx context.Context, tripID int64) ([]models.Budget, error)
	Update(ctx context.Context, b models.Budget) error
	Delete(ctx context.Context, id int64) error
}

type ExpenseStore interface {
	Create(ctx context.Context, e *models.Expense) error
	GetByID(ctx context.Context, id int64) (models.Expense, error)
	List(ctx context.Context) ([]models.Expense, error)
	ListByTrip(ctx context.Context, tripID int64) ([]models.Expense, error)
	Update(ctx context.Context, e models.Expense) error
	Delete(ctx context.Context, id int64) error
}

type ItineraryStore interface {
	Create(ctx context.Context, it *models.Itinerary) error
	GetByID(ctx context.Context, id int64) (models.Itinerary, error)
	List(ctx context.Context) ([]models.Itinerary, error)
	ListByTrip(ctx context.Context, tripID int64) ([]models.Itinerary, error)
	Update(ctx context.Context, it models.Itinerary) error
	Delete(ctx context.Context, id int64) error
}

type TravelerStore interface {
	Create(ctx context.Context, tr *models.Traveler) error
	GetByID(ctx context.Context, id int64) (models.Traveler, error)
	List(ctx context.Context) ([]models.Traveler, error)
	ListByTrip(ctx context.Context, tripID int64) ([]models.Traveler, error)
	Update(ctx context.Context, tr models.Traveler) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByLogin(ctx context.Context, login string) (models.User, error)
	CountByEmailOrUsername(ctx context.Context, email, username string) (int, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id int64) error
}

// Stores groups the trip graph repositories bound to one handle.
type Stores struct {
	Trips       TripStore
	Budgets     BudgetStore
	Expenses    ExpenseStore
	Itineraries ItineraryStore
	Travelers   TravelerStore
}

// SQLStores binds the MySQL repositories to q. A nil q uses the shared pool.
func SQLStores(q intdb.DBTX) Stores {
	return Stores{
		Trips:       repositories.TripRepository{DB: q},
		Budgets:     repositories.BudgetRepository{DB: q},
		Expenses:    repositories.ExpenseRepository{DB: q},
		Itineraries: repositories.ItineraryRepository{DB: q},
		Travelers:   repositories.TravelerRepository{DB: q},
	}
}

// UnitOfWork runs fn against stores whose writes commit or roll back together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(st Stores) error) error
}

// SQLUnitOfWork wraps fn in a single MySQL transaction.
type SQLUnitOfWork struct {
	DB *sql.DB
}

func (u SQLUnitOfWork) Do(ctx context.Context, fn func(st Stores) error) error {
	conn := u.DB
	if conn == nil {
		conn = intconfig.DB
	}
	if conn == nil {
		return domain.PersistenceError{Op: "begin transaction", Err: sql.ErrConnDone}
	}

	err := intdb.WithTx(ctx, conn, func(tx *sql.Tx) error {
		return fn(SQLStores(tx))
	})
	if err == nil || isDomainError(err) {
		return err
	}
	return domain.PersistenceError{Op: "transaction", Err: err}
}

func isDomainError(err error) bool {
	return domain.IsNotFound(err) || domain.IsValidation(err) || domain.IsConflict(err) ||
		domain.IsPersistence(err) || domain.IsUnauthorized(err)
}
