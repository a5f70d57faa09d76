package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLUnitOfWorkCommitsTripGraph(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	d0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO budgets").WithArgs(int64(5), 0.0, nil, true).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO expenses").WithArgs(int64(5), int64(7), 0.0, nil, "", nil, "", true).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO itineraries").WithArgs(int64(5), d0, nil, true).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO itineraries").WithArgs(int64(5), d0.AddDate(0, 0, 1), nil, true).WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO travelers").WithArgs(int64(5), int64(7), true).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc := TripService{Stores: SQLStores(db), UoW: SQLUnitOfWork{DB: db}, Codes: NewSeededTripCodeGenerator(1)}
	trip, err := svc.CreateTrip(context.Background(), models.Trip{StartDate: d0, EndDate: d0.AddDate(0, 0, 1), UserID: 7, Status: true})
	if err != nil {
		t.Fatalf("CreateTrip returned error: %v", err)
	}
	if trip.ID != 5 {
		t.Fatalf("expected trip id 5, got %d", trip.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLUnitOfWorkRollsBackOnChildFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	d0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO budgets").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO expenses").WillReturnError(errors.New("deadlock found"))
	mock.ExpectRollback()

	svc := TripService{Stores: SQLStores(db), UoW: SQLUnitOfWork{DB: db}}
	_, err = svc.CreateTrip(context.Background(), models.Trip{StartDate: d0, EndDate: d0.AddDate(0, 0, 1), UserID: 7})
	if !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLUnitOfWorkBeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err = SQLUnitOfWork{DB: db}.Do(context.Background(), func(Stores) error { return nil })
	if !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
