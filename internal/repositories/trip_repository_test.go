package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var tripRowColumns = []string{"id", "trip_code", "name", "destination", "description",
	"start_date", "end_date", "status", "user_id", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestTripRepositoryCreateAssignsID(t *testing.T) {
	db, mock := newMock(t)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 3)

	mock.ExpectExec("INSERT INTO trips").
		WithArgs("Ab12Cd", "Lisbon", "Portugal", nil, start, end, true, int64(7), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	trip := models.Trip{TripCode: "Ab12Cd", Name: "Lisbon", Destination: "Portugal", StartDate: start, EndDate: end, Status: true, UserID: 7}
	if err := (TripRepository{DB: db}).Create(context.Background(), &trip); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if trip.ID != 42 {
		t.Fatalf("expected id 42, got %d", trip.ID)
	}
	if trip.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt should be set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripRepositoryGetByID(t *testing.T) {
	db, mock := newMock(t)
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id = \\?").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(tripRowColumns).
			AddRow(int64(3), "zzZZ99", "Alps", "Austria", "", start, start.AddDate(0, 0, 5), true, int64(9), now, now))

	trip, err := (TripRepository{DB: db}).GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if trip.TripCode != "zzZZ99" || trip.UserID != 9 || !trip.Status {
		t.Fatalf("unexpected trip %+v", trip)
	}
}

func TestTripRepositoryGetByIDMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT (.+) FROM trips").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(tripRowColumns))

	_, err := (TripRepository{DB: db}).GetByID(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestTripRepositoryList(t *testing.T) {
	db, mock := newMock(t)
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM trips ORDER BY").
		WillReturnRows(sqlmock.NewRows(tripRowColumns).
			AddRow(int64(1), "AAAAAA", "A", "", "", start, start, true, int64(1), now, now).
			AddRow(int64(2), "BBBBBB", "B", "", "note", start, start, false, int64(2), now, now))

	trips, err := (TripRepository{DB: db}).List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(trips) != 2 || trips[1].Description != "note" || trips[1].Status {
		t.Fatalf("unexpected trips %+v", trips)
	}
}

func TestTripRepositoryUpdateAndDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE trips").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM trips").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripRepository{DB: db}
	if err := repo.Update(context.Background(), models.Trip{ID: 5}); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError on update, got %v", err)
	}
	if err := repo.Delete(context.Background(), 5); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError on delete, got %v", err)
	}
}

func TestTripRepositoryDriverFailureIsPersistenceError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO trips").WillReturnError(&mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"})
	mock.ExpectExec("DELETE FROM trips").WillReturnError(errors.New("connection reset by peer"))

	repo := TripRepository{DB: db}
	if err := repo.Create(context.Background(), &models.Trip{UserID: 7}); !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError on lock timeout, got %v", err)
	}
	if err := repo.Delete(context.Background(), 5); !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError on broken connection, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepositoryWithoutConnection(t *testing.T) {
	prev := intconfig.DB
	intconfig.DB = nil
	t.Cleanup(func() { intconfig.DB = prev })

	_, err := (TripRepository{}).GetByID(context.Background(), 1)
	if !domain.IsPersistence(err) || !errors.Is(err, errNoDB) {
		t.Fatalf("expected PersistenceError wrapping errNoDB, got %v", err)
	}
}
