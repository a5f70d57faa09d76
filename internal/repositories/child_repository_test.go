package repositories

import (
	"context"
	"testing"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestBudgetRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO budgets").WithArgs(int64(4), 0.0, nil, true).
		WillReturnResult(sqlmock.NewResult(11, 1))

	b := models.InitialBudget(4)
	if err := (BudgetRepository{DB: db}).Create(context.Background(), &b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.ID != 11 {
		t.Fatalf("expected id 11, got %d", b.ID)
	}
}

func TestExpenseRepositoryInitialExpenseStoresNulls(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO expenses").
		WithArgs(int64(4), int64(7), 0.0, nil, "", nil, "", true).
		WillReturnResult(sqlmock.NewResult(12, 1))

	e := models.InitialExpense(4, 7)
	if err := (ExpenseRepository{DB: db}).Create(context.Background(), &e); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExpenseRepositoryScansNullableColumns(t *testing.T) {
	db, mock := newMock(t)
	paid := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT (.+) FROM expenses WHERE trip_id").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "user_id", "amount", "paid_on", "split_type", "category", "category_description", "status"}).
			AddRow(int64(1), int64(4), int64(7), 0.0, nil, "", nil, "", true).
			AddRow(int64(2), int64(4), int64(7), 25.5, paid, "equal", "food", "dinner", true))

	list, err := (ExpenseRepository{DB: db}).ListByTrip(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListByTrip returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(list))
	}
	if list[0].PaidOn != nil || list[0].Category != nil {
		t.Fatalf("expected nil paidOn/category, got %+v", list[0])
	}
	if list[1].PaidOn == nil || !list[1].PaidOn.Equal(paid) || list[1].Category == nil || *list[1].Category != "food" {
		t.Fatalf("unexpected second expense %+v", list[1])
	}
}

func TestItineraryRepositoryListByTripOrdersByDate(t *testing.T) {
	db, mock := newMock(t)
	d0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT (.+) FROM itineraries WHERE trip_id=\\? ORDER BY date ASC").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "date", "notes", "status"}).
			AddRow(int64(1), int64(4), d0, "", true).
			AddRow(int64(2), int64(4), d0.AddDate(0, 0, 1), "museum", true))

	days, err := (ItineraryRepository{DB: db}).ListByTrip(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListByTrip returned error: %v", err)
	}
	if len(days) != 2 || days[1].Notes != "museum" {
		t.Fatalf("unexpected itinerary %+v", days)
	}
}

func TestTravelerRepositoryCreateAndDelete(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO travelers").WithArgs(int64(4), int64(7), true).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("DELETE FROM travelers").WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TravelerRepository{DB: db}
	tr := models.InitialTraveler(4, 7)
	if err := repo.Create(context.Background(), &tr); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.Delete(context.Background(), tr.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}

func TestUserRepositoryDuplicateIsConflict(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ana' for key 'uq_users_username'"})

	err := (UserRepository{DB: db}).Create(context.Background(), &models.User{Username: "ana"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestTravelerRepositoryMissingUserIsValidation(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO travelers").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})

	err := (TravelerRepository{DB: db}).Create(context.Background(), &models.Traveler{TripID: 1, UserID: 404, Status: true})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUserRepositoryDeleteReferencedIsConflict(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM users").WithArgs(int64(7)).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row: a foreign key constraint fails"})

	err := (UserRepository{DB: db}).Delete(context.Background(), 7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestUserRepositoryGetByLogin(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=\\? OR username=\\?").WithArgs("ana", "ana").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "username", "email", "phone", "password_hash", "role", "status", "created_at", "updated_at"}).
			AddRow(int64(7), "Ana", "ana", "ana@example.com", "", "hash", "user", true, now, now))

	u, err := (UserRepository{DB: db}).GetByLogin(context.Background(), "ana")
	if err != nil {
		t.Fatalf("GetByLogin returned error: %v", err)
	}
	if u.ID != 7 || u.PasswordHash != "hash" {
		t.Fatalf("unexpected user %+v", u)
	}
}
