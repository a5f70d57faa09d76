package repositories

import (
	"context"
	"database/sql"

	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain/models"
)

const expenseColumns = `id, trip_id, user_id, amount, paid_on, split_type, category, category_description, status`

type ExpenseRepository struct {
	DB intdb.DBTX
}

func scanExpense(s rowScanner) (models.Expense, error) {
	var (
		e        models.Expense
		paidOn   sql.NullTime
		category sql.NullString
	)
	err := s.Scan(&e.ID, &e.TripID, &e.UserID, &e.Amount, &paidOn, &e.SplitType, &category, &e.CategoryDescription, &e.Status)
	e.PaidOn = intdb.TimePtr(paidOn)
	e.Category = intdb.StringPtr(category)
	return e, err
}

func (r ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("expense", "insert", 0, err)
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO expenses (trip_id, user_id, amount, paid_on, split_type, category, category_description, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.TripID, e.UserID, e.Amount, intdb.NullTime(e.PaidOn), e.SplitType,
		intdb.NullString(e.Category), e.CategoryDescription, e.Status)
	if err != nil {
		return storeErr("expense", "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("expense", "insert", 0, err)
	}
	e.ID = id
	return nil
}

func (r ExpenseRepository) GetByID(ctx context.Context, id int64) (models.Expense, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Expense{}, storeErr("expense", "select", id, err)
	}
	e, err := scanExpense(db.QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Expense{}, storeErr("expense", "select", id, err)
	}
	return e, nil
}

func (r ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY id ASC`)
}

func (r ExpenseRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Expense, error) {
	return r.list(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE trip_id=? ORDER BY id ASC`, tripID)
}

func (r ExpenseRepository) list(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, storeErr("expense", "list", 0, err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("expense", "list", 0, err)
	}
	defer rows.Close()

	out := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return out, storeErr("expense", "list", 0, err)
		}
		out = append(out, e)
	}
	return out, storeErr("expense", "list", 0, rows.Err())
}

func (r ExpenseRepository) Update(ctx context.Context, e models.Expense) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("expense", "update", e.ID, err)
	}
	res, err := db.ExecContext(ctx, `
		UPDATE expenses
		SET trip_id=?, user_id=?, amount=?, paid_on=?, split_type=?, category=?, category_description=?, status=?
		WHERE id=?
	`, e.TripID, e.UserID, e.Amount, intdb.NullTime(e.PaidOn), e.SplitType,
		intdb.NullString(e.Category), e.CategoryDescription, e.Status, e.ID)
	if err != nil {
		return storeErr("expense", "update", e.ID, err)
	}
	return expectOne("expense", "update", e.ID, res)
}

func (r ExpenseRepository) Delete(ctx context.Context, id int64) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("expense", "delete", id, err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM expenses WHERE id=?`, id)
	if err != nil {
		return storeErr("expense", "delete", id, err)
	}
	return expectOne("expense", "delete", id, res)
}
