package repositories

import (
	"context"

	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain/models"
)

const budgetColumns = `id, trip_id, amount, COALESCE(description,''), status`

type BudgetRepository struct {
	DB intdb.DBTX
}

func scanBudget(s rowScanner) (models.Budget, error) {
	var b models.Budget
	err := s.Scan(&b.ID, &b.TripID, &b.Amount, &b.Description, &b.Status)
	return b, err
}

func (r BudgetRepository) Create(ctx context.Context, b *models.Budget) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("budget", "insert", 0, err)
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO budgets (trip_id, amount, description, status) VALUES (?, ?, ?, ?)`,
		b.TripID, b.Amount, intdb.NullIfEmpty(b.Description), b.Status)
	if err != nil {
		return storeErr("budget", "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("budget", "insert", 0, err)
	}
	b.ID = id
	return nil
}

func (r BudgetRepository) GetByID(ctx context.Context, id int64) (models.Budget, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Budget{}, storeErr("budget", "select", id, err)
	}
	b, err := scanBudget(db.QueryRowContext(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Budget{}, storeErr("budget", "select", id, err)
	}
	return b, nil
}

func (r BudgetRepository) List(ctx context.Context) ([]models.Budget, error) {
	return r.list(ctx, `SELECT `+budgetColumns+` FROM budgets ORDER BY id ASC`)
}

func (r BudgetRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Budget, error) {
	return r.list(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE trip_id=? ORDER BY id ASC`, tripID)
}

func (r BudgetRepository) list(ctx context.Context, query string, args ...any) ([]models.Budget, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, storeErr("budget", "list", 0, err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("budget", "list", 0, err)
	}
	defer rows.Close()

	out := []models.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return out, storeErr("budget", "list", 0, err)
		}
		out = append(out, b)
	}
	return out, storeErr("budget", "list", 0, rows.Err())
}

func (r BudgetRepository) Update(ctx context.Context, b models.Budget) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("budget", "update", b.ID, err)
	}
	res, err := db.ExecContext(ctx,
		`UPDATE budgets SET trip_id=?, amount=?, description=?, status=? WHERE id=?`,
		b.TripID, b.Amount, intdb.NullIfEmpty(b.Description), b.Status, b.ID)
	if err != nil {
		return storeErr("budget", "update", b.ID, err)
	}
	return expectOne("budget", "update", b.ID, res)
}

func (r BudgetRepository) Delete(ctx context.Context, id int64) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("budget", "delete", id, err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM budgets WHERE id=?`, id)
	if err != nil {
		return storeErr("budget", "delete", id, err)
	}
	return expectOne("budget", "delete", id, res)
}
