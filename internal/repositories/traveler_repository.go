package repositories

import (
	"context"

	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain/models"
)

const travelerColumns = `id, trip_id, user_id, status`

type TravelerRepository struct {
	DB intdb.DBTX
}

func scanTraveler(s rowScanner) (models.Traveler, error) {
	var tr models.Traveler
	err := s.Scan(&tr.ID, &tr.TripID, &tr.UserID, &tr.Status)
	return tr, err
}

func (r TravelerRepository) Create(ctx context.Context, tr *models.Traveler) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("traveler", "insert", 0, err)
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO travelers (trip_id, user_id, status) VALUES (?, ?, ?)`,
		tr.TripID, tr.UserID, tr.Status)
	if err != nil {
		return storeErr("traveler", "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("traveler", "insert", 0, err)
	}
	tr.ID = id
	return nil
}

func (r TravelerRepository) GetByID(ctx context.Context, id int64) (models.Traveler, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Traveler{}, storeErr("traveler", "select", id, err)
	}
	tr, err := scanTraveler(db.QueryRowContext(ctx, `SELECT `+travelerColumns+` FROM travelers WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Traveler{}, storeErr("traveler", "select", id, err)
	}
	return tr, nil
}

func (r TravelerRepository) List(ctx context.Context) ([]models.Traveler, error) {
	return r.list(ctx, `SELECT `+travelerColumns+` FROM travelers ORDER BY id ASC`)
}

func (r TravelerRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Traveler, error) {
	return r.list(ctx, `SELECT `+travelerColumns+` FROM travelers WHERE trip_id=? ORDER BY id ASC`, tripID)
}

func (r TravelerRepository) list(ctx context.Context, query string, args ...any) ([]models.Traveler, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, storeErr("traveler", "list", 0, err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("traveler", "list", 0, err)
	}
	defer rows.Close()

	out := []models.Traveler{}
	for rows.Next() {
		tr, err := scanTraveler(rows)
		if err != nil {
			return out, storeErr("traveler", "list", 0, err)
		}
		out = append(out, tr)
	}
	return out, storeErr("traveler", "list", 0, rows.Err())
}

func (r TravelerRepository) Update(ctx context.Context, tr models.Traveler) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("traveler", "update", tr.ID, err)
	}
	res, err := db.ExecContext(ctx,
		`UPDATE travelers SET trip_id=?, user_id=?, status=? WHERE id=?`,
		tr.TripID, tr.UserID, tr.Status, tr.ID)
	if err != nil {
		return storeErr("traveler", "update", tr.ID, err)
	}
	return expectOne("traveler", "update", tr.ID, res)
}

func (r TravelerRepository) Delete(ctx context.Context, id int64) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("traveler", "delete", id, err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM travelers WHERE id=?`, id)
	if err != nil {
		return storeErr("traveler", "delete", id, err)
	}
	return expectOne("traveler", "delete", id, res)
}
