package repositories

import (
	"context"
	"time"

	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain/models"
)

const tripColumns = `id, trip_code, name, destination, COALESCE(description,''),
	start_date, end_date, status, user_id, created_at, updated_at`

type TripRepository struct {
	DB intdb.DBTX
}

func scanTrip(s rowScanner) (models.Trip, error) {
	var t models.Trip
	err := s.Scan(
		&t.ID,
		&t.TripCode,
		&t.Name,
		&t.Destination,
		&t.Description,
		&t.StartDate,
		&t.EndDate,
		&t.Status,
		&t.UserID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

// Create inserts trip and stores the assigned id back on it.
func (r TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("trip", "insert", 0, err)
	}

	now := time.Now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO trips (trip_code, name, destination, description, start_date, end_date, status, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trip.TripCode, trip.Name, trip.Destination, intdb.NullIfEmpty(trip.Description),
		trip.StartDate, trip.EndDate, trip.Status, trip.UserID, now, now)
	if err != nil {
		return storeErr("trip", "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("trip", "insert", 0, err)
	}
	trip.ID = id
	trip.CreatedAt = now
	trip.UpdatedAt = now
	return nil
}

func (r TripRepository) GetByID(ctx context.Context, id int64) (models.Trip, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Trip{}, storeErr("trip", "select", id, err)
	}
	row := db.QueryRowContext(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = ? LIMIT 1`, id)
	t, err := scanTrip(row)
	if err != nil {
		return models.Trip{}, storeErr("trip", "select", id, err)
	}
	return t, nil
}

func (r TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, storeErr("trip", "list", 0, err)
	}
	rows, err := db.QueryContext(ctx, `SELECT `+tripColumns+` FROM trips ORDER BY start_date ASC, id ASC`)
	if err != nil {
		return nil, storeErr("trip", "list", 0, err)
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, storeErr("trip", "list", 0, err)
		}
		out = append(out, t)
	}
	return out, storeErr("trip", "list", 0, rows.Err())
}

func (r TripRepository) Update(ctx context.Context, trip models.Trip) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("trip", "update", trip.ID, err)
	}
	res, err := db.ExecContext(ctx, `
		UPDATE trips
		SET trip_code=?, name=?, destination=?, description=?, start_date=?, end_date=?, status=?, user_id=?, updated_at=?
		WHERE id=?
	`, trip.TripCode, trip.Name, trip.Destination, intdb.NullIfEmpty(trip.Description),
		trip.StartDate, trip.EndDate, trip.Status, trip.UserID, time.Now(), trip.ID)
	if err != nil {
		return storeErr("trip", "update", trip.ID, err)
	}
	return expectOne("trip", "update", trip.ID, res)
}

// Delete removes the trip; child rows go with it through ON DELETE CASCADE.
func (r TripRepository) Delete(ctx context.Context, id int64) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("trip", "delete", id, err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return storeErr("trip", "delete", id, err)
	}
	return expectOne("trip", "delete", id, res)
}
