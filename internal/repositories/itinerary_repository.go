package repositories

import (
	"context"

	intdb "tripplanner/internal/db"
	"tripplanner/internal/domain/models"
)

const itineraryColumns = `id, trip_id, date, COALESCE(notes,''), status`

type ItineraryRepository struct {
	DB intdb.DBTX
}

func scanItinerary(s rowScanner) (models.Itinerary, error) {
	var it models.Itinerary
	err := s.Scan(&it.ID, &it.TripID, &it.Date, &it.Notes, &it.Status)
	return it, err
}

func (r ItineraryRepository) Create(ctx context.Context, it *models.Itinerary) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("itinerary", "insert", 0, err)
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO itineraries (trip_id, date, notes, status) VALUES (?, ?, ?, ?)`,
		it.TripID, it.Date, intdb.NullIfEmpty(it.Notes), it.Status)
	if err != nil {
		return storeErr("itinerary", "insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("itinerary", "insert", 0, err)
	}
	it.ID = id
	return nil
}

func (r ItineraryRepository) GetByID(ctx context.Context, id int64) (models.Itinerary, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Itinerary{}, storeErr("itinerary", "select", id, err)
	}
	it, err := scanItinerary(db.QueryRowContext(ctx, `SELECT `+itineraryColumns+` FROM itineraries WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Itinerary{}, storeErr("itinerary", "select", id, err)
	}
	return it, nil
}

func (r ItineraryRepository) List(ctx context.Context) ([]models.Itinerary, error) {
	return r.list(ctx, `SELECT `+itineraryColumns+` FROM itineraries ORDER BY trip_id ASC, date ASC, id ASC`)
}

// ListByTrip returns the trip's days in calendar order.
func (r ItineraryRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.Itinerary, error) {
	return r.list(ctx, `SELECT `+itineraryColumns+` FROM itineraries WHERE trip_id=? ORDER BY date ASC, id ASC`, tripID)
}

func (r ItineraryRepository) list(ctx context.Context, query string, args ...any) ([]models.Itinerary, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, storeErr("itinerary", "list", 0, err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("itinerary", "list", 0, err)
	}
	defer rows.Close()

	out := []models.Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return out, storeErr("itinerary", "list", 0, err)
		}
		out = append(out, it)
	}
	return out, storeErr("itinerary", "list", 0, rows.Err())
}

func (r ItineraryRepository) Update(ctx context.Context, it models.Itinerary) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("itinerary", "update", it.ID, err)
	}
	res, err := db.ExecContext(ctx,
		`UPDATE itineraries SET trip_id=?, date=?, notes=?, status=? WHERE id=?`,
		it.TripID, it.Date, intdb.NullIfEmpty(it.Notes), it.Status, it.ID)
	if err != nil {
		return storeErr("itinerary", "update", it.ID, err)
	}
	return expectOne("itinerary", "update", it.ID, res)
}

func (r ItineraryRepository) Delete(ctx context.Context, id int64) error {
	db, err := conn(r.DB)
	if err != nil {
		return storeErr("itinerary", "delete", id, err)
	}
	res, err := db.ExecContext(ctx, `DELETE FROM itineraries WHERE id=?`, id)
	if err != nil {
		return storeErr("itinerary", "delete", id, err)
	}
	return expectOne("itinerary", "delete", id, res)
}
