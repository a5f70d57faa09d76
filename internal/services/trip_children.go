package services

import (
	"context"

	"tripplanner/internal/domain"
)

// requireTrip turns a dangling trip reference into a ValidationError.
func requireTrip(ctx context.Context, trips TripStore, tripID int64) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "trip", Msg: "trip id is required"}
	}
	if trips == nil {
		return nil
	}
	if _, err := trips.GetByID(ctx, tripID); err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Field: "trip", Msg: "trip does not exist", Err: err}
		}
		return err
	}
	return nil
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: field, Msg: "invalid id"}
	}
	return nil
}
