package models

import "time"

// Itinerary is one day's entry within a trip's date range.
type Itinerary struct {
	ID     int64
	TripID int64
	Date   time.Time
	Notes  string
	Status bool
}

func InitialItinerary(tripID int64, day time.Time) Itinerary {
	return Itinerary{TripID: tripID, Date: day, Status: true}
}
