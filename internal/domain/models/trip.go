package models

import "time"

// Trip is a planned journey owned by the user who created it.
type Trip struct {
	ID          int64
	TripCode    string
	Name        string
	Destination string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      bool
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
