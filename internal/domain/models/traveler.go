package models

type Traveler struct {
	ID     int64
	TripID int64
	UserID int64
	Status bool
}

func InitialTraveler(tripID, userID int64) Traveler {
	return Traveler{TripID: tripID, UserID: userID, Status: true}
}
