package models

type Budget struct {
	ID          int64
	TripID      int64
	Amount      float64
	Description string
	Status      bool
}

// InitialBudget is the zero budget every new trip starts with.
func InitialBudget(tripID int64) Budget {
	return Budget{TripID: tripID, Amount: 0, Status: true}
}
