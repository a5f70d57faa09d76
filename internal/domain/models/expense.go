package models

import "time"

type Expense struct {
	ID                  int64
	TripID              int64
	UserID              int64
	Amount              float64
	PaidOn              *time.Time
	SplitType           string
	Category            *string
	CategoryDescription string
	Status              bool
}

// InitialExpense is the empty expense line opened for the trip creator.
func InitialExpense(tripID, userID int64) Expense {
	return Expense{
		TripID:              tripID,
		UserID:              userID,
		Amount:              0,
		PaidOn:              nil,
		SplitType:           "",
		Category:            nil,
		CategoryDescription: "",
		Status:              true,
	}
}
