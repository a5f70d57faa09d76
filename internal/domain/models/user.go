package models

import "time"

type User struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
