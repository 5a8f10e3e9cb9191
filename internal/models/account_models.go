package models

// Account represents a single customer account record
type Account struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Email       string  `json:"email" db:"email"`
	Address     string  `json:"address" db:"address"`
	PhoneNumber *string `json:"phone_number,omitempty" db:"phone_number"`
	DateJoined  Date    `json:"date_joined" db:"date_joined"` // Assigned by the system at creation, immutable afterwards
}
