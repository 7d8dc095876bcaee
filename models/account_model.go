package models

import "time"

// Account maps a login to the opaque principal the marketplace stores see.
type Account struct {
	Principal Principal `json:"principal"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
