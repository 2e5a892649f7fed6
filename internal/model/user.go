// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account that owns an exercise log.
// The ID is store-assigned and immutable; the username is unique and
// immutable once created.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
