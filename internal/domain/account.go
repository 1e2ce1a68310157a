package domain

import "time"

// Account represents a registered user of the tracker.
// Accounts are created on sign-up and never updated or deleted.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"` // Unique, case-sensitive
	PasswordDigest string    `json:"-"`        // Never expose this via JSON
	CreatedAt      time.Time `json:"createdAt"`
}
