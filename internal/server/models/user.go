// Package models defines server-side data models persisted by repositories.
package models

import "time"

// User is a registered identity. UserName doubles as the holder label that
// takes part in content fingerprints.
type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
