package entity

import "time"

// AccessLog is one free-form line describing an API invocation.
// Append-only; nothing in this service reads it back.
type AccessLog struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
