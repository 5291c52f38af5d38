package entity

// Category groups reviews. Rows are created out-of-band (seed data,
// admin tooling) and are immutable as far as this service is concerned.
type Category struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}
