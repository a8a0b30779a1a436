package models

// Subject is a course topic scoped to one academic year.
// Static reference data seeded at startup.
type Subject struct {
	ID     int64
	Name   string
	YearID int
}
