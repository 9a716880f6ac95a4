package models

// CalorieEntry is one logged calorie amount in a user's journal.
type CalorieEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string

	// Username identifies whose journal the entry belongs to.
	Username string

	// Amount is the calorie amount. Negative amounts are corrections
	// and subtract from the day's total.
	Amount int

	// Timestamp is the Unix timestamp the entry was logged at.
	Timestamp int64
}

// DailyTotal is the summed calorie amount for one calendar day,
// as returned by journal history queries.
type DailyTotal struct {
	// Date is the calendar day in YYYY-MM-DD form.
	Date string

	// Total is the sum of all entry amounts on that day.
	Total int
}
