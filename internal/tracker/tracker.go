// Package tracker implements calorie tracking: an in-memory running
// accumulator with the classic message-based interface, and a
// persistent journal over the storage collaborator.
package tracker

import "fmt"

// Accumulator keeps a single running calorie total. One accumulator
// belongs to one tracking session; it is not safe for concurrent use.
type Accumulator struct {
	total int
}

// NewAccumulator creates an accumulator starting at zero.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Total returns the current running total.
func (a *Accumulator) Total() int {
	return a.total
}

// Add adds an integer amount to the running total and reports the new
// total. Non-integer numeric input and wholly non-numeric input are
// rejected with distinct messages, and neither changes the total.
// Negative amounts are accepted and subtract.
func (a *Accumulator) Add(amount any) string {
	n, ok := amount.(int)
	if !ok {
		switch amount.(type) {
		case float32, float64:
			return "Please input an integer value"
		default:
			return "Only numeric characters are allowed"
		}
	}

	a.total += n
	return fmt.Sprintf("Total Daily Calories: %d", a.total)
}
