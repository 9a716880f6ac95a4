// Package summary derives presentation-ready statistics from validated
// profile data and the calorie journal. All functions are pure
// computations over in-memory values.
package summary

import (
	"errors"
	"math"

	"github.com/plateplanner/backend/internal/models"
)

// ErrImplausible is returned when height or weight falls outside the
// range the profile validators allow.
var ErrImplausible = errors.New("height/weight out of plausible range")

// BMI computes body mass index from height in centimeters and weight in
// kilograms.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 3 || weightKg > 300 {
		return 0, ErrImplausible
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

// BMICategory maps a BMI value onto the standard WHO bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// Weekly summarizes up to a week of per-day journal totals against a
// daily calorie goal.
type Weekly struct {
	// Total is the sum across all days with entries.
	Total int

	// Average is the mean daily total, rounded to the nearest integer.
	// Zero when there are no days.
	Average int

	// DaysLogged is the number of days with at least one entry.
	DaysLogged int

	// DaysOnTarget is the number of logged days at or under the goal.
	DaysOnTarget int
}

// Summarize aggregates per-day totals against goal. Totals beyond the
// first seven days are ignored; the journal already returns days newest
// first.
func Summarize(totals []models.DailyTotal, goal float64) Weekly {
	if len(totals) > 7 {
		totals = totals[:7]
	}

	var w Weekly
	for _, day := range totals {
		w.Total += day.Total
		w.DaysLogged++
		if float64(day.Total) <= goal {
			w.DaysOnTarget++
		}
	}
	if w.DaysLogged > 0 {
		w.Average = int(math.Round(float64(w.Total) / float64(w.DaysLogged)))
	}
	return w
}
