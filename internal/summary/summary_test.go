package summary

import (
	"errors"
	"math"
	"testing"

	"github.com/plateplanner/backend/internal/models"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{"normal", 165.0, 55.0, 20.2, false},
		{"tall and heavy", 200.0, 100.0, 25.0, false},
		{"height too low", 40.0, 55.0, 0, true},
		{"weight too high", 165.0, 400.0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.heightCm, tt.weightKg)
			if tt.wantErr {
				if !errors.Is(err, ErrImplausible) {
					t.Errorf("error = %v, want ErrImplausible", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BMI failed: %v", err)
			}
			if math.Abs(got-tt.want) > 0.05 {
				t.Errorf("BMI = %v, want ~%v", got, tt.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.0, "Overweight"},
		{32.0, "Obesity class I"},
		{37.0, "Obesity class II"},
		{45.0, "Obesity class III"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := BMICategory(tt.bmi); got != tt.want {
				t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	totals := []models.DailyTotal{
		{Date: "2026-08-31", Total: 1800},
		{Date: "2026-08-30", Total: 2400},
		{Date: "2026-08-28", Total: 2000},
	}

	week := Summarize(totals, 2000.0)
	if week.Total != 6200 {
		t.Errorf("Total = %d, want 6200", week.Total)
	}
	if week.Average != 2067 {
		t.Errorf("Average = %d, want 2067", week.Average)
	}
	if week.DaysLogged != 3 {
		t.Errorf("DaysLogged = %d, want 3", week.DaysLogged)
	}
	if week.DaysOnTarget != 2 {
		t.Errorf("DaysOnTarget = %d, want 2", week.DaysOnTarget)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	week := Summarize(nil, 2000.0)
	if week.Total != 0 || week.Average != 0 || week.DaysLogged != 0 || week.DaysOnTarget != 0 {
		t.Errorf("empty summary = %+v", week)
	}
}

func TestSummarizeCapsAtSevenDays(t *testing.T) {
	totals := make([]models.DailyTotal, 10)
	for i := range totals {
		totals[i] = models.DailyTotal{Date: "2026-08-01", Total: 100}
	}

	week := Summarize(totals, 2000.0)
	if week.DaysLogged != 7 {
		t.Errorf("DaysLogged = %d, want 7", week.DaysLogged)
	}
	if week.Total != 700 {
		t.Errorf("Total = %d, want 700", week.Total)
	}
}
