package calculations

import (
	"errors"
	"testing"
)

func TestBiweeklySchedule(t *testing.T) {
	result, err := BiweeklySchedule(300000, 7, 30)
	if err != nil {
		t.Fatalf("BiweeklySchedule() error = %v", err)
	}

	if result.PayoffYears >= 30 {
		t.Errorf("expected payoff before 30 years, got %v", result.PayoffYears)
	}
	if result.InterestSavings <= 0 {
		t.Errorf("expected positive interest savings, got %v", result.InterestSavings)
	}
	if result.YearsSaved <= 0 {
		t.Errorf("expected positive years saved, got %v", result.YearsSaved)
	}
	if result.BiweeklyPayment != 997.95 {
		t.Errorf("biweekly payment = %v, want 997.95", result.BiweeklyPayment)
	}
	if result.Payments != 617 {
		t.Errorf("payments = %d, want 617", result.Payments)
	}
	if result.TotalInterest >= result.StandardTotalInterest {
		t.Error("biweekly interest should be below the monthly schedule interest")
	}
}

func TestBiweeklyScheduleZeroRate(t *testing.T) {
	result, err := BiweeklySchedule(120000, 0, 10)
	if err != nil {
		t.Fatalf("BiweeklySchedule() error = %v", err)
	}
	if result.Payments != 240 {
		t.Errorf("payments = %d, want 240", result.Payments)
	}
	if result.TotalInterest != 0 || result.InterestSavings != 0 {
		t.Errorf("expected no interest, got %v / %v", result.TotalInterest, result.InterestSavings)
	}
	if result.PayoffYears >= 10 {
		t.Errorf("payoff years = %v", result.PayoffYears)
	}
}

func TestBiweeklyScheduleNonConvergent(t *testing.T) {
	_, err := BiweeklySchedule(100000, 100000, 30)
	if !errors.Is(err, ErrNonConvergentLoan) {
		t.Fatalf("expected ErrNonConvergentLoan, got %v", err)
	}
}
