package calculations

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func mortgage() LoanParameters {
	return LoanParameters{
		Principal:         100000,
		AnnualRatePercent: 6,
		TermYears:         30,
		StartDate:         testStart,
	}
}

func TestBasePayment(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termYears         int
		want              float64
	}{
		{
			name:              "standard mortgage",
			principal:         100000,
			annualRatePercent: 6,
			termYears:         30,
			want:              599.55,
		},
		{
			name:              "zero rate",
			principal:         120000,
			annualRatePercent: 0,
			termYears:         10,
			want:              1000,
		},
		{
			name:              "short term",
			principal:         10000,
			annualRatePercent: 12,
			termYears:         1,
			want:              888.49,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.Round2(BasePayment(tt.principal, tt.annualRatePercent, tt.termYears))
			if got != tt.want {
				t.Errorf("BasePayment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBasePaymentZeroRateIsExact(t *testing.T) {
	for _, p := range []float64{1, 999.99, 250000, 1e9} {
		for _, years := range []int{1, 7, 30} {
			got := BasePayment(p, 0, years)
			want := p / float64(years*12)
			if got != want {
				t.Errorf("BasePayment(%v, 0, %d) = %v, want %v", p, years, got, want)
			}
		}
	}
}

func TestScheduleInvariants(t *testing.T) {
	configs := map[string]LoanParameters{
		"no extras": mortgage(),
		"extra monthly": func() LoanParameters {
			p := mortgage()
			p.ExtraMonthly = 200
			return p
		}(),
		"all extras": func() LoanParameters {
			p := mortgage()
			p.ExtraMonthly = 50
			p.ExtraYearly = 1000
			p.OneTimeExtra = &OneTimeExtra{Amount: 5000, Month: 7}
			return p
		}(),
		"zero rate": {Principal: 120000, AnnualRatePercent: 0, TermYears: 10, StartDate: testStart},
	}

	for name, p := range configs {
		t.Run(name, func(t *testing.T) {
			schedule, err := Schedule(p)
			if err != nil {
				t.Fatalf("Schedule() error = %v", err)
			}
			if len(schedule) > p.TermYears*12+safetyExtraMonths {
				t.Fatalf("schedule too long: %d", len(schedule))
			}
			r := monthlyRate(p.AnnualRatePercent)

			if schedule[0].BeginningBalance != p.Principal {
				t.Errorf("first beginning balance = %v, want %v", schedule[0].BeginningBalance, p.Principal)
			}
			for i, e := range schedule {
				if e.PaymentNumber != i+1 {
					t.Errorf("entry %d: payment number %d", i, e.PaymentNumber)
				}
				if i > 0 {
					prev := schedule[i-1]
					if e.BeginningBalance != prev.EndingBalance {
						t.Errorf("entry %d: beginning %v != previous ending %v", i, e.BeginningBalance, prev.EndingBalance)
					}
					if e.EndingBalance > prev.EndingBalance {
						t.Errorf("entry %d: ending balance increased", i)
					}
				}
				if e.InterestPortion != e.BeginningBalance*r {
					t.Errorf("entry %d: interest %v != %v", i, e.InterestPortion, e.BeginningBalance*r)
				}
				if e.PrincipalPortion+e.ExtraPayment > e.BeginningBalance+1e-9 {
					t.Errorf("entry %d: overpayment", i)
				}
				if e.EndingBalance < 0 {
					t.Errorf("entry %d: negative ending balance %v", i, e.EndingBalance)
				}
			}

			last := schedule[len(schedule)-1]
			if last.EndingBalance != 0 {
				t.Errorf("expected final balance 0, got %v", last.EndingBalance)
			}
			if last.RemainingYears != 0 {
				t.Errorf("expected remaining years 0, got %v", last.RemainingYears)
			}
		})
	}
}

func TestScheduleStandardMortgage(t *testing.T) {
	schedule, err := Schedule(mortgage())
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if len(schedule) != 360 {
		t.Fatalf("expected 360 payments, got %d", len(schedule))
	}

	sumPrincipal := 0.0
	for _, e := range schedule {
		sumPrincipal += e.PrincipalPortion
		if e.ExtraPayment != 0 {
			t.Errorf("payment %d: unexpected extra %v", e.PaymentNumber, e.ExtraPayment)
		}
	}
	if math.Abs(sumPrincipal-100000)/100000 > 1e-6 {
		t.Errorf("principal portions sum to %v, want 100000", sumPrincipal)
	}

	first := schedule[0]
	if utils.Round2(first.InterestPortion) != 500 {
		t.Errorf("first interest = %v, want 500", first.InterestPortion)
	}
	if !first.PaymentDate.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first payment date = %v", first.PaymentDate)
	}
	if first.RemainingYears != 359.0/12.0 {
		t.Errorf("first remaining years = %v", first.RemainingYears)
	}

	last := schedule[359]
	if math.Abs(last.CumulativeInterest-115838.19) > 0.05 {
		t.Errorf("total interest = %v, want ~115838.19", last.CumulativeInterest)
	}
	if math.Abs(last.CumulativePrincipal-100000) > 1e-6 {
		t.Errorf("cumulative principal = %v", last.CumulativePrincipal)
	}
}

func TestScheduleExtraMonthlyShortensLoan(t *testing.T) {
	base, err := Schedule(mortgage())
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	p := mortgage()
	p.ExtraMonthly = 200
	extra, err := Schedule(p)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if len(extra) >= len(base) {
		t.Errorf("expected shorter schedule, got %d vs %d", len(extra), len(base))
	}
	baseInterest := base[len(base)-1].CumulativeInterest
	extraInterest := extra[len(extra)-1].CumulativeInterest
	if extraInterest >= baseInterest {
		t.Errorf("expected less interest, got %v vs %v", extraInterest, baseInterest)
	}
}

func TestScheduleExtraModes(t *testing.T) {
	p := mortgage()
	p.ExtraYearly = 1200
	p.OneTimeExtra = &OneTimeExtra{Amount: 10000, Month: 6}

	schedule, err := Schedule(p)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	tests := []struct {
		payment int
		want    float64
	}{
		{payment: 1, want: 0},
		{payment: 6, want: 10000},
		{payment: 11, want: 0},
		{payment: 12, want: 1200},
		{payment: 24, want: 1200},
	}
	for _, tt := range tests {
		if got := schedule[tt.payment-1].ExtraPayment; got != tt.want {
			t.Errorf("payment %d: extra = %v, want %v", tt.payment, got, tt.want)
		}
	}
}

func TestScheduleFinalPaymentTruncated(t *testing.T) {
	p := mortgage()
	p.ExtraMonthly = 60000

	schedule, err := Schedule(p)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(schedule))
	}

	last := schedule[1]
	if last.ExtraPayment >= 60000 {
		t.Errorf("final extra should be truncated, got %v", last.ExtraPayment)
	}
	if math.Abs(last.PrincipalPortion+last.ExtraPayment-last.BeginningBalance) > 1e-9 {
		t.Errorf("final payment should clear the balance exactly")
	}
	if last.EndingBalance != 0 {
		t.Errorf("expected final balance 0, got %v", last.EndingBalance)
	}
}

func TestScheduleIsDeterministic(t *testing.T) {
	p := mortgage()
	p.ExtraMonthly = 100
	p.OneTimeExtra = &OneTimeExtra{Amount: 2500, Month: 3}

	first, err := Schedule(p)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	second, err := Schedule(p)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different schedules")
	}
}

func TestScheduleNonConvergent(t *testing.T) {
	tests := []struct {
		name              string
		annualRatePercent float64
	}{
		{name: "payment equals interest", annualRatePercent: 5000},
		{name: "payment overflows", annualRatePercent: 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mortgage()
			p.AnnualRatePercent = tt.annualRatePercent
			schedule, err := Schedule(p)
			if !errors.Is(err, ErrNonConvergentLoan) {
				t.Fatalf("expected ErrNonConvergentLoan, got %v", err)
			}
			if schedule != nil {
				t.Error("expected no schedule")
			}
		})
	}
}

func TestScheduleSafetyCap(t *testing.T) {
	// Отрицательный досрочный платеж увеличивает долг, график упирается в предел term*12+120
	p := mortgage()
	p.ExtraMonthly = -150

	schedule, err := Schedule(p)
	if !errors.Is(err, ErrNonConvergentLoan) {
		t.Fatalf("expected ErrNonConvergentLoan, got %v", err)
	}
	if schedule != nil {
		t.Errorf("expected no schedule, got %d entries", len(schedule))
	}
	if !strings.Contains(err.Error(), "480") {
		t.Errorf("error %q should name the payment limit", err)
	}
}

func TestCalculate(t *testing.T) {
	result, err := Calculate(mortgage())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if result.Summary.MonthlyPayment != 599.55 {
		t.Errorf("monthly payment = %v, want 599.55", result.Summary.MonthlyPayment)
	}
	if result.Summary.Payments != 360 {
		t.Errorf("payments = %d, want 360", result.Summary.Payments)
	}
	if result.Summary.TotalPaid <= result.Summary.Principal {
		t.Error("total paid should be greater than principal")
	}
	if !result.Summary.PayoffDate.Equal(time.Date(2055, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("payoff date = %v", result.Summary.PayoffDate)
	}
	if result.Comparison != nil {
		t.Error("comparison is only computed when extras are set")
	}
	if len(result.Yearly) != 30 {
		t.Errorf("expected 30 yearly rows, got %d", len(result.Yearly))
	}
}

func TestCalculateWithExtras(t *testing.T) {
	p := mortgage()
	p.ExtraMonthly = 200

	result, err := Calculate(p)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if result.Comparison == nil {
		t.Fatal("expected comparison")
	}
	if result.Comparison.MonthsSaved <= 0 {
		t.Errorf("months saved = %d", result.Comparison.MonthsSaved)
	}
	if result.Comparison.InterestSaved <= 0 {
		t.Errorf("interest saved = %v", result.Comparison.InterestSaved)
	}
	if result.Summary.TotalExtraPayments <= 0 {
		t.Error("expected extra payments in summary")
	}
	if want := fmt.Sprintf("на %d мес.", result.Comparison.MonthsSaved); !strings.Contains(result.Comparison.Recommendation, want) {
		t.Errorf("recommendation %q should mention %q", result.Comparison.Recommendation, want)
	}
}

func TestYearlySummary(t *testing.T) {
	schedule, err := Schedule(mortgage())
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	rows := YearlySummary(schedule)
	if len(rows) != 30 {
		t.Fatalf("expected 30 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Year != i+1 || row.Payments != 12 {
			t.Errorf("row %d: year %d payments %d", i, row.Year, row.Payments)
		}
	}
	if rows[29].EndingBalance != 0 {
		t.Errorf("last row balance = %v", rows[29].EndingBalance)
	}
	if rows[0].Interest <= rows[0].Principal {
		t.Error("early years should be interest-heavy")
	}
}
