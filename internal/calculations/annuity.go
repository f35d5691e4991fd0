package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

const (
	// balanceEpsilon остаток, ниже которого долг считается погашенным
	balanceEpsilon = 0.01
	// safetyExtraMonths запас платежей сверх срока, после которого график считается расходящимся
	safetyExtraMonths = 120
)

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}

// BasePayment рассчитывает ежемесячный аннуитетный платеж.
// При нулевой ставке долг делится на равные части без процентов.
func BasePayment(principal, annualRatePercent float64, termYears int) float64 {
	n := float64(termYears * 12)
	r := monthlyRate(annualRatePercent)
	if r == 0.0 {
		return principal / n
	}
	factor := math.Pow(1.0+r, n)
	return principal * r * factor / (factor - 1.0)
}

// checkConvergence проверяет, что платеж гасит хотя бы часть долга уже в первом периоде
func checkConvergence(principal, payment, r float64) error {
	if !utils.IsFinite(payment) || payment <= 0 {
		return fmt.Errorf("%w: платеж не является конечным положительным числом", ErrNonConvergentLoan)
	}
	firstInterest := principal * r
	if payment-firstInterest <= 0 {
		return fmt.Errorf("%w: платеж %.2f, проценты первого периода %.2f", ErrNonConvergentLoan, payment, firstInterest)
	}
	return nil
}

func extraFor(p LoanParameters, paymentNumber int) float64 {
	extra := p.ExtraMonthly
	if paymentNumber%12 == 0 {
		extra += p.ExtraYearly
	}
	if p.OneTimeExtra != nil && p.OneTimeExtra.Month == paymentNumber {
		extra += p.OneTimeExtra.Amount
	}
	return extra
}

// Schedule рассчитывает помесячный график аннуитетного кредита с досрочными платежами.
// Последний платеж усекается так, чтобы остаток стал ровно нулевым.
func Schedule(p LoanParameters) ([]AmortizationEntry, error) {
	r := monthlyRate(p.AnnualRatePercent)
	base := BasePayment(p.Principal, p.AnnualRatePercent, p.TermYears)
	if err := checkConvergence(p.Principal, base, r); err != nil {
		return nil, err
	}

	maxPayments := p.TermYears*12 + safetyExtraMonths
	schedule := make([]AmortizationEntry, 0, p.TermYears*12)
	remaining := p.Principal
	cumI := 0.0
	cumP := 0.0

	for n := 1; n == 1 || remaining > balanceEpsilon; n++ {
		if n > maxPayments {
			return nil, fmt.Errorf("%w: остаток %.2f после %d платежей", ErrNonConvergentLoan, remaining, maxPayments)
		}

		interest := remaining * r
		principalComponent := base - interest
		extra := extraFor(p, n)

		if principalComponent >= remaining {
			principalComponent = remaining
			extra = 0
		} else if principalComponent+extra > remaining {
			extra = remaining - principalComponent
		}

		ending := remaining - principalComponent - extra
		if ending <= balanceEpsilon {
			principalComponent += ending
			ending = 0
		}

		cumI += interest
		cumP += principalComponent + extra

		schedule = append(schedule, AmortizationEntry{
			PaymentNumber:       n,
			PaymentDate:         utils.AddMonths(p.StartDate, n),
			BeginningBalance:    remaining,
			ScheduledPayment:    principalComponent + interest,
			PrincipalPortion:    principalComponent,
			InterestPortion:     interest,
			ExtraPayment:        extra,
			EndingBalance:       ending,
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})

		remaining = ending
	}

	total := len(schedule)
	for i := range schedule {
		schedule[i].RemainingYears = float64(total-schedule[i].PaymentNumber) / 12.0
	}

	return schedule, nil
}

// Calculate выполняет полный расчет кредитного калькулятора по текущим параметрам
func Calculate(p LoanParameters) (*LoanResult, error) {
	schedule, err := Schedule(p)
	if err != nil {
		return nil, err
	}

	totalPaid := 0.0
	totalExtra := 0.0
	for _, e := range schedule {
		totalPaid += e.ScheduledPayment + e.ExtraPayment
		totalExtra += e.ExtraPayment
	}
	last := schedule[len(schedule)-1]

	result := &LoanResult{
		Summary: LoanSummary{
			Principal:          utils.Round2(p.Principal),
			AnnualRatePercent:  utils.Round2(p.AnnualRatePercent),
			TermYears:          p.TermYears,
			MonthlyPayment:     utils.Round2(BasePayment(p.Principal, p.AnnualRatePercent, p.TermYears)),
			Payments:           len(schedule),
			TotalPaid:          utils.Round2(totalPaid),
			TotalInterest:      utils.Round2(last.CumulativeInterest),
			TotalExtraPayments: utils.Round2(totalExtra),
			PayoffDate:         last.PaymentDate,
		},
		Schedule: schedule,
		Yearly:   YearlySummary(schedule),
	}

	if p.HasExtras() {
		comparison, err := CompareExtraPayments(p)
		if err != nil {
			return nil, err
		}
		result.Comparison = comparison
	}

	return result, nil
}

// YearlySummary агрегирует график по годам (по 12 платежей)
func YearlySummary(schedule []AmortizationEntry) []YearlyRow {
	rows := make([]YearlyRow, 0, len(schedule)/12+1)
	for _, e := range schedule {
		year := (e.PaymentNumber-1)/12 + 1
		if len(rows) == 0 || rows[len(rows)-1].Year != year {
			rows = append(rows, YearlyRow{Year: year})
		}
		row := &rows[len(rows)-1]
		row.Payments++
		row.Principal += e.PrincipalPortion
		row.Interest += e.InterestPortion
		row.ExtraPayment += e.ExtraPayment
		row.EndingBalance = e.EndingBalance
	}
	for i := range rows {
		rows[i].Principal = utils.Round2(rows[i].Principal)
		rows[i].Interest = utils.Round2(rows[i].Interest)
		rows[i].ExtraPayment = utils.Round2(rows[i].ExtraPayment)
		rows[i].EndingBalance = utils.Round2(rows[i].EndingBalance)
	}
	return rows
}
