package calculations

import (
	"fmt"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

const biweeklyPeriodsPerYear = 26

// BiweeklySchedule моделирует выплату половины ежемесячного платежа каждые две недели.
// Ставка за период упрощенно равна годовой / 26, без учета фактического числа дней.
func BiweeklySchedule(principal, annualRatePercent float64, termYears int) (*BiweeklyAnalysis, error) {
	monthlyPayment := BasePayment(principal, annualRatePercent, termYears)
	biweeklyPayment := monthlyPayment / 2.0
	r := annualRatePercent / 100.0 / biweeklyPeriodsPerYear

	if err := checkConvergence(principal, biweeklyPayment, r); err != nil {
		return nil, err
	}

	standard, err := Schedule(LoanParameters{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermYears:         termYears,
	})
	if err != nil {
		return nil, err
	}
	standardInterest := standard[len(standard)-1].CumulativeInterest

	maxPayments := termYears * biweeklyPeriodsPerYear
	remaining := principal
	totalInterest := 0.0
	payments := 0

	for payments < maxPayments && remaining > balanceEpsilon {
		interest := remaining * r
		principalComponent := biweeklyPayment - interest
		if principalComponent > remaining {
			principalComponent = remaining
		}
		remaining -= principalComponent
		totalInterest += interest
		payments++
	}

	if remaining > balanceEpsilon {
		return nil, fmt.Errorf("%w: остаток %.2f после %d платежей", ErrNonConvergentLoan, remaining, maxPayments)
	}

	payoffYears := float64(payments) / biweeklyPeriodsPerYear

	return &BiweeklyAnalysis{
		Principal:             utils.Round2(principal),
		AnnualRatePercent:     utils.Round2(annualRatePercent),
		TermYears:             termYears,
		MonthlyPayment:        utils.Round2(monthlyPayment),
		BiweeklyPayment:       utils.Round2(biweeklyPayment),
		Payments:              payments,
		PayoffYears:           utils.Round2(payoffYears),
		TotalInterest:         utils.Round2(totalInterest),
		StandardTotalInterest: utils.Round2(standardInterest),
		InterestSavings:       utils.Round2(standardInterest - totalInterest),
		YearsSaved:            utils.Round2(float64(termYears) - payoffYears),
	}, nil
}
