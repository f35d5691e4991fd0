package calculations

import (
	"math"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

const (
	// DefaultFrontEndRatio доля дохода на жилищный платеж
	DefaultFrontEndRatio = 0.28
	// DefaultBackEndRatio доля дохода на все долговые платежи
	DefaultBackEndRatio = 0.36
)

// AffordabilityInput входные данные калькулятора доступности жилья
type AffordabilityInput struct {
	AnnualIncome      float64
	MonthlyDebts      float64
	DownPayment       float64
	AnnualRatePercent float64
	TermYears         int
	// Нулевые доли заменяются значениями по умолчанию 28/36
	FrontEndRatio float64
	BackEndRatio  float64
}

// AffordabilityResult результат калькулятора доступности жилья
type AffordabilityResult struct {
	MonthlyIncome       float64 `json:"monthly_income"`
	FrontEndLimit       float64 `json:"front_end_limit"`
	BackEndLimit        float64 `json:"back_end_limit"`
	MaxMonthlyPayment   float64 `json:"max_monthly_payment"`
	MaxLoanAmount       float64 `json:"max_loan_amount"`
	MaxHomePrice        float64 `json:"max_home_price"`
	CurrentDebtToIncome float64 `json:"current_debt_to_income_percent"`
	Affordable          bool    `json:"affordable"`
}

// PresentValue возвращает сумму кредита, которую гасит заданный ежемесячный платеж
func PresentValue(payment, annualRatePercent float64, termYears int) float64 {
	n := float64(termYears * 12)
	r := monthlyRate(annualRatePercent)
	if r == 0.0 {
		return payment * n
	}
	return payment * (1.0 - math.Pow(1.0+r, -n)) / r
}

// CalculateAffordability оценивает максимальную стоимость жилья по долговой нагрузке
func CalculateAffordability(in AffordabilityInput) *AffordabilityResult {
	front := in.FrontEndRatio
	if front <= 0 {
		front = DefaultFrontEndRatio
	}
	back := in.BackEndRatio
	if back <= 0 {
		back = DefaultBackEndRatio
	}

	monthlyIncome := in.AnnualIncome / 12.0
	frontLimit := monthlyIncome * front
	backLimit := monthlyIncome*back - in.MonthlyDebts
	maxPayment := math.Min(frontLimit, backLimit)
	if maxPayment < 0 {
		maxPayment = 0
	}

	maxLoan := PresentValue(maxPayment, in.AnnualRatePercent, in.TermYears)

	dti := 0.0
	if monthlyIncome > 0 {
		dti = in.MonthlyDebts / monthlyIncome * 100.0
	}

	return &AffordabilityResult{
		MonthlyIncome:       utils.Round2(monthlyIncome),
		FrontEndLimit:       utils.Round2(frontLimit),
		BackEndLimit:        utils.Round2(backLimit),
		MaxMonthlyPayment:   utils.Round2(maxPayment),
		MaxLoanAmount:       utils.Round2(maxLoan),
		MaxHomePrice:        utils.Round2(maxLoan + in.DownPayment),
		CurrentDebtToIncome: utils.Round2(dti),
		Affordable:          maxPayment > 0,
	}
}
