package calculations

import "time"

// OneTimeExtra разовый досрочный платеж в счет основного долга
type OneTimeExtra struct {
	Amount float64 `json:"amount"`
	Month  int     `json:"month"`
}

// LoanParameters неизменяемый набор входных данных кредитного калькулятора
type LoanParameters struct {
	Principal         float64       `json:"principal"`
	AnnualRatePercent float64       `json:"annual_rate_percent"`
	TermYears         int           `json:"term_years"`
	ExtraMonthly      float64       `json:"extra_monthly,omitempty"`
	ExtraYearly       float64       `json:"extra_yearly,omitempty"`
	OneTimeExtra      *OneTimeExtra `json:"one_time_extra,omitempty"`
	StartDate         time.Time     `json:"start_date"`
}

// WithoutExtras возвращает копию параметров без досрочных платежей
func (p LoanParameters) WithoutExtras() LoanParameters {
	p.ExtraMonthly = 0
	p.ExtraYearly = 0
	p.OneTimeExtra = nil
	return p
}

// HasExtras сообщает, заданы ли досрочные платежи
func (p LoanParameters) HasExtras() bool {
	return p.ExtraMonthly > 0 || p.ExtraYearly > 0 || (p.OneTimeExtra != nil && p.OneTimeExtra.Amount > 0)
}

// AmortizationEntry представляет одну запись в графике платежей
type AmortizationEntry struct {
	PaymentNumber       int       `json:"payment_number"`
	PaymentDate         time.Time `json:"payment_date"`
	BeginningBalance    float64   `json:"beginning_balance"`
	ScheduledPayment    float64   `json:"scheduled_payment"`
	PrincipalPortion    float64   `json:"principal_portion"`
	InterestPortion     float64   `json:"interest_portion"`
	ExtraPayment        float64   `json:"extra_payment"`
	EndingBalance       float64   `json:"ending_balance"`
	CumulativeInterest  float64   `json:"cumulative_interest"`
	CumulativePrincipal float64   `json:"cumulative_principal"`
	RemainingYears      float64   `json:"remaining_years"`
}

// YearlyRow агрегированная за год строка графика
type YearlyRow struct {
	Year          int     `json:"year"`
	Payments      int     `json:"payments"`
	Principal     float64 `json:"principal"`
	Interest      float64 `json:"interest"`
	ExtraPayment  float64 `json:"extra_payment"`
	EndingBalance float64 `json:"ending_balance"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal          float64   `json:"principal"`
	AnnualRatePercent  float64   `json:"annual_rate_percent"`
	TermYears          int       `json:"term_years"`
	MonthlyPayment     float64   `json:"monthly_payment"`
	Payments           int       `json:"payments"`
	TotalPaid          float64   `json:"total_paid"`
	TotalInterest      float64   `json:"total_interest"`
	TotalExtraPayments float64   `json:"total_extra_payments"`
	PayoffDate         time.Time `json:"payoff_date"`
}

// LoanResult результат расчета кредитного калькулятора
type LoanResult struct {
	Summary    LoanSummary         `json:"summary"`
	Schedule   []AmortizationEntry `json:"schedule"`
	Yearly     []YearlyRow         `json:"yearly"`
	Comparison *ComparisonResult   `json:"comparison,omitempty"`
}

// ComparisonResult сравнение графика с досрочными платежами и базового графика
type ComparisonResult struct {
	BaseTotalInterest  float64 `json:"base_total_interest"`
	BasePayments       int     `json:"base_payments"`
	ExtraTotalInterest float64 `json:"extra_total_interest"`
	ExtraPayments      int     `json:"extra_payments"`
	InterestSaved      float64 `json:"interest_saved"`
	MonthsSaved        int     `json:"months_saved"`
	Recommendation     string  `json:"recommendation"`
}

// BiweeklyAnalysis результат моделирования выплат раз в две недели
type BiweeklyAnalysis struct {
	Principal             float64 `json:"principal"`
	AnnualRatePercent     float64 `json:"annual_rate_percent"`
	TermYears             int     `json:"term_years"`
	MonthlyPayment        float64 `json:"monthly_payment"`
	BiweeklyPayment       float64 `json:"biweekly_payment"`
	Payments              int     `json:"payments"`
	PayoffYears           float64 `json:"payoff_years"`
	TotalInterest         float64 `json:"total_interest"`
	StandardTotalInterest float64 `json:"standard_total_interest"`
	InterestSavings       float64 `json:"interest_savings"`
	YearsSaved            float64 `json:"years_saved"`
}
