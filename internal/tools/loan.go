package tools

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cloud-ru/mcp-calculators-go/internal/calculations"
	"github.com/cloud-ru/mcp-calculators-go/internal/metrics"
	"github.com/cloud-ru/mcp-calculators-go/internal/validators"
)

const startDateLayout = "2006-01-02"

// LoanParameters извлекает и проверяет параметры кредитного калькулятора.
// Без start_date график начинается с текущей даты.
func (r *Registry) LoanParameters(params validators.Params) (calculations.LoanParameters, error) {
	var p calculations.LoanParameters
	var err error

	if p.Principal, err = params.Float("principal"); err != nil {
		return p, err
	}
	if p.AnnualRatePercent, err = params.Float("annual_rate_percent"); err != nil {
		return p, err
	}
	if p.TermYears, err = params.Int("term_years"); err != nil {
		return p, err
	}
	if p.ExtraMonthly, err = params.FloatOr("extra_monthly", 0); err != nil {
		return p, err
	}
	if p.ExtraYearly, err = params.FloatOr("extra_yearly", 0); err != nil {
		return p, err
	}
	oneTimeAmount, err := params.FloatOr("one_time_extra_amount", 0)
	if err != nil {
		return p, err
	}
	oneTimeMonth, err := params.IntOr("one_time_extra_month", 0)
	if err != nil {
		return p, err
	}

	if err := firstError(
		validators.CheckPrincipal(r.cfg, p.Principal),
		validators.CheckRate(r.cfg, p.AnnualRatePercent),
		validators.CheckTermYears(r.cfg, p.TermYears),
		validators.CheckExtraPayment(r.cfg, "extra_monthly", p.ExtraMonthly),
		validators.CheckExtraPayment(r.cfg, "extra_yearly", p.ExtraYearly),
		validators.CheckExtraPayment(r.cfg, "one_time_extra_amount", oneTimeAmount),
	); err != nil {
		return p, err
	}

	if oneTimeAmount > 0 {
		if err := validators.CheckOneTimeMonth(p.TermYears, oneTimeMonth); err != nil {
			return p, err
		}
		p.OneTimeExtra = &calculations.OneTimeExtra{Amount: oneTimeAmount, Month: oneTimeMonth}
	}

	rawDate, err := params.String("start_date")
	if err != nil {
		return p, err
	}
	if rawDate == "" {
		y, m, d := r.now().Date()
		p.StartDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	} else {
		p.StartDate, err = time.Parse(startDateLayout, rawDate)
		if err != nil {
			return p, fieldError("start_date", err)
		}
	}

	return p, nil
}

// loanAmortization рассчитывает график аннуитетного кредита с досрочными платежами
func (r *Registry) loanAmortization(ctx context.Context, params validators.Params) (interface{}, error) {
	_, c := r.start(ctx, LoanAmortization)
	defer c.end()

	p, err := r.LoanParameters(params)
	if err != nil {
		return nil, c.validationError(err)
	}

	c.span.SetAttributes(
		attribute.Float64("principal", p.Principal),
		attribute.Float64("annual_rate_percent", p.AnnualRatePercent),
		attribute.Int("term_years", p.TermYears),
		attribute.Bool("has_extras", p.HasExtras()),
	)

	result, err := calculations.Calculate(p)
	if err != nil {
		return nil, c.calculationError(err)
	}

	metrics.ScheduleLength.Observe(float64(result.Summary.Payments))
	c.success(
		attribute.Float64("monthly_payment", result.Summary.MonthlyPayment),
		attribute.Int("payments", result.Summary.Payments),
	)
	return result, nil
}

// LoanSchedule рассчитывает только график платежей (для выгрузки в CSV)
func (r *Registry) LoanSchedule(ctx context.Context, params validators.Params) ([]calculations.AmortizationEntry, error) {
	_, c := r.start(ctx, LoanAmortization+"-csv")
	defer c.end()

	p, err := r.LoanParameters(params)
	if err != nil {
		return nil, c.validationError(err)
	}

	schedule, err := calculations.Schedule(p)
	if err != nil {
		return nil, c.calculationError(err)
	}

	c.success(attribute.Int("payments", len(schedule)))
	return schedule, nil
}

// biweeklyMortgage сравнивает ежемесячные выплаты и выплаты раз в две недели
func (r *Registry) biweeklyMortgage(ctx context.Context, params validators.Params) (interface{}, error) {
	_, c := r.start(ctx, BiweeklyMortgage)
	defer c.end()

	principal, err := params.Float("principal")
	if err != nil {
		return nil, c.validationError(err)
	}
	rate, err := params.Float("annual_rate_percent")
	if err != nil {
		return nil, c.validationError(err)
	}
	termYears, err := params.Int("term_years")
	if err != nil {
		return nil, c.validationError(err)
	}

	if err := firstError(
		validators.CheckPrincipal(r.cfg, principal),
		validators.CheckRate(r.cfg, rate),
		validators.CheckTermYears(r.cfg, termYears),
	); err != nil {
		return nil, c.validationError(err)
	}

	c.span.SetAttributes(
		attribute.Float64("principal", principal),
		attribute.Float64("annual_rate_percent", rate),
		attribute.Int("term_years", termYears),
	)

	result, err := calculations.BiweeklySchedule(principal, rate, termYears)
	if err != nil {
		return nil, c.calculationError(err)
	}

	c.success(attribute.Float64("interest_savings", result.InterestSavings))
	return result, nil
}

// homeAffordability оценивает доступную стоимость жилья
func (r *Registry) homeAffordability(ctx context.Context, params validators.Params) (interface{}, error) {
	_, c := r.start(ctx, HomeAffordability)
	defer c.end()

	var in calculations.AffordabilityInput
	var err error

	if in.AnnualIncome, err = params.Float("annual_income"); err != nil {
		return nil, c.validationError(err)
	}
	if in.MonthlyDebts, err = params.FloatOr("monthly_debts", 0); err != nil {
		return nil, c.validationError(err)
	}
	if in.DownPayment, err = params.FloatOr("down_payment", 0); err != nil {
		return nil, c.validationError(err)
	}
	if in.AnnualRatePercent, err = params.Float("annual_rate_percent"); err != nil {
		return nil, c.validationError(err)
	}
	if in.TermYears, err = params.IntOr("term_years", 30); err != nil {
		return nil, c.validationError(err)
	}
	if in.FrontEndRatio, err = params.FloatOr("front_end_ratio", 0); err != nil {
		return nil, c.validationError(err)
	}
	if in.BackEndRatio, err = params.FloatOr("back_end_ratio", 0); err != nil {
		return nil, c.validationError(err)
	}

	if err := firstError(
		validators.CheckIncome(r.cfg, in.AnnualIncome),
		validators.CheckAmount(r.cfg, "monthly_debts", in.MonthlyDebts),
		validators.CheckAmount(r.cfg, "down_payment", in.DownPayment),
		validators.CheckRate(r.cfg, in.AnnualRatePercent),
		validators.CheckTermYears(r.cfg, in.TermYears),
		validators.CheckRatio("front_end_ratio", in.FrontEndRatio),
		validators.CheckRatio("back_end_ratio", in.BackEndRatio),
	); err != nil {
		return nil, c.validationError(err)
	}

	result := calculations.CalculateAffordability(in)

	c.success(
		attribute.Float64("max_home_price", result.MaxHomePrice),
		attribute.Bool("affordable", result.Affordable),
	)
	return result, nil
}
