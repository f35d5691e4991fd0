package tools

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cloud-ru/mcp-calculators-go/internal/calculations"
	"github.com/cloud-ru/mcp-calculators-go/internal/validators"
)

const (
	kgPerPound = 0.45359237
	cmPerInch  = 2.54
)

// bodyMeasurements извлекает рост и вес; при unit=imperial ожидаются фунты и дюймы
func bodyMeasurements(params validators.Params) (heightCm, weightKg float64, err error) {
	unit, err := params.String("unit")
	if err != nil {
		return 0, 0, err
	}

	switch strings.ToLower(unit) {
	case "", "metric":
		if heightCm, err = params.Float("height_cm"); err != nil {
			return 0, 0, err
		}
		if weightKg, err = params.Float("weight_kg"); err != nil {
			return 0, 0, err
		}
	case "imperial":
		heightIn, err := params.Float("height_in")
		if err != nil {
			return 0, 0, err
		}
		weightLb, err := params.Float("weight_lb")
		if err != nil {
			return 0, 0, err
		}
		heightCm, weightKg = heightIn*cmPerInch, weightLb*kgPerPound
	default:
		return 0, 0, &validators.ValidationError{Field: "unit", Reason: "ожидается metric или imperial"}
	}

	if err := firstError(validators.CheckHeight(heightCm), validators.CheckWeight(weightKg)); err != nil {
		return 0, 0, err
	}
	return heightCm, weightKg, nil
}

// bmi рассчитывает индекс массы тела
func (r *Registry) bmi(ctx context.Context, params validators.Params) (interface{}, error) {
	_, c := r.start(ctx, BMI)
	defer c.end()

	heightCm, weightKg, err := bodyMeasurements(params)
	if err != nil {
		return nil, c.validationError(err)
	}
	rawEthnicity, err := params.String("ethnicity")
	if err != nil {
		return nil, c.validationError(err)
	}
	ethnicity, err := calculations.ParseEthnicity(rawEthnicity)
	if err != nil {
		return nil, c.validationError(fieldError("ethnicity", err))
	}

	result, err := calculations.CalculateBMI(calculations.BMIInput{
		WeightKg:  weightKg,
		HeightCm:  heightCm,
		Ethnicity: ethnicity,
	})
	if err != nil {
		return nil, c.calculationError(err)
	}

	c.success(
		attribute.Float64("bmi", result.BMI),
		attribute.String("category", string(result.Category)),
	)
	return result, nil
}

// dogAge пересчитывает возраст собаки в человеческие годы
func (r *Registry) dogAge(ctx context.Context, params validators.Params) (interface{}, error) {
	_, c := r.start(ctx, DogAge)
	defer c.end()

	age, err := params.Float("age_years")
	if err != nil {
		return nil, c.validationError(err)
	}
	weight, err := params.FloatOr("weight_kg", 0)
	if err != nil {
		return nil, c.validationError(err)
	}
	bcs, err := params.IntOr("body_condition_score", 0)
	if err != nil {
		return nil, c.validationError(err)
	}
	rawSize, err := params.String("size")
	if err != nil {
		return nil, c.validationError(err)
	}
	size, err := calculations.ParseDogSize(rawSize)
	if err != nil {
		return nil, c.validationError(fieldError("size", err))
	}

	if err := firstError(
		validators.CheckDogAge(age),
		validators.CheckDogWeight(weight),
		validators.CheckBodyConditionScore(bcs),
	); err != nil {
		return nil, c.validationError(err)
	}

	result, err := calculations.CalculateDogAge(calculations.DogAgeInput{
		AgeYears: age,
		Size:     size,
		WeightKg: weight,
		BCS:      calculations.BodyConditionScore(bcs),
	})
	if err != nil {
		return nil, c.calculationError(err)
	}

	c.success(attribute.Float64("epigenetic_human_years", result.EpigeneticHumanYears))
	return result, nil
}

// bodyFat оценивает процент жира
func (r *Registry) bodyFat(ctx context.Context, params validators.Params) (interface{}, error) {
	_, c := r.start(ctx, BodyFat)
	defer c.end()

	rawSex, err := params.String("sex")
	if err != nil {
		return nil, c.validationError(err)
	}
	sex, err := calculations.ParseSex(rawSex)
	if err != nil {
		return nil, c.validationError(fieldError("sex", err))
	}

	heightCm, weightKg, err := bodyMeasurements(params)
	if err != nil {
		return nil, c.validationError(err)
	}

	in := calculations.BodyFatInput{Sex: sex, HeightCm: heightCm, WeightKg: weightKg}
	if in.AgeYears, err = params.Float("age_years"); err != nil {
		return nil, c.validationError(err)
	}
	if in.NeckCm, err = params.Float("neck_cm"); err != nil {
		return nil, c.validationError(err)
	}
	if in.WaistCm, err = params.Float("waist_cm"); err != nil {
		return nil, c.validationError(err)
	}

	checks := []error{
		validators.CheckAge(in.AgeYears),
		validators.CheckCircumference("neck_cm", in.NeckCm),
		validators.CheckCircumference("waist_cm", in.WaistCm),
	}
	if sex == calculations.SexFemale {
		if in.HipCm, err = params.Float("hip_cm"); err != nil {
			return nil, c.validationError(err)
		}
		checks = append(checks, validators.CheckCircumference("hip_cm", in.HipCm))
	}
	if err := firstError(checks...); err != nil {
		return nil, c.validationError(err)
	}

	result, err := calculations.CalculateBodyFat(in)
	if errors.Is(err, calculations.ErrInvalidMeasurements) {
		return nil, c.validationError(fieldError("waist_cm", err))
	}
	if err != nil {
		return nil, c.calculationError(err)
	}

	c.success(
		attribute.Float64("navy_percent", result.NavyPercent),
		attribute.String("category", string(result.Category)),
	)
	return result, nil
}
