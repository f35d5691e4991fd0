package calculations

import (
	"fmt"
	"strings"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

// Ethnicity группа, для которой применяются свои пороги ИМТ
type Ethnicity int

const (
	EthnicityGeneral Ethnicity = iota
	EthnicityAsian
)

// String возвращает имя группы, используемое во входных параметрах
func (e Ethnicity) String() string {
	switch e {
	case EthnicityGeneral:
		return "general"
	case EthnicityAsian:
		return "asian"
	}
	return fmt.Sprintf("Ethnicity(%d)", int(e))
}

// ParseEthnicity разбирает имя группы. Пустая строка означает общие пороги ВОЗ.
func ParseEthnicity(s string) (Ethnicity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general":
		return EthnicityGeneral, nil
	case "asian":
		return EthnicityAsian, nil
	}
	return 0, fmt.Errorf("%w: ethnicity %q", ErrUnknownCategory, s)
}

// BMICategory категория ИМТ
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObeseI      BMICategory = "obese_class_1"
	BMIObeseII     BMICategory = "obese_class_2"
	BMIObeseIII    BMICategory = "obese_class_3"
)

type bmiCutoffs struct {
	normal, overweight, obeseI, obeseII, obeseIII float64
}

func cutoffsFor(e Ethnicity) (bmiCutoffs, error) {
	switch e {
	case EthnicityGeneral:
		return bmiCutoffs{18.5, 25, 30, 35, 40}, nil
	case EthnicityAsian:
		return bmiCutoffs{18.5, 23, 27.5, 32.5, 37.5}, nil
	}
	return bmiCutoffs{}, fmt.Errorf("%w: %s", ErrUnknownCategory, e)
}

// BMI рассчитывает индекс массы тела: вес (кг) / рост (м)²
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// ClassifyBMI определяет категорию ИМТ с учетом порогов группы
func ClassifyBMI(bmi float64, e Ethnicity) (BMICategory, error) {
	c, err := cutoffsFor(e)
	if err != nil {
		return "", err
	}
	switch {
	case bmi < c.normal:
		return BMIUnderweight, nil
	case bmi < c.overweight:
		return BMINormal, nil
	case bmi < c.obeseI:
		return BMIOverweight, nil
	case bmi < c.obeseII:
		return BMIObeseI, nil
	case bmi < c.obeseIII:
		return BMIObeseII, nil
	default:
		return BMIObeseIII, nil
	}
}

// HealthyWeightRange возвращает диапазон веса (кг) с нормальным ИМТ для заданного роста
func HealthyWeightRange(heightCm float64, e Ethnicity) (float64, float64, error) {
	c, err := cutoffsFor(e)
	if err != nil {
		return 0, 0, err
	}
	h := heightCm / 100.0
	return c.normal * h * h, c.overweight * h * h, nil
}

// BMIInput входные данные калькулятора ИМТ
type BMIInput struct {
	WeightKg  float64
	HeightCm  float64
	Ethnicity Ethnicity
}

// BMIResult результат калькулятора ИМТ
type BMIResult struct {
	BMI              float64     `json:"bmi"`
	BMIPrime         float64     `json:"bmi_prime"`
	Category         BMICategory `json:"category"`
	Ethnicity        string      `json:"ethnicity"`
	HealthyWeightMin float64     `json:"healthy_weight_min_kg"`
	HealthyWeightMax float64     `json:"healthy_weight_max_kg"`
	WeightChangeKg   float64     `json:"weight_change_kg"`
}

// CalculateBMI рассчитывает ИМТ, категорию и диапазон нормального веса
func CalculateBMI(in BMIInput) (*BMIResult, error) {
	c, err := cutoffsFor(in.Ethnicity)
	if err != nil {
		return nil, err
	}
	bmi := BMI(in.WeightKg, in.HeightCm)
	category, err := ClassifyBMI(bmi, in.Ethnicity)
	if err != nil {
		return nil, err
	}
	minW, maxW, err := HealthyWeightRange(in.HeightCm, in.Ethnicity)
	if err != nil {
		return nil, err
	}

	// Отрицательное значение означает, сколько нужно сбросить до верхней границы нормы
	change := 0.0
	switch {
	case in.WeightKg > maxW:
		change = maxW - in.WeightKg
	case in.WeightKg < minW:
		change = minW - in.WeightKg
	}

	return &BMIResult{
		BMI:              utils.Round1(bmi),
		BMIPrime:         utils.Round2(bmi / c.overweight),
		Category:         category,
		Ethnicity:        in.Ethnicity.String(),
		HealthyWeightMin: utils.Round1(minW),
		HealthyWeightMax: utils.Round1(maxW),
		WeightChangeKg:   utils.Round1(change),
	}, nil
}
