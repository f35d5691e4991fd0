package calculations

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

// ErrInvalidMeasurements обхваты не позволяют применить формулу ВМС США
var ErrInvalidMeasurements = errors.New("обхват талии (и бедер) должен превышать обхват шеи")

// Sex пол для формул оценки процента жира
type Sex int

const (
	SexMale Sex = iota
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	}
	return fmt.Sprintf("Sex(%d)", int(s))
}

// ParseSex разбирает пол
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	}
	return 0, fmt.Errorf("%w: sex %q", ErrUnknownCategory, s)
}

// BodyFatCategory категория процента жира (шкала ACE)
type BodyFatCategory string

const (
	BodyFatEssential BodyFatCategory = "essential"
	BodyFatAthletes  BodyFatCategory = "athletes"
	BodyFatFitness   BodyFatCategory = "fitness"
	BodyFatAverage   BodyFatCategory = "average"
	BodyFatObese     BodyFatCategory = "obese"
)

// NavyBodyFat оценивает процент жира по обхватам (метод ВМС США, сантиметры)
func NavyBodyFat(sex Sex, heightCm, neckCm, waistCm, hipCm float64) (float64, error) {
	switch sex {
	case SexMale:
		if waistCm <= neckCm {
			return 0, ErrInvalidMeasurements
		}
		return navyInRange(495.0/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450.0)
	case SexFemale:
		if waistCm+hipCm <= neckCm {
			return 0, ErrInvalidMeasurements
		}
		return navyInRange(495.0/(1.29579-0.35004*math.Log10(waistCm+hipCm-neckCm)+0.22100*math.Log10(heightCm)) - 450.0)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, sex)
}

// Границы правдоподобного результата метода ВМС
const (
	minNavyPercent = 2.0
	maxNavyPercent = 75.0
)

// navyInRange отсекает результаты, невозможные для реальных обхватов
func navyInRange(percent float64) (float64, error) {
	if !utils.IsFinite(percent) || percent < minNavyPercent || percent > maxNavyPercent {
		return 0, fmt.Errorf("%w: результат %.1f%% вне диапазона [%g; %g]", ErrInvalidMeasurements, percent, minNavyPercent, maxNavyPercent)
	}
	return percent, nil
}

// BMIBodyFat оценивает процент жира по ИМТ и возрасту (формула Деуренберга)
func BMIBodyFat(sex Sex, bmi, ageYears float64) (float64, error) {
	switch sex {
	case SexMale:
		return 1.20*bmi + 0.23*ageYears - 10.8 - 5.4, nil
	case SexFemale:
		return 1.20*bmi + 0.23*ageYears - 5.4, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, sex)
}

// ClassifyBodyFat определяет категорию по шкале ACE
func ClassifyBodyFat(sex Sex, percent float64) (BodyFatCategory, error) {
	var athletes, fitness, average, obese float64
	switch sex {
	case SexMale:
		athletes, fitness, average, obese = 6, 14, 18, 25
	case SexFemale:
		athletes, fitness, average, obese = 14, 21, 25, 32
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, sex)
	}
	switch {
	case percent < athletes:
		return BodyFatEssential, nil
	case percent < fitness:
		return BodyFatAthletes, nil
	case percent < average:
		return BodyFatFitness, nil
	case percent < obese:
		return BodyFatAverage, nil
	default:
		return BodyFatObese, nil
	}
}

// BodyFatInput входные данные калькулятора процента жира
type BodyFatInput struct {
	Sex      Sex
	AgeYears float64
	HeightCm float64
	WeightKg float64
	NeckCm   float64
	WaistCm  float64
	HipCm    float64
}

// BodyFatResult результат калькулятора процента жира
type BodyFatResult struct {
	Sex         string          `json:"sex"`
	NavyPercent float64         `json:"navy_percent"`
	BMIPercent  float64         `json:"bmi_percent"`
	Category    BodyFatCategory `json:"category"`
	FatMassKg   float64         `json:"fat_mass_kg"`
	LeanMassKg  float64         `json:"lean_mass_kg"`
	BMI         float64         `json:"bmi"`
}

// CalculateBodyFat рассчитывает процент жира двумя методами.
// Категория и массы считаются по методу ВМС США.
func CalculateBodyFat(in BodyFatInput) (*BodyFatResult, error) {
	navy, err := NavyBodyFat(in.Sex, in.HeightCm, in.NeckCm, in.WaistCm, in.HipCm)
	if err != nil {
		return nil, err
	}
	bmi := BMI(in.WeightKg, in.HeightCm)
	byBMI, err := BMIBodyFat(in.Sex, bmi, in.AgeYears)
	if err != nil {
		return nil, err
	}
	category, err := ClassifyBodyFat(in.Sex, navy)
	if err != nil {
		return nil, err
	}

	fatMass := in.WeightKg * navy / 100.0

	return &BodyFatResult{
		Sex:         in.Sex.String(),
		NavyPercent: utils.Round1(navy),
		BMIPercent:  utils.Round1(byBMI),
		Category:    category,
		FatMassKg:   utils.Round1(fatMass),
		LeanMassKg:  utils.Round1(in.WeightKg - fatMass),
		BMI:         utils.Round1(bmi),
	}, nil
}
