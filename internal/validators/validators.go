package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cloud-ru/mcp-calculators-go/internal/config"
	"github.com/cloud-ru/mcp-calculators-go/pkg/utils"
)

// ErrNotANumber введенное значение не удалось разобрать как число
var ErrNotANumber = errors.New("значение не является числом")

// ValidationError ошибка проверки одного поля формы
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// thousandsGrouped число с запятыми между группами по три цифры: 100,000 или 1,250,000.50
var thousandsGrouped = regexp.MustCompile(`^[+-]?[1-9]\d{0,2}(,\d{3})+(\.\d+)?$`)

// ParseNumber преобразует введенный текст в число.
// Допускаются пробелы, разделители тысяч "_", " " и ",", десятичная запятая.
// Запятые между группами по три цифры считаются разделителями тысяч.
func ParseNumber(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer(" ", "", "_", "", "\u00a0", "").Replace(s)
	switch {
	case thousandsGrouped.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ",") == 1 && !strings.Contains(s, "."):
		s = strings.Replace(s, ",", ".", 1)
	}
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "значение не задано", Err: ErrNotANumber}
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || !utils.IsFinite(value) {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("%q не является числом", raw), Err: ErrNotANumber}
	}
	return value, nil
}

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return &ValidationError{Field: name, Reason: "значение не является конечным числом", Err: ErrNotANumber}
	}
	if value < minInclusive {
		return invalid(name, "значение должно быть ≥ %g", minInclusive)
	}
	if value > maxInclusive {
		return invalid(name, "значение слишком велико (>%g)", maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return invalid(name, "значение должно быть в диапазоне [%d; %d]", minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 0.01, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckTermYears проверяет срок в годах
func CheckTermYears(cfg *config.Config, years int) error {
	return ValidateIntRange("term_years", years, 1, cfg.MaxTermYears)
}

// CheckExtraPayment проверяет досрочный платеж
func CheckExtraPayment(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0.0, cfg.MaxExtraPayment)
}

// CheckOneTimeMonth проверяет номер платежа для разового досрочного погашения
func CheckOneTimeMonth(termYears, month int) error {
	return ValidateIntRange("one_time_extra_month", month, 1, termYears*12)
}

// CheckHeight проверяет рост в сантиметрах
func CheckHeight(heightCm float64) error {
	return ValidatePositiveNumber("height_cm", heightCm, 50, 300)
}

// CheckWeight проверяет вес в килограммах
func CheckWeight(weightKg float64) error {
	return ValidatePositiveNumber("weight_kg", weightKg, 20, 500)
}

// CheckAge проверяет возраст человека
func CheckAge(years float64) error {
	return ValidatePositiveNumber("age_years", years, 2, 120)
}

// CheckCircumference проверяет обхват в сантиметрах
func CheckCircumference(name string, cm float64) error {
	return ValidatePositiveNumber(name, cm, 10, 250)
}

// CheckDogAge проверяет возраст собаки
func CheckDogAge(years float64) error {
	return ValidatePositiveNumber("age_years", years, 0.1, 30)
}

// CheckDogWeight проверяет вес собаки (0 означает, что вес не задан)
func CheckDogWeight(weightKg float64) error {
	return ValidatePositiveNumber("weight_kg", weightKg, 0, 120)
}

// CheckBodyConditionScore проверяет оценку упитанности (0 означает, что оценка не задана)
func CheckBodyConditionScore(score int) error {
	if score == 0 {
		return nil
	}
	return ValidateIntRange("body_condition_score", score, 1, 9)
}

// CheckIncome проверяет годовой доход
func CheckIncome(cfg *config.Config, income float64) error {
	return ValidatePositiveNumber("annual_income", income, 1, cfg.MaxIncome)
}

// CheckAmount проверяет неотрицательную денежную сумму
func CheckAmount(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0, cfg.MaxPrincipal)
}

// CheckRatio проверяет долю дохода (0 означает значение по умолчанию)
func CheckRatio(name string, ratio float64) error {
	return ValidatePositiveNumber(name, ratio, 0, 1)
}
