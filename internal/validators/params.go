package validators

import (
	"encoding/json"
	"fmt"
	"math"
)

// Params параметры вызова калькулятора в том виде, в каком их прислал клиент
type Params map[string]interface{}

// Float извлекает обязательный числовой параметр.
// Значение может прийти числом JSON или строкой из поля формы.
func (p Params) Float(name string) (float64, error) {
	raw, ok := p[name]
	if !ok || raw == nil {
		return 0, invalid(name, "параметр обязателен")
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return ParseNumber(name, v.String())
	case string:
		return ParseNumber(name, v)
	}
	return 0, &ValidationError{Field: name, Reason: fmt.Sprintf("неподдерживаемый тип %T", raw), Err: ErrNotANumber}
}

// FloatOr извлекает необязательный числовой параметр
func (p Params) FloatOr(name string, def float64) (float64, error) {
	if raw, ok := p[name]; !ok || raw == nil || raw == "" {
		return def, nil
	}
	return p.Float(name)
}

// Int извлекает обязательный целочисленный параметр
func (p Params) Int(name string) (int, error) {
	v, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, invalid(name, "значение должно быть целым")
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, invalid(name, "значение вне допустимого диапазона")
	}
	return int(v), nil
}

// IntOr извлекает необязательный целочисленный параметр
func (p Params) IntOr(name string, def int) (int, error) {
	if raw, ok := p[name]; !ok || raw == nil || raw == "" {
		return def, nil
	}
	return p.Int(name)
}

// String извлекает необязательный строковый параметр
func (p Params) String(name string) (string, error) {
	raw, ok := p[name]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalid(name, "ожидается строка")
	}
	return s, nil
}
