package utils

import (
	"math"
	"time"
)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Round1 округляет число до 1 знака после запятой
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// AddMonths сдвигает дату на n календарных месяцев. День прижимается к
// последнему дню целевого месяца (31 января + 1 месяц = 28/29 февраля).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}
