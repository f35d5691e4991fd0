package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов калькуляторов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_calls_total",
			Help: "Общее количество вызовов калькуляторов",
		},
		[]string{"calculator", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"calculator", "error_type"},
	)

	// APICalls счетчик HTTP-запросов
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы HTTP API",
		},
		[]string{"route", "method", "status"},
	)

	// SavedOperations счетчик операций со списком закладок
	SavedOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saved_calculator_operations_total",
			Help: "Операции со списком сохраненных калькуляторов",
		},
		[]string{"operation", "status"},
	)

	// ScheduleLength распределение длины рассчитанных графиков платежей
	ScheduleLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "amortization_schedule_payments",
			Help:    "Число платежей в рассчитанном графике",
			Buckets: []float64{12, 60, 120, 180, 240, 360, 480, 600},
		},
	)
)
