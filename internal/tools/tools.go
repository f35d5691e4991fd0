package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/mcp-calculators-go/internal/calculations"
	"github.com/cloud-ru/mcp-calculators-go/internal/config"
	"github.com/cloud-ru/mcp-calculators-go/internal/metrics"
	"github.com/cloud-ru/mcp-calculators-go/internal/validators"
)

// Идентификаторы калькуляторов
const (
	LoanAmortization  = "loan-amortization"
	BiweeklyMortgage  = "biweekly-mortgage"
	BMI               = "bmi"
	DogAge            = "dog-age"
	BodyFat           = "body-fat"
	HomeAffordability = "home-affordability"
)

// ErrUnknownCalculator калькулятор с таким идентификатором не зарегистрирован
var ErrUnknownCalculator = errors.New("неизвестный калькулятор")

// ToolHandler представляет обработчик калькулятора
type ToolHandler func(ctx context.Context, params validators.Params) (interface{}, error)

// Registry набор калькуляторов, доступных по идентификатору
type Registry struct {
	cfg      *config.Config
	tracer   trace.Tracer
	now      func() time.Time
	handlers map[string]ToolHandler
}

// NewRegistry регистрирует все калькуляторы
func NewRegistry(cfg *config.Config, tracer trace.Tracer) *Registry {
	r := &Registry{
		cfg:    cfg,
		tracer: tracer,
		now:    time.Now,
	}
	r.handlers = map[string]ToolHandler{
		LoanAmortization:  r.loanAmortization,
		BiweeklyMortgage:  r.biweeklyMortgage,
		BMI:               r.bmi,
		DogAge:            r.dogAge,
		BodyFat:           r.bodyFat,
		HomeAffordability: r.homeAffordability,
	}
	return r
}

// Slugs возвращает отсортированный список идентификаторов калькуляторов
func (r *Registry) Slugs() []string {
	slugs := make([]string, 0, len(r.handlers))
	for slug := range r.handlers {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Call выполняет расчет калькулятора по идентификатору
func (r *Registry) Call(ctx context.Context, slug string, params validators.Params) (interface{}, error) {
	h, ok := r.handlers[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculator, slug)
	}
	return h(ctx, params)
}

// call сопровождает один вызов калькулятора: спан и метрики
type call struct {
	name string
	span trace.Span
}

func (r *Registry) start(ctx context.Context, name string) (context.Context, *call) {
	ctx, span := r.tracer.Start(ctx, name)
	return ctx, &call{name: name, span: span}
}

func (c *call) end() {
	c.span.End()
}

func (c *call) validationError(err error) error {
	c.span.SetAttributes(attribute.String("error", "validation_error"))
	metrics.ToolCalls.WithLabelValues(c.name, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.name, "validation").Inc()
	return fmt.Errorf("неверные параметры: %w", err)
}

func (c *call) calculationError(err error) error {
	errorType := "calculation"
	if errors.Is(err, calculations.ErrNonConvergentLoan) {
		errorType = "non_convergent"
	}
	c.span.RecordError(err)
	c.span.SetAttributes(attribute.String("error", errorType))
	metrics.ToolCalls.WithLabelValues(c.name, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.name, errorType).Inc()
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

func (c *call) success(attrs ...attribute.KeyValue) {
	c.span.SetAttributes(append(attrs, attribute.Bool("success", true))...)
	metrics.ToolCalls.WithLabelValues(c.name, "success").Inc()
}

// fieldError превращает ошибку разбора перечисления в ошибку поля формы
func fieldError(field string, err error) error {
	return &validators.ValidationError{Field: field, Reason: err.Error(), Err: err}
}

// firstError возвращает первую ненулевую ошибку
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
