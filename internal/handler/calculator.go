package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/cloud-ru/mcp-calculators-go/internal/calculations"
	"github.com/cloud-ru/mcp-calculators-go/internal/export"
	"github.com/cloud-ru/mcp-calculators-go/internal/repository"
	"github.com/cloud-ru/mcp-calculators-go/internal/tools"
	"github.com/cloud-ru/mcp-calculators-go/internal/validators"
)

type CalculatorHandler struct {
	registry *tools.Registry
	logger   *logrus.Logger
}

func NewCalculatorHandler(registry *tools.Registry, logger *logrus.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		registry: registry,
		logger:   logger,
	}
}

func (h *CalculatorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.ListCalculators).Methods("GET")
	router.HandleFunc("/"+tools.LoanAmortization+"/csv", h.ExportSchedule).Methods("POST")
	router.HandleFunc("/{slug}", h.Calculate).Methods("POST")
}

func (h *CalculatorHandler) ListCalculators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"calculators": h.registry.Slugs()})
}

func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	params, err := decodeParams(r)
	if err != nil {
		h.logger.WithError(err).WithField("calculator", slug).Warn("Failed to decode calculator request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.registry.Call(r.Context(), slug, params)
	if err != nil {
		h.writeCalculationError(w, r, slug, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CalculatorHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	params, err := decodeParams(r)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to decode schedule export request")
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	schedule, err := h.registry.LoanSchedule(r.Context(), params)
	if err != nil {
		h.writeCalculationError(w, r, tools.LoanAmortization, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="amortization-schedule.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := export.WriteScheduleCSV(w, schedule); err != nil {
		h.logger.WithError(err).Error("Failed to write schedule CSV")
	}
}

// writeCalculationError переводит ошибку калькулятора в HTTP-статус
func (h *CalculatorHandler) writeCalculationError(w http.ResponseWriter, r *http.Request, slug string, err error) {
	entry := h.logger.WithError(err).WithFields(logrus.Fields{
		"calculator": slug,
		"request_id": RequestID(r.Context()),
	})

	var verr *validators.ValidationError
	switch {
	case errors.Is(err, tools.ErrUnknownCalculator), errors.Is(err, repository.ErrUnknownSlug):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &verr):
		entry.Info("Calculator input rejected")
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
			"field": verr.Field,
		})
	case errors.Is(err, calculations.ErrNonConvergentLoan):
		entry.Warn("Non-amortizing loan configuration")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		entry.Error("Calculation failed")
		writeError(w, http.StatusInternalServerError, "Calculation failed")
	}
}

func decodeParams(r *http.Request) (validators.Params, error) {
	params := validators.Params{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		return nil, err
	}
	return params, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
