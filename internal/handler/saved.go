package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/cloud-ru/mcp-calculators-go/internal/metrics"
	"github.com/cloud-ru/mcp-calculators-go/internal/repository"
)

type SavedHandler struct {
	saved  *repository.SavedCalculators
	logger *logrus.Logger
}

func NewSavedHandler(saved *repository.SavedCalculators, logger *logrus.Logger) *SavedHandler {
	return &SavedHandler{
		saved:  saved,
		logger: logger,
	}
}

func (h *SavedHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.List).Methods("GET")
	router.HandleFunc("/{slug}", h.Check).Methods("GET")
	router.HandleFunc("/{slug}", h.Add).Methods("POST")
	router.HandleFunc("/{slug}", h.Remove).Methods("DELETE")
}

func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	slugs, err := h.saved.List(r.Context())
	h.respond(w, r, "list", slugs, err)
}

// Check сообщает, сохранен ли калькулятор
func (h *SavedHandler) Check(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	ok, err := h.saved.IsSaved(r.Context(), slug)
	if err != nil {
		h.fail(w, r, "check", err)
		return
	}
	metrics.SavedOperations.WithLabelValues("check", "success").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{"slug": slug, "saved": ok})
}

func (h *SavedHandler) Add(w http.ResponseWriter, r *http.Request) {
	slugs, err := h.saved.Add(r.Context(), mux.Vars(r)["slug"])
	h.respond(w, r, "add", slugs, err)
}

func (h *SavedHandler) Remove(w http.ResponseWriter, r *http.Request) {
	slugs, err := h.saved.Remove(r.Context(), mux.Vars(r)["slug"])
	h.respond(w, r, "remove", slugs, err)
}

func (h *SavedHandler) respond(w http.ResponseWriter, r *http.Request, operation string, slugs []string, err error) {
	if err != nil {
		h.fail(w, r, operation, err)
		return
	}

	metrics.SavedOperations.WithLabelValues(operation, "success").Inc()
	writeJSON(w, http.StatusOK, map[string][]string{"saved": slugs})
}

func (h *SavedHandler) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	metrics.SavedOperations.WithLabelValues(operation, "error").Inc()
	if errors.Is(err, repository.ErrUnknownSlug) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.WithError(err).WithFields(logrus.Fields{
		"operation":  operation,
		"request_id": RequestID(r.Context()),
	}).Error("Saved calculators operation failed")
	writeError(w, http.StatusInternalServerError, "Failed to access saved calculators")
}
