package handler

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter собирает маршруты API калькуляторов
func NewRouter(calculators *CalculatorHandler, saved *SavedHandler, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestMiddleware(logger))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api").Subrouter()
	calculators.RegisterRoutes(apiRouter.PathPrefix("/calculators").Subrouter())
	saved.RegisterRoutes(apiRouter.PathPrefix("/saved").Subrouter())

	return router
}

// Chain оборачивает маршрутизатор общими middleware: восстановление после паники и CORS
func Chain(router http.Handler, allowedOrigins []string, logger *logrus.Logger) http.Handler {
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger),
		handlers.PrintRecoveryStack(true),
	)
	cors := handlers.CORS(
		handlers.AllowedHeaders([]string{"X-Requested-With", "X-Request-ID", "Content-Type"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedOrigins(allowedOrigins),
		handlers.ExposedHeaders([]string{"X-Request-ID"}),
	)
	return alice.New(recovery, secureHeaders, cors).Then(router)
}
