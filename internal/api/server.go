package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/health"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewRouter собирает маршруты служебного HTTP сервера
func NewRouter(
	metricsPath string,
	gatherer prometheus.Gatherer,
	observer middleware.RequestObserver,
	healthHandler *health.Handler,
	slotsHandler *get_available_slots.Handler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(observer))

	// Metrics endpoint
	r.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Проверка состояния
	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные часы на дату (только чтение)
	api.HandleFunc("/available-slots", slotsHandler.Handle).Methods(http.MethodGet)

	return r
}

// Server служебный HTTP сервер, работающий параллельно с терминальным приложением
type Server struct {
	srv    *http.Server
	logger Logger
}

func NewServer(addr string, handler http.Handler, logger Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		logger: logger,
	}
}

// Start запускает сервер в отдельной горутине
func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting HTTP server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed: %v", err)
		}
	}()
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	return s.srv.Shutdown(ctx)
}
