package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/holiday"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Handler serves month views over HTTP
type Handler struct {
	provider holiday.Provider
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandler creates a new Handler
func NewHandler(provider holiday.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// NewRouter creates a router with all routes configured
func NewRouter(h *Handler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)
	r.Route("/api/months", func(r chi.Router) {
		r.Get("/current", h.CurrentMonth)
		r.Get("/{year}/{month}", h.Month)
	})

	return r
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CurrentMonth serves the month containing the local current date
func (h *Handler) CurrentMonth(w http.ResponseWriter, r *http.Request) {
	h.serveMonth(w, r, calendar.YearMonthOf(h.now()))
}

// Month serves /api/months/{year}/{month}
func (h *Handler) Month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid year: %q", chi.URLParam(r, "year")), "")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid month: %q", chi.URLParam(r, "month")), "")
		return
	}

	ym, err := calendar.NewYearMonth(year, time.Month(month))
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "invalid_month")
		return
	}

	h.serveMonth(w, r, ym)
}

func (h *Handler) serveMonth(w http.ResponseWriter, r *http.Request, ym calendar.YearMonth) {
	ds, err := h.provider.Fetch(r.Context(), ym.Year)
	if err != nil {
		h.logger.Warn("Failed to fetch holidays",
			zap.String("month", ym.String()),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, err, holiday.KindOf(err).String())
		return
	}

	view, err := calendar.BuildView(ds, ym.Year, ym.Month)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidMonth) {
			writeError(w, http.StatusBadRequest, err, "invalid_month")
			return
		}
		writeError(w, http.StatusInternalServerError, err, "")
		return
	}

	for _, skipped := range view.Classification.Skipped {
		h.logger.Warn("Skipped holiday record",
			zap.String("key", skipped.Key),
			zap.String("date", skipped.Date),
			zap.Error(skipped.Err))
	}

	writeJSON(w, http.StatusOK, ToMonthResponse(view))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error, kind string) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

// requestLogger logs one line per request
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}

// Run serves on addr until ctx is canceled
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
