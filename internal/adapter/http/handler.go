package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowd-escrow/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the escrow use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.EscrowUseCase
	logger *slog.Logger
	router chi.Router

	faucet  bool
	verify  bool
	maxSkew time.Duration
	nowFn   func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithFaucet exposes the development faucet endpoint.
func WithFaucet(enabled bool) Option {
	return func(h *Handler) { h.faucet = enabled }
}

// WithSignatures controls whether callers must sign their requests and how
// far X-Timestamp may drift from the server clock.
func WithSignatures(verify bool, maxSkew time.Duration) Option {
	return func(h *Handler) {
		h.verify = verify
		h.maxSkew = maxSkew
	}
}

// WithClock replaces the clock used for timestamp checks.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.nowFn = now }
}

// NewHandler creates a handler with all routes configured. Signature
// verification is on unless disabled with WithSignatures.
func NewHandler(svc port.EscrowUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:     svc,
		logger:  logger,
		verify:  true,
		maxSkew: 5 * time.Minute,
		nowFn:   time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, h.logRequests, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.With(h.identify).Post("/", h.handleInitializeCampaign)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/finalize", h.handleFinalizeCampaign)
				r.With(h.identify).Post("/refund", h.handleRefund)
				r.Get("/donations", h.handleListDonations)
				r.With(h.identify).Post("/donations", h.handleDonate)
				r.Get("/donations/{donor}", h.handleGetDonation)
			})
		})
		r.Get("/holdings/{owner}", h.handleBalance)
		r.Get("/holdings/{owner}/transfers", h.handleTransfers)
		if h.faucet {
			r.Post("/faucet", h.handleFaucet)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logRequests writes one line per request once the response is done.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.LogAttrs(r.Context(), slog.LevelDebug, "http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
