package notifications

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/open-inwoner/openklant/internal/metrics"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// MaxNotificationSize bounds the webhook request body.
const MaxNotificationSize = 64 * 1024

// Outcomes counted per received notification.
const (
	OutcomeDelivered    = "delivered"
	OutcomeIgnored      = "ignored"
	OutcomeFailed       = "failed"
	OutcomeInvalid      = "invalid"
	OutcomeUnauthorized = "unauthorized"
)

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Token, when set, must be presented in the Authorization header with
	// either the "Token" or the "Bearer" scheme.
	Token string
	// Logger receives one line per notification.
	Logger openklant.Logger
	// MetricsRegisterer receives the notification counter.
	MetricsRegisterer prometheus.Registerer
}

// Handler is the webhook endpoint the notification component posts to.
type Handler struct {
	registry *Registry
	token    string
	logger   openklant.Logger
	received *prometheus.CounterVec
}

// NewHandler creates a handler dispatching to registry.
func NewHandler(registry *Registry, opts HandlerOptions) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = openklant.NoopLogger{}
	}

	received := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openklant",
		Subsystem: "notifications",
		Name:      "received_total",
		Help:      "Notifications received on the webhook by kanaal and outcome.",
	}, []string{"kanaal", "outcome"})

	if opts.MetricsRegisterer != nil {
		received = metrics.Register(opts.MetricsRegisterer, received)
	}

	return &Handler{registry: registry, token: opts.Token, logger: logger, received: received}
}

// Routes returns the webhook router: POST /notifications and GET /healthz.
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Post("/notifications", h.ServeHTTP)

	return router
}

// ServeHTTP receives one notification.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r.Header.Get("Authorization")) {
		h.count("", OutcomeUnauthorized)
		writeProblem(w, http.StatusUnauthorized, "authentication_failed", "Ongeldige token.", nil)

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxNotificationSize)
	defer func() { _ = r.Body.Close() }()

	var n Notification

	err := json.NewDecoder(r.Body).Decode(&n)
	if err != nil {
		h.count("", OutcomeInvalid)
		writeProblem(w, http.StatusBadRequest, "parse_error", "JSON parse error.", nil)

		return
	}

	err = n.Validate()
	if err != nil {
		h.count(n.Kanaal, OutcomeInvalid)
		writeProblem(w, http.StatusBadRequest, "invalid", "Invalid input.", invalidParams(err))

		return
	}

	dispatched, err := h.registry.Dispatch(r.Context(), &n)

	fields := map[string]interface{}{
		"kanaal":      n.Kanaal,
		"resource":    n.Resource,
		"actie":       n.Actie,
		"resourceUrl": n.ResourceURL,
		"hooks":       dispatched,
		"requestId":   middleware.GetReqID(r.Context()),
	}

	switch {
	case err != nil:
		h.count(n.Kanaal, OutcomeFailed)
		fields["error"] = err.Error()
		h.logger.Error("Notification dispatch failed", fields)
		writeProblem(w, http.StatusInternalServerError, "dispatch_failed", err.Error(), nil)

		return
	case dispatched == 0:
		h.count(n.Kanaal, OutcomeIgnored)
		h.logger.Debug("Notification ignored", fields)
	default:
		h.count(n.Kanaal, OutcomeDelivered)
		h.logger.Info("Notification delivered", fields)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) authorized(header string) bool {
	if h.token == "" {
		return true
	}

	scheme, value, found := strings.Cut(header, " ")
	if !found || (scheme != "Token" && scheme != "Bearer") {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(value), []byte(h.token)) == 1
}

func (h *Handler) count(kanaal, outcome string) {
	h.received.WithLabelValues(kanaal, outcome).Inc()
}

func invalidParams(err error) []openklant.InvalidParam {
	var validationErr *openklant.ValidationError
	if !errors.As(err, &validationErr) {
		return []openklant.InvalidParam{{Name: "nonFieldErrors", Code: "invalid", Reason: err.Error()}}
	}

	params := make([]openklant.InvalidParam, 0, len(validationErr.Fields))
	for _, field := range validationErr.Fields {
		params = append(params, openklant.InvalidParam{Name: field.Path, Code: field.Tag, Reason: field.Message})
	}

	return params
}

func writeProblem(w http.ResponseWriter, status int, code, detail string, invalid []openklant.InvalidParam) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(openklant.Problem{
		Code:          code,
		Title:         http.StatusText(status),
		Status:        status,
		Detail:        detail,
		InvalidParams: invalid,
	})
}
