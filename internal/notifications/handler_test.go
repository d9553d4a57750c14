package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-inwoner/openklant/pkg/openklant"
)

var errHookFailed = errors.New("hook failed")

func klantcontactNotification() *Notification {
	return &Notification{
		Kanaal:       KanaalKlantcontacten,
		HoofdObject:  "https://klanten.example.nl/klantinteracties/api/v1/klantcontacten/6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31",
		Resource:     "klantcontact",
		ResourceURL:  "https://klanten.example.nl/klantinteracties/api/v1/klantcontacten/6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31",
		Actie:        ActieCreate,
		Aanmaakdatum: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func post(t *testing.T, handler http.Handler, header string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte

	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error

		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/notifications", bytes.NewReader(raw))
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) openklant.Problem {
	t.Helper()

	var problem openklant.Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))

	return problem
}

func TestHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		body       any
		hook       HookFunc
		wantStatus int
		wantCode   string
		outcome    string
		kanaal     string
	}{
		{
			name:       "delivers to matching hook",
			header:     "Token secret",
			body:       klantcontactNotification(),
			hook:       func(context.Context, *Notification) error { return nil },
			wantStatus: http.StatusNoContent,
			outcome:    OutcomeDelivered,
			kanaal:     KanaalKlantcontacten,
		},
		{
			name:       "accepts bearer scheme",
			header:     "Bearer secret",
			body:       klantcontactNotification(),
			hook:       func(context.Context, *Notification) error { return nil },
			wantStatus: http.StatusNoContent,
			outcome:    OutcomeDelivered,
			kanaal:     KanaalKlantcontacten,
		},
		{
			name:       "missing token",
			body:       klantcontactNotification(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "authentication_failed",
			outcome:    OutcomeUnauthorized,
		},
		{
			name:       "wrong token",
			header:     "Token nope",
			body:       klantcontactNotification(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "authentication_failed",
			outcome:    OutcomeUnauthorized,
		},
		{
			name:       "malformed JSON",
			header:     "Token secret",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantCode:   "parse_error",
			outcome:    OutcomeInvalid,
		},
		{
			name:       "hook failure",
			header:     "Token secret",
			body:       klantcontactNotification(),
			hook:       func(context.Context, *Notification) error { return errHookFailed },
			wantStatus: http.StatusInternalServerError,
			wantCode:   "dispatch_failed",
			outcome:    OutcomeFailed,
			kanaal:     KanaalKlantcontacten,
		},
		{
			name:   "no matching hook",
			header: "Token secret",
			body: func() *Notification {
				n := klantcontactNotification()
				n.Kanaal = KanaalActoren

				return n
			}(),
			hook:       func(context.Context, *Notification) error { return errHookFailed },
			wantStatus: http.StatusNoContent,
			outcome:    OutcomeIgnored,
			kanaal:     KanaalActoren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := NewRegistry(nil)
			if tt.hook != nil {
				registry.Register("test", KanaalKlantcontacten, Any, tt.hook)
			}

			handler := NewHandler(registry, HandlerOptions{Token: "secret", MetricsRegisterer: prometheus.NewRegistry()})

			rec := post(t, handler.Routes(), tt.header, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeProblem(t, rec).Code)
			}

			assert.InDelta(t, 1, testutil.ToFloat64(handler.received.WithLabelValues(tt.kanaal, tt.outcome)), 0)
		})
	}
}

func TestHandler_ValidationErrors(t *testing.T) {
	t.Parallel()

	handler := NewHandler(NewRegistry(nil), HandlerOptions{})

	n := klantcontactNotification()
	n.ResourceURL = "not a url"
	n.Actie = ""

	rec := post(t, handler.Routes(), "", n)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	problem := decodeProblem(t, rec)
	assert.Equal(t, "invalid", problem.Code)

	names := make([]string, 0, len(problem.InvalidParams))
	for _, param := range problem.InvalidParams {
		names = append(names, param.Name)
	}

	assert.ElementsMatch(t, []string{"resourceUrl", "actie"}, names)
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	handler := NewHandler(NewRegistry(nil), HandlerOptions{Token: "secret"})

	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNewHandler_SharedRegisterer(t *testing.T) {
	t.Parallel()

	registerer := prometheus.NewRegistry()

	first := NewHandler(NewRegistry(nil), HandlerOptions{MetricsRegisterer: registerer})
	second := NewHandler(NewRegistry(nil), HandlerOptions{MetricsRegisterer: registerer})

	assert.Same(t, first.received, second.received)
}
