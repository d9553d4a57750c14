package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-inwoner/openklant/pkg/openklant"
)

const (
	testUUID  = "6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31"
	testUUID2 = "0f3e9a7c-2b1d-4e5f-8a6b-7c8d9e0f1a2b"
	testToken = "secret-token"
)

// NewTestClient creates a client for server with a static token.
func NewTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := New(&openklant.Config{BaseURL: server.URL, Token: testToken})
	require.NoError(t, err)

	return client
}

// writeJSON writes body as a JSON response with status.
func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		assert.NoError(t, json.NewEncoder(writer).Encode(body))
	}
}

// TestCreateOperation represents a generic create operation test case.
type TestCreateOperation[TRequest any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	ExpectedBody map[string]interface{}
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
	WantRequest  bool
}

// TestRetrieveOperation represents a generic retrieve operation test case.
type TestRetrieveOperation struct {
	Name         string
	UUID         string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
	WantStatus   int
}

// RunCreateTests runs a series of create operation tests. A request that fails
// local validation must not reach the server.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			var requests atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				requests.Add(1)

				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Equal(t, "Token "+testToken, request.Header.Get("Authorization"))
				assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

				if testCase.ExpectedBody != nil {
					raw, err := io.ReadAll(request.Body)
					assert.NoError(t, err)

					var body map[string]interface{}
					assert.NoError(t, json.Unmarshal(raw, &body))

					for key, want := range testCase.ExpectedBody {
						assert.Equal(t, want, body[key], "request field %s", key)
					}
				}

				writeJSON(t, writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			createFn := createFunc(NewTestClient(t, server))
			result, err := createFn(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}

			if testCase.WantRequest {
				assert.Equal(t, int32(1), requests.Load())
			} else {
				assert.Zero(t, requests.Load())
			}
		})
	}
}

// RunRetrieveTests runs a series of retrieve operation tests.
func RunRetrieveTests[TResponse any](
	t *testing.T,
	tests []TestRetrieveOperation,
	retrieveFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				writeJSON(t, writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			retrieveFn := retrieveFunc(NewTestClient(t, server))
			result, err := retrieveFn(context.Background(), testCase.UUID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				if testCase.WantStatus != 0 {
					assert.Equal(t, testCase.WantStatus, openklant.StatusCode(err))
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// notFound is the problem body the API returns for an unknown uuid.
func notFound() map[string]interface{} {
	return map[string]interface{}{
		"type":   "http://localhost/ref/fouten/NotFound/",
		"code":   "not_found",
		"title":  "Niet gevonden.",
		"status": http.StatusNotFound,
		"detail": "Niet gevonden.",
	}
}
