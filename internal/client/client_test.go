package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	. "github.com/open-inwoner/openklant/internal/client"
	"github.com/open-inwoner/openklant/internal/auth"
	"github.com/open-inwoner/openklant/pkg/openklant"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, openklant.ErrConfigRequired)
	})

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := New(&openklant.Config{Token: "abc"})
		require.ErrorIs(t, err, openklant.ErrBaseURLRequired)
	})

	t.Run("creates client with token", func(t *testing.T) {
		t.Parallel()

		client, err := New(&openklant.Config{BaseURL: "https://klanten.example.nl/klantinteracties/api/v1", Token: "abc"})
		require.NoError(t, err)
		assert.Equal(t, "https://klanten.example.nl/klantinteracties/api/v1", client.BaseURL())
		assert.NotNil(t, client.GetTokenManager())
	})

	t.Run("creates client without authentication", func(t *testing.T) {
		t.Parallel()

		client, err := New(&openklant.Config{BaseURL: "https://klanten.example.nl/api/v1/"})
		require.NoError(t, err)
		assert.Equal(t, "https://klanten.example.nl/api/v1", client.BaseURL())
		assert.Nil(t, client.GetTokenManager())
	})

	t.Run("exposes every resource client", func(t *testing.T) {
		t.Parallel()

		client, err := New(&openklant.Config{BaseURL: "https://klanten.example.nl"})
		require.NoError(t, err)

		var facade openklant.Client = client

		assert.NotNil(t, facade.Actor())
		assert.NotNil(t, facade.Betrokkene())
		assert.NotNil(t, facade.DigitaalAdres())
		assert.NotNil(t, facade.InterneTaak())
		assert.NotNil(t, facade.KlantContact())
		assert.NotNil(t, facade.OnderwerpObject())
		assert.NotNil(t, facade.PartijIdentificator())
		assert.NotNil(t, facade.Partij())
	})
}

func TestClient_SharedTransport(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		paths []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mu.Lock()
		paths = append(paths, request.URL.Path)
		mu.Unlock()

		assert.Equal(t, "Bearer xyz", request.Header.Get("Authorization"))
		assert.Equal(t, "custom-agent/2.0", request.Header.Get("User-Agent"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()

	client, err := New(&openklant.Config{
		BaseURL:           server.URL + "/klantinteracties/api/v1",
		Token:             "xyz",
		TokenScheme:       "Bearer",
		UserAgent:         "custom-agent/2.0",
		MetricsRegisterer: registry,
	})
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.Actor().List(ctx, nil)
	require.NoError(t, err)
	_, err = client.Partij().List(ctx, &openklant.PartijListParams{SoortPartij: openklant.SoortPartijPersoon})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []string{
		"/klantinteracties/api/v1/actoren",
		"/klantinteracties/api/v1/partijen",
	}, paths)

	count, err := testutil.GatherAndCount(registry, "openklant_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewWithTokenManager(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("first", "")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))

		assert.Equal(t, "Token "+request.URL.Query().Get("want"), request.Header.Get("Authorization"))
	}))
	defer server.Close()

	client, err := NewWithTokenManager(&openklant.Config{BaseURL: server.URL, Token: "ignored"}, manager)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.Actor().List(ctx, &openklant.ActorListParams{ListOptions: openklant.ListOptions{Filters: map[string]string{"want": "first"}}})
	require.NoError(t, err)

	manager.SetToken("second")

	_, err = client.Actor().List(ctx, &openklant.ActorListParams{ListOptions: openklant.ListOptions{Filters: map[string]string{"want": "second"}}})
	require.NoError(t, err)
}
