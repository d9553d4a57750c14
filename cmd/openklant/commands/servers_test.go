package commands

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/notifications"
	"github.com/open-inwoner/openklant/pkg/klantclient"
	"github.com/open-inwoner/openklant/pkg/openklant"
	"github.com/open-inwoner/openklant/pkg/openklant/openklanttest"
)

func TestNotificationsRouter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(notificationsRouter(notifications.NewRegistry(nil), "secret", openklant.NoopLogger{}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	body := `{
		"kanaal": "klantcontacten",
		"hoofdObject": "http://localhost/klantcontacten/6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31",
		"resource": "klantcontact",
		"resourceUrl": "http://localhost/klantcontacten/6b1a5b58-3e0b-4c68-9f2e-1d5c7a0e8f31",
		"actie": "create",
		"aanmaakdatum": "2026-01-02T10:00:00Z"
	}`

	req, err := http.NewRequest(http.MethodPost, server.URL+"/notifications", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Token secret")
	req.Header.Set("Content-Type", "application/json")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var metrics strings.Builder
	_, err = io.Copy(&metrics, resp.Body)
	require.NoError(t, err)

	assert.Contains(t, metrics.String(), `openklant_notifications_received_total{kanaal="klantcontacten",outcome="ignored"} 1`)
	assert.Contains(t, metrics.String(), "go_goroutines")
}

func TestNotifyOnCreate(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		received []*notifications.Notification
	)

	registry := notifications.NewRegistry(nil)
	registry.Register("capture", notifications.Any, notifications.Any, notifications.HookFunc(
		func(_ context.Context, n *notifications.Notification) error {
			mu.Lock()
			defer mu.Unlock()

			received = append(received, n)

			return nil
		}))

	webhook := httptest.NewServer(notifications.NewHandler(registry, notifications.HandlerOptions{Token: "hook"}).Routes())
	t.Cleanup(webhook.Close)

	sender, err := notifications.NewSender(webhook.URL+"/notifications", "hook")
	require.NoError(t, err)

	_, baseURL := openklanttest.NewServer(t, openklanttest.Options{
		BasePath: "/api/v1",
		OnCreate: notifyOnCreate(context.Background(), sender, "http://localhost:8000", openklant.NoopLogger{}),
	})

	cli, err := klantclient.NewWithToken(baseURL, "")
	require.NoError(t, err)

	actor, err := cli.Actor().Create(context.Background(), openklanttest.Actor().MustBuild(t))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(received) == 1
	}, 5*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, received, 1)
	assert.Equal(t, strings.TrimPrefix(constants.PathActoren, "/"), received[0].Kanaal)
	assert.Equal(t, "actor", received[0].Resource)
	assert.Equal(t, "http://localhost:8000/api/v1/actoren/"+actor.UUID, received[0].ResourceURL)
	assert.Equal(t, actor.UUID, received[0].ResourceUUID())
}

func TestAdvertisedHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr string
		want string
	}{
		{addr: "0.0.0.0:8000", want: "localhost:8000"},
		{addr: "[::]:8000", want: "localhost:8000"},
		{addr: "127.0.0.1:9000", want: "127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			t.Parallel()

			addr, err := net.ResolveTCPAddr("tcp", tt.addr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, advertisedHost(addr))
		})
	}
}

func TestServe(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	listener, err := listen(ctx, "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)

	go func() {
		done <- serve(ctx, listener, openklanttest.New(openklanttest.Options{}), openklant.NoopLogger{})
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + constants.PathActoren)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
