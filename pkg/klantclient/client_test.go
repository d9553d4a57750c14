package klantclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/pkg/klantclient"
	"github.com/open-inwoner/openklant/pkg/openklant"
	"github.com/open-inwoner/openklant/pkg/openklant/openklanttest"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		client, err := klantclient.New(nil)
		require.ErrorIs(t, err, openklant.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := klantclient.New(&openklant.Config{BaseURL: "  "})
		require.ErrorIs(t, err, openklant.ErrBaseURLRequired)
	})

	t.Run("does not modify config", func(t *testing.T) {
		t.Parallel()

		config := &openklant.Config{BaseURL: "klanten.example.nl/api/v1/"}

		client, err := klantclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "klanten.example.nl/api/v1/", config.BaseURL)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server, baseURL := openklanttest.NewServer(t, openklanttest.Options{
		Token:    "secret-token",
		BasePath: "/klantinteracties/api/v1",
	})

	client, err := klantclient.NewWithToken(baseURL+"/", "secret-token")
	require.NoError(t, err)

	actor, err := client.Actor().Create(context.Background(), openklanttest.Actor().MustBuild(t))
	require.NoError(t, err)
	assert.Equal(t, "Jan Janssen", actor.Naam)
	assert.Equal(t, baseURL+constants.PathActoren+"/"+actor.UUID, actor.URL)
	assert.Equal(t, 1, server.Count(constants.PathActoren))
}

func TestNewWithToken_WrongToken(t *testing.T) {
	t.Parallel()

	_, baseURL := openklanttest.NewServer(t, openklanttest.Options{Token: "secret-token"})

	client, err := klantclient.NewWithToken(baseURL, "wrong")
	require.NoError(t, err)

	_, err = client.Actor().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, openklant.IsUnauthorized(err))
}

func TestNewWithEnvToken(t *testing.T) {
	server, baseURL := openklanttest.NewServer(t, openklanttest.Options{Token: "rotated"})
	server.MustSeed(t, constants.PathActoren, openklanttest.Actor().MustBuild(t))

	client, err := klantclient.NewWithEnvToken(&openklant.Config{BaseURL: baseURL}, "KLANTCLIENT_TEST_TOKEN")
	require.NoError(t, err)

	t.Setenv("KLANTCLIENT_TEST_TOKEN", "stale")

	_, err = client.Actor().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, openklant.IsUnauthorized(err))

	t.Setenv("KLANTCLIENT_TEST_TOKEN", "rotated")

	page, err := client.Actor().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
}
