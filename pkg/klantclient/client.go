package klantclient

import (
	"fmt"
	"strings"

	"github.com/open-inwoner/openklant/internal/auth"
	"github.com/open-inwoner/openklant/internal/client"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// New creates a client from config. The base URL gets "https://" when it has
// no scheme and loses any trailing slash. config is not modified.
func New(config *openklant.Config) (openklant.Client, error) {
	if config == nil {
		return nil, openklant.ErrConfigRequired
	}

	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	c, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client for baseURL authenticating with token.
func NewWithToken(baseURL, token string) (openklant.Client, error) {
	return New(&openklant.Config{BaseURL: baseURL, Token: token})
}

// NewWithEnvToken creates a client that reads its token from the environment
// variable on every request, so a rotated token is picked up without
// rebuilding the client.
func NewWithEnvToken(config *openklant.Config, variable string) (openklant.Client, error) {
	if config == nil {
		return nil, openklant.ErrConfigRequired
	}

	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	c, err := client.NewWithTokenManager(normalized, auth.NewEnvTokenManager(variable, config.TokenScheme))
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return c, nil
}

func normalize(config *openklant.Config) (*openklant.Config, error) {
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		return nil, openklant.ErrBaseURLRequired
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	normalized := *config
	normalized.BaseURL = baseURL

	return &normalized, nil
}
