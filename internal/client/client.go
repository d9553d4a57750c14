package client

import (
	"github.com/open-inwoner/openklant/internal/auth"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Client implements the openklant.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       openklant.Logger
	resourceOpts ResourceOptions

	// Resource clients
	actoren               *ActorClient
	betrokkenen           *BetrokkeneClient
	digitaleAdressen      *DigitaalAdresClient
	interneTaken          *InterneTaakClient
	klantContacten        *KlantContactClient
	onderwerpObjecten     *OnderwerpObjectClient
	partijIdentificatoren *PartijIdentificatorClient
	partijen              *PartijClient
}

// createTokenManager creates a static token manager when a token is configured.
func createTokenManager(config *openklant.Config) auth.TokenManager {
	if config.Token == "" {
		return nil // No authentication
	}

	return auth.NewStaticTokenManager(config.Token, config.TokenScheme)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *openklant.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.MetricsRegisterer != nil {
		httpOpts = append(httpOpts, http.WithMetrics(http.PrometheusMetrics(config.MetricsRegisterer)))
	}

	return httpOpts
}

// New creates a new klantinteracties API client.
func New(config *openklant.Config) (*Client, error) {
	if config == nil {
		return nil, openklant.ErrConfigRequired
	}

	return NewWithTokenManager(config, createTokenManager(config))
}

// NewWithTokenManager creates a new client that authenticates with tokenManager
// instead of config.Token. tokenManager may be nil.
func NewWithTokenManager(config *openklant.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, openklant.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, openklant.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, createHTTPClientOptions(config)...)

	logger := config.Logger
	if logger == nil {
		logger = openklant.NoopLogger{}
	}

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
		logger:       logger,
		resourceOpts: ResourceOptions{
			ValidateResponses: config.ValidateResponses,
			Logger:            logger,
		},
	}

	client.initializeResourceClients()

	return client, nil
}

// BaseURL returns the normalized base URL every request is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Resource client accessors

// Actor implements openklant.Client.Actor.
func (c *Client) Actor() openklant.ActorClient {
	return c.actoren
}

// Betrokkene implements openklant.Client.Betrokkene.
func (c *Client) Betrokkene() openklant.BetrokkeneClient {
	return c.betrokkenen
}

// DigitaalAdres implements openklant.Client.DigitaalAdres.
func (c *Client) DigitaalAdres() openklant.DigitaalAdresClient {
	return c.digitaleAdressen
}

// InterneTaak implements openklant.Client.InterneTaak.
func (c *Client) InterneTaak() openklant.InterneTaakClient {
	return c.interneTaken
}

// KlantContact implements openklant.Client.KlantContact.
func (c *Client) KlantContact() openklant.KlantContactClient {
	return c.klantContacten
}

// OnderwerpObject implements openklant.Client.OnderwerpObject.
func (c *Client) OnderwerpObject() openklant.OnderwerpObjectClient {
	return c.onderwerpObjecten
}

// PartijIdentificator implements openklant.Client.PartijIdentificator.
func (c *Client) PartijIdentificator() openklant.PartijIdentificatorClient {
	return c.partijIdentificatoren
}

// Partij implements openklant.Client.Partij.
func (c *Client) Partij() openklant.PartijClient {
	return c.partijen
}

// initializeResourceClients initializes all resource-specific clients on the
// shared transport.
func (c *Client) initializeResourceClients() {
	c.actoren = NewActorClient(c.httpClient, c.resourceOpts)
	c.betrokkenen = NewBetrokkeneClient(c.httpClient, c.resourceOpts)
	c.digitaleAdressen = NewDigitaalAdresClient(c.httpClient, c.resourceOpts)
	c.interneTaken = NewInterneTaakClient(c.httpClient, c.resourceOpts)
	c.klantContacten = NewKlantContactClient(c.httpClient, c.resourceOpts)
	c.onderwerpObjecten = NewOnderwerpObjectClient(c.httpClient, c.resourceOpts)
	c.partijIdentificatoren = NewPartijIdentificatorClient(c.httpClient, c.resourceOpts)
	c.partijen = NewPartijClient(c.httpClient, c.resourceOpts)
}
