package openklant

import (
	"context"
	"iter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ResourceClient is the operation set shared by every resource collection.
type ResourceClient[TRecord, TCreate, TParams any] interface {
	// Create validates data and posts it to the collection.
	Create(ctx context.Context, data *TCreate) (*TRecord, error)
	// Retrieve fetches a single record by uuid.
	Retrieve(ctx context.Context, uuid string) (*TRecord, error)
	// List fetches the first page matching params. params may be nil.
	List(ctx context.Context, params *TParams) (*PaginatedResponse[TRecord], error)
	// ListIter walks all pages matching params.
	ListIter(ctx context.Context, params *TParams) iter.Seq2[TRecord, error]
}

// ActorClient manages actoren.
type ActorClient interface {
	ResourceClient[Actor, ActorCreateData, ActorListParams]
}

// BetrokkeneClient manages betrokkenen.
type BetrokkeneClient interface {
	ResourceClient[Betrokkene, BetrokkeneCreateData, BetrokkeneListParams]
}

// DigitaalAdresClient manages digitale adressen.
type DigitaalAdresClient interface {
	ResourceClient[DigitaalAdres, DigitaalAdresCreateData, DigitaalAdresListParams]
}

// InterneTaakClient manages interne taken.
type InterneTaakClient interface {
	ResourceClient[InterneTaak, InterneTaakCreateData, InterneTaakListParams]
}

// KlantContactClient manages klantcontacten.
type KlantContactClient interface {
	ResourceClient[KlantContact, KlantContactCreateData, KlantContactListParams]
	// RetrieveExpanded fetches a klantcontact with the named relations inlined under Expand.
	RetrieveExpanded(ctx context.Context, uuid string, expand ...string) (*KlantContact, error)
}

// OnderwerpObjectClient manages onderwerpobjecten.
type OnderwerpObjectClient interface {
	ResourceClient[OnderwerpObject, OnderwerpObjectCreateData, OnderwerpObjectListParams]
}

// PartijIdentificatorClient manages partij-identificatoren.
type PartijIdentificatorClient interface {
	ResourceClient[PartijIdentificator, PartijIdentificatorCreateData, PartijIdentificatorListParams]
}

// PartijClient manages partijen.
type PartijClient interface {
	ResourceClient[Partij, PartijCreateData, PartijListParams]
	// RetrieveExpanded fetches a partij with the named relations inlined under Expand.
	RetrieveExpanded(ctx context.Context, uuid string, expand ...string) (*Partij, error)
}

// Client gives access to every resource client of the klantinteracties API.
// All resource clients share one transport.
type Client interface {
	Actor() ActorClient
	Betrokkene() BetrokkeneClient
	DigitaalAdres() DigitaalAdresClient
	InterneTaak() InterneTaakClient
	KlantContact() KlantContactClient
	OnderwerpObject() OnderwerpObjectClient
	PartijIdentificator() PartijIdentificatorClient
	Partij() PartijClient
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// When Token is set every request carries the header
// "Authorization: <TokenScheme> <Token>". TokenScheme defaults to "Token",
// which is what Open Klant expects. Without a Token requests are sent
// unauthenticated.
//
// # Timeouts and retries
//
// Per-request deadlines should be controlled via the context passed to client
// methods. Retries are disabled unless RetryMax is greater than zero; when
// enabled, only connection errors and 5xx responses of GET requests are
// retried.
type Config struct {
	// BaseURL is the root of the API, e.g.
	// "https://klanten.example.nl/klantinteracties/api/v1". klantclient.New
	// trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string

	// Token is the API token. Empty means no Authorization header.
	Token string
	// TokenScheme overrides the "Token" authorization scheme.
	TokenScheme string

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout bounds a single round trip, including reading the body.
	HTTPTimeout time.Duration
	// RetryMax is the number of retries for transient failures. 0 disables retrying.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool
	// Logger receives structured log lines from the transport and the clients.
	Logger Logger

	// ValidateResponses checks every decoded record against its schema.
	ValidateResponses bool

	// MetricsRegisterer, when set, receives the transport's request counters
	// and latency histograms.
	MetricsRegisterer prometheus.Registerer
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// Time returns a pointer to t.
func Time(t time.Time) *time.Time {
	return &t
}
