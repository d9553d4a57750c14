package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ServerReadHeaderTimeout bounds reading request headers in the bundled servers.
	ServerReadHeaderTimeout = 10 * time.Second

	// ShutdownTimeout bounds graceful shutdown of the bundled servers.
	ShutdownTimeout = 10 * time.Second
)

// Retry limits. Retrying is off unless RetryMax is raised.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent retrievals when the CLI gets several records.
	DefaultConcurrencyLimit = 4
)

// Pagination.
const (
	// DefaultPageSize is the page size the fake server uses when none is requested.
	DefaultPageSize = 100

	// MaxPageSize caps the page size the fake server honours.
	MaxPageSize = 500
)

// Resource collection paths, relative to the API base URL.
const (
	PathActoren               = "/actoren"
	PathBetrokkenen           = "/betrokkenen"
	PathDigitaleAdressen      = "/digitaleadressen"
	PathInterneTaken          = "/internetaken"
	PathKlantContacten        = "/klantcontacten"
	PathOnderwerpObjecten     = "/onderwerpobjecten"
	PathPartijIdentificatoren = "/partij-identificatoren"
	PathPartijen              = "/partijen"
)

// Client identification.
const (
	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "openklant-go/1.0"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "OPENKLANT"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
