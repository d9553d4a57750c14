package notifications

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/open-inwoner/openklant/internal/auth"
	ihttp "github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// Sender posts notifications to a webhook. The fake server uses it to play
// the notification component.
type Sender struct {
	client *ihttp.Client
	path   string
	query  url.Values
}

// NewSender creates a sender for webhookURL, authenticating with token when
// it is not empty. The query string of webhookURL is sent with every
// notification.
func NewSender(webhookURL, token string, opts ...ihttp.Option) (*Sender, error) {
	parsed, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook URL: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWebhookURL, webhookURL)
	}

	var tokenManager auth.TokenManager
	if token != "" {
		tokenManager = auth.NewStaticTokenManager(token, "")
	}

	origin := parsed.Scheme + "://" + parsed.Host

	return &Sender{
		client: ihttp.NewClient(origin, tokenManager, opts...),
		path:   parsed.EscapedPath(),
		query:  parsed.Query(),
	}, nil
}

// Send delivers n. A response status of 300 or above is an *openklant.APIError.
func (s *Sender) Send(ctx context.Context, n *Notification) error {
	resp, err := s.client.Do(ctx, &ihttp.Request{
		Method: http.MethodPost,
		Path:   s.path,
		Query:  s.query,
		Body:   n,
	})
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sending notification: %w", openklant.NewAPIError(resp.StatusCode, resp.Body))
	}

	return nil
}

var resourceNames = map[string]string{
	"actoren":                "actor",
	"betrokkenen":            "betrokkene",
	"digitaleadressen":       "digitaaladres",
	"internetaken":           "internetaak",
	"klantcontacten":         "klantcontact",
	"onderwerpobjecten":      "onderwerpobject",
	"partij-identificatoren": "partijidentificator",
	"partijen":               "partij",
}

// FromRecord describes the creation of record, stored under the collection
// path, as a notification. record's url is made absolute against origin.
func FromRecord(origin, path string, record map[string]any, now time.Time) *Notification {
	kanaal := strings.TrimPrefix(path, "/")

	resource, ok := resourceNames[kanaal]
	if !ok {
		resource = kanaal
	}

	recordURL, _ := record["url"].(string)
	if !strings.HasPrefix(recordURL, "http://") && !strings.HasPrefix(recordURL, "https://") {
		recordURL = strings.TrimSuffix(origin, "/") + recordURL
	}

	return &Notification{
		Kanaal:       kanaal,
		HoofdObject:  recordURL,
		Resource:     resource,
		ResourceURL:  recordURL,
		Actie:        ActieCreate,
		Aanmaakdatum: now.UTC(),
	}
}
