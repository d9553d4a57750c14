package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// KlantContactClient implements openklant.KlantContactClient.
type KlantContactClient struct {
	*ResourceClient[openklant.KlantContact, openklant.KlantContactCreateData, openklant.KlantContactListParams, *openklant.KlantContactListParams]
}

// NewKlantContactClient creates a new klantcontact client.
func NewKlantContactClient(httpClient *http.Client, opts ResourceOptions) *KlantContactClient {
	return &KlantContactClient{
		ResourceClient: NewResourceClient[openklant.KlantContact, openklant.KlantContactCreateData, openklant.KlantContactListParams](
			httpClient,
			constants.PathKlantContacten,
			"klantcontact",
			openklant.KlantContactSchema,
			openklant.KlantContactCreateSchema,
			opts,
		),
	}
}

// RetrieveExpanded implements openklant.KlantContactClient.RetrieveExpanded.
func (c *KlantContactClient) RetrieveExpanded(ctx context.Context, uuid string, expand ...string) (*openklant.KlantContact, error) {
	return c.retrieve(ctx, uuid, expandQuery(expand))
}

// expandQuery returns nil when nothing is expanded so Retrieve and
// RetrieveExpanded without names send the same request.
func expandQuery(expand []string) url.Values {
	names := make([]string, 0, len(expand))

	for _, name := range expand {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil
	}

	return url.Values{"expand": {strings.Join(names, ",")}}
}
