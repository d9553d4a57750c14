package client

import (
	"context"

	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// PartijClient implements openklant.PartijClient.
type PartijClient struct {
	*ResourceClient[openklant.Partij, openklant.PartijCreateData, openklant.PartijListParams, *openklant.PartijListParams]
}

// NewPartijClient creates a new partij client.
func NewPartijClient(httpClient *http.Client, opts ResourceOptions) *PartijClient {
	return &PartijClient{
		ResourceClient: NewResourceClient[openklant.Partij, openklant.PartijCreateData, openklant.PartijListParams](
			httpClient,
			constants.PathPartijen,
			"partij",
			openklant.PartijSchema,
			openklant.PartijCreateSchema,
			opts,
		),
	}
}

// RetrieveExpanded implements openklant.PartijClient.RetrieveExpanded.
func (c *PartijClient) RetrieveExpanded(ctx context.Context, uuid string, expand ...string) (*openklant.Partij, error) {
	return c.retrieve(ctx, uuid, expandQuery(expand))
}
