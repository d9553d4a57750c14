package client

import (
	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// InterneTaakClient implements openklant.InterneTaakClient.
type InterneTaakClient struct {
	*ResourceClient[openklant.InterneTaak, openklant.InterneTaakCreateData, openklant.InterneTaakListParams, *openklant.InterneTaakListParams]
}

// NewInterneTaakClient creates a new interne taak client.
func NewInterneTaakClient(httpClient *http.Client, opts ResourceOptions) *InterneTaakClient {
	return &InterneTaakClient{
		ResourceClient: NewResourceClient[openklant.InterneTaak, openklant.InterneTaakCreateData, openklant.InterneTaakListParams](
			httpClient,
			constants.PathInterneTaken,
			"interne taak",
			openklant.InterneTaakSchema,
			openklant.InterneTaakCreateSchema,
			opts,
		),
	}
}
