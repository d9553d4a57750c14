package client

import (
	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// PartijIdentificatorClient implements openklant.PartijIdentificatorClient.
type PartijIdentificatorClient struct {
	*ResourceClient[openklant.PartijIdentificator, openklant.PartijIdentificatorCreateData, openklant.PartijIdentificatorListParams, *openklant.PartijIdentificatorListParams]
}

// NewPartijIdentificatorClient creates a new partij-identificator client.
func NewPartijIdentificatorClient(httpClient *http.Client, opts ResourceOptions) *PartijIdentificatorClient {
	return &PartijIdentificatorClient{
		ResourceClient: NewResourceClient[openklant.PartijIdentificator, openklant.PartijIdentificatorCreateData, openklant.PartijIdentificatorListParams](
			httpClient,
			constants.PathPartijIdentificatoren,
			"partij-identificator",
			openklant.PartijIdentificatorSchema,
			openklant.PartijIdentificatorCreateSchema,
			opts,
		),
	}
}
