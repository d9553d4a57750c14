package client

import (
	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// DigitaalAdresClient implements openklant.DigitaalAdresClient.
type DigitaalAdresClient struct {
	*ResourceClient[openklant.DigitaalAdres, openklant.DigitaalAdresCreateData, openklant.DigitaalAdresListParams, *openklant.DigitaalAdresListParams]
}

// NewDigitaalAdresClient creates a new digitaal adres client.
func NewDigitaalAdresClient(httpClient *http.Client, opts ResourceOptions) *DigitaalAdresClient {
	return &DigitaalAdresClient{
		ResourceClient: NewResourceClient[openklant.DigitaalAdres, openklant.DigitaalAdresCreateData, openklant.DigitaalAdresListParams](
			httpClient,
			constants.PathDigitaleAdressen,
			"digitaal adres",
			openklant.DigitaalAdresSchema,
			openklant.DigitaalAdresCreateSchema,
			opts,
		),
	}
}
