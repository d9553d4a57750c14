package client

import (
	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// BetrokkeneClient implements openklant.BetrokkeneClient.
type BetrokkeneClient struct {
	*ResourceClient[openklant.Betrokkene, openklant.BetrokkeneCreateData, openklant.BetrokkeneListParams, *openklant.BetrokkeneListParams]
}

// NewBetrokkeneClient creates a new betrokkene client.
func NewBetrokkeneClient(httpClient *http.Client, opts ResourceOptions) *BetrokkeneClient {
	return &BetrokkeneClient{
		ResourceClient: NewResourceClient[openklant.Betrokkene, openklant.BetrokkeneCreateData, openklant.BetrokkeneListParams](
			httpClient,
			constants.PathBetrokkenen,
			"betrokkene",
			openklant.BetrokkeneSchema,
			openklant.BetrokkeneCreateSchema,
			opts,
		),
	}
}
