package client

import (
	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// OnderwerpObjectClient implements openklant.OnderwerpObjectClient.
type OnderwerpObjectClient struct {
	*ResourceClient[openklant.OnderwerpObject, openklant.OnderwerpObjectCreateData, openklant.OnderwerpObjectListParams, *openklant.OnderwerpObjectListParams]
}

// NewOnderwerpObjectClient creates a new onderwerpobject client.
func NewOnderwerpObjectClient(httpClient *http.Client, opts ResourceOptions) *OnderwerpObjectClient {
	return &OnderwerpObjectClient{
		ResourceClient: NewResourceClient[openklant.OnderwerpObject, openklant.OnderwerpObjectCreateData, openklant.OnderwerpObjectListParams](
			httpClient,
			constants.PathOnderwerpObjecten,
			"onderwerpobject",
			openklant.OnderwerpObjectSchema,
			openklant.OnderwerpObjectCreateSchema,
			opts,
		),
	}
}
