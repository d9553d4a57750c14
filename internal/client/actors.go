package client

import (
	"github.com/open-inwoner/openklant/internal/constants"
	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// ActorClient implements openklant.ActorClient.
type ActorClient struct {
	*ResourceClient[openklant.Actor, openklant.ActorCreateData, openklant.ActorListParams, *openklant.ActorListParams]
}

// NewActorClient creates a new actor client.
func NewActorClient(httpClient *http.Client, opts ResourceOptions) *ActorClient {
	return &ActorClient{
		ResourceClient: NewResourceClient[openklant.Actor, openklant.ActorCreateData, openklant.ActorListParams](
			httpClient,
			constants.PathActoren,
			"actor",
			openklant.ActorSchema,
			openklant.ActorCreateSchema,
			opts,
		),
	}
}
