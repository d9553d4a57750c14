package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"
	"strings"

	"github.com/open-inwoner/openklant/internal/http"
	"github.com/open-inwoner/openklant/pkg/openklant"
)

// listParams is satisfied by a pointer to one of the *ListParams types.
type listParams[P any] interface {
	*P
	openklant.ListParams
}

// ResourceClient provides the operations shared by every collection of the
// klantinteracties API. The concrete resource clients embed it.
type ResourceClient[TRecord, TCreate, TParams any, PParams listParams[TParams]] struct {
	httpClient        *http.Client
	resourcePath      string
	resourceName      string
	recordSchema      *openklant.Schema[TRecord]
	createSchema      *openklant.Schema[TCreate]
	validateResponses bool
	logger            openklant.Logger
}

// ResourceOptions carries the settings the facade hands to every resource client.
type ResourceOptions struct {
	ValidateResponses bool
	Logger            openklant.Logger
}

// NewResourceClient creates a resource client for resourcePath.
func NewResourceClient[TRecord, TCreate, TParams any, PParams listParams[TParams]](
	httpClient *http.Client,
	resourcePath, resourceName string,
	recordSchema *openklant.Schema[TRecord],
	createSchema *openklant.Schema[TCreate],
	opts ResourceOptions,
) *ResourceClient[TRecord, TCreate, TParams, PParams] {
	logger := opts.Logger
	if logger == nil {
		logger = openklant.NoopLogger{}
	}

	return &ResourceClient[TRecord, TCreate, TParams, PParams]{
		httpClient:        httpClient,
		resourcePath:      resourcePath,
		resourceName:      resourceName,
		recordSchema:      recordSchema,
		createSchema:      createSchema,
		validateResponses: opts.ValidateResponses,
		logger:            logger,
	}
}

// Create validates data and posts it to the collection.
func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) Create(ctx context.Context, data *TCreate) (*TRecord, error) {
	err := c.createSchema.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	resp, err := c.httpClient.Post(ctx, c.resourcePath, data)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	var record TRecord

	err = c.processResponse(resp, &record)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	err = c.checkRecord(&record)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	c.logger.Debug("Created "+c.resourceName, map[string]interface{}{"path": c.resourcePath})

	return &record, nil
}

// Retrieve fetches a single record by uuid.
func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) Retrieve(ctx context.Context, uuid string) (*TRecord, error) {
	return c.retrieve(ctx, uuid, nil)
}

func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) retrieve(ctx context.Context, uuid string, query url.Values) (*TRecord, error) {
	if strings.TrimSpace(uuid) == "" {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, missingUUIDError())
	}

	resp, err := c.httpClient.Get(ctx, c.resourcePath+"/"+url.PathEscape(uuid), query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	var record TRecord

	err = c.processResponse(resp, &record)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	err = c.checkRecord(&record)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	return &record, nil
}

// List fetches the first page matching params. params may be nil.
func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) List(ctx context.Context, params PParams) (*openklant.PaginatedResponse[TRecord], error) {
	return c.listPage(ctx, c.resourcePath, params.Values())
}

// ListIter walks all pages matching params, following the server's next
// locators verbatim. Each range over the sequence starts from the first page.
func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) ListIter(ctx context.Context, params PParams) iter.Seq2[TRecord, error] {
	return openklant.Iterate(ctx, c.pageFetcher(params))
}

// pageFetcher returns a fetcher that requests the first page with params and
// every later page by locator alone.
func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) pageFetcher(params PParams) openklant.PageFetcher[TRecord] {
	return func(ctx context.Context, next string) (*openklant.PaginatedResponse[TRecord], error) {
		if next == "" {
			return c.listPage(ctx, c.resourcePath, params.Values())
		}

		return c.listPage(ctx, next, nil)
	}
}

func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) listPage(ctx context.Context, path string, query url.Values) (*openklant.PaginatedResponse[TRecord], error) {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resourceName, err)
	}

	var page openklant.PaginatedResponse[TRecord]

	err = c.processResponse(resp, &page)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resourceName, err)
	}

	for i := range page.Results {
		err = c.checkRecord(&page.Results[i])
		if err != nil {
			return nil, fmt.Errorf("listing %s: result %d: %w", c.resourceName, i, err)
		}
	}

	return &page, nil
}

// processResponse turns a status of 400 or higher into an APIError and
// otherwise decodes the body into out without validating it.
func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) processResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode >= 400 {
		return openklant.NewAPIError(resp.StatusCode, resp.Body)
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return openklant.ErrEmptyResponse
	}

	err := json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("parsing %s response: %w", c.resourceName, err)
	}

	return nil
}

func (c *ResourceClient[TRecord, TCreate, TParams, PParams]) checkRecord(record *TRecord) error {
	if !c.validateResponses {
		return nil
	}

	return c.recordSchema.Validate(record)
}

func missingUUIDError() error {
	return &openklant.ValidationError{Fields: []openklant.FieldError{{
		Path:    "uuid",
		Tag:     "required",
		Message: "is required",
	}}}
}
