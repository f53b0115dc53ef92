package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/wepub/internal/client/models"
	"github.com/dmitrijs2005/wepub/internal/client/transport"
)

type APIKeyClient struct {
	r Requester
}

func NewAPIKeyClient(r Requester) *APIKeyClient {
	return &APIKeyClient{r: r}
}

func providerQuery(provider string) transport.CallOption {
	if provider == "" {
		provider = models.DefaultProvider
	}
	return transport.WithQuery(url.Values{"provider": {provider}})
}

// Get returns the key metadata for provider, or nil when none is stored.
func (c *APIKeyClient) Get(ctx context.Context, provider string) (*models.APIKey, error) {
	var k models.APIKey
	if err := c.r.Get(ctx, "/api-keys", &k, providerQuery(provider)); err != nil {
		if transport.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &k, nil
}

func (c *APIKeyClient) Create(ctx context.Context, req models.APIKeyCreate) (*models.APIKey, error) {
	if req.Provider == "" {
		req.Provider = models.DefaultProvider
	}
	var k models.APIKey
	if err := c.r.Post(ctx, "/api-keys", req, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func (c *APIKeyClient) Update(ctx context.Context, provider string, req models.APIKeyUpdate) (*models.APIKey, error) {
	var k models.APIKey
	if err := c.r.Put(ctx, "/api-keys", req, &k, providerQuery(provider)); err != nil {
		return nil, err
	}
	return &k, nil
}

func (c *APIKeyClient) Delete(ctx context.Context, provider string) error {
	return c.r.Delete(ctx, "/api-keys", nil, providerQuery(provider))
}
