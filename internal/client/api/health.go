package api

import (
	"context"

	"github.com/dmitrijs2005/wepub/internal/client/models"
)

type HealthClient struct {
	r Requester
}

func NewHealthClient(r Requester) *HealthClient {
	return &HealthClient{r: r}
}

// Check probes the backend. It needs no credential.
func (c *HealthClient) Check(ctx context.Context) (*models.Health, error) {
	var h models.Health
	if err := c.r.Get(ctx, "/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}
