package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wepub/internal/client/models"
)

type StyleClient struct {
	r Requester
}

func NewStyleClient(r Requester) *StyleClient {
	return &StyleClient{r: r}
}

// List returns the system styles plus the caller's own.
func (c *StyleClient) List(ctx context.Context) ([]models.Style, error) {
	var out []models.Style
	if err := c.r.Get(ctx, "/styles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StyleClient) Get(ctx context.Context, id int64) (*models.Style, error) {
	var s models.Style
	if err := c.r.Get(ctx, stylePath(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *StyleClient) Create(ctx context.Context, req models.StyleCreate) (*models.Style, error) {
	var s models.Style
	if err := c.r.Post(ctx, "/styles", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *StyleClient) Update(ctx context.Context, id int64, req models.StyleUpdate) (*models.Style, error) {
	var s models.Style
	if err := c.r.Put(ctx, stylePath(id), req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *StyleClient) Delete(ctx context.Context, id int64) error {
	return c.r.Delete(ctx, stylePath(id), nil)
}

func stylePath(id int64) string { return fmt.Sprintf("/styles/%d", id) }
