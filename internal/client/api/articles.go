package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/wepub/internal/client/models"
	"github.com/dmitrijs2005/wepub/internal/client/transport"
)

// DefaultGenerateTimeout bounds article generation, which waits on the LLM.
const DefaultGenerateTimeout = 120 * time.Second

type ArticleClient struct {
	r               Requester
	generateTimeout time.Duration
}

func NewArticleClient(r Requester) *ArticleClient {
	return &ArticleClient{r: r, generateTimeout: DefaultGenerateTimeout}
}

// SetGenerateTimeout changes the timeout used by Create. Non-positive values
// are ignored.
func (c *ArticleClient) SetGenerateTimeout(d time.Duration) {
	if d > 0 {
		c.generateTimeout = d
	}
}

// Create asks the backend to generate an article from a prompt in a style.
func (c *ArticleClient) Create(ctx context.Context, req models.ArticleCreate) (*models.Article, error) {
	var a models.Article
	if err := c.r.Post(ctx, "/articles", req, &a, transport.WithTimeout(c.generateTimeout)); err != nil {
		return nil, err
	}
	return &a, nil
}

// List pages through the caller's articles, newest first.
func (c *ArticleClient) List(ctx context.Context, skip, limit int) ([]models.ArticleSummary, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var out []models.ArticleSummary
	if err := c.r.Get(ctx, "/articles", &out, transport.WithQuery(q)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ArticleClient) Get(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	if err := c.r.Get(ctx, articlePath(id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *ArticleClient) Update(ctx context.Context, id int64, req models.ArticleUpdate) (*models.Article, error) {
	var a models.Article
	if err := c.r.Put(ctx, articlePath(id), req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Sync pushes the article to the WeChat draft box.
func (c *ArticleClient) Sync(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	if err := c.r.Post(ctx, articlePath(id)+"/sync", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *ArticleClient) Delete(ctx context.Context, id int64) error {
	return c.r.Delete(ctx, articlePath(id), nil)
}

func articlePath(id int64) string { return fmt.Sprintf("/articles/%d", id) }
