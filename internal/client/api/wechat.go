package api

import (
	"context"

	"github.com/dmitrijs2005/wepub/internal/client/models"
	"github.com/dmitrijs2005/wepub/internal/client/transport"
)

const wechatConfigPath = "/wechat/config"

type WechatClient struct {
	r Requester
}

func NewWechatClient(r Requester) *WechatClient {
	return &WechatClient{r: r}
}

// Get returns the official-account binding, or nil when none is stored.
func (c *WechatClient) Get(ctx context.Context) (*models.WechatConfig, error) {
	var cfg models.WechatConfig
	if err := c.r.Get(ctx, wechatConfigPath, &cfg); err != nil {
		if transport.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (c *WechatClient) Create(ctx context.Context, req models.WechatConfigCreate) (*models.WechatConfig, error) {
	var cfg models.WechatConfig
	if err := c.r.Post(ctx, wechatConfigPath, req, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *WechatClient) Update(ctx context.Context, req models.WechatConfigUpdate) (*models.WechatConfig, error) {
	var cfg models.WechatConfig
	if err := c.r.Put(ctx, wechatConfigPath, req, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *WechatClient) Delete(ctx context.Context) error {
	return c.r.Delete(ctx, wechatConfigPath, nil)
}
