package api

import (
	"context"

	"github.com/dmitrijs2005/wepub/internal/client/transport"
)

// Requester issues JSON calls relative to the API base address.
type Requester interface {
	Get(ctx context.Context, path string, out any, opts ...transport.CallOption) error
	Post(ctx context.Context, path string, body, out any, opts ...transport.CallOption) error
	Put(ctx context.Context, path string, body, out any, opts ...transport.CallOption) error
	Delete(ctx context.Context, path string, out any, opts ...transport.CallOption) error
}

var _ Requester = (*transport.Client)(nil)

// Clients bundles one client per backend resource over a shared Requester.
type Clients struct {
	Auth     *AuthClient
	Styles   *StyleClient
	Articles *ArticleClient
	APIKeys  *APIKeyClient
	Wechat   *WechatClient
	Health   *HealthClient
}

func NewClients(r Requester) *Clients {
	return &Clients{
		Auth:     NewAuthClient(r),
		Styles:   NewStyleClient(r),
		Articles: NewArticleClient(r),
		APIKeys:  NewAPIKeyClient(r),
		Wechat:   NewWechatClient(r),
		Health:   NewHealthClient(r),
	}
}
