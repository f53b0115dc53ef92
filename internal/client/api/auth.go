package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/wepub/internal/client/models"
)

// ErrEmptyToken is returned when a login succeeds without an access token.
var ErrEmptyToken = errors.New("server returned an empty access token")

type AuthClient struct {
	r Requester
}

func NewAuthClient(r Requester) *AuthClient {
	return &AuthClient{r: r}
}

// Login exchanges credentials for an access token. It does not persist the
// token.
func (c *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	var tok models.Token
	if err := c.r.Post(ctx, "/auth/login", models.LoginRequest{Username: username, Password: password}, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", ErrEmptyToken
	}
	return tok.AccessToken, nil
}

// Register creates an account. It does not sign in.
func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.r.Post(ctx, "/auth/register", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CurrentUser fetches the profile bound to the stored credential.
func (c *AuthClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.r.Get(ctx, "/users/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
