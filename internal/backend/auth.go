package backend

import (
	"context"

	"github.com/VincentPrime/Survey-client/internal/model"
)

// AuthAPI wraps the backend's authentication and identity endpoints
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*model.TokenPair, error)
	Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error)
	Me(ctx context.Context, token string) (*model.User, error)
}

type authAPI struct {
	client *Client
}

// NewAuthAPI creates the auth endpoint wrapper
func NewAuthAPI(client *Client) AuthAPI {
	return &authAPI{client: client}
}

func (a *authAPI) Login(ctx context.Context, username, password string) (*model.TokenPair, error) {
	payload := map[string]string{"username": username, "password": password}
	data, err := a.client.do(ctx, "POST", "/auth/login/", "", payload)
	if err != nil {
		return nil, err
	}
	var pair model.TokenPair
	if err := decode(data, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *authAPI) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	data, err := a.client.do(ctx, "POST", "/api/users/", "", req)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := decode(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authAPI) Me(ctx context.Context, token string) (*model.User, error) {
	data, err := a.client.do(ctx, "GET", "/api/users/me/", token, nil)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := decode(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
