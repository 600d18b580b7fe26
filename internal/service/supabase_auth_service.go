package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/compatibility-matrix/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// AuthServiceInterface is the hosted auth provider. Token issuance,
// password storage and session lifecycle all live on the provider side;
// this service is only a thin client.
type AuthServiceInterface interface {
	SignUp(ctx context.Context, email, password, name string) (*AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthSession, error)
	SignOut(ctx context.Context, accessToken string) error
}

type AuthSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
}

type SupabaseAuthService struct {
	client *resty.Client
}

func NewSupabaseAuthService() *SupabaseAuthService {
	cfg := config.LoadSupabaseConfig()
	client := resty.New().
		SetBaseURL(cfg.URL+"/auth/v1").
		SetHeader("apikey", cfg.AnonKey).
		SetHeader("Content-Type", "application/json")
	return &SupabaseAuthService{client: client}
}

func (s *SupabaseAuthService) SignUp(ctx context.Context, email, password, name string) (*AuthSession, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"email":    email,
			"password": password,
			"data":     map[string]any{"name": name},
		}).
		Post("/signup")
	if err != nil {
		return nil, fmt.Errorf("auth provider signup: %w", err)
	}
	if resp.IsError() {
		return nil, providerError("signup", resp)
	}
	return parseSession(resp.Body()), nil
}

func (s *SupabaseAuthService) SignIn(ctx context.Context, email, password string) (*AuthSession, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]any{"email": email, "password": password}).
		Post("/token")
	if err != nil {
		return nil, fmt.Errorf("auth provider signin: %w", err)
	}
	if resp.IsError() {
		return nil, providerError("signin", resp)
	}
	return parseSession(resp.Body()), nil
}

func (s *SupabaseAuthService) Refresh(ctx context.Context, refreshToken string) (*AuthSession, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]any{"refresh_token": refreshToken}).
		Post("/token")
	if err != nil {
		return nil, fmt.Errorf("auth provider refresh: %w", err)
	}
	if resp.IsError() {
		return nil, providerError("refresh", resp)
	}
	return parseSession(resp.Body()), nil
}

func (s *SupabaseAuthService) SignOut(ctx context.Context, accessToken string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("auth provider signout: %w", err)
	}
	if resp.IsError() {
		return providerError("signout", resp)
	}
	return nil
}

func parseSession(body []byte) *AuthSession {
	text := string(body)
	session := &AuthSession{
		AccessToken:  gjson.Get(text, "access_token").String(),
		RefreshToken: gjson.Get(text, "refresh_token").String(),
		TokenType:    gjson.Get(text, "token_type").String(),
		ExpiresIn:    gjson.Get(text, "expires_in").Int(),
		UserID:       gjson.Get(text, "user.id").String(),
		Email:        gjson.Get(text, "user.email").String(),
		Name:         gjson.Get(text, "user.user_metadata.name").String(),
	}
	// signup with email confirmation enabled returns the bare user object
	if session.UserID == "" {
		session.UserID = gjson.Get(text, "id").String()
		session.Email = gjson.Get(text, "email").String()
		session.Name = gjson.Get(text, "user_metadata.name").String()
	}
	return session
}

func providerError(op string, resp *resty.Response) error {
	text := string(resp.Body())
	msg := gjson.Get(text, "msg").String()
	if msg == "" {
		msg = gjson.Get(text, "error_description").String()
	}
	if msg == "" {
		msg = gjson.Get(text, "message").String()
	}
	if msg == "" {
		msg = resp.Status()
	}
	return fmt.Errorf("auth provider %s: %s", op, msg)
}
