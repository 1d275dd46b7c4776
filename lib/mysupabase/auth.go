package mysupabase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	auth "github.com/supabase-community/auth-go"
)

// User is the subset of the Supabase Auth user object this service needs.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthClient validates access tokens against Supabase Auth.
type AuthClient struct {
	client  auth.Client
	timeout time.Duration
}

// NewAuthClient talks to the auth endpoint below baseURL, e.g. https://<ref>.supabase.co.
func NewAuthClient(baseURL string, anonKey string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		client:  auth.New("", anonKey).WithCustomAuthURL(strings.TrimSuffix(baseURL, "/") + "/auth/v1"),
		timeout: timeout,
	}
}

// GetUser returns the user owning accessToken. An expired or unknown token yields found=false without error.
func (ac *AuthClient) GetUser(c context.Context, accessToken string) (User, bool, error) {
	if accessToken == "" {
		return User{}, false, nil
	}

	resp, err := ac.client.
		WithClient(http.Client{
			Timeout:   ac.timeout,
			Transport: contextTransport{ctx: c, next: http.DefaultTransport},
		}).
		WithToken(accessToken).
		GetUser()
	if err != nil {
		status, ok := responseStatus(err)
		if !ok {
			return User{}, false, fmt.Errorf("%w: %w", ErrUnreachable, err)
		}
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return User{}, false, nil
		default:
			return User{}, false, fmt.Errorf("error fetching user: %s", err)
		}
	}
	if resp == nil || resp.ID == uuid.Nil {
		return User{}, false, nil
	}

	return User{
		ID:    resp.ID.String(),
		Email: resp.Email,
	}, true, nil
}

// responseStatus extracts the http status from an auth-go error ("response status code 401: ...").
func responseStatus(err error) (int, bool) {
	status := 0
	_, scanErr := fmt.Sscanf(err.Error(), "response status code %d", &status)
	return status, scanErr == nil
}

// contextTransport binds outgoing requests to ctx; auth-go builds its requests without one.
type contextTransport struct {
	ctx  context.Context
	next http.RoundTripper
}

func (t contextTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.next.RoundTrip(r.WithContext(t.ctx))
}
