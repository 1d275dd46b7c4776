package mysupabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coachID = "6b1f1d1e-6c4e-4b8a-9f51-0c7d2b0a1e11"

func runAuthServer(t *testing.T) (*httptest.Server, func()) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)

	mux.HandleFunc("/auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		switch r.Header.Get("Authorization") {
		case "Bearer valid-token":
			_, _ = w.Write([]byte(`{"id":"` + coachID + `","aud":"authenticated","role":"authenticated","email":"coach@hoops.example"}`))
		case "Bearer expired-token":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"error_code":"bad_jwt","msg":"invalid JWT"}`))
		case "Bearer banned-token":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"code":403,"error_code":"user_banned","msg":"User is banned"}`))
		case "Bearer slow-token":
			<-r.Context().Done()
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	return ts, func() {
		defer ts.Close()
	}
}

func TestAuthClient(t *testing.T) {
	ts, cleanup := runAuthServer(t)
	defer cleanup()

	client := NewAuthClient(ts.URL, "anon-key", time.Second)

	t.Run("Valid token", func(t *testing.T) {
		user, found, err := client.GetUser(context.TODO(), "valid-token")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, User{ID: coachID, Email: "coach@hoops.example"}, user)
	})

	t.Run("Expired token", func(t *testing.T) {
		_, found, err := client.GetUser(context.TODO(), "expired-token")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Banned user", func(t *testing.T) {
		_, found, err := client.GetUser(context.TODO(), "banned-token")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Empty token makes no call", func(t *testing.T) {
		_, found, err := NewAuthClient("http://127.0.0.1:0", "anon-key", time.Second).GetUser(context.TODO(), "")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Provider failure", func(t *testing.T) {
		_, found, err := client.GetUser(context.TODO(), "other-token")
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrUnreachable))
		assert.False(t, found)
	})

	t.Run("Cancelled request", func(t *testing.T) {
		c, cancel := context.WithCancel(context.TODO())
		cancel()

		_, found, err := client.GetUser(c, "slow-token")
		assert.ErrorIs(t, err, ErrUnreachable)
		assert.False(t, found)
	})
}
