package mysupabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/hoopstore/lib/myhttpclient"
)

type row struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func runRestServer(t *testing.T, status int, body string) (*httptest.Server, func()) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)

	mux.HandleFunc("/rest/v1/admin_users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "eq.u-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "user_id,role", r.URL.Query().Get("select"))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	return ts, func() {
		defer ts.Close()
	}
}

func query() url.Values {
	return url.Values{
		"select":  {"user_id,role"},
		"user_id": {Eq("u-1")},
	}
}

func TestRestClient(t *testing.T) {
	t.Run("Select single found", func(t *testing.T) {
		ts, cleanup := runRestServer(t, http.StatusOK, `{"user_id":"u-1","role":"owner"}`)
		defer cleanup()

		got := row{}
		found, err := NewRestClient(ts.URL, "service-key", myhttpclient.New(time.Second)).SelectSingle(context.TODO(), "admin_users", query(), &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, row{UserID: "u-1", Role: "owner"}, got)
	})

	t.Run("Select single zero rows", func(t *testing.T) {
		ts, cleanup := runRestServer(t, http.StatusNotAcceptable, `{"code":"PGRST116","details":"The result contains 0 rows","hint":null,"message":"JSON object requested, multiple (or no) rows returned"}`)
		defer cleanup()

		got := row{}
		found, err := NewRestClient(ts.URL, "service-key", myhttpclient.New(time.Second)).SelectSingle(context.TODO(), "admin_users", query(), &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Select single filter value of wrong type", func(t *testing.T) {
		ts, cleanup := runRestServer(t, http.StatusBadRequest, `{"code":"22P02","details":null,"hint":null,"message":"invalid input syntax for type uuid: \"u-1\""}`)
		defer cleanup()

		got := row{}
		found, err := NewRestClient(ts.URL, "service-key", myhttpclient.New(time.Second)).SelectSingle(context.TODO(), "admin_users", query(), &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Select single other failure", func(t *testing.T) {
		ts, cleanup := runRestServer(t, http.StatusNotFound, `{"code":"42P01","details":null,"hint":null,"message":"relation \"public.admin_users\" does not exist"}`)
		defer cleanup()

		got := row{}
		found, err := NewRestClient(ts.URL, "service-key", myhttpclient.New(time.Second)).SelectSingle(context.TODO(), "admin_users", query(), &got)

		assert.False(t, found)
		assert.Error(t, err)
		assert.False(t, IsNoRows(err))
		restErr, ok := err.(RestError)
		require.True(t, ok)
		assert.Equal(t, "42P01", restErr.Code)
		assert.Equal(t, http.StatusNotFound, restErr.HTTPStatus)
	})

	t.Run("Select single non json failure", func(t *testing.T) {
		ts, cleanup := runRestServer(t, http.StatusBadGateway, `bad gateway`)
		defer cleanup()

		got := row{}
		_, err := NewRestClient(ts.URL, "service-key", myhttpclient.New(time.Second)).SelectSingle(context.TODO(), "admin_users", query(), &got)

		assert.EqualError(t, err, "postgrest error  (http 502): bad gateway")
	})

	t.Run("Select list", func(t *testing.T) {
		ts, cleanup := runRestServer(t, http.StatusOK, `[{"user_id":"u-1","role":"owner"},{"user_id":"u-1","role":"editor"}]`)
		defer cleanup()

		got := []row{}
		err := NewRestClient(ts.URL+"/", "service-key", myhttpclient.New(time.Second)).Select(context.TODO(), "admin_users", query(), &got)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Unreachable", func(t *testing.T) {
		ts, cleanup := runRestServer(t, http.StatusOK, `{}`)
		cleanup()

		got := row{}
		_, err := NewRestClient(ts.URL, "service-key", myhttpclient.New(time.Second)).SelectSingle(context.TODO(), "admin_users", query(), &got)

		assert.ErrorIs(t, err, ErrUnreachable)
	})
}
