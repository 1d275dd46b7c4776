package myhttpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPClient(t *testing.T) {
	t.Run("Send with headers", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/v1/teams", r.URL.Path)
			assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "my-key", r.Header.Get("apikey"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, `{"a":1}`, string(body))

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer ts.Close()

		status, body, err := New(time.Second).Send(context.TODO(), http.MethodPost, ts.URL+"/rest/v1/teams", http.Header{
			"Accept": []string{"application/vnd.pgrst.object+json"},
			"Apikey": []string{"my-key"},
		}, []byte(`{"a":1}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, `{"ok":true}`, string(body))
	})

	t.Run("Timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer ts.Close()

		_, _, err := New(20*time.Millisecond).Send(context.TODO(), http.MethodGet, ts.URL, nil, nil)

		assert.Error(t, err)
	})
}
