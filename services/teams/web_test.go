package teams

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/hoopstore/lib/myhttpclient"
	"github.com/MarcGrol/hoopstore/lib/mylog"
	"github.com/MarcGrol/hoopstore/lib/mypostgres/pgtest"
	"github.com/MarcGrol/hoopstore/lib/mysupabase"
)

func TestTeamLookup(t *testing.T) {

	t.Run("Known team from local index", func(t *testing.T) {
		// setup
		store, err := NewLocalTeamStore()
		require.NoError(t, err)
		router := setup(t, store)

		// when
		response := doGet(t, router, "/api/teams/bos-celtics")

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{
			"id": "bos-celtics",
			"name": "Boston Celtics",
			"city": "Boston",
			"abbreviation": "BOS",
			"conference": "East",
			"division": "Atlantic",
			"logo_url": "/images/teams/bos.svg",
			"primary_color": "#007A33"
		}`, response.Body.String())
	})

	t.Run("List teams from local index", func(t *testing.T) {
		// setup
		store, err := NewLocalTeamStore()
		require.NoError(t, err)
		router := setup(t, store)

		// when
		response := doGet(t, router, "/api/teams")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"id": "atl-hawks"`)
		assert.Contains(t, response.Body.String(), `"id": "sas-spurs"`)
	})

	t.Run("Store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		store := NewMockTeamStore(ctrl)
		router := setup(t, store)

		// given
		store.EXPECT().Get(gomock.Any(), "bos-celtics").Return(Team{}, false, fmt.Errorf("connection reset"))

		// when
		response := doGet(t, router, "/api/teams/bos-celtics")

		// then
		assert.Equal(t, 500, response.Code)
		assert.NotContains(t, response.Body.String(), "connection reset")
	})

	t.Run("List failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		store := NewMockTeamStore(ctrl)
		router := setup(t, store)

		// given
		store.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("connection reset"))

		// when
		response := doGet(t, router, "/api/teams")

		// then
		assert.Equal(t, 500, response.Code)
	})
}

func TestUnknownTeamIsNotFoundForEverySource(t *testing.T) {
	serveMux := http.NewServeMux()
	ts := httptest.NewServer(serveMux)
	defer ts.Close()

	serveMux.HandleFunc("/rest/v1/teams", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"code":"PGRST116","details":"The result contains 0 rows","hint":null,"message":"JSON object requested, multiple (or no) rows returned"}`))
	})

	// teams keyed by uuid reject a slug before any row is matched
	uuidKeyed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"22P02","details":null,"hint":null,"message":"invalid input syntax for type uuid: \"sea-supersonics\""}`))
	}))
	defer uuidKeyed.Close()

	local, err := NewLocalTeamStore()
	require.NoError(t, err)

	stores := map[string]TeamStore{
		"local":              local,
		"supabase":           NewSupabaseTeamStore(mysupabase.NewRestClient(ts.URL, "anon-key", myhttpclient.New(time.Second))),
		"supabase uuid keys": NewSupabaseTeamStore(mysupabase.NewRestClient(uuidKeyed.URL, "anon-key", myhttpclient.New(time.Second))),
		"postgres":           NewPostgresTeamStore(&pgtest.FakeQuerier{}, time.Second),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			router := setup(t, store)

			response := doGet(t, router, "/api/teams/sea-supersonics")

			assert.Equal(t, 404, response.Code)
		})
	}
}

func doGet(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, url, nil)
	assert.NoError(t, err)
	request.Host = "localhost:8888"
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(t *testing.T, store TeamStore) *mux.Router {
	sut := NewWebService(mylog.NewRecordingLogger(), store)
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router
}
