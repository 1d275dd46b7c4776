package teams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/hoopstore/lib/myhttpclient"
	"github.com/MarcGrol/hoopstore/lib/mypostgres/pgtest"
	"github.com/MarcGrol/hoopstore/lib/mysupabase"
)

var (
	lakers = Team{ID: "lal-lakers", Name: "Los Angeles Lakers", City: "Los Angeles", Abbreviation: "LAL", Conference: "West", Division: "Pacific", LogoURL: "/images/teams/lal.svg", PrimaryColor: "#552583"}
	heat   = Team{ID: "mia-heat", Name: "Miami Heat", City: "Miami", Abbreviation: "MIA", Conference: "East", Division: "Southeast", LogoURL: "/images/teams/mia.svg", PrimaryColor: "#98002E"}
)

func teamRow(t Team) []any {
	return []any{t.ID, t.Name, t.City, t.Abbreviation, t.Conference, t.Division, t.LogoURL, t.PrimaryColor}
}

func TestLocalTeamStore(t *testing.T) {
	c := context.TODO()
	store, err := NewLocalTeamStore()
	require.NoError(t, err)

	t.Run("Get found", func(t *testing.T) {
		team, found, err := store.Get(c, "lal-lakers")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, lakers, team)
	})

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := store.Get(c, "sea-supersonics")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("List sorted by name", func(t *testing.T) {
		all, err := store.List(c)
		assert.NoError(t, err)
		assert.Len(t, all, 10)
		assert.Equal(t, "Atlanta Hawks", all[0].Name)
		assert.Equal(t, "San Antonio Spurs", all[9].Name)
	})

	t.Run("Invalid index", func(t *testing.T) {
		_, err := newLocalTeamStore([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestPostgresTeamStore(t *testing.T) {
	c := context.TODO()

	t.Run("Get found", func(t *testing.T) {
		db := &pgtest.FakeQuerier{Rows: [][]any{teamRow(lakers)}}

		team, found, err := NewPostgresTeamStore(db, time.Second).Get(c, "lal-lakers")

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, lakers, team)
		assert.Equal(t, []any{"lal-lakers"}, db.Args[0])
		assert.True(t, db.HadDeadline)
	})

	t.Run("List", func(t *testing.T) {
		db := &pgtest.FakeQuerier{Rows: [][]any{teamRow(lakers), teamRow(heat)}}

		all, err := NewPostgresTeamStore(db, time.Second).List(c)

		assert.NoError(t, err)
		assert.Equal(t, []Team{lakers, heat}, all)
	})

	t.Run("List failure", func(t *testing.T) {
		db := &pgtest.FakeQuerier{Err: context.DeadlineExceeded}

		_, err := NewPostgresTeamStore(db, time.Second).List(c)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSupabaseTeamStore(t *testing.T) {
	serveMux := http.NewServeMux()
	ts := httptest.NewServer(serveMux)
	defer ts.Close()

	serveMux.HandleFunc("/rest/v1/teams", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, teamColumns, r.URL.Query().Get("select"))

		if r.URL.Query().Get("id") == "eq.mia-heat" {
			_, _ = w.Write([]byte(`{"id":"mia-heat","name":"Miami Heat","city":"Miami","abbreviation":"MIA","conference":"East","division":"Southeast","logo_url":"/images/teams/mia.svg","primary_color":"#98002E"}`))
			return
		}
		assert.Equal(t, "name.asc", r.URL.Query().Get("order"))
		_, _ = w.Write([]byte(`[{"id":"mia-heat","name":"Miami Heat","city":"Miami","abbreviation":"MIA","conference":"East","division":"Southeast","logo_url":"/images/teams/mia.svg","primary_color":"#98002E"}]`))
	})

	store := NewSupabaseTeamStore(mysupabase.NewRestClient(ts.URL, "anon-key", myhttpclient.New(time.Second)))

	team, found, err := store.Get(context.TODO(), "mia-heat")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, heat, team)

	all, err := store.List(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, []Team{heat}, all)
}

func TestLocalTeamStoreRejectsDuplicateIDs(t *testing.T) {
	_, err := newLocalTeamStore([]byte(`[{"id":"mia-heat","name":"Miami Heat"},{"id":"mia-heat","name":"Miami Heat"}]`))
	assert.Error(t, err)
}
