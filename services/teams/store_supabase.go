package teams

import (
	"context"
	"net/url"

	"github.com/MarcGrol/hoopstore/lib/mysupabase"
)

const (
	teamTable   = "teams"
	teamColumns = "id,name,city,abbreviation,conference,division,logo_url,primary_color"
)

type supabaseTeamStore struct {
	client *mysupabase.RestClient
}

// NewSupabaseTeamStore reads the public teams table; the anon key is sufficient.
func NewSupabaseTeamStore(client *mysupabase.RestClient) TeamStore {
	return &supabaseTeamStore{
		client: client,
	}
}

func (s *supabaseTeamStore) Get(c context.Context, teamID string) (Team, bool, error) {
	team := Team{}
	found, err := s.client.SelectSingle(c, teamTable, url.Values{
		"select": {teamColumns},
		"id":     {mysupabase.Eq(teamID)},
	}, &team)
	if err != nil {
		return Team{}, false, err
	}
	return team, found, nil
}

func (s *supabaseTeamStore) List(c context.Context) ([]Team, error) {
	teams := []Team{}
	err := s.client.Select(c, teamTable, url.Values{
		"select": {teamColumns},
		"order":  {"name.asc"},
	}, &teams)
	if err != nil {
		return nil, err
	}
	return teams, nil
}
