package teams

import (
	"context"
	"time"

	"github.com/MarcGrol/hoopstore/lib/mypostgres"
)

const (
	selectTeamSQL = `SELECT id::text, name, city, abbreviation, conference, division, coalesce(logo_url, ''), coalesce(primary_color, '')
FROM teams WHERE id::text = $1`
	listTeamsSQL = `SELECT id::text, name, city, abbreviation, conference, division, coalesce(logo_url, ''), coalesce(primary_color, '')
FROM teams ORDER BY name`
)

type postgresTeamStore struct {
	db      mypostgres.Querier
	timeout time.Duration
}

func NewPostgresTeamStore(db mypostgres.Querier, timeout time.Duration) TeamStore {
	return &postgresTeamStore{
		db:      db,
		timeout: timeout,
	}
}

func (s *postgresTeamStore) Get(c context.Context, teamID string) (Team, bool, error) {
	c, cancel := context.WithTimeout(c, s.timeout)
	defer cancel()

	t := Team{}
	err := s.db.QueryRow(c, selectTeamSQL, teamID).Scan(&t.ID, &t.Name, &t.City, &t.Abbreviation, &t.Conference, &t.Division, &t.LogoURL, &t.PrimaryColor)
	if err != nil {
		if mypostgres.IsNoRows(err) {
			return Team{}, false, nil
		}
		return Team{}, false, mypostgres.Describe(err)
	}
	return t, true, nil
}

func (s *postgresTeamStore) List(c context.Context) ([]Team, error) {
	c, cancel := context.WithTimeout(c, s.timeout)
	defer cancel()

	rows, err := s.db.Query(c, listTeamsSQL)
	if err != nil {
		return nil, mypostgres.Describe(err)
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		t := Team{}
		err = rows.Scan(&t.ID, &t.Name, &t.City, &t.Abbreviation, &t.Conference, &t.Division, &t.LogoURL, &t.PrimaryColor)
		if err != nil {
			return nil, mypostgres.Describe(err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mypostgres.Describe(err)
	}

	return teams, nil
}
