package teams

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/hoopstore/lib/mystore"
)

//go:embed data/teams.json
var localTeamsJSON []byte

// NewLocalTeamStore serves the index embedded in the binary; used when no live data source is configured.
func NewLocalTeamStore() (TeamStore, error) {
	return newLocalTeamStore(localTeamsJSON)
}

func newLocalTeamStore(data []byte) (*mystore.Index[Team], error) {
	teams := []Team{}
	err := json.Unmarshal(data, &teams)
	if err != nil {
		return nil, fmt.Errorf("error parsing local team index: %s", err)
	}

	index, err := mystore.NewIndex(teams,
		func(t Team) string { return t.ID },
		func(a, b Team) bool { return a.Name < b.Name })
	if err != nil {
		return nil, fmt.Errorf("error indexing local teams: %s", err)
	}
	return index, nil
}
