package teams

import "context"

// TeamStore is implemented once per data source; exactly one is chosen at startup.
//
//go:generate mockgen -source=store.go -package teams -destination store_mock.go TeamStore
type TeamStore interface {
	Get(c context.Context, teamID string) (Team, bool, error)
	List(c context.Context) ([]Team, error)
}
