package adminauth

import "context"

//go:generate mockgen -source=ports.go -package adminauth -destination ports_mock.go SessionResolver,AdminRecordFinder

// SessionResolver maps an access token onto the principal owning it.
type SessionResolver interface {
	ResolvePrincipal(c context.Context, accessToken string) (Principal, bool, error)
}

// AdminRecordFinder reads admin records with service-level credentials that bypass row-level policies.
// It is the only capability holding those credentials and must not grow other queries.
type AdminRecordFinder interface {
	FindByPrincipalID(c context.Context, principalID string) (AdminRecord, bool, error)
}
