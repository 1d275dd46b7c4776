package adminauth

import (
	"context"
	"net/url"
	"time"

	"github.com/MarcGrol/hoopstore/lib/mypostgres"
	"github.com/MarcGrol/hoopstore/lib/mysupabase"
)

const (
	adminTable = "admin_users"

	selectAdminSQL = `SELECT user_id::text, role FROM admin_users WHERE user_id = $1 LIMIT 1`
)

type supabaseAdminFinder struct {
	serviceRoleClient *mysupabase.RestClient
}

// NewSupabaseAdminFinder expects a client created with the service-role key.
func NewSupabaseAdminFinder(serviceRoleClient *mysupabase.RestClient) AdminRecordFinder {
	return &supabaseAdminFinder{
		serviceRoleClient: serviceRoleClient,
	}
}

func (f *supabaseAdminFinder) FindByPrincipalID(c context.Context, principalID string) (AdminRecord, bool, error) {
	record := AdminRecord{}
	found, err := f.serviceRoleClient.SelectSingle(c, adminTable, url.Values{
		"select":  {"user_id,role"},
		"user_id": {mysupabase.Eq(principalID)},
	}, &record)
	if err != nil {
		return AdminRecord{}, false, err
	}
	return record, found, nil
}

type postgresAdminFinder struct {
	db      mypostgres.Querier
	timeout time.Duration
}

// NewPostgresAdminFinder expects a connection whose role is exempt from row-level security.
func NewPostgresAdminFinder(db mypostgres.Querier, timeout time.Duration) AdminRecordFinder {
	return &postgresAdminFinder{
		db:      db,
		timeout: timeout,
	}
}

func (f *postgresAdminFinder) FindByPrincipalID(c context.Context, principalID string) (AdminRecord, bool, error) {
	c, cancel := context.WithTimeout(c, f.timeout)
	defer cancel()

	record := AdminRecord{}
	err := f.db.QueryRow(c, selectAdminSQL, principalID).Scan(&record.UserID, &record.Role)
	if err != nil {
		if mypostgres.IsNoRows(err) {
			return AdminRecord{}, false, nil
		}
		return AdminRecord{}, false, mypostgres.Describe(err)
	}
	return record, true, nil
}

type noAdminFinder struct{}

// NewNoAdminFinder is used when no admin table is reachable: nobody is an admin.
func NewNoAdminFinder() AdminRecordFinder {
	return noAdminFinder{}
}

func (noAdminFinder) FindByPrincipalID(c context.Context, principalID string) (AdminRecord, bool, error) {
	return AdminRecord{}, false, nil
}
