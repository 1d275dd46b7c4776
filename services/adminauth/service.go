package adminauth

import (
	"context"

	"github.com/MarcGrol/hoopstore/lib/mylog"
)

type service struct {
	logger   mylog.Logger
	resolver SessionResolver
	finder   AdminRecordFinder
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, resolver SessionResolver, finder AdminRecordFinder) *service {
	return &service{
		logger:   logger,
		resolver: resolver,
		finder:   finder,
	}
}

// CheckAdmin decides whether the owner of accessToken is an administrator.
// Failures are folded into the decision; nothing is retried.
func (s *service) CheckAdmin(c context.Context, accessToken string) Decision {
	if accessToken == "" {
		return unauthenticated()
	}

	principal, found, err := s.resolver.ResolvePrincipal(c, accessToken)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error resolving principal: %s", err)
		return unauthenticated()
	}
	if !found || principal.ID == "" {
		return unauthenticated()
	}

	record, found, err := s.finder.FindByPrincipalID(c, principal.ID)
	if err != nil {
		s.logger.Log(c, principal.ID, mylog.SeverityError, "Error looking up admin record for %s: %s", principal.ID, err)
		return Decision{IsAdmin: false, Error: ReasonDatabaseError}
	}
	if !found {
		s.logger.Log(c, principal.ID, mylog.SeverityInfo, "Principal %s is not an admin", principal.ID)
		return Decision{IsAdmin: false, Error: ReasonAdminAccessRequired}
	}

	return Decision{
		IsAdmin:   true,
		AdminRole: record.Role,
		User:      &principal,
	}
}
