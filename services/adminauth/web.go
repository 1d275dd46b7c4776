package adminauth

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/hoopstore/lib/mycontext"
	"github.com/MarcGrol/hoopstore/lib/myhttp"
	"github.com/MarcGrol/hoopstore/lib/mylog"
	"github.com/MarcGrol/hoopstore/lib/mysupabase"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(logger mylog.Logger, resolver SessionResolver, finder AdminRecordFinder) *webService {
	return &webService{
		logger:  logger,
		service: newService(logger, resolver, finder),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/admin/status", s.adminStatusPage()).Methods("GET")

	return nil
}

func (s *webService) adminStatusPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		decision := s.service.CheckAdmin(c, mysupabase.AccessTokenFromRequest(r))

		responseWriter.Write(c, w, httpStatus(decision), decision)
	}
}

func httpStatus(d Decision) int {
	switch d.Error {
	case ReasonNone:
		return http.StatusOK
	case ReasonUnauthenticated:
		return http.StatusUnauthorized
	case ReasonAdminAccessRequired:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
