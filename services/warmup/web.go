package warmup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/hoopstore/lib/mycontext"
	"github.com/MarcGrol/hoopstore/lib/myerrors"
	"github.com/MarcGrol/hoopstore/lib/myhttp"
	"github.com/MarcGrol/hoopstore/lib/mylog"
	"github.com/MarcGrol/hoopstore/services/teams"
)

type webService struct {
	logger     mylog.Logger
	dataSource string
	store      teams.TeamStore
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(logger mylog.Logger, dataSource string, store teams.TeamStore) *webService {
	return &webService{
		logger:     logger,
		dataSource: dataSource,
		store:      store,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")

	return nil
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		// first query opens the connection to the data source
		_, err := s.store.List(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(fmt.Errorf("error warming up %s data source: %w", s.dataSource, err)))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Successfully processed warmup request (data source: %s)", s.dataSource),
		})
	}
}
