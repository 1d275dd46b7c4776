package teams

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/hoopstore/lib/mycontext"
	"github.com/MarcGrol/hoopstore/lib/myerrors"
	"github.com/MarcGrol/hoopstore/lib/myhttp"
	"github.com/MarcGrol/hoopstore/lib/mylog"
)

type webService struct {
	logger mylog.Logger
	store  TeamStore
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(logger mylog.Logger, store TeamStore) *webService {
	return &webService{
		logger: logger,
		store:  store,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/teams", s.listTeamsPage()).Methods("GET")
	router.HandleFunc("/api/teams/{teamID}", s.getTeamPage()).Methods("GET")

	return nil
}

func (s *webService) getTeamPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		teamID := mux.Vars(r)["teamID"]

		team, found, err := s.store.Get(c, teamID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewDatabaseError(fmt.Errorf("error fetching team %s: %w", teamID, err)))
			return
		}
		if !found {
			responseWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("team %s not found", teamID)))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, team)
	}
}

func (s *webService) listTeamsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		teams, err := s.store.List(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewDatabaseError(fmt.Errorf("error listing teams: %w", err)))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, teams)
	}
}
