package checkoutstripe

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/hoopstore/lib/mycontext"
	"github.com/MarcGrol/hoopstore/lib/myerrors"
	"github.com/MarcGrol/hoopstore/lib/myhttp"
	"github.com/MarcGrol/hoopstore/lib/mylog"
)

type webService struct {
	logger  mylog.Logger
	service *service
	decoder *form.Decoder
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(logger mylog.Logger, payer Payer) *webService {
	return &webService{
		logger:  logger,
		service: newService(logger, payer),
		decoder: form.NewDecoder(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/checkout-sessions/{sessionID}", s.lookupSessionPage()).Methods("GET")
	router.HandleFunc("/api/checkout-sessions/", s.lookupSessionPage()).Methods("GET")
	router.HandleFunc("/api/verify-session", s.verifySessionPage()).Methods("GET")

	return nil
}

func (s *webService) lookupSessionPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		sessionID := mux.Vars(r)["sessionID"]

		resp, err := s.service.lookupSession(c, sessionID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) verifySessionPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query := verifySessionQuery{}
		err := s.decoder.Decode(&query, r.URL.Query())
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing query: %s", err)))
			return
		}

		resp, err := s.service.verifySession(c, query.SessionID)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}
