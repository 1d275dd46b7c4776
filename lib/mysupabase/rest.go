package mysupabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MarcGrol/hoopstore/lib/myhttpclient"
)

const (
	// NoRowsCode is the PostgREST code for a single-object request that matched zero rows.
	NoRowsCode = "PGRST116"
	// InvalidTextCode is the Postgres code for a filter value that cannot be cast to the column type.
	InvalidTextCode = "22P02"

	singleObjectMediaType = "application/vnd.pgrst.object+json"
)

// ErrUnreachable is wrapped into every error caused by the transport rather than by PostgREST.
var ErrUnreachable = errors.New("supabase unreachable")

// RestError is the error body returned by PostgREST.
type RestError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e RestError) Error() string {
	return fmt.Sprintf("postgrest error %s (http %d): %s", e.Code, e.HTTPStatus, e.Message)
}

// IsNoRows tells whether err is the PostgREST "zero rows" signal.
func IsNoRows(err error) bool {
	var restErr RestError
	return errors.As(err, &restErr) && restErr.Code == NoRowsCode
}

// IsInvalidFilterValue tells whether err reports a filter value the column type cannot hold,
// such as a slug compared with a uuid column.
func IsInvalidFilterValue(err error) bool {
	var restErr RestError
	return errors.As(err, &restErr) && restErr.Code == InvalidTextCode
}

// RestClient queries tables through the Supabase REST (PostgREST) endpoint using one api key.
type RestClient struct {
	baseURL string
	apiKey  string
	sender  myhttpclient.HTTPSender
}

func NewRestClient(baseURL string, apiKey string, sender myhttpclient.HTTPSender) *RestClient {
	return &RestClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		sender:  sender,
	}
}

// SelectSingle fetches exactly one row into dest. A zero-row result, or a key that cannot exist
// in the column, is reported as found=false, not as an error.
func (rc *RestClient) SelectSingle(c context.Context, table string, query url.Values, dest any) (bool, error) {
	err := rc.get(c, table, query, singleObjectMediaType, dest)
	if err != nil {
		if IsNoRows(err) || IsInvalidFilterValue(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Select fetches all matching rows into dest, which must point to a slice.
func (rc *RestClient) Select(c context.Context, table string, query url.Values, dest any) error {
	return rc.get(c, table, query, "application/json", dest)
}

func (rc *RestClient) get(c context.Context, table string, query url.Values, accept string, dest any) error {
	u := fmt.Sprintf("%s/rest/v1/%s?%s", rc.baseURL, url.PathEscape(table), query.Encode())

	status, body, err := rc.sender.Send(c, http.MethodGet, u, http.Header{
		"Accept":        {accept},
		"Apikey":        {rc.apiKey},
		"Authorization": {"Bearer " + rc.apiKey},
	}, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	if status != http.StatusOK {
		restErr := RestError{}
		if jsonErr := json.Unmarshal(body, &restErr); jsonErr != nil || restErr.Code == "" {
			restErr.Message = strings.TrimSpace(string(body))
		}
		restErr.HTTPStatus = status
		return restErr
	}

	err = json.Unmarshal(body, dest)
	if err != nil {
		return fmt.Errorf("error parsing %s response: %s", table, err)
	}

	return nil
}

// Eq builds a PostgREST equality filter value.
func Eq(value string) string {
	return "eq." + value
}
