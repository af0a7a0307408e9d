package sources

import (
	"errors"
	"fmt"
	"net/http"

	"mksports/aggregator/internal/client"
)

// Failure taxonomy caught at the adapter boundary. None of these escape
// the orchestrator.
var (
	// ErrSourceUnavailable covers network failures, timeouts and non-2xx
	// upstream responses.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrParseFailure covers an expected element or field that is absent
	// or malformed in an otherwise successful response.
	ErrParseFailure = errors.New("parse failure")

	// ErrNoDataForSeason means the source answered but is structurally
	// empty, e.g. off-season.
	ErrNoDataForSeason = errors.New("no data for season")
)

// classifyFetch maps a fetch-client error onto the taxonomy. Decode
// failures mean the source answered with something we could not parse; a
// 404 means the source is up but has nothing published for this query
// (typically off-season); everything else means we never got a usable
// response.
func classifyFetch(err error) error {
	var de *client.DecodeError
	if errors.As(err, &de) {
		return fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	var se *client.StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrNoDataForSeason, err)
	}
	return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
}

func parseFailure(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParseFailure, fmt.Sprintf(format, args...))
}
