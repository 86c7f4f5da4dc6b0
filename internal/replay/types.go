package replay

import (
	"errors"
	"net/http"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

var (
	// ErrNotFound is returned when the replay does not exist upstream.
	ErrNotFound = errors.New("replay not found")
	// ErrUnavailable is returned when the replay service could not answer.
	ErrUnavailable = errors.New("replay service unavailable")
)

// APIClient is an HTTP client for the replay service that implements Source.
type APIClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	group      singleflight.Group
	BaseURL    string
}

// replayResponse is the replay service payload.
type replayResponse struct {
	Code     string  `json:"code"`
	Player   string  `json:"player"`
	Hill     string  `json:"hill"`
	Date     string  `json:"date"`
	Distance float64 `json:"distance"`
	Points   float64 `json:"points"`
}
