package apihubs

import (
	"fmt"
	"net/http"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// APIError represents a failed apihubs response, either a non-2xx HTTP
// status or a non-zero application code in the response body.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("apihubs: API error code %d: %s (URL: %s)", e.Code, e.Message, e.URL)
	}
	return fmt.Sprintf("apihubs: HTTP %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Is reports an HTTP 429 response as domain.ErrRateLimited.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrRateLimited && e.StatusCode == http.StatusTooManyRequests
}
