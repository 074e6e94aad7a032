package llm

import (
	"errors"
	"fmt"
)

var (
	// the API answered 200 with a blank body
	ErrEmptyResponse = errors.New("empty response from model API")

	// the API answered 200 with a body that is not the expected JSON
	ErrInvalidResponse = errors.New("invalid response from model API")
)

// returned for every non-200 answer from the model API
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// returns the upstream status code if err carries one
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}

	return 0, false
}
