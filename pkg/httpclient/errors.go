package httpclient

import "fmt"

// StatusError reports a non-retryable or exhausted upstream HTTP failure.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
