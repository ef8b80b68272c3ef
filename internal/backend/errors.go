package backend

import "fmt"

// APIError carries the HTTP status and body text of a failed call.
// Network-level failures (no response at all) use status 0.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

type StreamErrorKind string

const (
	StreamClosedByPeer      StreamErrorKind = "closed by peer"
	StreamFailedToEstablish StreamErrorKind = "failed to establish"
	StreamParseFailure      StreamErrorKind = "parse failure"
	StreamUnknown           StreamErrorKind = "unknown"
)

// StreamError classifies a failed server-push connection by transport state.
type StreamError struct {
	Kind StreamErrorKind
	Err  error
}

func (e *StreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stream %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("stream %s", e.Kind)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
