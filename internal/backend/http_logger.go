package backend

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/revie-dev/revie/internal/logger"
)

// LoggingTransport wraps an http.RoundTripper to log requests and responses.
// Streaming response bodies (unknown content length) are never buffered.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func NewLoggingTransport(transport http.RoundTripper) *LoggingTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &LoggingTransport{
		Transport: transport,
	}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	t.logRequest(req)

	resp, err := t.Transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.LogError("HTTP_REQUEST", fmt.Sprintf("%s %s", req.Method, req.URL.String()), err)
		return nil, err
	}

	t.logResponse(req, resp, duration)

	return resp, nil
}

func (t *LoggingTransport) logRequest(req *http.Request) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s %s", req.Method, req.URL.String()))

	for name, values := range req.Header {
		if isSensitiveHeader(name) {
			buf.WriteString(fmt.Sprintf(" %s=[REDACTED]", name))
		} else {
			buf.WriteString(fmt.Sprintf(" %s=%s", name, strings.Join(values, ",")))
		}
	}

	if req.Body != nil && req.ContentLength > 0 && req.ContentLength < 10000 {
		bodyBytes, err := io.ReadAll(req.Body)
		if err == nil {
			// Restore the body for the actual request
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			buf.WriteString(fmt.Sprintf(" body=%s", string(bodyBytes)))
		}
	}

	logger.Log("HTTP request: %s", buf.String())
}

func (t *LoggingTransport) logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	// Chunked/streaming bodies report ContentLength -1 and must be left for
	// the caller to consume incrementally.
	if resp.Body != nil && resp.ContentLength > 0 && resp.ContentLength < 10000 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err == nil {
			resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			logger.Log("HTTP response: %s %s - %s (%v) body=%s",
				req.Method, req.URL.Path, resp.Status, duration, string(bodyBytes))
			return
		}
	}

	logger.Log("HTTP response: %s %s - %s (%v)", req.Method, req.URL.Path, resp.Status, duration)
}

func isSensitiveHeader(name string) bool {
	lowerName := strings.ToLower(name)
	sensitiveHeaders := []string{
		"authorization",
		"x-api-key",
		"api-key",
		"x-auth-token",
		"cookie",
		"set-cookie",
	}

	for _, sensitive := range sensitiveHeaders {
		if lowerName == sensitive {
			return true
		}
	}

	return false
}
