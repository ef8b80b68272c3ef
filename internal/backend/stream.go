package backend

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/revie-dev/revie/internal/domain"
	"github.com/revie-dev/revie/internal/logger"
)

// DiffEvent is one delivery from the diff stream: exactly one of Item, Err or
// Done is set.
type DiffEvent struct {
	Item *domain.DiffItem
	Err  *StreamError
	Done bool
}

// DiffStream is a handle to one server-push connection. Close is idempotent,
// cancels the underlying request, and stops further delivery; events sent
// after Close are dropped rather than blocking the reader goroutine.
type DiffStream struct {
	Events chan DiffEvent

	cancel    context.CancelFunc
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *DiffStream) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.closed)
	})
}

// Closed reports teardown; receivers select on it so a pending read does not
// block forever once the handle is closed.
func (s *DiffStream) Closed() <-chan struct{} {
	return s.closed
}

func (s *DiffStream) emit(ev DiffEvent) bool {
	select {
	case <-s.closed:
		return false
	case s.Events <- ev:
		return true
	}
}

// StreamDiffs opens the SSE feed of DiffItems for a session. Each message
// event carries one JSON-encoded item; a named "complete" event ends the
// stream. Failures are classified so the caller can decide on the REST
// fallback.
func (c *Client) StreamDiffs(ctx context.Context, sessionID string) *DiffStream {
	ctx, cancel := context.WithCancel(ctx)
	stream := &DiffStream{
		Events: make(chan DiffEvent),
		cancel: cancel,
		closed: make(chan struct{}),
	}

	go c.readDiffStream(ctx, sessionID, stream)
	return stream
}

func (c *Client) readDiffStream(ctx context.Context, sessionID string, stream *DiffStream) {
	req, err := c.newRequest(ctx, http.MethodGet, "/diffs/"+sessionID+"/content/stream", nil, nil)
	if err != nil {
		stream.emit(DiffEvent{Err: &StreamError{Kind: StreamFailedToEstablish, Err: err}})
		return
	}
	req.Header.Set("Accept", "text/event-stream")

	logger.LogStream("diffs", "opening for session "+sessionID)

	resp, err := c.streamClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		stream.emit(DiffEvent{Err: &StreamError{Kind: StreamFailedToEstablish, Err: err}})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		stream.emit(DiffEvent{Err: &StreamError{
			Kind: StreamFailedToEstablish,
			Err:  &APIError{Status: resp.StatusCode, Message: string(body)},
		}})
		return
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	eventName := ""
	var dataBuf strings.Builder

	dispatch := func() bool {
		defer func() {
			eventName = ""
			dataBuf.Reset()
		}()

		if eventName == "complete" {
			logger.LogStream("diffs", "complete for session "+sessionID)
			stream.emit(DiffEvent{Done: true})
			return false
		}
		if dataBuf.Len() == 0 {
			return true
		}

		var item domain.DiffItem
		if err := json.Unmarshal([]byte(dataBuf.String()), &item); err != nil {
			logger.LogError("DIFF_STREAM_DECODE", sessionID, err)
			stream.emit(DiffEvent{Err: &StreamError{Kind: StreamParseFailure, Err: err}})
			return false
		}
		return stream.emit(DiffEvent{Item: &item})
	}

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if !dispatch() {
				return
			}
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if dataBuf.Len() > 0 {
				dataBuf.WriteByte('\n')
			}
			dataBuf.WriteString(trimSSEData(line))
		}
	}

	if ctx.Err() != nil {
		return
	}

	// A final record without a trailing blank line still counts.
	if !dispatch() {
		return
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		stream.emit(DiffEvent{Err: &StreamError{Kind: StreamUnknown, Err: err}})
		return
	}

	// The server dropped the connection without sending the complete event.
	stream.emit(DiffEvent{Err: &StreamError{Kind: StreamClosedByPeer}})
}

// trimSSEData strips the "data:" field name and the single optional space
// that follows it, preserving any further leading whitespace in the payload.
func trimSSEData(line string) string {
	rest := strings.TrimPrefix(line, "data:")
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return rest
}
