package backend

import (
	"bufio"
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/revie-dev/revie/internal/logger"
)

// ChatEvent is one delivery from the chat token stream: a text chunk, or the
// completion marker.
type ChatEvent struct {
	Chunk string
	Done  bool
}

// ChatStream is a handle to one in-flight chat reply. Transport failures are
// deliberately reported as completion: the partial assistant output is still
// useful, and a dropped connection is not worth alarming the user over.
type ChatStream struct {
	Events chan ChatEvent

	cancel    context.CancelFunc
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *ChatStream) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.closed)
	})
}

func (s *ChatStream) Closed() <-chan struct{} {
	return s.closed
}

func (s *ChatStream) emit(ev ChatEvent) bool {
	select {
	case <-s.closed:
		return false
	case s.Events <- ev:
		return true
	}
}

// StreamChat sends one user message and reads the assistant reply token by
// token. The body is newline-framed: "data: <token>" lines repeat until
// either "data: [DONE]" or an "event: complete" record.
func (c *Client) StreamChat(ctx context.Context, sessionID, message string) *ChatStream {
	ctx, cancel := context.WithCancel(ctx)
	stream := &ChatStream{
		Events: make(chan ChatEvent),
		cancel: cancel,
		closed: make(chan struct{}),
	}

	go c.readChatStream(ctx, sessionID, message, stream)
	return stream
}

func (c *Client) readChatStream(ctx context.Context, sessionID, message string, stream *ChatStream) {
	// Every exit path completes the stream so the caller is never left
	// waiting on a reply that will not come.
	defer stream.emit(ChatEvent{Done: true})

	payload := map[string]string{"message": message}
	req, err := c.newRequest(ctx, http.MethodPost, "/chat/"+sessionID+"/stream", nil, payload)
	if err != nil {
		logger.LogError("CHAT_STREAM", sessionID, err)
		return
	}
	req.Header.Set("Accept", "text/event-stream")

	logger.LogStream("chat", "opening for session "+sessionID)

	resp, err := c.streamClient.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			logger.LogError("CHAT_STREAM", sessionID, err)
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.LogError("CHAT_STREAM", sessionID, &APIError{Status: resp.StatusCode, Message: resp.Status})
		return
	}

	// Scanner buffers partial records spanning read boundaries; a record is
	// only parsed once a full line is available.
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "data:"):
			chunk := trimSSEData(line)
			if chunk == "[DONE]" {
				logger.LogStream("chat", "done sentinel for session "+sessionID)
				return
			}
			if !stream.emit(ChatEvent{Chunk: chunk}) {
				return
			}
		case strings.HasPrefix(line, "event:"):
			if strings.TrimSpace(strings.TrimPrefix(line, "event:")) == "complete" {
				logger.LogStream("chat", "complete event for session "+sessionID)
				return
			}
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		logger.LogError("CHAT_STREAM_READ", sessionID, err)
	}
}
