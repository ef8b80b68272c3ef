package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func collectChatReply(t *testing.T, stream *ChatStream) string {
	t.Helper()
	var content string
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-stream.Events:
			if ev.Done {
				return content
			}
			content += ev.Chunk
		case <-timeout:
			t.Fatal("timed out waiting for chat events")
		}
	}
}

func TestStreamChatAccumulatesChunksInOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat/s1/stream" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if payload["message"] != "review this" {
			t.Errorf("message = %q", payload["message"])
		}

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		for _, chunk := range []string{"He", "llo", " wor", "ld"} {
			fmt.Fprintf(w, "data: %s\n", chunk)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n")
		flusher.Flush()
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamChat(context.Background(), "s1", "review this")
	defer stream.Close()

	if got := collectChatReply(t, stream); got != "Hello world" {
		t.Errorf("reply = %q, want %q", got, "Hello world")
	}
}

func TestStreamChatCompleteEventEndsStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		fmt.Fprint(w, "data: partial\n")
		fmt.Fprint(w, "event: complete\n")
		flusher.Flush()
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamChat(context.Background(), "s1", "hi")
	defer stream.Close()

	if got := collectChatReply(t, stream); got != "partial" {
		t.Errorf("reply = %q, want %q", got, "partial")
	}
}

func TestStreamChatDisconnectTreatedAsCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		fmt.Fprint(w, "data: partial answer\n")
		flusher.Flush()
		// Connection drops without [DONE] or a complete event.
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamChat(context.Background(), "s1", "hi")
	defer stream.Close()

	if got := collectChatReply(t, stream); got != "partial answer" {
		t.Errorf("reply = %q, want %q", got, "partial answer")
	}
}

func TestStreamChatErrorResponseTreatedAsCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamChat(context.Background(), "s1", "hi")
	defer stream.Close()

	if got := collectChatReply(t, stream); got != "" {
		t.Errorf("reply = %q, want empty", got)
	}
}

func TestStreamChatPreservesChunkWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		// Token begins with a space: "data: " + " tail" on the wire.
		fmt.Fprint(w, "data: head\n")
		fmt.Fprint(w, "data:  tail\n")
		fmt.Fprint(w, "data: [DONE]\n")
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamChat(context.Background(), "s1", "hi")
	defer stream.Close()

	if got := collectChatReply(t, stream); got != "head tail" {
		t.Errorf("reply = %q, want %q", got, "head tail")
	}
}
