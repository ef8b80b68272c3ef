package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/revie-dev/revie/internal/domain"
)

func collectDiffEvents(t *testing.T, stream *DiffStream) (items []domain.DiffItem, streamErr *StreamError, done bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-stream.Events:
			if ev.Item != nil {
				items = append(items, *ev.Item)
				continue
			}
			if ev.Err != nil {
				return items, ev.Err, false
			}
			return items, nil, ev.Done
		case <-timeout:
			t.Fatal("timed out waiting for diff events")
		}
	}
}

func TestStreamDiffsDeliversItemsAndComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/diffs/s1/content/stream" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "text/event-stream" {
			t.Errorf("Accept = %q", got)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		for i := 1; i <= 3; i++ {
			data, _ := json.Marshal(domain.DiffItem{ID: fmt.Sprintf("d%d", i), SessionID: "s1"})
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", data)
			flusher.Flush()
		}
		fmt.Fprint(w, "event: complete\ndata: \n\n")
		flusher.Flush()
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamDiffs(context.Background(), "s1")
	defer stream.Close()

	items, streamErr, done := collectDiffEvents(t, stream)
	if streamErr != nil {
		t.Fatalf("unexpected stream error: %v", streamErr)
	}
	if !done {
		t.Fatal("expected completion event")
	}
	if len(items) != 3 || items[0].ID != "d1" || items[2].ID != "d3" {
		t.Errorf("items = %+v", items)
	}
}

func TestStreamDiffsClosedByPeer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		data, _ := json.Marshal(domain.DiffItem{ID: "d1", SessionID: "s1"})
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
		// Handler returns without the complete event; the connection drops.
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamDiffs(context.Background(), "s1")
	defer stream.Close()

	items, streamErr, _ := collectDiffEvents(t, stream)
	if len(items) != 1 {
		t.Fatalf("expected 1 item before drop, got %d", len(items))
	}
	if streamErr == nil || streamErr.Kind != StreamClosedByPeer {
		t.Errorf("expected closed-by-peer error, got %v", streamErr)
	}
}

func TestStreamDiffsFailedToEstablish(t *testing.T) {
	tests := []struct {
		name  string
		setup func() (baseURL string, teardown func())
	}{
		{
			name: "server rejects with 500",
			setup: func() (string, func()) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, "boom", http.StatusInternalServerError)
				}))
				return server.URL, server.Close
			},
		},
		{
			name: "server unreachable",
			setup: func() (string, func()) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
				server.Close()
				return server.URL, func() {}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL, teardown := tt.setup()
			defer teardown()

			client := NewClient(baseURL, "user-1")
			stream := client.StreamDiffs(context.Background(), "s1")
			defer stream.Close()

			_, streamErr, _ := collectDiffEvents(t, stream)
			if streamErr == nil || streamErr.Kind != StreamFailedToEstablish {
				t.Errorf("expected failed-to-establish error, got %v", streamErr)
			}
		})
	}
}

func TestStreamDiffsParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {not json\n\n")
	}))
	defer server.Close()

	client := NewClient(server.URL, "user-1")
	stream := client.StreamDiffs(context.Background(), "s1")
	defer stream.Close()

	_, streamErr, _ := collectDiffEvents(t, stream)
	if streamErr == nil || streamErr.Kind != StreamParseFailure {
		t.Errorf("expected parse-failure error, got %v", streamErr)
	}
}

func TestStreamDiffsCloseIsIdempotentAndStopsDelivery(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		data, _ := json.Marshal(domain.DiffItem{ID: "d1", SessionID: "s1"})
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, "user-1")
	stream := client.StreamDiffs(context.Background(), "s1")

	select {
	case ev := <-stream.Events:
		if ev.Item == nil || ev.Item.ID != "d1" {
			t.Fatalf("expected first item, got %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first item")
	}

	stream.Close()
	stream.Close()

	select {
	case ev, ok := <-stream.Events:
		if ok {
			t.Errorf("received event after Close: %+v", ev)
		}
	case <-time.After(200 * time.Millisecond):
		// No further delivery: the reader goroutine dropped its events.
	}
}
