package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/revie-dev/revie/internal/domain"
	"github.com/revie-dev/revie/internal/logger"
)

// Client talks to the review backend. REST calls go through a client with a
// request timeout; the two stream endpoints use a separate client without one,
// relying on context cancellation instead.
type Client struct {
	baseURL      string
	userID       string
	httpClient   *http.Client
	streamClient *http.Client
}

func NewClient(baseURL, userID string) *Client {
	transport := NewLoggingTransport(nil)
	return &Client{
		baseURL:      baseURL,
		userID:       userID,
		httpClient:   &http.Client{Timeout: 30 * time.Second, Transport: transport},
		streamClient: &http.Client{Transport: transport},
	}
}

func (c *Client) UserID() string {
	return c.userID
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", c.userID)
	return req, nil
}

// do executes a REST call and returns the response body. Non-2xx responses
// become an APIError with the HTTP status; failures without a response carry
// status 0.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: 0, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(data)
		if message == "" {
			message = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: message}
	}

	return data, nil
}

func (c *Client) CreateSession(ctx context.Context, pullRequestURL string) (*domain.ReviewSession, error) {
	logger.Log("Backend: Creating review session for %s", pullRequestURL)

	payload := map[string]string{
		"userId":         c.userID,
		"pullRequestUrl": pullRequestURL,
	}
	data, err := c.do(ctx, http.MethodPost, "/reviews", nil, payload)
	if err != nil {
		logger.LogError("CREATE_SESSION", pullRequestURL, err)
		return nil, err
	}

	var session domain.ReviewSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	logger.Log("Backend: Created session %s", session.ID)
	return &session, nil
}

// ImportPR asks the backend to fetch and store the PR's diff. The response
// body is an optional summary; a 2xx with no usable body is still success.
func (c *Client) ImportPR(ctx context.Context, sessionID, pullRequestURL string) (*domain.ImportSummary, error) {
	logger.Log("Backend: Importing PR diff into session %s", sessionID)

	query := url.Values{}
	query.Set("sessionId", sessionID)
	query.Set("pullRequestUrl", pullRequestURL)

	data, err := c.do(ctx, http.MethodPost, "/github/pr/import", query, nil)
	if err != nil {
		logger.LogError("IMPORT_PR", sessionID, err)
		return nil, err
	}

	var summary domain.ImportSummary
	if len(data) == 0 || json.Unmarshal(data, &summary) != nil {
		return nil, nil
	}
	return &summary, nil
}

// ListDiffs is the one-shot REST path, used as the fallback when the diff
// stream fails and when switching to an existing session.
func (c *Client) ListDiffs(ctx context.Context, sessionID string) ([]domain.DiffItem, error) {
	data, err := c.do(ctx, http.MethodGet, "/diffs/"+sessionID, nil, nil)
	if err != nil {
		logger.LogError("LIST_DIFFS", sessionID, err)
		return nil, err
	}

	items, err := decodeDiffList(data)
	if err != nil {
		return nil, err
	}

	logger.Log("Backend: Listed %d diffs for session %s", len(items), sessionID)
	return items, nil
}

// decodeDiffList accepts the three shapes the backend has shipped over time:
// a bare array, a {sessionId, totalFiles, diffs} object, and a
// {success, data} envelope. The sum is resolved here and never leaks inward.
func decodeDiffList(data []byte) ([]domain.DiffItem, error) {
	var bare []domain.DiffItem
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Success *bool             `json:"success"`
		Data    []domain.DiffItem `json:"data"`
		Diffs   []domain.DiffItem `json:"diffs"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode diff list: %w", err)
	}
	if wrapped.Diffs != nil {
		return wrapped.Diffs, nil
	}
	return wrapped.Data, nil
}

func (c *Client) GetFileDiff(ctx context.Context, sessionID, filePath string) (*domain.DiffItem, error) {
	query := url.Values{}
	query.Set("filePath", filePath)

	data, err := c.do(ctx, http.MethodGet, "/diffs/"+sessionID+"/files", query, nil)
	if err != nil {
		logger.LogError("GET_FILE_DIFF", filePath, err)
		return nil, err
	}

	var item domain.DiffItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to decode diff item: %w", err)
	}
	return &item, nil
}

func (c *Client) DiffCount(ctx context.Context, sessionID string) (*domain.DiffCount, error) {
	data, err := c.do(ctx, http.MethodGet, "/diffs/"+sessionID+"/count", nil, nil)
	if err != nil {
		logger.LogError("DIFF_COUNT", sessionID, err)
		return nil, err
	}

	var count domain.DiffCount
	if err := json.Unmarshal(data, &count); err != nil {
		return nil, fmt.Errorf("failed to decode diff count: %w", err)
	}
	return &count, nil
}

func (c *Client) ChatHistory(ctx context.Context, sessionID string) (*domain.ChatHistory, error) {
	data, err := c.do(ctx, http.MethodGet, "/chat/"+sessionID+"/history", nil, nil)
	if err != nil {
		logger.LogError("CHAT_HISTORY", sessionID, err)
		return nil, err
	}

	var history domain.ChatHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to decode chat history: %w", err)
	}

	logger.Log("Backend: Loaded %d history messages for session %s", len(history.Messages), sessionID)
	return &history, nil
}

func (c *Client) DeleteChatHistory(ctx context.Context, sessionID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/chat/"+sessionID+"/history", nil, nil)
	if err != nil {
		logger.LogError("DELETE_CHAT_HISTORY", sessionID, err)
		return err
	}

	logger.Log("Backend: Cleared chat history for session %s", sessionID)
	return nil
}

func (c *Client) ReviewList(ctx context.Context) ([]domain.ReviewSummary, error) {
	data, err := c.do(ctx, http.MethodGet, "/reviews", nil, nil)
	if err != nil {
		logger.LogError("REVIEW_LIST", "", err)
		return nil, err
	}

	var reviews []domain.ReviewSummary
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode review list: %w", err)
	}
	return reviews, nil
}

func (c *Client) CompressionStats(ctx context.Context, sessionID string) (*domain.CompressionStats, error) {
	data, err := c.do(ctx, http.MethodGet, "/reviews/"+sessionID+"/compression-stats", nil, nil)
	if err != nil {
		logger.LogError("COMPRESSION_STATS", sessionID, err)
		return nil, err
	}

	var stats domain.CompressionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode compression stats: %w", err)
	}
	return &stats, nil
}
