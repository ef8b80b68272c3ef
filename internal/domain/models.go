package domain

type Role string

const (
	RoleUser      Role = "USER"
	RoleAssistant Role = "ASSISTANT"
)

// ReviewSession is one PR-review conversation owned by the backend.
// Immutable after creation except Status/UpdatedAt, which the backend advances.
type ReviewSession struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	PullRequestURL string `json:"pullRequestUrl"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// DiffItem is one file's change within a session. IDs are unique within a
// session; the UI deduplicates on every insertion because the streamed and
// bulk-fetched paths can deliver the same item twice.
type DiffItem struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"sessionId"`
	FilePath      string    `json:"filePath"`
	FileName      string    `json:"fileName"`
	FileExtension string    `json:"fileExtension"`
	DirectoryPath string    `json:"directoryPath"`
	DiffContent   string    `json:"diffContent"`
	ContentHash   string    `json:"contentHash"`
	Embedding     []float64 `json:"embedding,omitempty"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
}

type Message struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ChatHistory struct {
	SessionID string    `json:"sessionId"`
	Messages  []Message `json:"messages"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// ReviewSummary is the session-picker projection of a session. Read-only,
// refreshed by re-fetch, never merged incrementally.
type ReviewSummary struct {
	SessionID      string `json:"sessionId"`
	Title          string `json:"title"`
	PullRequestURL string `json:"pullRequestUrl"`
	Status         string `json:"status"`
	MessageCount   int    `json:"messageCount"`
	LastMessage    string `json:"lastMessage"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type DiffCount struct {
	SessionID  string `json:"sessionId"`
	TotalCount int    `json:"totalCount"`
}

// ImportSummary is the optional body returned by the PR import endpoint.
type ImportSummary struct {
	SessionID      string   `json:"sessionId"`
	FilesChanged   int      `json:"filesChanged"`
	TotalAdditions int      `json:"totalAdditions"`
	TotalDeletions int      `json:"totalDeletions"`
	Files          []string `json:"files"`
}

type CompressionStats struct {
	FileCount             int     `json:"fileCount"`
	TotalOriginalSize     int64   `json:"totalOriginalSize"`
	TotalCompressedSize   int64   `json:"totalCompressedSize"`
	CompressionRatio      float64 `json:"compressionRatio"`
	SavedBytes            int64   `json:"savedBytes"`
	CompressionPercentage float64 `json:"compressionPercentage"`
}
