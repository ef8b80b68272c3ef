package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/revie-dev/revie/internal/backend"
	"github.com/revie-dev/revie/internal/domain"
	"github.com/revie-dev/revie/internal/github"
	"github.com/revie-dev/revie/internal/logger"
	"github.com/revie-dev/revie/internal/ui/components"
	"github.com/revie-dev/revie/internal/ui/views"
)

// SessionState is the diff-loading lifecycle for the active session. Chat
// streaming is tracked separately on the chat panel because the two can
// overlap freely.
type SessionState int

const (
	StateIdle SessionState = iota
	StateAnalyzing
	StateStreamingDiffs
	StateReady
)

type ViewState int

const (
	ViewStart ViewState = iota
	ViewDiff
	ViewReviewList
)

// Backend is the slice of the transport client the orchestrator drives.
type Backend interface {
	UserID() string
	CreateSession(ctx context.Context, pullRequestURL string) (*domain.ReviewSession, error)
	ImportPR(ctx context.Context, sessionID, pullRequestURL string) (*domain.ImportSummary, error)
	ListDiffs(ctx context.Context, sessionID string) ([]domain.DiffItem, error)
	ChatHistory(ctx context.Context, sessionID string) (*domain.ChatHistory, error)
	DeleteChatHistory(ctx context.Context, sessionID string) error
	ReviewList(ctx context.Context) ([]domain.ReviewSummary, error)
	CompressionStats(ctx context.Context, sessionID string) (*domain.CompressionStats, error)
	StreamDiffs(ctx context.Context, sessionID string) *backend.DiffStream
	StreamChat(ctx context.Context, sessionID, message string) *backend.ChatStream
}

type Model struct {
	state  SessionState
	view   ViewState
	width  int
	height int

	topBar     *components.TopBarModel
	statusBar  *components.StatusBarModel
	commandBar *components.CommandBarModel
	urlBar     *components.URLBarModel
	diffViewer *views.DiffViewerModel
	chatPanel  *views.ChatPanelModel
	reviewList *views.ReviewListViewModel
	logsView   *views.LogsViewModel
	spinner    spinner.Model

	client        Backend
	previewClient *github.PreviewClient
	ctx           context.Context

	session *domain.ReviewSession
	diffIDs map[string]bool
	loading bool

	// Stream handles plus their generation counters. A counter is bumped on
	// every teardown, so events stamped with an older generation are stale
	// and dropped without touching state.
	diffStream *backend.DiffStream
	chatStream *backend.ChatStream
	diffGen    int
	chatGen    int

	// rememberSession persists the last opened session id, when set.
	rememberSession func(id string)
	// saveToken persists a GitHub token entered with :token, when set.
	saveToken func(token string) error
	// resumeSessionID reopens the remembered session on startup, when set.
	resumeSessionID string
}

func NewModel(client Backend, githubToken string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		state:         StateIdle,
		view:          ViewStart,
		topBar:        components.NewTopBar(),
		statusBar:     components.NewStatusBar(),
		commandBar:    components.NewCommandBar(),
		urlBar:        components.NewURLBar(),
		diffViewer:    views.NewDiffViewer(),
		chatPanel:     views.NewChatPanel(),
		reviewList:    views.NewReviewListView(),
		logsView:      views.NewLogsView(),
		spinner:       sp,
		client:        client,
		previewClient: github.NewPreviewClient(githubToken),
		ctx:           context.Background(),
		diffIDs:       make(map[string]bool),
	}
}

// SetSessionRecorder installs a callback invoked whenever a session is opened.
func (m *Model) SetSessionRecorder(record func(id string)) {
	m.rememberSession = record
}

// SetTokenSaver installs the callback that persists a GitHub token entered
// with the :token command.
func (m *Model) SetTokenSaver(save func(token string) error) {
	m.saveToken = save
}

// SetResumeSession marks a session to reopen on startup.
func (m *Model) SetResumeSession(id string) {
	m.resumeSessionID = id
}

func (m Model) Init() tea.Cmd {
	m.updateShortcuts()
	if m.resumeSessionID != "" {
		return m.findResumeTarget(m.resumeSessionID)
	}
	return nil
}

// findResumeTarget looks the remembered session up in the review list so the
/// last review reopens on startup. Best effort: failures and unknown ids leave
// the start view untouched.
func (m Model) findResumeTarget(sessionID string) tea.Cmd {
	return func() tea.Msg {
		reviews, err := m.client.ReviewList(m.ctx)
		if err != nil {
			logger.LogError("RESUME_SESSION", sessionID, err)
			return nil
		}
		for i := range reviews {
			if reviews[i].SessionID == sessionID {
				return SessionResumedMsg{review: reviews[i]}
			}
		}
		return nil
	}
}

func (m Model) isInInputMode() bool {
	if m.commandBar.IsActive() {
		return true
	}
	if m.logsView.IsActive() {
		return true
	}
	if m.view == ViewDiff && m.chatPanel.IsActive() {
		return true
	}
	if m.view == ViewStart {
		return true
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.topBar.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.commandBar.SetWidth(msg.Width)
		m.urlBar.SetSize(msg.Width, msg.Height)
		m.diffViewer.SetSize(msg.Width, msg.Height-10)
		m.chatPanel.SetSize(msg.Width, msg.Height)
		m.reviewList.SetSize(msg.Width, msg.Height)
		m.logsView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.loading || m.chatPanel.IsStreaming() {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case AnalysisDoneMsg:
		return m.handleAnalysisDone(msg)

	case SessionResumedMsg:
		// Only honored while nothing else has started.
		if m.session == nil && m.view == ViewStart {
			return m.openReview(msg.review)
		}
		return m, nil

	case PRPreviewMsg:
		if msg.preview != nil {
			m.topBar.SetPRAuthor(msg.preview.Author)
			if m.session != nil && m.session.Title == "" {
				m.topBar.SetSession(msg.preview.Title, m.session.PullRequestURL)
			}
		}
		return m, nil

	case DiffEventMsg:
		return m.handleDiffEvent(msg)

	case DiffsFetchedMsg:
		return m.handleDiffsFetched(msg)

	case SessionSwitchedMsg:
		return m.handleSessionSwitched(msg)

	case ChatEventMsg:
		return m.handleChatEvent(msg)

	case ReviewsLoadedMsg:
		m.reviewList.SetReviews(msg.reviews)
		return m, nil

	case StatsLoadedMsg:
		if msg.stats != nil {
			m.statusBar.SetMessage(fmt.Sprintf(
				"Compression: %d files, %s saved (%.1f%%)",
				msg.stats.FileCount,
				formatBytes(msg.stats.SavedBytes),
				msg.stats.CompressionPercentage,
			), false)
		}
		return m, nil

	case HistoryClearedMsg:
		m.chatPanel.Clear()
		m.refreshCounts()
		m.statusBar.SetMessage("Chat history cleared", false)
		return m, nil

	case ErrorMsg:
		return m.handleError(msg.err)

	case SuccessMsg:
		m.statusBar.SetMessage(msg.message, false)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.teardownStreams()
		return m, tea.Quit
	}

	if m.logsView.IsActive() {
		switch key {
		case "esc", "q":
			m.logsView.Deactivate()
			return m, nil
		default:
			return m, m.logsView.Update(msg)
		}
	}

	if m.commandBar.IsActive() {
		switch key {
		case "enter":
			return m.handleCommand()
		case "esc":
			m.commandBar.Deactivate()
			return m, nil
		default:
			return m, m.commandBar.Update(msg)
		}
	}

	switch m.view {
	case ViewStart:
		switch key {
		case ":":
			m.commandBar.Activate()
			return m, nil
		case "enter":
			return m.startAnalysis(m.urlBar.Value())
		default:
			return m, m.urlBar.Update(msg)
		}

	case ViewDiff:
		if m.chatPanel.IsActive() {
			switch key {
			case "ctrl+s":
				return m.sendChat()
			case "esc":
				m.chatPanel.Deactivate()
				return m, nil
			default:
				return m, m.chatPanel.Update(msg)
			}
		}

		switch key {
		case ":":
			m.commandBar.Activate()
			return m, nil
		case "i":
			m.chatPanel.Activate()
			return m, nil
		case "o":
			return m.openReviewList()
		case "x", "esc":
			m.statusBar.Dismiss()
			return m, nil
		case "q":
			m.teardownStreams()
			return m, tea.Quit
		default:
			return m, m.diffViewer.Update(msg)
		}

	case ViewReviewList:
		switch key {
		case ":":
			m.commandBar.Activate()
			return m, nil
		case "enter":
			if review := m.reviewList.SelectedReview(); review != nil {
				return m.openReview(*review)
			}
			return m, nil
		case "esc":
			if m.session != nil {
				m.view = ViewDiff
				m.topBar.SetView("Diff")
			} else {
				m.view = ViewStart
				m.topBar.SetView("Start")
			}
			m.updateShortcuts()
			return m, nil
		case "q":
			m.teardownStreams()
			return m, tea.Quit
		default:
			return m, m.reviewList.Update(msg)
		}
	}

	return m, nil
}

func (m Model) handleCommand() (tea.Model, tea.Cmd) {
	input := m.commandBar.Value()
	m.commandBar.Deactivate()

	command := ParseCommand(input)
	logger.Log("UI: Executing command %q", input)

	switch command.Type {
	case CommandQuit:
		m.teardownStreams()
		return m, tea.Quit

	case CommandAnalyze:
		if len(command.Args) == 0 {
			m.statusBar.SetMessage("usage: :analyze <pull request url>", true)
			return m, nil
		}
		return m.startAnalysis(command.Args[0])

	case CommandReviews:
		return m.openReviewList()

	case CommandClear:
		if m.session == nil {
			return m, nil
		}
		return m, m.clearHistory(m.session.ID)

	case CommandStats:
		if m.session == nil {
			return m, nil
		}
		return m, m.loadStats(m.session.ID)

	case CommandToken:
		if len(command.Args) == 0 {
			m.statusBar.SetMessage("usage: :token <github token>", true)
			return m, nil
		}
		token := command.Args[0]
		if m.saveToken != nil {
			if err := m.saveToken(token); err != nil {
				return m.handleError(err)
			}
		}
		m.previewClient = github.NewPreviewClient(token)
		m.statusBar.SetMessage("GitHub token saved", false)
		return m, nil

	case CommandLogs:
		m.logsView.Activate()
		return m, nil

	case CommandHelp:
		m.statusBar.SetMessage(
			":a <url> analyze | :open reviews | :clear history | :stats | :token <t> | :logs | :q quit", false)
		return m, nil

	default:
		m.statusBar.SetMessage("Unknown command", true)
		return m, nil
	}
}

// startAnalysis kicks off the full pipeline for a PR URL: session creation,
// PR import, then diff streaming. Empty input is rejected silently; a URL
// that is not a GitHub PR is rejected before any backend call.
func (m Model) startAnalysis(pullRequestURL string) (tea.Model, tea.Cmd) {
	if pullRequestURL == "" {
		return m, nil
	}
	ref, err := github.ParsePullRequestURL(pullRequestURL)
	if err != nil {
		m.statusBar.SetMessage("Not a GitHub pull request URL", true)
		return m, nil
	}

	m.teardownStreams()
	m.clearSessionState()
	m.statusBar.ClearMessage()
	m.state = StateAnalyzing
	m.loading = true
	m.view = ViewDiff
	m.topBar.SetView("Diff")
	m.topBar.SetSession(ref.String(), pullRequestURL)
	m.updateShortcuts()

	logger.Log("UI: Analyzing %s", pullRequestURL)
	return m, tea.Batch(
		m.analyze(pullRequestURL, m.diffGen),
		m.fetchPreview(ref),
		m.spinner.Tick,
	)
}

// analyze stamps its result with the request generation so a later submission
// supersedes it: results and failures of a stale request are both dropped.
func (m Model) analyze(pullRequestURL string, gen int) tea.Cmd {
	return func() tea.Msg {
		session, err := m.client.CreateSession(m.ctx, pullRequestURL)
		if err != nil {
			return AnalysisDoneMsg{gen: gen, err: err}
		}
		summary, err := m.client.ImportPR(m.ctx, session.ID, pullRequestURL)
		if err != nil {
			return AnalysisDoneMsg{gen: gen, err: err}
		}
		return AnalysisDoneMsg{gen: gen, session: session, summary: summary}
	}
}

// fetchPreview grabs the PR title straight from GitHub while the backend
// imports. Best effort: failures are logged and the topbar stays as-is.
func (m Model) fetchPreview(ref github.PRRef) tea.Cmd {
	if m.previewClient == nil {
		return nil
	}
	return func() tea.Msg {
		preview, err := m.previewClient.Fetch(m.ctx, ref)
		if err != nil {
			logger.LogError("PR_PREVIEW", ref.String(), err)
			return PRPreviewMsg{}
		}
		return PRPreviewMsg{preview: preview}
	}
}

func (m Model) handleAnalysisDone(msg AnalysisDoneMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.diffGen {
		// A later submission superseded this request; its session must not
		// be installed and no stream opened for it.
		return m, nil
	}
	if msg.err != nil {
		return m.handleError(msg.err)
	}

	m.session = msg.session
	m.state = StateStreamingDiffs
	if msg.session.Title != "" {
		m.topBar.SetSession(msg.session.Title, msg.session.PullRequestURL)
	}
	if msg.summary != nil {
		m.statusBar.SetMessage(fmt.Sprintf(
			"Imported %d files (+%d / -%d)",
			msg.summary.FilesChanged,
			msg.summary.TotalAdditions,
			msg.summary.TotalDeletions,
		), false)
	}
	if m.rememberSession != nil {
		m.rememberSession(msg.session.ID)
	}

	m.closeDiffStream()
	m.diffStream = m.client.StreamDiffs(m.ctx, msg.session.ID)
	return m, waitForDiffEvent(m.diffStream, m.diffGen)
}

func waitForDiffEvent(stream *backend.DiffStream, gen int) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-stream.Events:
			return DiffEventMsg{gen: gen, ev: ev}
		case <-stream.Closed():
			return DiffEventMsg{gen: gen, ev: backend.DiffEvent{Done: true}}
		}
	}
}

func (m Model) handleDiffEvent(msg DiffEventMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.diffGen {
		return m, nil
	}

	switch {
	case msg.ev.Item != nil:
		m.insertDiff(*msg.ev.Item)
		return m, waitForDiffEvent(m.diffStream, m.diffGen)

	case msg.ev.Err != nil:
		logger.LogError("DIFF_STREAM", m.sessionID(), msg.ev.Err)
		m.closeDiffStream()
		// Transparent REST fallback: the user only sees an error if this
		// fails too.
		return m, m.fetchDiffsFallback(m.sessionID(), m.diffGen)

	default:
		m.closeDiffStream()
		m.state = StateReady
		m.loading = false
		m.statusBar.SetMessage(fmt.Sprintf("Loaded %d files", len(m.diffIDs)), false)
		return m, nil
	}
}

func (m Model) fetchDiffsFallback(sessionID string, gen int) tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListDiffs(m.ctx, sessionID)
		return DiffsFetchedMsg{gen: gen, items: items, err: err}
	}
}

func (m Model) handleDiffsFetched(msg DiffsFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.diffGen {
		return m, nil
	}

	m.state = StateReady
	m.loading = false

	if msg.err != nil {
		m.statusBar.SetMessage(friendlyError(msg.err), true)
		return m, nil
	}

	for _, item := range msg.items {
		m.insertDiff(item)
	}
	m.statusBar.SetMessage(fmt.Sprintf("Loaded %d files", len(m.diffIDs)), false)
	return m, nil
}

// insertDiff enforces the dedup invariant: one item per id regardless of how
// many times the streamed and fetched paths deliver it. The first distinct
// item auto-selects its file tab.
func (m *Model) insertDiff(item domain.DiffItem) {
	if m.diffIDs[item.ID] {
		return
	}
	m.diffIDs[item.ID] = true
	m.diffViewer.AddItem(item)
	if len(m.diffIDs) == 1 {
		m.diffViewer.Select(item.ID)
	}
	m.refreshCounts()
}

func (m Model) openReviewList() (tea.Model, tea.Cmd) {
	m.view = ViewReviewList
	m.topBar.SetView("Reviews")
	m.updateShortcuts()
	return m, m.loadReviews()
}

func (m Model) loadReviews() tea.Cmd {
	return func() tea.Msg {
		reviews, err := m.client.ReviewList(m.ctx)
		if err != nil {
			return ErrorMsg{err: err}
		}
		return ReviewsLoadedMsg{reviews: reviews}
	}
}

/// openReview switches to an existing session: streams are torn down, the diff
// set and chat history are replaced wholesale by a one-shot fetch.
func (m Model) openReview(review domain.ReviewSummary) (tea.Model, tea.Cmd) {
	m.teardownStreams()
	m.clearSessionState()
	m.session = &domain.ReviewSession{
		ID:             review.SessionID,
		Title:          review.Title,
		PullRequestURL: review.PullRequestURL,
		Status:         review.Status,
	}
	m.state = StateAnalyzing
	m.loading = true
	m.view = ViewDiff
	m.topBar.SetView("Diff")
	m.topBar.SetSession(review.Title, review.PullRequestURL)
	m.updateShortcuts()

	if m.rememberSession != nil {
		m.rememberSession(review.SessionID)
	}

	logger.Log("UI: Opening review session %s", review.SessionID)
	return m, tea.Batch(m.loadSession(review.SessionID, m.diffGen), m.spinner.Tick)
}

func (m Model) loadSession(sessionID string, gen int) tea.Cmd {
	return func() tea.Msg {
		diffs, err := m.client.ListDiffs(m.ctx, sessionID)
		if err != nil {
			return SessionSwitchedMsg{gen: gen, err: err}
		}
		history, err := m.client.ChatHistory(m.ctx, sessionID)
		if err != nil {
			return SessionSwitchedMsg{gen: gen, err: err}
		}
		return SessionSwitchedMsg{gen: gen, diffs: diffs, history: history}
	}
}

func (m Model) handleSessionSwitched(msg SessionSwitchedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.diffGen {
		return m, nil
	}

	m.state = StateReady
	m.loading = false

	if msg.err != nil {
		m.statusBar.SetMessage(friendlyError(msg.err), true)
		return m, nil
	}

	for _, item := range msg.diffs {
		m.insertDiff(item)
	}
	if msg.history != nil {
		m.chatPanel.SetMessages(msg.history.Messages)
	}
	m.refreshCounts()
	return m, nil
}

// sendChat appends the user turn and an empty assistant placeholder
// synchronously, then opens the token stream that grows the placeholder.
func (m Model) sendChat() (tea.Model, tea.Cmd) {
	if m.session == nil || m.chatPanel.IsStreaming() {
		return m, nil
	}
	input := m.chatPanel.Input()
	if input == "" {
		return m, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	m.chatPanel.AppendMessage(domain.Message{Role: domain.RoleUser, Content: input, Timestamp: now})
	m.chatPanel.AppendMessage(domain.Message{Role: domain.RoleAssistant, Content: "", Timestamp: now})
	m.chatPanel.ClearInput()
	m.chatPanel.SetStreaming(true)
	m.refreshCounts()

	m.closeChatStream()
	m.chatStream = m.client.StreamChat(m.ctx, m.session.ID, input)
	return m, tea.Batch(waitForChatEvent(m.chatStream, m.chatGen), m.spinner.Tick)
}

func waitForChatEvent(stream *backend.ChatStream, gen int) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-stream.Events:
			return ChatEventMsg{gen: gen, ev: ev}
		case <-stream.Closed():
			return ChatEventMsg{gen: gen, ev: backend.ChatEvent{Done: true}}
		}
	}
}

func (m Model) handleChatEvent(msg ChatEventMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.chatGen {
		return m, nil
	}

	if msg.ev.Done {
		m.closeChatStream()
		m.chatPanel.SetStreaming(false)
		return m, nil
	}

	m.chatPanel.AppendToLast(msg.ev.Chunk)
	return m, waitForChatEvent(m.chatStream, m.chatGen)
}

func (m Model) clearHistory(sessionID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteChatHistory(m.ctx, sessionID); err != nil {
			return ErrorMsg{err: err}
		}
		return HistoryClearedMsg{}
	}
}

func (m Model) loadStats(sessionID string) tea.Cmd {
	return func() tea.Msg {
		stats, err := m.client.CompressionStats(m.ctx, sessionID)
		if err != nil {
			return ErrorMsg{err: err}
		}
		return StatsLoadedMsg{stats: stats}
	}
}

// handleError is the single choke point turning transport errors into the
// banner. It also guarantees loading flags resolve on every failure path.
func (m Model) handleError(err error) (tea.Model, tea.Cmd) {
	logger.LogError("UI", "", err)
	m.statusBar.SetMessage(friendlyError(err), true)
	m.loading = false
	if m.session != nil {
		m.state = StateReady
	} else {
		m.state = StateIdle
		m.view = ViewStart
		m.topBar.SetView("Start")
		m.updateShortcuts()
	}
	return m, nil
}

func friendlyError(err error) string {
	return err.Error()
}

func (m *Model) clearSessionState() {
	m.session = nil
	m.diffIDs = make(map[string]bool)
	m.diffViewer.Clear()
	m.chatPanel.Clear()
	m.chatPanel.SetStreaming(false)
	m.topBar.SetPRAuthor("")
	m.refreshCounts()
}

// closeDiffStream tears down the diff stream handle and invalidates any
// events still in flight for it. Safe to call with no stream open.
func (m *Model) closeDiffStream() {
	m.diffGen++
	if m.diffStream != nil {
		m.diffStream.Close()
		m.diffStream = nil
	}
}

func (m *Model) closeChatStream() {
	m.chatGen++
	if m.chatStream != nil {
		m.chatStream.Close()
		m.chatStream = nil
	}
}

func (m *Model) teardownStreams() {
	m.closeDiffStream()
	m.closeChatStream()
}

func (m *Model) refreshCounts() {
	m.topBar.SetCounts(len(m.diffIDs), len(m.chatPanel.Messages()))
}

func (m Model) sessionID() string {
	if m.session == nil {
		return ""
	}
	return m.session.ID
}

func (m Model) updateShortcuts() {
	switch m.view {
	case ViewStart:
		m.topBar.SetShortcuts([]string{
			"<enter> analyze",
			"<:> command",
			"<ctrl+c> quit",
		})
	case ViewDiff:
		m.topBar.SetShortcuts([]string{
			"<n/p> switch file",
			"<i> chat",
			"<o> reviews",
			"<:> command",
		})
	case ViewReviewList:
		m.topBar.SetShortcuts([]string{
			"<enter> open",
			"<esc> back",
			"<:> command",
		})
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.topBar.SetPhase(m.phaseLabel())

	var content string
	if m.logsView.IsActive() {
		content = m.logsView.View()
	} else {
		switch m.view {
		case ViewStart:
			content = m.urlBar.View()
		case ViewDiff:
			if m.chatPanel.IsActive() {
				content = m.chatPanel.View()
			} else {
				content = m.diffViewer.View()
			}
		case ViewReviewList:
			content = m.reviewList.View()
		}
	}

	topBar := m.topBar.View()
	commandBar := m.commandBar.View()

	if commandBar != "" {
		return topBar + "\n" + content + "\n" + commandBar
	}
	return topBar + "\n" + content + "\n" + m.statusBar.View()
}

func (m Model) phaseLabel() string {
	switch {
	case m.state == StateAnalyzing:
		return m.spinner.View() + " analyzing"
	case m.state == StateStreamingDiffs:
		return m.spinner.View() + " receiving diffs"
	case m.chatPanel.IsStreaming():
		return m.spinner.View() + " responding"
	default:
		return ""
	}
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

type AnalysisDoneMsg struct {
	gen     int
	session *domain.ReviewSession
	summary *domain.ImportSummary
	err     error
}

type SessionResumedMsg struct {
	review domain.ReviewSummary
}

type PRPreviewMsg struct {
	preview *github.Preview
}

type DiffEventMsg struct {
	gen int
	ev  backend.DiffEvent
}

type DiffsFetchedMsg struct {
	gen   int
	items []domain.DiffItem
	err   error
}

type SessionSwitchedMsg struct {
	gen     int
	diffs   []domain.DiffItem
	history *domain.ChatHistory
	err     error
}

type ChatEventMsg struct {
	gen int
	ev  backend.ChatEvent
}

type ReviewsLoadedMsg struct {
	reviews []domain.ReviewSummary
}

type StatsLoadedMsg struct {
	stats *domain.CompressionStats
}

type HistoryClearedMsg struct{}

type ErrorMsg struct {
	err error
}

type SuccessMsg struct {
	message string
}
