package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/revie-dev/revie/internal/backend"
	"github.com/revie-dev/revie/internal/logger"
	"github.com/revie-dev/revie/internal/storage"
	"github.com/revie-dev/revie/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "revie: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if homeDir, err := os.UserHomeDir(); err == nil {
		logPath := filepath.Join(homeDir, ".revie", "revie.log")
		os.MkdirAll(filepath.Dir(logPath), 0700)
		if err := logger.Init(logPath); err != nil {
			// Logging is best effort; the in-memory buffer still works.
			logger.EnsureInit()
		}
	} else {
		logger.EnsureInit()
	}
	defer logger.Close()

	repo, err := storage.NewLocalRepository()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	baseURL := repo.BaseURL()
	if env := os.Getenv("REVIE_BASE_URL"); env != "" {
		baseURL = env
	}

	client := backend.NewClient(baseURL, repo.UserID())

	model := ui.NewModel(client, repo.GitHubToken())
	model.SetSessionRecorder(func(id string) {
		if err := repo.SetLastSessionID(id); err != nil {
			logger.LogError("REMEMBER_SESSION", id, err)
		}
	})
	model.SetTokenSaver(repo.SetGitHubToken)
	if last := repo.LastSessionID(); last != "" {
		model.SetResumeSession(last)
	}

	logger.Log("Starting revie against %s as user %s", baseURL, repo.UserID())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
