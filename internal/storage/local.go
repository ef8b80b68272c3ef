package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/revie-dev/revie/internal/logger"
)

const (
	configDir  = ".revie"
	configFile = "config.json"

	defaultBaseURL = "http://localhost:8080/api"
)

type LocalRepository struct {
	configPath string
	config     *Config
	mu         sync.RWMutex
}

func NewLocalRepository() (*LocalRepository, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, configDir, configFile)

	repo := &LocalRepository{
		configPath: configPath,
		config:     &Config{},
	}

	if err := repo.ensureConfigDir(); err != nil {
		return nil, err
	}

	if err := repo.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Fill defaults on first run and persist them, so the user has a config
	// file to edit.
	changed := false
	if repo.config.UserID == "" {
		repo.config.UserID = uuid.New().String()
		logger.Log("Generated new user ID: %s", repo.config.UserID)
		changed = true
	}
	if repo.config.BaseURL == "" {
		repo.config.BaseURL = defaultBaseURL
		changed = true
	}
	if changed {
		if err := repo.save(); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

func (r *LocalRepository) ensureConfigDir() error {
	dir := filepath.Dir(r.configPath)
	return os.MkdirAll(dir, 0700)
}

func (r *LocalRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger.LogFileOpen(r.configPath)
	data, err := os.ReadFile(r.configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.LogError("LOAD", r.configPath, err)
		}
		return err
	}

	if err := json.Unmarshal(data, r.config); err != nil {
		logger.LogError("UNMARSHAL", r.configPath, err)
		return err
	}

	logger.Log("Config loaded successfully from %s", r.configPath)
	return nil
}

func (r *LocalRepository) save() error {
	data, err := json.MarshalIndent(r.config, "", "  ")
	if err != nil {
		logger.LogError("MARSHAL", r.configPath, err)
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	logger.LogFileWrite(r.configPath)
	if err := os.WriteFile(r.configPath, data, 0600); err != nil {
		logger.LogError("SAVE", r.configPath, err)
		return err
	}

	logger.Log("Config saved successfully to %s", r.configPath)
	return nil
}

func (r *LocalRepository) UserID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.UserID
}

func (r *LocalRepository) BaseURL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.BaseURL
}

func (r *LocalRepository) GitHubToken() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.GitHubToken
}

func (r *LocalRepository) SetGitHubToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config.GitHubToken = token
	return r.save()
}

func (r *LocalRepository) LastSessionID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.LastSessionID
}

func (r *LocalRepository) SetLastSessionID(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.config.LastSessionID == id {
		return nil
	}
	r.config.LastSessionID = id
	return r.save()
}
