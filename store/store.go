// Package store persists small bits of local state under the user's config
// and cache directories: the signed-in session, recently viewed catalog
// items, and a short-lived cache of catalog fetches.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thaisring/ticket-show-world/model"
)

const (
	appDirName      = "ticket-show-world"
	catalogCacheTTL = 10 * time.Minute
	maxRecentViews  = 8
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

// Session is the locally persisted sign-in state.
type Session struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SignedInAt time.Time `json:"signed_in_at"`
}

// RecentView is one recently opened catalog item.
type RecentView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

type viewHistory struct {
	Views []RecentView `json:"views"`
}

// CatalogSnapshot is the cached shape of a remote catalog fetch.
type CatalogSnapshot struct {
	Events     []model.Event        `json:"events"`
	Shows      []model.UserShow     `json:"shows"`
	Premieres  []model.Premiere     `json:"premieres"`
	Categories []model.LiveCategory `json:"categories"`
}

// LoadSession returns the persisted session and whether one exists.
func LoadSession() (Session, bool, error) {
	path, err := configPath("session.json")
	if err != nil {
		return Session{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, false, errors.New("invalid session format")
	}
	if strings.TrimSpace(session.Name) == "" {
		return Session{}, false, nil
	}
	return session, true, nil
}

// SaveSession persists the sign-in state.
func SaveSession(session Session) error {
	if strings.TrimSpace(session.Name) == "" {
		return errors.New("session name is required")
	}
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	return writeJSON(path, session)
}

// ClearSession removes the persisted session. Missing files are fine.
func ClearSession() error {
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadRecentViews returns the recently viewed catalog items, newest first.
func LoadRecentViews() ([]RecentView, error) {
	path, err := configPath("recent_views.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var history viewHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid view history format")
	}
	return history.Views, nil
}

// RememberView records a catalog item at the head of the history, dropping
// duplicates and capping the list.
func RememberView(view RecentView) error {
	if strings.TrimSpace(view.ID) == "" {
		return errors.New("view id is required")
	}
	history, _ := LoadRecentViews()
	next := []RecentView{view}
	for _, existing := range history {
		if existing.ID == view.ID {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentViews {
			break
		}
	}

	path, err := configPath("recent_views.json")
	if err != nil {
		return err
	}
	return writeJSON(path, viewHistory{Views: next})
}

// LoadCatalogCache returns the cached catalog snapshot and whether it is
// still fresh.
func LoadCatalogCache() (CatalogSnapshot, bool, error) {
	path, err := cachePath("catalog.json")
	if err != nil {
		return CatalogSnapshot{}, false, err
	}
	var cache cacheEnvelope[CatalogSnapshot]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CatalogSnapshot{}, false, nil
		}
		return CatalogSnapshot{}, false, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return CatalogSnapshot{}, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= catalogCacheTTL, nil
}

// SaveCatalogCache stores a catalog snapshot with the current timestamp.
func SaveCatalogCache(snapshot CatalogSnapshot) error {
	path, err := cachePath("catalog.json")
	if err != nil {
		return err
	}
	return writeJSON(path, cacheEnvelope[CatalogSnapshot]{
		UpdatedAt: time.Now(),
		Data:      snapshot,
	})
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}
