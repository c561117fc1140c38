//go:build !bolt

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/ekomkassa/hubctl/internal/params"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS profiles (
	name       TEXT PRIMARY KEY,
	uid        TEXT NOT NULL,
	base_url   TEXT NOT NULL,
	api_key    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS send_history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	message_id TEXT NOT NULL,
	provider   TEXT NOT NULL,
	recipient  TEXT NOT NULL,
	status     TEXT NOT NULL,
	sent_at    TIMESTAMP NOT NULL
);
`

const (
	settingConfig        = "config"
	settingActiveProfile = "active_profile"
)

// SQLite implements the Store interface using SQLite.
type SQLite struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store at the given database path.
// This is primarily exposed for testing purposes.
func New(dbPath string) (*SQLite, error) {
	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func initDB() (Store, error) {
	path := filepath.Join(params.AppdataDir, "hubctl.db")

	return New(path)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *SQLite) Ping() error {
	return s.db.Ping()
}

func (s *SQLite) getSetting(key string) (string, error) {
	var value string

	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}

	return value, nil
}

func (s *SQLite) putSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}

	return nil
}

// GetConfig returns the stored configuration, or defaults when none has
// been saved yet.
func (s *SQLite) GetConfig() (*model.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.getSetting(settingConfig)
	if err != nil {
		return nil, err
	}

	if raw == "" {
		cfg := model.DefaultConfig()
		return &cfg, nil
	}

	var cfg model.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig persists the configuration.
func (s *SQLite) SaveConfig(cfg *model.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return s.putSetting(settingConfig, string(data))
}

// SaveProfile inserts or updates a profile by name.
func (s *SQLite) SaveProfile(profile *model.Profile) error {
	if profile == nil || profile.Name == "" {
		return errors.New("profile name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if profile.UID == "" {
		profile.UID = uuid.New().String()
	}

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	profile.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO profiles (name, uid, base_url, api_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			base_url   = excluded.base_url,
			api_key    = excluded.api_key,
			updated_at = excluded.updated_at
	`, profile.Name, profile.UID, profile.BaseURL, profile.APIKey, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	return nil
}

// GetProfile returns the named profile, or nil when it does not exist.
func (s *SQLite) GetProfile(name string) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getProfile(name)
}

func (s *SQLite) getProfile(name string) (*model.Profile, error) {
	profile := &model.Profile{}

	err := s.db.QueryRow(`
		SELECT name, uid, base_url, api_key, created_at, updated_at
		FROM profiles WHERE name = ?
	`, name).Scan(&profile.Name, &profile.UID, &profile.BaseURL, &profile.APIKey,
		&profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	return profile, nil
}

// GetActiveProfile returns the currently selected profile, or nil when
// none has been selected.
func (s *SQLite) GetActiveProfile() (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, err := s.getSetting(settingActiveProfile)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, nil
	}

	return s.getProfile(name)
}

// SetActiveProfile selects the named profile for subsequent commands.
func (s *SQLite) SetActiveProfile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.getProfile(name)
	if err != nil {
		return err
	}

	if profile == nil {
		return fmt.Errorf("profile %q does not exist", name)
	}

	return s.putSetting(settingActiveProfile, name)
}

// ListProfiles returns all profiles ordered by name.
func (s *SQLite) ListProfiles() ([]model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, uid, base_url, api_key, created_at, updated_at
		FROM profiles ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var profiles []model.Profile

	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.Name, &p.UID, &p.BaseURL, &p.APIKey, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}

		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// DeleteProfile removes a profile. Deleting the active profile clears
// the selection.
func (s *SQLite) DeleteProfile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM profiles WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}

	active, err := s.getSetting(settingActiveProfile)
	if err != nil {
		return err
	}

	if active == name {
		return s.putSetting(settingActiveProfile, "")
	}

	return nil
}

// ProfileExists reports whether a profile with the given name exists.
func (s *SQLite) ProfileExists(name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, err := s.getProfile(name)
	if err != nil {
		return false, err
	}

	return profile != nil, nil
}

// AppendSendRecord adds one entry to the local sandbox send history.
func (s *SQLite) AppendSendRecord(record *model.SendRecord) error {
	if record == nil {
		return errors.New("record is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if record.SentAt.IsZero() {
		record.SentAt = time.Now()
	}

	result, err := s.db.Exec(`
		INSERT INTO send_history (message_id, provider, recipient, status, sent_at)
		VALUES (?, ?, ?, ?, ?)
	`, record.MessageID, record.Provider, record.Recipient, record.Status, record.SentAt)
	if err != nil {
		return fmt.Errorf("saving send record: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}

	return nil
}

// ListSendRecords returns the most recent send records, newest first.
func (s *SQLite) ListSendRecords(limit int) ([]model.SendRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, message_id, provider, recipient, status, sent_at
		FROM send_history ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing send records: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var records []model.SendRecord

	for rows.Next() {
		var r model.SendRecord
		if err := rows.Scan(&r.ID, &r.MessageID, &r.Provider, &r.Recipient, &r.Status, &r.SentAt); err != nil {
			return nil, fmt.Errorf("scanning send record: %w", err)
		}

		records = append(records, r)
	}

	return records, rows.Err()
}
