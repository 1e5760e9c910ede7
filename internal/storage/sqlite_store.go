package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS subscriptions (
	day_id   TEXT PRIMARY KEY,
	day_name TEXT NOT NULL,
	date     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS jobs (
	name    TEXT PRIMARY KEY,
	kind    TEXT NOT NULL,
	run_at  TEXT NOT NULL,
	payload BLOB
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			DailyEnabled: constants.DefaultDailyEnabled,
			NoDayEnabled: constants.DefaultNoDayEnabled,
			Hour:         constants.DefaultHour,
			Minute:       constants.DefaultMinute,
			ThemeMode:    constants.DefaultThemeMode,
			FontScale:    constants.DefaultFontScale,
			Timezone:     constants.DefaultTimezone,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'dagvan init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingDailyEnabled:
			settings.DailyEnabled = value == "true"
		case constants.SettingNoDayEnabled:
			settings.NoDayEnabled = value == "true"
		case constants.SettingHour:
			if _, err := fmt.Sscanf(value, "%d", &settings.Hour); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingHour, err)
			}
		case constants.SettingMinute:
			if _, err := fmt.Sscanf(value, "%d", &settings.Minute); err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingMinute, err)
			}
		case constants.SettingThemeMode:
			settings.ThemeMode = value
		case constants.SettingFontScale:
			scale, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingFontScale, err)
			}
			settings.FontScale = scale
		case constants.SettingTimezone:
			settings.Timezone = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := []struct {
		key   string
		value string
	}{
		{constants.SettingDailyEnabled, fmt.Sprintf("%v", settings.DailyEnabled)},
		{constants.SettingNoDayEnabled, fmt.Sprintf("%v", settings.NoDayEnabled)},
		{constants.SettingHour, fmt.Sprintf("%d", settings.Hour)},
		{constants.SettingMinute, fmt.Sprintf("%d", settings.Minute)},
		{constants.SettingThemeMode, settings.ThemeMode},
		{constants.SettingFontScale, strconv.FormatFloat(settings.FontScale, 'f', -1, 64)},
		{constants.SettingTimezone, settings.Timezone},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p.key, p.value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddSubscription(sub models.Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO subscriptions (day_id, day_name, date) VALUES (?, ?, ?)",
		sub.DayID, sub.DayName, sub.Date,
	)
	return err
}

func (s *SQLiteStore) RemoveSubscription(dayID string) error {
	_, err := s.db.Exec("DELETE FROM subscriptions WHERE day_id = ?", dayID)
	return err
}

func (s *SQLiteStore) GetSubscriptions() ([]models.Subscription, error) {
	rows, err := s.db.Query("SELECT day_id, day_name, date FROM subscriptions ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.DayID, &sub.DayName, &sub.Date); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *SQLiteStore) HasSubscription(dayID string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM subscriptions WHERE day_id = ?", dayID)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQLiteStore) SaveJob(job models.Job) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO jobs (name, kind, run_at, payload) VALUES (?, ?, ?, ?)",
		job.Name, job.Kind, job.RunAt.Format(time.RFC3339), job.Payload,
	)
	return err
}

func (s *SQLiteStore) DeleteJob(name string) error {
	_, err := s.db.Exec("DELETE FROM jobs WHERE name = ?", name)
	return err
}

func (s *SQLiteStore) GetJobs() ([]models.Job, error) {
	rows, err := s.db.Query("SELECT name, kind, run_at, payload FROM jobs ORDER BY run_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		var runAt string
		if err := rows.Scan(&job.Name, &job.Kind, &runAt, &job.Payload); err != nil {
			return nil, err
		}
		job.RunAt, err = time.Parse(time.RFC3339, runAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run_at for job %s: %w", job.Name, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
