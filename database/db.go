package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// New opens the SQLite database at dbPath, creating the parent directory
// if needed. Foreign key enforcement is requested in the DSN so every
// pooled connection has it on.
func New(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One session, one engine connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			nickname TEXT UNIQUE NOT NULL,
			registration_date INTEGER NOT NULL,
			password TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS user_profile (
			user_profile_id INTEGER PRIMARY KEY,
			user_id INTEGER NOT NULL,
			firstname TEXT,
			lastname TEXT,
			email TEXT,
			website TEXT,
			rating REAL DEFAULT 0,
			age INTEGER,
			gender TEXT,
			FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS goals (
			goal_id INTEGER PRIMARY KEY,
			parent_id INTEGER,
			user_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			topic TEXT,
			description TEXT,
			deadline INTEGER,
			status REAL DEFAULT 0,
			FOREIGN KEY (parent_id) REFERENCES goals(goal_id) ON DELETE CASCADE,
			FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS resources (
			resource_id INTEGER PRIMARY KEY,
			goal_id INTEGER NOT NULL,
			user_id INTEGER,
			title TEXT NOT NULL,
			link TEXT,
			topic TEXT,
			description TEXT,
			required_time INTEGER,
			rating REAL DEFAULT 0,
			FOREIGN KEY (goal_id) REFERENCES goals(goal_id) ON DELETE CASCADE,
			FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE SET NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_profile_user ON user_profile(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_deadline ON goals(deadline)`,
		`CREATE INDEX IF NOT EXISTS idx_resources_goal ON resources(goal_id)`,
		`CREATE INDEX IF NOT EXISTS idx_resources_user ON resources(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
