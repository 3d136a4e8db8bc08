// Package cache persists completed translations in a local sqlite
// database so repeated texts skip the provider call. The key covers
// everything that changes the provider output: text, language pair and
// formality.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	text        TEXT NOT NULL,
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	formality   TEXT NOT NULL,
	translation TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	PRIMARY KEY (text, source_lang, target_lang, formality)
)`

// Cache is a sqlite-backed translation cache.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached translation for the key, if any.
func (c *Cache) Get(ctx context.Context, text, sourceLang, targetLang, formality string) (string, bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT translation FROM translations
		 WHERE text = ? AND source_lang = ? AND target_lang = ? AND formality = ?`,
		text, sourceLang, targetLang, formality)

	var translation string
	if err := row.Scan(&translation); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read cache: %w", err)
	}
	return translation, true, nil
}

// Put stores a translation, replacing any previous value for the key.
func (c *Cache) Put(ctx context.Context, text, sourceLang, targetLang, formality, translation string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO translations
		 (text, source_lang, target_lang, formality, translation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		text, sourceLang, targetLang, formality, translation, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
