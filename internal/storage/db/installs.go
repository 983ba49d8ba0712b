package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Install sources
const (
	SourceManual = "manual"
	SourceSteam  = "steam"
)

// Install is a game installation the launcher has recognized.
type Install struct {
	Path       string
	GameTitle  string
	Source     string
	DetectedAt time.Time
}

// SaveInstall records an installation, replacing an earlier record for the same path.
func (d *DB) SaveInstall(in Install) error {
	source := in.Source
	if source == "" {
		source = SourceManual
	}
	_, err := d.Exec(`
        INSERT INTO installs (path, game_title, source, detected_at)
        VALUES (?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(path) DO UPDATE SET
            game_title = excluded.game_title,
            source = excluded.source,
            detected_at = CURRENT_TIMESTAMP
    `, in.Path, in.GameTitle, source)
	if err != nil {
		return fmt.Errorf("saving install: %w", err)
	}
	return nil
}

// GetInstall returns the record for path, or nil when there is none.
func (d *DB) GetInstall(path string) (*Install, error) {
	var in Install
	err := d.QueryRow(`
        SELECT path, game_title, source, detected_at
        FROM installs
        WHERE path = ?
    `, path).Scan(&in.Path, &in.GameTitle, &in.Source, &in.DetectedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting install: %w", err)
	}
	return &in, nil
}

// GetInstalls returns the recorded installations ordered by path.
func (d *DB) GetInstalls() ([]Install, error) {
	rows, err := d.Query(`
        SELECT path, game_title, source, detected_at
        FROM installs
        ORDER BY path
    `)
	if err != nil {
		return nil, fmt.Errorf("querying installs: %w", err)
	}
	defer rows.Close()

	var out []Install
	for rows.Next() {
		var in Install
		if err := rows.Scan(&in.Path, &in.GameTitle, &in.Source, &in.DetectedAt); err != nil {
			return nil, fmt.Errorf("scanning install: %w", err)
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading installs: %w", err)
	}
	return out, nil
}

// DeleteInstall forgets an installation and its selections.
func (d *DB) DeleteInstall(path string) error {
	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM selections WHERE game_path = ?", path); err != nil {
		return fmt.Errorf("deleting selections: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM installs WHERE path = ?", path); err != nil {
		return fmt.Errorf("deleting install: %w", err)
	}
	return tx.Commit()
}
