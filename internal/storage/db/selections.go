package db

import (
	"fmt"

	"qlaunch/internal/domain"
)

// SaveSelection remembers the value chosen for a launch parameter of an install.
func (d *DB) SaveSelection(gamePath string, item domain.ItemType, value string) error {
	_, err := d.Exec(`
        INSERT INTO selections (game_path, item_type, value, updated_at)
        VALUES (?, ?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(game_path, item_type) DO UPDATE SET
            value = excluded.value,
            updated_at = CURRENT_TIMESTAMP
    `, gamePath, item.String(), value)
	if err != nil {
		return fmt.Errorf("saving %s selection: %w", item, err)
	}
	return nil
}

// GetSelections returns the remembered launch parameters of an install.
func (d *DB) GetSelections(gamePath string) (map[domain.ItemType]string, error) {
	rows, err := d.Query(`
        SELECT item_type, value
        FROM selections
        WHERE game_path = ?
    `, gamePath)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.ItemType]string)
	for rows.Next() {
		var kind, value string
		if err := rows.Scan(&kind, &value); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		item, err := domain.ParseItemType(kind)
		if err != nil {
			continue // Written by a newer version
		}
		out[item] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading selections: %w", err)
	}
	return out, nil
}

// ClearSelection forgets one launch parameter of an install.
func (d *DB) ClearSelection(gamePath string, item domain.ItemType) error {
	_, err := d.Exec("DELETE FROM selections WHERE game_path = ? AND item_type = ?", gamePath, item.String())
	if err != nil {
		return fmt.Errorf("clearing %s selection: %w", item, err)
	}
	return nil
}

// ClearSelections forgets every launch parameter of an install.
func (d *DB) ClearSelections(gamePath string) error {
	_, err := d.Exec("DELETE FROM selections WHERE game_path = ?", gamePath)
	if err != nil {
		return fmt.Errorf("clearing selections: %w", err)
	}
	return nil
}
