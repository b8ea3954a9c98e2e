package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertUser returns the ID for a username, creating the user row on first
// login.
func (d *Database) UpsertUser(ctx context.Context, username string) (int, error) {
	var id int
	err := d.ReadOnly.QueryRowContext(ctx, `
		SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("select user: %w", err)
	}

	result, err := d.ReadWrite.ExecContext(ctx, `
		INSERT INTO users (username) VALUES (?)
		ON CONFLICT (username) DO UPDATE SET username = excluded.username`,
		username)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	insertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user insert id: %w", err)
	}
	return int(insertID), nil
}
