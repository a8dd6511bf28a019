package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/reel/internal/db"
)

// Position is the page last shown for a folder.
type Position struct {
	Folder    string
	Page      int
	UpdatedAt time.Time
}

func getPosition(db *sql.DB, folder string) (int, bool, error) {
	var page int
	err := db.QueryRow(`SELECT page FROM folder_positions WHERE folder = ?`, folder).Scan(&page)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return page, true, nil
}

func savePositions(db *sql.DB, positions map[string]int, now time.Time) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO folder_positions (folder, page, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(folder) DO UPDATE SET
				page = excluded.page,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for folder, page := range positions {
			if _, err := stmt.Exec(folder, page, now.UnixNano()); err != nil {
				return err
			}
		}
		return nil
	})
}

func recentPositions(db *sql.DB, limit int) ([]Position, error) {
	rows, err := db.Query(`
		SELECT folder, page, updated_at FROM folder_positions
		ORDER BY updated_at DESC, folder
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var p Position
		var updated int64
		if err := rows.Scan(&p.Folder, &p.Page, &updated); err != nil {
			return nil, err
		}
		p.UpdatedAt = time.Unix(0, updated)
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func getLastFolder(db *sql.DB) (string, error) {
	var folder sql.NullString
	err := db.QueryRow(`SELECT last_folder FROM app_state WHERE id = 1`).Scan(&folder)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return dbutil.NullStringValue(folder), nil
}

func saveLastFolder(db *sql.DB, folder string) error {
	_, err := db.Exec(`
		INSERT INTO app_state (id, last_folder)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET last_folder = excluded.last_folder
	`, folder)
	return err
}
