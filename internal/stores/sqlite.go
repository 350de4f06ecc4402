package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database file at path and
// migrates it.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// One writer at a time; sqlite locks the whole file anyway.
	db.SetMaxOpenConns(1)
	if err := migrateSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveGame(ctx context.Context, gs GameState) error {
	if gs.UpdatedAt.IsZero() {
		gs.UpdatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (user_id, game_number, word_count, word_length, elapsed_ms, language, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			game_number = excluded.game_number,
			word_count = excluded.word_count,
			word_length = excluded.word_length,
			elapsed_ms = excluded.elapsed_ms,
			language = excluded.language,
			updated_at = excluded.updated_at`,
		gs.UserID, gs.GameNumber, gs.Count, gs.Length, gs.ElapsedMS, gs.Language, gs.UpdatedAt.UTC())
	return err
}

func (s *SQLiteStore) LoadGame(ctx context.Context, userID int) (GameState, error) {
	gs := GameState{UserID: userID}
	err := s.db.QueryRowContext(ctx, `
		SELECT game_number, word_count, word_length, elapsed_ms, language, updated_at
		FROM games WHERE user_id = ?`, userID).
		Scan(&gs.GameNumber, &gs.Count, &gs.Length, &gs.ElapsedMS, &gs.Language, &gs.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GameState{}, ErrNotFound
	}
	if err != nil {
		return GameState{}, err
	}
	return gs, nil
}

func (s *SQLiteStore) DeleteGame(ctx context.Context, userID int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE user_id = ?`, userID)
	return err
}

func (s *SQLiteStore) AddScore(ctx context.Context, sc Score) error {
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scores (user_id, username, seconds, word_count, word_length, game_number, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sc.UserID, sc.Username, sc.Seconds, sc.Count, sc.Length, sc.GameNumber, sc.CreatedAt.UTC())
	return err
}

func (s *SQLiteStore) TopScores(ctx context.Context, count, length, limit int) ([]Score, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, username, seconds, game_number, created_at
		FROM scores
		WHERE word_count = ? AND word_length = ?
		ORDER BY seconds ASC, created_at ASC
		LIMIT ?`, count, length, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var scores []Score
	for rows.Next() {
		sc := Score{Count: count, Length: length}
		if err := rows.Scan(&sc.UserID, &sc.Username, &sc.Seconds, &sc.GameNumber, &sc.CreatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
