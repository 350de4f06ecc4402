package stores

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore connects to an already-migrated database. See MigratePostgres.
func NewPGStore(ctx context.Context, uri string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PGStore{pool: pool}, nil
}

func toPGTimestamp(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		t = time.Now()
	}
	return pgtype.Timestamptz{Valid: true, Time: t}
}

func (s *PGStore) SaveGame(ctx context.Context, gs GameState) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO games (user_id, game_number, word_count, word_length, elapsed_ms, language, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			game_number = EXCLUDED.game_number,
			word_count = EXCLUDED.word_count,
			word_length = EXCLUDED.word_length,
			elapsed_ms = EXCLUDED.elapsed_ms,
			language = EXCLUDED.language,
			updated_at = EXCLUDED.updated_at`,
		gs.UserID, gs.GameNumber, gs.Count, gs.Length, gs.ElapsedMS, gs.Language, toPGTimestamp(gs.UpdatedAt))
	return err
}

func (s *PGStore) LoadGame(ctx context.Context, userID int) (GameState, error) {
	gs := GameState{UserID: userID}
	var updated pgtype.Timestamptz
	err := s.pool.QueryRow(ctx, `
		SELECT game_number, word_count, word_length, elapsed_ms, language, updated_at
		FROM games WHERE user_id = $1`, userID).
		Scan(&gs.GameNumber, &gs.Count, &gs.Length, &gs.ElapsedMS, &gs.Language, &updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return GameState{}, ErrNotFound
	}
	if err != nil {
		return GameState{}, err
	}
	gs.UpdatedAt = updated.Time
	return gs, nil
}

func (s *PGStore) DeleteGame(ctx context.Context, userID int) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM games WHERE user_id = $1`, userID)
	return err
}

func (s *PGStore) AddScore(ctx context.Context, sc Score) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO scores (user_id, username, seconds, word_count, word_length, game_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sc.UserID, sc.Username, sc.Seconds, sc.Count, sc.Length, sc.GameNumber, toPGTimestamp(sc.CreatedAt))
	return err
}

func (s *PGStore) TopScores(ctx context.Context, count, length, limit int) ([]Score, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, username, seconds, game_number, created_at
		FROM scores
		WHERE word_count = $1 AND word_length = $2
		ORDER BY seconds ASC, created_at ASC
		LIMIT $3`, count, length, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var scores []Score
	for rows.Next() {
		sc := Score{Count: count, Length: length}
		var created pgtype.Timestamptz
		if err := rows.Scan(&sc.UserID, &sc.Username, &sc.Seconds, &sc.GameNumber, &created); err != nil {
			return nil, err
		}
		sc.CreatedAt = created.Time
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}
