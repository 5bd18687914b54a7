package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"kahramana-backend/internal/domains/cart/model"
)

// Schema creates the snapshot table used by the postgres storage
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS cart_snapshots (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cart_snapshots_expires_at ON cart_snapshots (expires_at)`,
}

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresStorage struct {
	db  DBTX
	ttl time.Duration
	now func() time.Time
}

// NewPostgresStorage stores one row per cart key. A zero ttl keeps rows
// forever.
func NewPostgresStorage(db DBTX, ttl time.Duration) Storage {
	return &postgresStorage{db: db, ttl: ttl, now: time.Now}
}

func (s *postgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT payload
		FROM cart_snapshots
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)
	`

	var payload []byte
	err := s.db.QueryRow(ctx, query, key, s.now()).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}
	return payload, nil
}

func (s *postgresStorage) Save(ctx context.Context, key string, snapshot []byte) error {
	query := `
		INSERT INTO cart_snapshots (key, payload, updated_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload,
		    updated_at = EXCLUDED.updated_at,
		    expires_at = EXCLUDED.expires_at
	`

	now := s.now()
	var expiresAt *time.Time
	if s.ttl > 0 {
		t := now.Add(s.ttl)
		expiresAt = &t
	}

	// payload goes in as text so postgres parses it into jsonb
	if _, err := s.db.Exec(ctx, query, key, string(snapshot), now, expiresAt); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

func (s *postgresStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM cart_snapshots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

// PurgeExpired removes snapshots past their expiry and returns how many
// rows were deleted
func PurgeExpired(ctx context.Context, db DBTX, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM cart_snapshots WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cart snapshots: %w", err)
	}
	return tag.RowsAffected(), nil
}
