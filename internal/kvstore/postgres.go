package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/hamzfitness/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, db *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &PostgresStore{
		db: db,
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.postgres.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	var value []byte
	err = s.db.QueryRow(
		ctx,
		`SELECT value FROM kv WHERE key = $1;`,
		key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query kv value: %w", err)
	}

	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.postgres.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))
	span.SetAttributes(attribute.Int("value.size", len(value)))

	if _, err := s.db.Exec(
		ctx,
		`INSERT INTO kv (key, value, updated_at)
			VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value, updated_at = now();`,
		key, value,
	); err != nil {
		return fmt.Errorf("upsert kv value: %w", err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.postgres.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	if _, err := s.db.Exec(
		ctx,
		`DELETE FROM kv WHERE key = $1;`,
		key,
	); err != nil {
		return fmt.Errorf("delete kv value: %w", err)
	}

	return nil
}
