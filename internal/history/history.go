// Package history provides optional PostgreSQL persistence of conversion runs.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateConversion creates a new conversion record and returns its ID
func (s *Store) CreateConversion(ctx context.Context, source string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO conversions (source, status)
		 VALUES ($1, $2)
		 RETURNING id`,
		source, StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create conversion: %w", err)
	}
	return id, nil
}

// CompleteConversion marks a conversion as finished with its output details
func (s *Store) CompleteConversion(ctx context.Context, id uuid.UUID, outputPath string, pages, sizeBytes int, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE conversions
		 SET output_path = $1, pages = $2, size_bytes = $3, status = $4, completed_at = NOW()
		 WHERE id = $5`,
		outputPath, pages, sizeBytes, status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete conversion: %w", err)
	}
	return nil
}

// ListRecent returns the most recent conversions, newest first
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Conversion, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, source, COALESCE(output_path, ''), pages, size_bytes, status, created_at, completed_at
		 FROM conversions
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	var conversions []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.Source, &c.OutputPath, &c.Pages, &c.SizeBytes, &c.Status, &c.CreatedAt, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conversions: %w", err)
	}
	return conversions, nil
}
