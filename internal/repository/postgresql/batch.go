package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
)

type batchRepository struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) importer.BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) FindByFilename(ctx context.Context, filename string) (importer.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, filename, iso_week, company, city, created_at
		FROM import_batches
		WHERE filename = $1
	`

	var b importer.Batch
	err := q.QueryRow(ctx, query, filename).Scan(
		&b.ID, &b.Filename, &b.ISOWeek, &b.Company, &b.City, &b.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return importer.Batch{}, importer.ErrBatchNotFound
		}
		return importer.Batch{}, fmt.Errorf("failed to find batch by filename: %w", err)
	}

	return b, nil
}

func (r *batchRepository) FindByID(ctx context.Context, id int) (importer.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, filename, iso_week, company, city, created_at
		FROM import_batches
		WHERE id = $1
	`

	var b importer.Batch
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Filename, &b.ISOWeek, &b.Company, &b.City, &b.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return importer.Batch{}, importer.ErrBatchNotFound
		}
		return importer.Batch{}, fmt.Errorf("failed to find batch by id: %w", err)
	}

	return b, nil
}

func (r *batchRepository) Create(ctx context.Context, b importer.Batch) (importer.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO import_batches (filename, iso_week, company, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, b.Filename, b.ISOWeek, b.Company, b.City).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return importer.Batch{}, fmt.Errorf("failed to create import batch: %w", err)
	}

	return b, nil
}

func (r *batchRepository) List(ctx context.Context) ([]importer.Batch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, filename, iso_week, company, city, created_at
		FROM import_batches
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}
	defer rows.Close()

	var batches []importer.Batch
	for rows.Next() {
		var b importer.Batch
		if err := rows.Scan(&b.ID, &b.Filename, &b.ISOWeek, &b.Company, &b.City, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
