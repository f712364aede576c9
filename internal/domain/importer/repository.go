package importer

import "context"

// BatchRepository defines data access for import batches.
type BatchRepository interface {
	// FindByFilename returns ErrBatchNotFound when no batch carries the
	// filename.
	FindByFilename(ctx context.Context, filename string) (Batch, error)
	FindByID(ctx context.Context, id int) (Batch, error)
	Create(ctx context.Context, b Batch) (Batch, error)
	List(ctx context.Context) ([]Batch, error)
}

// Service - the import orchestrator.
type Service interface {
	// ImportFiles processes each file in its own transaction; one
	// failing file never rolls back or blocks its siblings.
	ImportFiles(ctx context.Context, files []FilePayload) (ImportResult, error)
	ListBatches(ctx context.Context) ([]BatchResponse, error)
}
