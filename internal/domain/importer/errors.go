package importer

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("file has no header row")
	ErrMissingColumn     = errors.New("required column missing")
	ErrBatchNotFound     = errors.New("import batch not found")
)
