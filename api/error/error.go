package error

import "errors"

var (
	ErrNilContext      = errors.New("context must not be nil")
	ErrEmptySourcePath = errors.New("source path must not be empty")
	ErrMissingArgument = errors.New("csv file argument is required")
	ErrFileNotFound    = errors.New("file not found")
	ErrEmptyDataset    = errors.New("no valid data")
)
