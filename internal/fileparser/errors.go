package fileparser

import "errors"

var (
	// ErrEmptyFile means the input contained no bytes at all.
	ErrEmptyFile = errors.New("file is empty")

	// ErrNoHeaders means no non-blank row was available to act as the
	// header row.
	ErrNoHeaders = errors.New("no header row found")

	// ErrNoData means a header row exists but no data rows follow it.
	ErrNoData = errors.New("no data rows found")

	// ErrUnsupportedFormat means the file extension maps to no parser.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
