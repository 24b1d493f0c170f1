package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("Document not found")
	ErrFileMissing      = errors.New("File not found on server")
)
