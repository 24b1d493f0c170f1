package document

import (
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

// UploadRequest describes a received multipart file. Content is read only
// after Validate has accepted the declared metadata.
type UploadRequest struct {
	DocumentType Type
	FileName     string
	Size         int64
	ContentType  string
	Content      io.Reader
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Content == nil {
		errs = append(errs, validator.ValidationError{Field: "document", Message: "No file uploaded"})
		return errs
	}
	if r.Size > MaxFileSize {
		errs = append(errs, validator.ValidationError{Field: "document", Message: "File too large. Maximum size is 10MB"})
	}
	if mediaType, _, err := mime.ParseMediaType(r.ContentType); err != nil || mediaType != PDFContentType {
		errs = append(errs, validator.ValidationError{Field: "document", Message: "Only PDF files are allowed"})
	}

	r.DocumentType = Type(strings.TrimSpace(string(r.DocumentType)))
	if r.DocumentType == "" {
		r.DocumentType = TypeOther
	}
	if !r.DocumentType.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "documentType", Message: "Invalid document type"})
	}

	r.FileName = filepath.Base(strings.TrimSpace(r.FileName))
	if r.FileName == "." || r.FileName == string(filepath.Separator) {
		r.FileName = "document.pdf"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Download is an opened document blob. Callers must close Body.
type Download struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
