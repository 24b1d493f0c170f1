package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// sniffLen is how much of an upload is inspected to detect its real type.
const sniffLen = 512

var errNotPDF = validator.ValidationErrors{{Field: "document", Message: "Only PDF files are allowed"}}

type documentServiceImpl struct {
	documentRepo document.DocumentRepository
	employeeRepo employee.EmployeeRepository
	storage      storage.FileStorage
	clock        clock.Clock
}

func NewDocumentService(
	documentRepo document.DocumentRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
	clk clock.Clock,
) document.DocumentService {
	return &documentServiceImpl{
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
		storage:      fileStorage,
		clock:        clk,
	}
}

// Upload implements document.DocumentService.
func (s *documentServiceImpl) Upload(ctx context.Context, identity user.Identity, req document.UploadRequest) (document.Document, error) {
	if err := req.Validate(); err != nil {
		metrics.DocumentUploads.WithLabelValues("rejected").Inc()
		return document.Document{}, err
	}

	profile, err := s.employeeRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return document.Document{}, err
	}

	// Sniff the head of the stream, then replay it in front of the rest.
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(req.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		metrics.DocumentUploads.WithLabelValues("failed").Inc()
		return document.Document{}, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if !mimetype.Detect(head).Is(document.PDFContentType) {
		metrics.DocumentUploads.WithLabelValues("rejected").Inc()
		return document.Document{}, errNotPDF
	}
	content := io.MultiReader(bytes.NewReader(head), req.Content)

	blobPath := path.Join("documents", profile.ID, fmt.Sprintf("%s-%s.pdf", req.DocumentType, uuid.New().String()))
	storedPath, err := s.storage.Upload(ctx, content, blobPath, document.PDFContentType)
	if err != nil {
		metrics.DocumentUploads.WithLabelValues("failed").Inc()
		return document.Document{}, fmt.Errorf("failed to upload document: %w", err)
	}

	created, err := s.documentRepo.Create(ctx, document.Document{
		EmployeeID:   profile.ID,
		DocumentType: req.DocumentType,
		FileName:     storedPath,
		OriginalName: req.FileName,
		FileSize:     req.Size,
		UploadedAt:   s.clock.Now(),
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, storedPath); delErr != nil {
			slog.Warn("failed to remove orphaned document", "path", storedPath, "error", delErr)
		}
		metrics.DocumentUploads.WithLabelValues("failed").Inc()
		return document.Document{}, err
	}

	metrics.DocumentUploads.WithLabelValues("stored").Inc()
	return created, nil
}

// ListAll implements document.DocumentService.
func (s *documentServiceImpl) ListAll(ctx context.Context) ([]document.Record, error) {
	return s.documentRepo.List(ctx)
}

// ListMine implements document.DocumentService.
func (s *documentServiceImpl) ListMine(ctx context.Context, identity user.Identity) ([]document.Document, error) {
	profile, err := s.employeeRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	return s.documentRepo.ListByEmployee(ctx, profile.ID)
}

// authorize loads a document the caller may act on.
func (s *documentServiceImpl) authorize(ctx context.Context, identity user.Identity, id string) (document.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return document.Document{}, err
	}
	if user.HasPermission(identity.Role, user.PermissionDocumentManageAll) {
		return doc, nil
	}

	profile, err := s.employeeRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) {
			return document.Document{}, user.ErrAccessDenied
		}
		return document.Document{}, err
	}
	if profile.ID != doc.EmployeeID {
		return document.Document{}, user.ErrAccessDenied
	}
	return doc, nil
}

// Download implements document.DocumentService.
func (s *documentServiceImpl) Download(ctx context.Context, identity user.Identity, id string) (document.Download, error) {
	doc, err := s.authorize(ctx, identity, id)
	if err != nil {
		return document.Download{}, err
	}

	body, err := s.storage.Download(ctx, doc.FileName)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return document.Download{}, document.ErrFileMissing
		}
		return document.Download{}, fmt.Errorf("failed to open document %s: %w", id, err)
	}

	return document.Download{
		FileName:    doc.OriginalName,
		ContentType: document.PDFContentType,
		Size:        doc.FileSize,
		Body:        body,
	}, nil
}

// Delete implements document.DocumentService.
func (s *documentServiceImpl) Delete(ctx context.Context, identity user.Identity, id string) error {
	doc, err := s.authorize(ctx, identity, id)
	if err != nil {
		return err
	}

	exists, err := s.storage.Exists(ctx, doc.FileName)
	switch {
	case err != nil:
		slog.Warn("failed to check document blob", "path", doc.FileName, "error", err)
	case !exists:
		slog.Warn("document blob missing", "document_id", doc.ID, "path", doc.FileName)
	default:
		if err := s.storage.Delete(ctx, doc.FileName); err != nil {
			slog.Warn("failed to delete document blob", "path", doc.FileName, "error", err)
		}
	}

	return s.documentRepo.Delete(ctx, doc.ID)
}

// EmployeeFiles implements document.DocumentService.
func (s *documentServiceImpl) EmployeeFiles(ctx context.Context, employeeID string) ([]string, error) {
	docs, err := s.documentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		paths = append(paths, d.FileName)
	}
	return paths, nil
}

// RemoveFiles implements document.DocumentService.
func (s *documentServiceImpl) RemoveFiles(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := s.storage.Delete(ctx, p); err != nil {
			slog.Warn("failed to delete document blob", "path", p, "error", err)
		}
	}
}
