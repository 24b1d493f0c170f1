package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

// multipartOverhead is the room left for form fields and part headers on top
// of the file itself.
const multipartOverhead = 1 << 20

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

// Upload implements DocumentHandler.
func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, document.MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(w, "File too large. Maximum size is 10MB", map[string]string{"document": "File too large. Maximum size is 10MB"})
			return
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := document.UploadRequest{
		DocumentType: document.Type(r.FormValue("documentType")),
	}

	file, fileHeader, err := r.FormFile("document")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// Validate reports the missing file.
	case err != nil:
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	default:
		defer file.Close()
		req.Content = file
		req.FileName = fileHeader.Filename
		req.Size = fileHeader.Size
		req.ContentType = fileHeader.Header.Get("Content-Type")
	}

	created, err := h.documentService.Upload(r.Context(), identity, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, response.Body{
		"message":  "Document uploaded successfully",
		"document": created,
	})
}

// ListAll implements DocumentHandler.
func (h *documentHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	documents, err := h.documentService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"documents": documents})
}

// ListMine implements DocumentHandler.
func (h *documentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	documents, err := h.documentService.ListMine(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"documents": documents})
}

// Download implements DocumentHandler.
func (h *documentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", document.ErrDocumentNotFound)
	if !ok {
		return
	}

	dl, err := h.documentService.Download(r.Context(), identity, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer dl.Body.Close()

	w.Header().Set("Content-Type", dl.ContentType)
	w.Header().Set("Content-Disposition", response.Attachment(dl.FileName))
	if dl.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(dl.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, dl.Body); err != nil {
		slog.Error("document stream error", "document_id", id, "error", err)
	}
}

// Delete implements DocumentHandler.
func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", document.ErrDocumentNotFound)
	if !ok {
		return
	}

	if err := h.documentService.Delete(r.Context(), identity, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Document deleted successfully")
}
