package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pdfBody = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n"

var (
	jane  = user.Identity{UserID: "user-jane", Role: user.RoleEmployee}
	bob   = user.Identity{UserID: "user-bob", Role: user.RoleEmployee}
	admin = user.Identity{UserID: "user-admin", Role: user.RoleAdmin}
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byUser map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	e, ok := f.byUser[userID]
	if !ok {
		return employee.Employee{}, employee.ErrProfileNotFound
	}
	return e, nil
}

type fakeDocumentRepo struct {
	rows      []document.Document
	createErr error
}

func (f *fakeDocumentRepo) Create(ctx context.Context, d document.Document) (document.Document, error) {
	if f.createErr != nil {
		return document.Document{}, f.createErr
	}
	d.ID = fmt.Sprintf("doc-%d", len(f.rows)+1)
	f.rows = append(f.rows, d)
	return d, nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id string) (document.Document, error) {
	for _, d := range f.rows {
		if d.ID == id {
			return d, nil
		}
	}
	return document.Document{}, document.ErrDocumentNotFound
}

func (f *fakeDocumentRepo) List(ctx context.Context) ([]document.Record, error) {
	out := make([]document.Record, 0, len(f.rows))
	for _, d := range f.rows {
		out = append(out, document.Record{Document: d})
	}
	return out, nil
}

func (f *fakeDocumentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]document.Document, error) {
	out := make([]document.Document, 0)
	for _, d := range f.rows {
		if d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	for i, d := range f.rows {
		if d.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return document.ErrDocumentNotFound
}

// memStorage keeps blobs in memory and counts writes.
type memStorage struct {
	blobs  map[string][]byte
	writes int
}

func (m *memStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	m.writes++
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	m.blobs[path] = b
	return path, nil
}

func (m *memStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	b, ok := m.blobs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrFileNotFound, path)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memStorage) Delete(ctx context.Context, path string) error {
	delete(m.blobs, path)
	return nil
}

func (m *memStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := m.blobs[path]
	return ok, nil
}

type fixture struct {
	svc     document.DocumentService
	repo    *fakeDocumentRepo
	storage *memStorage
}

func newFixture() fixture {
	repo := &fakeDocumentRepo{}
	store := &memStorage{blobs: make(map[string][]byte)}
	employees := &fakeEmployeeRepo{byUser: map[string]employee.Employee{
		jane.UserID: {ID: "emp-jane", UserID: jane.UserID},
		bob.UserID:  {ID: "emp-bob", UserID: bob.UserID},
	}}
	clk := clock.Fixed(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
	return fixture{
		svc:     NewDocumentService(repo, employees, store, clk),
		repo:    repo,
		storage: store,
	}
}

func pdfUpload(docType document.Type) document.UploadRequest {
	return document.UploadRequest{
		DocumentType: docType,
		FileName:     "contract.pdf",
		Size:         int64(len(pdfBody)),
		ContentType:  "application/pdf",
		Content:      strings.NewReader(pdfBody),
	}
}

func TestUpload(t *testing.T) {
	f := newFixture()

	doc, err := f.svc.Upload(context.Background(), jane, pdfUpload(document.TypeContract))

	require.NoError(t, err)
	assert.Equal(t, "emp-jane", doc.EmployeeID)
	assert.Equal(t, "contract.pdf", doc.OriginalName)
	assert.Regexp(t, `^documents/emp-jane/contract-[0-9a-f-]{36}\.pdf$`, doc.FileName)
	assert.Equal(t, []byte(pdfBody), f.storage.blobs[doc.FileName])
}

func TestUpload_RejectedBeforeStore(t *testing.T) {
	cases := []struct {
		name    string
		req     document.UploadRequest
		message string
	}{
		{
			name:    "too large",
			req:     document.UploadRequest{FileName: "big.pdf", Size: 12 << 20, ContentType: "application/pdf", Content: strings.NewReader(pdfBody)},
			message: "File too large. Maximum size is 10MB",
		},
		{
			name:    "declared png",
			req:     document.UploadRequest{FileName: "a.png", Size: 10, ContentType: "image/png", Content: strings.NewReader(pdfBody)},
			message: "Only PDF files are allowed",
		},
		{
			name:    "pdf header lies",
			req:     document.UploadRequest{FileName: "fake.pdf", Size: 11, ContentType: "application/pdf", Content: strings.NewReader("hello world")},
			message: "Only PDF files are allowed",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.svc.Upload(context.Background(), jane, c.req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.Message(), c.message)
			assert.Zero(t, f.storage.writes)
			assert.Empty(t, f.repo.rows)
		})
	}
}

func TestUpload_NoProfile(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Upload(context.Background(), admin, pdfUpload(document.TypeReport))

	assert.ErrorIs(t, err, employee.ErrProfileNotFound)
	assert.Zero(t, f.storage.writes)
}

func TestUpload_MetadataFailureRemovesBlob(t *testing.T) {
	f := newFixture()
	f.repo.createErr = errors.New("insert failed")

	_, err := f.svc.Upload(context.Background(), jane, pdfUpload(document.TypeContract))

	require.Error(t, err)
	assert.Equal(t, 1, f.storage.writes)
	assert.Empty(t, f.storage.blobs)
}

func TestDownload_Access(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	doc, err := f.svc.Upload(ctx, jane, pdfUpload(document.TypeContract))
	require.NoError(t, err)

	dl, err := f.svc.Download(ctx, jane, doc.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	require.NoError(t, dl.Body.Close())
	assert.Equal(t, pdfBody, string(body))
	assert.Equal(t, "contract.pdf", dl.FileName)

	_, err = f.svc.Download(ctx, bob, doc.ID)
	assert.ErrorIs(t, err, user.ErrAccessDenied)

	dl, err = f.svc.Download(ctx, admin, doc.ID)
	require.NoError(t, err)
	dl.Body.Close()

	_, err = f.svc.Download(ctx, jane, "doc-404")
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestDownload_MissingBlob(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	doc, err := f.svc.Upload(ctx, jane, pdfUpload(document.TypeContract))
	require.NoError(t, err)
	delete(f.storage.blobs, doc.FileName)

	_, err = f.svc.Download(ctx, jane, doc.ID)

	assert.ErrorIs(t, err, document.ErrFileMissing)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	doc, err := f.svc.Upload(ctx, jane, pdfUpload(document.TypeContract))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, bob, doc.ID), user.ErrAccessDenied)

	require.NoError(t, f.svc.Delete(ctx, jane, doc.ID))
	assert.Empty(t, f.repo.rows)
	assert.Empty(t, f.storage.blobs)

	assert.ErrorIs(t, f.svc.Delete(ctx, jane, doc.ID), document.ErrDocumentNotFound)
}

func TestDelete_MissingBlobStillRemovesMetadata(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	doc, err := f.svc.Upload(ctx, jane, pdfUpload(document.TypeCertificate))
	require.NoError(t, err)
	delete(f.storage.blobs, doc.FileName)

	require.NoError(t, f.svc.Delete(ctx, admin, doc.ID))
	assert.Empty(t, f.repo.rows)
}

func TestEmployeeFilesAndRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first, err := f.svc.Upload(ctx, jane, pdfUpload(document.TypeContract))
	require.NoError(t, err)
	_, err = f.svc.Upload(ctx, bob, pdfUpload(document.TypeReport))
	require.NoError(t, err)

	paths, err := f.svc.EmployeeFiles(ctx, "emp-jane")
	require.NoError(t, err)
	assert.Equal(t, []string{first.FileName}, paths)

	f.svc.RemoveFiles(ctx, paths)
	assert.Len(t, f.storage.blobs, 1)
}
