package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const documentColumns = `id, employee_id, document_type, file_name, original_name, file_size, uploaded_at`

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(&d.ID, &d.EmployeeID, &d.DocumentType, &d.FileName, &d.OriginalName, &d.FileSize, &d.UploadedAt)
	return d, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, newDocument document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (employee_id, document_type, file_name, original_name, file_size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query,
		newDocument.EmployeeID,
		newDocument.DocumentType,
		newDocument.FileName,
		newDocument.OriginalName,
		newDocument.FileSize,
		newDocument.UploadedAt,
	))
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return created, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanDocument(q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document with id %s: %w", id, err)
	}
	return found, nil
}

// List implements document.DocumentRepository.
func (r *documentRepositoryImpl) List(ctx context.Context) ([]document.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.employee_id, d.document_type, d.file_name, d.original_name, d.file_size, d.uploaded_at,
			   u.id, u.first_name, u.last_name, u.email, e.department
		FROM documents d
		JOIN employees e ON e.id = d.employee_id
		JOIN users u ON u.id = e.user_id
		ORDER BY d.uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	records := make([]document.Record, 0)
	for rows.Next() {
		var rec document.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.DocumentType,
			&rec.FileName,
			&rec.OriginalName,
			&rec.FileSize,
			&rec.UploadedAt,
			&rec.UserID,
			&rec.FirstName,
			&rec.LastName,
			&rec.Email,
			&rec.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return records, nil
}

// ListByEmployee implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents WHERE employee_id = $1 ORDER BY uploaded_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]document.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}

// Delete implements document.DocumentRepository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}
