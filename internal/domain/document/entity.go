package document

import (
	"time"
)

type Type string

const (
	TypeContract    Type = "contract"
	TypeCertificate Type = "certificate"
	TypeReport      Type = "report"
	TypeOther       Type = "other"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeContract, TypeCertificate, TypeReport, TypeOther:
		return true
	}
	return false
}

const (
	MaxFileSize    = 10 << 20 // 10MB
	PDFContentType = "application/pdf"
)

type Document struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	DocumentType Type      `json:"documentType"`
	FileName     string    `json:"fileName"` // storage path
	OriginalName string    `json:"originalName"`
	FileSize     int64     `json:"fileSize"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// Record is a document joined with the owner's account for admin listings.
type Record struct {
	Document
	UserID     string `json:"userId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
