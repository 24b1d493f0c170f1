package document

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRequest_Validate(t *testing.T) {
	req := UploadRequest{
		FileName:    "../contract.pdf",
		Size:        1024,
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4"),
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, TypeOther, req.DocumentType)
	assert.Equal(t, "contract.pdf", req.FileName)
}

func TestUploadRequest_Validate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		req     UploadRequest
		message string
	}{
		{"no file", UploadRequest{}, "No file uploaded"},
		{"too large", UploadRequest{Size: 12 << 20, ContentType: "application/pdf", Content: strings.NewReader("")}, "File too large. Maximum size is 10MB"},
		{"not pdf", UploadRequest{Size: 10, ContentType: "image/png", Content: strings.NewReader("")}, "Only PDF files are allowed"},
		{"bad type", UploadRequest{Size: 10, ContentType: "application/pdf", DocumentType: "invoice", Content: strings.NewReader("")}, "Invalid document type"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.Message(), c.message)
		})
	}
}

func TestUploadRequest_Validate_ExactLimit(t *testing.T) {
	req := UploadRequest{Size: MaxFileSize, ContentType: "application/pdf", DocumentType: TypeContract, Content: strings.NewReader("")}

	assert.NoError(t, req.Validate())
}
