package model

import "time"

// DocumentType classifies a project document.
type DocumentType string

const (
	DocumentTypePlan     DocumentType = "plan"
	DocumentTypeContract DocumentType = "contract"
	DocumentTypePermit   DocumentType = "permit"
	DocumentTypeReport   DocumentType = "report"
	DocumentTypeOther    DocumentType = "other"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypePlan, DocumentTypeContract, DocumentTypePermit, DocumentTypeReport, DocumentTypeOther:
		return true
	}
	return false
}

// Document represents a file attached to a project. Size is a display string,
// not a byte count.
type Document struct {
	ID         string       `json:"id"`
	ProjectID  string       `json:"project_id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	Size       string       `json:"size"`
	UploadedBy string       `json:"uploaded_by"`
	UploadedAt time.Time    `json:"uploaded_at"`
}
