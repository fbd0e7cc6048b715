package ds

import "time"

// Identity file types uploaded through the intake flow.
const (
	FileTypeDocFront  = "doc_front"
	FileTypeDocBack   = "doc_back"
	FileTypeSelfieDoc = "selfie_doc"
)

// ServiceRequest is the intake record that owns a client's uploaded
// identity files. An order references at most one.
type ServiceRequest struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	ClientEmail string `gorm:"type:varchar(150);index"`
	CreatedAt   time.Time
}

// IdentityFile is one uploaded identity document. At most one per type
// per service request in normal operation.
type IdentityFile struct {
	ID               uint   `gorm:"primaryKey"`
	ServiceRequestID string `gorm:"type:uuid;not null;index"`
	FileType         string `gorm:"type:varchar(20);not null"`
	StoragePath      string `gorm:"type:varchar(500);not null"`
	CreatedAt        time.Time
}
