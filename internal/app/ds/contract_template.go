package ds

import "time"

// Template types for the two generated documents.
const (
	TemplateTypeVisaService     = "visa_service"
	TemplateTypeChargebackAnnex = "chargeback_annex"
)

// ContractTemplate holds the rich-text legal terms for a document type.
// ProductSlug nil means the row applies globally. For a given
// (type, product) pair at most one active row is authoritative.
type ContractTemplate struct {
	ID           uint    `gorm:"primaryKey"`
	TemplateType string  `gorm:"type:varchar(30);not null;index"`
	ProductSlug  *string `gorm:"type:varchar(100);default:null;index"`
	Content      string  `gorm:"type:text;not null"`
	IsActive     bool    `gorm:"type:boolean;default:true;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
