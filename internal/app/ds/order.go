package ds

import (
	"time"

	"gorm.io/datatypes"
)

// Payment methods accepted at checkout (closed set).
const (
	PaymentMethodPix          = "pix"
	PaymentMethodCard         = "card"
	PaymentMethodInstallments = "installments"
	PaymentMethodZelle        = "zelle"
	PaymentMethodManual       = "manual"
)

// Payment statuses written by the checkout/webhook side.
const (
	PaymentStatusPending       = "pending"
	PaymentStatusCompleted     = "completed"
	PaymentStatusManualPending = "manual_pending"
	PaymentStatusRefunded      = "refunded"
	PaymentStatusChargeback    = "chargeback"
)

// Order is the central entity. Created at checkout, mutated by payment
// webhooks (status, method, metadata) and by the document pipeline
// (PDF URL columns). Never deleted.
type Order struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	OrderNumber string `gorm:"type:varchar(30);uniqueIndex;not null"`
	ProductSlug string `gorm:"type:varchar(100);not null;index"`

	ClientName  string `gorm:"type:varchar(150);not null"`
	ClientEmail string `gorm:"type:varchar(150);not null;index"`
	ClientPhone string `gorm:"type:varchar(40)"`
	Country     string `gorm:"type:varchar(80)"`
	Nationality string `gorm:"type:varchar(80)"`

	PaymentMethod string `gorm:"type:varchar(20);not null"`
	PaymentStatus string `gorm:"type:varchar(20);not null;default:'pending'"`
	// Base-currency total. Stored as text because the checkout side writes
	// it verbatim; parsing happens at display time.
	TotalPriceUSD   string            `gorm:"type:numeric(12,2)"`
	PaymentMetadata datatypes.JSONMap `gorm:"type:jsonb"`

	ServiceRequestID *string    `gorm:"type:uuid;default:null"`
	SignatureImage   *string    `gorm:"type:varchar(500);default:null"` // storage ref, not a digital signature
	SignedAt         *time.Time `gorm:"default:null"`
	SignupIP         string     `gorm:"type:varchar(45)"`

	ContractPDFURL *string `gorm:"type:varchar(500);default:null"`
	AnnexPDFURL    *string `gorm:"type:varchar(500);default:null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}
