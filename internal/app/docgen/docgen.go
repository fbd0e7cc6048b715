// Package docgen implements the legal document generation pipeline: it
// turns an order record into a paginated PDF (the main visa service
// contract or the Annex I payment authorization), embedding identity
// photos, a handwritten signature image and payment-method-dependent
// financial figures, then uploads the result to the object store.
package docgen

import (
	"context"
	"errors"

	"visaportal/internal/app/ds"
)

// DocType selects which of the two documents to generate.
type DocType string

const (
	DocContract DocType = "contract"
	DocAnnex    DocType = "annex"
)

// Result is returned on successful generation.
type Result struct {
	PDFURL   string
	FilePath string
}

// Terminal errors. Everything else in the pipeline degrades gracefully
// and is only logged.
var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUploadFailed  = errors.New("document upload failed")
)

// RecordStore is the relational side of the pipeline. Implemented by
// repository.Repository; lookups report missing rows with an error that
// matches repository.ErrNotFound.
type RecordStore interface {
	OrderByID(ctx context.Context, id string) (*ds.Order, error)
	ProductBySlug(ctx context.Context, slug string) (*ds.Product, error)
	ActiveTemplate(ctx context.Context, templateType, productSlug string) (*ds.ContractTemplate, error)
	ActiveGlobalTemplate(ctx context.Context, templateType string) (*ds.ContractTemplate, error)
	LatestPredecessor(ctx context.Context, clientEmail, productSlug string) (*ds.Order, error)
	IdentityFilesByServiceRequest(ctx context.Context, serviceRequestID string) ([]ds.IdentityFile, error)
	SetContractPDFURL(ctx context.Context, orderID, url string) error
	SetAnnexPDFURL(ctx context.Context, orderID, url string) error
}

// ObjectStore is the object storage side. Implemented by
// storage.MinIOClient.
type ObjectStore interface {
	DownloadObject(ctx context.Context, bucket, path string) ([]byte, string, error)
	UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) error
	PublicURL(bucket, path string) string
}
