package docgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"visaportal/internal/app/ds"
	"visaportal/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// Generator runs the whole pipeline for one invocation. It holds no
// mutable state across invocations; concurrent regenerations for the
// same order race on the PDF URL columns with last-writer-wins, which
// is accepted.
type Generator struct {
	Records RecordStore
	Objects ObjectStore
	Images  *ImageResolver
	Now     func() time.Time
}

func New(records RecordStore, objects ObjectStore) *Generator {
	return &Generator{
		Records: records,
		Objects: objects,
		Images:  NewImageResolver(objects),
		Now:     time.Now,
	}
}

// Identity image slots in document order.
var identitySlots = []struct {
	FileType string
	Label    string
}{
	{ds.FileTypeDocFront, "Identity Document (front)"},
	{ds.FileTypeDocBack, "Identity Document (back)"},
	{ds.FileTypeSelfieDoc, "Selfie with Document"},
}

// Generate produces one document for an order and returns its public
// URL and storage path. Only a missing order or a failed upload abort
// the request; every other problem degrades gracefully and is logged.
// Payment status is deliberately not checked here; callers invoke this
// after payment completion.
func (g *Generator) Generate(ctx context.Context, orderID string, docType DocType) (*Result, error) {
	order, err := g.Records.OrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order %s: %w", orderID, err)
	}

	serviceName := order.ProductSlug
	product, err := g.Records.ProductBySlug(ctx, order.ProductSlug)
	switch {
	case err == nil:
		serviceName = product.Name
	case errors.Is(err, repository.ErrNotFound):
		logrus.Warnf("order %s: unknown product %s, printing raw slug", order.ID, order.ProductSlug)
	default:
		logrus.Warnf("order %s: product lookup failed: %v", order.ID, err)
	}

	var terms string
	if docType == DocAnnex {
		terms = g.resolveAnnexTerms(ctx, order.ProductSlug)
	} else {
		terms = g.resolveContractTerms(ctx, order.ProductSlug)
	}

	identity := g.resolveIdentity(ctx, order)

	data := documentData{
		Order:       order,
		ServiceName: serviceName,
		Terms:       terms,
		Amount:      DeriveDisplayAmount(order),
		GeneratedAt: g.Now(),
	}

	// Fetch images in the fixed slot order; a failed fetch keeps the
	// slot with nil data so the composer prints the placeholder.
	for _, slot := range identitySlots {
		ref, ok := identity.FileRefs[slot.FileType]
		if !ok {
			continue
		}
		data.Images = append(data.Images, documentImage{
			Label: slot.Label,
			Data:  g.Images.Resolve(ctx, ref),
		})
	}
	if identity.SignatureRef != "" {
		data.Signature = g.Images.Resolve(ctx, identity.SignatureRef)
	}

	var pdfBytes []byte
	if docType == DocAnnex {
		pdfBytes, err = composeAnnex(data)
	} else {
		pdfBytes, err = composeContract(data)
	}
	if err != nil {
		return nil, fmt.Errorf("compose %s for order %s: %w", docType, order.ID, err)
	}

	url, path, err := g.publish(ctx, order, docType, pdfBytes)
	if err != nil {
		return nil, err
	}

	logrus.Infof("order %s: %s document generated (%d bytes) at %s",
		order.ID, docType, len(pdfBytes), path)
	return &Result{PDFURL: url, FilePath: path}, nil
}
