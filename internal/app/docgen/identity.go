package docgen

import (
	"context"
	"errors"
	"strings"

	"visaportal/internal/app/ds"
	"visaportal/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// Product slug suffixes of the annex family: orders for these products
// inherit identity files and signature from the client's matching
// selection-process order.
const (
	suffixScholarship      = "-scholarship"
	suffixI20Control       = "-i20-control"
	suffixSelectionProcess = "-selection-process"
)

// selectionProcessSlug returns the sibling slug an annex-family product
// inherits identity data from, and whether the slug belongs to the
// family at all.
func selectionProcessSlug(productSlug string) (string, bool) {
	for _, suffix := range []string{suffixScholarship, suffixI20Control} {
		if strings.HasSuffix(productSlug, suffix) {
			return strings.TrimSuffix(productSlug, suffix) + suffixSelectionProcess, true
		}
	}
	return "", false
}

// identityContext is the outcome of the identity decision procedure:
// whose service request supplies the files and which signature reference
// applies. FileRefs holds at most one storage reference per file type.
type identityContext struct {
	ServiceRequestID   *string
	FileRefs           map[string]string
	SignatureRef       string // empty = no signature available anywhere
	InheritedFromOrder string // predecessor order id, empty when using own data
}

// resolveIdentity applies the inheritance rules: annex-family orders use
// the most recent qualifying selection-process order of the same client
// email; everything else (and the documented fallback when no
// predecessor exists) uses the order's own service request. The order's
// own signature always wins over the predecessor's.
func (g *Generator) resolveIdentity(ctx context.Context, order *ds.Order) identityContext {
	ic := identityContext{FileRefs: map[string]string{}}

	serviceRequestID := order.ServiceRequestID
	var predecessorSignature *string

	if siblingSlug, ok := selectionProcessSlug(order.ProductSlug); ok {
		pred, err := g.Records.LatestPredecessor(ctx, order.ClientEmail, siblingSlug)
		switch {
		case err == nil:
			// Matching is by raw email equality; log both ids so reused
			// emails can be audited.
			logrus.Infof("order %s inherits identity from order %s (%s, %s)",
				order.ID, pred.ID, siblingSlug, order.ClientEmail)
			serviceRequestID = pred.ServiceRequestID
			predecessorSignature = pred.SignatureImage
			ic.InheritedFromOrder = pred.ID
		case errors.Is(err, repository.ErrNotFound):
			logrus.Warnf("order %s: no %s predecessor for %s, falling back to own service request",
				order.ID, siblingSlug, order.ClientEmail)
		default:
			logrus.Warnf("order %s: predecessor lookup failed: %v", order.ID, err)
		}
	}

	ic.ServiceRequestID = serviceRequestID
	if serviceRequestID != nil {
		files, err := g.Records.IdentityFilesByServiceRequest(ctx, *serviceRequestID)
		if err != nil {
			logrus.Warnf("order %s: identity files lookup failed: %v", order.ID, err)
		}
		for _, f := range files {
			// first file of each type wins; duplicates are abnormal
			if _, exists := ic.FileRefs[f.FileType]; !exists {
				ic.FileRefs[f.FileType] = f.StoragePath
			}
		}
	}

	if order.SignatureImage != nil && *order.SignatureImage != "" {
		ic.SignatureRef = *order.SignatureImage
	} else if predecessorSignature != nil && *predecessorSignature != "" {
		ic.SignatureRef = *predecessorSignature
	}

	return ic
}
