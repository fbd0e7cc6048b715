package docgen

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"visaportal/internal/app/ds"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Path prefixes inside the contracts bucket.
const (
	contractPathPrefix = "visa-contracts/"
	annexPathPrefix    = "visa-annexes/"
)

var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugifyName folds a client name to a lowercase ASCII object-path slug:
// accents stripped, anything outside [a-z0-9] collapsed to single
// underscores.
func slugifyName(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "client"
	}
	return b.String()
}

// objectPath derives the storage path for a generated document. The
// unix-timestamp suffix disambiguates regenerations on the same day;
// uploads overwrite, so collisions are harmless.
func objectPath(docType DocType, clientName, orderNumber string, now time.Time) string {
	base := fmt.Sprintf("%s_%s_%s_%d.pdf",
		slugifyName(clientName),
		strings.ToLower(orderNumber),
		now.Format("2006-01-02"),
		now.Unix())
	if docType == DocAnnex {
		return annexPathPrefix + "annex_i_" + base
	}
	return contractPathPrefix + base
}

// publish uploads the serialized document and writes the public URL back
// onto the order. Upload failure is terminal; the URL-column update is
// not, since the artifact already exists and regeneration is idempotent.
func (g *Generator) publish(ctx context.Context, order *ds.Order, docType DocType, pdfBytes []byte) (string, string, error) {
	path := objectPath(docType, order.ClientName, order.OrderNumber, g.Now())

	if err := g.Objects.UploadObject(ctx, BucketContracts, path, pdfBytes, "application/pdf"); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	url := g.Objects.PublicURL(BucketContracts, path)

	var updateErr error
	if docType == DocAnnex {
		updateErr = g.Records.SetAnnexPDFURL(ctx, order.ID, url)
	} else {
		updateErr = g.Records.SetContractPDFURL(ctx, order.ID, url)
	}
	if updateErr != nil {
		logrus.Errorf("order %s: %s generated at %s but url write-back failed: %v",
			order.ID, docType, path, updateErr)
	}

	return url, path, nil
}
