package docgen

import (
	"time"

	"visaportal/internal/app/ds"
)

// documentImage is one identity image slot that has a storage reference.
// Data is nil when the fetch failed; the composer then prints the
// placeholder line instead.
type documentImage struct {
	Label string
	Data  *ImageData
}

// documentData gathers everything the composer consumes. All resolution
// (templates, identity inheritance, image fetches, amount derivation)
// happens before composition, so section order is deterministic.
type documentData struct {
	Order       *ds.Order
	ServiceName string
	Terms       string
	Amount      DisplayAmount
	Images      []documentImage
	Signature   *ImageData
	GeneratedAt time.Time
}

func paymentMethodLabel(method string) string {
	switch method {
	case ds.PaymentMethodPix:
		return "PIX (instant bank transfer)"
	case ds.PaymentMethodCard:
		return "Credit / debit card"
	case ds.PaymentMethodInstallments:
		return "Installment plan"
	case ds.PaymentMethodZelle:
		return "Zelle transfer"
	case ds.PaymentMethodManual:
		return "Manual (registered by seller)"
	}
	return method
}

// clientSection prints the client identification block.
func clientSection(c *composer, o *ds.Order) {
	c.sectionStart(headingHeight + 5*fieldLineHeight)
	c.heading("Client Information")
	c.labeledField("Full Name", o.ClientName)
	c.labeledField("Email", o.ClientEmail)
	c.labeledField("Phone", o.ClientPhone)
	c.labeledField("Country of Residence", o.Country)
	c.labeledField("Nationality", o.Nationality)
}

// paymentSection prints method, status and the method-specific metadata
// fields that identify what the client authorized.
func paymentSection(c *composer, o *ds.Order, amount DisplayAmount) {
	c.sectionStart(headingHeight + 4*fieldLineHeight)
	c.heading("Payment Details")
	c.labeledField("Payment Method", paymentMethodLabel(o.PaymentMethod))
	c.labeledField("Payment Status", o.PaymentStatus)
	c.labeledField("Amount", amount.String())

	switch o.PaymentMethod {
	case ds.PaymentMethodCard:
		c.labeledField("Cardholder", metaString(o.PaymentMetadata, "card_name"))
		c.labeledField("Card (last digits)", metaString(o.PaymentMetadata, "card_last4"))
	case ds.PaymentMethodPix:
		c.labeledField("Payer Tax ID (CPF)", metaString(o.PaymentMetadata, "tax_id"))
	case ds.PaymentMethodInstallments:
		c.labeledField("Installments", metaString(o.PaymentMetadata, "installments"))
		c.labeledField("Payer Tax ID (CPF)", metaString(o.PaymentMetadata, "tax_id"))
	case ds.PaymentMethodZelle:
		c.labeledField("Sender Name", metaString(o.PaymentMetadata, "sender_name"))
	}
}

// identitySection embeds the identity images in fixed order. Slots
// without a storage reference were already omitted upstream; slots whose
// fetch failed (or resolved to a PDF) get a placeholder line.
func identitySection(c *composer, images []documentImage) {
	if len(images) == 0 {
		return
	}
	c.sectionStart(headingHeight + 20)
	c.heading("Identity Documents")
	for _, img := range images {
		c.caption(img.Label)
		switch {
		case img.Data == nil:
			c.placeholder("(Image could not be loaded)")
		case img.Data.Format == FormatPDF:
			c.placeholder("(see storage)")
		case !c.image(img.Data, 85, 60, pageMargin):
			c.placeholder("(Image could not be loaded)")
		}
	}
}

// signatureSection embeds the signature image, falling back to the
// client's typed name on a ruled line.
func signatureSection(c *composer, d documentData) {
	c.sectionStart(headingHeight + 24)
	c.heading("Signature")
	if !c.image(d.Signature, 70, 25, pageMargin) {
		c.signatureLine(d.Order.ClientName)
	}
	if d.Order.SignedAt != nil {
		c.labeledField("Signed At", d.Order.SignedAt.Format("2006-01-02 15:04:05 MST"))
	}
}

// auditSection prints the technical block tying the document to the
// signing event.
func auditSection(c *composer, d documentData) {
	c.sectionStart(headingHeight + 4*fieldLineHeight)
	c.heading("Technical Information")
	c.labeledField("Order ID", d.Order.ID)
	c.labeledField("IP Address", d.Order.SignupIP)
	if d.Order.SignedAt != nil {
		c.labeledField("Acceptance Timestamp", d.Order.SignedAt.UTC().Format(time.RFC3339))
	}
	c.labeledField("Document Generated", d.GeneratedAt.UTC().Format(time.RFC3339))
}
