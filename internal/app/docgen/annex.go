package docgen

import "fmt"

// composeAnnex lays out Annex I, the payment authorization and
// non-dispute document. It carries its own order-info block, which
// prints the derived true total again next to the authorization
// statement, then the annex terms, identity images and signature.
func composeAnnex(d documentData) ([]byte, error) {
	c := newComposer()

	c.title("ANNEX I - PAYMENT AUTHORIZATION")

	c.sectionStart(headingHeight + 5*fieldLineHeight)
	c.heading("Order Information")
	c.labeledField("Order Number", d.Order.OrderNumber)
	c.labeledField("Order Date", d.Order.CreatedAt.Format("02 Jan 2006"))
	c.labeledField("Service", d.ServiceName)
	c.labeledField("Payment Method", paymentMethodLabel(d.Order.PaymentMethod))
	c.labeledField("Authorized Amount", d.Amount.String())

	clientSection(c, d.Order)

	c.sectionStart(headingHeight + 4*lineHeight)
	c.heading("Payment Authorization Terms")
	c.paragraph(d.Terms, 9)

	c.sectionStart(headingHeight + 3*lineHeight)
	c.heading("Declaration")
	c.paragraph(fmt.Sprintf(
		"I, %s, hereby confirm that I personally authorized the payment of %s "+
			"for order %s and that I recognize this charge as legitimate.",
		d.Order.ClientName, d.Amount.String(), d.Order.OrderNumber), 10)

	identitySection(c, d.Images)
	signatureSection(c, d)
	auditSection(c, d)

	c.stampFooters(d.GeneratedAt)
	return c.output()
}
