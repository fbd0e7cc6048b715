package docgen

// composeContract lays out the main Visa Service Contract: order and
// client blocks, payment details, the resolved legal terms, identity
// images, signature and the audit block, with the footer stamped on
// every page at the end.
func composeContract(d documentData) ([]byte, error) {
	c := newComposer()

	c.title("VISA SERVICE CONTRACT")

	c.sectionStart(headingHeight + 4*fieldLineHeight)
	c.heading("Order Information")
	c.labeledField("Order Number", d.Order.OrderNumber)
	c.labeledField("Order Date", d.Order.CreatedAt.Format("02 Jan 2006"))
	c.labeledField("Service", d.ServiceName)
	c.labeledField("Total Amount", d.Amount.String())

	clientSection(c, d.Order)
	paymentSection(c, d.Order, d.Amount)

	c.sectionStart(headingHeight + 4*lineHeight)
	c.heading("Terms and Conditions")
	c.paragraph(d.Terms, 9)

	identitySection(c, d.Images)
	signatureSection(c, d)
	auditSection(c, d)

	c.stampFooters(d.GeneratedAt)
	return c.output()
}
