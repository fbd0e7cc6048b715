package docgen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Row heights in millimeters.
const (
	lineHeight      = 5.0
	fieldLineHeight = 6.0
	headingHeight   = 8.0
	titleHeight     = 12.0
)

const legalValidityNotice = "Documento gerado eletronicamente. This document was generated electronically and is valid without a handwritten signature."

// composer pairs the fpdf backend with a LayoutCursor. fpdf's automatic
// page breaking is disabled; every primitive goes through ensure so the
// cursor is the single source of truth for pagination.
type composer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	cur    LayoutCursor
	imgSeq int
}

func newComposer() *composer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &composer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		cur: LayoutCursor{Page: 1, Y: pageMargin},
	}
}

// ensure makes room for reserve, inserting a page break when needed.
func (c *composer) ensure(reserve float64) {
	next, broke := c.cur.Ensure(reserve)
	if broke {
		c.pdf.AddPage()
	}
	c.cur = next
}

// sectionStart forces a page break when the section's minimum height
// does not fit, so headings are never orphaned at the page bottom.
func (c *composer) sectionStart(minHeight float64) {
	c.ensure(minHeight)
}

func (c *composer) title(text string) {
	c.ensure(titleHeight)
	c.pdf.SetFont("Helvetica", "B", 16)
	c.pdf.SetXY(pageMargin, c.cur.Y)
	c.pdf.CellFormat(contentWidth, 10, c.tr(text), "", 0, "C", false, 0, "")
	c.cur = c.cur.Advance(titleHeight)
}

func (c *composer) heading(text string) {
	c.ensure(headingHeight + lineHeight)
	c.cur = c.cur.Advance(2)
	c.pdf.SetFont("Helvetica", "B", 12)
	c.pdf.SetXY(pageMargin, c.cur.Y)
	c.pdf.CellFormat(contentWidth, headingHeight-2, c.tr(text), "B", 0, "L", false, 0, "")
	c.cur = c.cur.Advance(headingHeight)
}

// labeledField prints "Label: value" on one row. Empty values are
// skipped entirely.
func (c *composer) labeledField(label, value string) {
	if value == "" {
		return
	}
	c.ensure(fieldLineHeight)
	c.pdf.SetXY(pageMargin, c.cur.Y)
	c.pdf.SetFont("Helvetica", "B", 10)
	c.pdf.CellFormat(48, fieldLineHeight, c.tr(label+":"), "", 0, "L", false, 0, "")
	c.pdf.SetFont("Helvetica", "", 10)
	c.pdf.CellFormat(contentWidth-48, fieldLineHeight, c.tr(value), "", 0, "L", false, 0, "")
	c.cur = c.cur.Advance(fieldLineHeight)
}

// paragraph wraps text to the content width and paints it line by line.
// Page breaks are decided per line, never mid-line.
func (c *composer) paragraph(text string, fontSize float64) {
	c.pdf.SetFont("Helvetica", "", fontSize)
	for _, block := range strings.Split(text, "\n") {
		if block == "" {
			c.cur = c.cur.Advance(lineHeight / 2)
			continue
		}
		for _, line := range c.pdf.SplitText(c.tr(block), contentWidth) {
			c.ensure(lineHeight)
			c.pdf.SetXY(pageMargin, c.cur.Y)
			c.pdf.CellFormat(contentWidth, lineHeight, line, "", 0, "L", false, 0, "")
			c.cur = c.cur.Advance(lineHeight)
		}
	}
}

// placeholder prints the gray italic line used for anything that could
// not be embedded.
func (c *composer) placeholder(text string) {
	c.ensure(lineHeight)
	c.pdf.SetFont("Helvetica", "I", 9)
	c.pdf.SetTextColor(120, 120, 120)
	c.pdf.SetXY(pageMargin, c.cur.Y)
	c.pdf.CellFormat(contentWidth, lineHeight, c.tr(text), "", 0, "L", false, 0, "")
	c.pdf.SetTextColor(0, 0, 0)
	c.cur = c.cur.Advance(lineHeight + 1)
}

// caption prints a small bold label above an image.
func (c *composer) caption(text string) {
	c.ensure(lineHeight)
	c.pdf.SetFont("Helvetica", "B", 9)
	c.pdf.SetXY(pageMargin, c.cur.Y)
	c.pdf.CellFormat(contentWidth, lineHeight, c.tr(text), "", 0, "L", false, 0, "")
	c.cur = c.cur.Advance(lineHeight)
}

// image embeds a PNG/JPEG scaled into maxW x maxH at the given x. The
// bottom-margin check uses the full block reserve so images never split
// across pages. Returns false when the bytes cannot be embedded.
func (c *composer) image(img *ImageData, maxW, maxH, x float64) bool {
	if img == nil || img.Format == FormatPDF {
		return false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Bytes))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return false
	}

	// pixel size to millimeters at a nominal 96 dpi, then fit the box
	w := float64(cfg.Width) * 25.4 / 96.0
	h := float64(cfg.Height) * 25.4 / 96.0
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}

	c.ensure(maxH)

	c.imgSeq++
	name := fmt.Sprintf("img-%d", c.imgSeq)
	opts := fpdf.ImageOptions{ImageType: string(img.Format)}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Bytes))
	if c.pdf.Err() {
		return false
	}
	c.pdf.ImageOptions(name, x, c.cur.Y, w, h, false, opts, 0, "")
	c.cur = c.cur.Advance(h + 2)
	return true
}

// signatureLine prints the typed client name on a ruled line, the
// universal fallback when no signature image is available.
func (c *composer) signatureLine(clientName string) {
	c.ensure(16)
	lineY := c.cur.Y + 8
	c.pdf.Line(pageMargin, lineY, pageMargin+80, lineY)
	c.pdf.SetFont("Helvetica", "", 10)
	c.pdf.SetXY(pageMargin, lineY+1)
	c.pdf.CellFormat(80, lineHeight, c.tr(clientName), "", 0, "C", false, 0, "")
	c.cur = c.cur.Advance(16)
}

// stampFooters runs once after all content is laid out and stamps the
// generation timestamp and the legal-validity notice on every page.
func (c *composer) stampFooters(generatedAt time.Time) {
	total := c.pdf.PageCount()
	c.pdf.SetFont("Helvetica", "I", 7)
	c.pdf.SetTextColor(120, 120, 120)
	for p := 1; p <= total; p++ {
		c.pdf.SetPage(p)
		c.pdf.SetXY(pageMargin, pageHeight-11)
		stamp := fmt.Sprintf("Generated at %s | page %d of %d", generatedAt.Format("2006-01-02 15:04:05 MST"), p, total)
		c.pdf.CellFormat(contentWidth, 3.5, c.tr(stamp), "", 0, "C", false, 0, "")
		c.pdf.SetXY(pageMargin, pageHeight-7)
		c.pdf.CellFormat(contentWidth, 3.5, c.tr(legalValidityNotice), "", 0, "C", false, 0, "")
	}
	c.pdf.SetTextColor(0, 0, 0)
}

func (c *composer) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
