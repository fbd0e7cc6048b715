package docgen

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestComposerParagraphPagination(t *testing.T) {
	c := newComposer()
	// 200 short lines at 5mm each cannot fit on one A4 page.
	text := strings.TrimSpace(strings.Repeat("Clause body line for pagination.\n", 200))
	c.paragraph(text, 10)

	if got := c.pdf.PageCount(); got < 2 {
		t.Fatalf("PageCount() = %d, want at least 2", got)
	}
	if c.cur.Page != c.pdf.PageCount() {
		t.Errorf("cursor page %d out of sync with backend page count %d", c.cur.Page, c.pdf.PageCount())
	}
	if !c.cur.Fits(lineHeight) {
		t.Error("cursor should always land where one more line fits")
	}
}

func TestComposerLabeledFieldSkipsEmpty(t *testing.T) {
	c := newComposer()
	before := c.cur
	c.labeledField("Phone", "")
	if c.cur != before {
		t.Errorf("empty field moved the cursor: %+v -> %+v", before, c.cur)
	}
	c.labeledField("Phone", "+55 11 99999-0000")
	if c.cur == before {
		t.Error("non-empty field should advance the cursor")
	}
}

func TestComposerImage(t *testing.T) {
	t.Run("breaks page for the full block reserve", func(t *testing.T) {
		c := newComposer()
		c.cur = LayoutCursor{Page: 1, Y: bottomLimit - 10}
		ok := c.image(&ImageData{Bytes: tinyPNG(t), Format: FormatPNG}, 85, 60, pageMargin)
		if !ok {
			t.Fatal("valid png should embed")
		}
		if c.cur.Page != 2 || c.pdf.PageCount() != 2 {
			t.Errorf("expected block to move to page 2, cursor %+v, pages %d", c.cur, c.pdf.PageCount())
		}
	})

	t.Run("rejects undecodable bytes without moving", func(t *testing.T) {
		c := newComposer()
		before := c.cur
		if c.image(&ImageData{Bytes: []byte("not an image"), Format: FormatPNG}, 85, 60, pageMargin) {
			t.Fatal("garbage bytes should not embed")
		}
		if c.cur != before {
			t.Errorf("failed embed moved the cursor: %+v -> %+v", before, c.cur)
		}
	})

	t.Run("rejects nil and pdf data", func(t *testing.T) {
		c := newComposer()
		if c.image(nil, 85, 60, pageMargin) {
			t.Error("nil image should not embed")
		}
		if c.image(&ImageData{Bytes: []byte("%PDF-1.4"), Format: FormatPDF}, 85, 60, pageMargin) {
			t.Error("pdf data should not embed")
		}
	})
}

func TestComposerOutput(t *testing.T) {
	c := newComposer()
	c.title("VISA SERVICE CONTRACT")
	c.paragraph("Short body.", 10)
	c.stampFooters(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	out, err := c.output()
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("serialized document does not start with %%PDF: %q", out[:8])
	}
}
