package docgen

import (
	"context"
	"strings"
	"testing"

	"visaportal/internal/app/ds"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "headings and paragraphs become lines",
			in:   "<h1>Terms</h1><p>Hello <b>world</b></p>",
			want: "Terms\n\nHello world",
		},
		{
			name: "script blocks are dropped wholesale",
			in:   "<p>before</p><script>var x = 1;</script><p>after</p>",
			want: "before\n\nafter",
		},
		{
			name: "style blocks are dropped wholesale",
			in:   "<style>p { color: red }</style><p>visible</p>",
			want: "visible",
		},
		{
			name: "list items get bullets",
			in:   "<ul><li>one</li><li>two</li></ul>",
			want: "• one\n\n• two",
		},
		{
			name: "entities are decoded",
			in:   "<p>Fish &amp; chips &lt;daily&gt; &quot;fresh&quot;</p>",
			want: "Fish & chips <daily> \"fresh\"",
		},
		{
			name: "inline emphasis keeps text only",
			in:   "<p><em>Important</em> and <strong>binding</strong></p>",
			want: "Important and binding",
		},
		{
			name: "runs of whitespace collapse",
			in:   "<div>a    b</div><div></div><div></div><div>c</div>",
			want: "a b\n\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTMLToText(tt.in)
			if got != tt.want {
				t.Errorf("HTMLToText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHTMLToText_IdempotentOnPlainText(t *testing.T) {
	inputs := []string{
		"Clause 1. The Company provides services.\n\nClause 2. Fees are final.",
		"• one\n\n• two",
		"Fish & chips",
	}
	for _, in := range inputs {
		once := HTMLToText(in)
		twice := HTMLToText(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
	// plain text should also survive a single pass unchanged
	for _, in := range inputs {
		if got := HTMLToText(in); got != in {
			t.Errorf("plain text altered: %q -> %q", in, got)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestResolveContractTerms(t *testing.T) {
	ctx := context.Background()

	t.Run("product scoped template wins", func(t *testing.T) {
		records := newFakeRecords()
		records.templates = append(records.templates, ds.ContractTemplate{
			TemplateType: ds.TemplateTypeVisaService,
			ProductSlug:  strPtr("tourist-visa-usa"),
			Content:      "<p>Scoped terms</p>",
			IsActive:     true,
		})
		g := New(records, newFakeObjects())
		if got := g.resolveContractTerms(ctx, "tourist-visa-usa"); got != "Scoped terms" {
			t.Errorf("got %q, want normalized scoped terms", got)
		}
	})

	t.Run("no global fallback for contracts", func(t *testing.T) {
		records := newFakeRecords()
		records.templates = append(records.templates, ds.ContractTemplate{
			TemplateType: ds.TemplateTypeVisaService,
			ProductSlug:  nil, // global rows do not apply to contracts
			Content:      "<p>Global terms</p>",
			IsActive:     true,
		})
		g := New(records, newFakeObjects())
		if got := g.resolveContractTerms(ctx, "tourist-visa-usa"); got != DefaultContractTerms {
			t.Errorf("expected embedded default terms, got %q", got)
		}
	})
}

func TestResolveAnnexTerms(t *testing.T) {
	ctx := context.Background()

	t.Run("product scoped first", func(t *testing.T) {
		records := newFakeRecords()
		records.templates = append(records.templates,
			ds.ContractTemplate{
				TemplateType: ds.TemplateTypeChargebackAnnex,
				ProductSlug:  strPtr("cos-scholarship"),
				Content:      "<p>Scoped annex</p>",
				IsActive:     true,
			},
			ds.ContractTemplate{
				TemplateType: ds.TemplateTypeChargebackAnnex,
				Content:      "<p>Global annex</p>",
				IsActive:     true,
			},
		)
		g := New(records, newFakeObjects())
		if got := g.resolveAnnexTerms(ctx, "cos-scholarship"); got != "Scoped annex" {
			t.Errorf("got %q, want scoped annex", got)
		}
	})

	t.Run("global fallback", func(t *testing.T) {
		records := newFakeRecords()
		records.templates = append(records.templates, ds.ContractTemplate{
			TemplateType: ds.TemplateTypeChargebackAnnex,
			Content:      "<p>Global annex</p>",
			IsActive:     true,
		})
		g := New(records, newFakeObjects())
		if got := g.resolveAnnexTerms(ctx, "cos-scholarship"); got != "Global annex" {
			t.Errorf("got %q, want global annex", got)
		}
	})

	t.Run("embedded default", func(t *testing.T) {
		g := New(newFakeRecords(), newFakeObjects())
		got := g.resolveAnnexTerms(ctx, "cos-scholarship")
		if got != DefaultAnnexTerms {
			t.Errorf("expected embedded annex default, got %q", got)
		}
		if !strings.Contains(got, "PAYMENT AUTHORIZATION") && !strings.Contains(got, "authorization") {
			t.Errorf("default annex terms look wrong: %q", got[:40])
		}
	})
}
