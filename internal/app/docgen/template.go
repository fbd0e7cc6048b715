package docgen

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"visaportal/internal/app/ds"
	"visaportal/internal/app/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// resolveContractTerms picks the contract template for a product. The
// visa_service lookup is product-scoped only; a miss means the embedded
// default English terms.
func (g *Generator) resolveContractTerms(ctx context.Context, productSlug string) string {
	tpl, err := g.Records.ActiveTemplate(ctx, ds.TemplateTypeVisaService, productSlug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logrus.Warnf("contract template lookup for %s failed: %v", productSlug, err)
		}
		logrus.Infof("no contract template for %s, using default terms", productSlug)
		return DefaultContractTerms
	}
	return HTMLToText(tpl.Content)
}

// resolveAnnexTerms picks the annex template: product-scoped first, then
// global, then the embedded default.
func (g *Generator) resolveAnnexTerms(ctx context.Context, productSlug string) string {
	tpl, err := g.Records.ActiveTemplate(ctx, ds.TemplateTypeChargebackAnnex, productSlug)
	if err == nil {
		return HTMLToText(tpl.Content)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.Warnf("annex template lookup for %s failed: %v", productSlug, err)
	}

	tpl, err = g.Records.ActiveGlobalTemplate(ctx, ds.TemplateTypeChargebackAnnex)
	if err == nil {
		return HTMLToText(tpl.Content)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.Warnf("global annex template lookup failed: %v", err)
	}
	logrus.Infof("no annex template for %s, using default terms", productSlug)
	return DefaultAnnexTerms
}

// Block-level tags and the plain-text replacement emitted before their
// content. End tags of these emit a single newline.
var blockTagOpen = map[string]string{
	"h1": "\n\n", "h2": "\n\n", "h3": "\n\n", "h4": "\n\n", "h5": "\n\n", "h6": "\n\n",
	"p": "\n\n", "div": "\n", "section": "\n\n",
	"ul": "\n", "ol": "\n", "li": "\n• ",
	"tr": "\n", "br": "\n",
}

var (
	runsOfSpaces   = regexp.MustCompile(`[ \t]+`)
	spacesAroundNL = regexp.MustCompile(` *\n *`)
	runsOfNewlines = regexp.MustCompile(`\n{3,}`)
)

// HTMLToText converts rich template markup to plain text: script/style
// blocks are dropped wholesale, block tags become newline-prefixed lines
// (bullets for list items), inline tags keep only their text, entities
// are decoded, and whitespace is collapsed. One-way and best-effort;
// fidelity loss for tables and links is accepted. Idempotent on text
// that is already plain.
func HTMLToText(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := "" // inside a script/style element

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && tt == html.StartTagToken {
				skip = tag
				continue
			}
			if rep, ok := blockTagOpen[tag]; ok {
				b.WriteString(rep)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == skip {
				skip = ""
				continue
			}
			if _, ok := blockTagOpen[tag]; ok {
				b.WriteString("\n")
			}
		case html.TextToken:
			if skip != "" {
				continue
			}
			b.Write(z.Text())
		}
	}

	return collapseWhitespace(b.String())
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = runsOfSpaces.ReplaceAllString(s, " ")
	s = spacesAroundNL.ReplaceAllString(s, "\n")
	s = runsOfNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
