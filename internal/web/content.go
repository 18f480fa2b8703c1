package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Static page bodies are authored in markdown and rendered to HTML once
// at startup.

const pricingMarkdown = `# Pricing

Set your pricing content here. This build includes the page and navigation, ready for your final commercial positioning.

## Starter

Good for single-location operators and teams starting SOP standardisation.

## Growth

Best for multi-location or multi-account teams requiring consistent rollout and adoption.

## Enterprise

Governance-led deployments with compliance, approvals, and reporting.
`

const supportMarkdown = `# Support

Answers to common questions, plus direct contact routes.

## FAQ

**How fast can I generate SOPs?**
13-step SOPs are designed for rapid drafting; 26-step SOPs add governance, controls, and enterprise layers.

**Do I need templates?**
No — the builder generates structure and steps from your input.

**Can I export SOPs?**
In this build, you can copy the SOP output. Export modules (PDF/Word) arrive with the full SOPDownloader component.

**Can we restrict access by company?**
Yes — that requires real authentication (Firebase/Auth0/your backend).

## Contact

- [info@sopmaster.co.uk](mailto:info@sopmaster.co.uk)
- [jamie@sopmaster.co.uk](mailto:jamie@sopmaster.co.uk)
- [support@sopmaster.co.uk](mailto:support@sopmaster.co.uk)
- [WhatsApp Business](https://wa.me/447549835872)

## Security & privacy

This build stores data on this server only. For production, connect authentication and persistence to your backend of record.
`

const privacyMarkdown = `# Privacy

This is a self-hosted build. Your data is stored in this deployment's local database only; nothing is sent to third parties.
`

const termsMarkdown = `# Terms

Add your terms here. This page is provided so the site can be production-ready when you are.
`

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(highlighting.WithStyle("github")),
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// renderMarkdown converts a markdown source to HTML. Used at startup for
// the static pages; a conversion failure is a programming error.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		panic("rendering static page: " + err.Error())
	}
	return template.HTML(buf.String())
}

var (
	pricingHTML = renderMarkdown(pricingMarkdown)
	supportHTML = renderMarkdown(supportMarkdown)
	privacyHTML = renderMarkdown(privacyMarkdown)
	termsHTML   = renderMarkdown(termsMarkdown)
)
