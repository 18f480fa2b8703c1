package sop

import (
	"fmt"
	"strings"
	"text/template"
)

// region is the deployment footprint named in the executive summary.
const region = "United Kingdom, Europe, North America"

// docData is the data passed to the document template.
type docData struct {
	Title          string
	Company        string
	Category       string
	FirstName      string
	LastName       string
	Theme          string
	Brief          string
	StrategicValue string
	Region         string
	Steps          []procedureStep
	Enterprise     bool
	Date           string
	ID             string
}

var docTmpl = template.Must(template.New("sop").Funcs(template.FuncMap{
	"stepnum": func(i int) string { return fmt.Sprintf("%02d", i+1) },
}).Parse(docTemplate))

// Build renders the SOP for the given payload and depth. Empty optional
// fields never cause an error: a missing brief falls back to DefaultBrief.
func (g *Generator) Build(p Payload, depth Depth) (Document, error) {
	if !depth.Valid() {
		return Document{}, fmt.Errorf("unsupported depth %d", int(depth))
	}

	now := g.Now()
	brief := strings.TrimSpace(p.Brief)
	if brief == "" {
		brief = DefaultBrief
	}

	strategicValue := "Measured impact through reduced variance, faster onboarding, and consistent execution."
	if depth == Depth26 {
		strategicValue = "£2 million annual impact, 25% efficiency gain, 10 FTE optimisation."
	}

	id := fmt.Sprintf("SOP-%06d", g.Rand.Intn(900000)+100000)

	data := docData{
		Title:          p.Title,
		Company:        p.Company,
		Category:       p.Category,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Theme:          fmt.Sprintf("%s: %s", p.Category, p.Title),
		Brief:          brief,
		StrategicValue: strategicValue,
		Region:         region,
		Steps:          stepsFor(depth),
		Enterprise:     depth == Depth26,
		Date:           now.Format("02/01/2006"),
		ID:             id,
	}

	var b strings.Builder
	if err := docTmpl.Execute(&b, data); err != nil {
		return Document{}, fmt.Errorf("rendering document: %w", err)
	}

	return Document{
		ID:          id,
		Title:       p.Title,
		Category:    p.Category,
		Company:     p.Company,
		Owner:       strings.TrimSpace(p.FirstName + " " + p.LastName),
		Depth:       depth,
		Content:     strings.TrimSpace(b.String()),
		GeneratedAt: now,
	}, nil
}
