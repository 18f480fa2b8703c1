// Package builder holds the three-stage SOP builder wizard: identity
// details, a text brief, then a depth choice that triggers generation.
// Wizard state is transient and never persisted.
package builder

import (
	"errors"
	"strings"

	"github.com/sopmaster25-create/sopmaster/internal/sop"
)

// Stage is a wizard position.
type Stage int

const (
	StageIdentity Stage = iota + 1
	StageBrief
	StageDepth
	StageGenerated
)

// videoBriefPlaceholder stands in for an attached video brief, which is
// not processed in this build.
const videoBriefPlaceholder = "(Video brief attached in production)"

var (
	// ErrMissingFields signals an incomplete identity stage.
	ErrMissingFields = errors.New("please complete all fields")
	// ErrMissingBrief signals an empty brief with no file attached.
	ErrMissingBrief = errors.New("add a short text brief (two words is enough)")
	// ErrWrongStage signals an action submitted out of order.
	ErrWrongStage = errors.New("not at the right stage for this action")
)

// Wizard accumulates the form payload across stages. Failed validation
// keeps the current stage; backward transitions preserve entered values.
type Wizard struct {
	Stage    Stage
	Payload  sop.Payload
	Document *sop.Document
}

// New starts a wizard at the identity stage.
func New() *Wizard {
	return &Wizard{Stage: StageIdentity}
}

// SubmitIdentity validates and records stage one. All five fields must
// be non-empty after trimming.
func (w *Wizard) SubmitIdentity(firstName, lastName, company, category, title string) error {
	if w.Stage != StageIdentity {
		return ErrWrongStage
	}

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	company = strings.TrimSpace(company)
	category = strings.TrimSpace(category)
	title = strings.TrimSpace(title)

	if firstName == "" || lastName == "" || company == "" || category == "" || title == "" {
		return ErrMissingFields
	}

	w.Payload.FirstName = firstName
	w.Payload.LastName = lastName
	w.Payload.Company = company
	w.Payload.Category = category
	w.Payload.Title = title
	w.Stage = StageBrief
	return nil
}

// SubmitBrief validates and records stage two. A trimmed non-empty brief
// or an attached file placeholder is required.
func (w *Wizard) SubmitBrief(brief string, fileAttached bool) error {
	if w.Stage != StageBrief {
		return ErrWrongStage
	}

	brief = strings.TrimSpace(brief)
	if brief == "" && !fileAttached {
		return ErrMissingBrief
	}
	if brief == "" {
		brief = videoBriefPlaceholder
	}

	w.Payload.Brief = brief
	w.Stage = StageDepth
	return nil
}

// Back steps to the previous stage. Entered values are kept. At the
// identity stage it is a no-op.
func (w *Wizard) Back() {
	switch w.Stage {
	case StageBrief:
		w.Stage = StageIdentity
	case StageDepth:
		w.Stage = StageBrief
	case StageGenerated:
		w.Stage = StageDepth
	}
}

// Generate runs the template generator for the chosen depth and moves to
// the terminal stage. Regenerating at a different depth is allowed.
func (w *Wizard) Generate(gen *sop.Generator, depth sop.Depth) (sop.Document, error) {
	if w.Stage != StageDepth && w.Stage != StageGenerated {
		return sop.Document{}, ErrWrongStage
	}
	if !depth.Valid() {
		return sop.Document{}, errors.New("choose a 13-step or 26-step SOP")
	}

	doc, err := gen.Build(w.Payload, depth)
	if err != nil {
		return sop.Document{}, err
	}
	w.Document = &doc
	w.Stage = StageGenerated
	return doc, nil
}
