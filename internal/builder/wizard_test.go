package builder

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/sopmaster25-create/sopmaster/internal/sop"
)

func testGen() *sop.Generator {
	return &sop.Generator{
		Now:  func() time.Time { return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC) },
		Rand: rand.New(rand.NewSource(1)),
	}
}

func advance(t *testing.T, w *Wizard) {
	t.Helper()
	if err := w.SubmitIdentity("Jamie", "Smith", "Acme Ltd", "Operations & Logistics", "Weekly Close"); err != nil {
		t.Fatalf("SubmitIdentity: %v", err)
	}
	if err := w.SubmitBrief("Reconcile warehouse counts.", false); err != nil {
		t.Fatalf("SubmitBrief: %v", err)
	}
}

func TestWizardHappyPath(t *testing.T) {
	w := New()
	if w.Stage != StageIdentity {
		t.Fatalf("start stage = %d", w.Stage)
	}

	advance(t, w)
	if w.Stage != StageDepth {
		t.Fatalf("stage after brief = %d", w.Stage)
	}

	doc, err := w.Generate(testGen(), sop.Depth13)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if w.Stage != StageGenerated {
		t.Errorf("stage after generate = %d", w.Stage)
	}
	if w.Document == nil || w.Document.ID != doc.ID {
		t.Error("generated document not kept on the wizard")
	}
	if doc.Title != "Weekly Close" || doc.Owner != "Jamie Smith" {
		t.Errorf("document = %+v", doc)
	}
}

func TestIdentityValidation(t *testing.T) {
	w := New()

	err := w.SubmitIdentity("Jamie", "  ", "Acme Ltd", "Operations & Logistics", "Weekly Close")
	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
	if w.Stage != StageIdentity {
		t.Error("failed validation must keep the stage")
	}
}

func TestBriefValidation(t *testing.T) {
	w := New()
	if err := w.SubmitIdentity("Jamie", "Smith", "Acme Ltd", "Operations & Logistics", "Weekly Close"); err != nil {
		t.Fatalf("SubmitIdentity: %v", err)
	}

	if err := w.SubmitBrief("   ", false); !errors.Is(err, ErrMissingBrief) {
		t.Errorf("expected ErrMissingBrief, got %v", err)
	}
	if w.Stage != StageBrief {
		t.Error("failed validation must keep the stage")
	}

	// An attached file substitutes for the text brief.
	if err := w.SubmitBrief("", true); err != nil {
		t.Fatalf("SubmitBrief with file: %v", err)
	}
	if w.Payload.Brief != videoBriefPlaceholder {
		t.Errorf("brief = %q", w.Payload.Brief)
	}
}

func TestStageOrderEnforced(t *testing.T) {
	w := New()

	if err := w.SubmitBrief("too early", false); !errors.Is(err, ErrWrongStage) {
		t.Errorf("brief before identity: %v", err)
	}
	if _, err := w.Generate(testGen(), sop.Depth13); !errors.Is(err, ErrWrongStage) {
		t.Errorf("generate before depth stage: %v", err)
	}
}

func TestBackPreservesValues(t *testing.T) {
	w := New()
	advance(t, w)

	w.Back()
	if w.Stage != StageBrief {
		t.Fatalf("stage after back = %d", w.Stage)
	}
	if w.Payload.Brief != "Reconcile warehouse counts." {
		t.Error("brief lost on back navigation")
	}

	w.Back()
	if w.Stage != StageIdentity {
		t.Fatalf("stage after second back = %d", w.Stage)
	}
	if w.Payload.Company != "Acme Ltd" {
		t.Error("identity fields lost on back navigation")
	}

	// Back at the first stage is a no-op.
	w.Back()
	if w.Stage != StageIdentity {
		t.Errorf("stage = %d", w.Stage)
	}
}

func TestRegenerateAtDifferentDepth(t *testing.T) {
	w := New()
	advance(t, w)

	first, err := w.Generate(testGen(), sop.Depth13)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := w.Generate(testGen(), sop.Depth26)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if first.Depth == second.Depth {
		t.Error("expected a different depth on regenerate")
	}
	if w.Document.Depth != sop.Depth26 {
		t.Error("wizard should keep the latest document")
	}
}

func TestRegistryPerSession(t *testing.T) {
	reg := NewRegistry()

	a := reg.Get("session-a")
	b := reg.Get("session-b")
	if a == b {
		t.Fatal("sessions must not share wizard state")
	}
	if again := reg.Get("session-a"); again != a {
		t.Error("same session should get the same wizard back")
	}

	reg.Drop("session-a")
	if fresh := reg.Get("session-a"); fresh == a {
		t.Error("Drop should discard the wizard")
	}
}
