package sop

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func testGenerator() *Generator {
	return &Generator{
		Now:  func() time.Time { return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC) },
		Rand: rand.New(rand.NewSource(1)),
	}
}

func testPayload() Payload {
	return Payload{
		FirstName: "Jamie",
		LastName:  "Smith",
		Company:   "Acme Ltd",
		Category:  "Operations & Logistics",
		Title:     "Weekly Inventory Reconciliation",
		Brief:     "Reconcile warehouse counts against the ERP every Friday.",
	}
}

func TestBuildFastDraft(t *testing.T) {
	g := testGenerator()
	doc, err := g.Build(testPayload(), Depth13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if doc.Owner != "Jamie Smith" {
		t.Errorf("owner = %q", doc.Owner)
	}
	if doc.Depth != Depth13 {
		t.Errorf("depth = %d", doc.Depth)
	}
	if !strings.HasPrefix(doc.ID, "SOP-") || len(doc.ID) != 10 {
		t.Errorf("unexpected document ID %q", doc.ID)
	}

	// All 13 numbered steps with their Action/Control/Outcome lines.
	for i := 1; i <= 13; i++ {
		num := []byte{byte('0' + i/10), byte('0' + i%10)}
		if !strings.Contains(doc.Content, string(num)+". ") {
			t.Errorf("missing step %02d", i)
		}
	}
	if strings.Contains(doc.Content, "14. ") {
		t.Error("fast draft should stop at step 13")
	}
	if n := strings.Count(doc.Content, "- Action:"); n != 13 {
		t.Errorf("expected 13 action lines, got %d", n)
	}
	if n := strings.Count(doc.Content, "- Control: Document evidence"); n != 13 {
		t.Errorf("expected 13 control lines, got %d", n)
	}

	// Standard governance only, no enterprise sections.
	if !strings.Contains(doc.Content, "8.0 QUALITY ASSURANCE & CONTROLS") {
		t.Error("missing standard QA section")
	}
	if !strings.Contains(doc.Content, "9.0 CHANGE CONTROL") {
		t.Error("missing change control section")
	}
	for _, banned := range []string{
		"9.0 POLICY & COMPLIANCE REFERENCE MATRIX",
		"10.0 RISK & CONTROL MATRIX",
		"11.0 FINANCIAL IMPACT ANALYSIS",
		"12.0 CHANGE MANAGEMENT",
	} {
		if strings.Contains(doc.Content, banned) {
			t.Errorf("fast draft should not contain %q", banned)
		}
	}

	if !strings.Contains(doc.Content, "Owner: Jamie Smith (Process Owner)") {
		t.Error("missing owner line")
	}
	if !strings.Contains(doc.Content, "Generated: 15/03/2025") {
		t.Error("missing generation date")
	}
	if !strings.Contains(doc.Content, "Input Signal: Reconcile warehouse counts against the ERP every Friday.") {
		t.Error("brief not carried into executive summary")
	}
}

func TestBuildEnterprise(t *testing.T) {
	g := testGenerator()
	doc, err := g.Build(testPayload(), Depth26)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if n := strings.Count(doc.Content, "- Action:"); n != 26 {
		t.Errorf("expected 26 action lines, got %d", n)
	}
	if !strings.Contains(doc.Content, "26. Step 26") {
		t.Error("missing final enterprise step")
	}
	for _, section := range []string{
		"8.0 QUALITY ASSURANCE & GOVERNANCE",
		"9.0 POLICY & COMPLIANCE REFERENCE MATRIX",
		"10.0 RISK & CONTROL MATRIX",
		"11.0 FINANCIAL IMPACT ANALYSIS",
		"12.0 CHANGE MANAGEMENT",
	} {
		if !strings.Contains(doc.Content, section) {
			t.Errorf("missing enterprise section %q", section)
		}
	}
	if !strings.Contains(doc.Content, "£2 million annual impact") {
		t.Error("enterprise strategic value line missing")
	}
}

func TestBuildMarketingExample(t *testing.T) {
	g := testGenerator()
	doc, err := g.Build(Payload{
		FirstName: "Jamie",
		LastName:  "Smith",
		Company:   "Acme Ltd",
		Category:  "Marketing",
		Title:     "Digital Marketing",
		Brief:     "Digital Marketing",
	}, Depth13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for i := 1; i <= 13; i++ {
		num := fmt.Sprintf("%02d. ", i)
		if !strings.Contains(doc.Content, num) {
			t.Errorf("procedure missing item %s", strings.TrimSpace(num))
		}
	}
	if !strings.Contains(doc.Content, "8.0 QUALITY ASSURANCE & CONTROLS") {
		t.Error("expected the 13-step governance variant")
	}
	for _, banned := range []string{"COMPLIANCE", "RISK & CONTROL", "FINANCIAL IMPACT"} {
		if strings.Contains(doc.Content, banned) {
			t.Errorf("13-step document should not contain %q", banned)
		}
	}
}

func TestBuildEmptyBriefFallsBack(t *testing.T) {
	g := testGenerator()
	p := testPayload()
	p.Brief = "   "

	doc, err := g.Build(p, Depth13)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(doc.Content, "Input Signal: "+DefaultBrief) {
		t.Errorf("expected default brief %q in content", DefaultBrief)
	}
}

func TestBuildInvalidDepth(t *testing.T) {
	g := testGenerator()
	if _, err := g.Build(testPayload(), Depth(7)); err == nil {
		t.Fatal("expected an error for unsupported depth")
	}
}

func TestBuildDeterministicWithSeed(t *testing.T) {
	a := testGenerator()
	b := testGenerator()

	docA, err := a.Build(testPayload(), Depth26)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	docB, err := b.Build(testPayload(), Depth26)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if docA.ID != docB.ID {
		t.Errorf("same seed produced different IDs: %s vs %s", docA.ID, docB.ID)
	}
	if docA.Content != docB.Content {
		t.Error("same seed produced different content")
	}
}

func TestParseDepth(t *testing.T) {
	if d, ok := ParseDepth("13"); !ok || d != Depth13 {
		t.Errorf("ParseDepth(13) = %d, %v", d, ok)
	}
	if d, ok := ParseDepth("26"); !ok || d != Depth26 {
		t.Errorf("ParseDepth(26) = %d, %v", d, ok)
	}
	if _, ok := ParseDepth("12"); ok {
		t.Error("ParseDepth(12) should fail")
	}
	if _, ok := ParseDepth(""); ok {
		t.Error("ParseDepth(empty) should fail")
	}
}
