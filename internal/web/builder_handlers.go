package web

import (
	"log"
	"net/http"
	"time"

	"github.com/sopmaster25-create/sopmaster/internal/auth"
	"github.com/sopmaster25-create/sopmaster/internal/builder"
	"github.com/sopmaster25-create/sopmaster/internal/sop"
	"github.com/sopmaster25-create/sopmaster/internal/store"
)

const builderPath = "/app/builder"

// wizardFor returns the request's wizard, or nil with a degraded render
// when the visitor is not signed in.
func (h *Handler) wizardFor(w http.ResponseWriter, r *http.Request) *builder.Wizard {
	if h.currentUser(r) == nil {
		h.renderHome(w, r, true)
		return nil
	}
	sid, ok := auth.SessionID(r)
	if !ok {
		h.renderHome(w, r, true)
		return nil
	}
	return h.wizards.Get(sid)
}

func (h *Handler) handleBuilder(w http.ResponseWriter, r *http.Request) {
	wiz := h.wizardFor(w, r)
	if wiz == nil {
		return
	}

	page := builderPage{
		basePage:   h.base(r, "SOP Builder"),
		Stage:      int(wiz.Stage),
		Payload:    wiz.Payload,
		Doc:        wiz.Document,
		Categories: categories,
	}
	h.render(w, http.StatusOK, builderTmpl, page)
}

func (h *Handler) handleBuilderIdentity(w http.ResponseWriter, r *http.Request) {
	wiz := h.wizardFor(w, r)
	if wiz == nil {
		return
	}

	err := wiz.SubmitIdentity(
		r.FormValue("firstName"),
		r.FormValue("lastName"),
		r.FormValue("company"),
		r.FormValue("category"),
		r.FormValue("title"),
	)
	if err != nil {
		redirectNotice(w, r, builderPath, "Please complete all fields.")
		return
	}
	redirectNotice(w, r, builderPath, "")
}

func (h *Handler) handleBuilderBrief(w http.ResponseWriter, r *http.Request) {
	wiz := h.wizardFor(w, r)
	if wiz == nil {
		return
	}

	if err := wiz.SubmitBrief(r.FormValue("brief"), r.FormValue("videoFile") == "1"); err != nil {
		redirectNotice(w, r, builderPath, "Add a short text brief (two words is enough).")
		return
	}
	redirectNotice(w, r, builderPath, "")
}

func (h *Handler) handleBuilderBack(w http.ResponseWriter, r *http.Request) {
	wiz := h.wizardFor(w, r)
	if wiz == nil {
		return
	}
	wiz.Back()
	redirectNotice(w, r, builderPath, "")
}

func (h *Handler) handleBuilderGenerate(w http.ResponseWriter, r *http.Request) {
	wiz := h.wizardFor(w, r)
	if wiz == nil {
		return
	}

	depth, ok := sop.ParseDepth(r.FormValue("depth"))
	if !ok {
		redirectNotice(w, r, builderPath, "Choose a 13-step or 26-step SOP.")
		return
	}

	// The drafting pause is cosmetic and cannot be cancelled.
	time.Sleep(h.delay)

	if _, err := wiz.Generate(h.gen, depth); err != nil {
		log.Printf("web: generating sop: %v", err)
		redirectNotice(w, r, builderPath, "Could not generate the SOP.")
		return
	}
	redirectNotice(w, r, builderPath, "")
}

func (h *Handler) handleBuilderSave(w http.ResponseWriter, r *http.Request) {
	wiz := h.wizardFor(w, r)
	if wiz == nil {
		return
	}

	doc := wiz.Document
	if doc == nil {
		redirectNotice(w, r, builderPath, "Generate an SOP first.")
		return
	}

	err := h.store.AppendSOP(r.Context(), store.SOP{
		Title:     doc.Title,
		Category:  doc.Category,
		Depth:     int(doc.Depth),
		Content:   doc.Content,
		CreatedAt: doc.GeneratedAt,
	})
	if err != nil {
		log.Printf("web: saving sop: %v", err)
		redirectNotice(w, r, builderPath, "Could not save the SOP.")
		return
	}

	ms, err := h.stats.RecordSave(r.Context(), doc.Depth)
	if err != nil {
		log.Printf("web: recording save: %v", err)
	} else {
		h.hub.Broadcast(ms)
	}

	redirectNotice(w, r, builderPath, "Saved. Dashboard updated.")
}
