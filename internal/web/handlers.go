package web

import (
	"html/template"
	"log"
	"net/http"

	"github.com/sopmaster25-create/sopmaster/internal/store"
)

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, false)
}

// renderHome draws the landing page. forceModal is set when a workspace
// page falls back here for an unauthenticated visitor: the page renders
// degraded with the sign-in overlay on top.
func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, forceModal bool) {
	page := homePage{basePage: h.base(r, "Home")}
	if forceModal {
		page.ShowAuthModal = true
	}

	ms, err := h.stats.Read(r.Context())
	if err != nil {
		log.Printf("web: reading stats for home: %v", err)
		ms = store.MonthlyStats{}
	}
	page.Stats = ms

	h.render(w, http.StatusOK, homeTmpl, page)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		h.renderHome(w, r, true)
		return
	}

	page := dashboardPage{basePage: h.base(r, "Dashboard")}

	ms, err := h.stats.Read(r.Context())
	if err != nil {
		log.Printf("web: reading stats: %v", err)
	}
	page.Stats = ms

	recent, err := h.store.RecentSOPs(r.Context(), 8)
	if err != nil {
		log.Printf("web: listing recent sops: %v", err)
	}
	page.Recent = recent

	h.render(w, http.StatusOK, dashboardTmpl, page)
}

func (h *Handler) handleStatsReset(w http.ResponseWriter, r *http.Request) {
	if h.currentUser(r) == nil {
		redirectLogin(w, r, "/app/dashboard", "1", "", "", false)
		return
	}

	ms, err := h.stats.ResetMonth(r.Context())
	if err != nil {
		log.Printf("web: resetting month: %v", err)
		redirectNotice(w, r, "/app/dashboard", "Could not reset the month.")
		return
	}
	h.hub.Broadcast(ms)
	redirectNotice(w, r, "/app/dashboard", "Month reset.")
}

// handleContent serves a markdown-rendered static page.
func (h *Handler) handleContent(title string, content template.HTML) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := contentPage{basePage: h.base(r, title), Content: content}
		// Workspace content pages degrade like the rest of /app/*.
		if page.InApp && page.User == nil {
			page.ShowAuthModal = true
		}
		h.render(w, http.StatusOK, contentTmpl, page)
	}
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, notFoundTmpl, h.base(r, "Not found"))
}
