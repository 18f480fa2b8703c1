// Package web serves the SOPMaster pages. Every navigation renders a
// full page from the current path and persisted state; there is no
// client-side routing.
package web

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sopmaster25-create/sopmaster/internal/auth"
	"github.com/sopmaster25-create/sopmaster/internal/builder"
	"github.com/sopmaster25-create/sopmaster/internal/sop"
	"github.com/sopmaster25-create/sopmaster/internal/stats"
	"github.com/sopmaster25-create/sopmaster/internal/store"
)

// categories are the selectable SOP categories, in display order.
var categories = []string{
	"Operations", "Marketing", "Ecommerce", "Customer Support", "Finance",
	"HR", "Compliance", "Sales", "Fulfilment", "Analytics",
}

// Handler renders all pages and owns the per-session builder wizards.
type Handler struct {
	store    *store.Store
	stats    *stats.Aggregator
	auth     *auth.Service
	sessions *auth.Sessions
	wizards  *builder.Registry
	gen      *sop.Generator
	delay    time.Duration
	hub      *Hub
}

// New creates a Handler. delay is the cosmetic drafting pause applied
// before each generation.
func New(st *store.Store, agg *stats.Aggregator, svc *auth.Service, sessions *auth.Sessions, gen *sop.Generator, delay time.Duration) *Handler {
	return &Handler{
		store:    st,
		stats:    agg,
		auth:     svc,
		sessions: sessions,
		wizards:  builder.NewRegistry(),
		gen:      gen,
		delay:    delay,
		hub:      NewHub(),
	}
}

// RegisterRoutes mounts all pages and actions onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/privacy", h.handleContent("Privacy", privacyHTML))
	r.Get("/terms", h.handleContent("Terms", termsHTML))

	r.Get("/app/dashboard", h.handleDashboard)
	r.Get("/app/builder", h.handleBuilder)
	r.Get("/app/pricing", h.handleContent("Pricing", pricingHTML))
	r.Get("/app/support", h.handleContent("Support", supportHTML))

	r.Post("/auth/google", h.handleGoogleLogin)
	r.Post("/auth/code/request", h.handleCodeRequest)
	r.Post("/auth/code/verify", h.handleCodeVerify)
	r.Post("/auth/logout", h.handleLogout)

	r.Post("/app/builder/identity", h.handleBuilderIdentity)
	r.Post("/app/builder/brief", h.handleBuilderBrief)
	r.Post("/app/builder/back", h.handleBuilderBack)
	r.Post("/app/builder/generate", h.handleBuilderGenerate)
	r.Post("/app/builder/save", h.handleBuilderSave)

	r.Post("/app/dashboard/reset", h.handleStatsReset)

	r.Get("/ws/stats", h.hub.Handle)
	r.Get("/static/style.css", handleStylesheet)

	r.NotFound(h.handleNotFound)
}

// basePage carries the fields every page template expects.
type basePage struct {
	Title         string
	Path          string
	InApp         bool
	User          *store.User
	Notice        string
	ShowAuthModal bool
	CodeStage     bool
	AuthEmail     string
	CodeHint      string
}

type homePage struct {
	basePage
	Stats store.MonthlyStats
}

type dashboardPage struct {
	basePage
	Stats  store.MonthlyStats
	Recent []store.SOP
}

type builderPage struct {
	basePage
	Stage      int
	Payload    sop.Payload
	Doc        *sop.Document
	Categories []string
}

type contentPage struct {
	basePage
	Content template.HTML
}

// currentUser resolves the request's session to a user, or nil.
func (h *Handler) currentUser(r *http.Request) *store.User {
	uid, ok := h.sessions.UserID(r)
	if !ok {
		return nil
	}
	u, err := h.store.UserByID(r.Context(), uid)
	if err != nil {
		log.Printf("web: resolving session user: %v", err)
		return nil
	}
	return u
}

// base assembles the shared page state from the request: current user,
// transient notice, and the sign-in modal state carried in the query.
func (h *Handler) base(r *http.Request, title string) basePage {
	q := r.URL.Query()
	p := basePage{
		Title:  title,
		Path:   r.URL.Path,
		InApp:  len(r.URL.Path) >= 5 && r.URL.Path[:5] == "/app/",
		User:   h.currentUser(r),
		Notice: q.Get("notice"),
	}

	switch q.Get("login") {
	case "1":
		p.ShowAuthModal = true
	case "code":
		p.ShowAuthModal = true
		p.CodeStage = true
		p.AuthEmail = q.Get("email")
		p.CodeHint = h.codeHint(r, q.Get("sent") == "1")
	}
	return p
}

// codeHint builds the message under the verification-code input. When
// the code was not delivered by email, it is shown here directly.
func (h *Handler) codeHint(r *http.Request, delivered bool) string {
	if delivered {
		return "Code sent. Enter it above."
	}
	ch, err := h.store.Challenge(r.Context())
	if err != nil || ch == nil {
		return "Please send a code first."
	}
	return "Email sending not configured. Demo code: " + ch.Code
}

// render executes the template into a buffer first so a failure can
// still produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, status int, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("web: rendering %s: %v", t.Name(), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// redirectNotice sends a see-other redirect carrying a transient notice.
func redirectNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	v := url.Values{}
	if notice != "" {
		v.Set("notice", notice)
	}
	target := path
	if len(v) > 0 {
		target += "?" + v.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// redirectLogin reopens the sign-in modal on the given page, optionally
// at the code stage, with a notice.
func redirectLogin(w http.ResponseWriter, r *http.Request, path, stage, email, notice string, sent bool) {
	v := url.Values{}
	v.Set("login", stage)
	if email != "" {
		v.Set("email", email)
	}
	if sent {
		v.Set("sent", "1")
	}
	if notice != "" {
		v.Set("notice", notice)
	}
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}
