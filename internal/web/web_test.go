package web

import (
	"io"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sopmaster25-create/sopmaster/internal/auth"
	"github.com/sopmaster25-create/sopmaster/internal/sop"
	"github.com/sopmaster25-create/sopmaster/internal/stats"
	"github.com/sopmaster25-create/sopmaster/internal/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	clock := func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) }

	svc := auth.New(st, nil)
	svc.Now = clock
	svc.Rand = rand.New(rand.NewSource(1))

	gen := &sop.Generator{Now: clock, Rand: rand.New(rand.NewSource(1))}

	return New(st, stats.NewWithClock(st, clock), svc, auth.NewSessions(false), gen, 0)
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	r := chi.NewRouter()
	h := newTestHandler(t)
	h.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return srv, &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func post(t *testing.T, client *http.Client, url string, form url.Values) (int, string) {
	t.Helper()
	resp, err := client.PostForm(url, form)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

// signIn completes the simulated Google login and follows the redirect
// to the dashboard.
func signIn(t *testing.T, client *http.Client, baseURL, email string) {
	t.Helper()
	status, body := post(t, client, baseURL+"/auth/google", url.Values{
		"email":  {email},
		"return": {"/"},
	})
	if status != http.StatusOK {
		t.Fatalf("sign-in status = %d", status)
	}
	if !strings.Contains(body, "Signed in.") {
		t.Fatal("expected the signed-in notice on the dashboard")
	}
}

func TestHomeRenders(t *testing.T) {
	srv, client := newTestServer(t)

	status, body := get(t, client, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "SOPMaster") {
		t.Error("landing page missing brand")
	}
	if strings.Contains(body, "modal-backdrop") {
		t.Error("auth modal should be closed by default")
	}
}

func TestLoginQueryOpensModal(t *testing.T) {
	srv, client := newTestServer(t)

	_, body := get(t, client, srv.URL+"/?login=1")
	if !strings.Contains(body, "modal-backdrop") {
		t.Error("login=1 should open the auth modal")
	}
	if !strings.Contains(body, "Continue with Google") {
		t.Error("modal missing the Google card")
	}
}

func TestWorkspaceDegradesWhenSignedOut(t *testing.T) {
	srv, client := newTestServer(t)

	for _, path := range []string{"/app/dashboard", "/app/builder"} {
		status, body := get(t, client, srv.URL+path)
		if status != http.StatusOK {
			t.Errorf("GET %s status = %d", path, status)
		}
		if !strings.Contains(body, "modal-backdrop") {
			t.Errorf("GET %s should render with the sign-in overlay", path)
		}
	}
}

func TestContentPagesRender(t *testing.T) {
	srv, client := newTestServer(t)

	pages := map[string]string{
		"/privacy":     "Privacy",
		"/terms":       "Terms",
		"/app/pricing": "Pricing",
		"/app/support": "Support",
	}
	for path, want := range pages {
		status, body := get(t, client, srv.URL+path)
		if status != http.StatusOK {
			t.Errorf("GET %s status = %d", path, status)
		}
		if !strings.Contains(body, want) {
			t.Errorf("GET %s missing %q", path, want)
		}
	}
}

func TestNotFound(t *testing.T) {
	srv, client := newTestServer(t)

	status, _ := get(t, client, srv.URL+"/no/such/page")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestStylesheetServed(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/static/style.css")
	if err != nil {
		t.Fatalf("GET stylesheet: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("content type = %q", ct)
	}
}

func TestGoogleLoginRejectsBadEmail(t *testing.T) {
	srv, client := newTestServer(t)

	_, body := post(t, client, srv.URL+"/auth/google", url.Values{
		"email":  {"not-an-email"},
		"return": {"/"},
	})
	if !strings.Contains(body, "Please enter a valid email.") {
		t.Error("expected the invalid-email notice")
	}
}

func TestGoogleLoginFlow(t *testing.T) {
	srv, client := newTestServer(t)
	signIn(t, client, srv.URL, "jamie@example.com")

	status, body := get(t, client, srv.URL+"/app/dashboard")
	if status != http.StatusOK {
		t.Fatalf("dashboard status = %d", status)
	}
	if strings.Contains(body, "modal-backdrop") {
		t.Error("signed-in dashboard should not show the auth modal")
	}
	if !strings.Contains(body, "jamie@example.com") {
		t.Error("dashboard should show the signed-in email")
	}
}

func TestEmailCodeFlow(t *testing.T) {
	srv, client := newTestServer(t)

	// Request a code. No sender is configured, so the page shows it.
	_, body := post(t, client, srv.URL+"/auth/code/request", url.Values{
		"email":  {"jamie@example.com"},
		"return": {"/"},
	})
	if !strings.Contains(body, "Code generated.") {
		t.Fatal("expected the code-generated notice")
	}
	m := regexp.MustCompile(`Demo code: (\d{6})`).FindStringSubmatch(body)
	if m == nil {
		t.Fatal("on-screen demo code not shown")
	}

	// A wrong code keeps the code stage open.
	_, body = post(t, client, srv.URL+"/auth/code/verify", url.Values{
		"code":   {"000000"},
		"return": {"/"},
	})
	if !strings.Contains(body, "Incorrect code.") {
		t.Error("expected the incorrect-code notice")
	}

	// The right code signs in.
	_, body = post(t, client, srv.URL+"/auth/code/verify", url.Values{
		"code":   {m[1]},
		"return": {"/"},
	})
	if !strings.Contains(body, "Signed in.") {
		t.Error("expected to land signed in on the dashboard")
	}
}

func TestVerifyWithoutChallenge(t *testing.T) {
	srv, client := newTestServer(t)

	_, body := post(t, client, srv.URL+"/auth/code/verify", url.Values{
		"code":   {"123456"},
		"return": {"/"},
	})
	if !strings.Contains(body, "Please send a code first.") {
		t.Error("expected the no-challenge notice")
	}
}

func TestLogout(t *testing.T) {
	srv, client := newTestServer(t)
	signIn(t, client, srv.URL, "jamie@example.com")

	_, body := post(t, client, srv.URL+"/auth/logout", nil)
	if !strings.Contains(body, "Logged out.") {
		t.Error("expected the logged-out notice")
	}

	_, body = get(t, client, srv.URL+"/app/dashboard")
	if !strings.Contains(body, "modal-backdrop") {
		t.Error("workspace should degrade again after logout")
	}
}

func TestBuilderFullFlow(t *testing.T) {
	srv, client := newTestServer(t)
	signIn(t, client, srv.URL, "jamie@example.com")

	// Stage 1: identity.
	_, body := post(t, client, srv.URL+"/app/builder/identity", url.Values{
		"firstName": {"Jamie"},
		"lastName":  {"Smith"},
		"company":   {"Acme Ltd"},
		"category":  {"Operations"},
		"title":     {"Weekly Inventory Reconciliation"},
	})
	if !strings.Contains(body, "brief") {
		t.Fatal("expected the brief stage after identity")
	}

	// Stage 2: brief.
	post(t, client, srv.URL+"/app/builder/brief", url.Values{
		"brief": {"Reconcile warehouse counts against the ERP."},
	})

	// Stage 3: generate a fast draft.
	_, body = post(t, client, srv.URL+"/app/builder/generate", url.Values{
		"depth": {"13"},
	})
	if !strings.Contains(body, "0.0 EXECUTIVE SUMMARY") {
		t.Fatal("generated document not shown")
	}
	if !strings.Contains(body, "Weekly Inventory Reconciliation") {
		t.Error("document missing the title")
	}

	// Save it and check the dashboard.
	_, body = post(t, client, srv.URL+"/app/builder/save", nil)
	if !strings.Contains(body, "Saved. Dashboard updated.") {
		t.Fatal("expected the saved notice")
	}

	_, body = get(t, client, srv.URL+"/app/dashboard")
	if !strings.Contains(body, `id="kpiSops">1<`) {
		t.Error("dashboard KPI should show one saved document")
	}
	if !strings.Contains(body, `id="kpiHours">2<`) {
		t.Error("a fast draft saves two hours")
	}
	if !strings.Contains(body, "Weekly Inventory Reconciliation") {
		t.Error("recent table missing the saved document")
	}
}

func TestBuilderValidationNotices(t *testing.T) {
	srv, client := newTestServer(t)
	signIn(t, client, srv.URL, "jamie@example.com")

	_, body := post(t, client, srv.URL+"/app/builder/identity", url.Values{
		"firstName": {"Jamie"},
	})
	if !strings.Contains(body, "Please complete all fields.") {
		t.Error("expected the incomplete-identity notice")
	}

	_, body = post(t, client, srv.URL+"/app/builder/save", nil)
	if !strings.Contains(body, "Generate an SOP first.") {
		t.Error("expected the generate-first notice")
	}
}

func TestBuilderBackKeepsValues(t *testing.T) {
	srv, client := newTestServer(t)
	signIn(t, client, srv.URL, "jamie@example.com")

	post(t, client, srv.URL+"/app/builder/identity", url.Values{
		"firstName": {"Jamie"},
		"lastName":  {"Smith"},
		"company":   {"Acme Ltd"},
		"category":  {"Operations"},
		"title":     {"Weekly Close"},
	})
	_, body := post(t, client, srv.URL+"/app/builder/back", nil)
	if !strings.Contains(body, `value="Acme Ltd"`) {
		t.Error("identity values should be kept when stepping back")
	}
}

func TestSavingTwiceAddsTwoRows(t *testing.T) {
	srv, client := newTestServer(t)
	signIn(t, client, srv.URL, "jamie@example.com")

	post(t, client, srv.URL+"/app/builder/identity", url.Values{
		"firstName": {"Jamie"},
		"lastName":  {"Smith"},
		"company":   {"Acme Ltd"},
		"category":  {"Operations"},
		"title":     {"Weekly Close"},
	})
	post(t, client, srv.URL+"/app/builder/brief", url.Values{"brief": {"Close the books."}})
	post(t, client, srv.URL+"/app/builder/generate", url.Values{"depth": {"26"}})

	post(t, client, srv.URL+"/app/builder/save", nil)
	post(t, client, srv.URL+"/app/builder/save", nil)

	_, body := get(t, client, srv.URL+"/app/dashboard")
	if !strings.Contains(body, `id="kpiSops">2<`) {
		t.Error("each save should count separately")
	}
	if !strings.Contains(body, `id="kpiHours">10<`) {
		t.Error("two enterprise saves credit ten hours")
	}
}

func TestStatsReset(t *testing.T) {
	srv, client := newTestServer(t)
	signIn(t, client, srv.URL, "jamie@example.com")

	post(t, client, srv.URL+"/app/builder/identity", url.Values{
		"firstName": {"Jamie"},
		"lastName":  {"Smith"},
		"company":   {"Acme Ltd"},
		"category":  {"Operations"},
		"title":     {"Weekly Close"},
	})
	post(t, client, srv.URL+"/app/builder/brief", url.Values{"brief": {"Close the books."}})
	post(t, client, srv.URL+"/app/builder/generate", url.Values{"depth": {"13"}})
	post(t, client, srv.URL+"/app/builder/save", nil)

	_, body := post(t, client, srv.URL+"/app/dashboard/reset", nil)
	if !strings.Contains(body, "Month reset.") {
		t.Fatal("expected the reset notice")
	}
	if !strings.Contains(body, `id="kpiSops">0<`) {
		t.Error("KPIs should read zero after reset")
	}
}
