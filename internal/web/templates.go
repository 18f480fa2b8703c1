package web

import "html/template"

// layoutTemplate is the shell shared by every page: nav, notice toast,
// and the sign-in modal. Each page provides a "content" template.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — SOPMaster</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <div class="shell">
    <header class="nav">
      <div class="container nav-inner">
        <a class="brand" href="/"><span class="brand-badge"></span><span>SOPMaster</span></a>
        <nav class="nav-links">
          <a class="pill{{if eq .Path "/"}} active{{end}}" href="/">Home</a>
          <a class="pill{{if .InApp}} active{{end}}" href="/app/dashboard">Dashboard</a>
          <a class="pill" href="/app/builder">SOP Builder</a>
          <a class="pill" href="/app/pricing">Pricing</a>
          <a class="pill" href="/app/support">Support</a>
        </nav>
        <div class="row">
          {{if .User}}
          <form method="post" action="/auth/logout"><button class="ghost" type="submit">Log out</button></form>
          {{else}}
          <a class="cta" href="{{.Path}}?login=1">Sign up / Log in</a>
          {{end}}
        </div>
      </div>
    </header>
    <main id="view">
      {{template "content" .}}
    </main>
    {{if .Notice}}<div class="toast on">{{.Notice}}</div>{{end}}
    {{template "authmodal" .}}
  </div>
</body>
</html>`

// authModalTemplate renders the sign-up/log-in overlay. The underlying
// page stays visible (degraded) behind it.
const authModalTemplate = `{{define "authmodal"}}{{if .ShowAuthModal}}
<div class="modal-backdrop">
  <div class="modal">
    <header>
      <div class="row space-between">
        <div>
          <h2>Sign up / Log in</h2>
          <p>Continue with Google (requires an OAuth provider) or use email verification.</p>
        </div>
        <a class="btn" href="{{.Path}}">Close</a>
      </div>
    </header>
    <div class="content">
      <div class="split">
        <div class="auth-card">
          <h3>Continue with Google</h3>
          <p class="small">For a production build, connect your identity provider. For now, this simulates a Google login: enter your email and you are signed in immediately.</p>
          <form method="post" action="/auth/google">
            <input type="hidden" name="return" value="{{.Path}}">
            <div class="field">
              <div class="label">Email</div>
              <input class="input" name="email" placeholder="you@company.com" autocomplete="email">
            </div>
            <div class="actions"><button class="btn primary" type="submit">Continue</button></div>
          </form>
        </div>
        <div class="auth-card">
          <h3>Continue with email</h3>
          <p class="small">We&rsquo;ll send a verification code. If email sending is not configured, the code will be shown on-screen.</p>
          <form method="post" action="/auth/code/request">
            <input type="hidden" name="return" value="{{.Path}}">
            <div class="field">
              <div class="label">Email</div>
              <input class="input" name="email" value="{{.AuthEmail}}" placeholder="you@company.com" autocomplete="email">
            </div>
            <div class="actions"><button class="btn primary" type="submit">Send verification code</button></div>
          </form>
          {{if .CodeStage}}
          <form method="post" action="/auth/code/verify">
            <input type="hidden" name="return" value="{{.Path}}">
            <div class="field">
              <div class="label">Verification code</div>
              <input class="input" name="code" placeholder="123456" inputmode="numeric">
              <div class="hint">{{.CodeHint}}</div>
            </div>
            <div class="actions"><button class="btn primary" type="submit">Verify &amp; continue</button></div>
          </form>
          {{end}}
        </div>
      </div>
      <div class="hr"></div>
      <p class="small">By continuing you agree to the <a href="/terms">Terms</a> and <a href="/privacy">Privacy</a>.</p>
    </div>
  </div>
</div>
{{end}}{{end}}`

const homeBody = `<section class="hero">
  <div class="container">
    <div class="hero-grid">
      <div>
        <div class="kicker"><span class="spark"></span> Self-serve SOPs in minutes. Enterprise standard. Zero training.</div>
        <h1 class="h-title">Build bulletproof SOPs in minutes — then roll them out across every site, team, and client.</h1>
        <p class="h-sub">
          SOPMaster turns a few words or a short brief into a complete operating procedure with governance, QA, and execution steps.
          Generate concise 13-step SOPs fast, or full enterprise 26-step SOPs when you need depth.
        </p>
        <div class="hero-actions">
          {{if .User}}<a class="cta" href="/app/dashboard">Go to dashboard</a>{{else}}<a class="cta" href="/?login=1">Sign up (Google or email)</a>{{end}}
          <a class="ghost" href="/app/builder">See the SOP Builder</a>
        </div>
        <div class="section">
          <div class="grid3">
            <div class="card">
              <h3>1) Input</h3>
              <p>Enter name, company, SOP category and title — then add a short brief (even two words).</p>
            </div>
            <div class="card">
              <h3>2) Generate</h3>
              <p>Choose a 13-step SOP (fast) or a 26-step SOP (enterprise). SOPMaster drafts structure, steps, controls, and outputs.</p>
            </div>
            <div class="card">
              <h3>3) Deploy</h3>
              <p>Use the SOP in your team immediately. Track throughput and hours saved from your dashboard.</p>
            </div>
          </div>
        </div>
      </div>
      <div class="hero-card">
        <div class="mini-stat">
          <div>
            <div class="label">SOPs built this month</div>
            <div class="value">{{.Stats.SOPs}}</div>
          </div>
          <div class="right">
            <div class="label">Hours saved</div>
            <div class="value">{{.Stats.HoursSaved}}</div>
            <div class="note">Tracked in dashboard</div>
          </div>
        </div>
        <div class="mini-stat">
          <div>
            <div class="label">Two-word prompt example</div>
            <div class="value small-value">&ldquo;Digital Marketing&rdquo;</div>
            <div class="note">Generates a complete SOP structure</div>
          </div>
          <div class="right"><span class="tag">No templates</span></div>
        </div>
      </div>
    </div>
    <div class="section">
      <div class="card">
        <h3>Why agencies choose SOPMaster</h3>
        <p>
          Consistency beats heroics. SOPMaster standardises delivery, reduces dependency on senior staff, and creates a repeatable operating layer
          across locations or client accounts.
        </p>
      </div>
    </div>
  </div>
</section>`

const dashboardBody = `<div class="app-shell"><div class="container"><div class="app-grid">
  {{template "sidebar" .}}
  <section>
    <div class="panel">
      <div class="row space-between">
        <div>
          <h2 class="h2">Dashboard</h2>
          <p class="p">A simple operational view of your throughput and time saved this month.</p>
        </div>
        <div class="row">
          <span class="badge">Month: <span id="monthKey">{{.Stats.MonthKey}}</span></span>
          <form method="post" action="/app/dashboard/reset"><button class="btn danger" type="submit">Reset month</button></form>
        </div>
      </div>
      <div class="hr"></div>
      <div class="kpi-grid">
        <div class="kpi">
          <div class="label">SOPs created this month</div>
          <div class="value" id="kpiSops">{{.Stats.SOPs}}</div>
          <div class="hint">Counts all saved generations.</div>
        </div>
        <div class="kpi">
          <div class="label">Hours saved this month</div>
          <div class="value" id="kpiHours">{{.Stats.HoursSaved}}</div>
          <div class="hint">Calculated conservatively from SOP length.</div>
        </div>
      </div>
      <div class="hr"></div>
      <div class="row space-between">
        <div>
          <h3>Recent SOPs</h3>
          <p class="p">Your most recently saved documents.</p>
        </div>
        <a class="cta" href="/app/builder">Create an SOP</a>
      </div>
      {{if .Recent}}
      <table class="table">
        <thead><tr><th>Title</th><th>Category</th><th>Length</th><th>Created</th></tr></thead>
        <tbody>
        {{range .Recent}}
          <tr>
            <td>{{.Title}}</td>
            <td><span class="tag">{{.Category}}</span></td>
            <td>{{.Depth}} steps</td>
            <td>{{.CreatedAt.Format "02 Jan 2006 15:04"}}</td>
          </tr>
        {{end}}
        </tbody>
      </table>
      {{else}}
      <div class="card"><p class="p">No SOPs yet. Create your first SOP in the Builder.</p></div>
      {{end}}
    </div>
  </section>
</div></div></div>
<script>
(function(){
  var proto = location.protocol === "https:" ? "wss" : "ws";
  var ws = new WebSocket(proto + "://" + location.host + "/ws/stats");
  ws.onmessage = function(ev){
    var s = JSON.parse(ev.data);
    document.getElementById("kpiSops").textContent = s.sops;
    document.getElementById("kpiHours").textContent = s.hours_saved;
    document.getElementById("monthKey").textContent = s.month_key;
  };
})();
</script>`

const sidebarTemplate = `{{define "sidebar"}}<aside class="side">
  <p class="side-title">Workspace</p>
  <a{{if eq .Path "/app/dashboard"}} class="active"{{end}} href="/app/dashboard">Dashboard</a>
  <a{{if eq .Path "/app/builder"}} class="active"{{end}} href="/app/builder">SOP Builder</a>
  <a{{if eq .Path "/app/pricing"}} class="active"{{end}} href="/app/pricing">Pricing</a>
  <a{{if eq .Path "/app/support"}} class="active"{{end}} href="/app/support">Support</a>
  <div class="hr"></div>
  {{if .User}}<div class="small">Signed in as<br><strong>{{.User.Email}}</strong></div>{{end}}
</aside>{{end}}`

const builderBody = `<div class="app-shell"><div class="container"><div class="app-grid">
  {{template "sidebar" .}}
  <section>
    <div class="panel">
      <div class="row space-between">
        <div>
          <h2 class="h2">SOP Builder</h2>
          <p class="p">Enter the core details, then add a brief (even two words). Choose 13-step (fast) or 26-step (enterprise).</p>
        </div>
        <div class="badge">Designed for speed</div>
      </div>
      <div class="hr"></div>
      <div class="stepper">
        <div class="dot{{if ge .Stage 1}} on{{end}}"></div>
        <div class="dot{{if ge .Stage 2}} on{{end}}"></div>
        <div class="dot{{if ge .Stage 3}} on{{end}}"></div>
      </div>

      {{if eq .Stage 1}}
      <form method="post" action="/app/builder/identity">
        <div class="form">
          <div class="field">
            <div class="label">First name</div>
            <input class="input" name="firstName" value="{{.Payload.FirstName}}" placeholder="Jamie" autocomplete="given-name">
          </div>
          <div class="field">
            <div class="label">Last name</div>
            <input class="input" name="lastName" value="{{.Payload.LastName}}" placeholder="Smith" autocomplete="family-name">
          </div>
          <div class="field">
            <div class="label">Company name</div>
            <input class="input" name="company" value="{{.Payload.Company}}" placeholder="SOPMaster Ltd">
          </div>
          <div class="field">
            <div class="label">SOP Category</div>
            <select class="select" name="category">
              {{range $c := .Categories}}<option{{if eq $c $.Payload.Category}} selected{{end}}>{{$c}}</option>{{end}}
            </select>
          </div>
          <div class="field wide">
            <div class="label">SOP Title</div>
            <input class="input" name="title" value="{{.Payload.Title}}" placeholder="Inventory Exposure Across Channels">
            <div class="hint">Example two-word prompt: <span class="tag">Digital Marketing</span></div>
          </div>
        </div>
        <div class="actions"><button class="btn primary" type="submit">Next</button></div>
      </form>
      {{end}}

      {{if eq .Stage 2}}
      <div class="row space-between">
        <div>
          <h3>Input method</h3>
          <p class="p">Choose text input (fast) or reference a video brief (placeholder in this build).</p>
        </div>
        <span class="badge">Step 2 of 3</span>
      </div>
      <div class="hr"></div>
      <form method="post" action="/app/builder/brief">
        <div class="split">
          <div class="auth-card">
            <h3>Text brief</h3>
            <p class="small">Type a short brief. Two words is enough.</p>
            <div class="field">
              <div class="label">Brief</div>
              <textarea class="textarea" name="brief" placeholder="Digital Marketing">{{.Payload.Brief}}</textarea>
              <div class="hint">Short inputs generate strong structure; longer inputs add specificity.</div>
            </div>
          </div>
          <div class="auth-card">
            <h3>Video upload (optional)</h3>
            <p class="small">Video briefs are not processed in this build. In production, this uploads to your backend for transcription.</p>
            <div class="field">
              <div class="label">Video brief attached</div>
              <label class="small"><input type="checkbox" name="videoFile" value="1"> I have a video brief</label>
              <div class="hint">For now, please use text input.</div>
            </div>
          </div>
        </div>
        <div class="actions">
          <button class="btn" type="submit" formaction="/app/builder/back">Back</button>
          <button class="btn primary" type="submit">Next</button>
        </div>
      </form>
      {{end}}

      {{if ge .Stage 3}}
      <div class="row space-between">
        <div>
          <h3>Choose SOP depth</h3>
          <p class="p">13-step SOPs prioritise speed. 26-step SOPs add governance, controls, and enterprise layers.</p>
        </div>
        <span class="badge">Step 3 of 3</span>
      </div>
      <div class="hr"></div>
      <div class="grid3">
        <div class="card">
          <h3>13-step SOP</h3>
          <p>Designed to draft within a short working window. Clear steps, controls, and outputs.</p>
          <div class="hr"></div>
          <div class="row"><span class="tag">Fast</span><span class="small">Target: under 5 minutes</span></div>
          <form method="post" action="/app/builder/generate" class="generate-form">
            <input type="hidden" name="depth" value="13">
            <div class="actions"><button class="btn primary" type="submit">Generate 13-step</button></div>
          </form>
        </div>
        <div class="card">
          <h3>26-step SOP</h3>
          <p>Enterprise build including governance, risk, QA, compliance mapping, SLAs and financial impact analysis.</p>
          <div class="hr"></div>
          <div class="row"><span class="tag">Enterprise</span><span class="small">Target: 10–12 minutes</span></div>
          <form method="post" action="/app/builder/generate" class="generate-form">
            <input type="hidden" name="depth" value="26">
            <div class="actions"><button class="btn primary" type="submit">Generate 26-step</button></div>
          </form>
        </div>
        <div class="card">
          <h3>Output</h3>
          <p>After generation you can copy the SOP, or save it to your dashboard library.</p>
          <div class="hr"></div>
          <form method="post" action="/app/builder/back">
            <div class="actions"><button class="btn" type="submit">Back</button></div>
          </form>
        </div>
      </div>

      <div id="outputArea">
      {{if .Doc}}
      <div class="panel output">
        <div class="row space-between">
          <div>
            <h2 class="h2">{{.Doc.Title}}</h2>
            <div class="row">
              <span class="tag">{{.Doc.Category}}</span>
              <span class="badge">{{.Doc.Depth}} steps</span>
              <span class="badge">Document Type: SOP</span>
            </div>
            <p class="p">Generated for <strong>{{.Doc.Company}}</strong> · Owner: {{.Doc.Owner}}</p>
          </div>
          <div class="actions">
            <button class="btn" type="button" onclick="navigator.clipboard.writeText(document.getElementById('sopText').textContent)">Copy</button>
            <form method="post" action="/app/builder/save"><button class="btn primary" type="submit">Save</button></form>
          </div>
        </div>
        <div class="hr"></div>
        <pre class="code" id="sopText">{{.Doc.Content}}</pre>
      </div>
      {{end}}
      </div>
      {{end}}
    </div>
  </section>
</div></div></div>
<script>
document.querySelectorAll(".generate-form").forEach(function(f){
  f.addEventListener("submit", function(){
    document.getElementById("outputArea").innerHTML =
      '<div class="loading-stage"><h3>Quick pause — grab a coffee.</h3>' +
      '<p>We&rsquo;re drafting your SOP with structure, controls, and step-by-step execution.</p></div>';
  });
});
</script>`

// contentBody wraps the markdown-rendered pages (pricing, support,
// privacy, terms). Workspace pages get the sidebar; public ones do not.
const contentBody = `{{if .InApp}}<div class="app-shell"><div class="container"><div class="app-grid">
  {{template "sidebar" .}}
  <section><div class="panel page-content">{{.Content}}</div></section>
</div></div></div>
{{else}}<div class="container section"><div class="panel page-content">{{.Content}}</div></div>{{end}}`

const notFoundBody = `<div class="container section">
  <div class="panel">
    <h2 class="h2">Not found</h2>
    <p class="p">That page does not exist.</p>
  </div>
</div>`

// pageTemplate builds a full template set for one page body.
func pageTemplate(body string) *template.Template {
	t := template.Must(template.New("layout").Parse(layoutTemplate))
	template.Must(t.Parse(authModalTemplate))
	template.Must(t.Parse(sidebarTemplate))
	template.Must(t.New("content").Parse(body))
	return t
}

var (
	homeTmpl      = pageTemplate(homeBody)
	dashboardTmpl = pageTemplate(dashboardBody)
	builderTmpl   = pageTemplate(builderBody)
	contentTmpl   = pageTemplate(contentBody)
	notFoundTmpl  = pageTemplate(notFoundBody)
)
