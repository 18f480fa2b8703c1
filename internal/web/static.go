package web

import "net/http"

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(styleCSS))
}

// styleCSS is the full stylesheet for the site.
const styleCSS = `:root {
  --bg: #0b0f17;
  --bg-panel: #111827;
  --bg-card: #151e2e;
  --text: #e5e7eb;
  --text-muted: #9ca3af;
  --border: #273246;
  --accent: #22d3ee;
  --accent-2: #7c3aed;
  --danger: #ef4444;
  --radius: 12px;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font: 15px/1.6 -apple-system, "Segoe UI", Roboto, sans-serif;
}
a { color: var(--accent); text-decoration: none; }
.container { max-width: 1100px; margin: 0 auto; padding: 0 20px; }
.row { display: flex; gap: 10px; align-items: center; flex-wrap: wrap; }
.space-between { justify-content: space-between; }
.right { text-align: right; }
.hr { border-top: 1px solid var(--border); margin: 16px 0; }
.small { font-size: 13px; color: var(--text-muted); }

.nav { border-bottom: 1px solid var(--border); background: rgba(11,15,23,.85); position: sticky; top: 0; }
.nav-inner { display: flex; justify-content: space-between; align-items: center; height: 60px; }
.brand { display: flex; align-items: center; gap: 8px; color: var(--text); font-weight: 800; }
.brand-badge { width: 14px; height: 14px; border-radius: 4px; background: linear-gradient(135deg, var(--accent), var(--accent-2)); }
.nav-links { display: flex; gap: 6px; }
.pill { padding: 6px 12px; border-radius: 999px; color: var(--text-muted); }
.pill.active, .pill:hover { background: var(--bg-card); color: var(--text); }
.cta {
  background: linear-gradient(135deg, var(--accent), var(--accent-2));
  color: #0b0f17; font-weight: 700; padding: 9px 16px; border-radius: 10px; border: 0; cursor: pointer;
}
.ghost { background: transparent; border: 1px solid var(--border); color: var(--text); padding: 8px 14px; border-radius: 10px; cursor: pointer; }

.hero { padding: 48px 0; }
.hero-grid { display: grid; grid-template-columns: 1.2fr .8fr; gap: 28px; }
.kicker { color: var(--accent); font-weight: 700; font-size: 13px; }
.h-title { font-size: 38px; line-height: 1.15; margin: 12px 0; }
.h-sub { color: var(--text-muted); }
.hero-actions { display: flex; gap: 10px; margin-top: 16px; }
.hero-card { background: var(--bg-panel); border: 1px solid var(--border); border-radius: var(--radius); padding: 18px; align-self: start; }
.mini-stat { display: flex; justify-content: space-between; background: var(--bg-card); border-radius: 10px; padding: 12px 14px; margin-top: 10px; }
.label { font-size: 12px; color: var(--text-muted); }
.value { font-size: 26px; font-weight: 800; }
.small-value { font-size: 16px; }
.note, .hint { font-size: 12px; color: var(--text-muted); }

.section { margin-top: 28px; padding-bottom: 28px; }
.grid3 { display: grid; grid-template-columns: repeat(3, 1fr); gap: 14px; }
.card { background: var(--bg-card); border: 1px solid var(--border); border-radius: var(--radius); padding: 16px; }
.panel { background: var(--bg-panel); border: 1px solid var(--border); border-radius: var(--radius); padding: 22px; }
.badge { border: 1px solid var(--border); border-radius: 999px; padding: 4px 10px; font-size: 12px; color: var(--text-muted); }
.tag { background: rgba(34,211,238,.12); color: var(--accent); border-radius: 999px; padding: 3px 10px; font-size: 12px; }

.app-shell { padding: 28px 0; }
.app-grid { display: grid; grid-template-columns: 220px 1fr; gap: 20px; }
.side { background: var(--bg-panel); border: 1px solid var(--border); border-radius: var(--radius); padding: 14px; align-self: start; }
.side-title { font-size: 12px; text-transform: uppercase; color: var(--text-muted); margin: 0 0 8px; }
.side a { display: block; color: var(--text); padding: 8px 10px; border-radius: 8px; }
.side a.active, .side a:hover { background: var(--bg-card); }

.kpi-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 14px; }
.kpi { background: var(--bg-card); border: 1px solid var(--border); border-radius: var(--radius); padding: 16px; }
.table { width: 100%; border-collapse: collapse; margin-top: 12px; }
.table th, .table td { text-align: left; padding: 10px; border-bottom: 1px solid var(--border); }
.table th { font-size: 12px; text-transform: uppercase; color: var(--text-muted); }

.stepper { display: flex; gap: 8px; margin-bottom: 18px; }
.dot { width: 10px; height: 10px; border-radius: 999px; background: var(--border); }
.dot.on { background: var(--accent); }
.form { display: grid; grid-template-columns: 1fr 1fr; gap: 14px; }
.field.wide { grid-column: 1 / -1; }
.input, .select, .textarea {
  width: 100%; background: var(--bg); color: var(--text);
  border: 1px solid var(--border); border-radius: 10px; padding: 10px 12px;
}
.textarea { min-height: 110px; resize: vertical; }
.actions { display: flex; gap: 10px; margin-top: 14px; }
.btn { background: var(--bg-card); color: var(--text); border: 1px solid var(--border); border-radius: 10px; padding: 9px 16px; cursor: pointer; }
.btn.primary { background: linear-gradient(135deg, var(--accent), var(--accent-2)); color: #0b0f17; font-weight: 700; border: 0; }
.btn.danger { border-color: var(--danger); color: var(--danger); }
.split { display: grid; grid-template-columns: 1fr 1fr; gap: 14px; }
.auth-card { background: var(--bg-card); border: 1px solid var(--border); border-radius: var(--radius); padding: 16px; }

.output { margin-top: 16px; }
.code {
  background: var(--bg); border: 1px solid var(--border); border-radius: 10px;
  padding: 16px; white-space: pre-wrap; font: 13px/1.55 ui-monospace, monospace;
  max-height: 520px; overflow: auto;
}
.loading-stage { text-align: center; padding: 60px 0; }

.toast {
  position: fixed; bottom: 22px; left: 50%; transform: translateX(-50%);
  background: var(--bg-card); border: 1px solid var(--border); border-radius: 10px;
  padding: 10px 18px; opacity: 0; transition: opacity .3s;
}
.toast.on { opacity: 1; }

.modal-backdrop {
  position: fixed; inset: 0; background: rgba(0,0,0,.6);
  display: flex; align-items: center; justify-content: center; padding: 20px; z-index: 50;
}
.modal {
  background: var(--bg-panel); border: 1px solid var(--border); border-radius: var(--radius);
  max-width: 760px; width: 100%; padding: 22px; max-height: 90vh; overflow: auto;
}
.page-content h1 { margin-top: 0; }
.page-content h2 { border-bottom: 1px solid var(--border); padding-bottom: 6px; }

@media (max-width: 860px) {
  .hero-grid, .app-grid, .grid3, .split, .form, .kpi-grid { grid-template-columns: 1fr; }
}
`
