package site

// pageTemplate is the Go html/template for the cheat sheet page.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Page.Lang}}"{{if .Light}} data-theme="light"{{end}}{{if .Live}} data-live="true"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Page.Header.Eyebrow}} — {{.Page.Header.Title}}</title>
  <link rel="stylesheet" href="style.css">
  <script>{{.Boot}}</script>
</head>
<body>
<div class="page">
  <header class="hero" id="{{.Page.Header.Anchor}}">
    <div class="hero__actions">
      {{with .Page.Header.Toggle}}<button class="theme-toggle" id="theme-toggle" type="button"
        aria-pressed="{{.Pressed}}" aria-label="{{.Label}}" title="{{.Label}}"
        data-label-to-light="{{$.ToLight.ToggleLabel}}" data-label-to-dark="{{$.ToDark.ToggleLabel}}"
        data-text-to-light="{{$.SwitchTo}} {{$.ToLight.TargetName}}" data-text-to-dark="{{$.SwitchTo}} {{$.ToDark.TargetName}}"
        data-icon-to-light="{{$.ToLight.Icon}}" data-icon-to-dark="{{$.ToDark.Icon}}">
        <span class="theme-toggle__icon" aria-hidden="true">{{.Icon}}</span>
        <span class="theme-toggle__text">{{.Text}}</span>
      </button>{{end}}
    </div>
    <p class="hero__eyebrow">{{.Page.Header.Eyebrow}}</p>
    <h1 class="hero__title">{{.Page.Header.Title}}</h1>
    <p class="hero__subtitle">{{.Page.Header.Subtitle}}</p>
    <a class="hero__cta" href="{{.Page.Header.JumpHref}}">{{.Page.Header.JumpText}}</a>
  </header>

  <div class="layout">
    <nav class="toc" aria-label="{{.Page.Nav.AriaLabel}}">
      <p class="toc__title">{{.Page.Nav.Title}}</p>
      <ul class="toc__list">
        {{- range .Page.Nav.Entries}}
        <li data-key="{{.Key}}"><a class="toc__link" href="{{.Href}}">{{.Label}}</a></li>
        {{- end}}
      </ul>
    </nav>

    <main class="content">
      {{- range .Sections}}
      <section class="cheatsheet" id="{{.Anchor}}" data-key="{{.Key}}">
        <h2>{{.Title}}</h2>
        <div class="table-card">
          <div class="table-scroll">
            <table class="cheatsheet-table">
              <thead>
                <tr>{{range .Columns}}<th data-key="{{.Key}}">{{.Label}}</th>{{end}}</tr>
              </thead>
              <tbody>
                {{- range .Rows}}
                <tr data-key="{{.Key}}">
                  <td class="cell-method"><code>{{.Method}}</code></td>
                  <td class="cell-description">{{.Description}}</td>
                  <td class="cell-example">{{.Example}}</td>
                  <td class="cell-output"><code>{{.Output}}</code></td>
                </tr>
                {{- end}}
              </tbody>
            </table>
          </div>
        </div>
      </section>
      {{- end}}
    </main>
  </div>

  <footer class="footer">
    <a class="footer__top" href="{{.Page.Footer.TopHref}}">{{.Page.Footer.TopText}}</a>
    <p class="footer__credit">{{.Page.Footer.Credit}}</p>
  </footer>
</div>
<script src="script.js"></script>
</body>
</html>`

// bootScript runs in <head> so the marker is in place before first paint.
// It mirrors the server-side resolution order. A live page already carries
// the server's marker.
const bootScript = `(function() {
  var root = document.documentElement;
  if (root.getAttribute("data-live") === "true") { return; }
  var theme = "dark";
  try {
    var stored = window.localStorage.getItem("theme");
    if (stored === "light" || stored === "dark") {
      theme = stored;
    } else if (typeof window.matchMedia === "function") {
      theme = window.matchMedia("(prefers-color-scheme: light)").matches ? "light" : "dark";
    }
  } catch (e) {}
  if (theme === "light") { root.setAttribute("data-theme", "light"); } else { root.removeAttribute("data-theme"); }
})();`

// jsContent wires the toggle button. In live mode the server owns the value
// and pushes changes over a websocket.
const jsContent = `(function() {
  "use strict";

  var root = document.documentElement;
  var button = document.getElementById("theme-toggle");
  var live = root.getAttribute("data-live") === "true";

  function current() {
    return root.getAttribute("data-theme") === "light" ? "light" : "dark";
  }

  function render(theme) {
    if (!button) return;
    var isLight = theme === "light";
    var target = isLight ? "dark" : "light";
    var label = button.getAttribute("data-label-to-" + target);
    button.setAttribute("aria-pressed", isLight ? "true" : "false");
    button.setAttribute("aria-label", label);
    button.setAttribute("title", label);
    button.querySelector(".theme-toggle__icon").textContent = button.getAttribute("data-icon-to-" + target);
    button.querySelector(".theme-toggle__text").textContent = button.getAttribute("data-text-to-" + target);
  }

  // Marker first, then persistence.
  function apply(theme) {
    if (theme === "light") {
      root.setAttribute("data-theme", "light");
    } else {
      root.removeAttribute("data-theme");
    }
    try { window.localStorage.setItem("theme", theme); } catch (e) {}
    render(theme);
  }

  function toggle() {
    if (!live) {
      apply(current() === "dark" ? "light" : "dark");
      return;
    }
    fetch("api/theme/toggle", { method: "POST" })
      .then(function(r) { return r.json(); })
      .then(function(data) { apply(data.theme); })
      .catch(function() { apply(current() === "dark" ? "light" : "dark"); });
  }

  if (button) {
    button.addEventListener("click", toggle);
  }

  if (live && "WebSocket" in window) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + "/ws/theme");
    ws.onmessage = function(ev) {
      try {
        var msg = JSON.parse(ev.data);
        if (msg.theme === "light" || msg.theme === "dark") { apply(msg.theme); }
      } catch (e) {}
    };
  }

  apply(current());
})();
`

// cssContent is the page CSS. Dark is the default; the light marker opts in.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #0f172a;
  --bg-card: #111c34;
  --bg-header: #172241;
  --text: #e2e8f0;
  --text-muted: #94a3b8;
  --border: #24324f;
  --accent: #f7df1e;
  --accent-text: #0f172a;
  --link: #93c5fd;
  --code-bg: #1e293b;
  --table-stripe: #14203b;
  --shadow: 0 4px 16px rgba(0,0,0,0.35);
  color-scheme: dark;
}

[data-theme="light"] {
  --bg: #f8fafc;
  --bg-card: #ffffff;
  --bg-header: #fef9c3;
  --text: #0f172a;
  --text-muted: #475569;
  --border: #e2e8f0;
  --accent: #ca8a04;
  --accent-text: #ffffff;
  --link: #1d4ed8;
  --code-bg: #f1f5f9;
  --table-stripe: #f8fafc;
  --shadow: 0 4px 16px rgba(15,23,42,0.08);
  color-scheme: light;
}

/* ============ Base ============ */
* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}
a { color: var(--link); }
code {
  font-family: "JetBrains Mono", "Fira Code", Menlo, monospace;
  font-size: 0.9em;
  background: var(--code-bg);
  padding: 0.1em 0.35em;
  border-radius: 4px;
}
.page { max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }

/* ============ Hero ============ */
.hero {
  position: relative;
  margin: 1.5rem 0;
  padding: 3rem 2rem 2.5rem;
  background: var(--bg-header);
  border-radius: 16px;
  box-shadow: var(--shadow);
}
.hero__actions { position: absolute; top: 1rem; right: 1rem; }
.hero__eyebrow {
  margin: 0;
  text-transform: uppercase;
  letter-spacing: 0.12em;
  font-weight: 700;
  color: var(--accent);
}
.hero__title { margin: 0.4rem 0; font-size: 2.2rem; line-height: 1.2; }
.hero__subtitle { margin: 0 0 1.5rem; color: var(--text-muted); max-width: 60ch; }
.hero__cta {
  display: inline-block;
  padding: 0.6rem 1.2rem;
  border-radius: 999px;
  background: var(--accent);
  color: var(--accent-text);
  font-weight: 600;
  text-decoration: none;
}

/* ============ Theme toggle ============ */
.theme-toggle {
  display: inline-flex;
  align-items: center;
  gap: 0.4rem;
  padding: 0.45rem 0.9rem;
  border: 1px solid var(--border);
  border-radius: 999px;
  background: var(--bg-card);
  color: var(--text);
  font: inherit;
  cursor: pointer;
}
.theme-toggle:hover { border-color: var(--accent); }
.theme-toggle:focus-visible { outline: 2px solid var(--accent); outline-offset: 2px; }

/* ============ Layout ============ */
.layout {
  display: grid;
  grid-template-columns: 220px 1fr;
  gap: 2rem;
  align-items: start;
}
.toc {
  position: sticky;
  top: 1rem;
  padding: 1rem;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 12px;
}
.toc__title { margin: 0 0 0.5rem; font-weight: 700; }
.toc__list { list-style: none; margin: 0; padding: 0; }
.toc__link {
  display: block;
  padding: 0.3rem 0.5rem;
  border-radius: 6px;
  text-decoration: none;
  color: var(--text-muted);
}
.toc__link:hover { background: var(--code-bg); color: var(--text); }

/* ============ Tables ============ */
.cheatsheet { margin-bottom: 2.5rem; scroll-margin-top: 1rem; }
.cheatsheet h2 { margin: 0 0 0.75rem; }
.table-card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 12px;
  box-shadow: var(--shadow);
  overflow: hidden;
}
.table-scroll { overflow-x: auto; }
.cheatsheet-table { width: 100%; border-collapse: collapse; font-size: 0.92rem; }
.cheatsheet-table th,
.cheatsheet-table td {
  padding: 0.6rem 0.8rem;
  border-bottom: 1px solid var(--border);
  text-align: left;
  vertical-align: top;
}
.cheatsheet-table th { background: var(--code-bg); font-weight: 600; }
.cheatsheet-table tbody tr:nth-child(even) { background: var(--table-stripe); }
.cheatsheet-table tbody tr:last-child td { border-bottom: none; }
.cell-description p { margin: 0; }
.cell-example pre {
  margin: 0;
  padding: 0.3rem 0.5rem;
  border-radius: 6px;
  white-space: pre-wrap;
  word-break: break-word;
}

/* ============ Footer ============ */
.footer {
  display: flex;
  justify-content: space-between;
  align-items: center;
  margin: 2rem 0;
  padding-top: 1rem;
  border-top: 1px solid var(--border);
  color: var(--text-muted);
}

/* ============ Responsive ============ */
@media (max-width: 800px) {
  .layout { grid-template-columns: 1fr; }
  .toc { position: static; }
  .hero__actions { position: static; margin-bottom: 1rem; }
  .footer { flex-direction: column; gap: 0.5rem; }
}
`
