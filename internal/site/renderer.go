package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/cheatsheet/internal/content"
	"github.com/ziadkadry99/cheatsheet/internal/locale"
	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/progress"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// Highlight styles for the example column, per display mode.
const (
	darkCodeStyle  = "monokai"
	lightCodeStyle = "github"
)

// exampleLanguage is the chroma lexer used for the example column.
const exampleLanguage = "js"

// renderedRow holds the formatted cells of one body row.
type renderedRow struct {
	Key         string
	Method      string
	Description string
	Example     template.HTML
	Output      string
}

type sectionView struct {
	Key     string
	Anchor  string
	Title   string
	Columns []page.HeaderCell
	Rows    []renderedRow
}

// pageData is passed to the page template.
type pageData struct {
	Page     page.Page
	Light    bool
	Live     bool
	Boot     template.JS
	SwitchTo string
	ToLight  theme.Presentation
	ToDark   theme.Presentation
	Sections []sectionView
}

// Renderer formats the dataset cells once and renders pages from them.
// Cell HTML does not depend on the display mode, so it is shared by every
// render.
type Renderer struct {
	tmpl    *template.Template
	strings locale.Strings
	cells   [][]renderedRow
	css     string
}

// NewRenderer formats every cell of m, reporting progress per section.
// Only the example column is highlighted; the other cells stay plain text and
// are escaped by the template.
func NewRenderer(m content.Model, s locale.Strings, reporter progress.Reporter) (*Renderer, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	css, err := highlightCSS()
	if err != nil {
		return nil, fmt.Errorf("building highlight css: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(darkCodeStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
	)

	r := &Renderer{
		tmpl:    tmpl,
		strings: s,
		cells:   make([][]renderedRow, len(m.Sections)),
		css:     cssContent + css,
	}

	reporter.Start(len(m.Sections))
	for i, sec := range m.Sections {
		rows := make([]renderedRow, len(sec.Rows))
		for j, row := range sec.Rows {
			example, err := renderCode(md, row.Example)
			if err != nil {
				return nil, fmt.Errorf("section %s row %s: example: %w", sec.ID, row.Method, err)
			}
			rows[j] = renderedRow{
				Key:         sec.RowKey(row),
				Method:      row.Method,
				Description: row.Description,
				Example:     example,
				Output:      row.Output,
			}
		}
		r.cells[i] = rows
		reporter.Update(i+1, sec.Title)
	}
	reporter.Finish()

	return r, nil
}

// CSS returns the stylesheet including syntax highlighting rules.
func (r *Renderer) CSS() string { return r.css }

// Render writes the full HTML document for p. The root marker follows the
// page's toggle state, so marker and toggle always come from one snapshot.
func (r *Renderer) Render(w io.Writer, p page.Page, live bool) error {
	data := pageData{
		Page:     p,
		Light:    p.Header.Toggle.Pressed,
		Live:     live,
		Boot:     template.JS(bootScript),
		SwitchTo: r.strings.SwitchTo,
		ToLight:  theme.Present(theme.Dark, r.strings.Wording),
		ToDark:   theme.Present(theme.Light, r.strings.Wording),
		Sections: r.sections(p),
	}
	return r.tmpl.Execute(w, data)
}

// sections pairs the page blocks with their pre-rendered cells. Build keeps
// model order, so blocks line up with r.cells by index; a block whose keys do
// not match falls back to escaped plain text.
func (r *Renderer) sections(p page.Page) []sectionView {
	out := make([]sectionView, len(p.Sections))
	for i, block := range p.Sections {
		var cached []renderedRow
		if i < len(r.cells) {
			cached = r.cells[i]
		}

		rows := make([]renderedRow, len(block.Rows))
		for j, row := range block.Rows {
			if j < len(cached) && cached[j].Key == row.Key {
				rows[j] = cached[j]
				continue
			}
			rows[j] = renderedRow{
				Key:         row.Key,
				Method:      row.Cells[0],
				Description: row.Cells[1],
				Example:     template.HTML("<code>" + template.HTMLEscapeString(row.Cells[2]) + "</code>"),
				Output:      row.Cells[3],
			}
		}

		out[i] = sectionView{
			Key:     block.Key,
			Anchor:  block.Anchor,
			Title:   block.Title,
			Columns: block.Columns,
			Rows:    rows,
		}
	}
	return out
}

// renderCode highlights src as a fenced code block.
func renderCode(md goldmark.Markdown, src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	f := fence(src)
	block := f + exampleLanguage + "\n" + src + "\n" + f + "\n"

	var buf bytes.Buffer
	if err := md.Convert([]byte(block), &buf); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// fence returns a backtick fence longer than any backtick run in src.
func fence(src string) string {
	longest, run := 0, 0
	for _, c := range src {
		if c == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}

// highlightCSS emits chroma class rules: dark by default, light under the marker.
func highlightCSS() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var b strings.Builder
	b.WriteString("\n/* ============ Syntax highlighting ============ */\n")

	write := func(style *chroma.Style, scope string) error {
		var buf bytes.Buffer
		if err := formatter.WriteCSS(&buf, style); err != nil {
			return err
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			if !strings.Contains(line, ".chroma") {
				continue
			}
			if scope != "" {
				line = strings.ReplaceAll(line, ".chroma", scope+" .chroma")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		return nil
	}

	if err := write(styles.Get(darkCodeStyle), ""); err != nil {
		return "", err
	}
	if err := write(styles.Get(lightCodeStyle), `[data-theme="light"]`); err != nil {
		return "", err
	}
	return b.String(), nil
}
