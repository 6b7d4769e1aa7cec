package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/cheatsheet/internal/content"
	"github.com/ziadkadry99/cheatsheet/internal/locale"
	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/progress"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// Output file names.
const (
	IndexFile  = "index.html"
	StyleFile  = "style.css"
	ScriptFile = "script.js"
)

// Generator writes the cheat sheet as a static site.
type Generator struct {
	OutputDir string
	Strings   locale.Strings
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(outputDir string, s locale.Strings) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Strings:   s,
		Reporter:  progress.Nop{},
	}
}

// Result summarises a generated site.
type Result struct {
	IndexPath string
	Sections  int
	Rows      int
	Theme     theme.Preference
}

// Generate renders m with the controller's current mode and writes the
// page and its assets. The rendered page is checked for broken in-page links
// before anything is written.
func (g *Generator) Generate(m content.Model, ctrl *theme.Controller) (Result, error) {
	if err := content.Validate(m); err != nil {
		return Result{}, err
	}

	r, err := NewRenderer(m, g.Strings, g.Reporter)
	if err != nil {
		return Result{}, err
	}

	p := page.Build(m, ctrl.Presentation(g.Strings.Wording), g.Strings)
	if dups := p.CheckKeys(); len(dups) > 0 {
		return Result{}, fmt.Errorf("duplicate keys: %v", dups)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, p, false); err != nil {
		return Result{}, fmt.Errorf("rendering page: %w", err)
	}
	if err := VerifyAnchors(bytes.NewReader(buf.Bytes())); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return Result{}, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{IndexFile, buf.Bytes()},
		{StyleFile, []byte(r.CSS())},
		{ScriptFile, []byte(jsContent)},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return Result{}, fmt.Errorf("writing %s: %w", f.name, err)
		}
	}

	res := Result{
		IndexPath: filepath.Join(g.OutputDir, IndexFile),
		Sections:  len(p.Sections),
		Theme:     ctrl.Current(),
	}
	for _, s := range p.Sections {
		res.Rows += len(s.Rows)
	}
	return res, nil
}
