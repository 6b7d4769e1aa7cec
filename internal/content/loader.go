package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data/sections.yaml
var defaultDataset []byte

// Default returns the embedded dataset.
func Default() (Model, error) {
	f, err := decode(bytes.NewReader(defaultDataset))
	if err != nil {
		return Model{}, fmt.Errorf("decoding embedded dataset: %w", err)
	}
	return assemble([]namedFile{{name: "embedded", f: f}})
}

// Load reads every file matching the given glob patterns (relative to baseDir)
// in lexical path order. With no patterns the embedded dataset is returned.
func Load(baseDir string, patterns []string) (Model, error) {
	if len(patterns) == 0 {
		return Default()
	}

	paths, err := expand(baseDir, patterns)
	if err != nil {
		return Model{}, err
	}
	if len(paths) == 0 {
		return Model{}, fmt.Errorf("no dataset files match %v in %s", patterns, baseDir)
	}

	files := make([]namedFile, 0, len(paths))
	for _, p := range paths {
		fh, err := os.Open(p)
		if err != nil {
			return Model{}, fmt.Errorf("opening %s: %w", p, err)
		}
		f, err := decode(fh)
		fh.Close()
		if err != nil {
			return Model{}, fmt.Errorf("decoding %s: %w", p, err)
		}
		files = append(files, namedFile{name: p, f: f})
	}

	return assemble(files)
}

type namedFile struct {
	name string
	f    file
}

// expand resolves the glob patterns, de-duplicating and sorting the result.
func expand(baseDir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(baseDir)
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			full := filepath.Join(baseDir, filepath.FromSlash(m))
			if !seen[full] {
				seen[full] = true
				paths = append(paths, full)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func decode(r io.Reader) (file, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return file{}, err
	}
	return f, nil
}

// assemble concatenates sections in file order and settles the column labels.
func assemble(files []namedFile) (Model, error) {
	var (
		m       Model
		haveCol bool
	)

	for _, nf := range files {
		if nf.f.Columns != nil {
			if len(nf.f.Columns) != ColumnCount {
				return Model{}, fmt.Errorf("%s: columns must have exactly %d entries, got %d", nf.name, ColumnCount, len(nf.f.Columns))
			}
			var cols Columns
			copy(cols[:], nf.f.Columns)
			if haveCol && cols != m.Columns {
				return Model{}, fmt.Errorf("%s: columns %v conflict with %v", nf.name, cols, m.Columns)
			}
			m.Columns = cols
			haveCol = true
		}

		for _, s := range nf.f.Sections {
			if s.NavLabel == "" {
				s.NavLabel = s.Title
			}
			m.Sections = append(m.Sections, s)
		}
	}

	if !haveCol {
		return Model{}, fmt.Errorf("no columns defined in dataset")
	}
	return m, nil
}
