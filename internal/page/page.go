// Package page turns the content model and the current display mode into the
// keyed, ordered structure every output surface renders.
package page

import (
	"fmt"

	"github.com/ziadkadry99/cheatsheet/internal/content"
	"github.com/ziadkadry99/cheatsheet/internal/locale"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// TopAnchor is reserved for the page header.
const TopAnchor = "top"

// Page is the full visual structure, top to bottom.
type Page struct {
	Lang     string
	Header   Header
	Nav      Nav
	Sections []SectionBlock
	Footer   Footer
}

// Toggle is the mode switch control.
type Toggle struct {
	Pressed bool
	Label   string
	Text    string
	Icon    string
}

type Header struct {
	Anchor   string
	Toggle   Toggle
	Eyebrow  string
	Title    string
	Subtitle string
	JumpHref string
	JumpText string
}

type NavEntry struct {
	Key   string
	Href  string
	Label string
}

type Nav struct {
	Title     string
	AriaLabel string
	Entries   []NavEntry
}

type HeaderCell struct {
	Key   string
	Label string
}

type RowView struct {
	Key   string
	Cells [content.ColumnCount]string
}

// SectionBlock is one section with its table.
type SectionBlock struct {
	Key     string
	Anchor  string
	Title   string
	Columns []HeaderCell
	Rows    []RowView
}

type Footer struct {
	TopHref string
	TopText string
	Credit  string
}

// Build composes the page. It never drops or reorders sections or rows.
func Build(m content.Model, pres theme.Presentation, s locale.Strings) Page {
	jump := "#" + TopAnchor
	if len(m.Sections) > 0 {
		jump = "#" + m.Sections[0].ID
	}

	p := Page{
		Lang: s.Lang,
		Header: Header{
			Anchor: TopAnchor,
			Toggle: Toggle{
				Pressed: pres.IsLight,
				Label:   pres.ToggleLabel,
				Text:    s.SwitchTo + " " + pres.TargetName,
				Icon:    pres.Icon,
			},
			Eyebrow:  s.Eyebrow,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			JumpHref: jump,
			JumpText: s.JumpText,
		},
		Nav: Nav{
			Title:     s.NavTitle,
			AriaLabel: s.NavLabel,
			Entries:   make([]NavEntry, 0, len(m.Sections)),
		},
		Sections: make([]SectionBlock, 0, len(m.Sections)),
		Footer: Footer{
			TopHref: "#" + TopAnchor,
			TopText: s.FooterTop,
			Credit:  s.Credit,
		},
	}

	columns := make([]HeaderCell, len(m.Columns))
	for i, label := range m.Columns {
		columns[i] = HeaderCell{Key: label, Label: label}
	}

	for _, sec := range m.Sections {
		p.Nav.Entries = append(p.Nav.Entries, NavEntry{
			Key:   sec.ID,
			Href:  "#" + sec.ID,
			Label: sec.NavLabel,
		})

		rows := make([]RowView, len(sec.Rows))
		for i, r := range sec.Rows {
			rows[i] = RowView{Key: sec.RowKey(r), Cells: r.Cells()}
		}

		p.Sections = append(p.Sections, SectionBlock{
			Key:     sec.ID,
			Anchor:  sec.ID,
			Title:   sec.Title,
			Columns: columns,
			Rows:    rows,
		})
	}

	return p
}

// Keys lists the section keys followed by each section's row keys, in page order.
func (p Page) Keys() []string {
	var keys []string
	for _, s := range p.Sections {
		keys = append(keys, s.Key)
		for _, r := range s.Rows {
			keys = append(keys, r.Key)
		}
	}
	return keys
}

// CheckKeys reports section keys that repeat across the page and row keys
// that repeat within a section.
func (p Page) CheckKeys() []string {
	var dups []string
	sections := make(map[string]bool, len(p.Sections))
	for _, s := range p.Sections {
		if sections[s.Key] {
			dups = append(dups, fmt.Sprintf("section key %q", s.Key))
		}
		sections[s.Key] = true

		rows := make(map[string]bool, len(s.Rows))
		for _, r := range s.Rows {
			if rows[r.Key] {
				dups = append(dups, fmt.Sprintf("row key %q in section %q", r.Key, s.Key))
			}
			rows[r.Key] = true
		}
	}
	return dups
}
