package site

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// AnchorError lists in-page links whose target id is missing.
type AnchorError struct {
	Missing []string
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("broken in-page links: %s", strings.Join(e.Missing, ", "))
}

// VerifyAnchors parses an HTML document and checks that every href="#id"
// points at an element with that id. Duplicate ids are reported as well.
func VerifyAnchors(r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing html: %w", err)
	}

	ids := make(map[string]int)
	var targets []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				switch a.Key {
				case "id":
					ids[a.Val]++
				case "href":
					if strings.HasPrefix(a.Val, "#") && len(a.Val) > 1 {
						targets = append(targets, a.Val[1:])
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	seen := make(map[string]bool)
	var problems []string
	for _, t := range targets {
		if ids[t] == 0 && !seen[t] {
			problems = append(problems, "#"+t)
			seen[t] = true
		}
	}
	for id, n := range ids {
		if n > 1 {
			problems = append(problems, fmt.Sprintf("duplicate id %q", id))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return &AnchorError{Missing: problems}
}
