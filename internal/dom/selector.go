package dom

import "strings"

// QuerySelectorAll resolves a selector against the document and returns the
// matching element nodes in document order.
//
// Supported selector forms: a tag name ("span"), a class (".editable"), an
// id ("#title"), and comma-separated unions of these. An empty selector, or
// one matching nothing, yields an empty result; it is not an error.
func (d *Document) QuerySelectorAll(selector string) []*Node {
	var terms []selectorTerm
	for _, raw := range strings.Split(selector, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		terms = append(terms, parseSelectorTerm(raw))
	}
	if len(terms) == 0 {
		return nil
	}

	var matches []*Node
	seen := make(map[*Node]bool)
	d.Walk(func(n *Node) {
		if n.Type != ElementNode || seen[n] {
			return
		}
		for _, t := range terms {
			if t.matches(n) {
				seen[n] = true
				matches = append(matches, n)
				return
			}
		}
	})
	return matches
}

type selectorTerm struct {
	tag   string
	class string
	id    string
}

func parseSelectorTerm(raw string) selectorTerm {
	switch {
	case strings.HasPrefix(raw, "."):
		return selectorTerm{class: raw[1:]}
	case strings.HasPrefix(raw, "#"):
		return selectorTerm{id: raw[1:]}
	default:
		return selectorTerm{tag: strings.ToLower(raw)}
	}
}

func (t selectorTerm) matches(n *Node) bool {
	switch {
	case t.class != "":
		return n.HasClass(t.class)
	case t.id != "":
		return n.ID() == t.id
	case t.tag != "":
		return n.Tag == t.tag
	default:
		return false
	}
}
