package dom

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseFragment parses a markup fragment into a list of detached nodes.
//
// The accepted grammar is deliberately small: elements with double- or
// single-quoted attributes, self-closing tags, nesting, and raw text. No
// entities, comments, or doctypes. A pane template and any markup this
// package itself serialized parse cleanly; anything else is an error.
func ParseFragment(markup string) ([]*Node, error) {
	p := &fragmentParser{input: markup}
	nodes, err := p.parseNodes("")
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected closing tag at offset %d", p.pos)
	}
	return nodes, nil
}

type fragmentParser struct {
	input string
	pos   int
}

// parseNodes parses sibling nodes until EOF or the closing tag matching
// enclosing (empty for top level).
func (p *fragmentParser) parseNodes(enclosing string) ([]*Node, error) {
	var nodes []*Node
	for p.pos < len(p.input) {
		if strings.HasPrefix(p.input[p.pos:], "</") {
			if enclosing == "" {
				// top level sees a stray closing tag; leave it for the caller
				// to reject
				return nodes, nil
			}
			return nodes, p.consumeClosingTag(enclosing)
		}
		if p.input[p.pos] == '<' {
			n, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
			continue
		}
		nodes = append(nodes, p.parseText())
	}
	if enclosing != "" {
		return nil, fmt.Errorf("missing closing tag for <%s>", enclosing)
	}
	return nodes, nil
}

func (p *fragmentParser) parseText() *Node {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '<' {
		p.pos++
	}
	return NewText(p.input[start:p.pos])
}

func (p *fragmentParser) parseElement() (*Node, error) {
	p.pos++ // consume '<'
	tag := p.consumeName()
	if tag == "" {
		return nil, fmt.Errorf("expected tag name at offset %d", p.pos)
	}
	n := NewElement(tag)

	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unterminated tag <%s>", tag)
		}
		if strings.HasPrefix(p.input[p.pos:], "/>") {
			p.pos += 2
			return n, nil
		}
		if p.input[p.pos] == '>' {
			p.pos++
			children, err := p.parseNodes(n.Tag)
			if err != nil {
				return nil, err
			}
			for _, c := range children {
				n.AppendChild(c)
			}
			return n, nil
		}
		key, value, err := p.parseAttr(tag)
		if err != nil {
			return nil, err
		}
		if key == "class" {
			for _, class := range strings.Fields(value) {
				n.AddClass(class)
			}
		} else {
			n.SetAttr(key, value)
		}
	}
}

func (p *fragmentParser) parseAttr(tag string) (string, string, error) {
	key := p.consumeName()
	if key == "" {
		return "", "", fmt.Errorf("expected attribute name in <%s> at offset %d", tag, p.pos)
	}
	if p.pos >= len(p.input) || p.input[p.pos] != '=' {
		// bare attribute, e.g. <input disabled>
		return key, "", nil
	}
	p.pos++
	if p.pos >= len(p.input) {
		return "", "", fmt.Errorf("unterminated attribute '%s' in <%s>", key, tag)
	}
	quote := p.input[p.pos]
	if quote != '"' && quote != '\'' {
		return "", "", fmt.Errorf("attribute '%s' in <%s> must be quoted", key, tag)
	}
	p.pos++
	end := strings.IndexByte(p.input[p.pos:], quote)
	if end < 0 {
		return "", "", fmt.Errorf("unterminated attribute '%s' in <%s>", key, tag)
	}
	value := p.input[p.pos : p.pos+end]
	p.pos += end + 1
	return key, value, nil
}

func (p *fragmentParser) consumeClosingTag(tag string) error {
	p.pos += 2 // consume '</'
	name := p.consumeName()
	if !strings.EqualFold(name, tag) {
		return fmt.Errorf("mismatched closing tag: expected </%s>, got </%s>", tag, name)
	}
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != '>' {
		return fmt.Errorf("malformed closing tag </%s>", tag)
	}
	p.pos++
	return nil
}

func (p *fragmentParser) consumeName() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' && c != '_' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *fragmentParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n' || p.input[p.pos] == '\r') {
		p.pos++
	}
}
