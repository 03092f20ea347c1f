// Package dom provides the minimal document model the editing toolkit runs
// against: a tree of element and text nodes with class tokens, attributes,
// and box geometry for hosts that render the document spatially.
//
// This is not a general HTML engine; it covers exactly what an in-place
// editing host needs (content capture and replacement, class toggling,
// selector queries, hit testing).
package dom

import (
	"strings"
)

// NodeType distinguishes element nodes from text nodes.
type NodeType int

const (
	// ElementNode is a tagged node which may carry attributes and children.
	ElementNode NodeType = iota
	// TextNode is a leaf holding raw text.
	TextNode
)

// An Attr is a single key-value attribute on an element node.
// Attributes keep their insertion order for stable serialization.
type Attr struct {
	Key   string
	Value string
}

// A Node is a single node in a document tree.
//
// Box geometry (X, Y, W, H) is owned by the host environment; the dom
// package only stores it so that spatial hosts can hit-test and so that the
// editing core can size an input surface to the element it replaces.
type Node struct {
	Type NodeType

	// Tag is the element tag, e.g. "div" or "input". Empty for text nodes.
	Tag string
	// Text is the text content. Only meaningful for text nodes.
	Text string

	X, Y, W, H int

	attrs    []Attr
	classes  []string
	children []*Node
	parent   *Node
	doc      *Document
}

// NewElement constructs a detached element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: strings.ToLower(tag)}
}

// NewText constructs a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// Parent returns the node's parent, nil for detached nodes and the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The returned slice must not be
// mutated by callers.
func (n *Node) Children() []*Node { return n.children }

// Document returns the document this node is attached to, nil if detached.
func (n *Node) Document() *Document { return n.doc }

// Attr returns the value of the named attribute and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, overwriting any previous value.
func (n *Node) SetAttr(key, value string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
}

// ID returns the node's "id" attribute, empty if unset.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// Value returns the node's "value" attribute, empty if unset.
// This is the text an input surface currently holds.
func (n *Node) Value() string {
	v, _ := n.Attr("value")
	return v
}

// SetValue sets the node's "value" attribute.
func (n *Node) SetValue(v string) { n.SetAttr("value", v) }

// HasClass reports whether the node carries the given class token.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds a class token to the node. Adding an already-present token
// is a no-op, so the token list never holds duplicates.
func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// RemoveClass removes a class token from the node, leaving all other tokens
// untouched. Removing an absent token is a no-op.
func (n *Node) RemoveClass(class string) {
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

// Classes returns the node's class tokens in order.
func (n *Node) Classes() []string { return n.classes }

// AppendChild attaches a child to this node, detaching it from any previous
// parent first.
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	child.setDocument(n.doc)
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Remove detaches this node from its parent and drops it (and its subtree)
// from the document, firing the document's detach notification.
func (n *Node) Remove() {
	doc := n.doc
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	if doc != nil {
		doc.notifyDetach(n)
	}
	n.setDocument(nil)
}

func (n *Node) setDocument(doc *Document) {
	n.doc = doc
	for _, c := range n.children {
		c.setDocument(doc)
	}
}

// Content serializes the node's children back to markup. Text children
// serialize verbatim, element children to their full markup.
func (n *Node) Content() string {
	var sb strings.Builder
	for _, c := range n.children {
		c.writeMarkup(&sb)
	}
	return sb.String()
}

// Markup serializes this node, including its own tag, to markup.
func (n *Node) Markup() string {
	var sb strings.Builder
	n.writeMarkup(&sb)
	return sb.String()
}

func (n *Node) writeMarkup(sb *strings.Builder) {
	if n.Type == TextNode {
		sb.WriteString(n.Text)
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	if len(n.classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(strings.Join(n.classes, " "))
		sb.WriteByte('"')
	}
	for _, a := range n.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	if len(n.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.children {
		c.writeMarkup(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

// SetContent replaces the node's children with the parse of the given
// markup. All previously attached children are detached, with the
// document's detach notification fired for each, so hosts can drop any
// state (event subscriptions in particular) tied to the old subtree.
func (n *Node) SetContent(markup string) error {
	parsed, err := ParseFragment(markup)
	if err != nil {
		return err
	}
	n.ReplaceChildren(parsed...)
	return nil
}

// SetText replaces the node's children with a single text node holding the
// given text verbatim. Unlike SetContent the text is never parsed, so a
// committed value containing markup-like characters survives round trips.
func (n *Node) SetText(text string) {
	n.ReplaceChildren(NewText(text))
}

// ReplaceChildren replaces the node's children with the given nodes,
// detaching the current ones first. Nodes detached earlier (e.g. a subtree
// displaced by SetContent) can be re-attached this way with their
// structure intact, without a round trip through markup.
func (n *Node) ReplaceChildren(children ...*Node) {
	n.clearChildren()
	for _, c := range children {
		n.AppendChild(c)
	}
}

func (n *Node) clearChildren() {
	old := n.children
	n.children = nil
	for _, c := range old {
		c.parent = nil
		if n.doc != nil {
			n.doc.notifyDetach(c)
		}
		c.setDocument(nil)
	}
}

// Contains reports whether the given point lies within the node's box.
func (n *Node) Contains(x, y int) bool {
	return x >= n.X && x < n.X+n.W && y >= n.Y && y < n.Y+n.H
}

// SetBox assigns the node's box geometry.
func (n *Node) SetBox(x, y, w, h int) {
	n.X, n.Y, n.W, n.H = x, y, w, h
}

// Focusable reports whether a node can receive input focus, i.e. whether it
// is a text-input element.
func Focusable(n *Node) bool {
	if n == nil || n.Type != ElementNode {
		return false
	}
	switch n.Tag {
	case "input", "textarea":
		return true
	}
	return false
}

// A Document owns a node tree and provides queries over it.
type Document struct {
	root *Node

	// OnDetach, if set, is called for every node (including each node of a
	// subtree) that is detached from the document. Hosts use this to drop
	// event subscriptions for removed nodes.
	OnDetach func(*Node)
}

// NewDocument constructs a document with an empty root element.
func NewDocument() *Document {
	d := &Document{}
	root := NewElement("root")
	root.doc = d
	d.root = root
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Node { return d.root }

func (d *Document) notifyDetach(n *Node) {
	if d.OnDetach == nil {
		return
	}
	d.OnDetach(n)
	for _, c := range n.children {
		d.notifyDetach(c)
	}
}

// Walk visits every node of the document in depth-first pre-order.
func (d *Document) Walk(visit func(*Node)) {
	walk(d.root, visit)
}

func walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		walk(c, visit)
	}
}

// ElementAt returns the deepest element node whose box contains the given
// point, nil if no element does. Children are checked in reverse order as
// later siblings render on top.
func (d *Document) ElementAt(x, y int) *Node {
	return elementAt(d.root, x, y)
}

func elementAt(n *Node, x, y int) *Node {
	if n.Type != ElementNode || !n.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := elementAt(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	return n
}
