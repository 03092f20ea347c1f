package dom_test

import (
	"testing"

	"github.com/lhagen/inplace/internal/dom"
)

func TestClassList(t *testing.T) {

	t.Run("add is idempotent", func(t *testing.T) {
		n := dom.NewElement("div")
		n.AddClass("a")
		n.AddClass("a")
		if len(n.Classes()) != 1 {
			t.Error("expected a single class token, got", n.Classes())
		}
	})

	t.Run("remove leaves others untouched", func(t *testing.T) {
		n := dom.NewElement("div")
		n.AddClass("a")
		n.AddClass("b")
		n.AddClass("c")
		n.RemoveClass("b")
		if n.HasClass("b") {
			t.Error("expected 'b' removed")
		}
		if !n.HasClass("a") || !n.HasClass("c") {
			t.Error("expected 'a' and 'c' to survive, got", n.Classes())
		}
	})

	t.Run("remove absent token is a no-op", func(t *testing.T) {
		n := dom.NewElement("div")
		n.AddClass("a")
		n.RemoveClass("nope")
		if len(n.Classes()) != 1 {
			t.Error("unexpected class change, got", n.Classes())
		}
	})

	t.Run("empty token never added", func(t *testing.T) {
		n := dom.NewElement("div")
		n.AddClass("")
		if len(n.Classes()) != 0 {
			t.Error("expected no class tokens, got", n.Classes())
		}
	})

}

func TestContent(t *testing.T) {

	t.Run("set text then read back verbatim", func(t *testing.T) {
		n := dom.NewElement("span")
		n.SetText("some text, even with <odd> characters")
		if got := n.Content(); got != "some text, even with <odd> characters" {
			t.Errorf("unexpected content: '%s'", got)
		}
	})

	t.Run("set content parses markup", func(t *testing.T) {
		n := dom.NewElement("div")
		if err := n.SetContent(`before <span class="x">inside</span> after`); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if len(n.Children()) != 3 {
			t.Fatal("expected 3 children, got", len(n.Children()))
		}
		span := n.Children()[1]
		if span.Tag != "span" || !span.HasClass("x") {
			t.Error("middle child not parsed as expected")
		}
	})

	t.Run("serialization round-trips through the parser", func(t *testing.T) {
		n := dom.NewElement("div")
		if err := n.SetContent(`a<span id="s" class="c d">b<input type="text"/></span>`); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		serialized := n.Content()

		m := dom.NewElement("div")
		if err := m.SetContent(serialized); err != nil {
			t.Fatal("reparse failed:", err.Error())
		}
		if m.Content() != serialized {
			t.Errorf("round trip changed content:\n  first:  '%s'\n  second: '%s'", serialized, m.Content())
		}
	})

	t.Run("replacing content detaches the old subtree", func(t *testing.T) {
		doc := dom.NewDocument()
		var detached []*dom.Node
		doc.OnDetach = func(n *dom.Node) { detached = append(detached, n) }

		parent := dom.NewElement("div")
		doc.Root().AppendChild(parent)
		child := dom.NewElement("span")
		grandchild := dom.NewText("x")
		child.AppendChild(grandchild)
		parent.AppendChild(child)

		parent.SetText("replaced")

		if len(detached) != 2 {
			t.Fatal("expected 2 detach notifications, got", len(detached))
		}
		if detached[0] != child || detached[1] != grandchild {
			t.Error("expected child then grandchild to be reported detached")
		}
		if child.Document() != nil {
			t.Error("expected detached child to lose its document")
		}
	})

	t.Run("detached children can be re-attached", func(t *testing.T) {
		doc := dom.NewDocument()
		parent := dom.NewElement("div")
		doc.Root().AppendChild(parent)
		parent.SetText("one < two & three")
		saved := append([]*dom.Node(nil), parent.Children()...)

		if err := parent.SetContent(`<input type="text"/>`); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		parent.ReplaceChildren(saved...)

		if got := parent.Content(); got != "one < two & three" {
			t.Errorf("unexpected content after re-attachment: '%s'", got)
		}
		if saved[0].Document() != doc || saved[0].Parent() != parent {
			t.Error("expected re-attached child back in the document tree")
		}
	})

}

func TestElementAt(t *testing.T) {

	newDoc := func() (*dom.Document, *dom.Node, *dom.Node) {
		doc := dom.NewDocument()
		doc.Root().SetBox(0, 0, 100, 100)
		outer := dom.NewElement("div")
		outer.SetBox(10, 10, 50, 20)
		doc.Root().AppendChild(outer)
		inner := dom.NewElement("input")
		inner.SetBox(12, 12, 20, 3)
		outer.AppendChild(inner)
		return doc, outer, inner
	}

	t.Run("deepest element wins", func(t *testing.T) {
		doc, _, inner := newDoc()
		if got := doc.ElementAt(13, 13); got != inner {
			t.Error("expected the inner element")
		}
	})

	t.Run("containing parent when outside children", func(t *testing.T) {
		doc, outer, _ := newDoc()
		if got := doc.ElementAt(50, 25); got != outer {
			t.Error("expected the outer element")
		}
	})

	t.Run("nil outside all boxes", func(t *testing.T) {
		doc := dom.NewDocument()
		doc.Root().SetBox(0, 0, 10, 10)
		if got := doc.ElementAt(50, 50); got != nil {
			t.Error("expected no hit outside the root box")
		}
	})

}
