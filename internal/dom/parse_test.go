package dom_test

import (
	"testing"

	"github.com/lhagen/inplace/internal/dom"
)

func TestParseFragment(t *testing.T) {

	t.Run("valid", func(t *testing.T) {

		t.Run("self-closing element with attribute", func(t *testing.T) {
			nodes, err := dom.ParseFragment(`<input type="text"/>`)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if len(nodes) != 1 {
				t.Fatal("expected a single node, got", len(nodes))
			}
			n := nodes[0]
			if n.Tag != "input" {
				t.Error("expected tag 'input', got", n.Tag)
			}
			if typ, ok := n.Attr("type"); !ok || typ != "text" {
				t.Error("expected type attribute 'text'")
			}
		})

		t.Run("text only", func(t *testing.T) {
			nodes, err := dom.ParseFragment("just text")
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if len(nodes) != 1 || nodes[0].Type != dom.TextNode || nodes[0].Text != "just text" {
				t.Error("expected a single text node holding the input")
			}
		})

		t.Run("empty input", func(t *testing.T) {
			nodes, err := dom.ParseFragment("")
			if err != nil {
				t.Error("unexpected error:", err.Error())
			}
			if len(nodes) != 0 {
				t.Error("expected no nodes for empty input")
			}
		})

		t.Run("nesting and siblings", func(t *testing.T) {
			nodes, err := dom.ParseFragment(`<div><span>a</span><span>b</span></div>`)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if len(nodes) != 1 || len(nodes[0].Children()) != 2 {
				t.Fatal("expected one div with two children")
			}
		})

		t.Run("class attribute becomes tokens", func(t *testing.T) {
			nodes, err := dom.ParseFragment(`<div class="a  b"/>`)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if !nodes[0].HasClass("a") || !nodes[0].HasClass("b") {
				t.Error("expected class tokens 'a' and 'b', got", nodes[0].Classes())
			}
		})

		t.Run("single-quoted attribute", func(t *testing.T) {
			nodes, err := dom.ParseFragment(`<div title='hi there'/>`)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if title, _ := nodes[0].Attr("title"); title != "hi there" {
				t.Error("expected title attribute, got", title)
			}
		})

		t.Run("bare attribute", func(t *testing.T) {
			nodes, err := dom.ParseFragment(`<input type="text" disabled/>`)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if _, ok := nodes[0].Attr("disabled"); !ok {
				t.Error("expected bare attribute to be present")
			}
		})

	})

	t.Run("invalid", func(t *testing.T) {

		expectError := func(t *testing.T, markup string) {
			t.Helper()
			if _, err := dom.ParseFragment(markup); err == nil {
				t.Errorf("expected error for '%s'", markup)
			}
		}

		t.Run("mismatched closing tag", func(t *testing.T) {
			expectError(t, `<div><span>a</div></span>`)
		})

		t.Run("missing closing tag", func(t *testing.T) {
			expectError(t, `<div>a`)
		})

		t.Run("stray closing tag", func(t *testing.T) {
			expectError(t, `a</div>`)
		})

		t.Run("unquoted attribute", func(t *testing.T) {
			expectError(t, `<input type=text/>`)
		})

		t.Run("unterminated attribute", func(t *testing.T) {
			expectError(t, `<input type="text/>`)
		})

		t.Run("unterminated tag", func(t *testing.T) {
			expectError(t, `<input `)
		})

	})

}
