package event_test

import (
	"testing"

	"github.com/lhagen/inplace/internal/dom"
	"github.com/lhagen/inplace/internal/event"
)

func TestHub(t *testing.T) {

	t.Run("dispatch reaches matching subscribers in order", func(t *testing.T) {
		hub := event.NewHub()
		n := dom.NewElement("div")
		other := dom.NewElement("div")

		var calls []string
		hub.Subscribe(n, event.Click, func(event.Event) { calls = append(calls, "first") })
		hub.Subscribe(n, event.Click, func(event.Event) { calls = append(calls, "second") })
		hub.Subscribe(n, event.Blur, func(event.Event) { calls = append(calls, "wrong type") })
		hub.Subscribe(other, event.Click, func(event.Event) { calls = append(calls, "wrong target") })

		hub.Dispatch(event.Event{Type: event.Click, Target: n})

		if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
			t.Error("unexpected handler calls:", calls)
		}
	})

	t.Run("unsubscribe removes exactly the identified handler", func(t *testing.T) {
		hub := event.NewHub()
		n := dom.NewElement("div")

		aCalls, bCalls := 0, 0
		subA := hub.Subscribe(n, event.Click, func(event.Event) { aCalls++ })
		hub.Subscribe(n, event.Click, func(event.Event) { bCalls++ })

		hub.Unsubscribe(subA)
		hub.Dispatch(event.Event{Type: event.Click, Target: n})

		if aCalls != 0 {
			t.Error("unsubscribed handler was called")
		}
		if bCalls != 1 {
			t.Error("remaining handler was not called")
		}
	})

	t.Run("dispatch runs against a snapshot", func(t *testing.T) {
		hub := event.NewHub()
		n := dom.NewElement("div")

		secondCalls := 0
		var subSecond event.Subscription
		hub.Subscribe(n, event.Click, func(event.Event) { hub.Unsubscribe(subSecond) })
		subSecond = hub.Subscribe(n, event.Click, func(event.Event) { secondCalls++ })

		hub.Dispatch(event.Event{Type: event.Click, Target: n})
		if secondCalls != 1 {
			t.Error("handler unsubscribed mid-dispatch must still see the current event")
		}

		hub.Dispatch(event.Event{Type: event.Click, Target: n})
		if secondCalls != 1 {
			t.Error("handler must be gone on the next dispatch")
		}
	})

	t.Run("focus transfer dispatches blur before focus", func(t *testing.T) {
		hub := event.NewHub()
		a := dom.NewElement("input")
		b := dom.NewElement("input")

		var calls []string
		hub.Subscribe(a, event.Blur, func(event.Event) { calls = append(calls, "blur a") })
		hub.Subscribe(b, event.Focus, func(event.Event) { calls = append(calls, "focus b") })

		hub.SetFocus(a)
		hub.SetFocus(b)

		if len(calls) != 2 || calls[0] != "blur a" || calls[1] != "focus b" {
			t.Error("unexpected focus event sequence:", calls)
		}
		if hub.Focused() != b {
			t.Error("expected focus to rest on b")
		}
	})

	t.Run("refocusing the focused node is a no-op", func(t *testing.T) {
		hub := event.NewHub()
		a := dom.NewElement("input")

		blurs := 0
		hub.Subscribe(a, event.Blur, func(event.Event) { blurs++ })

		hub.SetFocus(a)
		hub.SetFocus(a)

		if blurs != 0 {
			t.Error("expected no blur on refocus, got", blurs)
		}
	})

	t.Run("detached subtree loses subscriptions and focus", func(t *testing.T) {
		doc := dom.NewDocument()
		hub := event.NewHub()
		hub.Attach(doc)

		parent := dom.NewElement("div")
		doc.Root().AppendChild(parent)
		child := dom.NewElement("input")
		parent.AppendChild(child)

		hub.Subscribe(child, event.Blur, func(event.Event) {})
		hub.SetFocus(child)

		parent.SetText("gone")

		if hub.SubscriptionCount(child) != 0 {
			t.Error("expected subscriptions of detached node to be dropped")
		}
		if hub.Focused() != nil {
			t.Error("expected focus cleared when the focused node is detached")
		}
	})

}
