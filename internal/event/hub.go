package event

import (
	"github.com/rs/zerolog/log"

	"github.com/lhagen/inplace/internal/dom"
)

// A Subscription identifies one registered handler, so that exactly that
// handler can be removed again. The zero value is not a valid subscription.
type Subscription struct {
	id uint64
}

// Valid reports whether the subscription refers to a registered handler at
// some point (it may have been unsubscribed since).
func (s Subscription) Valid() bool { return s.id != 0 }

type subscriber struct {
	id      uint64
	target  *dom.Node
	typ     Type
	handler Handler
}

// A Hub routes events to handlers by (node, type) and tracks input focus.
//
// Not safe for concurrent use; all calls must come from the host's single
// event-dispatching goroutine.
type Hub struct {
	subscribers []subscriber
	nextID      uint64
	focused     *dom.Node
}

// NewHub constructs an empty hub.
func NewHub() *Hub {
	return &Hub{nextID: 1}
}

// Attach hooks the hub into a document so that detaching any subtree from
// the document drops the subscriptions of all removed nodes. This keeps
// content replacement from leaking handlers for nodes no longer in the
// tree.
func (h *Hub) Attach(doc *dom.Document) {
	doc.OnDetach = func(n *dom.Node) {
		h.dropNode(n)
	}
}

// Subscribe registers a handler for events of the given type on the given
// node and returns the identity by which it can be unsubscribed.
func (h *Hub) Subscribe(target *dom.Node, t Type, handler Handler) Subscription {
	id := h.nextID
	h.nextID++
	h.subscribers = append(h.subscribers, subscriber{id: id, target: target, typ: t, handler: handler})
	return Subscription{id: id}
}

// Unsubscribe removes the handler registered under the given subscription.
// Unsubscribing an unknown or already-removed subscription is a no-op.
func (h *Hub) Unsubscribe(sub Subscription) {
	for i := range h.subscribers {
		if h.subscribers[i].id == sub.id {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
			return
		}
	}
}

// SubscriptionCount returns the number of live subscriptions on the given
// node, mainly for leak checking.
func (h *Hub) SubscriptionCount(target *dom.Node) int {
	count := 0
	for i := range h.subscribers {
		if h.subscribers[i].target == target {
			count++
		}
	}
	return count
}

// Dispatch delivers the event synchronously to all handlers subscribed to
// (event.Target, event.Type), in subscription order. The subscriber list is
// snapshotted first, so handlers that subscribe or unsubscribe during
// dispatch do not affect which handlers this dispatch reaches.
func (h *Hub) Dispatch(e Event) {
	var snapshot []Handler
	for i := range h.subscribers {
		if h.subscribers[i].target == e.Target && h.subscribers[i].typ == e.Type {
			snapshot = append(snapshot, h.subscribers[i].handler)
		}
	}
	log.Trace().Str("type", e.Type.String()).Int("handlers", len(snapshot)).Msg("dispatching event")
	for _, handler := range snapshot {
		handler(e)
	}
}

// Focused returns the currently focused node, nil if none.
func (h *Hub) Focused() *dom.Node { return h.focused }

// SetFocus moves input focus to the given node (nil to clear focus). The
// previously focused node, if any, receives Blur before the new node
// receives Focus.
func (h *Hub) SetFocus(n *dom.Node) {
	if h.focused == n {
		return
	}
	prev := h.focused
	h.focused = n
	if prev != nil {
		h.Dispatch(Event{Type: Blur, Target: prev})
	}
	if n != nil {
		h.Dispatch(Event{Type: Focus, Target: n})
	}
}

// dropNode removes all subscriptions targeting the node and clears focus if
// the node held it. Called via the document detach hook for every node of a
// removed subtree.
func (h *Hub) dropNode(n *dom.Node) {
	kept := h.subscribers[:0]
	for i := range h.subscribers {
		if h.subscribers[i].target != n {
			kept = append(kept, h.subscribers[i])
		}
	}
	h.subscribers = kept
	if h.focused == n {
		h.focused = nil
	}
}
