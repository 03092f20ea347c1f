package edit

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lhagen/inplace/internal/dom"
	"github.com/lhagen/inplace/internal/event"
)

// A Registry owns the shared configuration and wires document elements into
// the edit lifecycle. Registration is idempotent per element: registering
// an element twice never binds duplicate listeners.
//
// Like the event hub it operates on, a Registry is single-goroutine.
type Registry struct {
	cfg        *Config
	doc        *dom.Document
	hub        *event.Hub
	registered map[*dom.Node]*Editable
}

// NewRegistry constructs a registry over the given document and hub. A nil
// document is tolerated: the registry then lacks the selector-query
// capability and Register degrades to a no-op.
func NewRegistry(doc *dom.Document, hub *event.Hub) *Registry {
	return &Registry{
		cfg:        &Config{},
		doc:        doc,
		hub:        hub,
		registered: make(map[*dom.Node]*Editable),
	}
}

// Config returns the shared configuration read by all registered elements.
func (r *Registry) Config() *Config { return r.cfg }

// Setup merges the given options into the shared configuration. Fields left
// nil keep their current value, so partial updates are legal and expected.
// Because elements read the configuration at event time, a Setup call also
// affects elements registered before it.
//
// A provided pane template is validated here, failing fast instead of
// leaving edit entry undefined later.
func (r *Registry) Setup(opts Options) error {
	if opts.PaneTemplate != nil {
		if err := validatePaneTemplate(*opts.PaneTemplate); err != nil {
			return fmt.Errorf("invalid pane template: %w", err)
		}
		r.cfg.PaneTemplate = *opts.PaneTemplate
	}
	if opts.HighlightClassName != nil {
		r.cfg.HighlightClassName = *opts.HighlightClassName
	}
	if opts.SaveCallback != nil {
		r.cfg.SaveCallback = opts.SaveCallback
	}
	if opts.SubmitURL != nil {
		r.cfg.SubmitURL = *opts.SubmitURL
	}
	return nil
}

// Register resolves the selector against the document and wires every
// matched element not yet registered into the edit lifecycle: hover toggles
// the highlight class, a click starts an edit. A selector matching nothing
// (including the empty selector) changes nothing and is not an error.
func (r *Registry) Register(selector string) error {
	if r.doc == nil {
		log.Warn().Msg("no document to query, registration skipped")
		return nil
	}

	for _, node := range r.doc.QuerySelectorAll(selector) {
		if _, ok := r.registered[node]; ok {
			continue
		}
		r.wire(node)
	}
	return nil
}

func (r *Registry) wire(node *dom.Node) {
	ed := &Editable{
		node:  node,
		cfg:   r.cfg,
		hub:   r.hub,
		state: StateDisplay,
	}

	// hover handlers stay attached across edit cycles; the highlight is
	// suppressed while editing since the element then shows the input
	// surface, not editable display content
	r.hub.Subscribe(node, event.PointerEnter, func(event.Event) {
		if ed.state == StateDisplay {
			node.AddClass(ed.cfg.HighlightClassName)
		}
	})
	r.hub.Subscribe(node, event.PointerLeave, func(event.Event) {
		node.RemoveClass(ed.cfg.HighlightClassName)
	})
	ed.arm()

	r.registered[node] = ed
	log.Debug().Str("tag", node.Tag).Str("id", node.ID()).Msg("registered editable element")
}

// Lookup returns the editable wired to the given element, nil if the
// element is not registered.
func (r *Registry) Lookup(node *dom.Node) *Editable {
	return r.registered[node]
}

// Editables returns all currently registered editables.
func (r *Registry) Editables() []*Editable {
	result := make([]*Editable, 0, len(r.registered))
	for _, ed := range r.registered {
		result = append(result, ed)
	}
	return result
}
