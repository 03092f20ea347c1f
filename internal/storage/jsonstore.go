// Package storage provides an example persistence sink for committed
// edits: a flat JSON file mapping element ids to their committed content.
package storage

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lhagen/inplace/internal/dom"
)

// A JSONStore persists committed element content keyed by element id into a
// JSON file. Elements without an id are skipped.
type JSONStore struct {
	path string
}

// NewJSONStore constructs a store writing to the given path. The file is
// created on first save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Save writes the element's current content under its id.
func (s *JSONStore) Save(node *dom.Node) error {
	id := node.ID()
	if id == "" {
		log.Debug().Str("tag", node.Tag).Msg("element has no id, not persisting")
		return nil
	}

	existing, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot read store file '%s': %w", s.path, err)
	}

	updated, err := sjson.Set(string(existing), id, node.Content())
	if err != nil {
		return fmt.Errorf("cannot update store contents: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("cannot write store file '%s': %w", s.path, err)
	}
	return nil
}

// Load returns the stored content for the given element id and whether any
// is stored.
func (s *JSONStore) Load(id string) (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	result := gjson.Get(string(data), id)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

// SaveCallback returns this store's Save as a save callback suitable for
// the editing configuration; persistence errors are logged, not surfaced,
// as persistence is best-effort from the editing lifecycle's point of view.
func (s *JSONStore) SaveCallback() func(*dom.Node) {
	return func(node *dom.Node) {
		if err := s.Save(node); err != nil {
			log.Error().Err(err).Msg("could not persist committed content")
		}
	}
}
