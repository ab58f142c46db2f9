/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"log/slog"

	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/registry"
	"github.com/suparena/nodeconf/tree"
)

// RegisterExisting adds an existing value node to the index under its
// current name and the value type inferred from its held value. A node that
// cannot be registered is logged as a warning and reported as an
// UnregisterableNodeError; the index is left unchanged.
//
// The node is not reparented. Its key is frozen until the next Sync.
func (s *Store) RegisterExisting(node tree.Node) error {
	return s.register(s.entries, node)
}

// Sync rebuilds the index from the root's current children. Renames and
// structural changes made since the last Sync become visible; keys of nodes
// that are gone or renamed are dropped.
func (s *Store) Sync() {
	entries := make(map[string]tree.Node, len(s.entries))
	skipped := 0
	for _, child := range s.root.Children() {
		if !registry.IsValueKind(child.Kind()) {
			continue
		}
		if err := s.register(entries, child); err != nil {
			skipped++
		}
	}
	s.entries = entries
	s.logger.Debug("synced", slog.Int("count", len(entries)), slog.Int("skipped", skipped))
}

// identified is implemented by trees that give nodes a stable identifier,
// which distinguishes same-named siblings in warnings.
type identified interface {
	ID() string
}

func (s *Store) register(entries map[string]tree.Node, node tree.Node) error {
	if node == nil {
		return errors.NewValidationError("node", "node is required")
	}

	value := node.Value()
	key, err := registrationKey(node, value)
	if err != nil {
		attrs := []any{
			slog.String("path", node.FullName()),
			slog.String("kind", node.Kind().String()),
			slog.String("type", registry.Describe(value)),
			slog.String("error", err.Error()),
		}
		if id, ok := node.(identified); ok {
			attrs = append(attrs, slog.String("id", id.ID()))
		}
		s.logger.Warn("skipping node that cannot be registered", attrs...)
		return err
	}

	entries[key] = node
	return nil
}

// registrationKey infers the key for an existing node from its name and held value.
func registrationKey(node tree.Node, value any) (string, error) {
	unregisterable := func(reason string) error {
		return errors.NewUnregisterableNodeError(node.FullName(), registry.Describe(value), reason)
	}

	if !registry.IsValueKind(node.Kind()) {
		return "", unregisterable("kind " + node.Kind().String() + " holds no value")
	}
	vt, err := registry.TypeOf(value)
	if err != nil {
		return "", unregisterable("no value type for held value")
	}
	if !node.IsA(vt.Kind()) {
		return "", unregisterable("held " + vt.String() + " does not match kind " + node.Kind().String())
	}
	key, err := encodeKey(node.Name(), vt.Kind())
	if err != nil {
		return "", unregisterable(err.Error())
	}
	return key, nil
}
