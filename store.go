/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/registry"
	"github.com/suparena/nodeconf/tree"
)

// Store is a typed key-value view over the value nodes directly under a root node.
//
// Each (name, value type) pair is persisted in its own child node, so one name
// can hold a bool, a number and a string at the same time. A Store is not safe
// for concurrent use.
type Store struct {
	tree    tree.Tree
	root    tree.Node
	entries map[string]tree.Node
	logger  *slog.Logger
	unwatch func()
}

// New creates a Store backed by a fresh, unparented folder created in t.
func New(t tree.Tree, opts ...Option) (*Store, error) {
	if t == nil {
		return nil, errors.NewValidationError("tree", "tree is required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := ValidateName(o.rootName); err != nil {
		return nil, err
	}

	root, err := t.Create(tree.KindFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to create root: %w", err)
	}
	root.SetName(o.rootName)

	s := newStore(t, root, o)
	if o.watch {
		s.Watch()
	}
	return s, nil
}

// NewWithRoot creates a Store over an existing root and adopts every value
// node already under it. Children that cannot be adopted are logged and skipped.
func NewWithRoot(t tree.Tree, root tree.Node, opts ...Option) (*Store, error) {
	if t == nil {
		return nil, errors.NewValidationError("tree", "tree is required")
	}
	if root == nil {
		return nil, errors.NewValidationError("root", "root node is required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := newStore(t, root, o)
	s.Sync()
	if o.watch {
		s.Watch()
	}
	return s, nil
}

func newStore(t tree.Tree, root tree.Node, o options) *Store {
	return &Store{
		tree:    t,
		root:    root,
		entries: make(map[string]tree.Node),
		logger:  o.logger.With(slog.String("root", root.FullName())),
	}
}

// Root returns the node the store keeps its values under.
func (s *Store) Root() tree.Node {
	return s.root
}

// Get returns the value stored under name for value type vt. The boolean is
// false when no such entry exists. Get never creates nodes.
func (s *Store) Get(name string, vt registry.ValueType) (any, bool, error) {
	kind := vt.Kind()
	if kind == "" {
		return nil, false, errors.NewValidationError("valueType", fmt.Sprintf("undefined value type %s", vt))
	}
	key, err := encodeKey(name, kind)
	if err != nil {
		return nil, false, err
	}

	node, ok := s.entries[key]
	if !ok || !node.IsA(kind) {
		return nil, false, nil
	}
	return node.Value(), true, nil
}

// GetOne is Get for callers that treat a missing entry as a failure: it
// returns a NotFoundError naming the key instead of a false flag.
func (s *Store) GetOne(name string, vt registry.ValueType) (any, error) {
	v, ok, err := s.Get(name, vt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFoundError(vt.String(), name)
	}
	return v, nil
}

// Set stores value under name, creating the backing node on first use.
// The value's Go type selects the value type; see package registry.
//
// Set writes to the indexed node. If that node was destroyed or detached
// outside the store and the store is not watching, the write goes to the
// stale node (or fails if the tree rejects it) until Sync drops the entry.
func (s *Store) Set(name string, value any) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	vt, stored, err := registry.Normalize(value)
	if err != nil {
		return errors.NewUnsupportedTypeError(name, registry.Describe(value))
	}
	key, err := encodeKey(name, vt.Kind())
	if err != nil {
		return err
	}

	if node, ok := s.entries[key]; ok {
		if err := node.SetValue(stored); err != nil {
			return fmt.Errorf("failed to set %q: %w", name, err)
		}
		return nil
	}

	node, err := s.tree.Create(vt.Kind())
	if err != nil {
		return fmt.Errorf("failed to create %s for %q: %w", vt.Kind(), name, err)
	}
	node.SetName(name)
	if err := node.SetValue(stored); err != nil {
		node.Destroy()
		return fmt.Errorf("failed to set %q: %w", name, err)
	}
	s.entries[key] = node
	if err := node.SetParent(s.root); err != nil {
		delete(s.entries, key)
		node.Destroy()
		return fmt.Errorf("failed to parent %q under %s: %w", name, s.root.FullName(), err)
	}

	s.logger.Debug("created value node", slog.String("key", key), slog.String("type", vt.String()))
	return nil
}

// Ensure returns the value stored under name for fallback's value type, or
// fallback when there is no such entry or the entry holds nil. Ensure never
// creates nodes.
//
// A stored value comes back in its canonical form, not fallback's Go type:
// an int fallback yields int64 and a float32 fallback yields float64 when the
// entry exists. Use Lookup for a typed result.
func (s *Store) Ensure(name string, fallback any) (any, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	vt, err := registry.TypeOf(fallback)
	if err != nil {
		return nil, errors.NewUnsupportedTypeError(name, registry.Describe(fallback))
	}

	v, ok, err := s.Get(name, vt)
	if err != nil {
		return nil, err
	}
	if !ok || v == nil {
		return fallback, nil
	}
	return v, nil
}

// Delete removes every entry named name, whatever its value type, and
// destroys the backing nodes. Deleting an unknown name is a no-op.
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	var keys []string
	for key := range s.entries {
		if decodeName(key) == name {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		node := s.entries[key]
		delete(s.entries, key)
		node.Destroy()
		s.logger.Debug("deleted value node", slog.String("key", key))
	}
	return nil
}

// Close ends the store's watch subscription. The tree is left untouched.
func (s *Store) Close() error {
	s.Unwatch()
	return nil
}
