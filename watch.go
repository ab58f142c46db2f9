/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"log/slog"
	"sort"

	"github.com/suparena/nodeconf/registry"
	"github.com/suparena/nodeconf/tree"
)

// Watch subscribes the store to child-added and child-removed events on its
// root, applying each one to the index as it arrives instead of waiting for
// Sync. Renames are still only picked up by Sync. Watching twice is a no-op.
func (s *Store) Watch() {
	if s.unwatch != nil {
		return
	}
	s.unwatch = s.root.Subscribe(s.handleEvent)
	s.logger.Debug("watching root")
}

// Unwatch cancels the subscription started by Watch.
func (s *Store) Unwatch() {
	if s.unwatch == nil {
		return
	}
	s.unwatch()
	s.unwatch = nil
	s.logger.Debug("stopped watching root")
}

// Watching reports whether the store is subscribed to root events.
func (s *Store) Watching() bool {
	return s.unwatch != nil
}

func (s *Store) handleEvent(ev tree.Event) {
	if ev.Child == nil {
		return
	}
	switch ev.Type {
	case tree.ChildAdded:
		if registry.IsValueKind(ev.Child.Kind()) {
			_ = s.register(s.entries, ev.Child)
		}
	case tree.ChildRemoved:
		s.forget(ev.Child)
	}
}

// forget drops every entry backed by node.
func (s *Store) forget(node tree.Node) {
	var keys []string
	for key, n := range s.entries {
		if n == node {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		delete(s.entries, key)
		s.logger.Debug("forgot removed node", slog.String("key", key))
	}
}
