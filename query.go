/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"
	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/registry"
	"github.com/suparena/nodeconf/tree"
)

// Has reports whether name holds a value of type vt.
func (s *Store) Has(name string, vt registry.ValueType) (bool, error) {
	_, ok, err := s.Get(name, vt)
	return ok, err
}

// Len returns the number of indexed entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Names returns the distinct names in the index, sorted.
func (s *Store) Names() []string {
	seen := make(map[string]struct{}, len(s.entries))
	names := make([]string, 0, len(s.entries))
	for key := range s.entries {
		name := decodeName(key)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Types returns the node kinds name currently holds, sorted.
func (s *Store) Types(name string) ([]tree.Kind, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	var kinds []tree.Kind
	for key := range s.entries {
		if decodeName(key) == name {
			kinds = append(kinds, decodeKind(key))
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds, nil
}

// Match returns the sorted names matching a glob pattern such as "player.*".
// The '.' character is treated as a segment separator, so '*' does not cross it.
func (s *Store) Match(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, errors.NewValidationError("pattern", fmt.Sprintf("invalid glob %q: %v", pattern, err))
	}

	var matched []string
	for _, name := range s.Names() {
		if g.Match(name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}
