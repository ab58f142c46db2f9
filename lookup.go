/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"fmt"

	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/registry"
)

// Lookup is a typed Get. T selects the value type, so canonical Go types
// (bool, float64, int64, string, tree.Vector3, tree.Color3, tree.Node) and
// registered aliases of them are the useful choices; Lookup[int] finds the
// IntValue entry but cannot return its int64 value as int.
//
// An ObjectValue entry holding nil yields the zero T and true.
func Lookup[T any](s *Store, name string) (T, bool, error) {
	var zero T

	vt, err := registry.TypeFor[T]()
	if err != nil {
		return zero, false, errors.NewUnsupportedTypeError(name, fmt.Sprintf("%T", zero))
	}
	v, ok, err := s.Get(name, vt)
	if err != nil || !ok {
		return zero, false, err
	}
	if v == nil {
		return zero, true, nil
	}

	tv, ok := registry.As[T](v)
	if !ok {
		return zero, false, errors.NewValidationError("type", fmt.Sprintf("%q holds %T, not %T", name, v, zero))
	}
	return tv, true, nil
}
