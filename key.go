/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"strings"

	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/tree"
)

// Separator joins a name and a node kind into an encoded key. Names must not contain it.
const Separator = ":__conf:"

// ValidateName returns an InvalidKeyError if name cannot be encoded.
func ValidateName(name string) error {
	if strings.Contains(name, Separator) {
		return errors.NewInvalidKeyError(name, Separator)
	}
	return nil
}

// encodeKey builds the index key for one (name, kind) pair.
func encodeKey(name string, kind tree.Kind) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name + Separator + string(kind), nil
}

// decodeName recovers the name part of an encoded key. Kinds never contain
// the separator, so the last occurrence splits the key.
func decodeName(key string) string {
	if i := strings.LastIndex(key, Separator); i >= 0 {
		return key[:i]
	}
	return key
}

// decodeKind recovers the kind part of an encoded key.
func decodeKind(key string) tree.Kind {
	if i := strings.LastIndex(key, Separator); i >= 0 {
		return tree.Kind(key[i+len(Separator):])
	}
	return ""
}
