/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"math"
	"reflect"

	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/tree"
)

// ValueType tags the primitive kinds of values a store can hold.
type ValueType int

const (
	TypeNil ValueType = iota
	TypeBool
	TypeNumber
	TypeInt
	TypeString
	TypeReference
	TypeVector3
	TypeColor3

	numTypes
)

// valueTypes maps each ValueType to its name and the node kind that persists it.
// Nil and Reference share ObjectValue: an empty reference slot reads back as nil.
var valueTypes = [numTypes]struct {
	name string
	kind tree.Kind
}{
	TypeNil:       {"nil", tree.KindObjectValue},
	TypeBool:      {"bool", tree.KindBoolValue},
	TypeNumber:    {"number", tree.KindNumberValue},
	TypeInt:       {"int", tree.KindIntValue},
	TypeString:    {"string", tree.KindStringValue},
	TypeReference: {"reference", tree.KindObjectValue},
	TypeVector3:   {"Vector3", tree.KindVector3Value},
	TypeColor3:    {"Color3", tree.KindColor3Value},
}

// Valid reports whether t is one of the defined value types.
func (t ValueType) Valid() bool {
	return t >= 0 && t < numTypes
}

func (t ValueType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
	return valueTypes[t].name
}

// Kind returns the node kind that persists values of type t, or "" for an undefined type.
func (t ValueType) Kind() tree.Kind {
	if !t.Valid() {
		return ""
	}
	return valueTypes[t].kind
}

// Types returns every defined value type in declaration order.
func Types() []ValueType {
	types := make([]ValueType, 0, numTypes)
	for t := ValueType(0); t < numTypes; t++ {
		types = append(types, t)
	}
	return types
}

// ValueKinds returns the distinct node kinds used by value types, in declaration order.
func ValueKinds() []tree.Kind {
	kinds := make([]tree.Kind, 0, numTypes)
	seen := make(map[tree.Kind]bool, numTypes)
	for _, vt := range valueTypes {
		if !seen[vt.kind] {
			seen[vt.kind] = true
			kinds = append(kinds, vt.kind)
		}
	}
	return kinds
}

// IsValueKind reports whether nodes of kind k persist a value type.
func IsValueKind(k tree.Kind) bool {
	for _, vt := range valueTypes {
		if vt.kind == k {
			return true
		}
	}
	return false
}

// TypeOf returns the value type describing v. A nil interface is TypeNil.
// Values of any other unrecognized type fail with errors.ErrUnsupportedType.
func TypeOf(v any) (ValueType, error) {
	t, _, err := Normalize(v)
	return t, err
}

// Normalize returns v's value type together with v converted to the Go type the
// type's node kind stores: float64 for numbers, int64 for integers.
func Normalize(v any) (ValueType, any, error) {
	switch x := v.(type) {
	case nil:
		return TypeNil, nil, nil
	case bool:
		return TypeBool, x, nil
	case float64:
		return TypeNumber, x, nil
	case float32:
		return TypeNumber, float64(x), nil
	case int:
		return TypeInt, int64(x), nil
	case int8:
		return TypeInt, int64(x), nil
	case int16:
		return TypeInt, int64(x), nil
	case int32:
		return TypeInt, int64(x), nil
	case int64:
		return TypeInt, x, nil
	case uint8:
		return TypeInt, int64(x), nil
	case uint16:
		return TypeInt, int64(x), nil
	case uint32:
		return TypeInt, int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, nil, overflow(v)
		}
		return TypeInt, int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, nil, overflow(v)
		}
		return TypeInt, int64(x), nil
	case string:
		return TypeString, x, nil
	case tree.Vector3:
		return TypeVector3, x, nil
	case tree.Color3:
		return TypeColor3, x, nil
	case tree.Node:
		if isNilNode(x) {
			return TypeReference, nil, nil
		}
		return TypeReference, x, nil
	}
	return normalizeAlias(v)
}

// isNilNode reports whether n is a non-nil interface wrapping a nil pointer or map.
func isNilNode(n tree.Node) bool {
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// TypeFor returns the value type for values of Go type T. Interface types,
// including tree.Node, resolve to TypeNil, whose kind is shared with references.
func TypeFor[T any]() (ValueType, error) {
	var zero T
	return TypeOf(any(zero))
}

// Describe returns a short description of v's Go type for diagnostics.
func Describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func overflow(v any) error {
	return errors.NewUnsupportedTypeError("", fmt.Sprintf("%T (value %v overflows int64)", v, v))
}

func unsupported(v any) error {
	return errors.NewUnsupportedTypeError("", Describe(v))
}
