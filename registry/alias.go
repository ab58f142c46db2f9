/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/tree"
)

// The alias registry lets named Go types stand in for one of the built-in
// value types, e.g. `type Celsius float64` as TypeNumber. It never adds tags.

var (
	aliasRegistry = make(map[reflect.Type]ValueType)
	mu            sync.RWMutex
)

// canonicalTypes is the Go type stored by each aliasable value type.
var canonicalTypes = map[ValueType]reflect.Type{
	TypeBool:    reflect.TypeOf(false),
	TypeNumber:  reflect.TypeOf(float64(0)),
	TypeInt:     reflect.TypeOf(int64(0)),
	TypeString:  reflect.TypeOf(""),
	TypeVector3: reflect.TypeOf(tree.Vector3{}),
	TypeColor3:  reflect.TypeOf(tree.Color3{}),
}

// RegisterAlias associates the named Go type T with value type vt.
// Registering the same pair twice is a no-op; registering T with a different
// value type fails.
func RegisterAlias[T any](vt ValueType) error {
	t := reflect.TypeOf((*T)(nil)).Elem()

	if t.Name() == "" || t.PkgPath() == "" {
		return errors.NewValidationError("type", fmt.Sprintf("%s is not a named type", t))
	}

	mu.Lock()
	defer mu.Unlock()

	if existing, ok := aliasRegistry[t]; ok {
		if existing == vt {
			return nil
		}
		return errors.NewAlreadyExistsError("alias", t.String())
	}

	canon, ok := canonicalTypes[vt]
	if !ok {
		return errors.NewValidationError("valueType", fmt.Sprintf("%s cannot be aliased", vt))
	}
	if !compatible(t, vt) || !t.ConvertibleTo(canon) {
		return errors.NewValidationError("type", fmt.Sprintf("%s cannot be stored as %s", t, vt))
	}
	aliasRegistry[t] = vt
	return nil
}

// LookupAlias returns the value type registered for t, if any.
func LookupAlias(t reflect.Type) (ValueType, bool) {
	mu.RLock()
	defer mu.RUnlock()
	vt, ok := aliasRegistry[t]
	return vt, ok
}

// As converts a stored value to T, undoing the canonical conversion for aliased types.
func As[T any](v any) (T, bool) {
	if tv, ok := v.(T); ok {
		return tv, true
	}

	var zero T
	if v == nil {
		return zero, false
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := LookupAlias(t); !ok {
		return zero, false
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().ConvertibleTo(t) {
		return zero, false
	}
	return rv.Convert(t).Interface().(T), true
}

func normalizeAlias(v any) (ValueType, any, error) {
	rv := reflect.ValueOf(v)
	vt, ok := LookupAlias(rv.Type())
	if !ok {
		return 0, nil, unsupported(v)
	}
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint64:
		if rv.Uint() > math.MaxInt64 {
			return 0, nil, overflow(v)
		}
	}
	return vt, rv.Convert(canonicalTypes[vt]).Interface(), nil
}

// compatible rejects conversions Go allows but that change meaning, such as int to string.
func compatible(t reflect.Type, vt ValueType) bool {
	switch vt {
	case TypeBool:
		return t.Kind() == reflect.Bool
	case TypeNumber:
		return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
	case TypeInt:
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false
	case TypeString:
		return t.Kind() == reflect.String
	case TypeVector3, TypeColor3:
		return t.Kind() == reflect.Struct
	default:
		return false
	}
}
