/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/tree"
	"github.com/suparena/nodeconf/tree/memtree"
)

func TestKindIsTotal(t *testing.T) {
	for _, vt := range Types() {
		assert.NotEmpty(t, vt.Kind(), "value type %s has no kind", vt)
		assert.True(t, IsValueKind(vt.Kind()))
	}

	assert.Equal(t, tree.KindObjectValue, TypeNil.Kind())
	assert.Equal(t, tree.KindObjectValue, TypeReference.Kind())
	assert.Equal(t, tree.Kind(""), ValueType(99).Kind())
	assert.Equal(t, "ValueType(99)", ValueType(99).String())
	assert.False(t, ValueType(-1).Valid())
}

func TestValueKinds(t *testing.T) {
	want := []tree.Kind{
		tree.KindObjectValue,
		tree.KindBoolValue,
		tree.KindNumberValue,
		tree.KindIntValue,
		tree.KindStringValue,
		tree.KindVector3Value,
		tree.KindColor3Value,
	}
	if diff := cmp.Diff(want, ValueKinds()); diff != "" {
		t.Errorf("ValueKinds() mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, IsValueKind(tree.KindFolder))
	assert.False(t, IsValueKind("Model"))
}

func TestNormalize(t *testing.T) {
	node, err := memtree.New().Create(tree.KindFolder)
	require.NoError(t, err)

	tests := []struct {
		name   string
		in     any
		typ    ValueType
		stored any
	}{
		{"nil", nil, TypeNil, nil},
		{"bool", true, TypeBool, true},
		{"float64", 2.5, TypeNumber, 2.5},
		{"float32", float32(0.5), TypeNumber, 0.5},
		{"int", 10, TypeInt, int64(10)},
		{"int8", int8(-3), TypeInt, int64(-3)},
		{"int64", int64(math.MinInt64), TypeInt, int64(math.MinInt64)},
		{"uint32", uint32(7), TypeInt, int64(7)},
		{"uint64 fits", uint64(math.MaxInt64), TypeInt, int64(math.MaxInt64)},
		{"string", "", TypeString, ""},
		{"Vector3", tree.Vector3{X: 1, Y: 2, Z: 3}, TypeVector3, tree.Vector3{X: 1, Y: 2, Z: 3}},
		{"Color3", tree.Color3FromRGB(255, 0, 0), TypeColor3, tree.Color3{R: 1}},
		{"reference", node, TypeReference, node},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, stored, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.stored, stored)

			inferred, err := TypeOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, inferred)
		})
	}
}

func TestNormalizeTypedNilNode(t *testing.T) {
	var missing *memtree.Node

	typ, stored, err := Normalize(missing)
	require.NoError(t, err)
	assert.Equal(t, TypeReference, typ)
	assert.Nil(t, stored)
	assert.True(t, stored == nil, "typed nil must be stored as an untyped nil")
}

func TestTypeOfUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"slice", []int{1}},
		{"map", map[string]int{}},
		{"struct", struct{}{}},
		{"chan", make(chan int)},
		{"complex", complex(1, 2)},
		{"pointer to string", new(string)},
		{"uint64 overflow", uint64(math.MaxUint64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TypeOf(tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsUnsupportedType(err))
		})
	}
}

func TestTypeFor(t *testing.T) {
	vt, err := TypeFor[bool]()
	require.NoError(t, err)
	assert.Equal(t, TypeBool, vt)

	vt, err = TypeFor[int64]()
	require.NoError(t, err)
	assert.Equal(t, TypeInt, vt)

	vt, err = TypeFor[tree.Node]()
	require.NoError(t, err)
	assert.Equal(t, tree.KindObjectValue, vt.Kind())

	_, err = TypeFor[[]byte]()
	assert.True(t, errors.IsUnsupportedType(err))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "nil", Describe(nil))
	assert.Equal(t, "[]int", Describe([]int{}))
	assert.Equal(t, "tree.Vector3", Describe(tree.Vector3{}))
}
