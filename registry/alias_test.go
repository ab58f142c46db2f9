/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/tree"
)

type celsius float64

type playerID uint64

type spawnPoint tree.Vector3

type teamName string

type statusCode int

func TestRegisterAlias(t *testing.T) {
	require.NoError(t, RegisterAlias[celsius](TypeNumber))
	require.NoError(t, RegisterAlias[celsius](TypeNumber), "same pair is idempotent")

	vt, ok := LookupAlias(reflect.TypeOf(celsius(0)))
	require.True(t, ok)
	assert.Equal(t, TypeNumber, vt)

	typ, stored, err := Normalize(celsius(21.5))
	require.NoError(t, err)
	assert.Equal(t, TypeNumber, typ)
	assert.Equal(t, 21.5, stored)

	back, ok := As[celsius](stored)
	require.True(t, ok)
	assert.Equal(t, celsius(21.5), back)
}

func TestRegisterAliasConflict(t *testing.T) {
	require.NoError(t, RegisterAlias[teamName](TypeString))

	for _, vt := range []ValueType{TypeBool, TypeInt, TypeReference} {
		err := RegisterAlias[teamName](vt)
		require.Error(t, err, vt.String())
		assert.True(t, errors.IsAlreadyExists(err), vt.String())
	}

	vt, ok := LookupAlias(reflect.TypeOf(teamName("")))
	require.True(t, ok)
	assert.Equal(t, TypeString, vt)
}

func TestRegisterAliasRejected(t *testing.T) {
	t.Run("unnamed type", func(t *testing.T) {
		err := RegisterAlias[float64](TypeNumber)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("meaning-changing conversion", func(t *testing.T) {
		err := RegisterAlias[statusCode](TypeString)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("reference types are not aliasable", func(t *testing.T) {
		err := RegisterAlias[statusCode](TypeReference)
		assert.True(t, errors.IsValidationError(err))
	})

	_, ok := LookupAlias(reflect.TypeOf(statusCode(0)))
	assert.False(t, ok)

	_, err := TypeOf(statusCode(1))
	assert.True(t, errors.IsUnsupportedType(err))
}

func TestAliasStructAndUnsigned(t *testing.T) {
	require.NoError(t, RegisterAlias[spawnPoint](TypeVector3))
	require.NoError(t, RegisterAlias[playerID](TypeInt))

	typ, stored, err := Normalize(spawnPoint{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.Equal(t, TypeVector3, typ)
	assert.Equal(t, tree.Vector3{X: 1, Y: 2, Z: 3}, stored)

	typ, stored, err = Normalize(playerID(42))
	require.NoError(t, err)
	assert.Equal(t, TypeInt, typ)
	assert.Equal(t, int64(42), stored)

	_, _, err = Normalize(playerID(math.MaxUint64))
	assert.True(t, errors.IsUnsupportedType(err))
}

func TestAs(t *testing.T) {
	v, ok := As[bool](true)
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = As[int](int64(3))
	assert.False(t, ok, "int is not an alias, stored ints are int64")

	_, ok = As[string](nil)
	assert.False(t, ok)
}
