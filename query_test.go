/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/nodeconf/errors"
	"github.com/suparena/nodeconf/registry"
	"github.com/suparena/nodeconf/tree"
)

func TestQueries(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.NoError(t, s.Set("player.name", "ada"))
	require.NoError(t, s.Set("player.lives", 3))
	require.NoError(t, s.Set("player.lives", 2.5))
	require.NoError(t, s.Set("player.spawn.x", 0.0))
	require.NoError(t, s.Set("music", true))

	t.Run("Len counts entries", func(t *testing.T) {
		assert.Equal(t, 5, s.Len())
	})

	t.Run("Names are distinct and sorted", func(t *testing.T) {
		assert.Equal(t, []string{"music", "player.lives", "player.name", "player.spawn.x"}, s.Names())
	})

	t.Run("Types", func(t *testing.T) {
		kinds, err := s.Types("player.lives")
		require.NoError(t, err)
		assert.Equal(t, []tree.Kind{tree.KindIntValue, tree.KindNumberValue}, kinds)

		kinds, err = s.Types("missing")
		require.NoError(t, err)
		assert.Empty(t, kinds)

		_, err = s.Types("bad" + Separator)
		assert.True(t, errors.IsInvalidKey(err))
	})

	t.Run("Has", func(t *testing.T) {
		ok, err := s.Has("music", registry.TypeBool)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Has("music", registry.TypeString)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Match", func(t *testing.T) {
		tests := []struct {
			pattern string
			want    []string
		}{
			{"player.*", []string{"player.lives", "player.name"}},
			{"player.**", []string{"player.lives", "player.name", "player.spawn.x"}},
			{"m?sic", []string{"music"}},
			{"{music,player.name}", []string{"music", "player.name"}},
			{"nothing.*", nil},
		}

		for _, tt := range tests {
			t.Run(tt.pattern, func(t *testing.T) {
				got, err := s.Match(tt.pattern)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("Match rejects invalid pattern", func(t *testing.T) {
		_, err := s.Match("[unclosed")
		assert.True(t, errors.IsValidationError(err))
	})
}
