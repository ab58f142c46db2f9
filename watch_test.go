/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/nodeconf/registry"
	"github.com/suparena/nodeconf/tree"
)

func TestWatchExternalAdd(t *testing.T) {
	s, tr, _ := newTestStore(t, WithWatch(true))
	require.True(t, s.Watching())

	_, err := tr.Add(s.Root(), tree.KindStringValue, "motd", "hello")
	require.NoError(t, err)

	v, ok, err := s.Get("motd", registry.TypeString)
	require.NoError(t, err)
	require.True(t, ok, "added node is visible without Sync")
	assert.Equal(t, "hello", v)
}

func TestWatchIgnoresFolders(t *testing.T) {
	s, tr, buf := newTestStore(t, WithWatch(true))

	_, err := tr.Add(s.Root(), tree.KindFolder, "group", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Len())
	assert.NotContains(t, buf.String(), "level=WARN")
}

func TestWatchExternalRemove(t *testing.T) {
	s, _, _ := newTestStore(t, WithWatch(true))
	require.NoError(t, s.Set("lives", 3))
	require.NoError(t, s.Set("name", "ada"))

	for _, child := range s.Root().Children() {
		if child.Name() == "lives" {
			child.Destroy()
		}
	}

	assert.Equal(t, []string{"name"}, s.Names())
	_, ok, err := s.Get("lives", registry.TypeInt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWatchReparentAway(t *testing.T) {
	s, tr, _ := newTestStore(t, WithWatch(true))
	require.NoError(t, s.Set("moved", true))
	other, err := tr.Add(nil, tree.KindFolder, "Other", nil)
	require.NoError(t, err)

	require.NoError(t, s.Root().Children()[0].SetParent(other))

	assert.Equal(t, 0, s.Len())
}

func TestWatchDoesNotSeeRename(t *testing.T) {
	s, _, _ := newTestStore(t, WithWatch(true))
	require.NoError(t, s.Set("before", 1.5))

	s.Root().Children()[0].SetName("after")

	assert.Equal(t, []string{"before"}, s.Names())
	s.Sync()
	assert.Equal(t, []string{"after"}, s.Names())
}

func TestSetWhileWatching(t *testing.T) {
	s, tr, _ := newTestStore(t, WithWatch(true))

	require.NoError(t, s.Set("score", 10))
	require.NoError(t, s.Set("score", 11))

	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.Root().Children(), 1)
	assert.Equal(t, 2, tr.Created())

	v, ok, err := s.Get("score", registry.TypeInt)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(11), v)
}

func TestUnwatch(t *testing.T) {
	s, tr, _ := newTestStore(t)
	assert.False(t, s.Watching())

	s.Watch()
	s.Watch()
	require.True(t, s.Watching())

	_, err := tr.Add(s.Root(), tree.KindBoolValue, "first", true)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len(), "a second Watch does not double-register")

	s.Unwatch()
	assert.False(t, s.Watching())

	_, err = tr.Add(s.Root(), tree.KindBoolValue, "second", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, s.Names())

	s.Unwatch()
	s.Sync()
	assert.Equal(t, []string{"first", "second"}, s.Names())
}
