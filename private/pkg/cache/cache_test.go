// Copyright 2024-2026 Lomheny, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheTryGetStore(t *testing.T) {
	t.Parallel()
	var c Cache[string, int]
	_, ok := c.TryGet("a")
	require.False(t, ok)
	c.Store("a", 1)
	value, ok := c.TryGet("a")
	require.True(t, ok)
	require.Equal(t, 1, value)
	require.Equal(t, 1, c.Len())
}

func TestCacheGetOrAdd(t *testing.T) {
	t.Parallel()
	var c Cache[string, int]
	calls := 0
	get := func() (int, error) {
		calls++
		return 42, nil
	}
	value, err := c.GetOrAdd("a", get)
	require.NoError(t, err)
	require.Equal(t, 42, value)
	value, err = c.GetOrAdd("a", get)
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.Equal(t, 1, calls)
}

func TestCacheErrorsNotCached(t *testing.T) {
	t.Parallel()
	var c Cache[string, int]
	wantErr := errors.New("boom")
	_, err := c.GetOrAdd("a", func() (int, error) { return 0, wantErr })
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 0, c.Len())
}

func TestCacheInvalidate(t *testing.T) {
	t.Parallel()
	var c Cache[string, int]
	c.Store("a", 1)
	c.Store("b", 2)
	c.Invalidate("a")
	_, ok := c.TryGet("a")
	require.False(t, ok)
	_, ok = c.TryGet("b")
	require.True(t, ok)
	c.InvalidateAll()
	require.Equal(t, 0, c.Len())
}
