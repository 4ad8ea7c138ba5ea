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

package nodelsp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()
	config, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeWorkspace(t, root, map[string]string{
		"nodejstools.yaml": `extra_builtins:
  - electron
excluded_dirs:
  - dist
max_walk_depth: 4
default_quote: '"'
`,
	})
	config, err := loadConfig(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"electron"}, config.ExtraBuiltins)
	assert.Equal(t, []string{"dist"}, config.ExcludedDirs)
	assert.Equal(t, 4, config.MaxWalkDepth)
	assert.Equal(t, `"`, config.DefaultQuote)
}

func TestLoadConfigFromAncestor(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeWorkspace(t, root, map[string]string{
		"nodejstools.yaml": "extra_builtins: [electron]\n",
		"a/b/keep":         "",
	})
	config, err := loadConfig(filepath.Join(root, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"electron"}, config.ExtraBuiltins)
	// Omitted fields keep their defaults.
	assert.Equal(t, "'", config.DefaultQuote)
}

func TestLoadConfigInvalidQuote(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, configFileName),
		[]byte("default_quote: x\n"),
		0o644,
	))
	_, err := loadConfig(root)
	assert.ErrorContains(t, err, "default_quote")
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, configFileName),
		[]byte("extra_builtins: {not a list\n"),
		0o644,
	))
	_, err := loadConfig(root)
	assert.ErrorContains(t, err, configFileName)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, defaultConfig().validate())
	assert.Error(t, (&Config{DefaultQuote: "`"}).validate())
	assert.Error(t, (&Config{DefaultQuote: "'", MaxWalkDepth: -1}).validate())
}
