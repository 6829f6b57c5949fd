//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texter.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
tab_width = 8
gap_width = 64
log_file = "/tmp/texter.log"
status_timeout = "2s"
highlight = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.TabWidth)
	assert.Equal(t, 64, cfg.GapWidth)
	assert.Equal(t, "/tmp/texter.log", cfg.LogFile)
	assert.Equal(t, 2*time.Second, cfg.StatusTimeout.Duration)
	assert.False(t, cfg.Highlight)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
tab_width = 0
gap_width = -3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().TabWidth, cfg.TabWidth)
	assert.Equal(t, Default().GapWidth, cfg.GapWidth)
	require.NoError(t, cfg.Validate())
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "tab_width = [")
	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.TabWidth = 2
	cfg.StatusTimeout = Duration{time.Minute}
	require.NoError(t, Save(cfg, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
