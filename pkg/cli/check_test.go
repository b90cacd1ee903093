// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/versioncheck/pkg/update"
)

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	releases := filepath.Join(dir, "releases.json")
	require.NoError(t, os.WriteFile(releases, []byte(`[{"tag_name":"2.1.0"},{"tag_name":"2.0.0"}]`), 0o600))
	spiget := filepath.Join(dir, "spiget.json")
	require.NoError(t, os.WriteFile(spiget, []byte(`{"id":1,"name":"1.9"}`), 0o600))
	plain := filepath.Join(dir, "latest.txt")
	require.NoError(t, os.WriteFile(plain, []byte("2.0-SNAPSHOT\nignored\n"), 0o600))

	tests := []struct {
		name       string
		args       []string
		wantErr    string
		wantStatus update.Status
		wantLatest string
	}{
		{
			name:       "newer latest",
			args:       []string{"--current", "1.2.0", "--latest", "1.3.0"},
			wantStatus: update.StatusNewVersionAvailable,
			wantLatest: "1.3.0",
		},
		{
			name:       "older latest falls back to current",
			args:       []string{"--current", "1.2.0", "--latest", "1.1"},
			wantStatus: update.StatusRunningLatestVersion,
			wantLatest: "1.2.0",
		},
		{
			name:       "no latest is unknown",
			args:       []string{"--current", "1.2.0"},
			wantStatus: update.StatusUnknown,
		},
		{
			name:       "github release payload",
			args:       []string{"--current", "2.0.0", "--latest-file", releases, "--mapper", "github-release"},
			wantStatus: update.StatusNewVersionAvailable,
			wantLatest: "2.1.0",
		},
		{
			name:       "spiget payload",
			args:       []string{"--current", "2.0", "--latest-file", spiget, "--mapper", "spiget"},
			wantStatus: update.StatusRunningLatestVersion,
			wantLatest: "2.0",
		},
		{
			name:       "first line payload",
			args:       []string{"--current", "1.0", "--latest-file", plain},
			wantStatus: update.StatusNewVersionAvailable,
			wantLatest: "2.0-SNAPSHOT",
		},
		{
			name:    "unknown mapper",
			args:    []string{"--current", "1.0", "--latest-file", plain, "--mapper", "rss"},
			wantErr: "rss",
		},
		{
			name:    "mapper rejects payload",
			args:    []string{"--current", "1.0", "--latest-file", plain, "--mapper", "spiget"},
			wantErr: "failed to read latest version",
		},
		{
			name:    "missing file",
			args:    []string{"--current", "1.0", "--latest-file", filepath.Join(dir, "nope")},
			wantErr: "failed to open",
		},
		{
			name:    "latest and file together",
			args:    []string{"--current", "1.0", "--latest", "2", "--latest-file", plain},
			wantErr: "mutually exclusive",
		},
		{
			name:    "fail on update",
			args:    []string{"--current", "1.0", "--latest", "2", "--fail-on-update"},
			wantErr: "newer version available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"check", "--format", "json"}, tt.args...)
			out, err := runCLI(t, args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var res update.Result
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantLatest, res.Latest)
		})
	}
}

func TestCheckCmdRequiresCurrent(t *testing.T) {
	_, err := runCLI(t, "check", "--latest", "1.0")
	assert.Error(t, err)
}
