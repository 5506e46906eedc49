/*
Copyright 2025 The Avalonia Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package docgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMarkdownTree(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		expectErr bool
	}{
		{
			name:      "empty dir",
			dir:       "",
			expectErr: true,
		},
		{
			name: "fresh dir",
			dir:  filepath.Join(t.TempDir(), "docs"),
		},
		{
			name:      "not a directory",
			dir:       "./docgen.go",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &cobra.Command{Use: "sample"}
			root.AddCommand(&cobra.Command{Use: "sub", Run: func(*cobra.Command, []string) {}})

			err := GenerateMarkdownTree(root, tt.dir)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			entries, err := os.ReadDir(tt.dir)
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.Contains(t, names, "sample.md")
			assert.Contains(t, names, "sample_sub.md")
		})
	}
}

func TestFrontmatterFilePrepender(t *testing.T) {
	assert.Equal(t, "---\ntitle: props\n---\n\n", frontmatterFilePrepender("docs/unidata_props.md"))
	assert.Equal(t, "---\ntitle: unidata\n---\n\n", frontmatterFilePrepender("docs/unidata.md"))
}

func TestLinkHandler(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		expectedStr string
	}{
		{
			name:        "normal value",
			fileName:    "Some_value.md",
			expectedStr: "./some_value/",
		},
		{
			name:        "abnormal value",
			fileName:    `./.jash13_24`,
			expectedStr: "../",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expectedStr, linkHandler(tt.fileName))
		})
	}
}
