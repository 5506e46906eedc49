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

// Package docgen renders the markdown reference pages for a cobra
// command tree, one file per subcommand.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// GenerateMarkdownTree writes one markdown page per command under dir,
// creating the directory if needed.
func GenerateMarkdownTree(cmd *cobra.Command, dir string) error {
	switch fi, err := os.Stat(dir); {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	case err != nil:
		return err
	case !fi.IsDir():
		return fmt.Errorf("%s exists but is not a directory", dir)
	}

	recursivelyDisableAutoGenTags(cmd)
	return doc.GenMarkdownTreeCustom(cmd, dir, frontmatterFilePrepender, linkHandler)
}

func recursivelyDisableAutoGenTags(root *cobra.Command) {
	queue := []*cobra.Command{root}
	for len(queue) > 0 {
		cmd := queue[0]
		queue = append(queue[1:], cmd.Commands()...)
		cmd.DisableAutoGenTag = true
	}
}

func frontmatterFilePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	root, cmdName, ok := strings.Cut(base, "_")
	if !ok {
		cmdName = root
	}
	return fmt.Sprintf("---\ntitle: %s\n---\n\n", strings.ReplaceAll(cmdName, "_", " "))
}

func linkHandler(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if !validFilename(base) {
		return "../"
	}
	return fmt.Sprintf("./%s/", strings.ToLower(base))
}

func validFilename(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
