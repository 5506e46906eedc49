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

// Package cli implements the unidata command, a debugging front-end for
// the Unicode property tables.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/resslerruntime3/Avalonia/go/cmd/internal/docgen"
	"github.com/resslerruntime3/Avalonia/go/textformat/unicodedata"
	"github.com/resslerruntime3/Avalonia/go/internal/tabledata"
	"github.com/resslerruntime3/Avalonia/go/internal/utrie"
)

var Main = &cobra.Command{
	Use:   "unidata",
	Short: "unidata inspects the embedded Unicode property tables.",
	Args:  cobra.NoArgs,
}

var propsCmd = &cobra.Command{
	Use:   "props <codepoint> ...",
	Short: "Print every property of the given codepoints.",
	Example: `unidata props U+0041 0x28 ')' 12354
unidata props "$(printf 'א')"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProps,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-parse the embedded tables and sweep the full codepoint domain.",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

var docsCmd = &cobra.Command{
	Use:    "docs <dir>",
	Short:  "Write the markdown reference pages for this command tree.",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return docgen.GenerateMarkdownTree(Main, args[0])
	},
}

func init() {
	Main.AddCommand(propsCmd)
	Main.AddCommand(verifyCmd)
	Main.AddCommand(docsCmd)
}

// parseCodepoint accepts "U+0041", "0x41", decimal, or a literal
// character.
func parseCodepoint(arg string) (rune, error) {
	if upper := strings.ToUpper(arg); strings.HasPrefix(upper, "U+") {
		v, err := strconv.ParseUint(upper[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad codepoint %q: %w", arg, err)
		}
		return rune(v), nil
	}
	if v, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return rune(v), nil
	}
	if cp, size := utf8.DecodeRuneInString(arg); size == len(arg) && cp != utf8.RuneError {
		return cp, nil
	}
	return 0, fmt.Errorf("bad codepoint %q", arg)
}

func runProps(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		cp, err := parseCodepoint(arg)
		if err != nil {
			return err
		}

		p := unicodedata.PropertiesOf(cp)
		fmt.Fprintf(cmd.OutOrStdout(), "U+%04X\n", cp)
		fmt.Fprintf(cmd.OutOrStdout(), "  general category:  %s\n", p.Category)
		fmt.Fprintf(cmd.OutOrStdout(), "  script:            %s\n", p.Script)
		fmt.Fprintf(cmd.OutOrStdout(), "  line break:        %s\n", p.LineBreak)
		fmt.Fprintf(cmd.OutOrStdout(), "  bidi class:        %s\n", unicodedata.BidiClassOf(cp))
		if typ := unicodedata.BidiPairedBracketTypeOf(cp); typ != unicodedata.BracketNone {
			fmt.Fprintf(cmd.OutOrStdout(), "  paired bracket:    %s U+%04X\n", typ, unicodedata.BidiPairedBracketOf(cp))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  grapheme break:    %s\n", unicodedata.GraphemeClusterBreakOf(cp))
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	tables, err := unicodedata.NewTables(tabledata.General, tabledata.Bidi, tabledata.Grapheme)
	if err != nil {
		return err
	}

	for cp := rune(0); cp <= utrie.MaxCodepoint; cp++ {
		if partner := tables.BidiPairedBracket(cp); partner != 0 {
			if tables.BidiPairedBracketType(cp) == unicodedata.BracketNone {
				return fmt.Errorf("U+%04X has bracket partner U+%04X but no bracket type", cp, partner)
			}
			if back := tables.BidiPairedBracket(partner); back != cp {
				return fmt.Errorf("bracket pair U+%04X/U+%04X is not symmetric (reverse is U+%04X)", cp, partner, back)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "tables OK: general %d bytes, bidi %d bytes, grapheme %d bytes\n",
		len(tabledata.General), len(tabledata.Bidi), len(tabledata.Grapheme))
	return nil
}
