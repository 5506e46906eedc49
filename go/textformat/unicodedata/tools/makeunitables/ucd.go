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

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ucdRange is one assignment parsed from a UCD file: the codepoints
// [lo, hi] carry value. Bracket entries abuse hi for the partner
// codepoint, since BidiBrackets.txt is a pair list rather than a range
// file.
type ucdRange struct {
	lo, hi rune
	value  string
}

type ucdData struct {
	categories    []ucdRange
	scripts       []ucdRange
	lineBreak     []ucdRange
	bidiClass     []ucdRange
	bidiDefaults  []ucdRange
	brackets      []ucdRange
	graphemeBreak []ucdRange
	extPict       []ucdRange
}

func loadUCD(dir string) (*ucdData, error) {
	ucd := &ucdData{}

	var err error
	if ucd.categories, err = parseUnicodeData(filepath.Join(dir, "UnicodeData.txt")); err != nil {
		return nil, err
	}
	if ucd.scripts, err = parsePropertyFile(filepath.Join(dir, "Scripts.txt"), 0, nil); err != nil {
		return nil, err
	}
	if ucd.lineBreak, err = parsePropertyFile(filepath.Join(dir, "LineBreak.txt"), 0, nil); err != nil {
		return nil, err
	}
	ucd.bidiClass, err = parsePropertyFile(filepath.Join(dir, "extracted", "DerivedBidiClass.txt"), 0, &ucd.bidiDefaults)
	if err != nil {
		return nil, err
	}
	if ucd.brackets, err = parseBidiBrackets(filepath.Join(dir, "BidiBrackets.txt")); err != nil {
		return nil, err
	}
	// Grapheme break class names are compared without underscores so
	// that Regional_Indicator matches the enum spelling.
	ucd.graphemeBreak, err = parsePropertyFile(
		filepath.Join(dir, "auxiliary", "GraphemeBreakProperty.txt"), 0,
		nil, stripUnderscores)
	if err != nil {
		return nil, err
	}
	emoji, err := parsePropertyFile(filepath.Join(dir, "emoji", "emoji-data.txt"), 0, nil)
	if err != nil {
		return nil, err
	}
	for _, r := range emoji {
		if r.value == "Extended_Pictographic" {
			ucd.extPict = append(ucd.extPict, r)
		}
	}
	return ucd, nil
}

func stripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

// forEachLine feeds every semicolon-separated data line of a UCD file to
// fn, with comments stripped and fields trimmed. Lines of the form
// "# @missing: lo..hi; value" are passed to missing when it is non-nil.
func forEachLine(path string, missing func(fields []string) error, fn func(fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if rest, ok := strings.CutPrefix(line, "# @missing:"); ok && missing != nil {
			if err := missing(splitFields(rest)); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(splitFields(line)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return scanner.Err()
}

func splitFields(line string) []string {
	fields := strings.Split(line, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseRange parses "0041" or "0041..005A".
func parseRange(s string) (lo, hi rune, err error) {
	first, last, isRange := strings.Cut(s, "..")
	l, err := strconv.ParseUint(first, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("bad codepoint %q: %w", s, err)
	}
	lo, hi = rune(l), rune(l)
	if isRange {
		h, err := strconv.ParseUint(last, 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("bad codepoint range %q: %w", s, err)
		}
		hi = rune(h)
	}
	return lo, hi, nil
}

// parsePropertyFile reads the common "range ; value" UCD layout, taking
// the value from the given field index after the range. When defaults is
// non-nil, @missing directives are collected into it. Optional
// normalizers are applied to every value.
func parsePropertyFile(path string, valueField int, defaults *[]ucdRange, normalize ...func(string) string) ([]ucdRange, error) {
	var out []ucdRange

	add := func(dst *[]ucdRange) func(fields []string) error {
		return func(fields []string) error {
			if len(fields) < valueField+2 {
				return fmt.Errorf("short line %q", strings.Join(fields, ";"))
			}
			lo, hi, err := parseRange(fields[0])
			if err != nil {
				return err
			}
			value := fields[valueField+1]
			for _, n := range normalize {
				value = n(value)
			}
			*dst = append(*dst, ucdRange{lo: lo, hi: hi, value: value})
			return nil
		}
	}

	var missing func(fields []string) error
	if defaults != nil {
		missing = add(defaults)
	}
	if err := forEachLine(path, missing, add(&out)); err != nil {
		return nil, err
	}
	return out, nil
}

// parseUnicodeData reads the general category out of UnicodeData.txt,
// which marks large ranges with paired "..., First>"/"..., Last>" names
// instead of range syntax.
func parseUnicodeData(path string) ([]ucdRange, error) {
	var out []ucdRange
	var rangeStart rune = -1

	err := forEachLine(path, nil, func(fields []string) error {
		if len(fields) < 3 {
			return fmt.Errorf("short line %q", strings.Join(fields, ";"))
		}
		cp, _, err := parseRange(fields[0])
		if err != nil {
			return err
		}
		name, category := fields[1], fields[2]
		switch {
		case strings.HasSuffix(name, ", First>"):
			rangeStart = cp
		case strings.HasSuffix(name, ", Last>"):
			if rangeStart < 0 {
				return fmt.Errorf("range end U+%04X without start", cp)
			}
			out = append(out, ucdRange{lo: rangeStart, hi: cp, value: category})
			rangeStart = -1
		default:
			out = append(out, ucdRange{lo: cp, hi: cp, value: category})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parseBidiBrackets reads "cp; partner; type" triples; type is "o" or
// "c". The partner lands in the hi field.
func parseBidiBrackets(path string) ([]ucdRange, error) {
	var out []ucdRange
	err := forEachLine(path, nil, func(fields []string) error {
		if len(fields) < 3 {
			return fmt.Errorf("short line %q", strings.Join(fields, ";"))
		}
		cp, _, err := parseRange(fields[0])
		if err != nil {
			return err
		}
		partner, _, err := parseRange(fields[1])
		if err != nil {
			return err
		}
		if typ := fields[2]; typ != "o" && typ != "c" {
			return fmt.Errorf("unknown bracket type %q for U+%04X", typ, cp)
		}
		out = append(out, ucdRange{lo: cp, hi: partner, value: fields[2]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
