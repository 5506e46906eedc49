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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ucd.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseRange(t *testing.T) {
	lo, hi, err := parseRange("0041")
	require.NoError(t, err)
	assert.Equal(t, rune(0x41), lo)
	assert.Equal(t, rune(0x41), hi)

	lo, hi, err = parseRange("0600..0605")
	require.NoError(t, err)
	assert.Equal(t, rune(0x600), lo)
	assert.Equal(t, rune(0x605), hi)

	_, _, err = parseRange("not-hex")
	require.Error(t, err)
}

func TestParsePropertyFile(t *testing.T) {
	path := writeTempFile(t, `
# Scripts-15.0.0.txt
# @missing: 0000..10FFFF; Unknown

0041..005A    ; Latin # L&  [26] LATIN CAPITAL LETTER A..Z
00AA          ; Latin # Lo       FEMININE ORDINAL INDICATOR
`)

	var defaults []ucdRange
	ranges, err := parsePropertyFile(path, 0, &defaults)
	require.NoError(t, err)

	require.Len(t, ranges, 2)
	assert.Equal(t, ucdRange{lo: 0x41, hi: 0x5A, value: "Latin"}, ranges[0])
	assert.Equal(t, ucdRange{lo: 0xAA, hi: 0xAA, value: "Latin"}, ranges[1])

	require.Len(t, defaults, 1)
	assert.Equal(t, ucdRange{lo: 0, hi: 0x10FFFF, value: "Unknown"}, defaults[0])
}

func TestParseUnicodeData(t *testing.T) {
	path := writeTempFile(t, `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;
9FFF;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;
`)

	ranges, err := parseUnicodeData(path)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, ucdRange{lo: 0x41, hi: 0x41, value: "Lu"}, ranges[0])
	assert.Equal(t, ucdRange{lo: 0x4E00, hi: 0x9FFF, value: "Lo"}, ranges[1])
}

func TestParseUnicodeDataDanglingRange(t *testing.T) {
	path := writeTempFile(t, `9FFF;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;
`)
	_, err := parseUnicodeData(path)
	require.Error(t, err)
}

func TestParseBidiBrackets(t *testing.T) {
	path := writeTempFile(t, `
0028; 0029; o # LEFT PARENTHESIS
0029; 0028; c # RIGHT PARENTHESIS
`)

	pairs, err := parseBidiBrackets(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, ucdRange{lo: 0x28, hi: 0x29, value: "o"}, pairs[0])
	assert.Equal(t, ucdRange{lo: 0x29, hi: 0x28, value: "c"}, pairs[1])
}

func TestParseBidiBracketsRejectsBadType(t *testing.T) {
	path := writeTempFile(t, "0028; 0029; x\n")
	_, err := parseBidiBrackets(path)
	require.Error(t, err)
}

func TestScriptRegistryOrder(t *testing.T) {
	ucd := &ucdData{scripts: []ucdRange{
		{lo: 0x41, hi: 0x5A, value: "Latin"},
		{lo: 0x391, hi: 0x3A1, value: "Greek"},
		{lo: 0x20, hi: 0x20, value: "Common"},
		{lo: 0x300, hi: 0x36F, value: "Inherited"},
	}}

	scripts := scriptRegistry(ucd)
	assert.Equal(t, []string{"Unknown", "Common", "Inherited", "Greek", "Latin"}, scripts)
}
