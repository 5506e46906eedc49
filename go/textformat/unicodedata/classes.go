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

package unicodedata

// The packed word layouts below are shared with the table generator
// (tools/makeunitables). A change here without regenerating the binary
// tables is a format-compatibility break, not a runtime condition.
//
// General table word:
//
//	bits  0..5   general category
//	bits  6..13  script
//	bits 14..19  line-break class
//
// Bidi table word:
//
//	bits  0..15  paired-bracket partner codepoint
//	bits 16..17  paired-bracket type
//	bits 18..22  bidi class
//
// Grapheme table word: grapheme-cluster break class in the low bits.
const (
	CategoryShift  = 0
	CategoryWidth  = 6
	ScriptShift    = 6
	ScriptWidth    = 8
	LineBreakShift = 14
	LineBreakWidth = 6

	BracketShift     = 0
	BracketWidth     = 16
	BracketTypeShift = 16
	BracketTypeWidth = 2
	BidiClassShift   = 18
	BidiClassWidth   = 5

	GraphemeShift = 0
	GraphemeWidth = 4
)

// field extracts a bit-field from a packed property word.
func field(word uint32, shift, width uint) uint32 {
	return (word >> shift) & (1<<width - 1)
}

// PackGeneral packs the three general-table properties into one word.
// Only the table generator and tests call this; the runtime path only
// ever unpacks.
func PackGeneral(cat GeneralCategory, script Script, lb LineBreakClass) uint32 {
	return uint32(cat)<<CategoryShift | uint32(script)<<ScriptShift | uint32(lb)<<LineBreakShift
}

// PackBidi packs the bidi-table properties into one word. The bracket
// partner must be a BMP codepoint; every bracket pair in Unicode is.
func PackBidi(class BidiClass, bracketType BidiPairedBracketType, bracket rune) uint32 {
	return uint32(bracket)<<BracketShift | uint32(bracketType)<<BracketTypeShift | uint32(class)<<BidiClassShift
}

// GeneralCategory is the Unicode General_Category property.
type GeneralCategory uint8

const (
	Unassigned GeneralCategory = iota // Cn
	UppercaseLetter                   // Lu
	LowercaseLetter                   // Ll
	TitlecaseLetter                   // Lt
	ModifierLetter                    // Lm
	OtherLetter                       // Lo
	NonspacingMark                    // Mn
	SpacingMark                       // Mc
	EnclosingMark                     // Me
	DecimalNumber                     // Nd
	LetterNumber                      // Nl
	OtherNumber                       // No
	ConnectorPunctuation              // Pc
	DashPunctuation                   // Pd
	OpenPunctuation                   // Ps
	ClosePunctuation                  // Pe
	InitialPunctuation                // Pi
	FinalPunctuation                  // Pf
	OtherPunctuation                  // Po
	MathSymbol                        // Sm
	CurrencySymbol                    // Sc
	ModifierSymbol                    // Sk
	OtherSymbol                       // So
	SpaceSeparator                    // Zs
	LineSeparator                     // Zl
	ParagraphSeparator                // Zp
	Control                           // Cc
	Format                            // Cf
	Surrogate                         // Cs
	PrivateUse                        // Co

	numGeneralCategories
)

func generalCategory(raw uint32) GeneralCategory {
	if raw >= uint32(numGeneralCategories) {
		return Unassigned
	}
	return GeneralCategory(raw)
}

// LineBreakClass is the UAX #14 Line_Break property.
type LineBreakClass uint8

const (
	LineBreakUnknown LineBreakClass = iota // XX

	// Non-tailorable.
	LineBreakMandatory       // BK
	LineBreakCarriageReturn  // CR
	LineBreakLineFeed        // LF
	LineBreakNextLine        // NL
	LineBreakSpace           // SP
	LineBreakZeroWidthSpace  // ZW
	LineBreakWordJoiner      // WJ
	LineBreakGlue            // GL
	LineBreakCombiningMark   // CM
	LineBreakZeroWidthJoiner // ZWJ
	LineBreakContingent      // CB

	// Break opportunities.
	LineBreakAfter      // BA
	LineBreakBefore     // BB
	LineBreakBothBefore // B2
	LineBreakHyphen     // HY

	// Prohibiting-context classes.
	LineBreakClose            // CL
	LineBreakCloseParenthesis // CP
	LineBreakExclamation      // EX
	LineBreakInseparable      // IN
	LineBreakNonstarter       // NS
	LineBreakOpen             // OP
	LineBreakQuotation        // QU
	LineBreakInfixNumeric     // IS
	LineBreakNumeric          // NU
	LineBreakPostfixNumeric   // PO
	LineBreakPrefixNumeric    // PR
	LineBreakSymbols          // SY

	// Remaining classes.
	LineBreakAmbiguous                  // AI
	LineBreakAlphabetic                 // AL
	LineBreakConditionalJapaneseStarter // CJ
	LineBreakEmojiBase                  // EB
	LineBreakEmojiModifier              // EM
	LineBreakHangulLVSyllable           // H2
	LineBreakHangulLVTSyllable          // H3
	LineBreakHebrewLetter               // HL
	LineBreakIdeographic                // ID
	LineBreakHangulLJamo                // JL
	LineBreakHangulVJamo                // JV
	LineBreakHangulTJamo                // JT
	LineBreakRegionalIndicator          // RI
	LineBreakComplexContext             // SA
	LineBreakSurrogate                  // SG

	numLineBreakClasses
)

func lineBreakClass(raw uint32) LineBreakClass {
	if raw >= uint32(numLineBreakClasses) {
		return LineBreakUnknown
	}
	return LineBreakClass(raw)
}

// BidiClass is the Bidi_Class property from UAX #9.
type BidiClass uint8

const (
	BidiLeftToRight BidiClass = iota // L
	BidiRightToLeft                  // R
	BidiArabicLetter                 // AL
	BidiEuropeanNumber               // EN
	BidiEuropeanSeparator            // ES
	BidiEuropeanTerminator           // ET
	BidiArabicNumber                 // AN
	BidiCommonSeparator              // CS
	BidiNonspacingMark               // NSM
	BidiBoundaryNeutral              // BN
	BidiParagraphSeparator           // B
	BidiSegmentSeparator             // S
	BidiWhiteSpace                   // WS
	BidiOtherNeutral                 // ON
	BidiLeftToRightEmbedding         // LRE
	BidiLeftToRightOverride          // LRO
	BidiRightToLeftEmbedding         // RLE
	BidiRightToLeftOverride          // RLO
	BidiPopDirectionalFormat         // PDF
	BidiLeftToRightIsolate           // LRI
	BidiRightToLeftIsolate           // RLI
	BidiFirstStrongIsolate           // FSI
	BidiPopDirectionalIsolate        // PDI

	numBidiClasses

	// BidiUnknown is returned for reserved raw field values. The tables
	// never store it; unassigned codepoints carry their range default.
	BidiUnknown BidiClass = numBidiClasses
)

func bidiClass(raw uint32) BidiClass {
	if raw >= uint32(numBidiClasses) {
		return BidiUnknown
	}
	return BidiClass(raw)
}

// BidiPairedBracketType is the Bidi_Paired_Bracket_Type property.
type BidiPairedBracketType uint8

const (
	BracketNone BidiPairedBracketType = iota // n
	BracketOpen                              // o
	BracketClose                             // c

	numBracketTypes
)

func bracketType(raw uint32) BidiPairedBracketType {
	if raw >= uint32(numBracketTypes) {
		return BracketNone
	}
	return BidiPairedBracketType(raw)
}

// GraphemeBreakClass is the UAX #29 Grapheme_Cluster_Break property,
// extended with Extended_Pictographic as segmenters consume it that way.
type GraphemeBreakClass uint8

const (
	GraphemeOther GraphemeBreakClass = iota
	GraphemeCarriageReturn
	GraphemeLineFeed
	GraphemeControl
	GraphemeExtend
	GraphemeZeroWidthJoiner
	GraphemeRegionalIndicator
	GraphemePrepend
	GraphemeSpacingMark
	GraphemeHangulL   // leading consonant
	GraphemeHangulV   // vowel
	GraphemeHangulT   // trailing consonant
	GraphemeHangulLV  // precomposed LV syllable
	GraphemeHangulLVT // precomposed LVT syllable
	GraphemeExtendedPictographic

	numGraphemeBreakClasses
)

func graphemeBreakClass(raw uint32) GraphemeBreakClass {
	if raw >= uint32(numGraphemeBreakClasses) {
		return GraphemeOther
	}
	return GraphemeBreakClass(raw)
}
