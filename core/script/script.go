package script

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Script identifies a writing system. Identifiers are the Unicode script
// names, plus "Generic" for text without script-distinguishing codepoints.
type Script string

// Scripts recognized by Classify. The set is closed but extensible: adding
// a script means adding a constant and a row in classifyBlocks.
const (
	Generic    Script = "Generic"
	Latin      Script = "Latin"
	Arabic     Script = "Arabic"
	Armenian   Script = "Armenian"
	Bengali    Script = "Bengali"
	Cyrillic   Script = "Cyrillic"
	Devanagari Script = "Devanagari"
	Ethiopic   Script = "Ethiopic"
	Georgian   Script = "Georgian"
	Greek      Script = "Greek"
	Gujarati   Script = "Gujarati"
	Gurmukhi   Script = "Gurmukhi"
	Han        Script = "Han"
	Hangul     Script = "Hangul"
	Hebrew     Script = "Hebrew"
	Hiragana   Script = "Hiragana"
	Kannada    Script = "Kannada"
	Katakana   Script = "Katakana"
	Khmer      Script = "Khmer"
	Lao        Script = "Lao"
	Malayalam  Script = "Malayalam"
	Myanmar    Script = "Myanmar"
	Oriya      Script = "Oriya"
	Sinhala    Script = "Sinhala"
	Tamil      Script = "Tamil"
	Telugu     Script = "Telugu"
	Thai       Script = "Thai"
	Tibetan    Script = "Tibetan"
)

// classifyBlocks lists the non-Latin script blocks in match priority order.
// The order is fixed: it is part of the classifier's contract (first block
// hit by codepoint scan order decides a mixed-script string).
var classifyBlocks = []struct {
	script Script
	table  *unicode.RangeTable
}{
	{Arabic, unicode.Arabic},
	{Armenian, unicode.Armenian},
	{Bengali, unicode.Bengali},
	{Cyrillic, unicode.Cyrillic},
	{Devanagari, unicode.Devanagari},
	{Ethiopic, unicode.Ethiopic},
	{Georgian, unicode.Georgian},
	{Greek, unicode.Greek},
	{Gujarati, unicode.Gujarati},
	{Gurmukhi, unicode.Gurmukhi},
	{Han, unicode.Han},
	{Hangul, unicode.Hangul},
	{Hebrew, unicode.Hebrew},
	{Hiragana, unicode.Hiragana},
	{Kannada, unicode.Kannada},
	{Katakana, unicode.Katakana},
	{Khmer, unicode.Khmer},
	{Lao, unicode.Lao},
	{Malayalam, unicode.Malayalam},
	{Myanmar, unicode.Myanmar},
	{Oriya, unicode.Oriya},
	{Sinhala, unicode.Sinhala},
	{Tamil, unicode.Tamil},
	{Telugu, unicode.Telugu},
	{Thai, unicode.Thai},
	{Tibetan, unicode.Tibetan},
}

// Classify returns the script identifier for text. It never fails: empty
// text and text without script-distinguishing codepoints classify as
// Generic. The input is NFC-normalized before inspection, so differently
// composed encodings of the same label agree on a script.
func Classify(text string) Script {
	if text == "" {
		return Generic
	}
	text = norm.NFC.String(text)
	sawLatin := false
	for _, r := range text {
		for _, block := range classifyBlocks {
			if unicode.Is(block.table, r) {
				return block.script
			}
		}
		if !sawLatin && unicode.Is(unicode.Latin, r) {
			sawLatin = true
		}
	}
	if sawLatin {
		return Latin
	}
	return Generic
}
