package font

import (
	"bufio"
	"io"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ajacombs/maplabel/core"
	"github.com/ajacombs/maplabel/core/script"
	"github.com/derekparker/trie"
	xfont "golang.org/x/image/font"
)

// Token range of the glyphtable format. PlaceholderToken marks input units
// without a table entry; loaded tables may not contain it.
const (
	PlaceholderToken = 0
	MaxToken         = 6399
	tokenBase        = 0xE000 // private use area; tokenBase+MaxToken == 0xF8FF
)

// TokenRune returns the compact wire form of a token.
func TokenRune(token int) rune {
	return rune(tokenBase + token)
}

// RuneToken is the inverse of TokenRune. It returns -1 for runes outside
// the token range.
func RuneToken(r rune) int {
	if r < tokenBase || r > tokenBase+MaxToken {
		return -1
	}
	return int(r - tokenBase)
}

// PlaceholderRune is the wire form of the unmapped placeholder.
const PlaceholderRune = rune(tokenBase + PlaceholderToken)

// Bundle is the loaded form of a rendering-font package for one script:
// display metadata plus the script's encoding table. Bundles are immutable
// once created.
type Bundle struct {
	Script      script.Script
	DisplayName string
	Version     string
	Table       *EncodingTable
}

// EncodingTable maps input units (codepoint sequences) to glyph tokens.
// Tables are built by ParseTable and never mutated afterwards, making
// lookups safe for unsynchronized concurrent use.
type EncodingTable struct {
	units    *trie.Trie
	size     int
	maxRunes int
}

// Lookup returns the token for an input unit, if present.
func (tbl *EncodingTable) Lookup(unit string) (int, bool) {
	node, ok := tbl.units.Find(unit)
	if !ok {
		return PlaceholderToken, false
	}
	return node.Meta().(int), true
}

// HasUnitPrefix reports whether any table unit starts with prefix. Encoders
// use it to cut short the longest-match scan.
func (tbl *EncodingTable) HasUnitPrefix(prefix string) bool {
	return tbl.units.HasKeysWithPrefix(prefix)
}

// Len returns the number of units in the table.
func (tbl *EncodingTable) Len() int {
	return tbl.size
}

// MaxUnitRunes returns the length, in codepoints, of the longest unit.
func (tbl *EncodingTable) MaxUnitRunes() int {
	return tbl.maxRunes
}

const tableHeader = "glyphtable 1"

// ParseTable reads a glyphtable source (format documented in the package
// comment). It fails with an EINVALID error on a missing or unsupported
// header, malformed codepoints, duplicate units, or out-of-range tokens.
func ParseTable(r io.Reader) (*EncodingTable, error) {
	tbl := &EncodingTable{units: trie.New()}
	scanner := bufio.NewScanner(r)
	lineno := 0
	seenHeader := false
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seenHeader {
			if line != tableHeader {
				return nil, core.Error(core.EINVALID, "glyphtable: unsupported header %q (line %d)", line, lineno)
			}
			seenHeader = true
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, core.Error(core.EINVALID, "glyphtable: entry needs unit and token (line %d)", lineno)
		}
		token, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "glyphtable: malformed token (line %d)", lineno)
		}
		if token <= PlaceholderToken || token > MaxToken {
			return nil, core.Error(core.EINVALID, "glyphtable: token %d out of range 1..%d (line %d)", token, MaxToken, lineno)
		}
		var unit strings.Builder
		for _, hex := range fields[:len(fields)-1] {
			cp, err := strconv.ParseUint(strings.TrimPrefix(hex, "U+"), 16, 32)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "glyphtable: malformed codepoint %q (line %d)", hex, lineno)
			}
			if !utf8.ValidRune(rune(cp)) { // surrogates and values beyond U+10FFFF
				return nil, core.Error(core.EINVALID, "glyphtable: invalid codepoint %q (line %d)", hex, lineno)
			}
			unit.WriteRune(rune(cp))
		}
		u := unit.String()
		if _, ok := tbl.units.Find(u); ok {
			return nil, core.Error(core.EINVALID, "glyphtable: duplicate unit %q (line %d)", u, lineno)
		}
		tbl.units.Add(u, token)
		tbl.size++
		if n := len([]rune(u)); n > tbl.maxRunes {
			tbl.maxRunes = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "glyphtable: read failed")
	}
	if !seenHeader {
		return nil, core.Error(core.EINVALID, "glyphtable: empty table source")
	}
	tracer().Debugf("parsed glyphtable with %d units", tbl.size)
	return tbl, nil
}

// GuessStyleAndWeight trys to guess a bundle font's style and weight from
// its display name, e.g. "NotoSansDevanagari-Regular".
func GuessStyleAndWeight(displayName string) (xfont.Style, xfont.Weight) {
	displayName = path.Base(displayName)
	ext := path.Ext(displayName)
	displayName = strings.ToLower(displayName[:len(displayName)-len(ext)])
	s := strings.Split(displayName, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(displayName, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(displayName, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(displayName, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
