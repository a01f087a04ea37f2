package textenc

import (
	"strings"
	"sync"

	"github.com/ajacombs/maplabel/core/font"
	"github.com/ajacombs/maplabel/core/font/fontregistry"
	"github.com/ajacombs/maplabel/core/script"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

var graphemeClassesSetup sync.Once

// Encoder transcodes text against the bundles of a registry. It holds no
// state of its own; with a frozen registry it is safe for concurrent use.
type Encoder struct {
	reg *fontregistry.Registry
}

func NewEncoder(reg *fontregistry.Registry) *Encoder {
	graphemeClassesSetup.Do(grapheme.SetupGraphemeClasses)
	return &Encoder{reg: reg}
}

// Encode transcodes text using the bundle loaded for scr. The second return
// value is false if no bundle is loaded for scr; this is the expected
// outcome for most scripts, not an error. With a bundle present, Encode
// always returns a result and never fails.
func (e *Encoder) Encode(text string, scr script.Script) (string, bool) {
	if !e.reg.HasScript(scr) {
		return "", false
	}
	tbl, err := e.reg.Table(scr)
	if err != nil {
		// HasScript was true, so the bundle vanished mid-flight; only
		// possible if the load phase overlaps feature processing.
		tracer().Errorf("table for %s disappeared: %v", scr, err)
		return "", false
	}
	runes := []rune(norm.NFC.String(text))
	maxUnit := tbl.MaxUnitRunes()
	var out strings.Builder
	for i := 0; i < len(runes); {
		matchLen, matchToken := 0, font.PlaceholderToken
		for n := 1; n <= maxUnit && i+n <= len(runes); n++ {
			candidate := string(runes[i : i+n])
			if token, ok := tbl.Lookup(candidate); ok {
				matchLen, matchToken = n, token
			}
			if !tbl.HasUnitPrefix(candidate) {
				break
			}
		}
		if matchLen > 0 {
			out.WriteRune(font.TokenRune(matchToken))
			i += matchLen
			continue
		}
		// one placeholder for the whole uncovered grapheme cluster
		out.WriteRune(font.PlaceholderRune)
		i += clusterLen(runes[i:])
	}
	return out.String(), true
}

// EncodeRegistered classifies text and transcodes it if a bundle for its
// script is loaded.
func (e *Encoder) EncodeRegistered(text string) (string, bool) {
	return e.Encode(text, script.Classify(text))
}

func clusterLen(rest []rune) int {
	gstr := grapheme.StringFromString(string(rest))
	if gstr.Len() == 0 {
		return 1
	}
	if n := len([]rune(gstr.Nth(0))); n > 0 {
		return n
	}
	return 1
}
