package font

import (
	"strings"
	"testing"

	"github.com/ajacombs/maplabel/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	xfont "golang.org/x/image/font"
)

const devaTable = `glyphtable 1
# minimal Devanagari sample
0915      37
092E      41
0928      48
0938 094D 77
0924 0947 78
`

func TestParseTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	tbl, err := ParseTable(strings.NewReader(devaTable))
	if err != nil {
		t.Fatalf("expected table to parse, got %v", err)
	}
	if tbl.Len() != 5 {
		t.Errorf("expected 5 units, have %d", tbl.Len())
	}
	if tbl.MaxUnitRunes() != 2 {
		t.Errorf("expected longest unit of 2 runes, have %d", tbl.MaxUnitRunes())
	}
	if tok, ok := tbl.Lookup("क"); !ok || tok != 37 {
		t.Errorf("expected क -> 37, got %d (present=%v)", tok, ok)
	}
	if tok, ok := tbl.Lookup("स्"); !ok || tok != 77 {
		t.Errorf("expected composed unit स् -> 77, got %d (present=%v)", tok, ok)
	}
	if _, ok := tbl.Lookup("ख"); ok {
		t.Errorf("expected ख to be absent from table")
	}
	if !tbl.HasUnitPrefix("स") {
		t.Errorf("expected unit prefix स to be present")
	}
}

func TestParseTableRejectsMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	for name, src := range map[string]string{
		"no header":      "0915 37\n",
		"bad version":    "glyphtable 99\n0915 37\n",
		"empty":          "# nothing\n",
		"bad codepoint":  "glyphtable 1\nZZZZ 37\n",
		"huge codepoint": "glyphtable 1\n110000 37\n",
		"surrogate":      "glyphtable 1\nD800 37\n",
		"missing token":  "glyphtable 1\n0915\n",
		"token zero":     "glyphtable 1\n0915 0\n",
		"token too big":  "glyphtable 1\n0915 6400\n",
		"duplicate unit": "glyphtable 1\n0915 37\n0915 38\n",
	} {
		_, err := ParseTable(strings.NewReader(src))
		if err == nil {
			t.Errorf("%s: expected parse error, got none", name)
			continue
		}
		if core.Code(err) != core.EINVALID {
			t.Errorf("%s: expected EINVALID, got code %d", name, core.Code(err))
		}
	}
}

func TestTokenRune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	if TokenRune(PlaceholderToken) != PlaceholderRune {
		t.Errorf("expected token 0 to map to the placeholder rune")
	}
	if TokenRune(1) != '\ue001' {
		t.Errorf("expected token 1 to map to U+E001")
	}
	if TokenRune(MaxToken) != '\uf8ff' {
		t.Errorf("expected the largest token to map to the last PUA codepoint")
	}
}

func TestGuessStyleAndWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maplabel.font")
	defer teardown()
	//
	for name, want := range map[string]struct {
		s xfont.Style
		w xfont.Weight
	}{
		"NotoSansDevanagari-Regular": {xfont.StyleNormal, xfont.WeightNormal},
		"NotoSerifKhmer-Bold":        {xfont.StyleNormal, xfont.WeightBold},
		"NotoSans-Light":             {xfont.StyleNormal, xfont.WeightLight},
	} {
		style, weight := GuessStyleAndWeight(name)
		if style != want.s || weight != want.w {
			t.Errorf("expected different style or weight for %s", name)
		}
	}
}
