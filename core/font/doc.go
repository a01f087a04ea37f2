/*
Package font holds font-bundle values for map-label encoding.

A bundle packages the metadata of one rendering font (display name and
version) together with an encoding table for one script. The table maps
input units, i.e. single codepoints or short composed codepoint sequences,
to small integer tokens indexing the client's glyph set for that script.

Table source format ("glyphtable", version 1):

	glyphtable 1
	# unit (hex codepoints)   token (decimal)
	0915        37
	0915 094D   112

Tokens are in the range 1…6399. Token 0 is reserved as the unmapped
placeholder. The compact wire form of a token t is the private-use rune
U+E000+t, so a client indexes a glyph atlas of at most 6400 slots directly
and detects partial coverage by scanning for U+E000.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'maplabel.font'.
func tracer() tracing.Trace {
	return tracing.Select("maplabel.font")
}
