/*
Package textenc transcodes label text into compact glyph-token strings.

The encoder is a thin walk over a script's encoding table: the input is
NFC-normalized, then consumed left to right with longest-unit matching, so
composed codepoint sequences in the table shadow their single-codepoint
prefixes. A position not covered by any unit produces exactly one unmapped
placeholder per grapheme cluster and the cluster is skipped, which keeps
partial coverage detectable on the client without ever dropping input.

Encoding is deterministic: the result depends on the text and the frozen
table contents, nothing else.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package textenc

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'maplabel.font'.
func tracer() tracing.Trace {
	return tracing.Select("maplabel.font")
}
