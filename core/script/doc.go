/*
Package script classifies label text by writing system.

Classification is total: every string maps to exactly one script identifier.
Text containing at least one codepoint from a recognized non-Latin script
block is labelled with that script; pure Latin text is "Latin"; everything
else (digits, punctuation, unrecognized blocks) falls back to "Generic".
Mixed-script strings are not split; downstream font-bundle selection needs a
single label per string, so the first non-Latin codepoint wins.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package script

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'maplabel.script'.
func tracer() tracing.Trace {
	return tracing.Select("maplabel.script")
}
