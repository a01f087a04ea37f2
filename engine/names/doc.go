/*
Package names turns a feature's name-like tags into output attributes.

For every tag keyed `name`, `name:<lang>` or the legacy `name_<lang>` form,
the processor classifies the value's script and emits up to three
attributes: the plain value, a `script` tag for non-Latin scripts, and a
glyph-encoded counterpart when a font bundle for the script is loaded.
Labels are best-effort enrichment; a failure while processing one tag is
logged and the remaining tags still go through.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package names

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'maplabel.names'.
func tracer() tracing.Trace {
	return tracing.Select("maplabel.names")
}
