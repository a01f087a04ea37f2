/*
Package fontregistry manages the store of loaded font bundles.

The registry follows a write-once-before-first-read lifecycle: bundles are
loaded from an archive during single-threaded startup, the store is frozen,
and from then on all queries are read-only. Loading the same script twice is
rejected; the first bundle wins. A misconfigured bundle fails loudly at load
time, never during feature processing.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'maplabel.font'
func tracer() tracing.Trace {
	return tracing.Select("maplabel.font")
}
