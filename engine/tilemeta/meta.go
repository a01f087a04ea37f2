/*
Package tilemeta publishes font-bundle attribution into the metadata block
of an output tile archive. Rendering clients read these entries to pick the
matching glyph set per script.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tilemeta

import (
	"strings"

	"github.com/ajacombs/maplabel/core/font/fontregistry"
)

// ArchiveMetadata flattens the registry's bundle metadata into archive
// key/value pairs of the form "<prefix>:<script-lowercase>:name" and
// "<prefix>:<script-lowercase>:version".
func ArchiveMetadata(reg *fontregistry.Registry, prefix string) map[string]string {
	result := make(map[string]string)
	for _, scr := range reg.Scripts() {
		name, version, err := reg.Metadata(scr)
		if err != nil {
			continue // cannot happen for a script listed by the registry
		}
		key := prefix + ":" + strings.ToLower(string(scr))
		result[key+":name"] = name
		result[key+":version"] = version
	}
	return result
}
