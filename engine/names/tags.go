package names

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ajacombs/maplabel/core/script"
)

// Tag is the typed view of one name-like feature tag: key normalized to the
// colon form, value trimmed, script classified.
type Tag struct {
	Key    string // "name" or "name:<lang>"
	Value  string
	Script script.Script
}

// ParseTags extracts the name-like tags from a raw tag mapping. Tags with
// absent or empty values are dropped, legacy underscore keys are rewritten
// (`name_hi` becomes `name:hi`), and the result is sorted by key so that
// the caller's emission order does not depend on map iteration order.
func ParseTags(tags map[string]interface{}) []Tag {
	parsed := make([]Tag, 0, len(tags))
	for key, raw := range tags {
		if key != "name" && !strings.HasPrefix(key, "name:") && !strings.HasPrefix(key, "name_") {
			continue
		}
		if raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			value = fmt.Sprintf("%v", raw)
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if strings.HasPrefix(key, "name_") {
			key = strings.ReplaceAll(key, "_", ":")
		}
		parsed = append(parsed, Tag{
			Key:    key,
			Value:  value,
			Script: script.Classify(value),
		})
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Key < parsed[j].Key })
	return parsed
}
