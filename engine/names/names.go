package names

import (
	"github.com/ajacombs/maplabel/core/font/fontregistry"
	"github.com/ajacombs/maplabel/core/script"
	"github.com/ajacombs/maplabel/engine/textenc"
)

// DefaultPrefix is the attribute prefix for encoded names, as consumed by
// rendering clients ("pgf:name", "pgf:name:<lang>").
const DefaultPrefix = "pgf"

// Sink receives output attributes of a feature, each gated by a minimum
// zoom. The tiling pipeline's feature collector satisfies this.
type Sink interface {
	SetAttrWithMinzoom(key string, value interface{}, minZoom int)
}

// Processor applies name-tag handling per feature. It only reads the
// (frozen) registry, so a single processor may serve all workers.
type Processor struct {
	reg    *fontregistry.Registry
	enc    *textenc.Encoder
	prefix string
}

func NewProcessor(reg *fontregistry.Registry) *Processor {
	return &Processor{
		reg:    reg,
		enc:    textenc.NewEncoder(reg),
		prefix: DefaultPrefix,
	}
}

// SetPrefix overrides the encoded-attribute prefix. Call before processing
// starts; the prefix is part of the client contract.
func (p *Processor) SetPrefix(prefix string) {
	p.prefix = prefix
}

// Apply emits the attributes for all name-like tags of one feature at
// minZoom. Re-applying the same tag mapping produces the same attribute
// set; a failure on one tag does not stop the others.
func (p *Processor) Apply(tags map[string]interface{}, sink Sink, minZoom int) {
	for _, tag := range ParseTags(tags) {
		p.applyTag(tag, sink, minZoom)
	}
}

func (p *Processor) applyTag(tag Tag, sink Sink, minZoom int) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("attributes for tag %s dropped: %v", tag.Key, r)
		}
	}()
	if tag.Key == "name" {
		sink.SetAttrWithMinzoom("name", tag.Value, minZoom)
		if tag.Script != script.Latin && tag.Script != script.Generic {
			sink.SetAttrWithMinzoom("script", string(tag.Script), minZoom)
		}
		if encoded, ok := p.enc.Encode(tag.Value, tag.Script); ok {
			sink.SetAttrWithMinzoom(p.prefix+":name", encoded, minZoom)
		}
		return
	}
	sink.SetAttrWithMinzoom(tag.Key, tag.Value, minZoom)
	if p.reg.HasScript(tag.Script) {
		if encoded, ok := p.enc.Encode(tag.Value, tag.Script); ok {
			sink.SetAttrWithMinzoom(p.prefix+":"+tag.Key, encoded, minZoom)
		}
	}
}
