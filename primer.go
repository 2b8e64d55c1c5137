package s377m

import (
	"fmt"
	"io"
	"sort"
)

// primer entry stride on the wire: a 2 byte tag and a 16 byte label.
const primerItemSize = 18

// Primer is the primer pack: the local tag to format label dictionary
// every metadata set in the same header metadata block resolves through.
// Mappings keep their wire order so a primer serialises the way it was
// read.
type Primer struct {
	Frame

	reg   Registry
	tags  []Tag
	byTag map[Tag]UL
}

// PrimerEntry is one tag to format label mapping.
type PrimerEntry struct {
	Tag    Tag
	Format UL
}

// NewPrimer returns an empty primer resolving through reg. A nil registry
// falls back to a fresh standard RP210 table, so there is never a shared
// process wide default to mutate by accident.
func NewPrimer(reg Registry) *Primer {
	if reg == nil {
		reg = NewRP210()
	}
	return &Primer{
		Frame: Frame{Key: primerKey},
		reg:   reg,
		byTag: map[Tag]UL{},
	}
}

// ParsePrimer decodes a primer pack payload: a u32 entry count, a u32
// item size of at least 18, then the entries at that stride. Bytes past
// the declared entries are tolerated, the way writers pad primers to the
// KAG.
func ParsePrimer(f Frame, payload []byte, reg Registry) (*Primer, error) {
	p := NewPrimer(reg)
	p.Frame = f

	if len(payload) < 8 {
		return nil, structuralErr(f, "primer pack of %d bytes, wanted at least 8", len(payload))
	}
	count := int(order.Uint32(payload[:4:4]))
	itemSize := int(order.Uint32(payload[4:8:8]))

	if count > 0 {
		if itemSize < primerItemSize {
			return nil, structuralErr(f, "primer item size %d, wanted at least %d", itemSize, primerItemSize)
		}
		if (len(payload)-8)/itemSize < count {
			return nil, structuralErr(f, "primer pack of %d bytes, wanted %d for %d entries", len(payload), 8+count*itemSize, count)
		}
	}

	for i := 0; i < count; i++ {
		item := payload[8+i*itemSize:]
		var tag Tag
		var ful UL
		copy(tag[:], item[:2])
		copy(ful[:], item[2:18])
		p.Add(tag, ful)
	}
	return p, nil
}

// Add maps a local tag to a format label. First insertion fixes the wire
// position; mapping the same tag again replaces the label in place.
func (p *Primer) Add(tag Tag, ful UL) {
	if _, ok := p.byTag[tag]; !ok {
		p.tags = append(p.tags, tag)
	}
	p.byTag[tag] = ful
}

// Lookup resolves a local tag to its format label.
func (p *Primer) Lookup(tag Tag) (UL, bool) {
	ful, ok := p.byTag[tag]
	return ful, ok
}

// Count returns the number of mappings.
func (p *Primer) Count() int {
	return len(p.tags)
}

// Entries lists the mappings in wire order.
func (p *Primer) Entries() []PrimerEntry {
	out := make([]PrimerEntry, 0, len(p.tags))
	for _, t := range p.tags {
		out = append(out, PrimerEntry{Tag: t, Format: p.byTag[t]})
	}
	return out
}

// DecodeField resolves one local item through the primer and its
// registry. Decoding never fails outright: unknown tags, unregistered
// labels and undecodable bytes all come back as raw fields carrying the
// reason. An unresolved field is named by its tag digits.
func (p *Primer) DecodeField(tag Tag, raw []byte) Field {
	data := make([]byte, len(raw))
	copy(data, raw)

	ful, ok := p.byTag[tag]
	if !ok {
		return Field{Tag: tag, Name: tag.String(), Raw: data,
			Err: &FieldError{Tag: tag, Err: ErrUnknownTag}}
	}

	entry, err := p.reg.Resolve(ful)
	if err != nil {
		return Field{Tag: tag, Name: tag.String(), Format: ful, Raw: data,
			Err: &FieldError{Tag: tag, Err: err}}
	}

	v, err := p.reg.Convert(ful, data)
	if err != nil {
		return Field{Tag: tag, Name: entry.Symbol, Format: ful, Raw: data,
			Err: &FieldError{Tag: tag, Name: entry.Symbol, Err: err}}
	}
	return Field{Tag: tag, Name: entry.Symbol, Format: ful, Value: v}
}

// EncodeField renders one field back to wire bytes. Raw fields pass
// through untouched, typed values encode through their codec, and a typed
// value under a tag the primer does not know is an error.
func (p *Primer) EncodeField(tag Tag, f Field) ([]byte, error) {
	if f.Value == nil {
		return f.Raw, nil
	}
	if _, ok := p.byTag[tag]; !ok {
		return nil, fmt.Errorf("s377m: local tag %s missing from the primer pack", tag)
	}
	return f.Value.Encode()
}

// WriteTo serialises the primer at the standard 18 byte stride. An empty
// primer still declares the stride so the pack header stays meaningful.
func (p *Primer) WriteTo(w io.Writer) (int64, error) {
	payload := make([]byte, 0, 8+primerItemSize*len(p.tags))
	payload = order.AppendUint32(payload, uint32(len(p.tags)))
	payload = order.AppendUint32(payload, primerItemSize)
	for _, t := range p.tags {
		ful := p.byTag[t]
		payload = append(payload, t[:]...)
		payload = append(payload, ful[:]...)
	}
	return writeKLV(w, primerKey, payload, canonicalLenWidth)
}

// PseudoUL builds the placeholder label for a vendor tag with no
// registered identity: fourteen zero bytes followed by the tag itself.
func PseudoUL(tag Tag) UL {
	var u UL
	u[14], u[15] = tag[0], tag[1]
	return u
}

// Customize copies base onto reg and teaches both ends the vendor
// mappings: every tag gains a pseudo label registered under the supplied
// entry, so dark vendor fields decode by name. base is left untouched; a
// nil reg gets a fresh standard table.
func Customize(base *Primer, reg Registry, mappings map[Tag]Entry) *Primer {
	p := NewPrimer(reg)
	if base != nil {
		p.Frame = base.Frame
		for _, t := range base.tags {
			p.Add(t, base.byTag[t])
		}
	}
	if len(mappings) == 0 {
		return p
	}

	tags := make([]Tag, 0, len(mappings))
	for t := range mappings {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Uint16() < tags[j].Uint16() })

	inject := make(map[UL]Entry, len(tags))
	for _, t := range tags {
		ful := PseudoUL(t)
		inject[ful] = mappings[t]
		p.Add(t, ful)
	}
	p.reg.Inject(inject)
	return p
}
