package s377m

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// setNames maps the registered set and pack keys to their kind. The keys
// are the local set form (syntax byte 0x53, register version 1); kindOf
// normalises other versions onto them.
var setNames = map[UL]string{
	mustUL("060e2b34.02530101.0d010101.01010900"): "Filler",
	mustUL("060e2b34.02530101.0d010101.01010f00"): "Sequence",
	mustUL("060e2b34.02530101.0d010101.01011100"): "SourceClip",
	mustUL("060e2b34.02530101.0d010101.01011400"): "TimecodeComponent",
	mustUL("060e2b34.02530101.0d010101.01011800"): "ContentStorage",
	mustUL("060e2b34.02530101.0d010101.01012300"): "EssenceContainerData",
	mustUL("060e2b34.02530101.0d010101.01012500"): "FileDescriptor",
	mustUL("060e2b34.02530101.0d010101.01012700"): "GenericPictureEssenceDescriptor",
	mustUL("060e2b34.02530101.0d010101.01012800"): "CDCIEssenceDescriptor",
	mustUL("060e2b34.02530101.0d010101.01012900"): "RGBADescriptor",
	mustUL("060e2b34.02530101.0d010101.01012e00"): "EssenceDescription",
	mustUL("060e2b34.02530101.0d010101.01012f00"): "Preface",
	mustUL("060e2b34.02530101.0d010101.01013000"): "Identification",
	mustUL("060e2b34.02530101.0d010101.01013200"): "NetworkLocator",
	mustUL("060e2b34.02530101.0d010101.01013300"): "TextLocator",
	mustUL("060e2b34.02530101.0d010101.01013600"): "MaterialPackage",
	mustUL("060e2b34.02530101.0d010101.01013700"): "SourcePackage",
	mustUL("060e2b34.02530101.0d010101.01013900"): "EventTrack",
	mustUL("060e2b34.02530101.0d010101.01013a00"): "StaticTrack",
	mustUL("060e2b34.02530101.0d010101.01013b00"): "TimelineTrack",
	mustUL("060e2b34.02530101.0d010101.01013f00"): "TaggedValue",
	mustUL("060e2b34.02530101.0d010101.01014100"): "DMSegment",
	mustUL("060e2b34.02530101.0d010101.01014200"): "GenericSoundEssenceDescriptor",
	mustUL("060e2b34.02530101.0d010101.01014300"): "GenericDataEssenceDescriptor",
	mustUL("060e2b34.02530101.0d010101.01014400"): "MultipleDescriptor",
	mustUL("060e2b34.02530101.0d010101.01014800"): "WaveAudioDescriptor",
}

// DarkKind names sets whose key is not in the register.
const DarkKind = "DarkSet"

// kindOf classifies a set key, tolerating the syntax marker and register
// version bytes the registers vary.
func kindOf(key UL) (string, bool) {
	if name, ok := setNames[key]; ok {
		return name, true
	}
	norm := key
	norm[5], norm[7] = 0x53, 0x01
	name, ok := setNames[norm]
	return name, ok
}

// Field is one local item of a metadata set. Either Value or Raw is
// populated: Raw carries the wire bytes whenever decoding degraded, with
// Err holding the reason.
type Field struct {
	Tag    Tag
	Name   string
	Format UL
	Value  Value
	Raw    []byte
	Err    error
}

// Bytes returns the wire bytes of the field, re-encoding typed values.
func (f *Field) Bytes() ([]byte, error) {
	if f.Value != nil {
		return f.Value.Encode()
	}
	return f.Raw, nil
}

// Set is one metadata set or pack: a run of local tag items resolved
// through the primer in scope when it was parsed.
type Set struct {
	Frame

	Kind string
	Dark bool

	fields []*Field
	byTag  map[Tag]*Field
	byName map[string]*Field
}

// ParseSet decodes a metadata set payload. Keys outside the register
// parse as dark sets: the same local item walk with fields falling back
// to raw. primer may be nil, which leaves every tag unresolved.
func ParseSet(f Frame, payload []byte, primer *Primer) (*Set, error) {
	s := &Set{
		Frame:  f,
		Kind:   DarkKind,
		Dark:   true,
		byTag:  map[Tag]*Field{},
		byName: map[string]*Field{},
	}

	if name, ok := kindOf(f.Key); ok {
		s.Kind, s.Dark = name, false
		if f.Key[5] != 0x53 {
			return nil, structuralErr(f, "%s carries local tag syntax %#04x, only local sets (0x53) are supported", name, f.Key[5])
		}
	}

	if primer == nil {
		primer = NewPrimer(nil)
	}

	for off := 0; off < len(payload); {
		if off+4 > len(payload) {
			return nil, structuralErr(f, "local item header overruns the set at byte %d", off)
		}
		var tag Tag
		copy(tag[:], payload[off:off+2])
		size := int(order.Uint16(payload[off+2 : off+4 : off+4]))
		off += 4
		if off+size > len(payload) {
			return nil, structuralErr(f, "local item %s of %d bytes overruns the set", tag, size)
		}

		fld := primer.DecodeField(tag, payload[off:off+size])
		off += size

		// labels the curated table misses can still be in the full
		// generated registers, which know the field by this set's group
		if fld.Err != nil && errors.Is(fld.Err, ErrNotRegistered) {
			if gen, ok := generatedDecode(f.Key, fld.Format, fld.Raw); ok {
				fld = Field{Tag: fld.Tag, Name: gen.Name, Format: fld.Format, Value: gen}
			}
		}
		s.put(&fld)
	}
	return s, nil
}

// put appends a field, keeping the dual views pointing at the same
// instance. Repeated tags keep every item in wire order while the lookup
// maps hold the last one.
func (s *Set) put(fld *Field) {
	s.fields = append(s.fields, fld)
	s.byTag[fld.Tag] = fld
	s.byName[fld.Name] = fld
}

// Fields lists the items in wire order.
func (s *Set) Fields() []*Field {
	return s.fields
}

// Field looks an item up by its resolved name. Unresolved items answer to
// their tag digits, e.g. "8001".
func (s *Set) Field(name string) (*Field, bool) {
	fld, ok := s.byName[name]
	return fld, ok
}

// FieldByTag looks an item up by its local tag.
func (s *Set) FieldByTag(tag Tag) (*Field, bool) {
	fld, ok := s.byTag[tag]
	return fld, ok
}

// ID is the 16 byte instance identifier sets point at each other with.
type ID [16]byte

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// InstanceID returns the set's instance identifier, when the InstanceUID
// field is present and decoded.
func (s *Set) InstanceID() (ID, bool) {
	var id ID
	fld, ok := s.byName["InstanceUID"]
	if !ok {
		return id, false
	}
	ref, ok := fld.Value.(*Reference)
	if !ok || len(ref.Data) != 16 {
		return id, false
	}
	copy(id[:], ref.Data)
	return id, true
}

// WriteTo re-emits the set: items in parsed order, raw fields untouched,
// typed fields through their codecs, and the record length recomputed.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	var payload []byte
	for _, fld := range s.fields {
		b, err := fld.Bytes()
		if err != nil {
			return 0, fmt.Errorf("s377m: field %s of %s: %w", fld.Name, s.Kind, err)
		}
		if len(b) > 0xffff {
			return 0, fmt.Errorf("s377m: field %s of %s is %d bytes, past the local item limit", fld.Name, s.Kind, len(b))
		}
		payload = append(payload, fld.Tag[0], fld.Tag[1])
		payload = order.AppendUint16(payload, uint16(len(b)))
		payload = append(payload, b...)
	}
	return writeKLV(w, s.Key, payload, canonicalLenWidth)
}

// Index maps instance identifiers to their sets for reference walking.
type Index map[ID]*Set

// BuildIndex indexes every set that carries an instance identifier.
func BuildIndex(sets []*Set) Index {
	idx := make(Index, len(sets))
	for _, s := range sets {
		if id, ok := s.InstanceID(); ok {
			idx[id] = s
		}
	}
	return idx
}

// Describe writes the set and everything it references as an indented
// tree. visited must be freshly allocated for each traversal; sets are
// marked before recursing, so reference cycles come out as back
// references instead of looping.
func (s *Set) Describe(w io.Writer, idx Index, visited map[ID]bool, depth int) {
	pad := strings.Repeat("  ", depth)
	if id, ok := s.InstanceID(); ok {
		visited[id] = true
	}
	fmt.Fprintf(w, "%s%s (%s, %d bytes at %d)\n", pad, s.Kind, s.Key, s.Length, s.Offset)
	for _, fld := range s.fields {
		s.describeField(w, fld, idx, visited, depth+1)
	}
}

func (s *Set) describeField(w io.Writer, fld *Field, idx Index, visited map[ID]bool, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := fld.Value.(type) {
	case *Reference:
		// a set's own identity names it rather than linking anywhere
		if fld.Name == "InstanceUID" {
			fmt.Fprintf(w, "%s%s: %s\n", pad, fld.Name, v)
			return
		}
		describeRef(w, fld.Name, v, idx, visited, depth)
	case *Array:
		fmt.Fprintf(w, "%s%s (%d):\n", pad, fld.Name, len(v.Items))
		for _, item := range v.Items {
			if ref, ok := item.(*Reference); ok {
				describeRef(w, "-", ref, idx, visited, depth+1)
			} else {
				fmt.Fprintf(w, "%s  - %s\n", pad, item)
			}
		}
	case nil:
		fmt.Fprintf(w, "%s%s: %s (raw)\n", pad, fld.Name, rawPreview(fld.Raw))
	default:
		fmt.Fprintf(w, "%s%s: %s\n", pad, fld.Name, fld.Value)
	}
}

func describeRef(w io.Writer, name string, ref *Reference, idx Index, visited map[ID]bool, depth int) {
	pad := strings.Repeat("  ", depth)

	// labels, AUIDs and package identifiers name things rather than
	// point back into the metadata
	switch ref.Subtype {
	case RefUL, RefAUID, RefPackageID:
		fmt.Fprintf(w, "%s%s: %s\n", pad, name, ref)
		return
	}

	id, ok := refID(ref)
	if !ok {
		fmt.Fprintf(w, "%s%s: %s\n", pad, name, ref)
		return
	}
	target, ok := idx[id]
	if !ok {
		fmt.Fprintf(w, "%s%s: %s (broken reference)\n", pad, name, ref)
		return
	}
	if visited[id] {
		fmt.Fprintf(w, "%s%s: <-> %s\n", pad, name, ref)
		return
	}
	fmt.Fprintf(w, "%s%s:\n", pad, name)
	target.Describe(w, idx, visited, depth+1)
}

func refID(ref *Reference) (ID, bool) {
	var id ID
	if len(ref.Data) != 16 {
		return id, false
	}
	copy(id[:], ref.Data)
	return id, true
}

func rawPreview(b []byte) string {
	if len(b) > 16 {
		return fmt.Sprintf("%x (+%d bytes)", b[:16], len(b)-16)
	}
	return fmt.Sprintf("%x", b)
}
