package s377m

import (
	"fmt"

	mxf2go "github.com/metarex-media/mxf-to-go"
)

// Entry is one register entry: the group a field belongs to, its symbol
// and the wire type it decodes through.
type Entry struct {
	Group  string
	Symbol string
	Type   string
}

// Registry resolves format labels into register entries and decodes field
// bytes against them. Implementations report unknown labels with
// ErrNotRegistered so primers degrade to raw fields instead of failing.
type Registry interface {
	Resolve(ful UL) (Entry, error)
	Convert(ful UL, raw []byte) (Value, error)
	Inject(mappings map[UL]Entry)
}

// RP210 is the standard registry: a curated subset of the SMPTE RP210
// element register covering the structural metadata fields. Labels
// outside the table fall through to the generated mxf-to-go registers
// when the owning group is known.
type RP210 struct {
	entries map[UL]Entry
}

// NewRP210 returns a registry loaded with the built in table. Each call
// returns an independent instance, so injected vendor entries never leak
// between callers.
func NewRP210() *RP210 {
	r := &RP210{entries: make(map[UL]Entry, len(builtinEntries))}
	for ful, e := range builtinEntries {
		r.entries[ful] = e
	}
	return r
}

// Resolve looks a format label up.
func (r *RP210) Resolve(ful UL) (Entry, error) {
	if e, ok := r.entries[ful]; ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("no entry for %s: %w", ful, ErrNotRegistered)
}

// Convert decodes field bytes against the label's registered type.
func (r *RP210) Convert(ful UL, raw []byte) (Value, error) {
	e, err := r.Resolve(ful)
	if err != nil {
		return nil, err
	}
	v, err := decodeValue(e.Type, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Symbol, err)
	}
	return v, nil
}

// Inject adds or overrides entries, usually vendor pseudo labels built by
// Customize.
func (r *RP210) Inject(mappings map[UL]Entry) {
	for ful, e := range mappings {
		r.entries[ful] = e
	}
}

// Generated carries a value decoded by the generated mxf-to-go registers.
// The wire bytes are kept alongside so re-serialisation stays exact.
type Generated struct {
	Name string
	Val  any
	raw  []byte
}

func (v *Generated) String() string { return fmt.Sprint(v.Val) }

func (v *Generated) Encode() ([]byte, error) {
	out := make([]byte, len(v.raw))
	copy(out, v.raw)
	return out, nil
}

// generatedDecode tries the generated registers, which key their decoders
// by owning group. The group key is looked up as read, then with the
// syntax marker masked, then the sub register byte, the same ladder the
// registers themselves publish.
func generatedDecode(group, ful UL, raw []byte) (*Generated, bool) {
	g, ok := mxf2go.Groups["urn:smpte:ul:"+group.String()]
	if !ok {
		masked := group
		masked[5] = 0x7f
		g, ok = mxf2go.Groups["urn:smpte:ul:"+masked.String()]
		if !ok {
			masked[13] = 0x7f
			g, ok = mxf2go.Groups["urn:smpte:ul:"+masked.String()]
		}
	}
	if !ok {
		return nil, false
	}

	dec, ok := g.Group["urn:smpte:ul:"+ful.String()]
	if !ok {
		return nil, false
	}
	out, err := dec.Decode(raw)
	if err != nil {
		return nil, false
	}

	data := make([]byte, len(raw))
	copy(data, raw)
	return &Generated{Name: dec.UL, Val: out, raw: data}, true
}

var builtinEntries = map[UL]Entry{
	// interchange object identity
	mustUL("060e2b34.01010101.01011502.00000000"): {Group: "InterchangeObject", Symbol: "InstanceUID", Type: "UUID"},
	mustUL("060e2b34.01010102.05200701.08000000"): {Group: "InterchangeObject", Symbol: "GenerationUID", Type: "UUID"},

	// preface
	mustUL("060e2b34.01010102.07020110.02040000"): {Group: "Preface", Symbol: "LastModifiedDate", Type: "Timestamp"},
	mustUL("060e2b34.01010102.03010201.05000000"): {Group: "Preface", Symbol: "Version", Type: "VersionType"},
	mustUL("060e2b34.01010102.03010201.04000000"): {Group: "Preface", Symbol: "ObjectModelVersion", Type: "UInt32"},
	mustUL("060e2b34.01010104.06010104.01080000"): {Group: "Preface", Symbol: "PrimaryPackage", Type: "WeakReference"},
	mustUL("060e2b34.01010102.06010104.06040000"): {Group: "Preface", Symbol: "Identifications", Type: "StrongReferenceVector"},
	mustUL("060e2b34.01010102.06010104.02010000"): {Group: "Preface", Symbol: "ContentStorage", Type: "StrongReference"},
	mustUL("060e2b34.01010102.01020203.00000000"): {Group: "Preface", Symbol: "OperationalPattern", Type: "UL"},
	mustUL("060e2b34.01010102.01020210.02010000"): {Group: "Preface", Symbol: "EssenceContainers", Type: "ULBatch"},
	mustUL("060e2b34.01010102.01020210.02020000"): {Group: "Preface", Symbol: "DMSchemes", Type: "ULBatch"},

	// identification
	mustUL("060e2b34.01010102.05200701.01000000"): {Group: "Identification", Symbol: "ThisGenerationUID", Type: "UUID"},
	mustUL("060e2b34.01010102.05200701.02010000"): {Group: "Identification", Symbol: "CompanyName", Type: "UTF16"},
	mustUL("060e2b34.01010102.05200701.03010000"): {Group: "Identification", Symbol: "ProductName", Type: "UTF16"},
	mustUL("060e2b34.01010102.05200701.04000000"): {Group: "Identification", Symbol: "ProductVersion", Type: "ProductVersion"},
	mustUL("060e2b34.01010102.05200701.05010000"): {Group: "Identification", Symbol: "VersionString", Type: "UTF16"},
	mustUL("060e2b34.01010102.05200701.07000000"): {Group: "Identification", Symbol: "ProductUID", Type: "AUID"},
	mustUL("060e2b34.01010102.07020110.02030000"): {Group: "Identification", Symbol: "ModificationDate", Type: "Timestamp"},
	mustUL("060e2b34.01010102.05200701.0a000000"): {Group: "Identification", Symbol: "ToolkitVersion", Type: "ProductVersion"},
	mustUL("060e2b34.01010102.05200701.06010000"): {Group: "Identification", Symbol: "Platform", Type: "UTF16"},

	// content storage
	mustUL("060e2b34.01010102.06010104.05010000"): {Group: "ContentStorage", Symbol: "Packages", Type: "StrongReferenceSet"},
	mustUL("060e2b34.01010102.06010104.05020000"): {Group: "ContentStorage", Symbol: "EssenceContainerData", Type: "StrongReferenceSet"},

	// essence container data
	mustUL("060e2b34.01010102.06010106.01000000"): {Group: "EssenceContainerData", Symbol: "LinkedPackageUID", Type: "PackageID"},
	mustUL("060e2b34.01010104.01030405.00000000"): {Group: "EssenceContainerData", Symbol: "IndexSID", Type: "UInt32"},
	mustUL("060e2b34.01010104.01030404.00000000"): {Group: "EssenceContainerData", Symbol: "BodySID", Type: "UInt32"},

	// packages
	mustUL("060e2b34.01010101.01011510.00000000"): {Group: "GenericPackage", Symbol: "PackageUID", Type: "PackageID"},
	mustUL("060e2b34.01010101.01030302.01000000"): {Group: "GenericPackage", Symbol: "Name", Type: "UTF16"},
	mustUL("060e2b34.01010102.07020110.01030000"): {Group: "GenericPackage", Symbol: "PackageCreationDate", Type: "Timestamp"},
	mustUL("060e2b34.01010102.07020110.02050000"): {Group: "GenericPackage", Symbol: "PackageModifiedDate", Type: "Timestamp"},
	mustUL("060e2b34.01010102.06010104.06050000"): {Group: "GenericPackage", Symbol: "Tracks", Type: "StrongReferenceVector"},

	// tracks
	mustUL("060e2b34.01010102.01070101.00000000"): {Group: "GenericTrack", Symbol: "TrackID", Type: "UInt32"},
	mustUL("060e2b34.01010102.01040103.00000000"): {Group: "GenericTrack", Symbol: "TrackNumber", Type: "UInt32"},
	mustUL("060e2b34.01010102.01070102.01000000"): {Group: "GenericTrack", Symbol: "TrackName", Type: "UTF16"},
	mustUL("060e2b34.01010102.06010104.02040000"): {Group: "GenericTrack", Symbol: "Sequence", Type: "StrongReference"},
	mustUL("060e2b34.01010102.05300405.00000000"): {Group: "TimelineTrack", Symbol: "EditRate", Type: "Rational"},
	mustUL("060e2b34.01010102.07020103.01030000"): {Group: "TimelineTrack", Symbol: "Origin", Type: "Position"},

	// structural components
	mustUL("060e2b34.01010102.04070100.00000000"): {Group: "StructuralComponent", Symbol: "DataDefinition", Type: "UL"},
	mustUL("060e2b34.01010102.07020201.01030000"): {Group: "StructuralComponent", Symbol: "Duration", Type: "Length"},
	mustUL("060e2b34.01010102.06010104.06090000"): {Group: "Sequence", Symbol: "StructuralComponents", Type: "StrongReferenceVector"},
	mustUL("060e2b34.01010102.07020103.01040000"): {Group: "SourceClip", Symbol: "StartPosition", Type: "Position"},
	mustUL("060e2b34.01010102.06010103.01000000"): {Group: "SourceClip", Symbol: "SourcePackageID", Type: "PackageID"},
	mustUL("060e2b34.01010102.06010103.02000000"): {Group: "SourceClip", Symbol: "SourceTrackID", Type: "UInt32"},
	mustUL("060e2b34.01010102.04040101.02060000"): {Group: "TimecodeComponent", Symbol: "RoundedTimecodeBase", Type: "UInt16"},
	mustUL("060e2b34.01010102.07020103.01050000"): {Group: "TimecodeComponent", Symbol: "StartTimecode", Type: "Position"},
	mustUL("060e2b34.01010101.04040101.05000000"): {Group: "TimecodeComponent", Symbol: "DropFrame", Type: "Boolean"},

	// descriptors
	mustUL("060e2b34.01010105.06010103.05000000"): {Group: "FileDescriptor", Symbol: "LinkedTrackID", Type: "UInt32"},
	mustUL("060e2b34.01010101.04060101.00000000"): {Group: "FileDescriptor", Symbol: "SampleRate", Type: "Rational"},
	mustUL("060e2b34.01010102.04060102.00000000"): {Group: "FileDescriptor", Symbol: "ContainerDuration", Type: "Length"},
	mustUL("060e2b34.01010102.06010104.01020000"): {Group: "FileDescriptor", Symbol: "EssenceContainer", Type: "UL"},
	mustUL("060e2b34.01010102.06010104.01030000"): {Group: "FileDescriptor", Symbol: "Codec", Type: "UL"},
	mustUL("060e2b34.01010104.06010104.060b0000"): {Group: "MultipleDescriptor", Symbol: "SubDescriptorUIDs", Type: "StrongReferenceVector"},
	mustUL("060e2b34.01010101.04010301.04000000"): {Group: "GenericPictureEssenceDescriptor", Symbol: "FrameLayout", Type: "UInt8"},
	mustUL("060e2b34.01010101.04010502.02000000"): {Group: "GenericPictureEssenceDescriptor", Symbol: "StoredWidth", Type: "UInt32"},
	mustUL("060e2b34.01010101.04010502.01000000"): {Group: "GenericPictureEssenceDescriptor", Symbol: "StoredHeight", Type: "UInt32"},
	mustUL("060e2b34.01010101.04010101.01000000"): {Group: "GenericPictureEssenceDescriptor", Symbol: "AspectRatio", Type: "Rational"},
	mustUL("060e2b34.01010102.04010601.00000000"): {Group: "GenericPictureEssenceDescriptor", Symbol: "PictureEssenceCoding", Type: "UL"},
	mustUL("060e2b34.01010105.04020301.01010000"): {Group: "GenericSoundEssenceDescriptor", Symbol: "AudioSamplingRate", Type: "Rational"},
	mustUL("060e2b34.01010104.04020301.04000000"): {Group: "GenericSoundEssenceDescriptor", Symbol: "Locked", Type: "Boolean"},
	mustUL("060e2b34.01010105.04020101.04000000"): {Group: "GenericSoundEssenceDescriptor", Symbol: "ChannelCount", Type: "UInt32"},
	mustUL("060e2b34.01010104.04020303.04000000"): {Group: "GenericSoundEssenceDescriptor", Symbol: "QuantizationBits", Type: "UInt32"},
}
