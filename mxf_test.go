package s377m

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var essenceKey = mustUL("060e2b34.01020101.0d010301.15010500")

// demoStream builds a complete file in memory: a closed header partition
// carrying a primer, a Preface referencing a ContentStorage and some fill,
// one essence triplet, a footer and the random index pack.
func demoStream() (file []byte, footerOffset, ripOffset int, essence []byte) {

	primer := setPrimer()

	idA := bytes.Repeat([]byte{0xaa}, 16)
	idB := bytes.Repeat([]byte{0xbb}, 16)
	container := mustUL("060e2b34.04010101.0d010301.027f0100")

	containerBatch := order.AppendUint32(nil, 1)
	containerBatch = order.AppendUint32(containerBatch, 16)
	containerBatch = append(containerBatch, container[:]...)

	prefacePayload := localItem(NewTag(0x3c0a), idA)
	prefacePayload = append(prefacePayload, localItem(NewTag(0x1901), idB)...)
	prefacePayload = append(prefacePayload, localItem(NewTag(0x1902), containerBatch)...)

	packagesBatch := order.AppendUint32(nil, 1)
	packagesBatch = order.AppendUint32(packagesBatch, 16)
	packagesBatch = append(packagesBatch, idA...)

	storagePayload := localItem(NewTag(0x3c0a), idB)
	storagePayload = append(storagePayload, localItem(NewTag(0x1e01), packagesBatch)...)

	preface, _ := ParseSet(Frame{Key: prefaceKey}, prefacePayload, primer)
	storage, _ := ParseSet(Frame{Key: storageKey}, storagePayload, primer)

	var meta bytes.Buffer
	primer.WriteTo(&meta)
	preface.WriteTo(&meta)
	storage.WriteTo(&meta)
	NewFill(32).WriteTo(&meta)

	essence = []byte(`{"lat":51.5,"long":-0.125}`)
	ess := ParseOpaque(Frame{Key: essenceKey}, essence)
	var essBuf bytes.Buffer
	ess.WriteTo(&essBuf)

	op := mustUL("060e2b34.04010101.0d010201.01010900")
	header := &Partition{Kind: Header, Closed: true, Complete: true, MajorVersion: 1, MinorVersion: 2, KAGSize: 1,
		HeaderByteCount: uint64(meta.Len()), BodySID: 1, OperationalPattern: op, EssenceContainers: []UL{container}}

	var headBuf bytes.Buffer
	header.WriteTo(&headBuf)

	footerOffset = headBuf.Len() + meta.Len() + essBuf.Len()
	header.FooterPartition = uint64(footerOffset)

	footer := &Partition{Kind: Footer, Closed: true, Complete: true, MajorVersion: 1, MinorVersion: 2, KAGSize: 1,
		ThisPartition: uint64(footerOffset), FooterPartition: uint64(footerOffset), OperationalPattern: op}

	var footBuf bytes.Buffer
	footer.WriteTo(&footBuf)
	ripOffset = footerOffset + footBuf.Len()

	rip := &RandomIndex{Entries: []RIPEntry{
		{BodySID: 1, Offset: 0},
		{BodySID: 0, Offset: uint64(footerOffset)},
	}}

	var out bytes.Buffer
	header.WriteTo(&out)
	out.Write(meta.Bytes())
	out.Write(essBuf.Bytes())
	out.Write(footBuf.Bytes())
	rip.WriteTo(&out)

	return out.Bytes(), footerOffset, ripOffset, essence
}

func TestParseMXF(t *testing.T) {

	file, footerOffset, ripOffset, essence := demoStream()

	m, err := ParseMXF(bytes.NewReader(file))

	Convey("Checking a whole stream parses into typed records", t, func() {
		Convey("parsing a two partition file with metadata, essence and a random index", func() {
			Convey("The partitions, records and random index all land where they should", func() {
				So(err, ShouldBeNil)
				So(len(m.Records), ShouldEqual, 8)
				So(len(m.Partitions), ShouldEqual, 2)

				hp := m.Partitions[0]
				So(hp.Pack.Kind, ShouldEqual, Header)
				So(hp.Pack.Offset, ShouldEqual, int64(0))
				So(hp.Primer, ShouldNotBeNil)
				So(hp.Primer.Count(), ShouldEqual, 7)
				So(len(hp.Metadata), ShouldEqual, 4)
				So(len(hp.Sets()), ShouldEqual, 2)
				So(len(hp.Index), ShouldEqual, 0)
				So(len(hp.Essence), ShouldEqual, 1)
				So(hp.Essence[0].Data, ShouldResemble, essence)
				So(hp.Essence[0].ContentType, ShouldEqual, CType(""))

				fp := m.Partitions[1]
				So(fp.Pack.Kind, ShouldEqual, Footer)
				So(fp.Pack.Offset, ShouldEqual, int64(footerOffset))
				So(len(fp.Metadata), ShouldEqual, 0)

				So(m.RIP, ShouldNotBeNil)
				So(m.RIP.Offset, ShouldEqual, int64(ripOffset))
				So(m.RIP.Entries, ShouldResemble, []RIPEntry{{BodySID: 1, Offset: 0}, {BodySID: 0, Offset: uint64(footerOffset)}})
			})

			Convey("The metadata decodes through the primer in scope", func() {
				sets := m.Sets()
				So(len(sets), ShouldEqual, 2)
				So(sets[0].Kind, ShouldEqual, "Preface")
				So(len(m.Index()), ShouldEqual, 2)

				storageRef, ok := sets[0].Field("ContentStorage")
				So(ok, ShouldBeTrue)
				So(storageRef.Err, ShouldBeNil)
				So(storageRef.Value, ShouldResemble, &Reference{Subtype: RefStrong, Data: bytes.Repeat([]byte{0xbb}, 16)})

				id, idOK := sets[0].InstanceID()
				So(idOK, ShouldBeTrue)
				So(id, ShouldResemble, ID(bytes.Repeat([]byte{0xaa}, 16)))
			})

			Convey("Writing the parse back reproduces the stream byte for byte", func() {
				var out bytes.Buffer
				n, writeErr := m.WriteTo(&out)
				So(writeErr, ShouldBeNil)
				So(n, ShouldEqual, int64(len(file)))
				So(out.Bytes(), ShouldResemble, file)
			})
		})
	})
}

func TestParseMXFSniffing(t *testing.T) {

	file, _, _, essence := demoStream()

	gpsSniff := func(b []byte) SniffResult {
		return SniffResult{Key: "gps", Field: "point", Certainty: 100}
	}
	jsonTest := SniffTest{
		DataID: DataIdentifier{DataFunc: json.Valid, ContentType: "application/json"},
		Sniffs: []Sniffer{&gpsSniff},
	}

	m, err := ParseMXF(bytes.NewReader(file), WithSniffers(jsonTest), WithLogger(zap.NewNop()))

	Convey("Checking sniffers identify essence payloads during the parse", t, func() {
		Convey("parsing with a json identifier and a gps sniff attached", func() {
			Convey("The essence record carries the content type and the sniff results", func() {
				So(err, ShouldBeNil)

				ess := m.Partitions[0].Essence[0]
				So(ess.Data, ShouldResemble, essence)
				So(ess.ContentType, ShouldEqual, CType("application/json"))
				So(ess.Sniffs[ContentTypeKey].Field, ShouldEqual, "application/json")
				So(ess.Sniffs["gps"], ShouldResemble, &SniffResult{Key: "gps", Field: "point", Data: "application/json", Certainty: 100})
			})

			Convey("Sniffing leaves the byte stream untouched on the way back out", func() {
				var out bytes.Buffer
				m.WriteTo(&out)
				So(out.Bytes(), ShouldResemble, file)
			})
		})
	})
}

func TestParseMXFVendor(t *testing.T) {

	primer, _ := ParsePrimer(Frame{Key: primerKey}, primerPayload([]PrimerEntry{
		{Tag: NewTag(0x3c0a), Format: mustUL("060e2b34.01010101.01011502.00000000")},
	}, 18, 0), nil)

	payload := localItem(NewTag(0x3c0a), bytes.Repeat([]byte{0xdd}, 16))
	payload = append(payload, localItem(NewTag(0xffe0), []byte{9, 9})...)
	dark, _ := ParseSet(Frame{Key: mustUL("060e2b34.02530101.0d010101.01017b00")}, payload, primer)

	var meta bytes.Buffer
	primer.WriteTo(&meta)
	dark.WriteTo(&meta)

	header := &Partition{Kind: Header, Closed: true, Complete: true, MajorVersion: 1, MinorVersion: 2,
		HeaderByteCount: uint64(meta.Len())}

	var file bytes.Buffer
	header.WriteTo(&file)
	file.Write(meta.Bytes())

	mappings := map[Tag]Entry{NewTag(0xffe0): {Group: "Vendor", Symbol: "GPSTrace", Type: "DataValue"}}

	plain, plainErr := ParseMXF(bytes.NewReader(file.Bytes()))
	named, namedErr := ParseMXF(bytes.NewReader(file.Bytes()), WithVendor(mappings))

	Convey("Checking vendor mappings name dark fields without touching the stream", t, func() {
		Convey("parsing the same file with and without a vendor mapping for tag ffe0", func() {
			Convey("The plain parse leaves the field unresolved", func() {
				So(plainErr, ShouldBeNil)

				fld, ok := plain.Sets()[0].Field("ffe0")
				So(ok, ShouldBeTrue)
				So(fld.Value, ShouldBeNil)
			})

			Convey("The vendor parse decodes it by name", func() {
				So(namedErr, ShouldBeNil)

				fld, ok := named.Sets()[0].Field("GPSTrace")
				So(ok, ShouldBeTrue)
				So(fld.Err, ShouldBeNil)
				So(fld.Value, ShouldResemble, &Bytes{Data: []byte{9, 9}})
			})

			Convey("The recorded primer is still the one from the stream", func() {
				So(named.Partitions[0].Primer.Count(), ShouldEqual, 1)

				var out bytes.Buffer
				named.WriteTo(&out)
				So(out.Bytes(), ShouldResemble, file.Bytes())
			})
		})
	})
}

func TestParseMXFErrors(t *testing.T) {

	stray := ParseOpaque(Frame{Key: essenceKey}, []byte{1, 2, 3})
	var strayBuf bytes.Buffer
	stray.WriteTo(&strayBuf)

	_, strayErr := ParseMXF(bytes.NewReader(strayBuf.Bytes()))

	Convey("Checking essence with no partition to belong to fails the parse", t, func() {
		Convey("parsing a stream that opens with an essence triplet", func() {
			Convey("The parse fails naming the key", func() {
				So(strayErr, ShouldNotBeNil)
				So(strayErr.Error(), ShouldEqual, "s377m: essence before any partition pack (key 060e2b34.01020101.0d010301.15010500) at offset 0")
			})
		})
	})

	primer := setPrimer()
	var meta bytes.Buffer
	primer.WriteTo(&meta)

	short := &Partition{Kind: Header, Closed: true, Complete: true, MajorVersion: 1, MinorVersion: 2,
		HeaderByteCount: 1000}
	var shortBuf bytes.Buffer
	short.WriteTo(&shortBuf)
	partLen := shortBuf.Len()
	shortBuf.Write(meta.Bytes())

	_, shortErr := ParseMXF(bytes.NewReader(shortBuf.Bytes()))
	expected := fmt.Sprintf("s377m: klv stream interrupted %d bytes into a 1000 byte metadata region at offset %d",
		meta.Len(), partLen+meta.Len())

	Convey("Checking a stream that ends inside a declared metadata region fails", t, func() {
		Convey("parsing a header that declares 1000 metadata bytes over a shorter stream", func() {
			Convey("The parse fails with how far it got", func() {
				So(shortErr, ShouldNotBeNil)
				So(shortErr.Error(), ShouldEqual, expected)
			})
		})
	})

	_, emptyErr := ParseMXF(bytes.NewReader(nil))

	Convey("Checking an empty stream is rejected", t, func() {
		Convey("parsing zero bytes", func() {
			Convey("The parse reports the empty stream", func() {
				So(emptyErr, ShouldNotBeNil)
				// the splitter and the record loop race to report it
				So(emptyErr.Error(), ShouldBeIn,
					"empty data stream", "no mxf data found in byte stream")
			})
		})
	})
}

func TestParseMXFWithoutPrimer(t *testing.T) {

	uid := bytes.Repeat([]byte{0xee}, 16)
	payload := localItem(NewTag(0x3c0a), uid)
	orphan, _ := ParseSet(Frame{Key: prefaceKey}, payload, setPrimer())

	var meta bytes.Buffer
	orphan.WriteTo(&meta)

	header := &Partition{Kind: Header, MajorVersion: 1, MinorVersion: 2, HeaderByteCount: uint64(meta.Len())}
	var file bytes.Buffer
	header.WriteTo(&file)
	file.Write(meta.Bytes())

	m, err := ParseMXF(bytes.NewReader(file.Bytes()))

	Convey("Checking sets ahead of any primer degrade instead of failing", t, func() {
		Convey("parsing a metadata region that opens with a set", func() {
			Convey("The set parses with its items raw and the bytes still round trip", func() {
				So(err, ShouldBeNil)

				sets := m.Sets()
				So(len(sets), ShouldEqual, 1)

				fld, ok := sets[0].Field("3c0a")
				So(ok, ShouldBeTrue)
				So(fld.Value, ShouldBeNil)
				So(fld.Raw, ShouldResemble, uid)

				var out bytes.Buffer
				m.WriteTo(&out)
				So(out.Bytes(), ShouldResemble, file.Bytes())
			})
		})
	})
}

func TestFileReports(t *testing.T) {

	file, footerOffset, ripOffset, _ := demoStream()
	m, parseErr := ParseMXF(bytes.NewReader(file))

	var tree bytes.Buffer
	var reportBytes []byte
	var yamlErr error
	if parseErr == nil {
		m.Describe(&tree)
		reportBytes, yamlErr = yaml.Marshal(m)
	}

	Convey("Checking the readable file layout", t, func() {
		Convey("describing the parsed demo file", func() {
			Convey("Each partition gets its header line and the metadata graph nests beneath", func() {
				So(parseErr, ShouldBeNil)
				So(tree.String(), ShouldContainSubstring,
					"header partition at 0 (closed, complete): 2 metadata sets, 0 index segments, 1 essence triplets\n")
				So(tree.String(), ShouldContainSubstring, fmt.Sprintf(
					"footer partition at %d (closed, complete): 0 metadata sets, 0 index segments, 0 essence triplets\n", footerOffset))
				So(tree.String(), ShouldContainSubstring, fmt.Sprintf("random index pack at %d: 2 partitions\n", ripOffset))
				So(tree.String(), ShouldContainSubstring, "  Preface (")
				So(tree.String(), ShouldContainSubstring, "ContentStorage:\n")
				So(tree.String(), ShouldContainSubstring, "<->")
			})
		})
	})

	var report struct {
		Partitions []map[string]any `yaml:"partitions"`
		RIP        []map[string]any `yaml:"randomIndex"`
	}
	unmarshalErr := yaml.Unmarshal(reportBytes, &report)

	Convey("Checking the yaml summary of a file", t, func() {
		Convey("marshalling the parsed demo file", func() {
			Convey("The summary lists the partitions, their sets and the random index", func() {
				So(yamlErr, ShouldBeNil)
				So(unmarshalErr, ShouldBeNil)
				So(len(report.Partitions), ShouldEqual, 2)
				So(report.Partitions[0]["kind"], ShouldEqual, "header")
				So(report.Partitions[0]["metadata"], ShouldResemble, []any{"Preface", "ContentStorage"})
				So(report.Partitions[1]["kind"], ShouldEqual, "footer")
				So(len(report.RIP), ShouldEqual, 2)
			})
		})
	})
}
