// package example contains a worked demo of the s377m library: authoring
// a file carrying GPS positions as JSON essence, then parsing it back with
// the essence sniffed against a schema and the structure checked.
package example

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/google/uuid"
	s377m "github.com/metarex-media/mxf-s377m"
	"github.com/metarex-media/mxf-s377m/jsonhandle"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/gpsSchema.json
var gpsSchema []byte

// GPSPoint is one position sample, carried as a JSON essence payload.
type GPSPoint struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
	Alt  float64 `json:"alt,omitempty"`
}

// Summary is what an inspection finds in a stream.
type Summary struct {
	Partitions  int      `yaml:"partitions"`
	Sets        int      `yaml:"metadataSets"`
	GPSPayloads int      `yaml:"gpsPayloads"`
	Problems    []string `yaml:"problems,omitempty"`
}

// The demo file uses the smallest header metadata that still hangs
// together: a Preface pointing at a ContentStorage, with the local tags
// for their items mapped by the primer.
var (
	prefaceUL = mustUL("060e2b34.02530101.0d010101.01012f00")
	storageUL = mustUL("060e2b34.02530101.0d010101.01011800")

	instanceUIDUL       = mustUL("060e2b34.01010101.01011502.00000000")
	contentStorageUL    = mustUL("060e2b34.01010102.06010104.02010000")
	essenceContainersUL = mustUL("060e2b34.01010102.01020210.02010000")
	packagesUL          = mustUL("060e2b34.01010102.06010104.05010000")

	gpsEssenceUL = mustUL("060e2b34.01020101.0d010301.15010500")
	containerUL  = mustUL("060e2b34.04010101.0d010301.027f0100")
	opAtomUL     = mustUL("060e2b34.04010101.0d010201.01010900")
)

// BuildGPSFile authors a complete single body file in memory: a closed
// header partition with its primer, Preface and ContentStorage, one
// essence triplet per point, then a footer and the random index pack.
func BuildGPSFile(points ...GPSPoint) ([]byte, error) {

	primer := s377m.NewPrimer(nil)
	primer.Add(s377m.NewTag(0x3c0a), instanceUIDUL)
	primer.Add(s377m.NewTag(0x1901), contentStorageUL)
	primer.Add(s377m.NewTag(0x1902), essenceContainersUL)
	primer.Add(s377m.NewTag(0x1e01), packagesUL)

	prefaceID := uuid.New()
	storageID := uuid.New()

	prefacePayload := item(0x3c0a, prefaceID[:])
	prefacePayload = append(prefacePayload, item(0x1901, storageID[:])...)
	prefacePayload = append(prefacePayload, item(0x1902, batch(containerUL[:]))...)

	storagePayload := item(0x3c0a, storageID[:])
	storagePayload = append(storagePayload, item(0x1e01, batch(prefaceID[:]))...)

	preface, err := s377m.ParseSet(s377m.Frame{Key: prefaceUL}, prefacePayload, primer)
	if err != nil {
		return nil, fmt.Errorf("building the preface: %w", err)
	}
	storage, err := s377m.ParseSet(s377m.Frame{Key: storageUL}, storagePayload, primer)
	if err != nil {
		return nil, fmt.Errorf("building the content storage: %w", err)
	}

	var meta bytes.Buffer
	primer.WriteTo(&meta)
	preface.WriteTo(&meta)
	storage.WriteTo(&meta)
	s377m.NewFill(64).WriteTo(&meta)

	var essence bytes.Buffer
	for _, point := range points {
		payload, err := json.Marshal(point)
		if err != nil {
			return nil, fmt.Errorf("encoding a gps point: %w", err)
		}
		s377m.ParseOpaque(s377m.Frame{Key: gpsEssenceUL}, payload).WriteTo(&essence)
	}

	header := &s377m.Partition{
		Kind: s377m.Header, Closed: true, Complete: true,
		MajorVersion: 1, MinorVersion: 2, KAGSize: 1,
		HeaderByteCount:    uint64(meta.Len()),
		BodySID:            1,
		OperationalPattern: opAtomUL,
		EssenceContainers:  []s377m.UL{containerUL},
	}

	var headBuf bytes.Buffer
	header.WriteTo(&headBuf)

	footerOffset := headBuf.Len() + meta.Len() + essence.Len()
	header.FooterPartition = uint64(footerOffset)

	footer := &s377m.Partition{
		Kind: s377m.Footer, Closed: true, Complete: true,
		MajorVersion: 1, MinorVersion: 2, KAGSize: 1,
		ThisPartition: uint64(footerOffset), FooterPartition: uint64(footerOffset),
		OperationalPattern: opAtomUL,
	}

	rip := &s377m.RandomIndex{Entries: []s377m.RIPEntry{
		{BodySID: 1, Offset: 0},
		{BodySID: 0, Offset: uint64(footerOffset)},
	}}

	var out bytes.Buffer
	header.WriteTo(&out)
	out.Write(meta.Bytes())
	out.Write(essence.Bytes())
	footer.WriteTo(&out)
	rip.WriteTo(&out)

	return out.Bytes(), nil
}

// InspectGPSFile parses a stream with every essence payload sniffed
// against the GPS schema, writes the readable layout to w and returns
// what it found. Structural problems land in the summary rather than
// failing the inspection.
func InspectGPSFile(stream io.Reader, w io.Writer) (Summary, error) {

	sc := s377m.NewSniffContext()
	schemaSniff, err := jsonhandle.SchemaCheck(sc, gpsSchema, "GPSSchema")
	if err != nil {
		return Summary{}, fmt.Errorf("compiling the gps schema: %w", err)
	}

	m, err := s377m.ParseMXF(stream, s377m.WithSniffers(
		s377m.SniffTest{DataID: jsonhandle.DataIdentifier, Sniffs: []s377m.Sniffer{schemaSniff}},
	))
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Partitions: len(m.Partitions), Sets: len(m.Sets())}
	for _, part := range m.Partitions {
		for _, ess := range part.Essence {
			if ess.IsFill() {
				continue
			}
			if res, ok := ess.Sniffs["GPSSchema"]; ok && res.Field == "pass" {
				sum.GPSPayloads++
			}
		}
	}
	for _, problem := range m.Check() {
		sum.Problems = append(sum.Problems, problem.Error())
	}

	m.Describe(w)
	return sum, nil
}

// RunGPSDemo builds the demo file and drops it in dir along with its
// reports: gpsdemo.mxf, the readable layout in gpsdemo.txt and the
// inspection summary in gpsdemo.yml.
func RunGPSDemo(dir string) error {

	file, err := BuildGPSFile(
		GPSPoint{Lat: 51.5072, Long: -0.1276},
		GPSPoint{Lat: 51.5033, Long: -0.1196},
		GPSPoint{Lat: 51.5014, Long: -0.1419, Alt: 35},
	)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "gpsdemo.mxf"), file, 0o644); err != nil {
		return err
	}

	var tree bytes.Buffer
	sum, err := InspectGPSFile(bytes.NewReader(file), &tree)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "gpsdemo.txt"), tree.Bytes(), 0o644); err != nil {
		return err
	}

	report, err := yaml.Marshal(sum)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "gpsdemo.yml"), report, 0o644)
}

// item assembles one local set item: a two byte tag, a two byte length
// and the value.
func item(tag uint16, value []byte) []byte {
	out := binary.BigEndian.AppendUint16(nil, tag)
	out = binary.BigEndian.AppendUint16(out, uint16(len(value)))
	return append(out, value...)
}

// batch assembles a batch of equal sized items behind the u32 count and
// item size header.
func batch(items ...[]byte) []byte {
	size := 0
	if len(items) > 0 {
		size = len(items[0])
	}
	out := binary.BigEndian.AppendUint32(nil, uint32(len(items)))
	out = binary.BigEndian.AppendUint32(out, uint32(size))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

func mustUL(s string) s377m.UL {
	u, err := s377m.ParseUL(s)
	if err != nil {
		panic(err)
	}
	return u
}
