package s377m

import (
	"context"
	"fmt"
	"io"

	"github.com/metarex-media/mrx-tool/klv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Record is one KLV triplet lifted off a stream: a partition pack, primer
// pack, metadata set, random index pack or opaque data the parser left
// alone.
type Record interface {
	// Framing reports the key, length field and stream position the
	// record was read with.
	Framing() Frame
	// WriteTo re-serialises the record as one complete triplet.
	WriteTo(w io.Writer) (int64, error)
}

// Framing implements Record for every type carrying a Frame.
func (f Frame) Framing() Frame { return f }

// PartitionContent groups the records that followed one partition pack, in
// stream order. Metadata holds the primer, sets and fill inside the
// declared metadata region; Index the index table segments; Essence
// everything else up to the next partition.
type PartitionContent struct {
	Pack     *Partition
	Primer   *Primer
	Metadata []Record
	Index    []*Opaque
	Essence  []*Opaque
}

// Sets filters the metadata region down to the sets it carries.
func (pc *PartitionContent) Sets() []*Set {
	out := make([]*Set, 0, len(pc.Metadata))
	for _, rec := range pc.Metadata {
		if s, ok := rec.(*Set); ok {
			out = append(out, s)
		}
	}
	return out
}

// MXF is one parsed stream: every record in the order it appeared, the
// same records grouped under their partitions, and the random index pack
// when the stream ends with one.
type MXF struct {
	Records    []Record
	Partitions []*PartitionContent
	RIP        *RandomIndex
}

// Decoder carries the choices a parse runs with. The zero value is not
// usable; ParseMXF fills the defaults before applying its options.
type Decoder struct {
	// Registry resolves field identifiers to names and codecs.
	Registry Registry
	// Logger receives parse progress and degradation notices.
	Logger *zap.Logger
	// Sniffers identify the content of essence payloads.
	Sniffers map[*DataIdentifier][]Sniffer
	// Vendor teaches every primer ad hoc tag mappings before its sets
	// parse.
	Vendor map[Tag]Entry
}

// WithRegistry swaps the type registry field values resolve through,
// usually one carrying injected vendor mappings.
func WithRegistry(reg Registry) func(*Decoder) {
	return func(d *Decoder) {
		d.Registry = reg
	}
}

// WithLogger routes parse progress and degradation notices to log. The
// default logger discards everything.
func WithLogger(log *zap.Logger) func(*Decoder) {
	return func(d *Decoder) {
		d.Logger = log
	}
}

// WithSniffers adds content identification to the parse. Each essence
// payload is offered to the sniff tests and the results attached to its
// record.
func WithSniffers(sniffTests ...SniffTest) func(*Decoder) {
	return func(d *Decoder) {
		if d.Sniffers == nil {
			d.Sniffers = map[*DataIdentifier][]Sniffer{}
		}
		for _, st := range sniffTests {
			d.Sniffers[&st.DataID] = append(d.Sniffers[&st.DataID], st.Sniffs...)
		}
	}
}

// WithVendor adds vendor tag mappings to the parse. Every primer pack
// that arrives is customised with them before its sets decode, so dark
// vendor fields come out named and typed. The primer written back stays
// the one from the stream.
func WithVendor(mappings map[Tag]Entry) func(*Decoder) {
	return func(d *Decoder) {
		d.Vendor = mappings
	}
}

// frameOf lifts the framing of a buffered klv packet into a Frame, stamped
// with the stream offset the packet was read at.
func frameOf(item *klv.KLV, offset int) (Frame, error) {
	f := Frame{Offset: int64(offset)}
	if len(item.Key) != 16 {
		return f, &StructuralError{Offset: f.Offset, Msg: fmt.Sprintf("%d byte key, wanted 16", len(item.Key))}
	}
	copy(f.Key[:], item.Key)

	length, size, err := BERDecode(item.Length)
	if err != nil {
		return f, &StructuralError{Offset: f.Offset, Key: f.Key, Msg: "bad length field", Err: err}
	}
	f.Length, f.LenSize = length, size
	return f, nil
}

// ParseMXF reads a whole MXF stream into typed records.
//
// The stream is consumed in a single forward pass: a klv splitter feeds a
// channel while the record loop drains it. Partition packs set the scope
// for what follows them. Records inside the declared metadata byte count
// parse as primer packs, metadata sets and fill; index table segments and
// essence pass through opaque; the random index pack lands on the result.
//
// A set arriving before any primer pack keeps all its fields raw. Field
// level problems stay on the fields; only structural violations end the
// parse.
func ParseMXF(stream io.Reader, options ...func(*Decoder)) (*MXF, error) {
	dec := &Decoder{Registry: NewRP210(), Logger: zap.NewNop()}
	for _, opt := range options {
		opt(dec)
	}

	buffer := make(chan *klv.KLV, 1000)

	// use errs to handle errors while running concurrently
	errs, _ := errgroup.WithContext(context.Background())

	errs.Go(func() error {
		return klv.StartKLVStream(stream, buffer, 10)
	})

	mxf := &MXF{}

	errs.Go(func() error {

		defer func() {
			// this only runs when an error occurs to stop blocking
			_, klvOpen := <-buffer
			for klvOpen {
				_, klvOpen = <-buffer
			}
		}()

		var current *PartitionContent
		var primer *Primer
		offset := 0

		klvItem, klvOpen := <-buffer
		for klvOpen {

			f, err := frameOf(klvItem, offset)
			if err != nil {
				return err
			}

			switch {
			case IsPartitionKey(f.Key):
				pack, err := ParsePartition(f, klvItem.Value)
				if err != nil {
					return err
				}
				dec.Logger.Debug("partition pack",
					zap.String("kind", string(pack.Kind)),
					zap.Int64("offset", f.Offset))

				current = &PartitionContent{Pack: pack}
				// each metadata region brings its own primer
				primer = nil
				mxf.Partitions = append(mxf.Partitions, current)
				mxf.Records = append(mxf.Records, pack)
				offset += klvItem.TotalLength()

				metaByteCount := 0
				for metaByteCount < int(pack.HeaderByteCount) {
					metadata, open := <-buffer
					if !open {
						return structuralErr(Frame{Offset: int64(offset)},
							"klv stream interrupted %d bytes into a %d byte metadata region", metaByteCount, pack.HeaderByteCount)
					}
					mf, err := frameOf(metadata, offset)
					if err != nil {
						return err
					}

					var rec Record
					switch {
					case IsPrimerKey(mf.Key):
						p, perr := ParsePrimer(mf, metadata.Value, dec.Registry)
						if perr != nil {
							return perr
						}
						// sets decode through the customised copy while
						// the stream's own primer is what gets recorded
						primer = p
						if len(dec.Vendor) > 0 {
							primer = Customize(p, dec.Registry, dec.Vendor)
						}
						current.Primer = p
						rec = p
					case IsFillKey(mf.Key):
						rec = ParseOpaque(mf, metadata.Value)
					default:
						if primer == nil {
							dec.Logger.Warn("metadata set before any primer pack, local tags stay unresolved",
								zap.String("key", mf.Key.String()),
								zap.Int64("offset", mf.Offset))
						}
						set, serr := ParseSet(mf, metadata.Value, primer)
						if serr != nil {
							return serr
						}
						if set.Dark {
							dec.Logger.Debug("dark metadata set",
								zap.String("key", mf.Key.String()),
								zap.Int64("offset", mf.Offset))
						}
						rec = set
					}

					current.Metadata = append(current.Metadata, rec)
					mxf.Records = append(mxf.Records, rec)
					offset += metadata.TotalLength()
					metaByteCount += metadata.TotalLength()
				}

				// index table segments pass through untouched
				indexByteCount := 0
				for indexByteCount < int(pack.IndexByteCount) {
					index, open := <-buffer
					if !open {
						return structuralErr(Frame{Offset: int64(offset)},
							"klv stream interrupted %d bytes into a %d byte index region", indexByteCount, pack.IndexByteCount)
					}
					xf, err := frameOf(index, offset)
					if err != nil {
						return err
					}
					seg := ParseOpaque(xf, index.Value)
					current.Index = append(current.Index, seg)
					mxf.Records = append(mxf.Records, seg)
					offset += index.TotalLength()
					indexByteCount += index.TotalLength()
				}

			case IsRIPKey(f.Key):
				rip, err := ParseRandomIndex(f, klvItem.Value)
				if err != nil {
					return err
				}
				mxf.RIP = rip
				mxf.Records = append(mxf.Records, rip)
				offset += klvItem.TotalLength()

			default:
				if current == nil {
					return structuralErr(f, "essence before any partition pack")
				}
				ess := ParseOpaque(f, klvItem.Value)
				if len(dec.Sniffers) > 0 && !ess.IsFill() {
					ess.Sniffs = Sniff(ess.Data, dec.Sniffers)
					if ct, ok := ess.Sniffs[ContentTypeKey]; ok {
						ess.ContentType = CType(ct.Field)
					}
				}
				current.Essence = append(current.Essence, ess)
				mxf.Records = append(mxf.Records, ess)
				offset += klvItem.TotalLength()
			}

			// get the next item for a loop
			klvItem, klvOpen = <-buffer
		}

		if offset == 0 {
			return fmt.Errorf("no mxf data found in byte stream")
		}
		return nil
	})

	if err := errs.Wait(); err != nil {
		return nil, err
	}
	return mxf, nil
}

// Sets lists every metadata set in the file in stream order, footer
// repeats included.
func (m *MXF) Sets() []*Set {
	var out []*Set
	for _, part := range m.Partitions {
		out = append(out, part.Sets()...)
	}
	return out
}

// Index maps instance identifiers to sets across the whole file. When a
// later partition repeats the metadata the repeat wins, matching how
// readers treat the closed copy as authoritative.
func (m *MXF) Index() Index {
	return BuildIndex(m.Sets())
}

// WriteTo re-serialises every record in stream order. Structured records
// take the canonical nine byte length field and opaque records keep the
// width they were read with, so files this package wrote round trip byte
// for byte. Partition byte counts are written as held; a caller that grows
// or shrinks the metadata must refresh them first.
func (m *MXF) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, rec := range m.Records {
		n, err := rec.WriteTo(w)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Describe writes a readable layout of the file: one line per partition
// followed by the reference graph of its metadata, walked from each root
// set. Cycles come out as back references, so the walk terminates on any
// graph.
func (m *MXF) Describe(w io.Writer) {
	for _, part := range m.Partitions {
		pack := part.Pack
		state := "open"
		if pack.Closed {
			state = "closed"
		}
		if pack.Complete {
			state += ", complete"
		} else {
			state += ", incomplete"
		}
		fmt.Fprintf(w, "%s partition at %d (%s): %d metadata sets, %d index segments, %d essence triplets\n",
			pack.Kind, pack.Offset, state, len(part.Sets()), len(part.Index), len(part.Essence))

		sets := part.Sets()
		idx := BuildIndex(sets)
		visited := make(map[ID]bool)
		for _, set := range sets {
			if id, ok := set.InstanceID(); ok && visited[id] {
				continue
			}
			set.Describe(w, idx, visited, 1)
		}
	}
	if m.RIP != nil {
		fmt.Fprintf(w, "random index pack at %d: %d partitions\n", m.RIP.Offset, len(m.RIP.Entries))
	}
}

// summary shapes for the yaml report
type fileSummary struct {
	Partitions  []partitionSummary `yaml:"partitions"`
	RandomIndex []RIPEntry         `yaml:"randomIndex,omitempty"`
}

type partitionSummary struct {
	Kind          PartitionKind    `yaml:"kind"`
	Offset        int64            `yaml:"offset"`
	Closed        bool             `yaml:"closed"`
	Complete      bool             `yaml:"complete"`
	BodySID       uint32           `yaml:"bodySID,omitempty"`
	IndexSID      uint32           `yaml:"indexSID,omitempty"`
	Metadata      []string         `yaml:"metadata,omitempty"`
	IndexSegments int              `yaml:"indexSegments,omitempty"`
	Essence       []essenceSummary `yaml:"essence,omitempty"`
}

type essenceSummary struct {
	Key         string `yaml:"key"`
	Bytes       int    `yaml:"bytes"`
	ContentType CType  `yaml:"contentType,omitempty"`
}

// MarshalYAML summarises the file for reports: the partition layout, the
// set kinds each partition carries and what the sniffers made of the
// essence.
func (m *MXF) MarshalYAML() (any, error) {
	sum := fileSummary{}
	for _, part := range m.Partitions {
		pack := part.Pack
		ps := partitionSummary{
			Kind:          pack.Kind,
			Offset:        pack.Offset,
			Closed:        pack.Closed,
			Complete:      pack.Complete,
			BodySID:       pack.BodySID,
			IndexSID:      pack.IndexSID,
			IndexSegments: len(part.Index),
		}
		for _, set := range part.Sets() {
			ps.Metadata = append(ps.Metadata, set.Kind)
		}
		for _, ess := range part.Essence {
			if ess.IsFill() {
				continue
			}
			ps.Essence = append(ps.Essence, essenceSummary{
				Key:         ess.Key.String(),
				Bytes:       len(ess.Data),
				ContentType: ess.ContentType,
			})
		}
		sum.Partitions = append(sum.Partitions, ps)
	}
	if m.RIP != nil {
		sum.RandomIndex = m.RIP.Entries
	}
	return sum, nil
}
