package s377m

import "io"

// RIPEntry locates one partition from the end of the file.
type RIPEntry struct {
	BodySID uint32 `yaml:"bodySID"`
	Offset  uint64 `yaml:"offset"`
}

// RandomIndex is the random index pack: the partition offset table that
// closes a file so readers can seek without walking it.
type RandomIndex struct {
	Frame
	Entries []RIPEntry
}

// ParseRandomIndex decodes the pack and checks the trailing overall
// length against the triplet's real footprint, length field width
// included.
func ParseRandomIndex(f Frame, payload []byte) (*RandomIndex, error) {
	if len(payload) < 4 {
		return nil, structuralErr(f, "random index pack of %d bytes, wanted at least 4", len(payload))
	}
	if (len(payload)-4)%12 != 0 {
		return nil, structuralErr(f, "random index entries of %d bytes, not a run of 12", len(payload)-4)
	}

	r := &RandomIndex{Frame: f}
	r.Entries = make([]RIPEntry, (len(payload)-4)/12)
	for i := range r.Entries {
		base := 12 * i
		r.Entries[i] = RIPEntry{
			BodySID: order.Uint32(payload[base : base+4 : base+4]),
			Offset:  order.Uint64(payload[base+4 : base+12 : base+12]),
		}
	}

	total := int(order.Uint32(payload[len(payload)-4:]))
	if want := 16 + f.LenSize + f.Length; total != want {
		return nil, structuralErr(f, "random index pack declares %d bytes, the pack is %d", total, want)
	}
	return r, nil
}

// WriteTo serialises the pack with the eight byte long form length and
// the overall length stamped to match.
func (r *RandomIndex) WriteTo(w io.Writer) (int64, error) {
	payload := make([]byte, 0, 12*len(r.Entries)+4)
	for _, e := range r.Entries {
		payload = order.AppendUint32(payload, e.BodySID)
		payload = order.AppendUint64(payload, e.Offset)
	}
	payload = order.AppendUint32(payload, uint32(16+canonicalLenWidth+12*len(r.Entries)+4))
	return writeKLV(w, ripKey, payload, canonicalLenWidth)
}
