package s377m

import (
	"fmt"
	"io"
)

// PartitionKind distinguishes the partition pack flavours.
type PartitionKind string

const (
	// Header opens the file and carries the first copy of the metadata.
	Header PartitionKind = "header"
	// Body partitions carry essence and, in closed form, repeated metadata.
	Body PartitionKind = "body"
	// GenericStream partitions wrap side streams of arbitrary data.
	GenericStream PartitionKind = "genericstream"
	// Footer closes the file, usually with the final metadata copy.
	Footer PartitionKind = "footer"
)

const (
	headerKindByte = 0x02
	bodyKindByte   = 0x03
	footerKindByte = 0x04

	genericStreamStatus = 0x11
)

// Partition is a partition pack: the record that opens every partition
// and describes the layout of the file around it.
type Partition struct {
	Frame

	Kind     PartitionKind
	Closed   bool
	Complete bool

	MajorVersion       uint16
	MinorVersion       uint16
	KAGSize            uint32
	ThisPartition      uint64
	PreviousPartition  uint64
	FooterPartition    uint64
	HeaderByteCount    uint64
	IndexByteCount     uint64
	IndexSID           uint32
	BodyOffset         uint64
	BodySID            uint32
	OperationalPattern UL
	EssenceContainers  []UL
}

// ParsePartition decodes and validates a partition pack payload: the fixed
// field block, the operational pattern label and the essence container
// batch. Violations of the partition rules are structural errors.
func ParsePartition(f Frame, payload []byte) (*Partition, error) {
	if !IsPartitionKey(f.Key) {
		return nil, structuralErr(f, "not a partition pack key")
	}

	p := &Partition{Frame: f}
	switch f.Key[13] {
	case headerKindByte:
		p.Kind = Header
	case bodyKindByte:
		p.Kind = Body
		if f.Key[14] == genericStreamStatus {
			p.Kind = GenericStream
		}
	case footerKindByte:
		p.Kind = Footer
	}

	// generic stream partitions carry no open or incomplete form
	if p.Kind == GenericStream {
		p.Closed, p.Complete = true, true
	} else {
		p.Closed = f.Key[14] == 0x02 || f.Key[14] == 0x04
		p.Complete = f.Key[14] == 0x03 || f.Key[14] == 0x04
	}

	if len(payload) < 88 {
		return nil, structuralErr(f, "partition pack of %d bytes, wanted at least 88", len(payload))
	}

	p.MajorVersion = order.Uint16(payload[:2:2])
	p.MinorVersion = order.Uint16(payload[2:4:4])
	p.KAGSize = order.Uint32(payload[4:8:8])
	p.ThisPartition = order.Uint64(payload[8:16:16])
	p.PreviousPartition = order.Uint64(payload[16:24:24])
	p.FooterPartition = order.Uint64(payload[24:32:32])
	p.HeaderByteCount = order.Uint64(payload[32:40:40])
	p.IndexByteCount = order.Uint64(payload[40:48:48])
	p.IndexSID = order.Uint32(payload[48:52:52])
	p.BodyOffset = order.Uint64(payload[52:60:60])
	p.BodySID = order.Uint32(payload[60:64:64])
	copy(p.OperationalPattern[:], payload[64:80])

	containers, err := parseULBatch(f, payload[80:])
	if err != nil {
		return nil, err
	}
	p.EssenceContainers = containers

	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Partition) validate() error {
	if p.MajorVersion != 1 {
		return structuralErr(p.Frame, "partition major version %d, the registered value is 1", p.MajorVersion)
	}
	if p.MinorVersion != 2 && p.MinorVersion != 3 {
		return structuralErr(p.Frame, "partition minor version %d, wanted 2 or 3", p.MinorVersion)
	}
	if p.Kind == Header && (p.ThisPartition != 0 || p.PreviousPartition != 0) {
		return structuralErr(p.Frame, "header partition with nonzero partition offsets")
	}
	if p.Kind == Footer && !p.Closed {
		return structuralErr(p.Frame, "open footer partition")
	}
	if len(p.EssenceContainers) == 0 && p.BodySID != 0 {
		return structuralErr(p.Frame, "body sid %d with no essence containers", p.BodySID)
	}
	return nil
}

// key rebuilds the pack key from the kind and status flags.
func (p *Partition) key() (UL, error) {
	var u UL
	copy(u[:], partitionPrefix[:])

	switch p.Kind {
	case Header:
		u[13] = headerKindByte
	case Body:
		u[13] = bodyKindByte
	case GenericStream:
		u[13], u[14] = bodyKindByte, genericStreamStatus
		return u, nil
	case Footer:
		u[13] = footerKindByte
	default:
		return u, fmt.Errorf("s377m: unknown partition kind %q", p.Kind)
	}

	switch {
	case p.Closed && p.Complete:
		u[14] = 0x04
	case p.Closed:
		u[14] = 0x02
	case p.Complete:
		u[14] = 0x03
	default:
		u[14] = 0x01
	}
	return u, nil
}

// WriteTo serialises the pack with the eight byte long form length the
// partition family always carries. The same rules checked on parse apply,
// so an invalid pack never reaches the wire.
func (p *Partition) WriteTo(w io.Writer) (int64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	key, err := p.key()
	if err != nil {
		return 0, err
	}

	payload := make([]byte, 0, 88+16*len(p.EssenceContainers))
	payload = order.AppendUint16(payload, p.MajorVersion)
	payload = order.AppendUint16(payload, p.MinorVersion)
	payload = order.AppendUint32(payload, p.KAGSize)
	payload = order.AppendUint64(payload, p.ThisPartition)
	payload = order.AppendUint64(payload, p.PreviousPartition)
	payload = order.AppendUint64(payload, p.FooterPartition)
	payload = order.AppendUint64(payload, p.HeaderByteCount)
	payload = order.AppendUint64(payload, p.IndexByteCount)
	payload = order.AppendUint32(payload, p.IndexSID)
	payload = order.AppendUint64(payload, p.BodyOffset)
	payload = order.AppendUint32(payload, p.BodySID)
	payload = append(payload, p.OperationalPattern[:]...)
	payload = appendULBatch(payload, p.EssenceContainers)

	return writeKLV(w, key, payload, canonicalLenWidth)
}
