// Package s377m reads and writes the structural metadata layer of MXF
// files, as laid out in SMPTE ST 377. It covers the KLV triplet framing,
// partition packs, primer packs, metadata sets and packs, the random index
// pack and KLV fill, turning raw bytes into typed records and back again.
//
// The package leaves essence and index table payloads alone: they pass
// through as opaque records so a parsed file can be rewritten without the
// package understanding every byte in it.
package s377m

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

var order = binary.BigEndian

// UL is a 16 byte SMPTE universal label.
type UL [16]byte

// String renders the label in the dotted hex layout used throughout the
// SMPTE registers, e.g. "060e2b34.02050101.0d010201.01020400".
func (u UL) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x.%02x%02x%02x%02x.%02x%02x%02x%02x.%02x%02x%02x%02x",
		u[0], u[1], u[2], u[3], u[4], u[5], u[6], u[7],
		u[8], u[9], u[10], u[11], u[12], u[13], u[14], u[15])
}

// ParseUL reads a label from its dotted hex layout. The "urn:smpte:ul:"
// prefix the generated registers carry is accepted and stripped.
func ParseUL(s string) (UL, error) {
	var u UL
	trimmed := strings.TrimPrefix(s, "urn:smpte:ul:")
	trimmed = strings.ReplaceAll(trimmed, ".", "")

	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return u, fmt.Errorf("s377m: universal label %q: %w", s, err)
	}
	if len(b) != 16 {
		return u, fmt.Errorf("s377m: universal label %q is %d bytes, wanted 16", s, len(b))
	}
	copy(u[:], b)
	return u, nil
}

func mustUL(s string) UL {
	u, err := ParseUL(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Tag is the two byte local tag that keys items inside metadata sets.
type Tag [2]byte

// String renders the tag as four hex digits, e.g. "3c0a".
func (t Tag) String() string {
	return fmt.Sprintf("%02x%02x", t[0], t[1])
}

// Uint16 returns the tag as its numeric value.
func (t Tag) Uint16() uint16 {
	return order.Uint16(t[:])
}

// NewTag builds a tag from its numeric value.
func NewTag(v uint16) Tag {
	var t Tag
	order.PutUint16(t[:], v)
	return t
}

// Frame records the framing of one KLV triplet: its key, the declared
// payload length, how wide the length field was on the wire (marker byte
// included) and where the key sat in the stream.
type Frame struct {
	Key     UL
	Length  int
	LenSize int
	Offset  int64
}

// TotalLength is the full footprint of the triplet, key and length field
// included.
func (f Frame) TotalLength() int {
	return 16 + f.LenSize + f.Length
}

// canonicalLenWidth is the length field width every partition family
// record is written with: the marker byte plus an eight byte long form.
const canonicalLenWidth = 9

// BERDecode reads a BER length from the start of b, returning the length
// and the number of bytes the field occupied. Short form lengths fit in
// the first byte; long form lengths flag the count of big endian length
// bytes that follow. The indefinite form and counts above eight are not
// part of ST 377 and fail.
func BERDecode(b []byte) (length, size int, err error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("s377m: empty length field")
	}
	if b[0] < 0x80 {
		return int(b[0]), 1, nil
	}

	count := int(b[0] & 0x7f)
	if count == 0 || count > 8 {
		return 0, 0, fmt.Errorf("s377m: unsupported BER length of %d bytes", count)
	}
	if len(b) < 1+count {
		return 0, 0, fmt.Errorf("s377m: truncated BER length, wanted %d bytes got %d", 1+count, len(b))
	}

	var l uint64
	for _, d := range b[1 : 1+count] {
		l = l<<8 | uint64(d)
	}
	if l>>63 != 0 {
		return 0, 0, fmt.Errorf("s377m: BER length %#x out of range", l)
	}
	return int(l), 1 + count, nil
}

// BEREncode renders a length as a BER length field. A size of 0 picks the
// minimal encoding. A nonzero size fixes the total field width, marker
// byte included: 1 is the short form, 2 through 9 the long forms. Lengths
// that do not fit the requested width fail.
func BEREncode(length, size int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("s377m: negative length %d", length)
	}

	if size == 0 {
		if length <= 0x7f {
			size = 1
		} else {
			size = 2
			for v := uint64(length); v > 0xff; v >>= 8 {
				size++
			}
		}
	}

	switch {
	case size == 1:
		if length > 0x7f {
			return nil, fmt.Errorf("s377m: length %d does not fit the short form", length)
		}
		return []byte{byte(length)}, nil
	case size >= 2 && size <= 9:
		n := size - 1
		if n < 8 && uint64(length)>>(8*n) != 0 {
			return nil, fmt.Errorf("s377m: length %d does not fit %d BER bytes", length, n)
		}
		out := make([]byte, size)
		out[0] = 0x80 | byte(n)
		v := uint64(length)
		for i := size - 1; i >= 1; i-- {
			out[i] = byte(v)
			v >>= 8
		}
		return out, nil
	default:
		return nil, fmt.Errorf("s377m: unsupported length field width %d", size)
	}
}

// ReadFrame reads one key and length field from r. pos is the absolute
// offset of the key in the stream and is stamped onto the frame. A clean
// EOF on the first key byte is returned as io.EOF so callers can tell the
// end of a stream from a truncated record.
func ReadFrame(r io.Reader, pos int64) (Frame, error) {
	f := Frame{Offset: pos}

	if _, err := io.ReadFull(r, f.Key[:]); err != nil {
		if err == io.EOF {
			return f, io.EOF
		}
		return f, &StructuralError{Offset: pos, Msg: "truncated key", Err: err}
	}

	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return f, &StructuralError{Offset: pos, Key: f.Key, Msg: "missing length field", Err: err}
	}
	if first[0] < 0x80 {
		f.Length, f.LenSize = int(first[0]), 1
		return f, nil
	}

	count := int(first[0] & 0x7f)
	if count == 0 || count > 8 {
		return f, &StructuralError{Offset: pos, Key: f.Key, Msg: fmt.Sprintf("unsupported BER length of %d bytes", count)}
	}
	rest := make([]byte, count)
	if _, err := io.ReadFull(r, rest); err != nil {
		return f, &StructuralError{Offset: pos, Key: f.Key, Msg: "truncated length field", Err: err}
	}
	length, size, err := BERDecode(append(first[:], rest...))
	if err != nil {
		return f, &StructuralError{Offset: pos, Key: f.Key, Msg: "bad length field", Err: err}
	}
	f.Length, f.LenSize = length, size
	return f, nil
}

// writeKLV writes one complete triplet: the key, a length field of the
// requested width, then the payload.
func writeKLV(w io.Writer, key UL, payload []byte, width int) (int64, error) {
	ber, err := BEREncode(len(payload), width)
	if err != nil {
		return 0, err
	}

	var written int64
	for _, chunk := range [][]byte{key[:], ber, payload} {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Well known keys. The registry version byte (byte 7) varies between
// revisions of the registers, so the matchers ignore it.
var (
	partitionPrefix = [13]byte{0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01}

	ripKey    = UL{0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x11, 0x01, 0x00}
	primerKey = UL{0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x05, 0x01, 0x00}
	fillKey   = UL{0x06, 0x0e, 0x2b, 0x34, 0x01, 0x01, 0x01, 0x02, 0x03, 0x01, 0x02, 0x10, 0x01, 0x00, 0x00, 0x00}
)

func matchVersioned(u, want UL) bool {
	for i, b := range want {
		if i == 7 {
			continue
		}
		if u[i] != b {
			return false
		}
	}
	return true
}

// IsPartitionKey reports whether u is a partition pack key: header, body,
// generic stream or footer, with a registered status byte.
func IsPartitionKey(u UL) bool {
	for i, b := range partitionPrefix {
		if i == 7 {
			continue
		}
		if u[i] != b {
			return false
		}
	}
	if u[15] != 0x00 {
		return false
	}
	switch u[13] {
	case 0x02, 0x04:
		return u[14] <= 0x04
	case 0x03:
		return u[14] <= 0x04 || u[14] == 0x11
	}
	return false
}

// IsPrimerKey reports whether u is the primer pack key.
func IsPrimerKey(u UL) bool {
	return matchVersioned(u, primerKey)
}

// IsFillKey reports whether u is the KLV fill label, old or current
// registry version.
func IsFillKey(u UL) bool {
	return matchVersioned(u, fillKey)
}

// IsRIPKey reports whether u is the random index pack key.
func IsRIPKey(u UL) bool {
	return u == ripKey
}

// parseULBatch reads the u32 count, u32 item size batch layout used for
// label lists. Empty batches keep whatever item size they declare.
func parseULBatch(f Frame, b []byte) ([]UL, error) {
	if len(b) < 8 {
		return nil, structuralErr(f, "label batch of %d bytes, wanted at least 8", len(b))
	}
	count := int(order.Uint32(b[:4:4]))
	itemSize := int(order.Uint32(b[4:8:8]))

	if count == 0 {
		if len(b) != 8 {
			return nil, structuralErr(f, "%d trailing bytes after an empty label batch", len(b)-8)
		}
		return nil, nil
	}
	if itemSize != 16 {
		return nil, structuralErr(f, "label batch item size %d, wanted 16", itemSize)
	}
	if len(b) != 8+count*16 {
		return nil, structuralErr(f, "label batch of %d bytes, wanted %d for %d labels", len(b), 8+count*16, count)
	}

	out := make([]UL, count)
	for i := range out {
		copy(out[i][:], b[8+16*i:8+16*(i+1)])
	}
	return out, nil
}

func appendULBatch(b []byte, uls []UL) []byte {
	b = order.AppendUint32(b, uint32(len(uls)))
	b = order.AppendUint32(b, 16)
	for _, u := range uls {
		b = append(b, u[:]...)
	}
	return b
}
