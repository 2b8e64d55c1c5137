package s377m

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/google/uuid"
)

// Value is a decoded field value. Encode returns the canonical wire bytes
// of the value, so decode then encode reproduces what a conformant writer
// would emit.
type Value interface {
	Encode() ([]byte, error)
	String() string
}

// Integer is a fixed width big endian integer of 1, 2, 4 or 8 bytes.
// Signed values are stored sign extended.
type Integer struct {
	Size   int
	Signed bool
	Bits   uint64
}

// Int64 returns the value with its sign applied.
func (v *Integer) Int64() int64 { return int64(v.Bits) }

// Uint64 returns the raw value bits.
func (v *Integer) Uint64() uint64 { return v.Bits }

func (v *Integer) String() string {
	if v.Signed {
		return strconv.FormatInt(int64(v.Bits), 10)
	}
	return strconv.FormatUint(v.Bits, 10)
}

func (v *Integer) Encode() ([]byte, error) {
	switch v.Size {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%d byte integer: %w", v.Size, ErrBadValue)
	}
	if v.Size < 8 {
		if v.Signed {
			n := int64(v.Bits)
			limit := int64(1) << (8*v.Size - 1)
			if n >= limit || n < -limit {
				return nil, fmt.Errorf("%d does not fit %d signed bytes: %w", n, v.Size, ErrBadValue)
			}
		} else if v.Bits>>(8*v.Size) != 0 {
			return nil, fmt.Errorf("%d does not fit %d bytes: %w", v.Bits, v.Size, ErrBadValue)
		}
	}

	out := make([]byte, v.Size)
	bits := v.Bits
	for i := v.Size - 1; i >= 0; i-- {
		out[i] = byte(bits)
		bits >>= 8
	}
	return out, nil
}

func decodeInteger(b []byte, size int, signed bool) (Value, error) {
	if len(b) != size {
		return nil, fmt.Errorf("%d byte integer from %d bytes: %w", size, len(b), ErrBadValue)
	}
	var bits uint64
	for _, d := range b {
		bits = bits<<8 | uint64(d)
	}
	if signed && size < 8 {
		shift := 64 - 8*size
		bits = uint64(int64(bits<<shift) >> shift)
	}
	return &Integer{Size: size, Signed: signed, Bits: bits}, nil
}

// Boolean is the one byte flag type. Any nonzero byte reads as true and
// true writes back as 0x01.
type Boolean struct {
	Value bool
}

func (v *Boolean) String() string { return strconv.FormatBool(v.Value) }

func (v *Boolean) Encode() ([]byte, error) {
	if v.Value {
		return []byte{0x01}, nil
	}
	return []byte{0x00}, nil
}

func decodeBoolean(b []byte) (Value, error) {
	if len(b) != 1 {
		return nil, fmt.Errorf("boolean of %d bytes: %w", len(b), ErrBadValue)
	}
	return &Boolean{Value: b[0] != 0}, nil
}

// UTF16 is the big endian UTF-16 string type the registers use for names.
// Trailing NULs are kept on the value so strings round trip exactly;
// String trims them for display.
type UTF16 struct {
	Value string
}

func (v *UTF16) String() string { return strings.TrimRight(v.Value, "\x00") }

func (v *UTF16) Encode() ([]byte, error) {
	code := utf16.Encode([]rune(v.Value))
	out := make([]byte, 0, 2*len(code))
	for _, c := range code {
		out = order.AppendUint16(out, c)
	}
	return out, nil
}

func decodeUTF16(b []byte) (Value, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("utf-16 value of %d bytes: %w", len(b), ErrBadValue)
	}
	code := make([]uint16, len(b)/2)
	for i := range code {
		code[i] = order.Uint16(b[2*i : 2*i+2 : 2*i+2])
	}
	return &UTF16{Value: string(utf16.Decode(code))}, nil
}

// Timestamp is the eight byte register timestamp: year, month, day, hour,
// minute, second and quarter milliseconds.
type Timestamp struct {
	Year      int16
	Month     uint8
	Day       uint8
	Hour      uint8
	Minute    uint8
	Second    uint8
	QuarterMS uint8
}

func (v *Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d",
		v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second, int(v.QuarterMS)*4)
}

func (v *Timestamp) Encode() ([]byte, error) {
	out := make([]byte, 0, 8)
	out = order.AppendUint16(out, uint16(v.Year))
	return append(out, v.Month, v.Day, v.Hour, v.Minute, v.Second, v.QuarterMS), nil
}

func decodeTimestamp(b []byte) (Value, error) {
	if len(b) != 8 {
		return nil, fmt.Errorf("timestamp of %d bytes: %w", len(b), ErrBadValue)
	}
	return &Timestamp{
		Year:      int16(order.Uint16(b[:2:2])),
		Month:     b[2],
		Day:       b[3],
		Hour:      b[4],
		Minute:    b[5],
		Second:    b[6],
		QuarterMS: b[7],
	}, nil
}

// Rational is the eight byte numerator and denominator pair used for
// rates.
type Rational struct {
	Numerator   int32
	Denominator int32
}

func (v *Rational) String() string {
	return fmt.Sprintf("%d/%d", v.Numerator, v.Denominator)
}

func (v *Rational) Encode() ([]byte, error) {
	out := make([]byte, 0, 8)
	out = order.AppendUint32(out, uint32(v.Numerator))
	return order.AppendUint32(out, uint32(v.Denominator)), nil
}

func decodeRational(b []byte) (Value, error) {
	if len(b) != 8 {
		return nil, fmt.Errorf("rational of %d bytes: %w", len(b), ErrBadValue)
	}
	return &Rational{
		Numerator:   int32(order.Uint32(b[:4:4])),
		Denominator: int32(order.Uint32(b[4:8:8])),
	}, nil
}

// Version is the two byte major and minor pair.
type Version struct {
	Major uint8
	Minor uint8
}

func (v *Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

func (v *Version) Encode() ([]byte, error) {
	return []byte{v.Major, v.Minor}, nil
}

func decodeVersion(b []byte) (Value, error) {
	if len(b) != 2 {
		return nil, fmt.Errorf("version of %d bytes: %w", len(b), ErrBadValue)
	}
	return &Version{Major: b[0], Minor: b[1]}, nil
}

// ProductVersion is the five u16 release vector identification sets carry.
type ProductVersion struct {
	Major   uint16
	Minor   uint16
	Patch   uint16
	Build   uint16
	Release uint16
}

func (v *ProductVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build, v.Release)
}

func (v *ProductVersion) Encode() ([]byte, error) {
	out := make([]byte, 0, 10)
	for _, part := range [5]uint16{v.Major, v.Minor, v.Patch, v.Build, v.Release} {
		out = order.AppendUint16(out, part)
	}
	return out, nil
}

func decodeProductVersion(b []byte) (Value, error) {
	if len(b) != 10 {
		return nil, fmt.Errorf("product version of %d bytes: %w", len(b), ErrBadValue)
	}
	return &ProductVersion{
		Major:   order.Uint16(b[:2:2]),
		Minor:   order.Uint16(b[2:4:4]),
		Patch:   order.Uint16(b[4:6:6]),
		Build:   order.Uint16(b[6:8:8]),
		Release: order.Uint16(b[8:10:10]),
	}, nil
}

// RefSubtype classifies reference style values. The graph walk follows
// strong, weak and plain UUID references into other sets; labels, AUIDs
// and package identifiers only name things and are never followed.
type RefSubtype string

const (
	RefStrong    RefSubtype = "StrongReference"
	RefWeak      RefSubtype = "WeakReference"
	RefUUID      RefSubtype = "UUID"
	RefUL        RefSubtype = "Label"
	RefAUID      RefSubtype = "AUID"
	RefPackageID RefSubtype = "PackageID"
)

// refSizes gives the wire width per reference subtype.
var refSizes = map[RefSubtype]int{
	RefStrong:    16,
	RefWeak:      16,
	RefUUID:      16,
	RefUL:        16,
	RefAUID:      16,
	RefPackageID: 32,
}

// Reference is a 16 or 32 byte identifier value.
type Reference struct {
	Subtype RefSubtype
	Data    []byte
}

func (v *Reference) String() string {
	switch v.Subtype {
	case RefUL:
		if len(v.Data) == 16 {
			var u UL
			copy(u[:], v.Data)
			return u.String()
		}
	case RefStrong, RefWeak, RefUUID:
		if id, err := uuid.FromBytes(v.Data); err == nil {
			return id.String()
		}
	}
	return fmt.Sprintf("%x", v.Data)
}

func (v *Reference) Encode() ([]byte, error) {
	out := make([]byte, len(v.Data))
	copy(out, v.Data)
	return out, nil
}

func decodeReference(sub RefSubtype, b []byte) (Value, error) {
	if len(b) != refSizes[sub] {
		return nil, fmt.Errorf("%s of %d bytes, wanted %d: %w", sub, len(b), refSizes[sub], ErrBadValue)
	}
	data := make([]byte, len(b))
	copy(data, b)
	return &Reference{Subtype: sub, Data: data}, nil
}

// Array is the u32 count, u32 item size batch layout, carrying elements of
// one fixed kind. The element kind is a registry type name, so batches of
// references keep their subtype for the graph walk.
type Array struct {
	Kind     string
	ItemSize uint32
	Items    []Value
}

func (v *Array) String() string {
	parts := make([]string, len(v.Items))
	for i, item := range v.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v *Array) Encode() ([]byte, error) {
	out := make([]byte, 0, 8+int(v.ItemSize)*len(v.Items))
	out = order.AppendUint32(out, uint32(len(v.Items)))
	out = order.AppendUint32(out, v.ItemSize)
	for _, item := range v.Items {
		b, err := item.Encode()
		if err != nil {
			return nil, err
		}
		if len(b) != int(v.ItemSize) {
			return nil, fmt.Errorf("%s batch item of %d bytes, wanted %d: %w", v.Kind, len(b), v.ItemSize, ErrBadValue)
		}
		out = append(out, b...)
	}
	return out, nil
}

func decodeArray(kind string, b []byte) (Value, error) {
	if len(b) < 8 {
		return nil, fmt.Errorf("%s batch of %d bytes, wanted at least 8: %w", kind, len(b), ErrBadValue)
	}
	count := int(order.Uint32(b[:4:4]))
	itemSize := int(order.Uint32(b[4:8:8]))

	arr := &Array{Kind: kind, ItemSize: uint32(itemSize)}
	if count == 0 {
		if len(b) != 8 {
			return nil, fmt.Errorf("%d trailing bytes after an empty %s batch: %w", len(b)-8, kind, ErrBadValue)
		}
		return arr, nil
	}
	if itemSize == 0 || (len(b)-8)/itemSize < count {
		return nil, fmt.Errorf("%s batch of %d bytes for %d items of %d: %w", kind, len(b), count, itemSize, ErrBadValue)
	}
	if len(b) != 8+count*itemSize {
		return nil, fmt.Errorf("%d trailing bytes after a %s batch: %w", len(b)-8-count*itemSize, kind, ErrBadValue)
	}

	arr.Items = make([]Value, count)
	for i := range arr.Items {
		item, err := decodeScalar(kind, b[8+i*itemSize:8+(i+1)*itemSize])
		if err != nil {
			return nil, err
		}
		arr.Items[i] = item
	}
	return arr, nil
}

// Bytes is an opaque typed value, used for injected vendor fields that
// have a name but no register layout.
type Bytes struct {
	Data []byte
}

func (v *Bytes) String() string {
	if len(v.Data) > 32 {
		return fmt.Sprintf("%x (+%d bytes)", v.Data[:32], len(v.Data)-32)
	}
	return fmt.Sprintf("%x", v.Data)
}

func (v *Bytes) Encode() ([]byte, error) {
	out := make([]byte, len(v.Data))
	copy(out, v.Data)
	return out, nil
}

func decodeBytes(b []byte) (Value, error) {
	data := make([]byte, len(b))
	copy(data, b)
	return &Bytes{Data: data}, nil
}

// decodeScalar decodes one non batch value by its registry type name.
func decodeScalar(kind string, b []byte) (Value, error) {
	switch kind {
	case "UInt8":
		return decodeInteger(b, 1, false)
	case "UInt16":
		return decodeInteger(b, 2, false)
	case "UInt32":
		return decodeInteger(b, 4, false)
	case "UInt64":
		return decodeInteger(b, 8, false)
	case "Int8":
		return decodeInteger(b, 1, true)
	case "Int16":
		return decodeInteger(b, 2, true)
	case "Int32":
		return decodeInteger(b, 4, true)
	case "Int64", "Length", "Position":
		return decodeInteger(b, 8, true)
	case "Boolean":
		return decodeBoolean(b)
	case "UTF16":
		return decodeUTF16(b)
	case "Timestamp":
		return decodeTimestamp(b)
	case "Rational":
		return decodeRational(b)
	case "VersionType":
		return decodeVersion(b)
	case "ProductVersion":
		return decodeProductVersion(b)
	case "StrongReference":
		return decodeReference(RefStrong, b)
	case "WeakReference":
		return decodeReference(RefWeak, b)
	case "UUID":
		return decodeReference(RefUUID, b)
	case "UL":
		return decodeReference(RefUL, b)
	case "AUID":
		return decodeReference(RefAUID, b)
	case "PackageID":
		return decodeReference(RefPackageID, b)
	case "DataValue":
		return decodeBytes(b)
	default:
		return nil, fmt.Errorf("no codec for type %q: %w", kind, ErrNotRegistered)
	}
}

// batchKinds maps batch type names to their element kind, following the
// register naming (vectors are ordered, sets and batches are not).
var batchKinds = map[string]string{
	"StrongReferenceVector": "StrongReference",
	"StrongReferenceArray":  "StrongReference",
	"StrongReferenceSet":    "StrongReference",
	"WeakReferenceVector":   "WeakReference",
	"WeakReferenceArray":    "WeakReference",
	"WeakReferenceSet":      "WeakReference",
	"ULBatch":               "UL",
	"AUIDArray":             "AUID",
	"AUIDSet":               "AUID",
}

// decodeValue decodes a value by registry type name, batches included.
func decodeValue(kind string, b []byte) (Value, error) {
	if elem, ok := batchKinds[kind]; ok {
		return decodeArray(elem, b)
	}
	return decodeScalar(kind, b)
}
