package s377m

import "io"

// Opaque carries a triplet the parser leaves alone: KLV fill, essence,
// index table segments and any dark data whose key is not recognised. The
// payload is held verbatim and written back untouched.
type Opaque struct {
	Frame
	Data []byte

	// ContentType is filled in by sniffers when the stream driver is
	// asked to identify opaque payloads. Empty otherwise.
	ContentType CType
	Sniffs      map[string]*SniffResult `yaml:"-"`
}

// ParseOpaque copies a payload without interpreting it.
func ParseOpaque(f Frame, payload []byte) *Opaque {
	data := make([]byte, len(payload))
	copy(data, payload)
	return &Opaque{Frame: f, Data: data}
}

// NewFill returns a fill item with n payload bytes of zero.
func NewFill(n int) *Opaque {
	return &Opaque{
		Frame: Frame{Key: fillKey, Length: n},
		Data:  make([]byte, n),
	}
}

// IsFill reports whether the triplet is KLV fill rather than dark data.
func (o *Opaque) IsFill() bool {
	return IsFillKey(o.Key)
}

// WriteTo re-emits the triplet. A frame read from a stream keeps its
// original length field width so the round trip is byte for byte; opaque
// records authored in memory take the eight byte long form.
func (o *Opaque) WriteTo(w io.Writer) (int64, error) {
	width := o.LenSize
	if width == 0 {
		width = canonicalLenWidth
	}
	return writeKLV(w, o.Key, o.Data, width)
}
