package s377m

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// primerPayload builds a primer pack payload at the given stride, with
// optional padding after the declared entries.
func primerPayload(entries []PrimerEntry, itemSize, pad int) []byte {
	b := order.AppendUint32(nil, uint32(len(entries)))
	b = order.AppendUint32(b, uint32(itemSize))
	for _, e := range entries {
		item := append([]byte{e.Tag[0], e.Tag[1]}, e.Format[:]...)
		for len(item) < itemSize {
			item = append(item, 0)
		}
		b = append(b, item[:itemSize]...)
	}
	return append(b, make([]byte, pad)...)
}

func TestPrimerParsing(t *testing.T) {

	entries := []PrimerEntry{
		{Tag: NewTag(0x3c0a), Format: mustUL("060e2b34.01010101.01011502.00000000")},
		{Tag: NewTag(0x3c01), Format: mustUL("060e2b34.01010102.05200701.02010000")},
	}

	payloads := [][]byte{
		primerPayload(entries, 18, 0),
		primerPayload(entries, 24, 0),
		primerPayload(entries, 18, 14),
	}
	layouts := []string{"the standard 18 byte stride", "an oversized 24 byte stride", "14 bytes of padding after the entries"}

	for i, payload := range payloads {
		p, err := ParsePrimer(Frame{Key: primerKey}, payload, nil)

		Convey("Checking primer packs parse at their declared stride", t, func() {
			Convey(fmt.Sprintf("parsing a two entry primer with %s", layouts[i]), func() {
				Convey("Both mappings resolve and keep their wire order", func() {
					So(err, ShouldBeNil)
					So(p.Count(), ShouldEqual, 2)
					So(p.Entries(), ShouldResemble, entries)

					ful, ok := p.Lookup(NewTag(0x3c0a))
					So(ok, ShouldBeTrue)
					So(ful, ShouldResemble, entries[0].Format)
				})
			})
		})
	}

	empties := [][]byte{
		primerPayload(nil, 18, 0),
		primerPayload(nil, 0, 0),
	}

	for _, payload := range empties {
		p, err := ParsePrimer(Frame{Key: primerKey}, payload, nil)

		Convey("Checking empty primer packs parse", t, func() {
			Convey("parsing a primer with no entries", func() {
				Convey("The primer is empty and nothing resolves", func() {
					So(err, ShouldBeNil)
					So(p.Count(), ShouldEqual, 0)

					_, ok := p.Lookup(NewTag(0x3c0a))
					So(ok, ShouldBeFalse)
				})
			})
		})
	}

	badPayloads := [][]byte{
		{0x00, 0x00, 0x00, 0x01},
		primerPayload([]PrimerEntry{entries[0]}, 17, 0),
		func() []byte {
			b := primerPayload([]PrimerEntry{entries[0]}, 18, 0)
			b[3] = 5
			return b
		}(),
	}
	expectedErrs := []string{
		"s377m: primer pack of 4 bytes, wanted at least 8 at offset 0",
		"s377m: primer item size 17, wanted at least 18 at offset 0",
		"s377m: primer pack of 26 bytes, wanted 98 for 5 entries at offset 0",
	}

	for i, payload := range badPayloads {
		_, err := ParsePrimer(Frame{}, payload, nil)

		Convey("Checking malformed primer packs are structural errors", t, func() {
			Convey(fmt.Sprintf("parsing a payload expected to fail with %s", expectedErrs[i]), func() {
				Convey("The parse fails with the expected error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
				})
			})
		})
	}
}

func TestPrimerRoundTrip(t *testing.T) {

	entries := []PrimerEntry{
		{Tag: NewTag(0x3c0a), Format: mustUL("060e2b34.01010101.01011502.00000000")},
		{Tag: NewTag(0x3c01), Format: mustUL("060e2b34.01010102.05200701.02010000")},
	}
	payload := primerPayload(entries, 18, 0)

	p, parseErr := ParsePrimer(Frame{Key: primerKey}, payload, nil)

	var buf bytes.Buffer
	n, writeErr := p.WriteTo(&buf)

	Convey("Checking a parsed primer serialises back to the same bytes", t, func() {
		Convey("writing a two entry primer read at the standard stride", func() {
			Convey("The triplet is the primer key, the long form length and the original payload", func() {
				So(parseErr, ShouldBeNil)
				So(writeErr, ShouldBeNil)
				So(n, ShouldEqual, int64(buf.Len()))
				So(buf.Bytes()[:16], ShouldResemble, primerKey[:])
				So(buf.Bytes()[16:25], ShouldResemble, []byte{0x88, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2c})
				So(buf.Bytes()[25:], ShouldResemble, payload)
			})
		})
	})

	repeated := append(entries, PrimerEntry{Tag: NewTag(0x3c0a), Format: mustUL("060e2b34.01010102.05200701.08000000")})
	rp, _ := ParsePrimer(Frame{Key: primerKey}, primerPayload(repeated, 18, 0), nil)

	Convey("Checking a repeated tag keeps its first position with the last mapping", t, func() {
		Convey("parsing a primer that maps 3c0a twice", func() {
			Convey("The primer holds two mappings and 3c0a resolves to the later label", func() {
				So(rp.Count(), ShouldEqual, 2)

				ful, ok := rp.Lookup(NewTag(0x3c0a))
				So(ok, ShouldBeTrue)
				So(ful, ShouldResemble, mustUL("060e2b34.01010102.05200701.08000000"))
				So(rp.Entries()[0].Tag, ShouldResemble, NewTag(0x3c0a))
			})
		})
	})
}

func TestFieldDecoding(t *testing.T) {

	entries := []PrimerEntry{
		{Tag: NewTag(0x3c0a), Format: mustUL("060e2b34.01010101.01011502.00000000")},
		{Tag: NewTag(0x3c01), Format: mustUL("060e2b34.01010102.05200701.02010000")},
		{Tag: NewTag(0x8001), Format: mustUL("060e2b34.01010101.0e0b0102.01000000")},
	}
	p, _ := ParsePrimer(Frame{Key: primerKey}, primerPayload(entries, 18, 0), nil)

	uid := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	company := []byte{0x00, 'M', 0x00, 'e', 0x00, 't', 0x00, 'a', 0x00, 'r', 0x00, 'e', 0x00, 'x'}

	good := p.DecodeField(NewTag(0x3c0a), uid)
	text := p.DecodeField(NewTag(0x3c01), company)

	Convey("Checking registered fields decode to typed values", t, func() {
		Convey("decoding an InstanceUID and a CompanyName item", func() {
			Convey("Both carry their symbol and decoded value with no error", func() {
				So(good.Err, ShouldBeNil)
				So(good.Name, ShouldEqual, "InstanceUID")
				So(good.Value, ShouldResemble, &Reference{Subtype: RefUUID, Data: uid})
				So(text.Err, ShouldBeNil)
				So(text.Name, ShouldEqual, "CompanyName")
				So(text.Value.String(), ShouldEqual, "Metarex")
			})
		})
	})

	unknownTag := p.DecodeField(NewTag(0x9999), []byte{1, 2})
	unregistered := p.DecodeField(NewTag(0x8001), []byte{1, 2})
	badValue := p.DecodeField(NewTag(0x3c0a), []byte{1, 2, 3, 4, 5})

	reasons := []error{ErrUnknownTag, ErrNotRegistered, ErrBadValue}
	fields := []Field{unknownTag, unregistered, badValue}
	names := []string{"9999", "8001", "InstanceUID"}
	raws := [][]byte{{1, 2}, {1, 2}, {1, 2, 3, 4, 5}}

	for i, fld := range fields {
		Convey("Checking decoding degrades to raw fields instead of failing", t, func() {
			Convey(fmt.Sprintf("decoding an item that cannot resolve past %v", reasons[i]), func() {
				Convey("The field keeps its bytes and carries the reason", func() {
					So(fld.Name, ShouldEqual, names[i])
					So(fld.Value, ShouldBeNil)
					So(fld.Raw, ShouldResemble, raws[i])
					So(fld.Err, ShouldNotBeNil)
					So(errors.Is(fld.Err, reasons[i]), ShouldBeTrue)
				})
			})
		})
	}
}

func TestFieldEncoding(t *testing.T) {

	entries := []PrimerEntry{
		{Tag: NewTag(0x4801), Format: mustUL("060e2b34.01010102.01070101.00000000")},
	}
	p, _ := ParsePrimer(Frame{Key: primerKey}, primerPayload(entries, 18, 0), nil)

	raw, rawErr := p.EncodeField(NewTag(0x9999), Field{Tag: NewTag(0x9999), Raw: []byte{1, 2, 3}})
	typed, typedErr := p.EncodeField(NewTag(0x4801), Field{Tag: NewTag(0x4801), Value: &Integer{Size: 4, Bits: 7}})
	_, missingErr := p.EncodeField(NewTag(0x9999), Field{Tag: NewTag(0x9999), Value: &Integer{Size: 4, Bits: 7}})

	Convey("Checking fields encode back to wire bytes", t, func() {
		Convey("encoding a raw field, a typed field and a typed field under an unmapped tag", func() {
			Convey("Raw bytes pass through, typed values encode and the unmapped tag fails", func() {
				So(rawErr, ShouldBeNil)
				So(raw, ShouldResemble, []byte{1, 2, 3})
				So(typedErr, ShouldBeNil)
				So(typed, ShouldResemble, []byte{0, 0, 0, 7})
				So(missingErr, ShouldNotBeNil)
				So(missingErr.Error(), ShouldEqual, "s377m: local tag 9999 missing from the primer pack")
			})
		})
	})
}

func TestCustomize(t *testing.T) {

	base, _ := ParsePrimer(Frame{Key: primerKey}, primerPayload([]PrimerEntry{
		{Tag: NewTag(0x3c0a), Format: mustUL("060e2b34.01010101.01011502.00000000")},
	}, 18, 0), nil)

	mappings := map[Tag]Entry{
		NewTag(0xfff0): {Group: "Vendor", Symbol: "GPSTrace", Type: "DataValue"},
		NewTag(0xaaaa): {Group: "Vendor", Symbol: "VendorNote", Type: "UTF16"},
	}

	custom := Customize(base, nil, mappings)

	note := []byte{0x00, 'h', 0x00, 'i'}
	decoded := custom.DecodeField(NewTag(0xaaaa), note)
	trace := custom.DecodeField(NewTag(0xfff0), []byte{9, 9, 9})

	Convey("Checking vendor mappings decode through a customised primer", t, func() {
		Convey("customising a one entry primer with two vendor tags", func() {
			Convey("Vendor tags gain pseudo labels, in tag order after the originals", func() {
				So(custom.Count(), ShouldEqual, 3)
				So(custom.Entries()[0].Tag, ShouldResemble, NewTag(0x3c0a))
				So(custom.Entries()[1], ShouldResemble, PrimerEntry{Tag: NewTag(0xaaaa), Format: PseudoUL(NewTag(0xaaaa))})
				So(custom.Entries()[2], ShouldResemble, PrimerEntry{Tag: NewTag(0xfff0), Format: PseudoUL(NewTag(0xfff0))})
				So(PseudoUL(NewTag(0xfff0)), ShouldResemble, UL{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xf0})
			})

			Convey("Fields under the vendor tags decode named and typed", func() {
				So(decoded.Err, ShouldBeNil)
				So(decoded.Name, ShouldEqual, "VendorNote")
				So(decoded.Value.String(), ShouldEqual, "hi")
				So(trace.Err, ShouldBeNil)
				So(trace.Name, ShouldEqual, "GPSTrace")
				So(trace.Value, ShouldResemble, &Bytes{Data: []byte{9, 9, 9}})
			})

			Convey("The base primer is left untouched", func() {
				So(base.Count(), ShouldEqual, 1)

				_, ok := base.Lookup(NewTag(0xfff0))
				So(ok, ShouldBeFalse)

				fromBase := base.DecodeField(NewTag(0xfff0), []byte{9})
				So(errors.Is(fromBase.Err, ErrUnknownTag), ShouldBeTrue)
			})
		})
	})

	bare := Customize(nil, nil, mappings)
	copied := Customize(base, nil, nil)

	Convey("Checking the customise edge cases", t, func() {
		Convey("customising a nil primer and customising with no mappings", func() {
			Convey("A nil primer yields just the vendor tags and no mappings yields a plain copy", func() {
				So(bare.Count(), ShouldEqual, 2)
				So(copied.Count(), ShouldEqual, 1)
				So(copied.Entries(), ShouldResemble, base.Entries())
			})
		})
	})
}
