package s377m

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {

	reg := NewRP210()

	entry, err := reg.Resolve(mustUL("060e2b34.01010101.01011502.00000000"))

	Convey("Checking the standard registry resolves its labels", t, func() {
		Convey("resolving the InstanceUID label", func() {
			Convey("The entry names the field and its codec", func() {
				So(err, ShouldBeNil)
				So(entry, ShouldResemble, Entry{Group: "InterchangeObject", Symbol: "InstanceUID", Type: "UUID"})
			})
		})
	})

	missing := mustUL("060e2b34.01010101.0e0b0102.01000000")
	_, missErr := reg.Resolve(missing)

	Convey("Checking labels outside the register are reported", t, func() {
		Convey("resolving a vendor label", func() {
			Convey("The resolve fails with the not registered reason", func() {
				So(missErr, ShouldNotBeNil)
				So(errors.Is(missErr, ErrNotRegistered), ShouldBeTrue)
				So(missErr.Error(), ShouldEqual, "no entry for 060e2b34.01010101.0e0b0102.01000000: universal label not registered")
			})
		})
	})

	injected := NewRP210()
	injected.Inject(map[UL]Entry{missing: {Group: "Vendor", Symbol: "GPSTrace", Type: "DataValue"}})

	after, afterErr := injected.Resolve(missing)
	_, untouched := reg.Resolve(missing)

	Convey("Checking injected entries stay with their instance", t, func() {
		Convey("injecting a vendor label into one registry of two", func() {
			Convey("The injected registry resolves it and the other still does not", func() {
				So(afterErr, ShouldBeNil)
				So(after.Symbol, ShouldEqual, "GPSTrace")
				So(untouched, ShouldNotBeNil)
			})
		})
	})

	_, convErr := reg.Convert(mustUL("060e2b34.01010102.05200701.02010000"), []byte{0, 'h', 0})

	Convey("Checking conversion wraps codec failures with the field symbol", t, func() {
		Convey("converting a CompanyName with an odd byte count", func() {
			Convey("The error names the field and the bad value reason", func() {
				So(convErr, ShouldNotBeNil)
				So(errors.Is(convErr, ErrBadValue), ShouldBeTrue)
				So(convErr.Error(), ShouldEqual, "CompanyName: utf-16 value of 3 bytes: value does not match its registered type")
			})
		})
	})
}

func TestValueRoundTrips(t *testing.T) {

	container := mustUL("060e2b34.04010101.0d010301.027f0100")
	ulBatch := order.AppendUint32(nil, 1)
	ulBatch = order.AppendUint32(ulBatch, 16)
	ulBatch = append(ulBatch, container[:]...)

	refBatch := order.AppendUint32(nil, 1)
	refBatch = order.AppendUint32(refBatch, 16)
	refBatch = append(refBatch, bytes.Repeat([]byte{0xaa}, 16)...)

	kinds := []string{
		"UInt8", "UInt16", "UInt32", "UInt64",
		"Int8", "Int16", "Int32", "Int64", "Position", "Length",
		"Boolean", "UTF16", "Timestamp", "Rational", "VersionType", "ProductVersion",
		"UUID", "UL", "PackageID", "DataValue",
		"ULBatch", "StrongReferenceVector",
	}
	inputs := [][]byte{
		{0x05}, {0x01, 0x00}, {0, 0, 0, 5}, {0, 0, 0, 0, 0, 0, 0, 9},
		{0x80}, {0xff, 0xfe}, {0xff, 0xff, 0xff, 0xff}, bytes.Repeat([]byte{0xff}, 8), {0, 0, 0, 0, 0, 0, 0, 42}, bytes.Repeat([]byte{0xff}, 8),
		{0x01}, {0x00, 'M', 0x00, 'e', 0x00, 't', 0x00, 'a', 0x00, 'r', 0x00, 'e', 0x00, 'x'},
		{0x07, 0xe7, 7, 1, 12, 30, 45, 0}, {0, 0, 0, 24, 0, 0, 0, 1}, {1, 3}, {0, 1, 0, 2, 0, 3, 0, 4, 0, 5},
		bytes.Repeat([]byte{0xaa}, 16), container[:], bytes.Repeat([]byte{0xdd}, 32), {1, 2, 3},
		ulBatch, refBatch,
	}
	rendered := []string{
		"5", "256", "5", "9",
		"-128", "-2", "-1", "-1", "42", "-1",
		"true", "Metarex", "2023-07-01 12:30:45.000", "24/1", "1.3", "1.2.3.4.5",
		"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "060e2b34.04010101.0d010301.027f0100", strings.Repeat("dd", 32), "010203",
		"[060e2b34.04010101.0d010301.027f0100]", "[aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa]",
	}

	for i, kind := range kinds {
		v, err := decodeValue(kind, inputs[i])

		var back []byte
		var encErr error
		if v != nil {
			back, encErr = v.Encode()
		}

		Convey("Checking each registered wire type decodes and re-encodes", t, func() {
			Convey(fmt.Sprintf("round tripping a %s value of % 02x", kind, inputs[i]), func() {
				Convey(fmt.Sprintf("The value renders as %s and encodes back to the same bytes", rendered[i]), func() {
					So(err, ShouldBeNil)
					So(v.String(), ShouldEqual, rendered[i])
					So(encErr, ShouldBeNil)
					So(back, ShouldResemble, inputs[i])
				})
			})
		})
	}

	loose, _ := decodeValue("Boolean", []byte{0x02})
	canon, _ := loose.Encode()

	Convey("Checking booleans normalise on the way back out", t, func() {
		Convey("decoding the nonzero byte 0x02", func() {
			Convey("The value is true and re-encodes as the canonical 0x01", func() {
				So(loose.String(), ShouldEqual, "true")
				So(canon, ShouldResemble, []byte{0x01})
			})
		})
	})
}

func TestValueDecodeErrors(t *testing.T) {

	kinds := []string{
		"UUID", "UInt32", "Boolean", "UTF16", "Timestamp", "Rational", "VersionType", "ProductVersion", "PackageID",
		"ULBatch", "ULBatch", "ULBatch", "Mystery",
	}
	inputs := [][]byte{
		{1, 2, 3, 4, 5}, {1, 2}, {1, 2}, {0, 'h', 0}, bytes.Repeat([]byte{0}, 7), bytes.Repeat([]byte{0}, 7), {1, 2, 3}, bytes.Repeat([]byte{0}, 9), bytes.Repeat([]byte{0}, 16),
		{0, 0, 0, 1, 0, 0, 0, 16}, {0, 0, 0, 0, 0, 0, 0, 16, 0xff}, {1, 2, 3, 4}, {1},
	}
	reasons := []error{
		ErrBadValue, ErrBadValue, ErrBadValue, ErrBadValue, ErrBadValue, ErrBadValue, ErrBadValue, ErrBadValue, ErrBadValue,
		ErrBadValue, ErrBadValue, ErrBadValue, ErrNotRegistered,
	}

	for i, kind := range kinds {
		_, err := decodeValue(kind, inputs[i])

		Convey("Checking bytes that do not fit their type are rejected", t, func() {
			Convey(fmt.Sprintf("decoding % 02x as a %s", inputs[i], kind), func() {
				Convey("The decode fails with the expected reason", func() {
					So(err, ShouldNotBeNil)
					So(errors.Is(err, reasons[i]), ShouldBeTrue)
				})
			})
		})
	}
}

func TestValueEncodeErrors(t *testing.T) {

	values := []Value{
		&Integer{Size: 3, Bits: 1},
		&Integer{Size: 1, Bits: 256},
		&Integer{Size: 1, Signed: true, Bits: 200},
		&Array{Kind: "UL", ItemSize: 16, Items: []Value{&Integer{Size: 4, Bits: 1}}},
	}
	expectedErrs := []string{
		"3 byte integer: value does not match its registered type",
		"256 does not fit 1 bytes: value does not match its registered type",
		"200 does not fit 1 signed bytes: value does not match its registered type",
		"UL batch item of 4 bytes, wanted 16: value does not match its registered type",
	}

	for i, v := range values {
		_, err := v.Encode()

		Convey("Checking values that cannot reach the wire fail to encode", t, func() {
			Convey(fmt.Sprintf("encoding a value expected to fail with %s", expectedErrs[i]), func() {
				Convey("The encode fails with the bad value reason", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
					So(errors.Is(err, ErrBadValue), ShouldBeTrue)
				})
			})
		})
	}
}
