package s377m

import (
	"bytes"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPartitionRoundTrip(t *testing.T) {

	containers := []UL{mustUL("060e2b34.04010101.0d010301.027f0100")}
	op := mustUL("060e2b34.04010101.0d010201.01010900")

	packs := []*Partition{
		{Kind: Header, Closed: true, Complete: true, MajorVersion: 1, MinorVersion: 2, KAGSize: 1,
			FooterPartition: 481, HeaderByteCount: 312, OperationalPattern: op, BodySID: 1, EssenceContainers: containers},
		{Kind: Body, MajorVersion: 1, MinorVersion: 3, KAGSize: 512,
			ThisPartition: 700, BodyOffset: 1024, BodySID: 2, OperationalPattern: op, EssenceContainers: containers},
		{Kind: GenericStream, Closed: true, Complete: true, MajorVersion: 1, MinorVersion: 2,
			ThisPartition: 900, BodySID: 12, OperationalPattern: op, EssenceContainers: containers},
		{Kind: Footer, Closed: true, MajorVersion: 1, MinorVersion: 2,
			ThisPartition: 481, FooterPartition: 481, IndexSID: 3, IndexByteCount: 200, OperationalPattern: op},
	}
	expectedKeys := []string{
		"060e2b34.02050101.0d010201.01020400",
		"060e2b34.02050101.0d010201.01030100",
		"060e2b34.02050101.0d010201.01031100",
		"060e2b34.02050101.0d010201.01040200",
	}

	for i, pack := range packs {
		var buf bytes.Buffer
		n, writeErr := pack.WriteTo(&buf)

		f, frameErr := ReadFrame(bytes.NewReader(buf.Bytes()), 0)
		back, parseErr := ParsePartition(f, buf.Bytes()[16+f.LenSize:])

		want := *pack
		want.Frame = f

		var again bytes.Buffer
		if back != nil {
			back.WriteTo(&again)
		}

		Convey("Checking partition packs serialise and parse back", t, func() {
			Convey(fmt.Sprintf("round tripping a %s partition", pack.Kind), func() {
				Convey("The key carries the kind and status and every field survives", func() {
					So(writeErr, ShouldBeNil)
					So(n, ShouldEqual, int64(buf.Len()))
					So(frameErr, ShouldBeNil)
					So(f.Key.String(), ShouldEqual, expectedKeys[i])
					So(f.LenSize, ShouldEqual, 9)
					So(parseErr, ShouldBeNil)
					So(back, ShouldResemble, &want)
					So(again.Bytes(), ShouldResemble, buf.Bytes())
				})
			})
		})
	}
}

func TestPartitionStatusBytes(t *testing.T) {

	base := &Partition{Kind: Header, MajorVersion: 1, MinorVersion: 2}
	var buf bytes.Buffer
	base.WriteTo(&buf)
	payload := buf.Bytes()[25:]

	keys := []string{
		"060e2b34.02050101.0d010201.01020100",
		"060e2b34.02050101.0d010201.01020200",
		"060e2b34.02050101.0d010201.01020300",
		"060e2b34.02050101.0d010201.01020400",
		"060e2b34.02050101.0d010201.01030100",
		"060e2b34.02050101.0d010201.01031100",
		"060e2b34.02050101.0d010201.01040200",
		"060e2b34.02050101.0d010201.01040400",
	}
	kinds := []PartitionKind{Header, Header, Header, Header, Body, GenericStream, Footer, Footer}
	closed := []bool{false, true, false, true, false, true, true, true}
	complete := []bool{false, false, true, true, false, true, false, true}

	for i, k := range keys {
		f := Frame{Key: mustUL(k), Length: len(payload), LenSize: 9}
		p, err := ParsePartition(f, payload)

		Convey("Checking the kind and status bytes of the pack key decode", t, func() {
			Convey(fmt.Sprintf("parsing a partition with the key %s", k), func() {
				Convey(fmt.Sprintf("The partition is %s, closed %v, complete %v", kinds[i], closed[i], complete[i]), func() {
					So(err, ShouldBeNil)
					So(p.Kind, ShouldEqual, kinds[i])
					So(p.Closed, ShouldEqual, closed[i])
					So(p.Complete, ShouldEqual, complete[i])
				})
			})
		})
	}
}

func TestPartitionValidation(t *testing.T) {

	invalid := []*Partition{
		{Kind: Header, MajorVersion: 2, MinorVersion: 2},
		{Kind: Header, MajorVersion: 1, MinorVersion: 1},
		{Kind: Header, MajorVersion: 1, MinorVersion: 2, ThisPartition: 5},
		{Kind: Footer, MajorVersion: 1, MinorVersion: 2},
		{Kind: Header, MajorVersion: 1, MinorVersion: 2, BodySID: 7},
		{Kind: "sidecar", MajorVersion: 1, MinorVersion: 2},
	}
	expectedErrs := []string{
		"s377m: partition major version 2, the registered value is 1 at offset 0",
		"s377m: partition minor version 1, wanted 2 or 3 at offset 0",
		"s377m: header partition with nonzero partition offsets at offset 0",
		"s377m: open footer partition at offset 0",
		"s377m: body sid 7 with no essence containers at offset 0",
		`s377m: unknown partition kind "sidecar"`,
	}

	for i, p := range invalid {
		var buf bytes.Buffer
		_, err := p.WriteTo(&buf)

		Convey("Checking packs that break the partition rules never reach the wire", t, func() {
			Convey(fmt.Sprintf("writing a pack expected to fail with %s", expectedErrs[i]), func() {
				Convey("The write fails and nothing is written", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
					So(buf.Len(), ShouldEqual, 0)
				})
			})
		})
	}
}

func TestPartitionParseErrors(t *testing.T) {

	good := &Partition{Kind: Header, Closed: true, Complete: true, MajorVersion: 1, MinorVersion: 2,
		BodySID: 1, EssenceContainers: []UL{mustUL("060e2b34.04010101.0d010301.027f0100")}}
	var buf bytes.Buffer
	good.WriteTo(&buf)
	payload := buf.Bytes()[25:]
	key := mustUL("060e2b34.02050101.0d010201.01020400")

	tweak := func(mutate func(b []byte) []byte) []byte {
		b := make([]byte, len(payload))
		copy(b, payload)
		return mutate(b)
	}

	payloads := [][]byte{
		tweak(func(b []byte) []byte { return b[:20] }),
		tweak(func(b []byte) []byte { b[1] = 2; return b }),
		tweak(func(b []byte) []byte { b[87] = 8; return b }),
		tweak(func(b []byte) []byte { b[83] = 2; return b }),
		tweak(func(b []byte) []byte { b[83] = 0; return b }),
		tweak(func(b []byte) []byte { return b[:86] }),
	}
	expectedErrs := []string{
		"s377m: partition pack of 20 bytes, wanted at least 88 (key 060e2b34.02050101.0d010201.01020400) at offset 0",
		"s377m: partition major version 2, the registered value is 1 (key 060e2b34.02050101.0d010201.01020400) at offset 0",
		"s377m: label batch item size 8, wanted 16 (key 060e2b34.02050101.0d010201.01020400) at offset 0",
		"s377m: label batch of 24 bytes, wanted 40 for 2 labels (key 060e2b34.02050101.0d010201.01020400) at offset 0",
		"s377m: 16 trailing bytes after an empty label batch (key 060e2b34.02050101.0d010201.01020400) at offset 0",
		"s377m: label batch of 6 bytes, wanted at least 8 (key 060e2b34.02050101.0d010201.01020400) at offset 0",
	}

	for i, in := range payloads {
		f := Frame{Key: key, Length: len(in), LenSize: 9}
		_, err := ParsePartition(f, in)

		Convey("Checking malformed partition packs are structural errors", t, func() {
			Convey(fmt.Sprintf("parsing a payload expected to fail with %s", expectedErrs[i]), func() {
				Convey("The parse fails with the expected error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
				})
			})
		})
	}

	_, keyErr := ParsePartition(Frame{Key: mustUL("060e2b34.01020101.0d010301.15010500")}, payload)

	Convey("Checking a non partition key is rejected outright", t, func() {
		Convey("parsing a partition from an essence key", func() {
			Convey("The parse fails before touching the payload", func() {
				So(keyErr, ShouldNotBeNil)
				So(keyErr.Error(), ShouldEqual, "s377m: not a partition pack key (key 060e2b34.01020101.0d010301.15010500) at offset 0")
			})
		})
	})
}
