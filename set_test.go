package s377m

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// localItem renders one tag, length, value item of a set payload.
func localItem(tag Tag, value []byte) []byte {
	b := []byte{tag[0], tag[1]}
	b = order.AppendUint16(b, uint16(len(value)))
	return append(b, value...)
}

// setPrimer is the tag dictionary the set tests parse through.
func setPrimer() *Primer {
	entries := []PrimerEntry{
		{Tag: NewTag(0x3c0a), Format: mustUL("060e2b34.01010101.01011502.00000000")},
		{Tag: NewTag(0x3b02), Format: mustUL("060e2b34.01010102.07020110.02040000")},
		{Tag: NewTag(0x1901), Format: mustUL("060e2b34.01010102.06010104.02010000")},
		{Tag: NewTag(0x1902), Format: mustUL("060e2b34.01010102.01020210.02010000")},
		{Tag: NewTag(0x3b03), Format: mustUL("060e2b34.01010104.06010104.01080000")},
		{Tag: NewTag(0x1e01), Format: mustUL("060e2b34.01010102.06010104.05010000")},
		{Tag: NewTag(0x8001), Format: mustUL("060e2b34.01010101.0e0b0102.01000000")},
	}
	p, _ := ParsePrimer(Frame{Key: primerKey}, primerPayload(entries, 18, 0), nil)
	return p
}

var (
	prefaceKey = mustUL("060e2b34.02530101.0d010101.01012f00")
	storageKey = mustUL("060e2b34.02530101.0d010101.01011800")
)

func TestSetParsing(t *testing.T) {

	uid := bytes.Repeat([]byte{0xaa}, 16)
	stamp := []byte{0x07, 0xe7, 7, 1, 12, 30, 45, 0}

	payload := localItem(NewTag(0x3c0a), uid)
	payload = append(payload, localItem(NewTag(0x3b02), stamp)...)
	payload = append(payload, localItem(NewTag(0x8001), []byte{1, 2, 3})...)
	payload = append(payload, localItem(NewTag(0x9999), []byte{7})...)

	s, err := ParseSet(Frame{Key: prefaceKey}, payload, setPrimer())

	Convey("Checking metadata sets parse into their dual views", t, func() {
		Convey("parsing a Preface with typed, unregistered and unmapped items", func() {
			Convey("The set is named and every item is reachable by name and by tag", func() {
				So(err, ShouldBeNil)
				So(s.Kind, ShouldEqual, "Preface")
				So(s.Dark, ShouldBeFalse)
				So(len(s.Fields()), ShouldEqual, 4)

				byName, nameOK := s.Field("InstanceUID")
				byTag, tagOK := s.FieldByTag(NewTag(0x3c0a))
				So(nameOK, ShouldBeTrue)
				So(tagOK, ShouldBeTrue)
				So(byName == byTag, ShouldBeTrue)

				id, idOK := s.InstanceID()
				So(idOK, ShouldBeTrue)
				So(id, ShouldResemble, ID(uid))
			})

			Convey("Typed items decode and degraded items keep their bytes and reasons", func() {
				date, _ := s.Field("LastModifiedDate")
				So(date.Err, ShouldBeNil)
				So(date.Value.String(), ShouldEqual, "2023-07-01 12:30:45.000")

				unregistered, _ := s.Field("8001")
				So(unregistered.Raw, ShouldResemble, []byte{1, 2, 3})
				So(errors.Is(unregistered.Err, ErrNotRegistered), ShouldBeTrue)

				unmapped, _ := s.Field("9999")
				So(unmapped.Raw, ShouldResemble, []byte{7})
				So(errors.Is(unmapped.Err, ErrUnknownTag), ShouldBeTrue)
			})
		})
	})

	dark, darkErr := ParseSet(Frame{Key: mustUL("060e2b34.02530101.0d010101.01017b00")}, localItem(NewTag(0x3c0a), uid), setPrimer())

	Convey("Checking keys outside the register parse as dark sets", t, func() {
		Convey("parsing a set with an unregistered group key", func() {
			Convey("The set is dark and its items still resolve through the primer", func() {
				So(darkErr, ShouldBeNil)
				So(dark.Kind, ShouldEqual, DarkKind)
				So(dark.Dark, ShouldBeTrue)

				fld, ok := dark.Field("InstanceUID")
				So(ok, ShouldBeTrue)
				So(fld.Err, ShouldBeNil)
			})
		})
	})

	bare, bareErr := ParseSet(Frame{Key: prefaceKey}, localItem(NewTag(0x3c0a), uid), nil)

	Convey("Checking a set parsed with no primer keeps everything raw", t, func() {
		Convey("parsing a Preface before any primer pack", func() {
			Convey("The item is unresolved with the unknown tag reason", func() {
				So(bareErr, ShouldBeNil)

				fld, ok := bare.Field("3c0a")
				So(ok, ShouldBeTrue)
				So(fld.Value, ShouldBeNil)
				So(errors.Is(fld.Err, ErrUnknownTag), ShouldBeTrue)

				_, idOK := bare.InstanceID()
				So(idOK, ShouldBeFalse)
			})
		})
	})
}

func TestSetStructuralErrors(t *testing.T) {

	truncatedItem := localItem(NewTag(0x3c0a), bytes.Repeat([]byte{0xaa}, 16))

	payloads := [][]byte{
		{0x3c},
		truncatedItem[:len(truncatedItem)-2],
	}
	keys := []UL{prefaceKey, prefaceKey}
	expectedErrs := []string{
		"s377m: local item header overruns the set at byte 0 (key 060e2b34.02530101.0d010101.01012f00) at offset 0",
		"s377m: local item 3c0a of 16 bytes overruns the set (key 060e2b34.02530101.0d010101.01012f00) at offset 0",
	}

	for i, payload := range payloads {
		_, err := ParseSet(Frame{Key: keys[i]}, payload, setPrimer())

		Convey("Checking item runs that overrun the set are structural errors", t, func() {
			Convey(fmt.Sprintf("parsing a payload expected to fail with %s", expectedErrs[i]), func() {
				Convey("The parse fails with the expected error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
				})
			})
		})
	}

	_, syntaxErr := ParseSet(Frame{Key: mustUL("060e2b34.02060101.0d010101.01012f00")}, nil, setPrimer())

	Convey("Checking registered groups in a non local syntax are rejected", t, func() {
		Convey("parsing a Preface key with syntax byte 0x06", func() {
			Convey("The parse fails rather than misreading the items", func() {
				So(syntaxErr, ShouldNotBeNil)
				So(syntaxErr.Error(), ShouldEqual, "s377m: Preface carries local tag syntax 0x06, only local sets (0x53) are supported (key 060e2b34.02060101.0d010101.01012f00) at offset 0")
			})
		})
	})
}

func TestSetRoundTrip(t *testing.T) {

	uid := bytes.Repeat([]byte{0xaa}, 16)
	container := mustUL("060e2b34.04010101.0d010301.027f0100")

	batch := order.AppendUint32(nil, 1)
	batch = order.AppendUint32(batch, 16)
	batch = append(batch, container[:]...)

	payload := localItem(NewTag(0x3c0a), uid)
	payload = append(payload, localItem(NewTag(0x1902), batch)...)
	payload = append(payload, localItem(NewTag(0x8001), []byte{1, 2, 3})...)

	s, parseErr := ParseSet(Frame{Key: prefaceKey}, payload, setPrimer())

	var buf bytes.Buffer
	n, writeErr := s.WriteTo(&buf)

	Convey("Checking sets serialise back to their original bytes", t, func() {
		Convey("round tripping a Preface with typed, batch and raw items", func() {
			Convey("The written triplet is the key, the long form length and the parsed payload", func() {
				So(parseErr, ShouldBeNil)

				containers, _ := s.Field("EssenceContainers")
				So(containers.Err, ShouldBeNil)
				So(containers.Value, ShouldHaveSameTypeAs, &Array{})

				So(writeErr, ShouldBeNil)
				So(n, ShouldEqual, int64(buf.Len()))
				So(buf.Bytes()[:16], ShouldResemble, prefaceKey[:])
				So(buf.Bytes()[25:], ShouldResemble, payload)
			})
		})
	})

	oversized, _ := s.Field("8001")
	oversized.Raw = make([]byte, 0x10000)
	var discard bytes.Buffer
	_, bigErr := s.WriteTo(&discard)

	Convey("Checking items past the local item limit refuse to serialise", t, func() {
		Convey("growing a raw item to 65536 bytes and rewriting the set", func() {
			Convey("The write fails naming the item", func() {
				So(bigErr, ShouldNotBeNil)
				So(bigErr.Error(), ShouldEqual, "s377m: field 8001 of Preface is 65536 bytes, past the local item limit")
			})
		})
	})
}

func TestSetGraph(t *testing.T) {

	idA := bytes.Repeat([]byte{0xaa}, 16)
	idB := bytes.Repeat([]byte{0xbb}, 16)
	idC := bytes.Repeat([]byte{0xcc}, 16)

	prefacePayload := localItem(NewTag(0x3c0a), idA)
	prefacePayload = append(prefacePayload, localItem(NewTag(0x1901), idB)...)
	prefacePayload = append(prefacePayload, localItem(NewTag(0x3b03), idC)...)

	packagesBatch := order.AppendUint32(nil, 1)
	packagesBatch = order.AppendUint32(packagesBatch, 16)
	packagesBatch = append(packagesBatch, idA...)

	storagePayload := localItem(NewTag(0x3c0a), idB)
	storagePayload = append(storagePayload, localItem(NewTag(0x1e01), packagesBatch)...)

	primer := setPrimer()
	preface, prefErr := ParseSet(Frame{Key: prefaceKey}, prefacePayload, primer)
	storage, storErr := ParseSet(Frame{Key: storageKey}, storagePayload, primer)

	idx := BuildIndex([]*Set{preface, storage})

	var buf bytes.Buffer
	preface.Describe(&buf, idx, make(map[ID]bool), 0)

	expected := "Preface (060e2b34.02530101.0d010101.01012f00, 0 bytes at 0)\n" +
		"  InstanceUID: aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa\n" +
		"  ContentStorage:\n" +
		"    ContentStorage (060e2b34.02530101.0d010101.01011800, 0 bytes at 0)\n" +
		"      InstanceUID: bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb\n" +
		"      Packages (1):\n" +
		"        -: <-> aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa\n" +
		"  PrimaryPackage: cccccccc-cccc-cccc-cccc-cccccccccccc (broken reference)\n"

	Convey("Checking the reference graph walk", t, func() {
		Convey("describing a Preface that references a ContentStorage pointing back at it", func() {
			Convey("Strong references nest, the cycle becomes a back reference and the missing target is flagged", func() {
				So(prefErr, ShouldBeNil)
				So(storErr, ShouldBeNil)
				So(len(idx), ShouldEqual, 2)
				So(buf.String(), ShouldEqual, expected)
			})
		})
	})
}
