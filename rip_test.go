package s377m

import (
	"bytes"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRandomIndexRoundTrip(t *testing.T) {

	rip := &RandomIndex{Entries: []RIPEntry{
		{BodySID: 1, Offset: 0},
		{BodySID: 0, Offset: 481},
	}}

	var buf bytes.Buffer
	n, writeErr := rip.WriteTo(&buf)

	f, frameErr := ReadFrame(bytes.NewReader(buf.Bytes()), 0)
	back, parseErr := ParseRandomIndex(f, buf.Bytes()[16+f.LenSize:])

	Convey("Checking the random index pack serialises and parses back", t, func() {
		Convey("round tripping a two partition index", func() {
			Convey("The entries survive and the trailing overall length matches the pack", func() {
				So(writeErr, ShouldBeNil)
				So(n, ShouldEqual, int64(buf.Len()))
				So(buf.Len(), ShouldEqual, 16+9+2*12+4)
				So(frameErr, ShouldBeNil)
				So(f.Key, ShouldResemble, ripKey)
				So(parseErr, ShouldBeNil)
				So(back.Entries, ShouldResemble, rip.Entries)
			})
		})
	})
}

func TestRandomIndexErrors(t *testing.T) {

	good := &RandomIndex{Entries: []RIPEntry{{BodySID: 1, Offset: 0}}}
	var buf bytes.Buffer
	good.WriteTo(&buf)
	payload := buf.Bytes()[25:]

	tweak := func(mutate func(b []byte) []byte) []byte {
		b := make([]byte, len(payload))
		copy(b, payload)
		return mutate(b)
	}

	payloads := [][]byte{
		tweak(func(b []byte) []byte { return b[:3] }),
		tweak(func(b []byte) []byte { return append(b, 0) }),
		tweak(func(b []byte) []byte { b[len(b)-1] = 0xff; return b }),
	}
	lengths := []int{3, 17, 16}
	expectedErrs := []string{
		"s377m: random index pack of 3 bytes, wanted at least 4 (key 060e2b34.02050101.0d010201.01110100) at offset 0",
		"s377m: random index entries of 13 bytes, not a run of 12 (key 060e2b34.02050101.0d010201.01110100) at offset 0",
		"s377m: random index pack declares 255 bytes, the pack is 41 (key 060e2b34.02050101.0d010201.01110100) at offset 0",
	}

	for i, in := range payloads {
		f := Frame{Key: ripKey, Length: lengths[i], LenSize: 9}
		_, err := ParseRandomIndex(f, in)

		Convey("Checking malformed random index packs are structural errors", t, func() {
			Convey(fmt.Sprintf("parsing a payload expected to fail with %s", expectedErrs[i]), func() {
				Convey("The parse fails with the expected error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
				})
			})
		})
	}
}
