package s377m

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestULParsing(t *testing.T) {

	inputs := []string{
		"060e2b34.02050101.0d010201.01020400",
		"urn:smpte:ul:060e2b34.02050101.0d010201.01020400",
		"060e2b34020501010d01020101020400",
	}
	expected := UL{0x06, 0x0e, 0x2b, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0d, 0x01, 0x02, 0x01, 0x01, 0x02, 0x04, 0x00}

	for _, in := range inputs {
		u, err := ParseUL(in)

		Convey("Checking universal labels parse from their text forms", t, func() {
			Convey(fmt.Sprintf("parsing the label %s", in), func() {
				Convey("No error is returned and the label matches the expected bytes", func() {
					So(err, ShouldBeNil)
					So(u, ShouldResemble, expected)
					So(u.String(), ShouldEqual, "060e2b34.02050101.0d010201.01020400")
				})
			})
		})
	}

	short, shortErr := ParseUL("060e2b34.0205")
	_, hexErr := ParseUL("zz0e2b34.02050101.0d010201.01020400")

	Convey("Checking invalid labels are rejected", t, func() {
		Convey("parsing a label that is too short and one that is not hex", func() {
			Convey("Both return errors and no label", func() {
				So(short, ShouldResemble, UL{})
				So(shortErr, ShouldNotBeNil)
				So(shortErr.Error(), ShouldEqual, `s377m: universal label "060e2b34.0205" is 6 bytes, wanted 16`)
				So(hexErr, ShouldNotBeNil)
			})
		})
	})
}

func TestLocalTags(t *testing.T) {

	tag := NewTag(0x3c0a)

	Convey("Checking local tags convert between their forms", t, func() {
		Convey("building the tag 0x3c0a", func() {
			Convey("The bytes, string and numeric forms all line up", func() {
				So(tag, ShouldResemble, Tag{0x3c, 0x0a})
				So(tag.String(), ShouldEqual, "3c0a")
				So(tag.Uint16(), ShouldEqual, uint16(0x3c0a))
			})
		})
	})
}

func TestBERDecode(t *testing.T) {

	goodInputs := [][]byte{
		{0x00},
		{0x05},
		{0x7f},
		{0x81, 0x80},
		{0x82, 0x01, 0x00},
		{0x83, 0x0f, 0x42, 0x40},
		{0x88, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00},
	}
	expectedLengths := []int{0, 5, 127, 128, 256, 1000000, 256}
	expectedSizes := []int{1, 1, 1, 2, 3, 4, 9}

	for i, in := range goodInputs {
		length, size, err := BERDecode(in)

		Convey("Checking BER length fields decode", t, func() {
			Convey(fmt.Sprintf("decoding the field % 02x", in), func() {
				Convey(fmt.Sprintf("The length is %d over %d bytes", expectedLengths[i], expectedSizes[i]), func() {
					So(err, ShouldBeNil)
					So(length, ShouldEqual, expectedLengths[i])
					So(size, ShouldEqual, expectedSizes[i])
				})
			})
		})
	}

	badInputs := [][]byte{
		{},
		{0x80},
		{0x89, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
		{0x84, 0x01},
		{0x88, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	}
	expectedErrs := []string{
		"s377m: empty length field",
		"s377m: unsupported BER length of 0 bytes",
		"s377m: unsupported BER length of 9 bytes",
		"s377m: truncated BER length, wanted 5 bytes got 2",
		"s377m: BER length 0x8000000000000000 out of range",
	}

	for i, in := range badInputs {
		_, _, err := BERDecode(in)

		Convey("Checking malformed BER length fields are rejected", t, func() {
			Convey(fmt.Sprintf("decoding the field % 02x", in), func() {
				Convey(fmt.Sprintf("The decode fails with %s", expectedErrs[i]), func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
				})
			})
		})
	}
}

func TestBEREncode(t *testing.T) {

	lengths := []int{0, 5, 127, 128, 256, 127, 256, 5}
	sizes := []int{0, 0, 0, 0, 0, 1, 3, 9}
	expected := [][]byte{
		{0x00},
		{0x05},
		{0x7f},
		{0x81, 0x80},
		{0x82, 0x01, 0x00},
		{0x7f},
		{0x82, 0x01, 0x00},
		{0x88, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05},
	}

	for i, length := range lengths {
		out, err := BEREncode(length, sizes[i])

		Convey("Checking BER length fields encode", t, func() {
			Convey(fmt.Sprintf("encoding a length of %d with a field width of %d", length, sizes[i]), func() {
				Convey("The field matches the expected bytes and decodes back to the length", func() {
					So(err, ShouldBeNil)
					So(out, ShouldResemble, expected[i])

					back, size, decErr := BERDecode(out)
					So(decErr, ShouldBeNil)
					So(back, ShouldEqual, length)
					So(size, ShouldEqual, len(out))
				})
			})
		})
	}

	badLengths := []int{-1, 128, 256, 5}
	badSizes := []int{0, 1, 2, 10}
	expectedErrs := []string{
		"s377m: negative length -1",
		"s377m: length 128 does not fit the short form",
		"s377m: length 256 does not fit 1 BER bytes",
		"s377m: unsupported length field width 10",
	}

	for i, length := range badLengths {
		_, err := BEREncode(length, badSizes[i])

		Convey("Checking lengths that do not fit their field are rejected", t, func() {
			Convey(fmt.Sprintf("encoding a length of %d with a field width of %d", length, badSizes[i]), func() {
				Convey(fmt.Sprintf("The encode fails with %s", expectedErrs[i]), func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
				})
			})
		})
	}
}

func TestReadFrame(t *testing.T) {

	key := mustUL("060e2b34.02050101.0d010201.01050100")

	streams := [][]byte{
		append(key[:], 0x03),
		append(key[:], 0x83, 0x00, 0x00, 0x10),
		append(key[:], 0x88, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x50),
	}
	expected := []Frame{
		{Key: key, Length: 3, LenSize: 1, Offset: 42},
		{Key: key, Length: 16, LenSize: 4, Offset: 42},
		{Key: key, Length: 80, LenSize: 9, Offset: 42},
	}

	for i, in := range streams {
		f, err := ReadFrame(bytes.NewReader(in), 42)

		Convey("Checking key and length fields read off a stream", t, func() {
			Convey(fmt.Sprintf("reading a triplet header of % 02x", in[16:]), func() {
				Convey("The frame carries the key, length and stream position", func() {
					So(err, ShouldBeNil)
					So(f, ShouldResemble, expected[i])
					So(f.TotalLength(), ShouldEqual, 16+expected[i].LenSize+expected[i].Length)
				})
			})
		})
	}

	_, eofErr := ReadFrame(bytes.NewReader(nil), 0)

	Convey("Checking a stream that ends cleanly reads as the end of the file", t, func() {
		Convey("reading a frame from an empty stream", func() {
			Convey("The read returns io.EOF untouched", func() {
				So(eofErr, ShouldEqual, io.EOF)
			})
		})
	})

	badStreams := [][]byte{
		key[:8],
		key[:],
		append(key[:], 0x80),
		append(key[:], 0x84, 0x01, 0x02),
	}
	expectedErrs := []string{
		"s377m: truncated key: unexpected EOF at offset 0",
		"s377m: missing length field: EOF (key 060e2b34.02050101.0d010201.01050100) at offset 0",
		"s377m: unsupported BER length of 0 bytes (key 060e2b34.02050101.0d010201.01050100) at offset 0",
		"s377m: truncated length field: unexpected EOF (key 060e2b34.02050101.0d010201.01050100) at offset 0",
	}

	for i, in := range badStreams {
		_, err := ReadFrame(bytes.NewReader(in), 0)

		Convey("Checking truncated triplet headers are structural errors", t, func() {
			Convey(fmt.Sprintf("reading a frame from %d bytes", len(in)), func() {
				Convey(fmt.Sprintf("The read fails with %s", expectedErrs[i]), func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldEqual, expectedErrs[i])
				})
			})
		})
	}
}

func TestKeyClassification(t *testing.T) {

	keys := []string{
		"060e2b34.02050101.0d010201.01020400",
		"060e2b34.02050101.0d010201.01020100",
		"060e2b34.02050101.0d010201.01030200",
		"060e2b34.02050101.0d010201.01031100",
		"060e2b34.02050101.0d010201.01040400",
		"060e2b34.02050109.0d010201.01020400",
		"060e2b34.02050101.0d010201.01020500",
		"060e2b34.02050101.0d010201.01020401",
		"060e2b34.02050101.0d010201.01110100",
		"060e2b34.02050101.0d010201.01050100",
		"060e2b34.01010102.03010210.01000000",
		"060e2b34.01010101.03010210.01000000",
		"060e2b34.01020101.0d010301.15010500",
	}
	partition := []bool{true, true, true, true, true, true, false, false, false, false, false, false, false}
	rip := []bool{false, false, false, false, false, false, false, false, true, false, false, false, false}
	primer := []bool{false, false, false, false, false, false, false, false, false, true, false, false, false}
	fill := []bool{false, false, false, false, false, false, false, false, false, false, true, true, false}

	for i, k := range keys {
		u := mustUL(k)

		Convey("Checking the well known keys classify", t, func() {
			Convey(fmt.Sprintf("classifying the key %s", k), func() {
				Convey(fmt.Sprintf("partition %v, rip %v, primer %v, fill %v", partition[i], rip[i], primer[i], fill[i]), func() {
					So(IsPartitionKey(u), ShouldEqual, partition[i])
					So(IsRIPKey(u), ShouldEqual, rip[i])
					So(IsPrimerKey(u), ShouldEqual, primer[i])
					So(IsFillKey(u), ShouldEqual, fill[i])
				})
			})
		})
	}
}

func TestOpaqueRecords(t *testing.T) {

	fill := NewFill(32)
	var authored bytes.Buffer
	n, authErr := fill.WriteTo(&authored)

	Convey("Checking fill authored in memory takes the long form length", t, func() {
		Convey("writing a 32 byte fill item", func() {
			Convey("The triplet is the key, a nine byte length field and the zero payload", func() {
				So(authErr, ShouldBeNil)
				So(n, ShouldEqual, int64(16+9+32))
				So(fill.IsFill(), ShouldBeTrue)
				So(authored.Bytes()[:16], ShouldResemble, []byte{0x06, 0x0e, 0x2b, 0x34, 0x01, 0x01, 0x01, 0x02, 0x03, 0x01, 0x02, 0x10, 0x01, 0x00, 0x00, 0x00})
				So(authored.Bytes()[16:25], ShouldResemble, []byte{0x88, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20})
			})
		})
	})

	// a record read with a short length field keeps it on rewrite
	read := ParseOpaque(Frame{Key: mustUL("060e2b34.01020101.0d010301.15010500"), Length: 3, LenSize: 1}, []byte{1, 2, 3})
	var rewritten bytes.Buffer
	rn, rwErr := read.WriteTo(&rewritten)

	Convey("Checking opaque records keep the length field width they were read with", t, func() {
		Convey("rewriting a record read with a one byte length field", func() {
			Convey("The written triplet uses the short form", func() {
				So(rwErr, ShouldBeNil)
				So(rn, ShouldEqual, int64(16+1+3))
				So(rewritten.Bytes()[16:], ShouldResemble, []byte{0x03, 1, 2, 3})
			})
		})
	})
}
