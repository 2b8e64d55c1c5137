package s377m

import (
	"bytes"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCheckCleanFile(t *testing.T) {

	file, _, _, _ := demoStream()
	m, err := ParseMXF(bytes.NewReader(file))

	var problems []error
	if err == nil {
		problems = m.Check()
	}

	Convey("Checking a well formed file passes the cross record rules", t, func() {
		Convey("running the checks over the parsed demo file", func() {
			Convey("No problems are reported", func() {
				So(err, ShouldBeNil)
				So(problems, ShouldBeEmpty)
			})
		})
	})
}

func TestCheckMutations(t *testing.T) {

	file, footerOffset, ripOffset, _ := demoStream()

	mutations := []func(m *MXF){
		func(m *MXF) { m.Partitions[0].Pack.FooterPartition = 12345 },
		func(m *MXF) { m.Partitions[1].Pack.ThisPartition++ },
		func(m *MXF) { m.RIP.Entries[0].BodySID = 9 },
		func(m *MXF) { m.RIP.Entries = m.RIP.Entries[:1] },
		func(m *MXF) { m.RIP.Entries[1].Offset = 7 },
	}
	expected := []string{
		fmt.Sprintf("s377m: pack points at a footer at byte 12345, the footer sits at %d (key 060e2b34.02050101.0d010201.01020400) at offset 0", footerOffset),
		fmt.Sprintf("s377m: pack declares this partition at byte %d, it sits at %d (key 060e2b34.02050101.0d010201.01040400) at offset %d", footerOffset+1, footerOffset, footerOffset),
		fmt.Sprintf("s377m: random index entry 0 carries body sid 9, the partition declares 1 (key 060e2b34.02050101.0d010201.01110100) at offset %d", ripOffset),
		fmt.Sprintf("s377m: random index lists 1 partitions, the file has 2 (key 060e2b34.02050101.0d010201.01110100) at offset %d", ripOffset),
		fmt.Sprintf("s377m: random index entry 1 points at byte 7, the footer partition sits at %d (key 060e2b34.02050101.0d010201.01110100) at offset %d", footerOffset, ripOffset),
	}

	for i, mutate := range mutations {

		m, err := ParseMXF(bytes.NewReader(file))

		var problems []error
		if err == nil {
			mutate(m)
			problems = m.Check()
		}

		Convey("Checking single record edits trip exactly one cross record rule", t, func() {
			Convey(fmt.Sprintf("breaking the parsed demo file so that %q", expected[i]), func() {
				Convey("The one problem is reported with its position", func() {
					So(err, ShouldBeNil)
					So(len(problems), ShouldEqual, 1)
					So(problems[0].Error(), ShouldEqual, expected[i])
				})
			})
		})
	}
}

func TestCheckShapes(t *testing.T) {

	shapes := []*MXF{
		{},
		{Partitions: []*PartitionContent{{Pack: &Partition{Kind: Body}}}},
		{Partitions: []*PartitionContent{{Pack: &Partition{Kind: Header}}, {Pack: &Partition{Kind: Header}}}},
		{Partitions: []*PartitionContent{{Pack: &Partition{Kind: Header}}, {Pack: &Partition{Kind: Footer}}, {Pack: &Partition{Kind: Body}}}},
		{Partitions: []*PartitionContent{{Pack: &Partition{Kind: Header}}, {Pack: &Partition{Kind: Footer}}, {Pack: &Partition{Kind: Footer}}}},
		{Partitions: []*PartitionContent{{Pack: &Partition{Kind: Header}}, {Pack: &Partition{Kind: GenericStream, HeaderByteCount: 5, IndexSID: 1}}}},
	}
	expected := [][]string{
		{"s377m: no partition packs in the file at offset 0"},
		{"s377m: file opens with a body partition, wanted header at offset 0"},
		{"s377m: second header partition in one file at offset 0"},
		{"s377m: footer partition before the end of the file at offset 0"},
		{"s377m: footer partition before the end of the file at offset 0",
			"s377m: two footer partitions in one file at offset 0"},
		{"s377m: metadata region of 0 bytes, the pack declares 5 at offset 0",
			"s377m: generic stream partition carries 5 metadata bytes at offset 0",
			"s377m: generic stream partition carries an index table at offset 0"},
	}

	for i, shape := range shapes {

		problems := shape.Check()
		rendered := make([]string, len(problems))
		for j, p := range problems {
			rendered[j] = p.Error()
		}

		Convey("Checking partition layouts assembled in memory", t, func() {
			Convey(fmt.Sprintf("running the checks over shape %d", i), func() {
				Convey("Each layout problem is reported", func() {
					So(rendered, ShouldResemble, expected[i])
				})
			})
		})
	}
}

func TestCheckRegionOvershoot(t *testing.T) {

	primer := setPrimer()
	var meta bytes.Buffer
	primer.WriteTo(&meta)

	over := &Partition{Kind: Header, MajorVersion: 1, MinorVersion: 2, HeaderByteCount: 10}
	var stream bytes.Buffer
	over.WriteTo(&stream)
	stream.Write(meta.Bytes())

	m, err := ParseMXF(bytes.NewReader(stream.Bytes()))

	var problems []error
	if err == nil {
		problems = m.Check()
	}

	Convey("Checking a metadata region that overruns its declared byte count", t, func() {
		Convey("parsing a header that declares 10 metadata bytes ahead of a longer primer", func() {
			Convey("The parse survives and the checks report the mismatch", func() {
				So(err, ShouldBeNil)
				So(len(problems), ShouldEqual, 1)
				So(problems[0].Error(), ShouldEqual, fmt.Sprintf(
					"s377m: metadata region of %d bytes, the pack declares 10 (key 060e2b34.02050101.0d010201.01020100) at offset 0", meta.Len()))
			})
		})
	})
}
