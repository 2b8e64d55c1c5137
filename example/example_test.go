package example

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	s377m "github.com/metarex-media/mxf-s377m"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func TestGPSDemoFile(t *testing.T) {

	file, buildErr := BuildGPSFile(
		GPSPoint{Lat: 51.5072, Long: -0.1276},
		GPSPoint{Lat: 51.5033, Long: -0.1196},
	)

	var tree bytes.Buffer
	var sum Summary
	var inspectErr error
	if buildErr == nil {
		sum, inspectErr = InspectGPSFile(bytes.NewReader(file), &tree)
	}

	Convey("Checking the demo file builds and inspects cleanly", t, func() {
		Convey("building a two point gps file and inspecting it back", func() {
			Convey("Both payloads pass the schema and the structure has no problems", func() {
				So(buildErr, ShouldBeNil)
				So(inspectErr, ShouldBeNil)
				So(sum, ShouldResemble, Summary{Partitions: 2, Sets: 2, GPSPayloads: 2})
				So(tree.String(), ShouldContainSubstring,
					"header partition at 0 (closed, complete): 2 metadata sets, 0 index segments, 2 essence triplets\n")
				So(tree.String(), ShouldContainSubstring, "Preface (")
				So(tree.String(), ShouldContainSubstring, "random index pack at")
			})
		})
	})

	junk, junkErr := BuildGPSFile(GPSPoint{Lat: 200, Long: 0})

	var junkSum Summary
	var junkInspectErr error
	if junkErr == nil {
		junkSum, junkInspectErr = InspectGPSFile(bytes.NewReader(junk), &bytes.Buffer{})
	}

	Convey("Checking payloads outside the schema are counted out", t, func() {
		Convey("inspecting a file whose point has an impossible latitude", func() {
			Convey("The inspection finds no valid gps payloads", func() {
				So(junkErr, ShouldBeNil)
				So(junkInspectErr, ShouldBeNil)
				So(junkSum.GPSPayloads, ShouldEqual, 0)
				So(junkSum.Partitions, ShouldEqual, 2)
			})
		})
	})
}

func TestGPSDemoReports(t *testing.T) {

	dir := t.TempDir()
	demoErr := RunGPSDemo(dir)

	mxfBytes, mxfErr := os.ReadFile(filepath.Join(dir, "gpsdemo.mxf"))
	txtBytes, txtErr := os.ReadFile(filepath.Join(dir, "gpsdemo.txt"))
	ymlBytes, ymlErr := os.ReadFile(filepath.Join(dir, "gpsdemo.yml"))

	var m *s377m.MXF
	var parseErr error
	var rewrite bytes.Buffer
	if mxfErr == nil {
		m, parseErr = s377m.ParseMXF(bytes.NewReader(mxfBytes))
		if parseErr == nil {
			m.WriteTo(&rewrite)
		}
	}

	var report Summary
	var unmarshalErr error
	if ymlErr == nil {
		unmarshalErr = yaml.Unmarshal(ymlBytes, &report)
	}

	Convey("Checking the demo drops a file and its reports in the directory", t, func() {
		Convey("running the demo into a scratch directory and reading everything back", func() {
			Convey("The file parses and round trips, and the reports describe it", func() {
				So(demoErr, ShouldBeNil)

				So(mxfErr, ShouldBeNil)
				So(parseErr, ShouldBeNil)
				So(rewrite.Bytes(), ShouldResemble, mxfBytes)

				So(txtErr, ShouldBeNil)
				So(string(txtBytes), ShouldContainSubstring, "header partition at 0")

				So(ymlErr, ShouldBeNil)
				So(unmarshalErr, ShouldBeNil)
				So(report, ShouldResemble, Summary{Partitions: 2, Sets: 2, GPSPayloads: 3})
			})
		})
	})
}
