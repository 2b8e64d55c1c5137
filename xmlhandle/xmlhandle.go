// Package xmlhandle identifies XML essence payloads and sniffs values out
// of them with xpath, for wiring into a parse with WithSniffers.
package xmlhandle

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/antchfx/xmlquery"
	s377m "github.com/metarex-media/mxf-s377m"
)

const (
	// Content is the xml ContentType
	Content s377m.CType = "text/xml"
)

// xml identifier function, returns true if the data stream is
// valid xml
func xMLIdentifier(data []byte) bool {

	// to avoid json or yaml slipping through identify the first char
	if len(data) < 4 {
		return false
	}
	// check that it starts with the right key at least
	start := data[:4]
	if start[0] != '<' {
		return false
	}

	// create the decoder for the bytes
	decoder := xml.NewDecoder(bytes.NewBuffer(data))
	var err error

	for err == nil {
		err = decoder.Decode(new(interface{}))
	}

	// did it EOF and is valid or was it bad XML?
	return err == io.EOF

}

// DataIdentifier recognises XML payloads.
var DataIdentifier = s377m.DataIdentifier{DataFunc: xMLIdentifier, ContentType: Content}

type contKey struct {
	path, functionName string
}

// PathSniffer searches an XML document for that path
// and stores the key value of the Node
//
// It searches using the xPath library https://github.com/antchfx/xpath
/*

Common searches include:

- "/*" - find the root element
- "namespace-uri(/*)" - find the namespace of the root element
*/
func PathSniffer(sc s377m.SniffContext, path string) s377m.Sniffer {

	pathKey := contKey{path: path, functionName: "the path sniffer function using xpath"}
	sniffFunc := sc.GetData(pathKey)

	if sniffFunc != nil {
		return sniffFunc.(s377m.Sniffer)
	}

	var xmlSniff s377m.Sniffer

	// namespace-uri() is handled by hand, picking the xmlns attribute
	// off the root element
	if path == "namespace-uri(/*)" {

		mid := func(data []byte) s377m.SniffResult {
			doc, _ := xmlquery.Parse(bytes.NewBuffer(data))
			out := xmlquery.FindOne(doc, "/*")

			if out != nil {
				// loop through the attributes searching for xmlns
				for _, attr := range out.Attr {
					if attr.Name.Local == "xmlns" {
						return s377m.SniffResult{Key: path, Field: attr.Value, Certainty: 100}
					}
				}
			}

			return s377m.SniffResult{}
		}
		xmlSniff = &mid
	} else {

		mid := func(data []byte) s377m.SniffResult {
			doc, _ := xmlquery.Parse(bytes.NewBuffer(data))
			out := xmlquery.FindOne(doc, path)

			if out == nil {

				return s377m.SniffResult{}
			}

			var value string
			switch out.Type {
			case xmlquery.AttributeNode:
				value = out.InnerText()
			default:
				value = out.Data
			}

			return s377m.SniffResult{Key: path, Field: value, Certainty: 100}
		}

		xmlSniff = &mid
	}

	sc.CacheData(pathKey, xmlSniff)

	return xmlSniff
}
